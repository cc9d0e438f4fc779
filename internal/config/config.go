package config

import (
	"log"
	"os"
	"strconv"
	"strings"
)

// Defaults point at the live sources; deployments override them through
// the environment.
const (
	defaultProxyURL     = "https://api.allorigins.win/raw?url="
	defaultBazaarURL    = "https://bazar360.com/fa/"
	defaultCoinsURL     = "https://www.tgju.org/coin"
	defaultGeramiURL    = "https://www.tgju.org/profile/gerami"
	defaultExchangeURL  = "https://www.tgju.org/currency-exchange/30001/mex-exchange"
	defaultCryptoAPIURL = "https://api.coingecko.com/api/v3/simple/price?ids=bitcoin,ethereum,tether,binancecoin,toncoin&vs_currencies=usd&include_24hr_change=true"
)

type Config struct {
	ProxyURL     string
	BazaarURL    string
	CoinsURL     string
	GeramiURL    string
	ExchangeURL  string
	CryptoAPIURL string

	RedisURL         string
	TelegramBotToken string
	APIKey           string
	RefreshSecs      int
	HTTPAddr         string
}

func Load() *Config {
	cfg := &Config{
		ProxyURL:         strings.TrimSpace(os.Getenv("PROXY_URL")),
		BazaarURL:        strings.TrimSpace(os.Getenv("BAZAAR_URL")),
		CoinsURL:         strings.TrimSpace(os.Getenv("COINS_URL")),
		GeramiURL:        strings.TrimSpace(os.Getenv("GERAMI_URL")),
		ExchangeURL:      strings.TrimSpace(os.Getenv("EXCHANGE_URL")),
		CryptoAPIURL:     strings.TrimSpace(os.Getenv("CRYPTO_API_URL")),
		RedisURL:         os.Getenv("REDIS_URL"),
		TelegramBotToken: os.Getenv("TELEGRAM_BOT_TOKEN"),
		APIKey:           os.Getenv("API_KEY"),
	}

	if cfg.ProxyURL == "" {
		cfg.ProxyURL = defaultProxyURL
	}
	if cfg.BazaarURL == "" {
		cfg.BazaarURL = defaultBazaarURL
	}
	if cfg.CoinsURL == "" {
		cfg.CoinsURL = defaultCoinsURL
	}
	if cfg.GeramiURL == "" {
		cfg.GeramiURL = defaultGeramiURL
	}
	if cfg.ExchangeURL == "" {
		cfg.ExchangeURL = defaultExchangeURL
	}
	if cfg.CryptoAPIURL == "" {
		cfg.CryptoAPIURL = defaultCryptoAPIURL
	}

	if cfg.TelegramBotToken == "" {
		log.Println("Warning: TELEGRAM_BOT_TOKEN not set, bot disabled")
	}
	if cfg.APIKey == "" {
		log.Println("Warning: API_KEY not set, API endpoints are open")
	}
	if cfg.RedisURL == "" {
		log.Println("Warning: REDIS_URL not set, defaulting to localhost:6379")
		cfg.RedisURL = "localhost:6379"
	}

	cfg.RefreshSecs = 120
	if v := os.Getenv("REFRESH_SECS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			cfg.RefreshSecs = n
		}
	}

	cfg.HTTPAddr = ":8080"
	if v := strings.TrimSpace(os.Getenv("HTTP_ADDR")); v != "" {
		cfg.HTTPAddr = v
	}

	return cfg
}
