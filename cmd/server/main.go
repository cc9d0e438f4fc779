package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"bazaarwatch/internal/bot"
	"bazaarwatch/internal/cache"
	"bazaarwatch/internal/config"
	"bazaarwatch/internal/fetch"
	"bazaarwatch/internal/handler"
	"bazaarwatch/internal/job"
	"bazaarwatch/internal/provider"
	"bazaarwatch/internal/service"
	"bazaarwatch/pkg/tracing"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.opentelemetry.io/contrib/instrumentation/github.com/gin-gonic/gin/otelgin"
	"go.opentelemetry.io/otel/trace"

	_ "bazaarwatch/docs"
)

var (
	loadEnvFunc    = godotenv.Load
	loadConfigFunc = config.Load
	initRedisFunc  = cache.InitRedis
	initTracerFunc = tracing.InitTracer
	newFetcherFunc = func(tracer trace.Tracer, proxyURL string) *fetch.Client {
		return fetch.New(tracer, proxyURL)
	}
	newGovernmentProviderFunc = func(tracer trace.Tracer, fetcher provider.DocumentFetcher, url string) service.GovernmentSource {
		return provider.NewGovernmentProvider(tracer, fetcher, url)
	}
	newMarketServiceFunc = func(tracer trace.Tracer, cfg *config.Config, client *fetch.Client) *service.MarketService {
		bazaar := provider.NewBazaarProvider(tracer, client, cfg.BazaarURL, cfg.ExchangeURL)
		coins := provider.NewCoinsProvider(tracer, client, cfg.CoinsURL)
		gerami := provider.NewGeramiProvider(tracer, client, cfg.GeramiURL)
		crypto := provider.NewCryptoProvider(tracer, client, cfg.CryptoAPIURL)
		gov := newGovernmentProviderFunc(tracer, client, cfg.ExchangeURL)
		return service.NewMarketService(tracer, bazaar, coins, gerami, crypto, gov, cache.Client)
	}
	newSnapshotPollerFunc  = job.NewSnapshotPoller
	startPollerFunc        = func(p *job.SnapshotPoller, ctx context.Context) { go p.Start(ctx) }
	startTelegramBotFunc   = bot.StartTelegramBot
	newHandlerFunc         = handler.New
	newRouterFunc          = gin.Default
	setupSignalNotify      = signal.Notify
	waitForSignalFunc      = func(quit <-chan os.Signal) { <-quit }
	startHTTPServerFunc    = func(srv *http.Server) error { return srv.ListenAndServe() }
	shutdownHTTPServerFunc = func(srv *http.Server, ctx context.Context) error { return srv.Shutdown(ctx) }
)

// @title           Bazaarwatch API
// @version         1.0
// @description     Persian market snapshot service with OpenTelemetry tracing.

// @host      localhost:8080
// @BasePath  /
func main() {
	loadEnvFunc()

	cfg := loadConfigFunc()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Init Redis
	os.Setenv("REDIS_URL", cfg.RedisURL)
	initRedisFunc(ctx)

	// Init tracing
	tp, tracer, err := initTracerFunc(ctx)
	if err != nil {
		log.Fatalf("failed to initialize tracer: %v", err)
	}
	defer func() {
		if err := tp.Shutdown(ctx); err != nil {
			log.Printf("error shutting down tracer provider: %v", err)
		}
	}()

	// Create the proxied fetcher, providers and market service
	client := newFetcherFunc(tracer, cfg.ProxyURL)
	marketService := newMarketServiceFunc(tracer, cfg, client)

	// Start snapshot poller (background goroutine, stopped by ctx cancel)
	poller := newSnapshotPollerFunc(tracer, marketService, cfg.RefreshSecs)
	startPollerFunc(poller, ctx)

	// Start Telegram bot
	os.Setenv("TELEGRAM_BOT_TOKEN", cfg.TelegramBotToken)
	startTelegramBotFunc(marketService)

	// Create handlers and routes
	h := newHandlerFunc(tracer, marketService)

	r := newRouterFunc()
	r.Use(otelgin.Middleware("bazaarwatch"))

	h.RegisterRoutes(r, cfg.APIKey)
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	srv := &http.Server{
		Addr:    cfg.HTTPAddr,
		Handler: r,
	}

	go func() {
		if err := startHTTPServerFunc(srv); err != nil && err != http.ErrServerClosed {
			log.Fatalf("listen: %s\n", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	setupSignalNotify(quit, syscall.SIGINT, syscall.SIGTERM)
	waitForSignalFunc(quit)
	log.Println("Shutting down server...")

	cancel()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := shutdownHTTPServerFunc(srv, shutdownCtx); err != nil {
		log.Fatal("Server forced to shutdown:", err)
	}

	log.Println("Server exiting")
}
