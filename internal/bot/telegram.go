package bot

import (
	"context"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	tele "gopkg.in/telebot.v3"

	"bazaarwatch/internal/domain"
)

// SnapshotReader serves the latest market snapshot.
type SnapshotReader interface {
	Latest(ctx context.Context) (*domain.MarketSnapshot, error)
}

func StartTelegramBot(market SnapshotReader) {
	token := os.Getenv("TELEGRAM_BOT_TOKEN")
	if token == "" {
		log.Println("TELEGRAM_BOT_TOKEN not set, skipping Telegram bot startup")
		return
	}
	pref := tele.Settings{
		Token:  token,
		Poller: &tele.LongPoller{Timeout: 10 * time.Second},
	}
	b, err := tele.NewBot(pref)
	if err != nil {
		log.Fatalf("failed to create Telegram bot: %v", err)
	}

	b.Handle("/ping", func(c tele.Context) error {
		return c.Send("pong")
	})

	b.Handle("/rates", categoryCommand(market, "نرخ ارز", func(s *domain.MarketSnapshot) []domain.PriceFact {
		return s.Currencies
	}))
	b.Handle("/gold", categoryCommand(market, "طلا", func(s *domain.MarketSnapshot) []domain.PriceFact {
		return s.Gold
	}))
	b.Handle("/coins", categoryCommand(market, "سکه", func(s *domain.MarketSnapshot) []domain.PriceFact {
		return s.Coins
	}))
	b.Handle("/crypto", categoryCommand(market, "ارز دیجیتال", func(s *domain.MarketSnapshot) []domain.PriceFact {
		return s.Crypto
	}))

	log.Println("Telegram bot started")
	go b.Start()
}

func categoryCommand(market SnapshotReader, title string, pick func(*domain.MarketSnapshot) []domain.PriceFact) tele.HandlerFunc {
	return func(c tele.Context) error {
		snap, err := market.Latest(context.Background())
		if err != nil {
			return c.Send(fmt.Sprintf("Error fetching snapshot: %v", err))
		}
		facts := pick(snap)
		if len(facts) == 0 {
			return c.Send(title + ": no data this cycle")
		}
		return c.Send(formatFacts(title, facts, snap.GeneratedAt.Format("15:04")))
	}
}

func formatFacts(title string, facts []domain.PriceFact, at string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s (%s)\n", title, at)
	for _, f := range facts {
		fmt.Fprintf(&b, "%s %s: %s %s", f.Icon, f.Name, formatPrice(f.Price), f.Unit)
		if f.Change != 0 {
			fmt.Fprintf(&b, " (%+.2f%%)", f.Change)
		}
		b.WriteString("\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

// formatPrice prints whole prices without a fraction and keeps two
// decimals for sub-unit quotes like tether.
func formatPrice(p float64) string {
	if p == float64(int64(p)) {
		return fmt.Sprintf("%d", int64(p))
	}
	return fmt.Sprintf("%.2f", p)
}
