package provider

import (
	"context"
	"fmt"
	"math"

	"github.com/PuerkitoBio/goquery"
	"go.opentelemetry.io/otel/trace"

	"bazaarwatch/internal/classify"
	"bazaarwatch/internal/domain"
	"bazaarwatch/internal/markup"
)

const (
	coinHeadingTerm  = "سکه"
	currentRateLabel = "نرخ فعلی"
)

// CoinsProvider extracts coin facts from the heading-based listing page:
// every coin section is an h2 followed by sibling elements, one of which
// carries the current rate. The ledger quotes rial; display is toman.
type CoinsProvider struct {
	fetcher DocumentFetcher
	tracer  trace.Tracer
	url     string
}

func NewCoinsProvider(tracer trace.Tracer, fetcher DocumentFetcher, url string) *CoinsProvider {
	return &CoinsProvider{fetcher: fetcher, tracer: tracer, url: url}
}

func (p *CoinsProvider) Fetch(ctx context.Context) ([]domain.PriceFact, error) {
	ctx, span := p.tracer.Start(ctx, "coins.fetch")
	defer span.End()

	doc, err := p.fetcher.Document(ctx, p.url)
	if err != nil {
		return nil, fmt.Errorf("coin document: %w", err)
	}

	var coins []domain.PriceFact
	seen := make(map[string]bool)
	markup.EachHeading(doc, coinHeadingTerm, func(h *goquery.Selection, title string) {
		raw, ok := markup.SiblingLabeledNumber(h, currentRateLabel)
		if !ok {
			return
		}
		price := rialToToman(raw)
		if price <= 0 {
			return
		}
		id, icon := classify.CoinIdentity(title)
		if id == "" || seen[id] {
			return
		}
		seen[id] = true
		coins = append(coins, domain.PriceFact{
			ID:    id,
			Name:  title,
			Icon:  icon,
			Price: float64(price),
			Unit:  domain.UnitToman,
		})
	})

	return coins, nil
}

// rialToToman converts a rial-denominated ledger value to toman.
func rialToToman(rial int) int {
	return int(math.Round(float64(rial) / 10))
}
