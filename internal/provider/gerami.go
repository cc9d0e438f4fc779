package provider

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel/trace"

	"bazaarwatch/internal/domain"
	"bazaarwatch/internal/markup"
	"bazaarwatch/internal/numeral"
)

const geramiSelector = "[data-price]"

// GeramiProvider reads the gram coin from its dedicated profile page,
// where the price sits in a marked attribute rather than a table. Its id
// is distinct from the heading-based coin ids so the merged category
// never carries duplicates.
type GeramiProvider struct {
	fetcher DocumentFetcher
	tracer  trace.Tracer
	url     string
}

func NewGeramiProvider(tracer trace.Tracer, fetcher DocumentFetcher, url string) *GeramiProvider {
	return &GeramiProvider{fetcher: fetcher, tracer: tracer, url: url}
}

func (p *GeramiProvider) Fetch(ctx context.Context) ([]domain.PriceFact, error) {
	ctx, span := p.tracer.Start(ctx, "gerami.fetch")
	defer span.End()

	doc, err := p.fetcher.Document(ctx, p.url)
	if err != nil {
		return nil, fmt.Errorf("gerami document: %w", err)
	}

	raw, ok := markup.AttrOrText(doc, geramiSelector, "data-price")
	if !ok {
		return nil, nil
	}
	price := rialToToman(numeral.ParseInt(raw))
	if price <= 0 {
		return nil, nil
	}

	return []domain.PriceFact{{
		ID:    "coin_gerami",
		Name:  domain.DisplayNames["coin_gerami"],
		Icon:  "🪙",
		Price: float64(price),
		Unit:  domain.UnitToman,
	}}, nil
}
