package provider

import (
	"context"

	"go.opentelemetry.io/otel/trace"

	"bazaarwatch/internal/domain"
)

type cryptoQuote struct {
	USD       float64 `json:"usd"`
	Change24h float64 `json:"usd_24h_change"`
}

type cryptoPayload map[string]cryptoQuote

// CryptoProvider fetches the batch price-and-change payload for the
// fixed asset set. Three tiers: proxied (enveloped), direct, then the
// placeholder set, so the category is never empty. A payload without the
// bitcoin key is a failed tier, not a thin success.
type CryptoProvider struct {
	fetcher JSONFetcher
	tracer  trace.Tracer
	apiURL  string
}

func NewCryptoProvider(tracer trace.Tracer, fetcher JSONFetcher, apiURL string) *CryptoProvider {
	return &CryptoProvider{fetcher: fetcher, tracer: tracer, apiURL: apiURL}
}

func (p *CryptoProvider) Fetch(ctx context.Context) []domain.PriceFact {
	ctx, span := p.tracer.Start(ctx, "crypto.fetch")
	defer span.End()

	payload, ok := FirstSuccess(ctx,
		func(pl cryptoPayload) bool { _, has := pl["bitcoin"]; return has },
		p.viaProxy,
		p.direct,
	)
	if !ok {
		return append([]domain.PriceFact(nil), domain.CryptoPlaceholders...)
	}

	facts := make([]domain.PriceFact, 0, len(domain.CryptoAssets))
	for _, asset := range domain.CryptoAssets {
		quote, has := payload[asset.ID]
		if !has || quote.USD <= 0 {
			continue
		}
		facts = append(facts, domain.PriceFact{
			ID:     asset.ID,
			Name:   asset.Name,
			Symbol: asset.Symbol,
			Icon:   asset.Icon,
			Price:  quote.USD,
			Change: quote.Change24h,
			Unit:   domain.UnitDollar,
		})
	}
	return facts
}

func (p *CryptoProvider) viaProxy(ctx context.Context) (cryptoPayload, error) {
	var pl cryptoPayload
	if err := p.fetcher.JSONProxied(ctx, p.apiURL, &pl); err != nil {
		return nil, err
	}
	return pl, nil
}

func (p *CryptoProvider) direct(ctx context.Context) (cryptoPayload, error) {
	var pl cryptoPayload
	if err := p.fetcher.JSONDirect(ctx, p.apiURL, &pl); err != nil {
		return nil, err
	}
	return pl, nil
}
