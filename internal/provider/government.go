package provider

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel/trace"

	"bazaarwatch/internal/domain"
	"bazaarwatch/internal/markup"
)

const governmentRateType = "صرافی ملی"

type governmentKeyword struct {
	keyword string
	name    string
}

var governmentKeywords = []governmentKeyword{
	{"دلار", "دلار آمریکا"},
	{"یورو", "یورو"},
	{"پوند", "پوند انگلیس"},
	{"درهم", "درهم امارات"},
}

// GovernmentProvider scans the national-exchange rate table. The sell
// rate is taken as the maximum of the qualifying cells in the matched
// row; upstream publishes buy and sell columns in no guaranteed order,
// so this is an assumption about the table, not a contract.
type GovernmentProvider struct {
	fetcher DocumentFetcher
	tracer  trace.Tracer
	url     string
}

func NewGovernmentProvider(tracer trace.Tracer, fetcher DocumentFetcher, url string) *GovernmentProvider {
	return &GovernmentProvider{fetcher: fetcher, tracer: tracer, url: url}
}

func (p *GovernmentProvider) Fetch(ctx context.Context) ([]domain.GovernmentRate, error) {
	ctx, span := p.tracer.Start(ctx, "government.fetch")
	defer span.End()

	doc, err := p.fetcher.Document(ctx, p.url)
	if err != nil {
		return nil, fmt.Errorf("exchange document: %w", err)
	}

	var rates []domain.GovernmentRate
	for _, gk := range governmentKeywords {
		row, ok := markup.FindRow(doc, gk.keyword, "")
		if !ok {
			continue
		}
		nums := markup.RowNumbers(row)
		if len(nums) == 0 {
			continue
		}
		best := nums[0]
		for _, n := range nums[1:] {
			if n > best {
				best = n
			}
		}
		rates = append(rates, domain.GovernmentRate{
			Name:  gk.name,
			Price: rialToToman(best),
			Type:  governmentRateType,
		})
	}

	return rates, nil
}
