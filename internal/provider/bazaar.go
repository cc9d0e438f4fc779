package provider

import (
	"context"
	"fmt"

	"github.com/PuerkitoBio/goquery"
	"go.opentelemetry.io/otel/trace"

	"bazaarwatch/internal/classify"
	"bazaarwatch/internal/domain"
	"bazaarwatch/internal/markup"
)

const (
	gold18kKeyword      = "گرم طلا 18 عیار"
	ouncePrimaryKeyword = "قیمت اونس طلا جهانی (دلار آمریکا)"
	ounceBackupKeyword  = "انس"
	silverExclusion     = "نقره"
	ounceExchangeRow    = "انس طلا"

	// A global ounce quote is a four-digit dollar figure; anything at or
	// above this came from a toman-denominated column.
	ounceDollarCeiling = 5000
)

// BazaarProvider extracts currency and gold facts from the primary
// bazaar rates table. The global ounce has its own fallback chain ending
// in a row scan of the dedicated exchange-rate page.
type BazaarProvider struct {
	fetcher     DocumentFetcher
	tracer      trace.Tracer
	url         string
	exchangeURL string
}

func NewBazaarProvider(tracer trace.Tracer, fetcher DocumentFetcher, url, exchangeURL string) *BazaarProvider {
	return &BazaarProvider{fetcher: fetcher, tracer: tracer, url: url, exchangeURL: exchangeURL}
}

// Fetch retrieves the primary document once and extracts both
// categories from it. A fetch failure empties both: they share the
// document.
func (p *BazaarProvider) Fetch(ctx context.Context) (currencies, gold []domain.PriceFact, err error) {
	ctx, span := p.tracer.Start(ctx, "bazaar.fetch")
	defer span.End()

	doc, err := p.fetcher.Document(ctx, p.url)
	if err != nil {
		return nil, nil, fmt.Errorf("bazaar document: %w", err)
	}

	for _, keyword := range domain.CurrencyKeywords {
		if fact, ok := rowFact(doc, keyword, ""); ok {
			currencies = append(currencies, fact)
		}
	}

	if fact, ok := rowFact(doc, gold18kKeyword, ""); ok {
		gold = append(gold, fact)
	}
	if ounce, ok := p.fetchOunce(ctx, doc); ok {
		gold = append(gold, ounce)
	}

	return currencies, gold, nil
}

// fetchOunce tries the ounce tiers in order: primary keyword, backup
// keyword with the silver row excluded, then the exchange-rate page.
func (p *BazaarProvider) fetchOunce(ctx context.Context, doc *goquery.Document) (domain.PriceFact, bool) {
	fact, ok := FirstSuccess(ctx,
		func(f domain.PriceFact) bool { return f.Price > 0 },
		func(context.Context) (domain.PriceFact, error) {
			f, _ := rowFact(doc, ouncePrimaryKeyword, "")
			return f, nil
		},
		func(context.Context) (domain.PriceFact, error) {
			f, _ := rowFact(doc, ounceBackupKeyword, silverExclusion)
			return f, nil
		},
		p.exchangeOunce,
	)
	if !ok {
		return domain.PriceFact{}, false
	}

	if fact.Price < ounceDollarCeiling {
		fact.Unit = domain.UnitDollar
	}
	return fact, true
}

func (p *BazaarProvider) exchangeOunce(ctx context.Context) (domain.PriceFact, error) {
	doc, err := p.fetcher.Document(ctx, p.exchangeURL)
	if err != nil {
		return domain.PriceFact{}, fmt.Errorf("exchange document: %w", err)
	}

	row, ok := markup.FindRow(doc, ounceExchangeRow, silverExclusion)
	if !ok {
		return domain.PriceFact{}, nil
	}
	nums := markup.RowNumbers(row)
	if len(nums) == 0 {
		return domain.PriceFact{}, nil
	}

	// The exchange page quotes the ounce in dollars regardless of
	// magnitude.
	return domain.PriceFact{
		ID:    "gold_ounce",
		Name:  domain.DisplayNames["gold_ounce"],
		Icon:  "🌍",
		Price: float64(nums[0]),
		Unit:  domain.UnitDollar,
	}, nil
}

// rowFact extracts and classifies one keyword row. Rows without a
// qualifying price cell yield no fact.
func rowFact(doc *goquery.Document, keyword, exclude string) (domain.PriceFact, bool) {
	facts, ok := markup.ExtractRow(doc, keyword, exclude)
	if !ok || facts.Price <= 0 {
		return domain.PriceFact{}, false
	}

	res := classify.Classify(keyword, exclude, facts.FirstCell)
	return domain.PriceFact{
		ID:     res.ID,
		Name:   res.Name,
		Icon:   res.Icon,
		Price:  float64(facts.Price),
		Change: facts.Change,
		Unit:   res.Unit,
	}, true
}
