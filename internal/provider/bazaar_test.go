package provider

import (
	"context"
	"errors"
	"testing"
)

const bazaarURL = "https://bazar.test/fa/"
const exchangeURL = "https://exchange.test/mex"

const bazaarPage = `
<table>
  <tr><td>1</td><td>USD دلار آمریکا</td><td>۱۰۳,۵۰۰</td><td>0.75%</td></tr>
  <tr><td>2</td><td>EUR یورو</td><td>۱۱۲,۲۰۰</td><td>-0.4%</td></tr>
  <tr><td>3</td><td>GBP پوند</td><td>۱۳۵,۰۰۰</td><td>1.2%</td></tr>
  <tr><td>4</td><td>گرم طلا 18 عیار</td><td>۶,۴۲۰,۰۰۰</td><td>0.9%</td></tr>
  <tr><td>5</td><td>قیمت اونس طلا جهانی (دلار آمریکا)</td><td>2,650</td><td>0.2%</td></tr>
</table>`

func TestBazaarFetchCurrenciesAndGold(t *testing.T) {
	t.Parallel()

	p := NewBazaarProvider(testTracer(), &fakeDocs{pages: map[string]string{bazaarURL: bazaarPage}}, bazaarURL, exchangeURL)
	currencies, gold, err := p.Fetch(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Keyword scan order, absent keywords skipped.
	wantIDs := []string{"USD", "EUR", "GBP"}
	if len(currencies) != len(wantIDs) {
		t.Fatalf("expected %d currencies, got %d", len(wantIDs), len(currencies))
	}
	for i, id := range wantIDs {
		if currencies[i].ID != id {
			t.Fatalf("currency %d: got %s, want %s", i, currencies[i].ID, id)
		}
	}
	if currencies[0].Price != 103500 || currencies[0].Change != 0.75 {
		t.Fatalf("unexpected USD fact: %+v", currencies[0])
	}
	if currencies[0].Unit != "تومان" {
		t.Fatalf("currency unit must be toman, got %s", currencies[0].Unit)
	}

	if len(gold) != 2 {
		t.Fatalf("expected gram + ounce, got %d facts", len(gold))
	}
	if gold[0].ID != "gold_18k" || gold[0].Price != 6420000 {
		t.Fatalf("unexpected gram fact: %+v", gold[0])
	}
	if gold[1].ID != "gold_ounce" || gold[1].Price != 2650 {
		t.Fatalf("unexpected ounce fact: %+v", gold[1])
	}
	if gold[1].Unit != "دلار" {
		t.Fatalf("ounce magnitude under ceiling must read dollar, got %s", gold[1].Unit)
	}
}

func TestBazaarOunceBackupKeywordTier(t *testing.T) {
	t.Parallel()

	// No primary ounce row; the backup keyword must exclude silver.
	page := `
<table>
  <tr><td>انس نقره</td><td>31</td></tr>
  <tr><td>انس</td><td>2,651</td></tr>
</table>`
	p := NewBazaarProvider(testTracer(), &fakeDocs{pages: map[string]string{bazaarURL: page}}, bazaarURL, exchangeURL)
	_, gold, err := p.Fetch(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(gold) != 1 || gold[0].ID != "gold_ounce" || gold[0].Price != 2651 {
		t.Fatalf("backup tier did not fire: %+v", gold)
	}
}

func TestBazaarOunceExchangeTier(t *testing.T) {
	t.Parallel()

	docs := &fakeDocs{pages: map[string]string{
		bazaarURL: `<table><tr><td>USD</td><td>۱۰۳,۵۰۰</td></tr></table>`,
		exchangeURL: `
<table>
  <tr><td>انس نقره</td><td>3,100</td></tr>
  <tr><td>انس طلا</td><td>2,652</td><td>2,660</td></tr>
</table>`,
	}}
	p := NewBazaarProvider(testTracer(), docs, bazaarURL, exchangeURL)
	_, gold, err := p.Fetch(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(gold) != 1 || gold[0].ID != "gold_ounce" {
		t.Fatalf("exchange tier did not fire: %+v", gold)
	}
	if gold[0].Price != 2652 {
		t.Fatalf("expected first qualifying cell, got %f", gold[0].Price)
	}
	if gold[0].Unit != "دلار" {
		t.Fatalf("low magnitude must correct unit to dollar, got %s", gold[0].Unit)
	}
}

func TestBazaarOunceExchangeTierLabelsDollarAboveCeiling(t *testing.T) {
	t.Parallel()

	// The exchange page is dollar-quoted even when the figure exceeds
	// the toman-column ceiling.
	docs := &fakeDocs{pages: map[string]string{
		bazaarURL:   `<table><tr><td>USD</td><td>۱۰۳,۵۰۰</td></tr></table>`,
		exchangeURL: `<table><tr><td>انس طلا</td><td>5,120</td></tr></table>`,
	}}
	p := NewBazaarProvider(testTracer(), docs, bazaarURL, exchangeURL)
	_, gold, err := p.Fetch(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(gold) != 1 || gold[0].Price != 5120 {
		t.Fatalf("exchange tier did not fire: %+v", gold)
	}
	if gold[0].Unit != "دلار" {
		t.Fatalf("exchange ounce must read dollar, got %s", gold[0].Unit)
	}
}

func TestBazaarOunceExchangeTierSkippedWhenEarlierTierHits(t *testing.T) {
	t.Parallel()

	// No exchange fixture: reaching that tier would error the fetch,
	// which must not happen when the backup keyword already matched.
	docs := &fakeDocs{pages: map[string]string{
		bazaarURL: `<table><tr><td>انس</td><td>2,650</td></tr></table>`,
	}}
	p := NewBazaarProvider(testTracer(), docs, bazaarURL, exchangeURL)
	_, gold, err := p.Fetch(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(gold) != 1 || gold[0].Price != 2650 {
		t.Fatalf("unexpected gold facts: %+v", gold)
	}
}

func TestBazaarFetchFailure(t *testing.T) {
	t.Parallel()

	docs := &fakeDocs{errs: map[string]error{bazaarURL: errors.New("proxy down")}}
	p := NewBazaarProvider(testTracer(), docs, bazaarURL, exchangeURL)
	if _, _, err := p.Fetch(context.Background()); err == nil {
		t.Fatal("expected error when the primary document is unreachable")
	}
}
