package provider

import (
	"context"
	"errors"
	"testing"
)

const coinsURL = "https://coins.test/coin"

const coinsPage = `
<h2>سکه تمام بهار آزادی</h2>
<p>مشخصات</p>
<div>نرخ فعلی : ۹۲۵,۰۰۰,۰۰۵ ریال</div>
<h2>نیم سکه</h2>
<div>نرخ فعلی : ۵۱۰,۰۰۰,۰۰۰</div>
<h2>سکه پارسیان</h2>
<div>نرخ فعلی : ۱۰,۰۰۰,۰۰۰</div>
<h2>ربع سکه</h2>
<div>قیمت دیروز : ۳۰۰,۰۰۰,۰۰۰</div>
<h2>اخبار طلا</h2>
<div>بدون نرخ</div>`

func TestCoinsFetch(t *testing.T) {
	t.Parallel()

	p := NewCoinsProvider(testTracer(), &fakeDocs{pages: map[string]string{coinsURL: coinsPage}}, coinsURL)
	coins, err := p.Fetch(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// The quarter coin never reaches a current-rate sibling; the
	// unclassifiable heading and the non-coin heading are dropped.
	if len(coins) != 2 {
		t.Fatalf("expected 2 coins, got %d: %+v", len(coins), coins)
	}
	if coins[0].ID != "coin_full" {
		t.Fatalf("expected coin_full first, got %s", coins[0].ID)
	}
	if coins[0].Price != 92500001 {
		t.Fatalf("rial value must be converted to toman and rounded, got %f", coins[0].Price)
	}
	if coins[0].Name != "سکه تمام بهار آزادی" {
		t.Fatalf("name must be the heading text, got %q", coins[0].Name)
	}
	if coins[1].ID != "coin_half" || coins[1].Price != 51000000 {
		t.Fatalf("unexpected half coin: %+v", coins[1])
	}
}

func TestCoinsEmitAtMostOneFactPerID(t *testing.T) {
	t.Parallel()

	page := `
<h2>سکه تمام امامی</h2>
<div>نرخ فعلی : ۱۰۰,۰۰۰,۰۰۰</div>
<h2>سکه تمام بهار</h2>
<div>نرخ فعلی : ۹۰,۰۰۰,۰۰۰</div>`
	p := NewCoinsProvider(testTracer(), &fakeDocs{pages: map[string]string{coinsURL: page}}, coinsURL)
	coins, err := p.Fetch(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(coins) != 1 || coins[0].Price != 10000000 {
		t.Fatalf("duplicate id must keep the first fact: %+v", coins)
	}
}

func TestCoinsFetchFailure(t *testing.T) {
	t.Parallel()

	p := NewCoinsProvider(testTracer(), &fakeDocs{errs: map[string]error{coinsURL: errors.New("down")}}, coinsURL)
	if _, err := p.Fetch(context.Background()); err == nil {
		t.Fatal("expected error")
	}
}
