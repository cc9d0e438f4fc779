package service

import (
	"math"

	"bazaarwatch/internal/domain"
)

// troyOunceTo18kGram converts a troy-ounce dollar quote to the implied
// toman value of one gram of 18-karat gold.
const troyOunceTo18kGram = 41.4562

const (
	bubblePremiumUnit  = "تومان (بیشتر از قیمت جهانی)"
	bubbleDiscountUnit = "تومان (کمتر از قیمت جهانی)"
)

// computeBubble derives the gold bubble: the premium or discount of the
// local 18k gram price over its globally implied intrinsic value. It
// requires the USD rate, the global ounce and the local gram price in
// the same run; with any of them missing there is no bubble fact at all.
// The signed raw bubble rides in Change so consumers can tell premium
// from discount while Price stays non-negative.
func computeBubble(currencies, gold []domain.PriceFact) (domain.PriceFact, bool) {
	usd, okUSD := findFact(currencies, "USD")
	ounce, okOunce := findFact(gold, "gold_ounce")
	gram, okGram := findFact(gold, "gold_18k")
	if !okUSD || !okOunce || !okGram {
		return domain.PriceFact{}, false
	}

	intrinsic := (ounce.Price * usd.Price) / troyOunceTo18kGram
	bubble := math.Round(gram.Price - intrinsic)

	unit := bubblePremiumUnit
	if bubble < 0 {
		unit = bubbleDiscountUnit
	}

	return domain.PriceFact{
		ID:     "gold_bubble",
		Name:   "حباب طلا",
		Icon:   "🫧",
		Price:  math.Abs(bubble),
		Change: bubble,
		Unit:   unit,
	}, true
}

func findFact(facts []domain.PriceFact, id string) (domain.PriceFact, bool) {
	for _, f := range facts {
		if f.ID == id {
			return f, true
		}
	}
	return domain.PriceFact{}, false
}
