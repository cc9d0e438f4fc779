package domain

import "time"

// PriceFact is one priced entity extracted from an upstream source.
type PriceFact struct {
	ID     string  `json:"id"`
	Name   string  `json:"name"`
	Symbol string  `json:"symbol,omitempty"`
	Icon   string  `json:"icon"`
	Price  float64 `json:"price"`
	Change float64 `json:"change"`
	Unit   string  `json:"unit"`
}

// MarketSnapshot is the aggregate output of one pipeline run.
// Category slices keep source scan order; the gold bubble fact, when
// computable, is appended last to Gold.
type MarketSnapshot struct {
	Currencies  []PriceFact `json:"currencies"`
	Gold        []PriceFact `json:"gold"`
	Coins       []PriceFact `json:"coins"`
	Crypto      []PriceFact `json:"crypto"`
	GeneratedAt time.Time   `json:"generated_at"`
}

// GovernmentRate is one national-exchange rate row. These are served on
// demand and never merged into a MarketSnapshot.
type GovernmentRate struct {
	Name  string `json:"name"`
	Price int    `json:"price"`
	Type  string `json:"type"`
}

// Snapshot category names accepted by the API.
const (
	CategoryCurrencies = "currencies"
	CategoryGold       = "gold"
	CategoryCoins      = "coins"
	CategoryCrypto     = "crypto"
)

// Categories lists the snapshot categories in display order.
var Categories = []string{CategoryCurrencies, CategoryGold, CategoryCoins, CategoryCrypto}

const (
	UnitToman  = "تومان"
	UnitDollar = "دلار"
)

// CurrencyKeywords is the ordered row-scan list for the bazaar table,
// one entry per supported currency. Order is the display order.
var CurrencyKeywords = []string{
	"USD", "EUR", "AED", "GBP", "TRY", "CNY", "AUD", "CHF", "NOK", "SEK",
	"100 دینار عراق",
}

// DisplayNames maps canonical ids to their Persian display names.
var DisplayNames = map[string]string{
	"USD":         "دلار آمریکا",
	"EUR":         "یورو",
	"AED":         "درهم امارات",
	"GBP":         "پوند انگلیس",
	"TRY":         "لیر ترکیه",
	"CNY":         "یوان چین",
	"AUD":         "دلار استرالیا",
	"CHF":         "فرانک سوئیس",
	"NOK":         "کرون نروژ",
	"SEK":         "کرون سوئد",
	"IQD100":      "۱۰۰ دینار عراق",
	"gold_18k":    "طلای ۱۸ عیار (گرم)",
	"gold_ounce":  "انس جهانی طلا (دلار)",
	"seke_emami":  "سکه تمام امامی",
	"seke_bahar":  "سکه تمام طرح قدیم",
	"nim_seke":    "نیم سکه",
	"rob_seke":    "ربع سکه",
	"seke_grami":  "سکه گرمی",
	"coin_gerami": "سکه گرمی",
}

// CryptoAsset describes one tracked asset of the crypto price API.
type CryptoAsset struct {
	ID     string
	Name   string
	Symbol string
	Icon   string
}

// CryptoAssets is the fixed asset set requested from the crypto API, in
// display order. The first entry is the presence marker: a payload
// without it is treated as a failed fetch.
var CryptoAssets = []CryptoAsset{
	{ID: "bitcoin", Name: "بیت‌کوین", Symbol: "BTC", Icon: "₿"},
	{ID: "ethereum", Name: "اتریوم", Symbol: "ETH", Icon: "Ξ"},
	{ID: "tether", Name: "تتر", Symbol: "USDT", Icon: "₮"},
	{ID: "binancecoin", Name: "بایننس کوین", Symbol: "BNB", Icon: "🟡"},
	{ID: "toncoin", Name: "تون کوین", Symbol: "TON", Icon: "💎"},
}

// CryptoPlaceholders is the clearly-marked stale set emitted when every
// crypto tier fails, so the category is never empty downstream.
var CryptoPlaceholders = []PriceFact{
	{ID: "bitcoin", Name: "بیت‌کوین (دمو)", Symbol: "BTC", Icon: "₿", Price: 95000, Change: 2.5, Unit: UnitDollar},
	{ID: "ethereum", Name: "اتریوم (دمو)", Symbol: "ETH", Icon: "Ξ", Price: 3400, Change: -1.2, Unit: UnitDollar},
	{ID: "tether", Name: "تتر (دمو)", Symbol: "USDT", Icon: "₮", Price: 1, Change: 0.01, Unit: UnitDollar},
}
