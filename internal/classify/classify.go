// Package classify resolves semantic identity for extracted facts.
// Rules live in ordered slices, not maps: earlier rules are more
// specific and must win ("سکه تمام" plus "قدیم" is the old-design coin,
// checked before the generic full-coin rule).
package classify

import (
	"strings"

	"bazaarwatch/internal/domain"
)

// Result is the resolved identity of a fact.
type Result struct {
	ID   string
	Name string
	Icon string
	Unit string
}

type rule struct {
	match func(keyword, exclude string) bool
	id    string
	icon  string
}

func contains(sub string) func(string, string) bool {
	return func(keyword, _ string) bool { return strings.Contains(keyword, sub) }
}

// Rule order encodes precedence; first match wins.
var rowRules = []rule{
	{contains("USD"), "USD", "🇺🇸"},
	{contains("EUR"), "EUR", "🇪🇺"},
	{contains("AED"), "AED", "🇦🇪"},
	{contains("GBP"), "GBP", "🇬🇧"},
	{contains("TRY"), "TRY", "🇹🇷"},
	{contains("CNY"), "CNY", "🇨🇳"},
	{contains("AUD"), "AUD", "🇦🇺"},
	{contains("CHF"), "CHF", "🇨🇭"},
	{contains("NOK"), "NOK", "🇳🇴"},
	{contains("SEK"), "SEK", "🇸🇪"},
	{contains("دینار عراق"), "IQD100", "🇮🇶"},
	{contains("گرم طلا 18"), "gold_18k", "✨"},
	{func(k, _ string) bool {
		return strings.Contains(k, "انس") || strings.Contains(k, "اونس")
	}, "gold_ounce", "🌍"},
	// Old-design full coin is a superset of the generic full-coin
	// keyword and must be tested first.
	{func(k, _ string) bool {
		return strings.Contains(k, "سکه تمام بهار آزادی") ||
			(strings.Contains(k, "سکه تمام") && strings.Contains(k, "قدیم"))
	}, "seke_bahar", "🪙"},
	{func(k, ex string) bool {
		return strings.Contains(k, "سکه تمام") && ex == ""
	}, "seke_emami", "🪙"},
	{contains("نیم سکه"), "nim_seke", "🌗"},
	{contains("ربع سکه"), "rob_seke", "🌘"},
	{contains("سکه گرمی"), "seke_grami", "🪙"},
}

// Classify maps a matched row keyword to a canonical identity. exclude
// is the must-be-absent term the row scan used, when any; firstCell is
// the raw first cell text, used as the display name when no rule and no
// title entry apply. Classification never fails: an unmatched keyword
// yields id "unknown" with the raw name.
func Classify(keyword, exclude, firstCell string) Result {
	id, icon := "unknown", "💰"
	for _, r := range rowRules {
		if r.match(keyword, exclude) {
			id, icon = r.id, r.icon
			break
		}
	}

	name, ok := domain.DisplayNames[id]
	if !ok {
		name = firstCell
		if name == "" {
			name = keyword
		}
	}

	unit := domain.UnitToman
	if id == "gold_ounce" {
		unit = domain.UnitDollar
	}

	return Result{ID: id, Name: name, Icon: icon, Unit: unit}
}

type coinRule struct {
	sub  string
	id   string
	icon string
}

// coinRules classify tgju section headings; ordered, first match wins.
var coinRules = []coinRule{
	{"تمام", "coin_full", "🪙"},
	{"نیم", "coin_half", "🌗"},
	{"ربع", "coin_quarter", "🌘"},
	{"گرمی", "coin_gram", "🪙"},
	{"بهار", "coin_bahar", "🪙"},
	{"امامی", "coin_emami", "🪙"},
}

// CoinIdentity maps a coin section heading to its id and icon. Headings
// matching no rule return an empty id; callers discard those facts.
func CoinIdentity(heading string) (id, icon string) {
	for _, r := range coinRules {
		if strings.Contains(heading, r.sub) {
			return r.id, r.icon
		}
	}
	return "", "🪙"
}
