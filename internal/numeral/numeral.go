// Package numeral parses localized numeral strings as they appear in
// Persian market pages. Absence of a parseable number is always the zero
// value, never an error; downstream extraction treats zero as "no data".
package numeral

import (
	"strconv"
	"strings"
)

// ASCIIDigits rewrites Persian (۰-۹) and Arabic-Indic (٠-٩) digit glyphs
// to their ASCII equivalents and drops thousands separators.
func ASCIIDigits(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		switch {
		case r >= '۰' && r <= '۹':
			b.WriteRune('0' + (r - '۰'))
		case r >= '٠' && r <= '٩':
			b.WriteRune('0' + (r - '٠'))
		case r == ',' || r == '٬':
			// thousands separator
		default:
			b.WriteRune(r)
		}
	}
	return b.String()
}

// ParseInt extracts the first maximal run of digits from s and parses it
// as an integer. Returns 0 when s holds no digits.
func ParseInt(s string) int {
	clean := ASCIIDigits(strings.TrimSpace(s))

	start := strings.IndexFunc(clean, isASCIIDigit)
	if start < 0 {
		return 0
	}
	run := clean[start:]
	if end := strings.IndexFunc(run, func(r rune) bool { return !isASCIIDigit(r) }); end >= 0 {
		run = run[:end]
	}

	n, err := strconv.Atoi(run)
	if err != nil {
		return 0
	}
	return n
}

func isASCIIDigit(r rune) bool { return r >= '0' && r <= '9' }

// ParsePercent parses a signed decimal percentage, keeping sign and
// fraction and ignoring a trailing percent glyph. Returns 0 on failure.
func ParsePercent(s string) float64 {
	clean := ASCIIDigits(s)
	clean = strings.ReplaceAll(clean, "%", "")
	clean = strings.ReplaceAll(clean, "٪", "")
	clean = strings.TrimSpace(clean)

	// Take the leading signed decimal run, tolerating trailing labels.
	end := 0
	seenDigit := false
	for i, r := range clean {
		if i == 0 && (r == '+' || r == '-') {
			end = i + 1
			continue
		}
		if r >= '0' && r <= '9' {
			seenDigit = true
			end = i + 1
			continue
		}
		if r == '.' && seenDigit {
			end = i + 1
			continue
		}
		break
	}
	if !seenDigit {
		return 0
	}

	v, err := strconv.ParseFloat(strings.TrimSuffix(clean[:end], "."), 64)
	if err != nil {
		return 0
	}
	return v
}
