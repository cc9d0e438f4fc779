// Package markup locates facts inside loosely structured upstream pages.
// Everything here is heuristic: the sources publish human-oriented HTML
// with no schema, so extraction works by keyword scans over rows,
// headings, and attributes, and misses are reported as absent, not as
// errors.
package markup

import (
	"strings"

	"github.com/PuerkitoBio/goquery"

	"bazaarwatch/internal/numeral"
)

// MinPriceCell filters out rank indices, bare percentages and other
// small numerals that could otherwise be mistaken for a price.
const MinPriceCell = 100

// RowFacts holds what a keyword row scan found.
type RowFacts struct {
	Price     int
	Change    float64
	FirstCell string
}

// CleanText collapses runs of whitespace to single spaces.
func CleanText(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// FindRow returns the first tr element whose full text contains keyword
// and, when exclude is non-empty, does not contain exclude.
func FindRow(doc *goquery.Document, keyword, exclude string) (*goquery.Selection, bool) {
	var row *goquery.Selection
	doc.Find("tr").EachWithBreak(func(_ int, tr *goquery.Selection) bool {
		text := tr.Text()
		if !strings.Contains(text, keyword) {
			return true
		}
		if exclude != "" && strings.Contains(text, exclude) {
			return true
		}
		row = tr
		return false
	})
	return row, row != nil
}

// ExtractRow scans document rows for keyword and pulls a price cell and
// an optional change cell out of the first matching row. The price cell
// is the first cell whose numeral exceeds MinPriceCell; rows without one
// report a miss.
func ExtractRow(doc *goquery.Document, keyword, exclude string) (RowFacts, bool) {
	row, ok := FindRow(doc, keyword, exclude)
	if !ok {
		return RowFacts{}, false
	}

	facts := RowFacts{FirstCell: CleanText(row.Find("td").First().Text())}
	row.Find("td").EachWithBreak(func(_ int, td *goquery.Selection) bool {
		if n := numeral.ParseInt(td.Text()); n > MinPriceCell {
			facts.Price = n
			return false
		}
		return true
	})
	if facts.Price == 0 {
		return RowFacts{}, false
	}

	row.Find("td").EachWithBreak(func(_ int, td *goquery.Selection) bool {
		text := td.Text()
		if strings.Contains(text, "%") || strings.Contains(text, "٪") {
			facts.Change = numeral.ParsePercent(text)
			return false
		}
		return true
	})

	return facts, true
}

// RowNumbers returns every cell numeral above MinPriceCell in the row,
// in cell order.
func RowNumbers(row *goquery.Selection) []int {
	var nums []int
	row.Find("td").Each(func(_ int, td *goquery.Selection) {
		if n := numeral.ParseInt(td.Text()); n > MinPriceCell {
			nums = append(nums, n)
		}
	})
	return nums
}

// EachHeading calls visit for every h2 element whose text contains term.
func EachHeading(doc *goquery.Document, term string, visit func(heading *goquery.Selection, title string)) {
	doc.Find("h2").Each(func(_ int, h *goquery.Selection) {
		title := CleanText(h.Text())
		if strings.Contains(title, term) {
			visit(h, title)
		}
	})
}

// SiblingLabeledNumber walks the elements following heading in document
// order and returns the numeral embedded after label in the first
// sibling that carries it.
func SiblingLabeledNumber(heading *goquery.Selection, label string) (int, bool) {
	for sib := heading.Next(); sib.Length() > 0; sib = sib.Next() {
		text := sib.Text()
		idx := strings.Index(text, label)
		if idx < 0 {
			continue
		}
		if n := numeral.ParseInt(text[idx+len(label):]); n > 0 {
			return n, true
		}
	}
	return 0, false
}

// AttrOrText reads the named attribute from the first element matching
// selector, falling back to the element's text when the attribute is
// absent.
func AttrOrText(doc *goquery.Document, selector, attr string) (string, bool) {
	el := doc.Find(selector).First()
	if el.Length() == 0 {
		return "", false
	}
	if v, ok := el.Attr(attr); ok && strings.TrimSpace(v) != "" {
		return v, true
	}
	return CleanText(el.Text()), true
}
