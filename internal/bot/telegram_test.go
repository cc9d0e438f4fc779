package bot

import (
	"strings"
	"testing"

	"bazaarwatch/internal/domain"
)

func TestFormatFacts(t *testing.T) {
	t.Parallel()

	facts := []domain.PriceFact{
		{Icon: "🇺🇸", Name: "دلار آمریکا", Price: 103500, Change: 0.75, Unit: "تومان"},
		{Icon: "₮", Name: "تتر", Price: 1.001, Unit: "دلار"},
	}
	out := formatFacts("نرخ ارز", facts, "12:30")

	if !strings.HasPrefix(out, "نرخ ارز (12:30)") {
		t.Fatalf("missing header: %q", out)
	}
	if !strings.Contains(out, "103500 تومان (+0.75%)") {
		t.Fatalf("missing formatted fact: %q", out)
	}
	if !strings.Contains(out, "1.00 دلار") {
		t.Fatalf("fractional price must keep decimals: %q", out)
	}
	if strings.Contains(out, "1.00 دلار (") {
		t.Fatalf("zero change must not be printed: %q", out)
	}
}

func TestFormatPrice(t *testing.T) {
	t.Parallel()

	if got := formatPrice(97000); got != "97000" {
		t.Fatalf("whole price formatting: %q", got)
	}
	if got := formatPrice(5.4); got != "5.40" {
		t.Fatalf("fractional price formatting: %q", got)
	}
}
