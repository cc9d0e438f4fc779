// Package provider implements one source strategy per upstream market
// page or API. Each provider extracts its facts from a fetched document
// and reports misses as absent facts; transport and parse failures
// surface as errors that the aggregation service downgrades to an empty
// category.
package provider

import (
	"context"

	"github.com/PuerkitoBio/goquery"
)

// DocumentFetcher retrieves a markup source through the indirection
// endpoint. Satisfied by fetch.Client; tests inject fixture documents.
type DocumentFetcher interface {
	Document(ctx context.Context, target string) (*goquery.Document, error)
}

// JSONFetcher retrieves an API payload, proxied or direct.
type JSONFetcher interface {
	JSONProxied(ctx context.Context, target string, v any) error
	JSONDirect(ctx context.Context, target string, v any) error
}

// Supplier is one tier in a try-in-order chain.
type Supplier[T any] func(context.Context) (T, error)

// FirstSuccess runs suppliers in order and returns the first result that
// valid accepts, skipping errored and rejected tiers. Later tiers are
// never invoked once a tier succeeds.
func FirstSuccess[T any](ctx context.Context, valid func(T) bool, suppliers ...Supplier[T]) (T, bool) {
	var zero T
	for _, supply := range suppliers {
		v, err := supply(ctx)
		if err != nil {
			continue
		}
		if valid(v) {
			return v, true
		}
	}
	return zero, false
}
