// Package fetch retrieves upstream documents through the request
// indirection endpoint. Markup sources are always proxied (the upstream
// pages refuse cross-origin readers); the crypto API additionally allows
// a direct request when the proxy path fails.
package fetch

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"go.opentelemetry.io/otel/trace"
)

// Client issues GET requests and parses response bodies. It never
// retries: retry cadence belongs to the scheduler that drives refreshes.
type Client struct {
	http     *http.Client
	proxyURL string
	tracer   trace.Tracer
}

func New(tracer trace.Tracer, proxyURL string) *Client {
	return &Client{
		http:     &http.Client{Timeout: 30 * time.Second},
		proxyURL: proxyURL,
		tracer:   tracer,
	}
}

// SetHTTPClient replaces the underlying HTTP client. Used by tests to
// install a fake transport.
func (c *Client) SetHTTPClient(h *http.Client) { c.http = h }

func (c *Client) proxied(target string) string {
	return c.proxyURL + url.QueryEscape(target)
}

// Document fetches target through the indirection endpoint and parses
// the body as an HTML document.
func (c *Client) Document(ctx context.Context, target string) (*goquery.Document, error) {
	_, span := c.tracer.Start(ctx, "fetch.document")
	defer span.End()

	body, err := c.get(ctx, c.proxied(target))
	if err != nil {
		return nil, fmt.Errorf("fetch %s: %w", target, err)
	}
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(string(body)))
	if err != nil {
		return nil, fmt.Errorf("parse %s: %w", target, err)
	}
	return doc, nil
}

// JSONProxied fetches target through the indirection endpoint and
// decodes the enveloped payload into v. The endpoint wraps the upstream
// body in a "contents" field holding the raw JSON text.
func (c *Client) JSONProxied(ctx context.Context, target string, v any) error {
	_, span := c.tracer.Start(ctx, "fetch.json-proxied")
	defer span.End()

	body, err := c.get(ctx, c.proxied(target))
	if err != nil {
		return fmt.Errorf("fetch %s: %w", target, err)
	}

	var envelope struct {
		Contents string `json:"contents"`
	}
	if err := json.Unmarshal(body, &envelope); err != nil {
		return fmt.Errorf("decode proxy envelope: %w", err)
	}
	if envelope.Contents == "" {
		return fmt.Errorf("proxy envelope for %s has no contents", target)
	}
	if err := json.Unmarshal([]byte(envelope.Contents), v); err != nil {
		return fmt.Errorf("decode proxied payload: %w", err)
	}
	return nil
}

// JSONDirect fetches target without the indirection endpoint and decodes
// the body into v.
func (c *Client) JSONDirect(ctx context.Context, target string, v any) error {
	_, span := c.tracer.Start(ctx, "fetch.json-direct")
	defer span.End()

	body, err := c.get(ctx, target)
	if err != nil {
		return fmt.Errorf("fetch %s: %w", target, err)
	}
	if err := json.Unmarshal(body, v); err != nil {
		return fmt.Errorf("decode payload: %w", err)
	}
	return nil
}

func (c *Client) get(ctx context.Context, rawURL string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Accept", "text/html,application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("upstream error %d: %s", resp.StatusCode, string(body))
	}

	return io.ReadAll(resp.Body)
}
