package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/otel/trace"

	"bazaarwatch/internal/domain"
)

type fakeService struct {
	snap  *domain.MarketSnapshot
	rates []domain.GovernmentRate
	err   error
}

func (f *fakeService) Latest(context.Context) (*domain.MarketSnapshot, error) {
	return f.snap, f.err
}

func (f *fakeService) GovernmentRates(context.Context) ([]domain.GovernmentRate, error) {
	return f.rates, f.err
}

func newTestRouter(svc SnapshotService, apiKey string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	h := New(trace.NewNoopTracerProvider().Tracer("test"), svc)
	h.RegisterRoutes(r, apiKey)
	return r
}

func testSnapshot() *domain.MarketSnapshot {
	return &domain.MarketSnapshot{
		Currencies:  []domain.PriceFact{{ID: "USD", Price: 103500}},
		Gold:        []domain.PriceFact{{ID: "gold_18k", Price: 6420000}},
		Coins:       []domain.PriceFact{{ID: "coin_full", Price: 92500000}},
		Crypto:      []domain.PriceFact{{ID: "bitcoin", Price: 97000}},
		GeneratedAt: time.Now(),
	}
}

func TestGetSnapshot(t *testing.T) {
	r := newTestRouter(&fakeService{snap: testSnapshot()}, "")

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/snapshot", nil)
	r.ServeHTTP(w, req)

	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
	var snap domain.MarketSnapshot
	if err := json.Unmarshal(w.Body.Bytes(), &snap); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(snap.Currencies) != 1 || snap.Currencies[0].ID != "USD" {
		t.Fatalf("unexpected body: %+v", snap)
	}
}

func TestGetSnapshotServiceError(t *testing.T) {
	r := newTestRouter(&fakeService{err: errors.New("pipeline broke")}, "")

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/snapshot", nil))
	if w.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d", w.Code)
	}
}

func TestGetCategory(t *testing.T) {
	r := newTestRouter(&fakeService{snap: testSnapshot()}, "")

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/snapshot/gold", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}

	var body struct {
		Category string             `json:"category"`
		Facts    []domain.PriceFact `json:"facts"`
	}
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if body.Category != "gold" || len(body.Facts) != 1 {
		t.Fatalf("unexpected body: %+v", body)
	}
}

func TestGetCategoryUnknown(t *testing.T) {
	r := newTestRouter(&fakeService{snap: testSnapshot()}, "")

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/snapshot/bonds", nil))
	if w.Code != http.StatusBadRequest {
		t.Fatalf("status = %d", w.Code)
	}
}

func TestGetGovernmentRates(t *testing.T) {
	svc := &fakeService{rates: []domain.GovernmentRate{{Name: "دلار آمریکا", Price: 64850, Type: "صرافی ملی"}}}
	r := newTestRouter(svc, "")

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/rates/government", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("status = %d", w.Code)
	}
}

func TestAPIKeyEnforcement(t *testing.T) {
	r := newTestRouter(&fakeService{snap: testSnapshot()}, "secret")

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/api/snapshot", nil))
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("missing key: status = %d", w.Code)
	}

	w = httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/api/snapshot", nil)
	req.Header.Set("X-API-Key", "wrong")
	r.ServeHTTP(w, req)
	if w.Code != http.StatusForbidden {
		t.Fatalf("wrong key: status = %d", w.Code)
	}

	w = httptest.NewRecorder()
	req = httptest.NewRequest(http.MethodGet, "/api/snapshot", nil)
	req.Header.Set("X-API-Key", "secret")
	r.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("valid key: status = %d", w.Code)
	}

	// Health stays open.
	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/health", nil))
	if w.Code != http.StatusOK {
		t.Fatalf("health: status = %d", w.Code)
	}
}
