package handler

import (
	"context"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/otel/trace"

	"bazaarwatch/internal/domain"
)

// SnapshotService is the read side of the market service.
type SnapshotService interface {
	Latest(ctx context.Context) (*domain.MarketSnapshot, error)
	GovernmentRates(ctx context.Context) ([]domain.GovernmentRate, error)
}

type Handler struct {
	tracer trace.Tracer
	market SnapshotService
}

func New(tracer trace.Tracer, market SnapshotService) *Handler {
	return &Handler{tracer: tracer, market: market}
}

func (h *Handler) RegisterRoutes(r *gin.Engine, apiKey string) {
	r.GET("/health", h.Health)

	api := r.Group("/api", APIKeyAuth(apiKey))
	api.GET("/snapshot", h.GetSnapshot)
	api.GET("/snapshot/:category", h.GetCategory)
	api.GET("/rates/government", h.GetGovernmentRates)
}
