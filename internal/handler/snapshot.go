package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.opentelemetry.io/otel/attribute"

	"bazaarwatch/internal/domain"
)

// GetSnapshot godoc
// @Summary      Get the latest market snapshot
// @Description  Returns the most recent snapshot of currencies, gold, coins and crypto
// @Tags         snapshot
// @Produce      json
// @Success      200  {object}  domain.MarketSnapshot
// @Failure      500  {object}  map[string]string
// @Router       /api/snapshot [get]
func (h *Handler) GetSnapshot(c *gin.Context) {
	ctx, span := h.tracer.Start(c.Request.Context(), "handler.get-snapshot")
	defer span.End()

	snap, err := h.market.Latest(ctx)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, snap)
}

// GetCategory godoc
// @Summary      Get one snapshot category
// @Description  Returns the facts of a single category (currencies, gold, coins, crypto)
// @Tags         snapshot
// @Produce      json
// @Param        category  path  string  true  "Category name"
// @Success      200  {object}  map[string]interface{}
// @Failure      400  {object}  map[string]string
// @Router       /api/snapshot/{category} [get]
func (h *Handler) GetCategory(c *gin.Context) {
	ctx, span := h.tracer.Start(c.Request.Context(), "handler.get-category")
	defer span.End()

	category := c.Param("category")
	span.SetAttributes(attribute.String("category", category))

	snap, err := h.market.Latest(ctx)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	var facts []domain.PriceFact
	switch category {
	case domain.CategoryCurrencies:
		facts = snap.Currencies
	case domain.CategoryGold:
		facts = snap.Gold
	case domain.CategoryCoins:
		facts = snap.Coins
	case domain.CategoryCrypto:
		facts = snap.Crypto
	default:
		c.JSON(http.StatusBadRequest, gin.H{
			"error":      "unknown category: " + category,
			"categories": domain.Categories,
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"category":     category,
		"facts":        facts,
		"generated_at": snap.GeneratedAt,
	})
}

// GetGovernmentRates godoc
// @Summary      Get national-exchange rates
// @Description  Scrapes the national exchange table on demand
// @Tags         rates
// @Produce      json
// @Success      200  {object}  map[string]interface{}
// @Failure      502  {object}  map[string]string
// @Router       /api/rates/government [get]
func (h *Handler) GetGovernmentRates(c *gin.Context) {
	ctx, span := h.tracer.Start(c.Request.Context(), "handler.get-government-rates")
	defer span.End()

	rates, err := h.market.GovernmentRates(ctx)
	if err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"rates": rates})
}
