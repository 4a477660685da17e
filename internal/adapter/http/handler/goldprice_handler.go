package handler

import (
	"context"
	"net/http"

	"github.com/moharam/debtbook/internal/adapter/http/dto"
	"github.com/moharam/debtbook/internal/domain"
)

// GoldPriceService defines the behavior needed by GoldPriceHandler.
type GoldPriceService interface {
	Current(ctx context.Context, forceRefresh bool) (domain.GoldPrice, error)
}

// GoldPriceHandler handles gold price HTTP requests.
type GoldPriceHandler struct {
	prices GoldPriceService
}

// NewGoldPriceHandler creates a new GoldPriceHandler.
func NewGoldPriceHandler(prices GoldPriceService) *GoldPriceHandler {
	return &GoldPriceHandler{prices: prices}
}

// Get returns the daily gold price. ?refresh=true skips the cycle cache.
func (h *GoldPriceHandler) Get(w http.ResponseWriter, r *http.Request) {
	forceRefresh := r.URL.Query().Get("refresh") == "true"

	quote, err := h.prices.Current(r.Context(), forceRefresh)
	if err != nil {
		writeError(w, mapDomainError(err), "failed to fetch gold price", err.Error())
		return
	}

	writeJSON(w, http.StatusOK, dto.GoldPriceFromDomain(quote))
}
