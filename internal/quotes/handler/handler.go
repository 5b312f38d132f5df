// Package handler exposes the quote HTTP endpoints.
package handler

import (
	"net/http"

	"sheetcut_backend/internal/quotes/service"
	"sheetcut_backend/internal/quotes/transport"
	"sheetcut_backend/platform/httpkit"

	"github.com/gin-gonic/gin"
)

// Handler handles HTTP requests for quotes.
type Handler struct {
	svc *service.Service
}

// New creates a new quotes handler.
func New(svc *service.Service) *Handler {
	return &Handler{svc: svc}
}

// Preflight answers the CORS pre-flight probe with headers only.
// OPTIONS /quote
func (h *Handler) Preflight(c *gin.Context) {
	c.Status(http.StatusNoContent)
}

// CreateQuote computes a quote and creates the matching catalog entry.
// POST /quote
func (h *Handler) CreateQuote(c *gin.Context) {
	var req transport.QuoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		// A body that cannot be parsed is an unexpected failure, not a
		// caller validation error.
		httpkit.Error(c, http.StatusInternalServerError, err.Error())
		return
	}

	resp, err := h.svc.CreateQuote(c.Request.Context(), req)
	if httpkit.HandleError(c, err) {
		return
	}
	httpkit.OK(c, resp)
}
