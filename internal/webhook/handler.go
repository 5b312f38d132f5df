package webhook

import (
	"net/http"

	"sheetcut_backend/platform/apperr"
	"sheetcut_backend/platform/httpkit"

	"github.com/gin-gonic/gin"
)

// Handler handles webhook HTTP requests.
type Handler struct {
	service *Service
}

// NewHandler creates a new webhook handler.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// HandleOrderEvent processes an inbound order-event webhook.
// POST /webhooks
// Reconciliation is best-effort and report-only: malformed bodies are treated
// as empty events and the response is 200 whenever the server is configured
// and the shared secret (if any) matches.
func (h *Handler) HandleOrderEvent(c *gin.Context) {
	var payload map[string]any
	if err := c.ShouldBindJSON(&payload); err != nil {
		payload = map[string]any{}
	}

	result, err := h.service.Reconcile(c.Request.Context(), payload, c.Query("secret"))
	if err != nil {
		status := http.StatusInternalServerError
		if domainErr, ok := err.(*apperr.Error); ok {
			status = domainErr.HTTPStatus()
		}
		c.JSON(status, gin.H{"ok": false, "error": err.Error()})
		return
	}

	httpkit.OK(c, result)
}
