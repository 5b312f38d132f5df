// Package webhook provides the order-event reconciliation bounded context.
// This file defines the module that encapsulates setup and route registration.
package webhook

import (
	"sheetcut_backend/internal/config"
	apphttp "sheetcut_backend/internal/http"
	"sheetcut_backend/platform/logger"
)

// Module is the webhook bounded context module implementing http.Module.
type Module struct {
	handler *Handler
}

// NewModule creates and initializes the webhook module with all its dependencies.
func NewModule(cfg *config.Config, catalog CatalogDeleter, log *logger.Logger) *Module {
	service := NewService(cfg, catalog, log)
	return &Module{handler: NewHandler(service)}
}

// Name returns the module identifier.
func (m *Module) Name() string {
	return "webhook"
}

// RegisterRoutes mounts the webhook route on the engine root.
func (m *Module) RegisterRoutes(ctx *apphttp.RouterContext) {
	ctx.Engine.POST("/webhooks", m.handler.HandleOrderEvent)
}

// Compile-time check that Module implements http.Module
var _ apphttp.Module = (*Module)(nil)
