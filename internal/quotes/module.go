// Package quotes provides the quote calculation bounded context module.
// This file defines the module that encapsulates setup and route registration.
package quotes

import (
	"sheetcut_backend/internal/config"
	apphttp "sheetcut_backend/internal/http"
	"sheetcut_backend/internal/quotes/handler"
	"sheetcut_backend/internal/quotes/service"
	"sheetcut_backend/platform/httpkit"
	"sheetcut_backend/platform/logger"
	"sheetcut_backend/platform/validator"

	"golang.org/x/time/rate"
)

// Module is the quotes bounded context module implementing http.Module.
type Module struct {
	handler *handler.Handler
	cfg     *config.Config
	limiter *httpkit.IPRateLimiter
}

// NewModule creates and initializes the quotes module with all its dependencies.
func NewModule(cfg *config.Config, catalog service.CatalogCreator, val *validator.Validator, log *logger.Logger) *Module {
	svc := service.New(cfg, catalog, val, log)

	return &Module{
		handler: handler.New(svc),
		cfg:     cfg,
		limiter: httpkit.NewIPRateLimiter(rate.Limit(2), 10, log),
	}
}

// Name returns the module identifier.
func (m *Module) Name() string {
	return "quotes"
}

// RegisterRoutes mounts the quote routes on the engine root. The endpoint is
// browser-facing, so every response carries CORS headers and the create path
// is rate limited per IP.
func (m *Module) RegisterRoutes(ctx *apphttp.RouterContext) {
	group := ctx.Engine.Group("/quote")
	group.Use(httpkit.CORS(m.cfg.AllowedOrigin))
	group.OPTIONS("", m.handler.Preflight)
	group.POST("", m.limiter.RateLimit(), m.handler.CreateQuote)
}

// Compile-time check that Module implements http.Module
var _ apphttp.Module = (*Module)(nil)
