package router

import (
	"net/http"

	apphttp "sheetcut_backend/internal/http"
	"sheetcut_backend/platform/httpkit"
	"sheetcut_backend/platform/logger"

	"github.com/gin-gonic/gin"
)

// New builds the gin engine, installs shared middleware and lets each module
// register its own routes.
func New(env string, log *logger.Logger, modules []apphttp.Module) *gin.Engine {
	if !isDevelopment(env) {
		gin.SetMode(gin.ReleaseMode)
	}

	engine := gin.New()
	engine.Use(gin.Recovery())
	engine.Use(httpkit.RequestID())
	engine.Use(httpkit.RequestLogger(log))
	engine.Use(httpkit.SecurityHeaders())

	engine.GET("/api/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	ctx := &apphttp.RouterContext{Engine: engine}
	for _, module := range modules {
		module.RegisterRoutes(ctx)
		log.Info("module routes registered", "module", module.Name())
	}

	return engine
}

func isDevelopment(env string) bool {
	return env == "" || env == "development"
}
