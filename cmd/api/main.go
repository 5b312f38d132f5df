package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"sheetcut_backend/internal/config"
	"sheetcut_backend/internal/ecwid"
	apphttp "sheetcut_backend/internal/http"
	"sheetcut_backend/internal/http/router"
	"sheetcut_backend/internal/quotes"
	"sheetcut_backend/internal/webhook"
	"sheetcut_backend/platform/logger"
	"sheetcut_backend/platform/validator"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("failed to load config: " + err.Error())
	}

	// Initialize structured logger
	log := logger.New(cfg.Env)
	log.Info("starting server", "env", cfg.Env, "addr", cfg.HTTPAddr)
	if !cfg.StoreConfigured() {
		// Not fatal: the endpoints report the missing credentials per request.
		log.Warn("ECWID_STORE_ID/ECWID_TOKEN not configured; catalog calls will fail")
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Shared validator instance for dependency injection
	val := validator.New()

	// Remote catalog client shared by both entry points
	catalog := ecwid.New(cfg.APIBase, cfg.StoreID, cfg.APIToken, log)

	// Domain modules (composition root)
	quotesModule := quotes.NewModule(cfg, catalog, val, log)
	webhookModule := webhook.NewModule(cfg, catalog, log)

	engine := router.New(cfg.Env, log, []apphttp.Module{
		quotesModule,
		webhookModule,
	})

	srv := &http.Server{
		Addr:    cfg.HTTPAddr,
		Handler: engine,
	}

	srvErr := make(chan error, 1)
	go func() {
		log.Info("server listening", "addr", cfg.HTTPAddr)
		srvErr <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		log.Info("shutdown signal received, gracefully shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Error("shutdown error", "error", err)
		}
	case err := <-srvErr:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("server error", "error", err)
			panic("server error: " + err.Error())
		}
	}
}
