package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	_ "github.com/userdash/user-dashboard/docs" // swagger docs

	"github.com/userdash/user-dashboard/internal/api"
	"github.com/userdash/user-dashboard/internal/infrastructure/backend"
	"github.com/userdash/user-dashboard/internal/pkg/config"
	"github.com/userdash/user-dashboard/pkg/logger"
)

// @title        User Dashboard BFF
// @version      1.0
// @description  Backend-for-frontend proxy for the user management dashboard: validated CRUD, statistics relay, and PDF export.
// @BasePath     /
func main() {
	cfg := config.Load()

	log := logger.Init(logger.Options{
		Level:  cfg.LogLevel,
		Pretty: cfg.Env == "development",
	})

	gateway := backend.NewClient(cfg.Backend.APIURL, map[string]string{
		"Content-Type": "application/json",
		"Accept":       "*/*",
	}, cfg.Backend.Timeout)

	e := api.NewRouter(cfg, gateway, log)

	go func() {
		log.Info().Str("port", cfg.Port).Str("backend", cfg.Backend.APIURL).Msg("starting server")
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Err(err).Msg("server stopped")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(ctx); err != nil {
		log.Error().Err(err).Msg("graceful shutdown failed")
	}
	log.Info().Msg("server stopped")
}
