// Package main runs the TailingsIQ HTTP API server.
package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"tailingsiq-backend/infrastructure/config"
	"tailingsiq-backend/infrastructure/di"
	"tailingsiq-backend/interfaces/http/rest"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	container, err := di.InitializeContainer(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize dependency container: %v", err)
	}
	logger := container.Logger
	defer logger.Sync()

	router := rest.NewRouter(
		cfg,
		container.AuthService,
		container.FacilityService,
		container.DocumentService,
		container.MonitoringService,
		container.RiskService,
		container.AssistantService,
		container.TokenService,
		container.UserRepo,
		container.RateLimiter,
		container.ErrorHandler,
		container.Collector,
		logger,
	)

	server := &http.Server{
		Addr:              cfg.ServerAddress,
		Handler:           router.Setup(),
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Reload configuration on file changes when loaded from a file.
	if cfg.ConfigFile != "" {
		watcher := config.NewWatcher(cfg.ConfigFile, logger, nil)
		go func() {
			if err := watcher.Watch(ctx); err != nil && err != context.Canceled {
				logger.Warn("config watcher stopped", zap.Error(err))
			}
		}()
	}

	go func() {
		logger.Info("server starting",
			zap.String("address", cfg.ServerAddress),
			zap.String("environment", cfg.Environment),
		)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("server failed", zap.Error(err))
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("graceful shutdown failed", zap.Error(err))
	}
}
