// cmd/modalcopy-server/main.go
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"modalcopy/internal/api"
	"modalcopy/internal/catalog"
	"modalcopy/internal/common/config"
	"modalcopy/internal/common/database"
	"modalcopy/internal/common/logger"
	"modalcopy/internal/common/observability"
	"modalcopy/internal/templates"
	"modalcopy/pkg/registry"
)

// retryWithBackoff attempts to execute a function with exponential backoff
func retryWithBackoff(operation func() error, maxRetries int, initialDelay time.Duration, log *zap.Logger, operationName string) error {
	var err error
	delay := initialDelay

	for i := 0; i < maxRetries; i++ {
		err = operation()
		if err == nil {
			return nil
		}

		if i < maxRetries-1 {
			log.Warn(fmt.Sprintf("%s failed, retrying...", operationName),
				zap.Error(err),
				zap.Int("attempt", i+1),
				zap.Int("maxRetries", maxRetries),
				zap.Duration("nextRetryIn", delay),
			)
			time.Sleep(delay)
			delay *= 2
		}
	}

	return fmt.Errorf("%s failed after %d attempts: %w", operationName, maxRetries, err)
}

// connectRedis returns nil when redis cannot be reached after maxRetries.
func connectRedis(ctx context.Context, cfg config.RedisConfig, maxRetries int, initialDelay time.Duration, log *zap.Logger) *database.RedisClient {
	var client *database.RedisClient
	err := retryWithBackoff(func() error {
		c, err := database.NewRedis(cfg)
		if err != nil {
			return err
		}
		if err := c.Ping(ctx); err != nil {
			_ = c.Close()
			return err
		}
		client = c
		return nil
	}, maxRetries, initialDelay, log, "Redis connection")

	if err != nil {
		log.Warn("redis unavailable, running without cache", zap.Error(err))
		return nil
	}
	log.Info("Redis connected successfully")
	return client
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config load failed: %v\n", err)
		os.Exit(1)
	}

	var outputs []string
	if cfg.Logging.Output != "" {
		outputs = append(outputs, cfg.Logging.Output)
	}
	zapLog := logger.New(cfg.Logging.Level, cfg.Logging.Format, outputs...)
	defer zapLog.Sync()

	log := logger.NewZapAdapter(zapLog)

	zapLog.Info("Starting modalcopy server...",
		zap.String("version", cfg.App.Version),
		zap.String("environment", cfg.App.Environment),
	)

	obs := observability.New(cfg.App.Name)
	defer obs.Shutdown()

	ctx := context.Background()

	// --- Redis with retry; the service runs without a cache if it stays down ---
	redis := connectRedis(ctx, cfg.Database.Redis, 5, time.Second, zapLog)
	if redis != nil {
		defer redis.Close()
	}

	// --- Static data ---
	reg, err := registry.Load(cfg.Registry.Path)
	if err != nil {
		zapLog.Fatal("operation registry load failed", zap.Error(err), zap.String("path", cfg.Registry.Path))
	}

	store, err := templates.Load(cfg.Copy.TemplatesDir)
	if err != nil {
		zapLog.Fatal("template load failed", zap.Error(err), zap.String("dir", cfg.Copy.TemplatesDir))
	}

	cat, err := catalog.LoadBuiltin()
	if err != nil {
		zapLog.Fatal("catalog load failed", zap.Error(err))
	}

	zapLog.Info("Static data loaded",
		zap.Int("operations", len(reg.Operations)),
		zap.Int("categories", len(store.Categories())),
		zap.Int("screens", len(cat.Screens())),
	)

	srv, err := api.NewServer(api.Dependencies{
		Config:        cfg,
		Logger:        log,
		Registry:      reg,
		Templates:     store,
		Catalog:       cat,
		Redis:         redis,
		Observability: obs,
	})
	if err != nil {
		zapLog.Fatal("api server init failed", zap.Error(err))
	}

	httpServer := &http.Server{
		Addr:         cfg.Server.Address,
		Handler:      srv.Router(),
		ReadTimeout:  config.GetDuration(cfg.Server.ReadTimeout),
		WriteTimeout: config.GetDuration(cfg.Server.WriteTimeout),
	}

	go func() {
		zapLog.Info("HTTP server listening", zap.String("address", cfg.Server.Address))
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			zapLog.Fatal("http server failed", zap.Error(err))
		}
	}()

	// --- Graceful Shutdown ---
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	<-sigCh

	zapLog.Info("Shutdown signal received, draining requests...")
	shutdownCtx, cancel := context.WithTimeout(ctx, config.GetDuration(cfg.Server.ShutdownTimeout))
	defer cancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		zapLog.Error("http server shutdown failed", zap.Error(err))
	}

	zapLog.Info("modalcopy server stopped")
}
