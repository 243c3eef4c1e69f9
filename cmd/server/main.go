package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/tebramedicals/medtech-site/config"
	httpDelivery "github.com/tebramedicals/medtech-site/internal/delivery/http"
	"github.com/tebramedicals/medtech-site/internal/infrastructure/cache"
	"github.com/tebramedicals/medtech-site/internal/infrastructure/registry"
	"github.com/tebramedicals/medtech-site/internal/infrastructure/sink"
	"github.com/tebramedicals/medtech-site/internal/logger"
	"github.com/tebramedicals/medtech-site/internal/metrics"
	"github.com/tebramedicals/medtech-site/internal/usecase"
	"go.uber.org/zap"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	zl, err := logger.New(cfg.Logger)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer func() { _ = zl.Sync() }()

	if err := run(cfg, zl); err != nil {
		zl.Fatal("server stopped with error", zap.Error(err))
	}
}

func run(cfg *config.Config, zl *zap.Logger) error {
	zl.Info("starting medtech-site",
		zap.String("version", httpDelivery.Version),
		zap.String("environment", cfg.Server.Environment),
		zap.String("port", cfg.Server.Port),
		zap.Duration("cache_ttl", cfg.Cache.TTL),
	)

	// Initialize infrastructure dependencies
	memoryCache := cache.NewMemoryCache(cache.DefaultCleanupInterval, cfg.Cache.MaxEntries)
	defer memoryCache.Close()

	products := registry.NewStatic()

	// Initialize usecase layer
	catalogService := usecase.NewCatalogService(
		products,
		memoryCache,
		zl.Named("catalog"),
		usecase.CatalogServiceConfig{CacheTTL: cfg.Cache.TTL},
	)
	contactService := usecase.NewContactService(sink.NewLogSink(zl.Named("contact")))

	if report := catalogService.Categories(); !report.Consistent() {
		zl.Warn("category selector does not match product data",
			zap.Strings("labels_without_products", report.UnmatchedLabels),
			zap.Strings("categories_without_label", report.UnreachableCategories),
		)
	}

	// Create HTTP handler with dependencies
	handler := httpDelivery.NewHandler(catalogService, contactService, zl.Named("http"))

	router, err := httpDelivery.SetupRouter(cfg, handler)
	if err != nil {
		return err
	}

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%s", cfg.Server.Port),
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	servers := []*http.Server{srv}
	if cfg.Metrics.Enabled {
		servers = append(servers, metrics.NewServer(cfg.Metrics.Port))
	}

	errCh := make(chan error, len(servers))
	for _, s := range servers {
		go func(s *http.Server) {
			zl.Info("listening", zap.String("addr", s.Addr))
			if err := s.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				errCh <- fmt.Errorf("listen on %s: %w", s.Addr, err)
			}
		}(s)
	}

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	var runErr error
	select {
	case sig := <-quit:
		zl.Info("shutdown signal received", zap.String("signal", sig.String()))
	case runErr = <-errCh:
		zl.Error("server failed", zap.Error(runErr))
	}

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
	defer cancel()

	for _, s := range servers {
		if err := s.Shutdown(ctx); err != nil {
			zl.Error("graceful shutdown failed", zap.String("addr", s.Addr), zap.Error(err))
			if runErr == nil {
				runErr = err
			}
		}
	}

	zl.Info("server exited")
	return runErr
}
