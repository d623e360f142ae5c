// ABOUTME: Main entry point for the Catalog API server
// ABOUTME: Wires together all components and starts the HTTP server

package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"catalog-app-api/api"
	"catalog-app-api/api/handlers"
	"catalog-app-api/core/catalog"
	"catalog-app-api/core/interfaces"
	"catalog-app-api/core/stats"
	"catalog-app-api/infrastructure/cache/memory"
	"catalog-app-api/infrastructure/logger/structured"
	"catalog-app-api/infrastructure/storage/file"
	"catalog-app-api/infrastructure/watch/fswatch"
	"catalog-app-api/pkg/config"
	"catalog-app-api/pkg/featureflags"
)

func main() {
	// Load configuration
	cfg, err := config.LoadFromEnv()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Validate configuration
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	// Create logger
	logger := structured.NewLogrusLogger(cfg.Logging.Level)
	logger.Info("Starting Catalog API", map[string]interface{}{
		"port":         cfg.Server.Port,
		"catalog_path": cfg.Catalog.Path,
		"snapshot_ttl": cfg.Catalog.SnapshotTTLSeconds,
		"stats_ttl":    cfg.Catalog.StatsTTLSeconds,
	})

	// Feature flags
	flags := featureflags.NewEnvManager("FEATURE_")
	logger.Debug("Feature flags", map[string]interface{}{
		"flags": flags.GetAllFlags(),
	})
	flagCtx := context.Background()

	// Create backing store
	store, err := file.NewStore(cfg.Catalog.Path)
	if err != nil {
		log.Fatalf("Failed to create backing store: %v", err)
	}

	// Create memoization cache
	queryCache := memory.NewMemoryCache(
		catalog.FilterCacheTTL,
		time.Duration(cfg.Catalog.QueryCacheCleanupSeconds)*time.Second,
	)

	// Create dependencies container
	deps := interfaces.Dependencies{
		Cache:  queryCache,
		Logger: logger,
	}

	// Create snapshot pipeline
	loader := catalog.NewSnapshotLoader(store, logger)
	snapshotCache := catalog.NewSnapshotCache(
		loader,
		time.Duration(cfg.Catalog.SnapshotTTLSeconds)*time.Second,
		logger,
		catalog.WithServeStale(flags.IsEnabled(flagCtx, featureflags.ServeStaleOnRefreshFailure)),
	)

	// Create stats pipeline with a change watch over the backing file
	watcher := fswatch.NewWatcher(logger)
	statsCache := stats.NewStatsCache(
		snapshotCache,
		time.Duration(cfg.Catalog.StatsTTLSeconds)*time.Second,
		logger,
		stats.WithWatch(watcher, store.Path()),
	)
	defer func() {
		if err := statsCache.Close(); err != nil {
			logger.Warn("Failed to close change watch", map[string]interface{}{
				"error": err.Error(),
			})
		}
	}()

	// Create services
	catalogService := catalog.NewCatalogService(deps, snapshotCache)
	statsService := stats.NewStatsService(deps, statsCache)

	// Create API with middleware
	apiConfig := api.APIConfig{
		Logger:     logger,
		RateWindow: time.Minute,
	}
	if flags.IsEnabled(flagCtx, featureflags.RateLimitEnabled) {
		apiConfig.RateLimit = cfg.Server.RateLimit
	}
	humaAPI, router := api.NewAPIWithMiddleware(apiConfig)

	// Create and register handlers
	catalogHandler := handlers.NewCatalogHandler(catalogService)
	catalogHandler.RegisterRoutes(humaAPI)

	if flags.IsEnabled(flagCtx, featureflags.StatsEnabled) {
		statsHandler := handlers.NewStatsHandler(statsService)
		statsHandler.RegisterRoutes(humaAPI)
	}

	// Create HTTP server
	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Start server in a goroutine
	go func() {
		logger.Info("HTTP server starting", map[string]interface{}{
			"address": srv.Addr,
		})
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("HTTP server error", map[string]interface{}{
				"error": err.Error(),
			})
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...", nil)

	// Graceful shutdown with timeout
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("Server forced to shutdown", map[string]interface{}{
			"error": err.Error(),
		})
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	logger.Info("Server stopped", nil)
}
