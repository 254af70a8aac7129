// ABOUTME: Main entry point for the webfetch API server
// ABOUTME: Wires together all components and starts the HTTP server

package main

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"webfetch-api/api"
	"webfetch-api/api/handlers"
	"webfetch-api/core/apiadapter"
	coreconfig "webfetch-api/core/config"
	"webfetch-api/core/connectivity"
	"webfetch-api/core/extract"
	"webfetch-api/core/interfaces"
	"webfetch-api/core/retrieval"
	"webfetch-api/core/tools"
	"webfetch-api/infrastructure/cache/memory"
	"webfetch-api/infrastructure/cache/redis"
	"webfetch-api/infrastructure/cache/sqlite"
	collyfetch "webfetch-api/infrastructure/http/colly"
	"webfetch-api/infrastructure/http/standard"
	logruslogger "webfetch-api/infrastructure/logger/logrus"
	"webfetch-api/pkg/config"
	"webfetch-api/pkg/featureflags"
)

func main() {
	// A missing .env is normal outside development
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		log.Fatalf("Failed to read .env: %v", err)
	}

	cfg, err := config.LoadFromEnv()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}

	logger := logruslogger.NewLogger(cfg.Log.Level, cfg.Log.Format)
	logger.Info("Starting webfetch API", map[string]interface{}{
		"port":       cfg.Server.Port,
		"cache_type": cfg.Cache.Type,
		"capacity":   cfg.Cache.Capacity,
		"fetcher":    cfg.Fetch.Type,
	})

	flags := featureflags.NewEnvManager("FEATURE_", featureflags.Defaults)
	ctx := context.Background()

	store, closeStore := newStore(cfg, logger)
	defer closeStore()

	apiClient := standard.NewStandardHTTPClient(standard.Options{
		Timeout:      cfg.Fetch.APITimeout,
		MaxRedirects: cfg.Fetch.MaxRedirects,
		UserAgent:    cfg.Fetch.UserAgent,
	})

	extractor := extract.NewExtractor(logger, coreconfig.FromFlags(ctx, flags)...)
	prober := connectivity.NewProber(apiClient, logger, connectivity.Options{
		ProbeURL: cfg.Connectivity.ProbeURL,
		Timeout:  cfg.Connectivity.Timeout,
		TTL:      cfg.Connectivity.TTL,
	})
	adapter := apiadapter.NewAdapter(apiClient, logger, cfg.Registry, apiadapter.Options{
		GitHubBaseURL:     cfg.API.GitHubBaseURL,
		HackerNewsBaseURL: cfg.API.HackerNewsBaseURL,
		StoryCount:        cfg.API.StoryCount,
		Timeout:           cfg.Fetch.APITimeout,
	})

	engine, err := retrieval.NewEngine(interfaces.Dependencies{
		Store:     store,
		Fetcher:   newFetcher(cfg),
		Extractor: extractor,
		API:       adapter,
		Prober:    prober,
		Logger:    logger,
	}, retrieval.Options{
		Registry:    cfg.Registry,
		PageTimeout: cfg.Fetch.PageTimeout,
	})
	if err != nil {
		log.Fatalf("Failed to create retrieval engine: %v", err)
	}

	apiConfig := api.APIConfig{Logger: logger}
	if flags.IsEnabled(ctx, featureflags.RateLimitEnabled) {
		apiConfig.RateLimit = cfg.Server.RateLimit
		apiConfig.RateWindow = cfg.Server.RateWindow
	}
	humaAPI, router := api.NewAPI(apiConfig)

	handlers.NewToolsHandler(tools.NewDispatcher(engine)).RegisterRoutes(humaAPI)
	handlers.NewHealthHandler(store, prober, logger).RegisterRoutes(humaAPI)

	// WriteTimeout must outlast a page fetch plus API fallbacks
	srv := &http.Server{
		Addr:         ":" + cfg.Server.Port,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: cfg.Fetch.PageTimeout + cfg.Fetch.APITimeout + 15*time.Second,
		IdleTimeout:  60 * time.Second,
	}

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

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...", nil)

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("Server forced to shutdown", map[string]interface{}{
			"error": err.Error(),
		})
	}

	logger.Info("Server stopped", nil)
}

// newStore builds the configured content store, falling back to memory when
// an external backend is unavailable
func newStore(cfg *config.Config, logger interfaces.Logger) (interfaces.ContentStore, func()) {
	fallback := func(err error) (interfaces.ContentStore, func()) {
		logger.Error("Failed to create cache store, falling back to memory", map[string]interface{}{
			"cache_type": cfg.Cache.Type,
			"error":      err.Error(),
		})
		return memory.NewStore(cfg.Cache.Capacity), func() {}
	}

	switch cfg.Cache.Type {
	case "redis":
		store, err := redis.NewStore(cfg.Cache.Redis, cfg.Cache.Capacity)
		if err != nil {
			return fallback(err)
		}
		logger.Info("Using Redis cache", map[string]interface{}{
			"address": cfg.Cache.Redis.Address,
		})
		return store, func() { store.Close() }

	case "sqlite":
		store, err := sqlite.NewStore(cfg.Cache.SQLite.Path, cfg.Cache.Capacity, sqlite.WithLogger(logger))
		if err != nil {
			return fallback(err)
		}
		logger.Info("Using SQLite cache", map[string]interface{}{
			"path": cfg.Cache.SQLite.Path,
		})
		return store, func() { store.Close() }

	default:
		logger.Info("Using memory cache", nil)
		return memory.NewStore(cfg.Cache.Capacity), func() {}
	}
}

func newFetcher(cfg *config.Config) interfaces.PageFetcher {
	if cfg.Fetch.Type == "colly" {
		return collyfetch.NewPageFetcher(collyfetch.Options{
			Timeout:      cfg.Fetch.PageTimeout,
			MaxRedirects: cfg.Fetch.MaxRedirects,
			MaxBodyBytes: cfg.Fetch.MaxBodyBytes,
			UserAgent:    cfg.Fetch.UserAgent,
		})
	}

	client := standard.NewStandardHTTPClient(standard.Options{
		Timeout:      cfg.Fetch.PageTimeout,
		MaxRedirects: cfg.Fetch.MaxRedirects,
		UserAgent:    cfg.Fetch.UserAgent,
	})
	return standard.NewPageFetcher(client, cfg.Fetch.MaxBodyBytes)
}

func init() {
	fmt.Println(`
               __       ____     __       __
 _      _____ / /_     / __/__  / /______/ /_
| | /| / / _ \/ __ \   / /_/ _ \/ __/ ___/ __ \
| |/ |/ /  __/ /_/ /  / __/  __/ /_/ /__/ / / /
|__/|__/\___/_.___/  /_/  \___/\__/\___/_/ /_/
	`)
}
