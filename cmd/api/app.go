// ABOUTME: Component wiring shared by the serve, search and classify commands
// ABOUTME: Builds cache, provider chain, relevance filter and services from configuration

package main

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"ai-search-api/api"
	"ai-search-api/api/handlers"
	"ai-search-api/api/middleware"
	"ai-search-api/core/interfaces"
	"ai-search-api/core/relevance"
	"ai-search-api/core/search"
	"ai-search-api/core/suggestions"
	"ai-search-api/infrastructure/cache/memory"
	"ai-search-api/infrastructure/cache/redis"
	stdhttp "ai-search-api/infrastructure/http/standard"
	"ai-search-api/infrastructure/provider/pool"
	"ai-search-api/infrastructure/provider/serpapi"
	"ai-search-api/pkg/config"
	"ai-search-api/pkg/featureflags"
	"github.com/go-chi/chi/v5"
)

// application holds the long-lived components of one process
type application struct {
	cfg    *config.Config
	logger interfaces.Logger
	flags  featureflags.Manager

	search      *search.SearchService
	suggestions *suggestions.Service

	pool    *pool.Provider
	closers []func() error
}

// newApplication wires every component from cfg. Call close when done.
func newApplication(cfg *config.Config, logger interfaces.Logger, flags featureflags.Manager) (*application, error) {
	app := &application{
		cfg:    cfg,
		logger: logger,
		flags:  flags,
	}

	taxonomy := relevance.DefaultTaxonomy()
	classifier := relevance.NewClassifier(taxonomy)
	augmenter := relevance.NewAugmenter(cfg.Search.QuerySuffix)

	httpClient := stdhttp.NewStandardHTTPClient(cfg.Provider.Timeout, stdhttp.WithLogger(logger))
	serp := serpapi.NewClient(httpClient, cfg.Provider)

	if cfg.Provider.APIKey == "" {
		logger.Warn("SERPAPI_KEY is not set; search requests will fail until it is configured", nil)
	}

	workers, err := pool.New(serp, cfg.Provider.MaxConcurrent, cfg.Provider.MaxWaiting)
	if err != nil {
		return nil, fmt.Errorf("create provider pool: %w", err)
	}
	app.pool = workers

	deps := interfaces.Dependencies{
		Cache:    app.buildCache(),
		Provider: workers,
		Logger:   logger,
	}

	app.search = search.NewSearchService(deps, augmenter, classifier, search.Options{
		PageSize:        cfg.Search.PageSize,
		OverFetch:       cfg.Search.OverFetch,
		ProviderTimeout: cfg.Provider.Timeout,
		CacheTTL:        cfg.Cache.TTL,
	})
	app.suggestions = suggestions.NewService()

	return app, nil
}

// buildCache returns nil when provider caching is off
func (a *application) buildCache() interfaces.Cache {
	if !a.flags.IsEnabled(context.Background(), featureflags.ProviderCache) || a.cfg.Cache.Type == "none" {
		a.logger.Info("Provider response cache disabled", nil)
		return nil
	}

	if a.cfg.Cache.Type == "redis" {
		redisCache, err := redis.NewRedisCache(a.cfg.Cache.Redis)
		if err == nil {
			a.closers = append(a.closers, redisCache.Close)
			a.logger.Info("Using Redis cache", map[string]interface{}{
				"address": a.cfg.Cache.Redis.Address,
			})
			return redisCache
		}
		a.logger.Error("Failed to create Redis cache, falling back to memory", map[string]interface{}{
			"error": err.Error(),
		})
	}

	a.logger.Info("Using memory cache", map[string]interface{}{
		"ttl": a.cfg.Cache.TTL.String(),
	})
	return memory.NewMemoryCache(a.cfg.Cache.TTL)
}

// router builds the HTTP handler with all routes registered
func (a *application) router() chi.Router {
	apiConfig := api.APIConfig{Logger: a.logger}

	if a.flags.IsEnabled(context.Background(), featureflags.RateLimit) && a.cfg.RateLimit.RequestsPerSecond > 0 {
		limiter := middleware.NewRateLimiter(a.cfg.RateLimit.RequestsPerSecond, a.cfg.RateLimit.Burst,
			middleware.WithTrustedProxyHeaders(a.cfg.RateLimit.TrustProxy))
		a.closers = append(a.closers, func() error {
			limiter.Close()
			return nil
		})
		apiConfig.RateLimiter = limiter
	}

	humaAPI, router := api.NewAPIWithMiddleware(apiConfig)

	handlers.NewHealthHandler().RegisterRoutes(humaAPI)
	handlers.NewSearchHandler(a.search, a.logger).RegisterRoutes(humaAPI)
	handlers.NewSuggestionsHandler(a.suggestions).RegisterRoutes(humaAPI)

	return router
}

// httpServer wraps the router with the server timeouts
func (a *application) httpServer() *http.Server {
	return &http.Server{
		Addr:              ":" + a.cfg.Server.Port,
		Handler:           a.router(),
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       15 * time.Second,
		// Leave room for the provider call
		WriteTimeout: a.cfg.Provider.Timeout + 10*time.Second,
		IdleTimeout:  60 * time.Second,
	}
}

// close releases the worker pool and any cache connections
func (a *application) close() {
	if a.pool != nil {
		if err := a.pool.Release(5 * time.Second); err != nil {
			a.logger.Warn("Provider pool did not drain in time", map[string]interface{}{
				"error": err.Error(),
			})
		}
	}
	for _, c := range a.closers {
		if err := c(); err != nil {
			a.logger.Warn("Failed to close component", map[string]interface{}{
				"error": err.Error(),
			})
		}
	}
}
