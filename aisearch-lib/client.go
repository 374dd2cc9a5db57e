// ABOUTME: Main client for the AI search library providing filtered web search
// ABOUTME: Offers a clean API for using core functionality without HTTP dependencies

package aisearch

import (
	"context"
	"sync"

	"ai-search-api/core/interfaces"
	"ai-search-api/core/relevance"
	"ai-search-api/core/search"
	"ai-search-api/core/suggestions"
	"ai-search-api/infrastructure/cache/memory"
	stdhttp "ai-search-api/infrastructure/http/standard"
	"ai-search-api/infrastructure/provider/serpapi"
	"ai-search-api/pkg/config"
)

// Config holds the configuration for the client
type Config struct {
	// Provider configures the built-in SerpAPI client
	Provider config.ProviderConfig

	// SearchProvider overrides the SerpAPI client when set
	SearchProvider interfaces.SearchProvider

	// Cache stores provider responses; defaults to an in-memory cache
	Cache interfaces.Cache

	// Logger defaults to a silent logger
	Logger interfaces.Logger

	// Keywords, CoreTerms and Domains override the built-in taxonomy when Keywords is set
	Keywords  []string
	CoreTerms []string
	Domains   []string

	QuerySuffix string
	PageSize    int
	OverFetch   int
}

// Client is the main entry point for the AI search library
type Client struct {
	search      *search.SearchService
	classifier  *relevance.Classifier
	suggestions *suggestions.Service

	mu     sync.RWMutex
	closed bool
}

// NewClient creates a new client with the given options
func NewClient(options ...Option) (*Client, error) {
	cfg := defaultConfig()

	for _, opt := range options {
		if err := opt(&cfg); err != nil {
			return nil, err
		}
	}

	taxonomy := relevance.DefaultTaxonomy()
	if len(cfg.Keywords) > 0 {
		custom, err := relevance.NewTaxonomy(cfg.Keywords, cfg.CoreTerms, cfg.Domains)
		if err != nil {
			return nil, &Error{Type: ErrorTypeConfiguration, Message: "invalid taxonomy", Cause: err}
		}
		taxonomy = custom
	}
	classifier := relevance.NewClassifier(taxonomy)

	provider := cfg.SearchProvider
	if provider == nil {
		provider = serpapi.NewClient(stdhttp.NewStandardHTTPClient(cfg.Provider.Timeout), cfg.Provider)
	}

	deps := interfaces.Dependencies{
		Cache:    cfg.Cache,
		Provider: provider,
		Logger:   cfg.Logger,
	}

	return &Client{
		search: search.NewSearchService(deps, relevance.NewAugmenter(cfg.QuerySuffix), classifier, search.Options{
			PageSize:        cfg.PageSize,
			OverFetch:       cfg.OverFetch,
			ProviderTimeout: cfg.Provider.Timeout,
		}),
		classifier:  classifier,
		suggestions: suggestions.NewService(),
	}, nil
}

func defaultConfig() Config {
	return Config{
		Provider: config.ProviderConfig{
			BaseURL:  "https://serpapi.com/search.json",
			Engine:   "google",
			Country:  "us",
			Language: "en",
			Timeout:  search.DefaultOptions().ProviderTimeout,
		},
		Cache:       memory.NewMemoryCache(search.DefaultOptions().CacheTTL),
		QuerySuffix: relevance.DefaultQuerySuffix,
	}
}

// Close marks the client closed; later calls return ErrClientClosed
func (c *Client) Close() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.closed = true
	return nil
}

func (c *Client) isClosed() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.closed
}

// Search returns one page of AI-relevant results for query
func (c *Client) Search(ctx context.Context, query string, page int) (*Page, error) {
	if c.isClosed() {
		return nil, ErrClientClosed
	}

	result, err := c.search.Search(ctx, query, page)
	if err != nil {
		return nil, fromCore(err)
	}
	return pageFromDomain(result), nil
}

// Classify reports whether a single result would be kept
func (c *Client) Classify(title, snippet, link string) Verdict {
	return verdictFromRelevance(c.classifier.Evaluate(title, snippet, link))
}

// Suggest returns canned query suggestions matching fragment
func (c *Client) Suggest(fragment string) []string {
	return c.suggestions.Suggest(fragment)
}
