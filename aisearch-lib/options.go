// ABOUTME: Configuration options for the AI search library client
// ABOUTME: Provides functional options pattern for flexible client configuration

package aisearch

import (
	"time"

	"ai-search-api/core/interfaces"
)

// Option is a functional option for configuring the client
type Option func(*Config) error

// WithAPIKey sets the SerpAPI credential
func WithAPIKey(key string) Option {
	return func(c *Config) error {
		c.Provider.APIKey = key
		return nil
	}
}

// WithBaseURL points the client at a different SerpAPI-compatible endpoint
func WithBaseURL(baseURL string) Option {
	return func(c *Config) error {
		if baseURL == "" {
			return NewError(ErrorTypeConfiguration, "base URL cannot be empty")
		}
		c.Provider.BaseURL = baseURL
		return nil
	}
}

// WithProvider replaces the SerpAPI client entirely
func WithProvider(provider interfaces.SearchProvider) Option {
	return func(c *Config) error {
		c.SearchProvider = provider
		return nil
	}
}

// WithCache sets a custom cache implementation
func WithCache(cache interfaces.Cache) Option {
	return func(c *Config) error {
		c.Cache = cache
		return nil
	}
}

// WithLogger sets a custom logger
func WithLogger(logger interfaces.Logger) Option {
	return func(c *Config) error {
		c.Logger = logger
		return nil
	}
}

// WithTimeout bounds each provider call
func WithTimeout(timeout time.Duration) Option {
	return func(c *Config) error {
		if timeout <= 0 {
			return NewError(ErrorTypeValidation, "timeout must be positive")
		}
		c.Provider.Timeout = timeout
		return nil
	}
}

// WithTaxonomy replaces the built-in keyword, core term and domain lists
func WithTaxonomy(keywords, coreTerms, domains []string) Option {
	return func(c *Config) error {
		c.Keywords, c.CoreTerms, c.Domains = keywords, coreTerms, domains
		return nil
	}
}

// WithQuerySuffix replaces the text appended to every query
func WithQuerySuffix(suffix string) Option {
	return func(c *Config) error {
		c.QuerySuffix = suffix
		return nil
	}
}

// WithPageSize sets results per page and how many raw results are requested
func WithPageSize(pageSize, overFetch int) Option {
	return func(c *Config) error {
		if pageSize < 1 || overFetch < pageSize {
			return NewError(ErrorTypeValidation, "page size must be positive and not exceed over-fetch")
		}
		c.PageSize, c.OverFetch = pageSize, overFetch
		return nil
	}
}
