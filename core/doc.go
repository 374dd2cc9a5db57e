// Package core contains the business logic for the AI Search Engine API.
// It is designed to be framework-agnostic and can be used independently
// of any web framework or infrastructure concerns.
//
// The core package is organized into several sub-packages:
//
// - domain: Raw provider results, classified results and result pages
// - relevance: Taxonomy, classifier and query augmenter
// - search: The augment, fetch, classify and rank pipeline
// - suggestions: Canned query suggestions
// - errors: Configuration, provider and validation error types
// - interfaces: Contracts for external dependencies (cache, provider, logger)
//
// # Usage Example
//
//	import (
//	    "ai-search-api/core/interfaces"
//	    "ai-search-api/core/relevance"
//	    "ai-search-api/core/search"
//	)
//
//	deps := interfaces.Dependencies{
//	    Cache:    myCache,    // implements interfaces.Cache, may be nil
//	    Provider: myProvider, // implements interfaces.SearchProvider
//	    Logger:   myLogger,   // implements interfaces.Logger
//	}
//
//	svc := search.NewSearchService(deps,
//	    relevance.NewAugmenter(relevance.DefaultQuerySuffix),
//	    relevance.NewClassifier(relevance.DefaultTaxonomy()),
//	    search.DefaultOptions())
//
//	page, err := svc.Search(ctx, "vector databases", 1)
package core
