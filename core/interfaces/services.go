// ABOUTME: Service interfaces for the core business logic
// ABOUTME: Defines contracts between the search pipeline, the upstream provider and the API layer

package interfaces

import (
	"context"

	"ai-search-api/core/domain"
)

// ProviderRequest describes one upstream fetch
type ProviderRequest struct {
	// Query is the already augmented query
	Query string

	// Offset is the zero-based index of the first requested result
	Offset int

	// Num is the number of raw results requested
	Num int
}

// SearchProvider fetches raw organic results from an upstream web search service.
// Results are returned in provider order.
type SearchProvider interface {
	FetchRawResults(ctx context.Context, req ProviderRequest) ([]domain.RawResult, error)
}

// SearchService runs the augment, fetch, classify and rank pipeline
type SearchService interface {
	Search(ctx context.Context, query string, page int) (*domain.ResultPage, error)
}

// SuggestionService returns query suggestions
type SuggestionService interface {
	Suggest(query string) []string
}
