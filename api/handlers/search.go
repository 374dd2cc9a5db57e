// ABOUTME: Search handler for the Huma API
// ABOUTME: Runs the relevance-filtered search pipeline for one page of results

package handlers

import (
	"context"
	"net/http"

	"ai-search-api/api/dto/mappers"
	"ai-search-api/api/dto/requests"
	"ai-search-api/api/dto/responses"
	"ai-search-api/core/interfaces"
	"ai-search-api/pkg/requestid"
	"github.com/danielgtaylor/huma/v2"
)

// SearchHandler handles search requests
type SearchHandler struct {
	searchService interfaces.SearchService
	logger        interfaces.Logger
}

// NewSearchHandler creates a new search handler
func NewSearchHandler(searchService interfaces.SearchService, logger interfaces.Logger) *SearchHandler {
	return &SearchHandler{
		searchService: searchService,
		logger:        logger,
	}
}

// RegisterRoutes registers search routes
func (h *SearchHandler) RegisterRoutes(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "search",
		Method:      http.MethodPost,
		Path:        "/api/search",
		Summary:     "Search the web for AI content",
		Description: "Runs a web search biased toward AI topics and returns only results classified as AI-relevant",
		Tags:        []string{"Search"},
	}, h.Search)
}

// SearchInput defines the input for the Search operation
type SearchInput struct {
	Body requests.SearchRequest
}

// SearchOutput defines the output for the Search operation
type SearchOutput struct {
	Body responses.SearchResponse
}

// Search handles the POST /api/search endpoint
func (h *SearchHandler) Search(ctx context.Context, input *SearchInput) (*SearchOutput, error) {
	input.Body.ApplyDefaults()

	page, err := h.searchService.Search(ctx, input.Body.Query, input.Body.Page)
	if err != nil {
		if isServerError(err) && h.logger != nil {
			h.logger.Error("Search failed", map[string]interface{}{
				"request_id": requestid.FromContext(ctx),
				"page":       input.Body.Page,
				"error":      err.Error(),
			})
		}
		return nil, toHumaError(err)
	}

	return &SearchOutput{Body: *mappers.ToSearchResponse(page)}, nil
}
