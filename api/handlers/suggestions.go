// ABOUTME: Suggestions handler for the Huma API
// ABOUTME: Returns canned AI query suggestions filtered by a prefix fragment

package handlers

import (
	"context"
	"net/http"

	"ai-search-api/api/dto/responses"
	"ai-search-api/core/interfaces"
	"github.com/danielgtaylor/huma/v2"
)

// SuggestionsHandler handles suggestion requests
type SuggestionsHandler struct {
	suggestionService interfaces.SuggestionService
}

// NewSuggestionsHandler creates a new suggestions handler
func NewSuggestionsHandler(suggestionService interfaces.SuggestionService) *SuggestionsHandler {
	return &SuggestionsHandler{suggestionService: suggestionService}
}

// RegisterRoutes registers suggestion routes
func (h *SuggestionsHandler) RegisterRoutes(api huma.API) {
	huma.Register(api, huma.Operation{
		OperationID: "getSuggestions",
		Method:      http.MethodGet,
		Path:        "/api/suggestions",
		Summary:     "Get query suggestions",
		Description: "Returns up to five AI-related query suggestions matching the fragment",
		Tags:        []string{"Search"},
	}, h.GetSuggestions)
}

// SuggestionsInput defines the input for the GetSuggestions operation
type SuggestionsInput struct {
	Query string `query:"q" doc:"Partial query text"`
}

// SuggestionsOutput defines the output for the GetSuggestions operation
type SuggestionsOutput struct {
	Body responses.SuggestionsResponse
}

// GetSuggestions handles the GET /api/suggestions endpoint
func (h *SuggestionsHandler) GetSuggestions(ctx context.Context, input *SuggestionsInput) (*SuggestionsOutput, error) {
	suggestions := h.suggestionService.Suggest(input.Query)
	if suggestions == nil {
		suggestions = []string{}
	}
	return &SuggestionsOutput{
		Body: responses.SuggestionsResponse{Suggestions: suggestions},
	}, nil
}
