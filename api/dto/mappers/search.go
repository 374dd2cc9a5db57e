// ABOUTME: Mappers for converting between domain models and API DTOs
// ABOUTME: Provides clean separation between the search pipeline and the API layer

package mappers

import (
	"ai-search-api/api/dto/responses"
	"ai-search-api/core/domain"
)

// ToSearchResponse converts a domain ResultPage to a SearchResponse DTO.
// Results is never nil so an empty page serializes as [].
func ToSearchResponse(page *domain.ResultPage) *responses.SearchResponse {
	if page == nil {
		return &responses.SearchResponse{Results: []responses.SearchResultResponse{}}
	}

	response := &responses.SearchResponse{
		Results:      make([]responses.SearchResultResponse, 0, len(page.Results)),
		TotalResults: page.TotalResults,
		SearchTime:   page.SearchTime.Seconds(),
		Query:        page.Query,
	}

	for _, result := range page.Results {
		response.Results = append(response.Results, ToSearchResultResponse(result))
	}

	return response
}

// ToSearchResultResponse converts a single classified result
func ToSearchResultResponse(result domain.ClassifiedResult) responses.SearchResultResponse {
	return responses.SearchResultResponse{
		Title:         result.Title,
		Link:          result.Link,
		Snippet:       result.Snippet,
		DisplayedLink: result.DisplayedLink,
		Position:      result.Position,
	}
}
