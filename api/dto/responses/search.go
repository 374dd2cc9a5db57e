// ABOUTME: Response DTOs for search, suggestion and health endpoints
// ABOUTME: Fixes the JSON field names consumed by the web front end

package responses

// SearchResultResponse is one relevant result
type SearchResultResponse struct {
	Title         string `json:"title"`
	Link          string `json:"link"`
	Snippet       string `json:"snippet"`
	DisplayedLink string `json:"displayed_link"`
	Position      int    `json:"position"`
}

// SearchResponse is the body of a successful search
type SearchResponse struct {
	Results      []SearchResultResponse `json:"results"`
	TotalResults int                    `json:"total_results"`

	// SearchTime is the elapsed wall-clock time in seconds
	SearchTime float64 `json:"search_time"`
	Query      string  `json:"query"`
}

// SuggestionsResponse lists query suggestions
type SuggestionsResponse struct {
	Suggestions []string `json:"suggestions"`
}

// HealthResponse reports liveness
type HealthResponse struct {
	Status  string `json:"status"`
	Message string `json:"message"`
}
