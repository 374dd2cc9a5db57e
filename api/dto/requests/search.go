// ABOUTME: Request DTOs for search-related API endpoints
// ABOUTME: Provides validation and default values for incoming requests

package requests

// DefaultPage is used when the client omits page
const DefaultPage = 1

// SearchRequest represents the request body for a search
type SearchRequest struct {
	// Query is the user's search text
	Query string `json:"query" minLength:"1" maxLength:"500" doc:"Search query text"`

	// Page is the page number for pagination (1-based)
	Page int `json:"page,omitempty" minimum:"1" default:"1" doc:"Page number (1-based)"`
}

// ApplyDefaults sets default values for optional fields
func (r *SearchRequest) ApplyDefaults() {
	if r.Page == 0 {
		r.Page = DefaultPage
	}
}
