// ABOUTME: Search domain models for provider results and classified result pages
// ABOUTME: Defines the structures flowing from the upstream provider through the relevance filter

package domain

import "time"

// NoDescription replaces an empty snippet on a classified result
const NoDescription = "No description available"

// RawResult is a single organic result as returned by the upstream provider
type RawResult struct {
	// Title is the result title
	Title string `json:"title"`

	// Link is the result URL
	Link string `json:"link"`

	// Snippet is the provider's text excerpt, possibly empty
	Snippet string `json:"snippet"`

	// DisplayedLink is the human-readable link shown by the provider
	DisplayedLink string `json:"displayed_link"`
}

// IsComplete reports whether the result carries the mandatory title and link
func (r RawResult) IsComplete() bool {
	return r.Title != "" && r.Link != ""
}

// ClassifiedResult is a raw result that passed the relevance filter
type ClassifiedResult struct {
	Title         string
	Link          string
	Snippet       string
	DisplayedLink string

	// Position is the 1-based rank among kept results
	Position int
}

// NewClassifiedResult builds a ranked result from a raw one, applying field defaults
func NewClassifiedResult(raw RawResult, position int) ClassifiedResult {
	snippet := raw.Snippet
	if snippet == "" {
		snippet = NoDescription
	}

	displayed := raw.DisplayedLink
	if displayed == "" {
		displayed = raw.Link
	}

	return ClassifiedResult{
		Title:         raw.Title,
		Link:          raw.Link,
		Snippet:       snippet,
		DisplayedLink: displayed,
		Position:      position,
	}
}

// ResultPage is the outcome of one search pipeline run
type ResultPage struct {
	// Results holds at most one page of relevant results in rank order
	Results []ClassifiedResult

	// TotalResults is len(Results)
	TotalResults int

	// SearchTime is the wall-clock time of the whole operation
	SearchTime time.Duration

	// Query echoes the user's query before augmentation
	Query string
}
