// ABOUTME: Suggestion service returns canned topic queries for search-box autocompletion
// ABOUTME: Filters a fixed list with a case-insensitive substring match

package suggestions

import "strings"

// DefaultLimit is the maximum number of suggestions returned
const DefaultLimit = 5

var defaultSuggestions = []string{
	"OpenAI ChatGPT",
	"Anthropic Claude",
	"Google Gemini",
	"Midjourney AI art",
	"Stable Diffusion",
	"Hugging Face transformers",
	"LangChain development",
	"AI code generation",
	"Machine learning tutorials",
	"AI news and updates",
}

// Service holds an immutable suggestion list
type Service struct {
	entries []string
	limit   int
}

// NewService creates a suggestion service over the default list
func NewService() *Service {
	return NewServiceWithEntries(defaultSuggestions, DefaultLimit)
}

// NewServiceWithEntries creates a suggestion service over a custom list
func NewServiceWithEntries(entries []string, limit int) *Service {
	if limit <= 0 {
		limit = DefaultLimit
	}
	return &Service{
		entries: append([]string(nil), entries...),
		limit:   limit,
	}
}

// Suggest returns up to limit entries containing query, case-insensitively,
// in list order. An empty query returns the head of the list.
func (s *Service) Suggest(query string) []string {
	if query == "" {
		return append([]string{}, s.entries[:min(s.limit, len(s.entries))]...)
	}

	q := strings.ToLower(query)
	out := []string{}
	for _, e := range s.entries {
		if strings.Contains(strings.ToLower(e), q) {
			out = append(out, e)
			if len(out) == s.limit {
				break
			}
		}
	}
	return out
}
