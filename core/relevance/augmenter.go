// ABOUTME: Query augmentation that biases a general-purpose provider toward the topic domain
// ABOUTME: Appends a fixed suffix of domain-signal terms to the user's query

package relevance

import "strings"

// DefaultQuerySuffix names the target domain and its principal subfields
const DefaultQuerySuffix = "AI artificial intelligence machine learning"

// Augmenter rewrites user queries. It is a pure function of its suffix.
type Augmenter struct {
	suffix string
}

// NewAugmenter creates an augmenter; an empty suffix falls back to DefaultQuerySuffix
func NewAugmenter(suffix string) *Augmenter {
	suffix = strings.TrimSpace(suffix)
	if suffix == "" {
		suffix = DefaultQuerySuffix
	}
	return &Augmenter{suffix: suffix}
}

// Augment appends the domain suffix to the query, separated by a space
func (a *Augmenter) Augment(query string) string {
	return query + " " + a.suffix
}

// Suffix returns the configured suffix
func (a *Augmenter) Suffix() string {
	return a.suffix
}
