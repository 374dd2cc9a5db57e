// ABOUTME: Rule-based relevance classifier for search results
// ABOUTME: Decides from title, snippet and link alone whether a result belongs to the topic domain

package relevance

import "strings"

// Reasons reported in a Verdict
const (
	ReasonDomain     = "domain"
	ReasonKeywords   = "keywords"
	ReasonCoreTerm   = "core_term"
	ReasonNoEvidence = "insufficient_evidence"
)

// Verdict explains a classification decision
type Verdict struct {
	Relevant bool

	// Reason is one of the Reason* constants
	Reason string

	// Domain is the allowlist entry found in the link, if any
	Domain string

	// Keywords lists each matched keyword once, in taxonomy order
	Keywords []string

	// CoreTerm is true when the text contains at least one core term
	CoreTerm bool
}

// Classifier applies a Taxonomy to individual results. It holds no mutable
// state and is safe for concurrent use.
type Classifier struct {
	taxonomy *Taxonomy
}

// NewClassifier creates a classifier over the given taxonomy
func NewClassifier(taxonomy *Taxonomy) *Classifier {
	return &Classifier{taxonomy: taxonomy}
}

// IsRelevant reports whether a result belongs to the topic domain
func (c *Classifier) IsRelevant(title, snippet, link string) bool {
	return c.Evaluate(title, snippet, link).Relevant
}

// Evaluate classifies a result and reports the evidence used.
//
// Matching is case-insensitive substring matching without word boundaries, so
// "gan" also matches inside "organic". Any allowlisted domain in the link wins
// outright. Otherwise a result is relevant with two or more distinct keyword
// matches, or with one match when a core term is present.
func (c *Classifier) Evaluate(title, snippet, link string) Verdict {
	text := strings.ToLower(title + " " + snippet)
	domain := strings.ToLower(link)

	for _, d := range c.taxonomy.domains {
		if strings.Contains(domain, d) {
			return Verdict{Relevant: true, Reason: ReasonDomain, Domain: d}
		}
	}

	var matched []string
	for _, kw := range c.taxonomy.keywords {
		if strings.Contains(text, kw) {
			matched = append(matched, kw)
		}
	}

	hasCore := false
	for _, term := range c.taxonomy.coreTerms {
		if strings.Contains(text, term) {
			hasCore = true
			break
		}
	}

	v := Verdict{Keywords: matched, CoreTerm: hasCore, Reason: ReasonNoEvidence}
	switch {
	case len(matched) >= 2:
		v.Relevant = true
		v.Reason = ReasonKeywords
	case len(matched) >= 1 && hasCore:
		v.Relevant = true
		v.Reason = ReasonCoreTerm
	}
	return v
}
