// ABOUTME: Public types for the AI search library API
// ABOUTME: Provides user-friendly types that wrap internal domain models

package aisearch

import (
	"time"

	"ai-search-api/core/domain"
	"ai-search-api/core/relevance"
)

// Result is one AI-relevant search result
type Result struct {
	Title         string `json:"title"`
	Link          string `json:"link"`
	Snippet       string `json:"snippet"`
	DisplayedLink string `json:"displayed_link"`
	Position      int    `json:"position"`
}

// Page is one page of filtered results
type Page struct {
	Results      []Result      `json:"results"`
	TotalResults int           `json:"total_results"`
	SearchTime   time.Duration `json:"search_time"`
	Query        string        `json:"query"`
}

// Verdict explains why a result was kept or dropped
type Verdict struct {
	Relevant bool     `json:"relevant"`
	Reason   string   `json:"reason"`
	Domain   string   `json:"domain,omitempty"`
	Keywords []string `json:"keywords"`
	CoreTerm bool     `json:"core_term"`
}

func pageFromDomain(p *domain.ResultPage) *Page {
	page := &Page{
		Results:      make([]Result, 0, len(p.Results)),
		TotalResults: p.TotalResults,
		SearchTime:   p.SearchTime,
		Query:        p.Query,
	}
	for _, r := range p.Results {
		page.Results = append(page.Results, Result{
			Title:         r.Title,
			Link:          r.Link,
			Snippet:       r.Snippet,
			DisplayedLink: r.DisplayedLink,
			Position:      r.Position,
		})
	}
	return page
}

func verdictFromRelevance(v relevance.Verdict) Verdict {
	keywords := v.Keywords
	if keywords == nil {
		keywords = []string{}
	}
	return Verdict{
		Relevant: v.Relevant,
		Reason:   v.Reason,
		Domain:   v.Domain,
		Keywords: keywords,
		CoreTerm: v.CoreTerm,
	}
}
