// ABOUTME: Search service runs the augment, fetch, classify and rank pipeline
// ABOUTME: Provides business logic for topic-filtered web search independent of the HTTP layer

package search

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"ai-search-api/core/domain"
	coreerrors "ai-search-api/core/errors"
	"ai-search-api/core/interfaces"
	"ai-search-api/core/relevance"
	"ai-search-api/pkg/requestid"
)

const maxQueryLength = 500

// Options tunes the pipeline
type Options struct {
	// PageSize caps the returned results and is the stride of the upstream offset
	PageSize int

	// OverFetch is the number of raw results requested from the provider
	OverFetch int

	// ProviderTimeout bounds the single provider call; 0 means no extra bound
	ProviderTimeout time.Duration

	// CacheTTL is how long successful provider responses are cached
	CacheTTL time.Duration
}

// DefaultOptions returns the stock page size, over-fetch and timeouts
func DefaultOptions() Options {
	return Options{
		PageSize:        10,
		OverFetch:       20,
		ProviderTimeout: 20 * time.Second,
		CacheTTL:        5 * time.Minute,
	}
}

// SearchService handles topic-filtered search operations
type SearchService struct {
	deps       interfaces.Dependencies
	augmenter  *relevance.Augmenter
	classifier *relevance.Classifier
	opts       Options
}

// NewSearchService creates a new search service instance. Zero option values
// fall back to DefaultOptions.
func NewSearchService(deps interfaces.Dependencies, augmenter *relevance.Augmenter, classifier *relevance.Classifier, opts Options) *SearchService {
	defaults := DefaultOptions()
	if opts.PageSize <= 0 {
		opts.PageSize = defaults.PageSize
	}
	if opts.OverFetch <= 0 {
		opts.OverFetch = defaults.OverFetch
	}
	if opts.CacheTTL <= 0 {
		opts.CacheTTL = defaults.CacheTTL
	}

	return &SearchService{
		deps:       deps,
		augmenter:  augmenter,
		classifier: classifier,
		opts:       opts,
	}
}

// validateRequest validates search parameters
func (s *SearchService) validateRequest(query string, page int) error {
	if strings.TrimSpace(query) == "" {
		return &coreerrors.ValidationError{Field: "query", Message: "search query cannot be empty"}
	}

	if len(query) > maxQueryLength {
		return &coreerrors.ValidationError{
			Field:   "query",
			Message: fmt.Sprintf("search query cannot exceed %d characters", maxQueryLength),
		}
	}

	if page < 1 {
		return &coreerrors.ValidationError{Field: "page", Message: "page must be at least 1"}
	}

	return nil
}

// Offset returns the upstream offset for a 1-based page number
func (s *SearchService) Offset(page int) int {
	return (page - 1) * s.opts.PageSize
}

// Search augments the query, fetches one over-sized batch from the provider and
// returns the first page of relevant results. A provider failure fails the whole
// operation; no partial page is ever returned.
func (s *SearchService) Search(ctx context.Context, query string, page int) (*domain.ResultPage, error) {
	start := time.Now()

	if err := s.validateRequest(query, page); err != nil {
		return nil, err
	}

	req := interfaces.ProviderRequest{
		Query:  s.augmenter.Augment(query),
		Offset: s.Offset(page),
		Num:    s.opts.OverFetch,
	}

	raw, err := s.fetch(ctx, req)
	if err != nil {
		s.logError("Search provider call failed", map[string]interface{}{
			"request_id": requestid.FromContext(ctx),
			"query":      query,
			"offset":     req.Offset,
			"error":      err.Error(),
		})
		return nil, err
	}

	results, malformed := s.rank(raw)
	elapsed := time.Since(start)

	s.logInfo("Search completed", map[string]interface{}{
		"request_id":      requestid.FromContext(ctx),
		"query":           query,
		"augmented_query": req.Query,
		"page":            page,
		"raw":             len(raw),
		"malformed":       malformed,
		"kept":            len(results),
		"duration_ms":     elapsed.Milliseconds(),
	})

	return &domain.ResultPage{
		Results:      results,
		TotalResults: len(results),
		SearchTime:   elapsed,
		Query:        query,
	}, nil
}

// rank filters raw results in provider order and assigns positions among the
// kept ones. It returns at most one page and the number of malformed results skipped.
func (s *SearchService) rank(raw []domain.RawResult) ([]domain.ClassifiedResult, int) {
	kept := make([]domain.ClassifiedResult, 0, s.opts.PageSize)
	malformed := 0

	for _, r := range raw {
		if !r.IsComplete() {
			malformed++
			continue
		}
		if !s.classifier.IsRelevant(r.Title, r.Snippet, r.Link) {
			continue
		}
		kept = append(kept, domain.NewClassifiedResult(r, len(kept)+1))
	}

	if len(kept) > s.opts.PageSize {
		kept = kept[:s.opts.PageSize]
	}

	return kept, malformed
}

// fetch returns the provider's raw results, consulting the cache first
func (s *SearchService) fetch(ctx context.Context, req interfaces.ProviderRequest) ([]domain.RawResult, error) {
	if s.deps.Provider == nil {
		return nil, &coreerrors.ConfigurationError{Setting: "provider", Message: "search provider not configured"}
	}

	key := cacheKey(req)
	if s.deps.Cache != nil {
		data, err := s.deps.Cache.Get(ctx, key)
		if err == nil && data != nil {
			var cached []domain.RawResult
			if err := json.Unmarshal(data, &cached); err == nil {
				s.logDebug("Provider response served from cache", map[string]interface{}{
					"offset": req.Offset,
				})
				return cached, nil
			}
		}
	}

	if s.opts.ProviderTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.opts.ProviderTimeout)
		defer cancel()
	}

	raw, err := s.deps.Provider.FetchRawResults(ctx, req)
	if err != nil {
		return nil, err
	}

	if s.deps.Cache != nil {
		if data, err := json.Marshal(raw); err == nil {
			if err := s.deps.Cache.Set(context.WithoutCancel(ctx), key, data, s.opts.CacheTTL); err != nil {
				s.logWarn("Failed to cache provider response", map[string]interface{}{
					"error": err.Error(),
				})
			}
		}
	}

	return raw, nil
}

// cacheKey derives a cache key that does not store the query text itself
func cacheKey(req interfaces.ProviderRequest) string {
	sum := sha256.Sum256([]byte(fmt.Sprintf("%s|%d|%d", req.Query, req.Offset, req.Num)))
	return "search:raw:" + hex.EncodeToString(sum[:])
}

func (s *SearchService) logDebug(msg string, fields map[string]interface{}) {
	if s.deps.Logger != nil {
		s.deps.Logger.Debug(msg, fields)
	}
}

func (s *SearchService) logInfo(msg string, fields map[string]interface{}) {
	if s.deps.Logger != nil {
		s.deps.Logger.Info(msg, fields)
	}
}

func (s *SearchService) logWarn(msg string, fields map[string]interface{}) {
	if s.deps.Logger != nil {
		s.deps.Logger.Warn(msg, fields)
	}
}

func (s *SearchService) logError(msg string, fields map[string]interface{}) {
	if s.deps.Logger != nil {
		s.deps.Logger.Error(msg, fields)
	}
}
