package aisearch

import (
	"context"
	"errors"
	"testing"

	"ai-search-api/core/domain"
	coreerrors "ai-search-api/core/errors"
	"ai-search-api/core/interfaces"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubProvider struct {
	results []domain.RawResult
	err     error
	lastReq interfaces.ProviderRequest
}

func (s *stubProvider) FetchRawResults(ctx context.Context, req interfaces.ProviderRequest) ([]domain.RawResult, error) {
	s.lastReq = req
	return s.results, s.err
}

func TestClient_Search(t *testing.T) {
	provider := &stubProvider{results: []domain.RawResult{
		{Title: "Intro to machine learning", Link: "https://a.example", Snippet: "neural network basics"},
		{Title: "Weather today", Link: "https://b.example", Snippet: "sunny"},
	}}

	client, err := NewClient(WithProvider(provider), WithCache(nil))
	require.NoError(t, err)
	defer client.Close()

	page, err := client.Search(context.Background(), "courses", 1)
	require.NoError(t, err)

	assert.Equal(t, "courses", page.Query)
	require.Len(t, page.Results, 1)
	assert.Equal(t, 1, page.Results[0].Position)
	assert.Equal(t, "courses AI artificial intelligence machine learning", provider.lastReq.Query)
}

func TestClient_SearchErrors(t *testing.T) {
	tests := []struct {
		name  string
		err   error
		check func(error) bool
	}{
		{"provider", &coreerrors.ProviderError{Provider: "serpapi", Message: "quota"}, IsProviderError},
		{"configuration", &coreerrors.ConfigurationError{Setting: "SERPAPI_KEY", Message: "SerpAPI key not configured"}, IsConfigurationError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client, err := NewClient(WithProvider(&stubProvider{err: tt.err}), WithCache(nil))
			require.NoError(t, err)

			_, err = client.Search(context.Background(), "llm", 1)
			assert.True(t, tt.check(err))
			assert.True(t, errors.Is(err, tt.err))
		})
	}
}

func TestClient_SearchValidation(t *testing.T) {
	client, err := NewClient(WithProvider(&stubProvider{}))
	require.NoError(t, err)

	_, err = client.Search(context.Background(), "   ", 1)
	assert.True(t, IsValidationError(err))
}

func TestClient_MissingKeyWithBuiltInProvider(t *testing.T) {
	client, err := NewClient(WithCache(nil))
	require.NoError(t, err)

	_, err = client.Search(context.Background(), "llm", 1)
	require.Error(t, err)
	assert.True(t, IsConfigurationError(err))
	assert.Contains(t, err.Error(), "SerpAPI key not configured")
}

func TestClient_Closed(t *testing.T) {
	client, err := NewClient(WithProvider(&stubProvider{}))
	require.NoError(t, err)
	require.NoError(t, client.Close())

	_, err = client.Search(context.Background(), "llm", 1)
	assert.ErrorIs(t, err, ErrClientClosed)
}

func TestClient_ClassifyWithCustomTaxonomy(t *testing.T) {
	client, err := NewClient(
		WithProvider(&stubProvider{}),
		WithTaxonomy([]string{"rust", "cargo"}, []string{"rust"}, []string{"rust-lang.org"}),
	)
	require.NoError(t, err)

	assert.True(t, client.Classify("Rust book", "", "https://doc.rust-lang.org").Relevant)
	assert.False(t, client.Classify("Machine learning", "deep learning", "https://x.example").Relevant)
}

func TestClient_Suggest(t *testing.T) {
	client, err := NewClient(WithProvider(&stubProvider{}))
	require.NoError(t, err)

	assert.Equal(t, []string{"Stable Diffusion"}, client.Suggest("diffusion"))
}

func TestOptions_Validation(t *testing.T) {
	_, err := NewClient(WithTimeout(0))
	assert.True(t, IsValidationError(err))

	_, err = NewClient(WithPageSize(10, 5))
	assert.True(t, IsValidationError(err))

	_, err = NewClient(WithBaseURL(""))
	assert.True(t, IsConfigurationError(err))

	_, err = NewClient(WithTaxonomy(nil, nil, nil), WithProvider(&stubProvider{}))
	assert.NoError(t, err)
}
