package relevance

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTaxonomy_Normalizes(t *testing.T) {
	tax, err := NewTaxonomy(
		[]string{" OpenAI ", "openai", "", "LLM"},
		[]string{"OpenAI"},
		[]string{"ArXiv.org"},
	)
	require.NoError(t, err)

	assert.Equal(t, []string{"openai", "llm"}, tax.Keywords())
	assert.Equal(t, []string{"openai"}, tax.CoreTerms())
	assert.Equal(t, []string{"arxiv.org"}, tax.Domains())
}

func TestNewTaxonomy_RequiresKeywords(t *testing.T) {
	_, err := NewTaxonomy(nil, []string{"x"}, nil)
	assert.Error(t, err)
}

func TestNewTaxonomy_DoesNotRetainInput(t *testing.T) {
	keywords := []string{"llm"}
	tax, err := NewTaxonomy(keywords, nil, nil)
	require.NoError(t, err)

	keywords[0] = "changed"
	assert.Equal(t, []string{"llm"}, tax.Keywords())
}

func TestTaxonomy_AccessorsReturnCopies(t *testing.T) {
	tax := DefaultTaxonomy()

	kw := tax.Keywords()
	kw[0] = "mutated"
	assert.NotEqual(t, "mutated", tax.Keywords()[0])
}

func TestDefaultTaxonomy_CoreTermsAreKeywords(t *testing.T) {
	tax := DefaultTaxonomy()
	keywords := tax.Keywords()

	for _, term := range tax.CoreTerms() {
		assert.Contains(t, keywords, term)
	}
	assert.Len(t, tax.Domains(), 25)
}
