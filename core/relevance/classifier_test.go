package relevance

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClassifier() *Classifier {
	return NewClassifier(DefaultTaxonomy())
}

func TestClassifier_IsRelevant(t *testing.T) {
	tests := []struct {
		name    string
		title   string
		snippet string
		link    string
		want    bool
	}{
		{
			name:  "allowlisted domain with empty snippet",
			title: "OpenAI releases new ChatGPT model",
			link:  "https://openai.com/blog",
			want:  true,
		},
		{
			name:    "no keywords and plain domain",
			title:   "Best hiking trails in Colorado",
			snippet: "A guide to trails",
			link:    "https://example.com",
			want:    false,
		},
		{
			name:    "two keywords without allowlisted domain",
			title:   "New neural network architecture",
			snippet: "improves backpropagation efficiency",
			link:    "https://example.com",
			want:    true,
		},
		{
			name:    "single generic keyword is not enough",
			title:   "Robotics competition results",
			snippet: "",
			link:    "https://example.com/sports",
			want:    false,
		},
		{
			name:  "title alone with a core term",
			title: "Machine learning",
			link:  "https://example.com",
			want:  true,
		},
		{
			name:    "keyword matches inside longer words",
			title:   "Organic dragon fruit",
			snippet: "",
			link:    "https://example.com/recipes",
			want:    true,
		},
		{
			name:    "single over-match stays irrelevant",
			title:   "Organic gardening tips",
			snippet: "Spring planting",
			link:    "https://example.com",
			want:    false,
		},
		{
			name:    "allowlist entry anywhere in the link",
			title:   "Baking bread",
			snippet: "Sourdough at home",
			link:    "https://example.com/towards-better-bread",
			want:    true,
		},
	}

	c := newTestClassifier()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, c.IsRelevant(tt.title, tt.snippet, tt.link))
		})
	}
}

func TestClassifier_DomainShortCircuitDominates(t *testing.T) {
	c := newTestClassifier()

	for _, d := range DefaultTaxonomy().Domains() {
		link := "https://" + d + "/some/page"
		assert.True(t, c.IsRelevant("Unrelated", "Nothing to see", link), "domain %q", d)
	}
}

func TestClassifier_CaseInsensitive(t *testing.T) {
	c := newTestClassifier()
	cases := [][3]string{
		{"OpenAI releases new ChatGPT model", "", "https://openai.com/blog"},
		{"Best hiking trails in Colorado", "A guide to trails", "https://example.com"},
		{"New neural network architecture", "improves backpropagation efficiency", "https://example.com"},
		{"Deep Learning with PyTorch", "a tutorial", "https://example.org"},
	}

	for _, tc := range cases {
		lower := c.IsRelevant(tc[0], tc[1], tc[2])
		upper := c.IsRelevant(strings.ToUpper(tc[0]), strings.ToUpper(tc[1]), strings.ToUpper(tc[2]))
		assert.Equal(t, lower, upper, "case mismatch for %q", tc[0])
	}
}

func TestClassifier_Evaluate_Domain(t *testing.T) {
	v := newTestClassifier().Evaluate("anything", "", "https://HuggingFace.co/models")

	assert.True(t, v.Relevant)
	assert.Equal(t, ReasonDomain, v.Reason)
	assert.Equal(t, "huggingface.co", v.Domain)
	assert.Empty(t, v.Keywords)
}

func TestClassifier_Evaluate_KeywordsCountedOnce(t *testing.T) {
	v := newTestClassifier().Evaluate("pytorch pytorch pytorch", "pytorch", "https://example.com")

	assert.False(t, v.Relevant)
	assert.Equal(t, []string{"pytorch"}, v.Keywords)
	assert.Equal(t, ReasonNoEvidence, v.Reason)
}

func TestClassifier_Evaluate_Reasons(t *testing.T) {
	c := newTestClassifier()

	v := c.Evaluate("New neural network architecture", "improves backpropagation efficiency", "https://example.com")
	require.True(t, v.Relevant)
	assert.Equal(t, ReasonKeywords, v.Reason)
	assert.Contains(t, v.Keywords, "neural network")
	assert.Contains(t, v.Keywords, "backpropagation")
	assert.True(t, v.CoreTerm)

	v = c.Evaluate("Machine learning", "", "https://example.com")
	require.True(t, v.Relevant)
	assert.Equal(t, ReasonCoreTerm, v.Reason)
	assert.Equal(t, []string{"machine learning"}, v.Keywords)
}

func TestClassifier_CustomTaxonomy(t *testing.T) {
	tax, err := NewTaxonomy([]string{"Rust", "cargo"}, []string{"rust"}, []string{"rust-lang.org"})
	require.NoError(t, err)
	c := NewClassifier(tax)

	assert.True(t, c.IsRelevant("Learning RUST", "", "https://example.com"))
	assert.True(t, c.IsRelevant("x", "", "https://www.rust-lang.org/learn"))
	assert.False(t, c.IsRelevant("Cargo ships", "", "https://example.com"))
}
