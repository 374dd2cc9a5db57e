// ABOUTME: Keyword and domain tables that define the artificial intelligence topic domain
// ABOUTME: A Taxonomy is built once at startup and shared read-only by every request

package relevance

import (
	"errors"
	"strings"
)

// defaultKeywords are domain-indicative terms matched as lower-cased substrings
var defaultKeywords = []string{
	// core
	"artificial intelligence", "machine learning", "deep learning", "neural network",
	"natural language processing", "computer vision", "robotics", "automation",

	// companies and products
	"openai", "anthropic", "claude", "chatgpt", "gpt", "gemini", "bard",
	"midjourney", "stable diffusion", "dall-e", "runwayml", "replicate",
	"hugging face", "transformers", "pytorch", "tensorflow", "keras",

	// tools and platforms
	"langchain", "vector database", "embedding", "llm", "large language model",
	"generative ai", "ai assistant", "chatbot", "ai tool", "ai platform",
	"ai api", "ai service", "ai model", "ai framework", "ai library",

	// applications
	"ai writing", "ai image", "ai video", "ai code", "ai research",
	"ai startup", "ai company", "ai news", "ai blog", "ai tutorial",
	"prompt engineering", "fine-tuning", "rag", "retrieval augmented",

	// technical
	"transformer", "attention mechanism", "diffusion model", "gan",
	"reinforcement learning", "supervised learning", "unsupervised learning",
	"gradient descent", "backpropagation", "convolutional", "recurrent",
}

// defaultCoreTerms are high-confidence keywords; one of them plus any keyword is enough
var defaultCoreTerms = []string{
	"artificial intelligence", "machine learning", "deep learning",
	"neural network", "openai", "chatgpt", "claude", "gemini",
}

// defaultDomains are link substrings that mark a result relevant on their own
var defaultDomains = []string{
	"openai.com", "anthropic.com", "google.ai", "microsoft.com/ai",
	"huggingface.co", "replicate.com", "runway.com", "midjourney.com",
	"stability.ai", "cohere.ai", "ai21.com", "deepmind.com",
	"nvidia.com/ai", "ibm.com/watson", "aws.amazon.com/machine-learning",
	"azure.microsoft.com/cognitive-services", "cloud.google.com/ai",
	"paperswithcode.com", "arxiv.org", "towards", "medium.com",
	"github.com", "kaggle.com", "fast.ai", "deeplearning.ai",
}

// Taxonomy holds the immutable keyword set, core terms and domain allowlist.
// All entries are stored lower-cased.
type Taxonomy struct {
	keywords  []string
	coreTerms []string
	domains   []string
}

// NewTaxonomy builds a taxonomy from the given tables. Entries are lower-cased,
// trimmed and de-duplicated; the input slices are not retained.
func NewTaxonomy(keywords, coreTerms, domains []string) (*Taxonomy, error) {
	t := &Taxonomy{
		keywords:  normalize(keywords),
		coreTerms: normalize(coreTerms),
		domains:   normalize(domains),
	}

	if len(t.keywords) == 0 {
		return nil, errors.New("taxonomy requires at least one keyword")
	}

	return t, nil
}

// DefaultTaxonomy returns the artificial intelligence taxonomy
func DefaultTaxonomy() *Taxonomy {
	t, err := NewTaxonomy(defaultKeywords, defaultCoreTerms, defaultDomains)
	if err != nil {
		panic(err)
	}
	return t
}

// Keywords returns a copy of the keyword set
func (t *Taxonomy) Keywords() []string {
	return append([]string(nil), t.keywords...)
}

// CoreTerms returns a copy of the core terms
func (t *Taxonomy) CoreTerms() []string {
	return append([]string(nil), t.coreTerms...)
}

// Domains returns a copy of the domain allowlist
func (t *Taxonomy) Domains() []string {
	return append([]string(nil), t.domains...)
}

func normalize(entries []string) []string {
	seen := make(map[string]struct{}, len(entries))
	out := make([]string, 0, len(entries))
	for _, e := range entries {
		e = strings.ToLower(strings.TrimSpace(e))
		if e == "" {
			continue
		}
		if _, dup := seen[e]; dup {
			continue
		}
		seen[e] = struct{}{}
		out = append(out, e)
	}
	return out
}
