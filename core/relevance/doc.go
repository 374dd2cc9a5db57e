// Package relevance decides which web search results belong to the artificial
// intelligence topic domain.
//
// The package has three parts:
//
//   - Taxonomy: immutable keyword, core-term and domain tables
//   - Augmenter: rewrites a user query so the provider ranks domain pages higher
//   - Classifier: accepts or rejects a result from its title, snippet and link
//
// Example:
//
//	classifier := relevance.NewClassifier(relevance.DefaultTaxonomy())
//	ok := classifier.IsRelevant("New neural network architecture",
//		"improves backpropagation efficiency", "https://example.com")
package relevance
