// ABOUTME: Dependencies container provides dependency injection for core services
// ABOUTME: Defines the contract for dependencies required by the core business logic

package interfaces

// Dependencies holds all external dependencies required by the core business logic
type Dependencies struct {
	// Cache stores successful provider responses; nil disables caching
	Cache Cache

	// Provider fetches raw results from the upstream search service
	Provider SearchProvider

	// Logger provides structured logging
	Logger Logger
}
