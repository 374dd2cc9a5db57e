package interfaces

// Logger defines the interface for logging throughout the application.
// This abstraction keeps core packages independent of the logging backend.
//
// Example usage:
//
//	logger.Info("Search completed", map[string]interface{}{
//		"query": "vector databases",
//		"kept":  7,
//	})
//
//	logger.Error("Provider call failed", map[string]interface{}{
//		"provider": "serpapi",
//		"error":    err.Error(),
//	})
type Logger interface {
	// Debug logs a debug level message with optional structured fields.
	Debug(msg string, fields map[string]interface{})

	// Info logs an info level message with optional structured fields.
	Info(msg string, fields map[string]interface{})

	// Warn logs a warning level message with optional structured fields.
	// Warning messages indicate potential issues that don't prevent operation.
	Warn(msg string, fields map[string]interface{})

	// Error logs an error level message with optional structured fields.
	Error(msg string, fields map[string]interface{})
}
