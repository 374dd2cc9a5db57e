// ABOUTME: Custom error types for the core business logic
// ABOUTME: Separates configuration, upstream provider and validation failures for the API layer

package errors

import (
	"errors"
	"fmt"
)

// ConfigurationError represents a missing or invalid setting discovered at request time
type ConfigurationError struct {
	Setting string
	Message string
}

// Error implements the error interface
func (e *ConfigurationError) Error() string {
	return fmt.Sprintf("configuration error on %s: %s", e.Setting, e.Message)
}

// ValidationError represents a validation error
type ValidationError struct {
	Field   string
	Message string
}

// Error implements the error interface
func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error on field '%s': %s", e.Field, e.Message)
}

// ProviderError represents a failure reported by the upstream search provider itself
type ProviderError struct {
	// Provider names the upstream service
	Provider string

	// StatusCode is the upstream HTTP status, or 0 when the provider answered with an error payload
	StatusCode int

	// Message is the provider's own error text
	Message string
}

// Error implements the error interface
func (e *ProviderError) Error() string {
	if e.StatusCode > 0 {
		return fmt.Sprintf("provider %s returned %d: %s", e.Provider, e.StatusCode, e.Message)
	}
	return fmt.Sprintf("provider %s: %s", e.Provider, e.Message)
}

// IsConfiguration checks if an error is a ConfigurationError
func IsConfiguration(err error) bool {
	var cfgErr *ConfigurationError
	return errors.As(err, &cfgErr)
}

// IsValidation checks if an error is a ValidationError
func IsValidation(err error) bool {
	var validationErr *ValidationError
	return errors.As(err, &validationErr)
}

// IsProvider checks if an error is a ProviderError
func IsProvider(err error) bool {
	var providerErr *ProviderError
	return errors.As(err, &providerErr)
}

// AsProvider returns the ProviderError in err's chain, if any
func AsProvider(err error) (*ProviderError, bool) {
	var providerErr *ProviderError
	ok := errors.As(err, &providerErr)
	return providerErr, ok
}

// WrapError wraps an error with additional context
func WrapError(err error, message string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", message, err)
}
