// ABOUTME: Error types and handling for the AI search library
// ABOUTME: Provides structured errors with context for library operations

package aisearch

import (
	"errors"
	"fmt"

	coreerrors "ai-search-api/core/errors"
)

// ErrorType represents the type of error
type ErrorType string

const (
	// ErrorTypeValidation indicates a validation error
	ErrorTypeValidation ErrorType = "validation"

	// ErrorTypeConfiguration indicates a configuration error
	ErrorTypeConfiguration ErrorType = "configuration"

	// ErrorTypeProvider indicates the upstream search service reported a failure
	ErrorTypeProvider ErrorType = "provider"

	// ErrorTypeInternal indicates an internal error
	ErrorTypeInternal ErrorType = "internal"
)

// Error represents a structured error from the library
type Error struct {
	Type    ErrorType
	Message string
	Cause   error
}

// Error implements the error interface
func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s (caused by: %v)", e.Type, e.Message, e.Cause)
	}
	return fmt.Sprintf("%s: %s", e.Type, e.Message)
}

// Unwrap returns the underlying cause
func (e *Error) Unwrap() error {
	return e.Cause
}

// NewError creates a new error with the given type and message
func NewError(errType ErrorType, message string) *Error {
	return &Error{Type: errType, Message: message}
}

// ErrClientClosed is returned when operations are attempted on a closed client
var ErrClientClosed = NewError(ErrorTypeInternal, "client is closed")

// fromCore classifies an error from the search pipeline
func fromCore(err error) error {
	if err == nil {
		return nil
	}

	var cfgErr *coreerrors.ConfigurationError
	var valErr *coreerrors.ValidationError
	switch {
	case errors.As(err, &cfgErr):
		return &Error{Type: ErrorTypeConfiguration, Message: cfgErr.Message, Cause: err}
	case errors.As(err, &valErr):
		return &Error{Type: ErrorTypeValidation, Message: valErr.Message, Cause: err}
	}
	if pe, ok := coreerrors.AsProvider(err); ok {
		return &Error{Type: ErrorTypeProvider, Message: pe.Message, Cause: err}
	}
	return &Error{Type: ErrorTypeInternal, Message: "search failed", Cause: err}
}

// IsValidationError checks if an error is a validation error
func IsValidationError(err error) bool {
	return hasType(err, ErrorTypeValidation)
}

// IsConfigurationError checks if an error is a configuration error
func IsConfigurationError(err error) bool {
	return hasType(err, ErrorTypeConfiguration)
}

// IsProviderError checks if an error came from the upstream search service
func IsProviderError(err error) bool {
	return hasType(err, ErrorTypeProvider)
}

func hasType(err error, t ErrorType) bool {
	var e *Error
	return errors.As(err, &e) && e.Type == t
}
