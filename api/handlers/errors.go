// ABOUTME: Error handling utilities for API handlers
// ABOUTME: Converts domain errors to appropriate HTTP responses

package handlers

import (
	stderrors "errors"

	"ai-search-api/core/errors"
	"github.com/danielgtaylor/huma/v2"
)

// toHumaError converts domain errors to appropriate Huma HTTP errors.
// Provider and configuration failures surface as 500 with the upstream text
// so clients can tell a missing key from an outage.
func toHumaError(err error) error {
	if err == nil {
		return nil
	}

	if errors.IsValidation(err) {
		return huma.Error400BadRequest(err.Error())
	}

	var cfgErr *errors.ConfigurationError
	if stderrors.As(err, &cfgErr) {
		return huma.Error500InternalServerError(cfgErr.Message)
	}

	if providerErr, ok := errors.AsProvider(err); ok {
		return huma.Error500InternalServerError("Search API error: " + providerErr.Message)
	}

	return huma.Error500InternalServerError("Search failed: " + err.Error())
}

// isServerError reports whether err is answered with a 5xx status
func isServerError(err error) bool {
	return err != nil && !errors.IsValidation(err)
}
