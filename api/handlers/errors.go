// ABOUTME: Error handling utilities for API handlers
// ABOUTME: Converts domain errors to appropriate HTTP responses

package handlers

import (
	"catalog-app-api/core/errors"
	"github.com/danielgtaylor/huma/v2"
)

// toHumaError converts domain errors to appropriate Huma HTTP errors
func toHumaError(err error) error {
	if err == nil {
		return nil
	}

	// Check for specific error types
	if errors.IsNotFound(err) {
		return huma.Error404NotFound(err.Error())
	}

	if errors.IsInvalidParameter(err) {
		return huma.Error400BadRequest(err.Error())
	}

	if errors.IsLoad(err) {
		// The backing source is unreadable or unparseable right now;
		// clients may retry.
		return huma.Error503ServiceUnavailable("Catalog temporarily unavailable", err)
	}

	// Default to internal server error for unknown errors
	return huma.Error500InternalServerError("Internal server error", err)
}
