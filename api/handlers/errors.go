// ABOUTME: Error handling utilities for API handlers
// ABOUTME: Converts dispatcher errors to appropriate HTTP responses

package handlers

import (
	"github.com/danielgtaylor/huma/v2"

	"webfetch-api/core/errors"
)

// toHumaError converts dispatcher errors to Huma HTTP errors. Operations
// report their own failures as text, so only an unknown tool name maps to
// a client error.
func toHumaError(err error) error {
	if err == nil {
		return nil
	}

	if errors.IsUnknownOperation(err) {
		return huma.Error404NotFound(err.Error())
	}

	return huma.Error500InternalServerError("Internal server error", err)
}
