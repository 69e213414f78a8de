// Package handlers contains the HTTP handlers for the quotation API.
package handlers

import (
	"github.com/pocketbase/pocketbase/core"
)

// apiError writes a JSON error body with the given HTTP status.
func apiError(e *core.RequestEvent, status int, message string) error {
	return e.JSON(status, map[string]string{
		"status": "false",
		"error":  message,
	})
}

// apiValidationError writes a 400 with the per-field validation messages.
func apiValidationError(e *core.RequestEvent, fields map[string]string) error {
	return e.JSON(400, map[string]any{
		"status": "false",
		"error":  "validation failed",
		"fields": fields,
	})
}
