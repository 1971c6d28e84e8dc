// Package util provides shared helpers for configuration and error translation.
//
//revive:disable-next-line:var-naming
package util

import (
	"errors"

	"github.com/gofiber/fiber/v2"
)

// APIError carries an HTTP status alongside the message so the shared
// handler can translate service errors into responses.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return e.Message
}

// NewBadRequest creates a 400 error.
func NewBadRequest(message string) *APIError {
	return &APIError{Status: fiber.StatusBadRequest, Message: message}
}

// NewNotFound creates a 404 error.
func NewNotFound(message string) *APIError {
	return &APIError{Status: fiber.StatusNotFound, Message: message}
}

// HandleError translates a service error into an HTTP response. Typed
// errors keep their status; anything else becomes a 500 carrying the
// error message.
func HandleError(c *fiber.Ctx, err error) error {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return c.Status(apiErr.Status).JSON(fiber.Map{
			"error": apiErr.Message,
		})
	}

	return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
		"error": err.Error(),
	})
}
