package models

import (
	"errors"
	"fmt"
)

// Error kinds shared by the parser, the generation client, the export formatter
// and the HTTP layer.
var (
	ErrValidation        = errors.New("validation error")
	ErrConfiguration     = errors.New("provider credentials are not configured")
	ErrAuthentication    = errors.New("provider rejected credentials")
	ErrRateLimited       = errors.New("provider rate limit exceeded")
	ErrConnectivity      = errors.New("provider is unreachable")
	ErrMalformedResponse = errors.New("provider returned a malformed response")
	ErrTimeout           = errors.New("generation timed out")

	ErrItemNotFound = errors.New("item not found")
)

// SceneFieldError reports a generated scene that lacks a required field.
type SceneFieldError struct {
	Scene int
	Field string
}

func (e *SceneFieldError) Error() string {
	return fmt.Sprintf("scene %d is missing required field: %s", e.Scene, e.Field)
}

// Unwrap lets callers match the error with errors.Is(err, ErrMalformedResponse).
func (e *SceneFieldError) Unwrap() error {
	return ErrMalformedResponse
}

// ErrorResponse is the JSON body of every failed API call.
type ErrorResponse struct {
	Error   string `json:"error"`
	Details string `json:"details,omitempty"`
}
