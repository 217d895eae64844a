package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
)

var (
	// ErrUnauthorized marks responses rejected for a missing or invalid token.
	ErrUnauthorized = errors.New("authentication required")
	// ErrUnavailable marks transport-level failures: the backend could not
	// be reached or did not answer.
	ErrUnavailable = errors.New("server unavailable")
)

// APIError is a non-2xx response from the backend.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	if e.Message != "" {
		return e.Message
	}
	return fmt.Sprintf("http error: status %d", e.StatusCode)
}

// Unwrap lets errors.Is(err, ErrUnauthorized) match authentication failures.
func (e *APIError) Unwrap() error {
	if e.StatusCode == http.StatusUnauthorized {
		return ErrUnauthorized
	}
	return nil
}

// IsNotFound reports whether the error is a 404.
func (e *APIError) IsNotFound() bool { return e.StatusCode == http.StatusNotFound }

// IsValidation reports whether the error is a 400.
func (e *APIError) IsValidation() bool { return e.StatusCode == http.StatusBadRequest }

// parseError builds an *APIError from a failed response body. The backend's
// own views answer {"error": "..."}; DRF's built-in auth layers answer
// {"detail": "..."}. Anything else falls back to a generic status message.
func parseError(statusCode int, body []byte) error {
	var payload struct {
		Error  string `json:"error"`
		Detail string `json:"detail"`
	}
	if err := json.Unmarshal(body, &payload); err == nil {
		if payload.Error != "" {
			return &APIError{StatusCode: statusCode, Message: payload.Error}
		}
		if payload.Detail != "" {
			return &APIError{StatusCode: statusCode, Message: payload.Detail}
		}
	}
	return &APIError{StatusCode: statusCode}
}
