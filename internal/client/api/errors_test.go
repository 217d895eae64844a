package api

import (
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseError(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    string
		wantMsg string
	}{
		{
			name:   "backend error field",
			status: http.StatusBadRequest, body: `{"error": "Product is out of stock"}`,
			wantMsg: "Product is out of stock",
		},
		{
			name:   "drf detail field",
			status: http.StatusUnauthorized, body: `{"detail": "Invalid token."}`,
			wantMsg: "Invalid token.",
		},
		{
			name:   "non-json body falls back to status",
			status: http.StatusBadGateway, body: `<html>bad gateway</html>`,
			wantMsg: "http error: status 502",
		},
		{
			name:   "empty json object falls back to status",
			status: http.StatusNotFound, body: `{}`,
			wantMsg: "http error: status 404",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := parseError(tt.status, []byte(tt.body))
			assert.EqualError(t, err, tt.wantMsg)

			var apiErr *APIError
			require.ErrorAs(t, err, &apiErr)
			assert.Equal(t, tt.status, apiErr.StatusCode)
		})
	}
}

func TestAPIError_UnauthorizedMatchesSentinel(t *testing.T) {
	err := parseError(http.StatusUnauthorized, []byte(`{"detail": "Authentication required"}`))
	assert.ErrorIs(t, err, ErrUnauthorized)

	err = parseError(http.StatusBadRequest, []byte(`{"error": "nope"}`))
	assert.False(t, errors.Is(err, ErrUnauthorized))
}

func TestAPIError_Predicates(t *testing.T) {
	notFound := &APIError{StatusCode: http.StatusNotFound}
	assert.True(t, notFound.IsNotFound())
	assert.False(t, notFound.IsValidation())

	validation := &APIError{StatusCode: http.StatusBadRequest, Message: "invalid"}
	assert.True(t, validation.IsValidation())
	assert.Equal(t, "invalid", validation.Error())
}
