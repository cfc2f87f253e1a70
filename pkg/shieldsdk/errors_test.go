package shieldsdk

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseErrorResponseEnvelope(t *testing.T) {
	t.Parallel()

	err := parseErrorResponse(http.StatusBadRequest, []byte(
		`{"code":"validation_error","message":"name is required","details":{"name":"required"}}`,
	))

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	require.Equal(t, http.StatusBadRequest, apiErr.StatusCode)
	require.Equal(t, "validation_error", apiErr.Code)
	require.Equal(t, "name is required", apiErr.Message)
	require.Equal(t, "required", apiErr.Details["name"])
	require.Equal(t, "validation_error: name is required", apiErr.Error())
}

func TestParseErrorResponseOAuthShape(t *testing.T) {
	t.Parallel()

	err := parseErrorResponse(http.StatusUnauthorized, []byte(
		`{"error":"invalid_token","error_description":"token expired"}`,
	))

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	require.Equal(t, "invalid_token", apiErr.Code)
	require.Equal(t, "token expired", apiErr.Message)
}

func TestParseErrorResponseFallback(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		body string
	}{
		{name: "empty body", body: ""},
		{name: "html error page", body: "<html>502 Bad Gateway</html>"},
		{name: "unrelated json", body: `{"foo":"bar"}`},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := parseErrorResponse(http.StatusBadGateway, []byte(tt.body))

			var apiErr *APIError
			require.ErrorAs(t, err, &apiErr)
			require.Equal(t, http.StatusBadGateway, apiErr.StatusCode)
			require.Equal(t, http.StatusText(http.StatusBadGateway), apiErr.Message)
			require.Equal(t, "HTTP 502: Bad Gateway", apiErr.Error())
		})
	}
}

func TestStatusHelpers(t *testing.T) {
	t.Parallel()

	notFound := &APIError{StatusCode: http.StatusNotFound, Message: "no such site"}
	wrapped := fmt.Errorf("fetching site: %w", notFound)

	require.True(t, IsNotFound(wrapped))
	require.False(t, IsForbidden(wrapped))
	require.Equal(t, http.StatusNotFound, StatusOf(wrapped))
	require.Zero(t, StatusOf(fmt.Errorf("plain error")))
}
