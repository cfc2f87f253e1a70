package shieldsdk

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
)

// APIError is a typed error parsed from a SiteShield backend error response.
type APIError struct {
	// StatusCode is the HTTP status of the failed response.
	StatusCode int

	// Code is the backend's machine-readable error code, e.g.
	// "validation_error" or "not_found".
	Code string

	// Message is the human-readable description.
	Message string

	// Details carries field-level validation errors when present.
	Details map[string]string
}

func (e *APIError) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("%s: %s", e.Code, e.Message)
	}
	return fmt.Sprintf("HTTP %d: %s", e.StatusCode, e.Message)
}

// StatusOf returns the HTTP status of err when it is an APIError, else 0.
func StatusOf(err error) int {
	var apiErr *APIError
	if errors.As(err, &apiErr) {
		return apiErr.StatusCode
	}
	return 0
}

// IsNotFound reports whether err is a 404 from the backend.
func IsNotFound(err error) bool { return StatusOf(err) == http.StatusNotFound }

// IsUnauthorized reports whether err is a terminal 401, i.e. the refresh
// pipeline ran its course and the session is not valid.
func IsUnauthorized(err error) bool { return StatusOf(err) == http.StatusUnauthorized }

// IsForbidden reports whether err is a 403 permission failure.
func IsForbidden(err error) bool { return StatusOf(err) == http.StatusForbidden }

// errorEnvelope is the backend's standard error body.
type errorEnvelope struct {
	Code    string            `json:"code"`
	Message string            `json:"message"`
	Details map[string]string `json:"details,omitempty"`
}

// oauthEnvelope is the error shape of auth-adjacent endpoints.
type oauthEnvelope struct {
	Error            string `json:"error"`
	ErrorDescription string `json:"error_description"`
}

// parseErrorResponse maps a non-2xx response body into a typed *APIError.
// Unparseable bodies fall back to a generic status-derived error.
func parseErrorResponse(status int, body []byte) error {
	var envelope errorEnvelope
	if err := json.Unmarshal(body, &envelope); err == nil && envelope.Code != "" {
		return &APIError{
			StatusCode: status,
			Code:       envelope.Code,
			Message:    envelope.Message,
			Details:    envelope.Details,
		}
	}

	var oauthErr oauthEnvelope
	if err := json.Unmarshal(body, &oauthErr); err == nil && oauthErr.Error != "" {
		return &APIError{
			StatusCode: status,
			Code:       oauthErr.Error,
			Message:    oauthErr.ErrorDescription,
		}
	}

	return &APIError{
		StatusCode: status,
		Message:    http.StatusText(status),
	}
}
