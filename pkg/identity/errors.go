package identity

import (
	"errors"
	"strings"
)

// ErrConsentRequired reports that the identity provider needs interactive
// user consent before it can issue a token. This condition is never retried
// and never surfaced as a failure notification; the host application is
// expected to redirect the user to the consent flow.
var ErrConsentRequired = errors.New("identity: Consent required")

// ErrNotAuthenticated reports that no credentials are available to establish
// or refresh a session.
var ErrNotAuthenticated = errors.New("identity: not authenticated")

// IsConsentRequired reports whether err represents a consent-required
// condition. Besides the sentinel, it matches any error whose message
// contains the literal "Consent required" substring, which is the signal
// identity-provider SDKs put in their error messages.
func IsConsentRequired(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, ErrConsentRequired) {
		return true
	}
	return strings.Contains(err.Error(), "Consent required")
}
