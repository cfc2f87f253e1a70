package identity

import (
	"fmt"
	"strconv"

	"github.com/golang-jwt/jwt/v5"
)

// Claims is the user-claims object exposed by a TokenProvider. Keys are raw
// claim names, including namespaced custom claims such as
// "https://ss-app.com/tenantId".
type Claims map[string]any

// String returns the claim under key rendered as a string, or "" when the
// claim is absent. Numeric claims are formatted without an exponent so
// integral tenant IDs survive the JSON float round trip.
func (c Claims) String(key string) string {
	v, ok := c[key]
	if !ok || v == nil {
		return ""
	}
	switch t := v.(type) {
	case string:
		return t
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case int64:
		return strconv.FormatInt(t, 10)
	case bool:
		return strconv.FormatBool(t)
	default:
		return fmt.Sprintf("%v", t)
	}
}

// Email returns the "email" claim, if present.
func (c Claims) Email() string { return c.String("email") }

// Subject returns the "sub" claim, if present.
func (c Claims) Subject() string { return c.String("sub") }

// ParseClaims extracts the claims from a JWT access token without verifying
// its signature. The backend is the party that verifies tokens; client-side
// we only need the claim payload for header resolution and display.
func ParseClaims(token string) (Claims, error) {
	parser := jwt.NewParser()

	mapClaims := jwt.MapClaims{}
	if _, _, err := parser.ParseUnverified(token, mapClaims); err != nil {
		return nil, fmt.Errorf("parse access token claims: %w", err)
	}

	return Claims(mapClaims), nil
}
