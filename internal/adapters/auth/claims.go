package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// TokenClaims is what the client can read off an access token without
// verifying it. Verification belongs to the server; the client only inspects
// claims for display and coarse role gating before the current-user fetch
// lands.
type TokenClaims struct {
	Subject   string
	Email     string
	Roles     []string
	ExpiresAt time.Time
}

func (t TokenClaims) HasRole(name string) bool {
	for _, role := range t.Roles {
		if role == name {
			return true
		}
	}

	return false
}

func (t TokenClaims) Expired(now time.Time) bool {
	return !t.ExpiresAt.IsZero() && !t.ExpiresAt.After(now)
}

// DecodeClaims parses the token without signature verification. Malformed
// tokens yield zero claims rather than an error; a token the client cannot
// read is treated the same as one carrying nothing.
func DecodeClaims(token string) TokenClaims {
	claims := jwt.MapClaims{}
	parser := jwt.NewParser()
	if _, _, err := parser.ParseUnverified(token, claims); err != nil {
		return TokenClaims{}
	}

	decoded := TokenClaims{}
	if subject, err := claims.GetSubject(); err == nil {
		decoded.Subject = subject
	}
	if email, ok := claims["email"].(string); ok {
		decoded.Email = email
	}
	if expiry, err := claims.GetExpirationTime(); err == nil && expiry != nil {
		decoded.ExpiresAt = expiry.Time
	}
	if rawRoles, ok := claims["roles"].([]any); ok {
		for _, rawRole := range rawRoles {
			if role, ok := rawRole.(string); ok {
				decoded.Roles = append(decoded.Roles, role)
			}
		}
	}

	return decoded
}
