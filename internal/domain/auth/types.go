package auth

// Package auth contains domain-level types for authentication.
// It is pure and free of framework/adapter concerns.

import "time"

// Role represents an application's authorization role.
// Keep string form for easy embedding in token claims.
// Valid values are defined as constants below.
type Role string

const (
	RoleAdministrator Role = "Administrator"
	RoleUser          Role = "User"
)

// Claims is the verified content of an access token. Tokens are stateless;
// these fields are recomputed from the signed payload on every validation.
type Claims struct {
	// Subject is the authenticated username.
	Subject string `json:"subject"`
	// TokenID uniquely identifies the issued token.
	TokenID string `json:"token_id"`
	// Roles granted to the subject.
	Roles []Role `json:"roles"`
	// IssuedAt is the issuance instant in UTC.
	IssuedAt time.Time `json:"issued_at"`
	// ExpiresAt is the expiry instant in UTC, exactly one hour after issuance.
	ExpiresAt time.Time `json:"expires_at"`
}

// HasRole reports whether the claims carry the given role.
func (c Claims) HasRole(role Role) bool {
	for _, r := range c.Roles {
		if r == role {
			return true
		}
	}
	return false
}
