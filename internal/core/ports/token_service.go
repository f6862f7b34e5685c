package ports

import "time"

// TokenClaims is the decoded, verified content of a bearer token. Fields are
// only meaningful when returned by a successful Validate call.
type TokenClaims struct {
	Subject   string
	Roles     []string
	IssuedAt  time.Time
	ExpiresAt time.Time
}

// TokenService mints and verifies self-contained signed tokens. Tokens are
// never persisted; validation recomputes the signature on every use.
type TokenService interface {
	// Issue returns a compact signed token embedding subject and roles.
	Issue(subject string, roles []string) (string, error)
	// Validate verifies signature and expiry. It fails closed: any
	// malformed, tampered or expired token yields domain.ErrInvalidToken,
	// with no distinction between the failure modes.
	Validate(token string) (*TokenClaims, error)
}
