package middleware

import (
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/taskforge/task-api/internal/core/ports"
)

const bearerPrefix = "Bearer "

// identityKey is the echo context key under which Identity is stored.
const identityKey = "identity"

// Identity is the request-scoped identity established from a validated
// bearer token. Roles is the snapshot embedded in the token at login time.
type Identity struct {
	Username string
	Roles    []string
}

// Authenticate runs once per request, before any handler. It extracts a
// bearer token from the Authorization header and, when valid, attaches the
// caller identity to the request context.
//
// It is deliberately lenient: a missing header, a non-Bearer scheme, or an
// invalid/expired token all leave the request anonymous and pass it along.
// Rejection, where required, happens at the route-guard layer. No store
// lookup or blocking I/O happens here — pure token verification.
func Authenticate(tokens ports.TokenService) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			header := c.Request().Header.Get("Authorization")
			if !strings.HasPrefix(header, bearerPrefix) {
				return next(c)
			}

			claims, err := tokens.Validate(strings.TrimPrefix(header, bearerPrefix))
			if err != nil {
				// Invalid token degrades to anonymous; endpoints that
				// require identity will reject downstream.
				return next(c)
			}

			c.Set(identityKey, Identity{
				Username: claims.Subject,
				Roles:    claims.Roles,
			})
			return next(c)
		}
	}
}

// CallerIdentity returns the identity attached by Authenticate, if any.
func CallerIdentity(c echo.Context) (Identity, bool) {
	id, ok := c.Get(identityKey).(Identity)
	return id, ok
}
