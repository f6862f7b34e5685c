package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// RequireAuth is the strict half of the two-stage design: Authenticate never
// rejects, RequireAuth rejects any request that reached a protected route
// without an identity.
func RequireAuth() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if _, ok := CallerIdentity(c); !ok {
				return echo.NewHTTPError(http.StatusUnauthorized, "authentication required")
			}
			return next(c)
		}
	}
}
