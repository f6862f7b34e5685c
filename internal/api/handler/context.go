package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/taskforge/task-api/internal/api/middleware"
	"github.com/taskforge/task-api/internal/core/ports"
)

// ctxCaller extracts the identity attached by the Authenticate middleware
// and converts it to the service-layer caller. Task routes are guarded by
// RequireAuth, so a missing identity here means the route was wired without
// its guard — fail with 401 rather than proceed anonymously.
func ctxCaller(c echo.Context) (ports.Caller, error) {
	id, ok := middleware.CallerIdentity(c)
	if !ok {
		return ports.Caller{}, echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}
	return ports.Caller{Username: id.Username, Roles: id.Roles}, nil
}
