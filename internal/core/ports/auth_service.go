package ports

import (
	"context"

	"github.com/taskforge/task-api/internal/core/domain"
)

// AuthService handles registration and login. No token is issued on
// registration; login is a separate step.
type AuthService interface {
	Register(ctx context.Context, username, password string) (*domain.User, error)
	// Login returns a signed bearer token on success. Unknown username and
	// wrong password are indistinguishable: both yield domain.ErrInvalidCredentials.
	Login(ctx context.Context, username, password string) (string, error)
}
