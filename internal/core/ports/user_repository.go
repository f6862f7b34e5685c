package ports

import (
	"context"

	"github.com/taskforge/task-api/internal/core/domain"
)

// UserRepository defines persistence operations for user credentials.
type UserRepository interface {
	Create(ctx context.Context, user *domain.User) (*domain.User, error)
	FindByUsername(ctx context.Context, username string) (*domain.User, error)
	ExistsByUsername(ctx context.Context, username string) (bool, error)
}
