package ports

import (
	"context"

	"github.com/taskforge/task-api/internal/core/domain"
)

// TaskRepository defines persistence operations for tasks.
type TaskRepository interface {
	Create(ctx context.Context, task *domain.Task) error
	// FindByID retrieves a task by id, returning domain.ErrTaskNotFound when absent.
	FindByID(ctx context.Context, id string) (*domain.Task, error)
	// FindByOwner returns all tasks owned by ownerID, newest first.
	FindByOwner(ctx context.Context, ownerID string) ([]*domain.Task, error)
	Update(ctx context.Context, task *domain.Task) error
	Delete(ctx context.Context, id string) error
}
