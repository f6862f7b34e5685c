package ports

import (
	"context"

	"github.com/taskforge/task-api/internal/core/domain"
)

// Caller identifies the authenticated actor performing a task operation, as
// established by the request authenticator. Roles is the snapshot embedded
// in the bearer token, not a live lookup.
type Caller struct {
	Username string
	Roles    []string
}

// CreateTaskInput carries the payload for creating a task. The owner is
// always the caller; no owner field is accepted from the payload.
type CreateTaskInput struct {
	Title       string
	Description string
}

// UpdateTaskInput carries the mutable task fields. OwnerID is deliberately
// absent: ownership is never reassigned.
type UpdateTaskInput struct {
	Title       string
	Description string
	Completed   bool
}

// TaskService defines the caller-scoped task use cases.
type TaskService interface {
	Create(ctx context.Context, caller Caller, input CreateTaskInput) (*domain.Task, error)
	// List returns only tasks owned by the caller; there is no admin
	// view-all capability.
	List(ctx context.Context, caller Caller) ([]*domain.Task, error)
	Update(ctx context.Context, caller Caller, id string, input UpdateTaskInput) (*domain.Task, error)
	Delete(ctx context.Context, caller Caller, id string) error
}
