package domain

import (
	"errors"
	"time"
)

var ErrTaskNotFound = errors.New("task not found")
var ErrForbidden = errors.New("access forbidden")

// Task is a work item owned by exactly one user. OwnerID is set once at
// creation and never reassigned.
type Task struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	Completed   bool      `json:"completed"`
	OwnerID     string    `json:"owner_id"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// CanModify is the ownership-or-admin policy shared by update and delete:
// the owner may always mutate the task, and ROLE_ADMIN overrides ownership.
func (t *Task) CanModify(callerID string, callerRoles []string) bool {
	if t.OwnerID == callerID {
		return true
	}
	for _, r := range callerRoles {
		if r == RoleAdmin {
			return true
		}
	}
	return false
}
