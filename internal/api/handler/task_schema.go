package handler

import "time"

// errorResponse is the standard error envelope returned on all 4xx/5xx responses.
type errorResponse struct {
	Error string `json:"error"`
}

// --- Request types ---

type createTaskRequest struct {
	Title       string `json:"title"       validate:"required,max=255"`
	Description string `json:"description" validate:"omitempty,max=2000"`
}

// updateTaskRequest carries the mutable fields. There is intentionally no
// owner field: ownership is stamped at creation and never taken from a payload.
type updateTaskRequest struct {
	Title       string `json:"title"       validate:"required,max=255"`
	Description string `json:"description" validate:"omitempty,max=2000"`
	Completed   bool   `json:"completed"`
}

// --- Response types ---
// Separate from domain types so the JSON contract is not coupled to internal
// service changes.

type taskResponse struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	Completed   bool      `json:"completed"`
	OwnerID     string    `json:"owner_id"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

type listTasksResponse struct {
	Data []taskResponse `json:"data"`
}
