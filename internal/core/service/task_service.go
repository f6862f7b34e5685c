package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/taskforge/task-api/internal/api/metrics"
	"github.com/taskforge/task-api/internal/core/domain"
	"github.com/taskforge/task-api/internal/core/ports"
)

// TaskService implements the caller-scoped task use cases with the
// ownership-or-admin mutation policy.
type TaskService struct {
	tasks  ports.TaskRepository
	users  ports.UserRepository
	logger zerolog.Logger
}

func NewTaskService(tasks ports.TaskRepository, users ports.UserRepository, logger zerolog.Logger) *TaskService {
	return &TaskService{tasks: tasks, users: users, logger: logger}
}

// callerID resolves the authenticated username to a user id. A token whose
// subject no longer resolves to a stored user is an inconsistent session and
// surfaces as domain.ErrUserNotFound.
func (s *TaskService) callerID(ctx context.Context, caller ports.Caller) (string, error) {
	user, err := s.users.FindByUsername(ctx, caller.Username)
	if err != nil {
		return "", err
	}
	return user.ID, nil
}

// Create stores a new task owned by the caller. The owner is always stamped
// from the resolved caller id, never from the payload.
func (s *TaskService) Create(ctx context.Context, caller ports.Caller, input ports.CreateTaskInput) (*domain.Task, error) {
	ownerID, err := s.callerID(ctx, caller)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	task := &domain.Task{
		Title:       input.Title,
		Description: input.Description,
		Completed:   false,
		OwnerID:     ownerID,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := s.tasks.Create(ctx, task); err != nil {
		s.logger.Error().Err(err).Str("owner_id", ownerID).Msg("failed to create task")
		return nil, err
	}

	metrics.TasksCreatedTotal.Inc()
	s.logger.Info().Str("task_id", task.ID).Str("owner_id", ownerID).Msg("task created")
	return task, nil
}

// List returns the caller's own tasks only.
func (s *TaskService) List(ctx context.Context, caller ports.Caller) ([]*domain.Task, error) {
	ownerID, err := s.callerID(ctx, caller)
	if err != nil {
		return nil, err
	}
	return s.tasks.FindByOwner(ctx, ownerID)
}

// Update overwrites title, description and completed on an existing task if
// the caller owns it or holds ROLE_ADMIN. The owner id is never touched.
func (s *TaskService) Update(ctx context.Context, caller ports.Caller, id string, input ports.UpdateTaskInput) (*domain.Task, error) {
	callerID, err := s.callerID(ctx, caller)
	if err != nil {
		return nil, err
	}

	task, err := s.tasks.FindByID(ctx, id)
	if err != nil {
		metrics.TaskMutationsTotal.WithLabelValues("update", "not_found").Inc()
		return nil, err
	}

	if !task.CanModify(callerID, caller.Roles) {
		metrics.TaskMutationsTotal.WithLabelValues("update", "forbidden").Inc()
		return nil, domain.ErrForbidden
	}

	task.Title = input.Title
	task.Description = input.Description
	task.Completed = input.Completed
	task.UpdatedAt = time.Now().UTC()

	if err := s.tasks.Update(ctx, task); err != nil {
		return nil, err
	}

	metrics.TaskMutationsTotal.WithLabelValues("update", "ok").Inc()
	s.logger.Info().Str("task_id", task.ID).Str("caller_id", callerID).Msg("task updated")
	return task, nil
}

// Delete removes a task under the same ownership-or-admin policy as Update.
func (s *TaskService) Delete(ctx context.Context, caller ports.Caller, id string) error {
	callerID, err := s.callerID(ctx, caller)
	if err != nil {
		return err
	}

	task, err := s.tasks.FindByID(ctx, id)
	if err != nil {
		metrics.TaskMutationsTotal.WithLabelValues("delete", "not_found").Inc()
		return err
	}

	if !task.CanModify(callerID, caller.Roles) {
		metrics.TaskMutationsTotal.WithLabelValues("delete", "forbidden").Inc()
		return domain.ErrForbidden
	}

	if err := s.tasks.Delete(ctx, task.ID); err != nil {
		return err
	}

	metrics.TaskMutationsTotal.WithLabelValues("delete", "ok").Inc()
	s.logger.Info().Str("task_id", task.ID).Str("caller_id", callerID).Msg("task deleted")
	return nil
}
