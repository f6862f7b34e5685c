package handler

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/taskforge/task-api/internal/api/middleware"
	"github.com/taskforge/task-api/internal/core/domain"
	"github.com/taskforge/task-api/internal/core/ports"
)

type stubTaskService struct {
	createFn func(ctx context.Context, caller ports.Caller, input ports.CreateTaskInput) (*domain.Task, error)
	listFn   func(ctx context.Context, caller ports.Caller) ([]*domain.Task, error)
	updateFn func(ctx context.Context, caller ports.Caller, id string, input ports.UpdateTaskInput) (*domain.Task, error)
	deleteFn func(ctx context.Context, caller ports.Caller, id string) error
}

func (s *stubTaskService) Create(ctx context.Context, caller ports.Caller, input ports.CreateTaskInput) (*domain.Task, error) {
	return s.createFn(ctx, caller, input)
}

func (s *stubTaskService) List(ctx context.Context, caller ports.Caller) ([]*domain.Task, error) {
	return s.listFn(ctx, caller)
}

func (s *stubTaskService) Update(ctx context.Context, caller ports.Caller, id string, input ports.UpdateTaskInput) (*domain.Task, error) {
	return s.updateFn(ctx, caller, id, input)
}

func (s *stubTaskService) Delete(ctx context.Context, caller ports.Caller, id string) error {
	return s.deleteFn(ctx, caller, id)
}

type taskCtxOptions struct {
	method    string
	body      string
	id        string
	anonymous bool
}

func newTaskContext(t *testing.T, opts taskCtxOptions) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()
	e := echo.New()
	e.Validator = NewValidator()

	var req *http.Request
	if opts.body != "" {
		req = httptest.NewRequest(opts.method, "/v1/tasks", strings.NewReader(opts.body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	} else {
		req = httptest.NewRequest(opts.method, "/v1/tasks", nil)
	}
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	if opts.id != "" {
		c.SetParamNames("id")
		c.SetParamValues(opts.id)
	}
	if !opts.anonymous {
		// Mirror what the Authenticate middleware does for a valid token.
		c.Set("identity", middleware.Identity{Username: "alice", Roles: []string{domain.RoleUser}})
	}
	return c, rec
}

func TestTaskHandler_Create(t *testing.T) {
	stub := &stubTaskService{
		createFn: func(ctx context.Context, caller ports.Caller, input ports.CreateTaskInput) (*domain.Task, error) {
			if caller.Username != "alice" {
				t.Fatalf("unexpected caller %q", caller.Username)
			}
			if input.Title != "buy milk" {
				t.Fatalf("unexpected title %q", input.Title)
			}
			return &domain.Task{ID: "t1", Title: input.Title, OwnerID: "u1"}, nil
		},
	}
	h := NewTaskHandler(stub)

	c, rec := newTaskContext(t, taskCtxOptions{method: http.MethodPost, body: `{"title":"buy milk"}`})
	if err := h.Create(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}
	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if resp["id"] != "t1" || resp["owner_id"] != "u1" {
		t.Fatalf("unexpected response: %v", resp)
	}
}

func TestTaskHandler_Create_EmptyTitle(t *testing.T) {
	stub := &stubTaskService{
		createFn: func(ctx context.Context, caller ports.Caller, input ports.CreateTaskInput) (*domain.Task, error) {
			t.Fatalf("should not be called")
			return nil, nil
		},
	}
	h := NewTaskHandler(stub)

	c, _ := newTaskContext(t, taskCtxOptions{method: http.MethodPost, body: `{"title":""}`})
	err := h.Create(c)
	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 HTTPError, got %v", err)
	}
}

func TestTaskHandler_Create_TitleTooLong(t *testing.T) {
	stub := &stubTaskService{
		createFn: func(ctx context.Context, caller ports.Caller, input ports.CreateTaskInput) (*domain.Task, error) {
			t.Fatalf("should not be called")
			return nil, nil
		},
	}
	h := NewTaskHandler(stub)

	long := strings.Repeat("x", 256)
	c, _ := newTaskContext(t, taskCtxOptions{method: http.MethodPost, body: `{"title":"` + long + `"}`})
	err := h.Create(c)
	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 HTTPError, got %v", err)
	}
}

func TestTaskHandler_List(t *testing.T) {
	stub := &stubTaskService{
		listFn: func(ctx context.Context, caller ports.Caller) ([]*domain.Task, error) {
			return []*domain.Task{
				{ID: "t1", Title: "one", OwnerID: "u1"},
				{ID: "t2", Title: "two", OwnerID: "u1"},
			}, nil
		},
	}
	h := NewTaskHandler(stub)

	c, rec := newTaskContext(t, taskCtxOptions{method: http.MethodGet})
	if err := h.List(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	var resp struct {
		Data []map[string]any `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("invalid json: %v", err)
	}
	if len(resp.Data) != 2 {
		t.Fatalf("expected 2 tasks, got %d", len(resp.Data))
	}
}

func TestTaskHandler_Update_Forbidden(t *testing.T) {
	stub := &stubTaskService{
		updateFn: func(ctx context.Context, caller ports.Caller, id string, input ports.UpdateTaskInput) (*domain.Task, error) {
			return nil, domain.ErrForbidden
		},
	}
	h := NewTaskHandler(stub)

	c, _ := newTaskContext(t, taskCtxOptions{method: http.MethodPut, body: `{"title":"x"}`, id: "t1"})
	if err := h.Update(c); !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("expected ErrForbidden to propagate, got %v", err)
	}
}

func TestTaskHandler_Delete(t *testing.T) {
	stub := &stubTaskService{
		deleteFn: func(ctx context.Context, caller ports.Caller, id string) error {
			if id != "t1" {
				t.Fatalf("unexpected id %q", id)
			}
			return nil
		},
	}
	h := NewTaskHandler(stub)

	c, rec := newTaskContext(t, taskCtxOptions{method: http.MethodDelete, id: "t1"})
	if err := h.Delete(c); err != nil {
		t.Fatalf("handler error: %v", err)
	}
	if rec.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", rec.Code)
	}
}

func TestTaskHandler_Delete_NotFound(t *testing.T) {
	stub := &stubTaskService{
		deleteFn: func(ctx context.Context, caller ports.Caller, id string) error {
			return domain.ErrTaskNotFound
		},
	}
	h := NewTaskHandler(stub)

	c, _ := newTaskContext(t, taskCtxOptions{method: http.MethodDelete, id: "missing"})
	if err := h.Delete(c); !errors.Is(err, domain.ErrTaskNotFound) {
		t.Fatalf("expected ErrTaskNotFound to propagate, got %v", err)
	}
}

func TestTaskHandler_AnonymousRejected(t *testing.T) {
	stub := &stubTaskService{
		listFn: func(ctx context.Context, caller ports.Caller) ([]*domain.Task, error) {
			t.Fatalf("should not be called")
			return nil, nil
		},
	}
	h := NewTaskHandler(stub)

	c, _ := newTaskContext(t, taskCtxOptions{method: http.MethodGet, anonymous: true})
	err := h.List(c)
	var he *echo.HTTPError
	if !errors.As(err, &he) || he.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 HTTPError, got %v", err)
	}
}
