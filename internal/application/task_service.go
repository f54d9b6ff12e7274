package application

import (
	"context"
	"errors"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/routinemonitor/backend/internal/domain/entity"
	repo "github.com/routinemonitor/backend/internal/domain/repository"
)

// TaskService implements CRUD over tasks with per-resource ownership checks.
// Every operation addressing a task by id first fetches it (absent rows are
// ErrTaskNotFound) and then runs Authorize against the caller, in that order.
type TaskService struct {
	Tasks  repo.TaskRepository
	Users  repo.UserRepository
	Logger *logrus.Logger
}

func NewTaskService(tasks repo.TaskRepository, users repo.UserRepository, logger *logrus.Logger) *TaskService {
	return &TaskService{Tasks: tasks, Users: users, Logger: logger}
}

type CreateTaskInput struct {
	Title       string
	Description string
	Priority    entity.TaskPriority
	DueDate     *time.Time
}

type UpdateTaskInput struct {
	Title       string
	Description string
	Priority    entity.TaskPriority
	DueDate     *time.Time
}

func (s *TaskService) resolveCaller(email string) (*entity.User, error) {
	u, err := s.Users.GetByEmail(email)
	if errors.Is(err, repo.ErrNotFound) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, err
	}
	return u, nil
}

// List returns the caller's tasks only.
func (s *TaskService) List(ctx context.Context, callerEmail string) ([]*entity.Task, error) {
	caller, err := s.resolveCaller(callerEmail)
	if err != nil {
		return nil, err
	}
	return s.Tasks.ListByUser(caller.ID)
}

// Create stores a new task owned by the caller. Owner is fixed here and no
// update path touches it again.
func (s *TaskService) Create(ctx context.Context, callerEmail string, in CreateTaskInput) (*entity.Task, error) {
	caller, err := s.resolveCaller(callerEmail)
	if err != nil {
		return nil, err
	}

	priority := in.Priority
	if priority == "" {
		priority = entity.TaskPriorityMedium
	}
	t := &entity.Task{
		Title:       in.Title,
		Description: in.Description,
		Status:      entity.TaskStatusTodo,
		Priority:    priority,
		DueDate:     in.DueDate,
		UserID:      caller.ID,
	}
	if err := s.Tasks.Create(t); err != nil {
		return nil, err
	}
	if s.Logger != nil {
		s.Logger.WithFields(logrus.Fields{"task_id": t.ID, "user_id": caller.ID}).Debug("task created")
	}
	return t, nil
}

// fetchOwned loads a task and verifies the caller owns it. Existence is
// checked before ownership so an absent id never reports forbidden.
func (s *TaskService) fetchOwned(id, callerEmail string) (*entity.Task, error) {
	caller, err := s.resolveCaller(callerEmail)
	if err != nil {
		return nil, err
	}
	t, err := s.Tasks.GetByID(id)
	if errors.Is(err, repo.ErrNotFound) {
		return nil, ErrTaskNotFound
	}
	if err != nil {
		return nil, err
	}
	if err := Authorize(t.UserID, caller.ID); err != nil {
		return nil, err
	}
	return t, nil
}

// Get returns a single task after the ownership check.
func (s *TaskService) Get(ctx context.Context, callerEmail, id string) (*entity.Task, error) {
	return s.fetchOwned(id, callerEmail)
}

// Update replaces the mutable fields of an owned task. Concurrent updates
// to the same task are last-write-wins; the row write is the only
// serialization point.
func (s *TaskService) Update(ctx context.Context, callerEmail, id string, in UpdateTaskInput) (*entity.Task, error) {
	t, err := s.fetchOwned(id, callerEmail)
	if err != nil {
		return nil, err
	}

	t.Title = in.Title
	t.Description = in.Description
	if in.Priority != "" {
		t.Priority = in.Priority
	}
	if in.DueDate != nil {
		t.DueDate = in.DueDate
	}
	if err := s.Tasks.Update(t); err != nil {
		return nil, err
	}
	return t, nil
}

// UpdateStatus moves an owned task to a new lifecycle state.
func (s *TaskService) UpdateStatus(ctx context.Context, callerEmail, id string, status entity.TaskStatus) (*entity.Task, error) {
	t, err := s.fetchOwned(id, callerEmail)
	if err != nil {
		return nil, err
	}
	t.Status = status
	if err := s.Tasks.Update(t); err != nil {
		return nil, err
	}
	return t, nil
}

// Delete removes an owned task.
func (s *TaskService) Delete(ctx context.Context, callerEmail, id string) error {
	t, err := s.fetchOwned(id, callerEmail)
	if err != nil {
		return err
	}
	return s.Tasks.Delete(t.ID)
}
