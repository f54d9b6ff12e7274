package repository

import "github.com/routinemonitor/backend/internal/domain/entity"

// TaskRepository defines the interface for task-related database operations.
// Listing is always scoped to an owning user; single-task lookups return the
// row regardless of owner so the caller can distinguish absent from forbidden.
type TaskRepository interface {
	Create(t *entity.Task) error
	GetByID(id string) (*entity.Task, error)
	ListByUser(userID string) ([]*entity.Task, error)
	Update(t *entity.Task) error
	Delete(id string) error
}
