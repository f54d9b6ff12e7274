package application

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/routinemonitor/backend/internal/domain/entity"
)

// seedUser inserts an account directly, bypassing registration.
func seedUser(t *testing.T, users *memoryUserRepo, email string) *entity.User {
	t.Helper()
	u := &entity.User{FirstName: "Test", LastName: "User", Email: email, Password: "x", IsActive: true}
	require.NoError(t, users.Create(u))
	return u
}

func newTaskFixture(t *testing.T) (*TaskService, *memoryUserRepo, *memoryTaskRepo) {
	t.Helper()
	users := newMemoryUserRepo()
	tasks := newMemoryTaskRepo()
	return NewTaskService(tasks, users, nil), users, tasks
}

func TestTaskCreateAssignsCallerAsOwner(t *testing.T) {
	svc, users, _ := newTaskFixture(t)
	alice := seedUser(t, users, "alice@example.com")

	created, err := svc.Create(context.Background(), alice.Email, CreateTaskInput{Title: "write report"})
	require.NoError(t, err)

	assert.Equal(t, alice.ID, created.UserID)
	assert.Equal(t, entity.TaskStatusTodo, created.Status)
	assert.Equal(t, entity.TaskPriorityMedium, created.Priority, "priority defaults to medium")
}

func TestTaskListScopedToCaller(t *testing.T) {
	svc, users, _ := newTaskFixture(t)
	alice := seedUser(t, users, "alice@example.com")
	bob := seedUser(t, users, "bob@example.com")

	_, err := svc.Create(context.Background(), alice.Email, CreateTaskInput{Title: "alice 1"})
	require.NoError(t, err)
	_, err = svc.Create(context.Background(), alice.Email, CreateTaskInput{Title: "alice 2"})
	require.NoError(t, err)
	_, err = svc.Create(context.Background(), bob.Email, CreateTaskInput{Title: "bob 1"})
	require.NoError(t, err)

	got, err := svc.List(context.Background(), alice.Email)
	require.NoError(t, err)
	assert.Len(t, got, 2)
	for _, task := range got {
		assert.Equal(t, alice.ID, task.UserID)
	}
}

func TestTaskOwnershipEnforcement(t *testing.T) {
	svc, users, _ := newTaskFixture(t)
	alice := seedUser(t, users, "alice@example.com")
	bob := seedUser(t, users, "bob@example.com")

	created, err := svc.Create(context.Background(), alice.Email, CreateTaskInput{Title: "private"})
	require.NoError(t, err)

	_, err = svc.Get(context.Background(), bob.Email, created.ID)
	assert.ErrorIs(t, err, ErrForbidden)

	_, err = svc.Update(context.Background(), bob.Email, created.ID, UpdateTaskInput{Title: "hijacked"})
	assert.ErrorIs(t, err, ErrForbidden)

	_, err = svc.UpdateStatus(context.Background(), bob.Email, created.ID, entity.TaskStatusCompleted)
	assert.ErrorIs(t, err, ErrForbidden)

	err = svc.Delete(context.Background(), bob.Email, created.ID)
	assert.ErrorIs(t, err, ErrForbidden)

	// The owner still sees the task untouched.
	got, err := svc.Get(context.Background(), alice.Email, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "private", got.Title)
	assert.Equal(t, entity.TaskStatusTodo, got.Status)
}

func TestTaskOwnerOperations(t *testing.T) {
	svc, users, _ := newTaskFixture(t)
	alice := seedUser(t, users, "alice@example.com")

	due := time.Now().Add(48 * time.Hour)
	created, err := svc.Create(context.Background(), alice.Email, CreateTaskInput{
		Title: "draft", Priority: entity.TaskPriorityHigh, DueDate: &due,
	})
	require.NoError(t, err)

	updated, err := svc.Update(context.Background(), alice.Email, created.ID, UpdateTaskInput{
		Title: "final", Description: "ready for review", Priority: entity.TaskPriorityUrgent,
	})
	require.NoError(t, err)
	assert.Equal(t, "final", updated.Title)
	assert.Equal(t, entity.TaskPriorityUrgent, updated.Priority)
	assert.Equal(t, alice.ID, updated.UserID, "update must not change the owner")

	moved, err := svc.UpdateStatus(context.Background(), alice.Email, created.ID, entity.TaskStatusInProgress)
	require.NoError(t, err)
	assert.Equal(t, entity.TaskStatusInProgress, moved.Status)

	require.NoError(t, svc.Delete(context.Background(), alice.Email, created.ID))
	_, err = svc.Get(context.Background(), alice.Email, created.ID)
	assert.ErrorIs(t, err, ErrTaskNotFound)
}

func TestTaskMissingIDReportsNotFoundNotForbidden(t *testing.T) {
	svc, users, _ := newTaskFixture(t)
	alice := seedUser(t, users, "alice@example.com")

	_, err := svc.Get(context.Background(), alice.Email, "no-such-task")
	assert.ErrorIs(t, err, ErrTaskNotFound)

	_, err = svc.Update(context.Background(), alice.Email, "no-such-task", UpdateTaskInput{Title: "x"})
	assert.ErrorIs(t, err, ErrTaskNotFound)

	err = svc.Delete(context.Background(), alice.Email, "no-such-task")
	assert.ErrorIs(t, err, ErrTaskNotFound)
}

func TestTaskStoreFailurePropagates(t *testing.T) {
	users := newMemoryUserRepo()
	alice := seedUser(t, users, "alice@example.com")
	svc := NewTaskService(failingTaskRepo{}, users, nil)

	_, err := svc.Get(context.Background(), alice.Email, "task-1")
	assert.ErrorIs(t, err, errStoreDown)
	assert.NotErrorIs(t, err, ErrTaskNotFound, "a store outage must not read as not-found")
	assert.NotErrorIs(t, err, ErrForbidden)

	_, err = svc.Update(context.Background(), alice.Email, "task-1", UpdateTaskInput{Title: "x"})
	assert.ErrorIs(t, err, errStoreDown)

	err = svc.Delete(context.Background(), alice.Email, "task-1")
	assert.ErrorIs(t, err, errStoreDown)

	_, err = svc.List(context.Background(), alice.Email)
	assert.ErrorIs(t, err, errStoreDown)
}

func TestTaskCallerLookupFailurePropagates(t *testing.T) {
	svc := NewTaskService(newMemoryTaskRepo(), failingUserRepo{}, nil)

	_, err := svc.List(context.Background(), "alice@example.com")
	assert.ErrorIs(t, err, errStoreDown)
	assert.NotErrorIs(t, err, ErrUserNotFound)
}

func TestTaskUnknownCaller(t *testing.T) {
	svc, _, _ := newTaskFixture(t)

	_, err := svc.List(context.Background(), "ghost@example.com")
	assert.ErrorIs(t, err, ErrUserNotFound)

	_, err = svc.Create(context.Background(), "ghost@example.com", CreateTaskInput{Title: "x"})
	assert.ErrorIs(t, err, ErrUserNotFound)
}
