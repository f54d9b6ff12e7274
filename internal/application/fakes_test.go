package application

import (
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/routinemonitor/backend/internal/domain/entity"
	repo "github.com/routinemonitor/backend/internal/domain/repository"
)

// In-memory repositories backing the service tests. They reproduce the
// store contract the postgres implementations provide: repo.ErrNotFound on
// a missing row, generated ids and timestamps on insert.

type memoryUserRepo struct {
	mu    sync.Mutex
	seq   int
	users map[string]*entity.User
}

func newMemoryUserRepo() *memoryUserRepo {
	return &memoryUserRepo{users: make(map[string]*entity.User)}
}

func (r *memoryUserRepo) Create(u *entity.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.users {
		if existing.Email == u.Email {
			return fmt.Errorf("duplicate email %s", u.Email)
		}
	}
	r.seq++
	u.ID = fmt.Sprintf("user-%d", r.seq)
	u.CreatedAt = time.Now()
	u.UpdatedAt = u.CreatedAt
	cp := *u
	r.users[u.ID] = &cp
	return nil
}

func (r *memoryUserRepo) GetByID(id string) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	u, ok := r.users[id]
	if !ok {
		return nil, fmt.Errorf("user %s: %w", id, repo.ErrNotFound)
	}
	cp := *u
	return &cp, nil
}

func (r *memoryUserRepo) GetByEmail(email string) (*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, fmt.Errorf("user %s: %w", email, repo.ErrNotFound)
}

func (r *memoryUserRepo) ExistsByEmail(email string) (bool, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, u := range r.users {
		if u.Email == email {
			return true, nil
		}
	}
	return false, nil
}

func (r *memoryUserRepo) List() ([]*entity.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]*entity.User, 0, len(r.users))
	for _, u := range r.users {
		cp := *u
		out = append(out, &cp)
	}
	return out, nil
}

func (r *memoryUserRepo) Update(u *entity.User) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.users[u.ID]; !ok {
		return fmt.Errorf("user %s: %w", u.ID, repo.ErrNotFound)
	}
	u.UpdatedAt = time.Now()
	cp := *u
	r.users[u.ID] = &cp
	return nil
}

func (r *memoryUserRepo) Delete(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.users[id]; !ok {
		return fmt.Errorf("user %s: %w", id, repo.ErrNotFound)
	}
	delete(r.users, id)
	return nil
}

func (r *memoryUserRepo) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.users)
}

type memoryTaskRepo struct {
	mu    sync.Mutex
	seq   int
	tasks map[string]*entity.Task
}

func newMemoryTaskRepo() *memoryTaskRepo {
	return &memoryTaskRepo{tasks: make(map[string]*entity.Task)}
}

func (r *memoryTaskRepo) Create(t *entity.Task) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.seq++
	t.ID = fmt.Sprintf("task-%d", r.seq)
	t.CreatedAt = time.Now()
	t.UpdatedAt = t.CreatedAt
	cp := *t
	r.tasks[t.ID] = &cp
	return nil
}

func (r *memoryTaskRepo) GetByID(id string) (*entity.Task, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	t, ok := r.tasks[id]
	if !ok {
		return nil, fmt.Errorf("task %s: %w", id, repo.ErrNotFound)
	}
	cp := *t
	return &cp, nil
}

func (r *memoryTaskRepo) ListByUser(userID string) ([]*entity.Task, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*entity.Task
	for _, t := range r.tasks {
		if t.UserID == userID {
			cp := *t
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *memoryTaskRepo) Update(t *entity.Task) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.tasks[t.ID]; !ok {
		return fmt.Errorf("task %s: %w", t.ID, repo.ErrNotFound)
	}
	t.UpdatedAt = time.Now()
	cp := *t
	r.tasks[t.ID] = &cp
	return nil
}

func (r *memoryTaskRepo) Delete(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.tasks[id]; !ok {
		return fmt.Errorf("task %s: %w", id, repo.ErrNotFound)
	}
	delete(r.tasks, id)
	return nil
}

type memoryTeamRepo struct {
	mu      sync.Mutex
	seq     int
	members map[string]*entity.TeamMember
}

func newMemoryTeamRepo() *memoryTeamRepo {
	return &memoryTeamRepo{members: make(map[string]*entity.TeamMember)}
}

func (r *memoryTeamRepo) Create(m *entity.TeamMember) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.seq++
	m.ID = fmt.Sprintf("member-%d", r.seq)
	m.JoinDate = time.Now()
	cp := *m
	r.members[m.ID] = &cp
	return nil
}

func (r *memoryTeamRepo) GetByID(id string) (*entity.TeamMember, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	m, ok := r.members[id]
	if !ok {
		return nil, fmt.Errorf("member %s: %w", id, repo.ErrNotFound)
	}
	cp := *m
	return &cp, nil
}

func (r *memoryTeamRepo) List() ([]*entity.TeamMember, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]*entity.TeamMember, 0, len(r.members))
	for _, m := range r.members {
		cp := *m
		out = append(out, &cp)
	}
	return out, nil
}

func (r *memoryTeamRepo) SearchByName(query string) ([]*entity.TeamMember, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	var out []*entity.TeamMember
	for _, m := range r.members {
		if strings.Contains(strings.ToLower(m.Name), strings.ToLower(query)) {
			cp := *m
			out = append(out, &cp)
		}
	}
	return out, nil
}

func (r *memoryTeamRepo) Update(m *entity.TeamMember) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.members[m.ID]; !ok {
		return fmt.Errorf("member %s: %w", m.ID, repo.ErrNotFound)
	}
	cp := *m
	r.members[m.ID] = &cp
	return nil
}

func (r *memoryTeamRepo) Delete(id string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.members[id]; !ok {
		return fmt.Errorf("member %s: %w", id, repo.ErrNotFound)
	}
	delete(r.members, id)
	return nil
}

// errStoreDown stands in for an infrastructure failure (connection refused,
// pool exhausted). Services must propagate it, never translate it into a
// domain not-found or credential error.
var errStoreDown = errors.New("connection refused")

type failingUserRepo struct{}

func (failingUserRepo) Create(*entity.User) error { return errStoreDown }
func (failingUserRepo) GetByID(string) (*entity.User, error) { return nil, errStoreDown }
func (failingUserRepo) GetByEmail(string) (*entity.User, error) { return nil, errStoreDown }
func (failingUserRepo) ExistsByEmail(string) (bool, error) { return false, errStoreDown }
func (failingUserRepo) List() ([]*entity.User, error) { return nil, errStoreDown }
func (failingUserRepo) Update(*entity.User) error { return errStoreDown }
func (failingUserRepo) Delete(string) error { return errStoreDown }

type failingTaskRepo struct{}

func (failingTaskRepo) Create(*entity.Task) error { return errStoreDown }
func (failingTaskRepo) GetByID(string) (*entity.Task, error) { return nil, errStoreDown }
func (failingTaskRepo) ListByUser(string) ([]*entity.Task, error) { return nil, errStoreDown }
func (failingTaskRepo) Update(*entity.Task) error { return errStoreDown }
func (failingTaskRepo) Delete(string) error { return errStoreDown }

type failingTeamRepo struct{}

func (failingTeamRepo) Create(*entity.TeamMember) error { return errStoreDown }
func (failingTeamRepo) GetByID(string) (*entity.TeamMember, error) { return nil, errStoreDown }
func (failingTeamRepo) List() ([]*entity.TeamMember, error) { return nil, errStoreDown }
func (failingTeamRepo) SearchByName(string) ([]*entity.TeamMember, error) { return nil, errStoreDown }
func (failingTeamRepo) Update(*entity.TeamMember) error { return errStoreDown }
func (failingTeamRepo) Delete(string) error { return errStoreDown }
