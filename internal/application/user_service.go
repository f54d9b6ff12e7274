package application

import (
	"errors"

	"github.com/routinemonitor/backend/internal/domain/entity"
	repo "github.com/routinemonitor/backend/internal/domain/repository"
)

// UserService exposes directory CRUD over accounts. Credential changes are
// not part of this surface; the password hash is written only at
// registration.
type UserService struct {
	Users repo.UserRepository
}

func NewUserService(users repo.UserRepository) *UserService {
	return &UserService{Users: users}
}

func (s *UserService) List() ([]*entity.User, error) {
	return s.Users.List()
}

func (s *UserService) GetByID(id string) (*entity.User, error) {
	u, err := s.Users.GetByID(id)
	if errors.Is(err, repo.ErrNotFound) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, err
	}
	return u, nil
}

func (s *UserService) GetByEmail(email string) (*entity.User, error) {
	u, err := s.Users.GetByEmail(email)
	if errors.Is(err, repo.ErrNotFound) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, err
	}
	return u, nil
}

type UpdateUserInput struct {
	FirstName string
	LastName  string
	Phone     string
	AvatarURL string
}

// Update edits profile fields. Email and password hash are untouched here;
// both are fixed outside an explicit credential-change flow.
func (s *UserService) Update(id string, in UpdateUserInput) (*entity.User, error) {
	u, err := s.Users.GetByID(id)
	if errors.Is(err, repo.ErrNotFound) {
		return nil, ErrUserNotFound
	}
	if err != nil {
		return nil, err
	}
	if in.FirstName != "" {
		u.FirstName = in.FirstName
	}
	if in.LastName != "" {
		u.LastName = in.LastName
	}
	if in.Phone != "" {
		u.Phone = in.Phone
	}
	if in.AvatarURL != "" {
		u.AvatarURL = in.AvatarURL
	}
	if err := s.Users.Update(u); err != nil {
		return nil, err
	}
	return u, nil
}

func (s *UserService) Delete(id string) error {
	u, err := s.Users.GetByID(id)
	if errors.Is(err, repo.ErrNotFound) {
		return ErrUserNotFound
	}
	if err != nil {
		return err
	}
	return s.Users.Delete(u.ID)
}
