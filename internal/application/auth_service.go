package application

import (
	"context"
	"errors"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/routinemonitor/backend/internal/domain/entity"
	repo "github.com/routinemonitor/backend/internal/domain/repository"
	"github.com/routinemonitor/backend/pkg/helpers"
)

// AuthService verifies credentials against the user store and issues bearer
// tokens. It holds no mutable state of its own; the token TTL and secret
// live inside the JWT manager.
type AuthService struct {
	Users  repo.UserRepository
	JWT    *helpers.JWTManager
	Logger *logrus.Logger
}

func NewAuthService(users repo.UserRepository, jwt *helpers.JWTManager, logger *logrus.Logger) *AuthService {
	return &AuthService{Users: users, JWT: jwt, Logger: logger}
}

type RegisterInput struct {
	FirstName string
	LastName  string
	Email     string
	Phone     string
	Password  string
}

// UserSummary is the public view of an account returned by register/login.
// It never carries the password hash.
type UserSummary struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	AvatarURL string `json:"avatar"`
}

type AuthResult struct {
	Token     string
	ExpiresAt time.Time
	User      UserSummary
}

func summaryOf(u *entity.User) UserSummary {
	return UserSummary{ID: u.ID, Name: u.FullName(), Email: u.Email, AvatarURL: u.AvatarURL}
}

// Register creates a new account and logs it straight in. The duplicate
// check runs before the insert; the unique index on users.email backstops
// it under concurrent registrations.
func (s *AuthService) Register(ctx context.Context, in RegisterInput) (*AuthResult, error) {
	exists, err := s.Users.ExistsByEmail(in.Email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, ErrEmailExists
	}

	hash, err := helpers.HashPassword(in.Password)
	if err != nil {
		return nil, err
	}

	gender := helpers.RandomGender()
	u := &entity.User{
		FirstName: in.FirstName,
		LastName:  in.LastName,
		Email:     in.Email,
		Phone:     in.Phone,
		Password:  hash,
		Gender:    gender,
		AvatarURL: helpers.AvatarURLFor(gender),
		IsActive:  true,
	}
	if err := s.Users.Create(u); err != nil {
		return nil, err
	}

	token, exp, err := s.JWT.Issue(u.Email)
	if err != nil {
		if s.Logger != nil {
			s.Logger.WithError(err).WithField("user_id", u.ID).Error("issue token failed")
		}
		return nil, err
	}
	if s.Logger != nil {
		s.Logger.WithFields(logrus.Fields{"user_id": u.ID, "email": u.Email}).Info("user registered")
	}
	return &AuthResult{Token: token, ExpiresAt: exp, User: summaryOf(u)}, nil
}

// Login checks the email/password pair and issues a fresh token. Unknown
// email and wrong password return the same error so callers cannot probe
// which one failed.
func (s *AuthService) Login(ctx context.Context, email, password string) (*AuthResult, error) {
	u, err := s.Users.GetByEmail(email)
	if errors.Is(err, repo.ErrNotFound) {
		return nil, ErrInvalidCredentials
	}
	if err != nil {
		return nil, err
	}
	if !helpers.CompareHashAndPassword(u.Password, password) {
		return nil, ErrInvalidCredentials
	}

	token, exp, err := s.JWT.Issue(u.Email)
	if err != nil {
		if s.Logger != nil {
			s.Logger.WithError(err).WithField("user_id", u.ID).Error("issue token failed")
		}
		return nil, err
	}
	return &AuthResult{Token: token, ExpiresAt: exp, User: summaryOf(u)}, nil
}
