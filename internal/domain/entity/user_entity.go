package entity

import (
	"time"
)

// User is the aggregate root for the account domain.
// Password holds a bcrypt hash, never the plaintext.
type User struct {
	ID        string
	FirstName string
	LastName  string
	Email     string
	Phone     string
	Password  string
	Gender    string
	AvatarURL string
	IsActive  bool
	CreatedAt time.Time
	UpdatedAt time.Time
}

// FullName joins first and last name for display purposes.
func (u *User) FullName() string {
	if u.FirstName == "" {
		return u.LastName
	}
	if u.LastName == "" {
		return u.FirstName
	}
	return u.FirstName + " " + u.LastName
}
