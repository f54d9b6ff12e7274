package application

import "errors"

// Expected-in-normal-operation failures. Handlers translate these into HTTP
// statuses; anything else coming out of a service is an internal failure.
var (
	ErrEmailExists        = errors.New("email already exists")
	ErrInvalidCredentials = errors.New("invalid email or password")
	ErrUserNotFound       = errors.New("user not found")
	ErrTaskNotFound       = errors.New("task not found")
	ErrTeamMemberNotFound = errors.New("team member not found")
	ErrForbidden          = errors.New("forbidden")
)
