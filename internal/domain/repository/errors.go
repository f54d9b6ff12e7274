package repository

import "errors"

// ErrNotFound is returned by every repository when the addressed row does
// not exist. Services translate it into their domain not-found (or
// invalid-credentials) errors; any other repository error is an
// infrastructure failure and propagates unchanged.
var ErrNotFound = errors.New("not found")
