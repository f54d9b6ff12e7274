package application

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUserGetAndList(t *testing.T) {
	users := newMemoryUserRepo()
	svc := NewUserService(users)
	alice := seedUser(t, users, "alice@example.com")

	got, err := svc.GetByID(alice.ID)
	require.NoError(t, err)
	assert.Equal(t, alice.Email, got.Email)

	got, err = svc.GetByEmail("alice@example.com")
	require.NoError(t, err)
	assert.Equal(t, alice.ID, got.ID)

	all, err := svc.List()
	require.NoError(t, err)
	assert.Len(t, all, 1)

	_, err = svc.GetByID("no-such-user")
	assert.ErrorIs(t, err, ErrUserNotFound)
	_, err = svc.GetByEmail("ghost@example.com")
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestUserUpdatePreservesCredentials(t *testing.T) {
	users := newMemoryUserRepo()
	svc := NewUserService(users)
	alice := seedUser(t, users, "alice@example.com")

	updated, err := svc.Update(alice.ID, UpdateUserInput{FirstName: "Alicia", Phone: "+15551234567"})
	require.NoError(t, err)
	assert.Equal(t, "Alicia", updated.FirstName)
	assert.Equal(t, "User", updated.LastName, "fields left empty stay unchanged")
	assert.Equal(t, "+15551234567", updated.Phone)
	assert.Equal(t, alice.Email, updated.Email)
	assert.Equal(t, alice.Password, updated.Password)
}

func TestUserStoreFailurePropagates(t *testing.T) {
	svc := NewUserService(failingUserRepo{})

	_, err := svc.GetByID("user-1")
	assert.ErrorIs(t, err, errStoreDown)
	assert.NotErrorIs(t, err, ErrUserNotFound, "a store outage must not read as not-found")

	_, err = svc.GetByEmail("alice@example.com")
	assert.ErrorIs(t, err, errStoreDown)

	_, err = svc.Update("user-1", UpdateUserInput{FirstName: "Alicia"})
	assert.ErrorIs(t, err, errStoreDown)

	assert.ErrorIs(t, svc.Delete("user-1"), errStoreDown)
}

func TestUserDelete(t *testing.T) {
	users := newMemoryUserRepo()
	svc := NewUserService(users)
	alice := seedUser(t, users, "alice@example.com")

	require.NoError(t, svc.Delete(alice.ID))
	_, err := svc.GetByID(alice.ID)
	assert.ErrorIs(t, err, ErrUserNotFound)

	assert.ErrorIs(t, svc.Delete(alice.ID), ErrUserNotFound)
}
