package service

import (
	"context"

	"github.com/sidereusnuntius/rogold/internal/domain"
)

// Directory owns the credential records. Accounts are keyed by a stable
// opaque id; the username is a mutable display key with a uniqueness
// constraint.
type Directory interface {
	// Register hashes the password and persists a new account. Fails with
	// ErrDuplicateUser when the username is taken, and with ErrInvalidInput
	// when the username or password fail validation.
	Register(ctx context.Context, username, password string) error
	// Authenticate verifies the credentials and, on success, establishes the
	// session. A missing account and a wrong password are indistinguishable
	// to the caller: both fail with ErrInvalidCredentials.
	Authenticate(ctx context.Context, username, password string) (domain.Account, error)
	// UpdateAccount changes the username and/or the password, verifying the
	// current password first. Profiles and relationship records are keyed by
	// account id, so a rename never migrates them.
	UpdateAccount(ctx context.Context, username, currentPassword, newUsername, newPassword string) (domain.Account, error)
	// ListUsernames returns every registered username in registration order.
	ListUsernames(ctx context.Context) ([]string, error)
}
