package service

import "context"

// Sessions tracks which user, if any, the local browser is signed in as.
// Only a pointer to the account is persisted, never the credential. The
// pointer is set by Authenticate and survives renames, since it holds the
// stable account id.
type Sessions interface {
	// CurrentUser returns the signed-in username, or "" when nobody is.
	CurrentUser(ctx context.Context) (string, error)
	Logout(ctx context.Context) error
}
