package service

import (
	"context"

	"github.com/sidereusnuntius/rogold/internal/domain"
)

// Relationships owns the per-user profile records and the friend request
// lifecycle. For every ordered pair of users the relationship is in exactly
// one of four states: none, pending one way, pending the other way, or
// friends; each operation is a transition between them.
type Relationships interface {
	// SendRequest moves (sender, receiver) from none to pending. Fails with
	// ErrSelfRequest, ErrUnknownUser, ErrAlreadyFriends,
	// ErrRequestAlreadySent, or ErrReciprocalRequest when the pair is in any
	// other state; the stores are untouched on failure.
	SendRequest(ctx context.Context, sender, receiver string) error
	// AcceptRequest moves a pending request from sender into friendship.
	// When no such request is pending the call is a no-op that still
	// succeeds, which also makes it idempotent.
	AcceptRequest(ctx context.Context, accepter, sender string) error
	// DeclineRequest drops a pending request without creating a friendship.
	// Vacuous declines succeed, like vacuous accepts.
	DeclineRequest(ctx context.Context, decliner, sender string) error
	AreFriends(ctx context.Context, a, b string) (bool, error)

	// AddFavorite appends a game title to the user's favorites. Fails with
	// ErrInvalidTitle for blank titles and ErrAlreadyFavorited for repeats;
	// insertion order is preserved for display.
	AddFavorite(ctx context.Context, username, title string) error
	RemoveFavorite(ctx context.Context, username, title string) error

	// GetProfile materializes the user's profile, creating the default one on
	// first access. Reading never writes back; normalization is persisted by
	// the repair pass that runs when the store is opened.
	GetProfile(ctx context.Context, username string) (domain.Profile, error)
	// UpdateProfile overwrites the mutable display fields. Empty arguments
	// leave the corresponding field unchanged.
	UpdateProfile(ctx context.Context, username, bio, status, picture string) error
}
