package service

import (
	"errors"
	"fmt"
)

var (
	ErrConflict     = errors.New("conflict")
	ErrInvalidInput = errors.New("invalid")
	ErrNotFound     = errors.New("not found")
)

// Named failures, each wrapping its taxonomy class so callers can match
// either the specific condition or the class.
var (
	ErrDuplicateUser      = fmt.Errorf("%w: username already exists", ErrConflict)
	ErrInvalidCredentials = errors.New("incorrect username or password")
	ErrUnknownUser        = fmt.Errorf("%w: unknown user", ErrNotFound)
	ErrSelfRequest        = fmt.Errorf("%w: cannot send a friend request to yourself", ErrInvalidInput)
	ErrAlreadyFriends     = fmt.Errorf("%w: already friends", ErrConflict)
	ErrRequestAlreadySent = fmt.Errorf("%w: friend request already sent", ErrConflict)
	ErrReciprocalRequest  = fmt.Errorf("%w: this user already sent you a friend request; accept it instead", ErrConflict)
	ErrInvalidTitle       = fmt.Errorf("%w: invalid title", ErrInvalidInput)
	ErrAlreadyFavorited   = fmt.Errorf("%w: already in favorites", ErrConflict)
	ErrNotFavorited       = fmt.Errorf("%w: not in favorites", ErrNotFound)
	ErrUnknownTopic       = fmt.Errorf("%w: unknown topic", ErrNotFound)
)

// Service is the portal's social core. All mutating operations either apply
// fully and persist, or fail leaving the stores untouched; none of them
// panics across this boundary.
type Service interface {
	Directory
	Relationships
	Forum
	Sessions
}
