package db

import (
	"errors"
)

var (
	ErrNotFound = errors.New("not found")
	ErrInternal = errors.New("")
)

// DB is the game store: a fixed schema, embedded SQL database holding the
// published games and the saved builder maps. Social state lives elsewhere;
// the two stores only ever meet in the handlers.
type DB interface {
	Games
	Maps
}
