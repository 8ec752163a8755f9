package storage

import (
	"errors"
)

var (
	ErrNotDir    = errors.New("given root is not a directory")
	ErrInternal  = errors.New("internal error")
	ErrNotExist  = errors.New("document does not exist")
)

// Store is a persistent mapping from a document name to its JSON encoded
// content. Every Save is a whole-document overwrite; there are no partial
// writes. Load of a name that was never saved returns ErrNotExist so callers
// can fall back to an empty default.
type Store interface {
	Load(key string) ([]byte, error)
	Save(key string, value []byte) error
}
