package docstore

import (
	"errors"
	"os"
	"path/filepath"

	"github.com/rs/zerolog/log"
	"github.com/sidereusnuntius/rogold/internal/storage"
)

// DocStore keeps each document as a single JSON file under Root. It is the
// local-portal analogue of a browser's key value storage: one file per key,
// replaced wholesale on every save.
type DocStore struct {
	Root string
}

func New(root string) (s storage.Store, err error) {
	s = &DocStore{
		Root: root,
	}

	info, err := os.Stat(root)
	if err == nil {
		if !info.IsDir() {
			log.Error().Str("root", root).Msg("not a directory")
			err = storage.ErrNotDir
		}
		return
	}

	if errors.Is(err, os.ErrNotExist) {
		err = os.MkdirAll(root, 0o700)
	}

	if err != nil {
		log.Error().Err(err).Msg("internal error when setting up storage")
		err = storage.ErrInternal
	}

	return
}

func (s *DocStore) Load(key string) (content []byte, err error) {
	path := s.path(key)
	content, err = os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, storage.ErrNotExist
		}
		log.Error().Err(err).Msg("failed to read document at path " + path)
		return nil, storage.ErrInternal
	}
	return
}

func (s *DocStore) Save(key string, value []byte) error {
	path := s.path(key)
	// Write to a sibling temp file and rename, so a crash mid-write can't
	// leave a truncated document behind.
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, value, 0o600); err != nil {
		log.Error().Err(err).Msg("failed to write document at path " + path)
		return storage.ErrInternal
	}
	if err := os.Rename(tmp, path); err != nil {
		log.Error().Err(err).Msg("failed to replace document at path " + path)
		return storage.ErrInternal
	}
	return nil
}

func (s *DocStore) path(key string) string {
	return filepath.Join(s.Root, key+".json")
}
