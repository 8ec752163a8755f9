package docstore

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog/log"
	"github.com/sidereusnuntius/rogold/internal/storage"
)

var store storage.Store
var path string

func TestMain(m *testing.M) {
	var err error
	path, err = os.MkdirTemp(".", "tempdir")
	if err != nil {
		log.Fatal().Err(err).Msg("failed to setup tests")
		return
	}

	store = &DocStore{
		Root: path,
	}

	m.Run()
	if err = os.RemoveAll(path); err != nil {
		log.Fatal().Err(err).Msg("removal of temporary directory failed")
	}
}

func TestSaveAndLoad(t *testing.T) {
	cases := []struct {
		Casename string
		Key      string
		Content  string
	}{
		{"save document", "accounts", `{"a":1}`},
		{"overwrite document", "accounts", `{"a":2}`},
		{"second document", "profiles", `{}`},
	}

	for _, c := range cases {
		t.Run(c.Casename, func(t *testing.T) {
			err := store.Save(c.Key, []byte(c.Content))
			if err != nil {
				t.Fatal("unexpected error:", err)
			}

			content, err := store.Load(c.Key)
			if err != nil {
				t.Fatalf("unexpected error: %s", err)
			}

			if string(content) != c.Content {
				t.Errorf("expected \"%s\", got \"%s\"", c.Content, content)
			}
		})
	}
}

func TestLoadMissing(t *testing.T) {
	_, err := store.Load("never-saved")
	if !errors.Is(err, storage.ErrNotExist) {
		t.Errorf("unexpected err: %s\nexpected \"%s\"", err, storage.ErrNotExist)
	}
}

func TestSaveReplacesWholeDocument(t *testing.T) {
	if err := store.Save("topics", []byte(`[1,2,3]`)); err != nil {
		t.Fatal(err)
	}
	if err := store.Save("topics", []byte(`[]`)); err != nil {
		t.Fatal(err)
	}

	content, err := os.ReadFile(filepath.Join(path, "topics.json"))
	if err != nil {
		t.Fatalf("failed to open document: %s", err)
	}
	if string(content) != `[]` {
		t.Errorf("expected \"[]\", got \"%s\"", content)
	}
}

func TestNewRejectsFile(t *testing.T) {
	f, err := os.CreateTemp(".", "plainfile")
	if err != nil {
		t.Fatal(err)
	}
	name := f.Name()
	f.Close()
	defer os.Remove(name)

	_, err = New(name)
	if !errors.Is(err, storage.ErrNotDir) {
		t.Errorf("unexpected err: %s\nexpected \"%s\"", err, storage.ErrNotDir)
	}
}
