package core

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/sidereusnuntius/rogold/internal/domain"
	"github.com/sidereusnuntius/rogold/internal/state"
	"github.com/sidereusnuntius/rogold/internal/storage"
	"github.com/sidereusnuntius/rogold/internal/storage/docstore"
)

var ctx = context.Background()

// newTestService opens a service over a fresh document store. The store is
// returned too, so tests can reopen the service and check what survived.
func newTestService(t *testing.T) (*AppService, storage.Store) {
	t.Helper()

	store, err := docstore.New(t.TempDir())
	if err != nil {
		t.Fatalf("failed to set up storage: %s", err)
	}
	return reopen(t, store), store
}

func reopen(t *testing.T, store storage.Store) *AppService {
	t.Helper()

	svc, err := New(state.State{Store: store})
	if err != nil {
		t.Fatalf("failed to open service: %s", err)
	}
	return svc.(*AppService)
}

func register(t *testing.T, s *AppService, names ...string) {
	t.Helper()

	for _, name := range names {
		if err := s.Register(ctx, name, name+" password"); err != nil {
			t.Fatalf("failed to register %s: %s", name, err)
		}
	}
}

// seeded builds a service directly over the given store, skipping the load
// and the password hashing, for tests that only care about what gets written.
func seeded(store storage.Store, names ...string) *AppService {
	s := &AppService{
		store:    store,
		byID:     map[string]int{},
		byName:   map[string]int{},
		profiles: map[string]*domain.ProfileRecord{},
		now:      time.Now,
		newID:    uuid.NewString,
	}
	for _, name := range names {
		s.accounts = append(s.accounts, domain.Account{ID: "id-" + name, Username: name})
		i := len(s.accounts) - 1
		s.byID[s.accounts[i].ID] = i
		s.byName[name] = i
	}
	return s
}
