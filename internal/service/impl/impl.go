package core

import (
	"encoding/json"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"github.com/sidereusnuntius/rogold/internal/config"
	"github.com/sidereusnuntius/rogold/internal/domain"
	"github.com/sidereusnuntius/rogold/internal/service"
	"github.com/sidereusnuntius/rogold/internal/state"
	"github.com/sidereusnuntius/rogold/internal/storage"
)

const BcryptCost = 10

// Document names in the backing store.
const (
	accountsDoc = "accounts"
	profilesDoc = "profiles"
	topicsDoc   = "topics"
	sessionDoc  = "session"
)

type sessionPointer struct {
	AccountID string `json:"accountId"`
}

// AppService holds every social document in memory and writes the whole
// document back on each mutation, the way the original browser storage
// worked. Both sides of a friend transition live in the one profiles
// document, so a single save commits them together.
type AppService struct {
	Config config.Configuration
	store  storage.Store

	mu       sync.Mutex
	accounts []domain.Account
	byID     map[string]int
	byName   map[string]int
	profiles map[string]*domain.ProfileRecord
	topics   []domain.Topic
	session  sessionPointer

	lastForumID int64
	now         func() time.Time
	newID       func() string
}

func New(st state.State) (service.Service, error) {
	s := &AppService{
		Config:   st.Config,
		store:    st.Store,
		byID:     map[string]int{},
		byName:   map[string]int{},
		profiles: map[string]*domain.ProfileRecord{},
		now:      time.Now,
		newID:    uuid.NewString,
	}

	if err := s.load(); err != nil {
		return nil, err
	}

	if s.repair() {
		if err := s.saveProfiles(); err != nil {
			return nil, err
		}
	}

	return s, nil
}

func (s *AppService) load() error {
	if err := loadDoc(s, accountsDoc, &s.accounts); err != nil {
		return err
	}
	for i, a := range s.accounts {
		s.byID[a.ID] = i
		s.byName[a.Username] = i
	}

	if err := loadDoc(s, profilesDoc, &s.profiles); err != nil {
		return err
	}
	if s.profiles == nil {
		s.profiles = map[string]*domain.ProfileRecord{}
	}

	if err := loadDoc(s, topicsDoc, &s.topics); err != nil {
		return err
	}
	for _, t := range s.topics {
		if t.ID > s.lastForumID {
			s.lastForumID = t.ID
		}
		for _, r := range t.Replies {
			if r.ID > s.lastForumID {
				s.lastForumID = r.ID
			}
		}
	}

	if err := loadDoc(s, sessionDoc, &s.session); err != nil {
		return err
	}
	if s.session.AccountID != "" {
		if _, ok := s.byID[s.session.AccountID]; !ok {
			s.session = sessionPointer{}
		}
	}

	return nil
}

// loadDoc fills v from the named document. A missing document leaves v at
// its empty default; a document that no longer parses is discarded the same
// way, with a diagnostic, so corruption never propagates past this point.
func loadDoc[T any](s *AppService, key string, v *T) error {
	content, err := s.store.Load(key)
	if errors.Is(err, storage.ErrNotExist) {
		return nil
	}
	if err != nil {
		return err
	}

	var parsed T
	if err = json.Unmarshal(content, &parsed); err != nil {
		log.Error().Err(err).Str("document", key).Msg("discarding corrupt document")
		return nil
	}
	*v = parsed
	return nil
}

func (s *AppService) saveDoc(key string, v any) error {
	content, err := json.Marshal(v)
	if err != nil {
		return err
	}
	return s.store.Save(key, content)
}

func (s *AppService) saveAccounts() error { return s.saveDoc(accountsDoc, s.accounts) }
func (s *AppService) saveProfiles() error { return s.saveDoc(profilesDoc, s.profiles) }
func (s *AppService) saveTopics() error   { return s.saveDoc(topicsDoc, s.topics) }
func (s *AppService) saveSession() error  { return s.saveDoc(sessionDoc, s.session) }

// nextForumID derives ids from the clock but never reissues one: an
// allocation landing on an already issued millisecond bumps past it.
func (s *AppService) nextForumID() int64 {
	id := s.now().UnixMilli()
	if id <= s.lastForumID {
		id = s.lastForumID + 1
	}
	s.lastForumID = id
	return id
}
