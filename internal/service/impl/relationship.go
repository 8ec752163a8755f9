package core

import (
	"context"

	"github.com/sidereusnuntius/rogold/internal/domain"
	"github.com/sidereusnuntius/rogold/internal/service"
)

const (
	defaultBio    = "This user has not written a description yet."
	defaultStatus = "Offline"
)

// resolve maps a username to its stable account id. Callers must hold s.mu.
func (s *AppService) resolve(username string) (string, bool) {
	i, ok := s.byName[username]
	if !ok {
		return "", false
	}
	return s.accounts[i].ID, true
}

func (s *AppService) usernameOf(id string) (string, bool) {
	i, ok := s.byID[id]
	if !ok {
		return "", false
	}
	return s.accounts[i].Username, true
}

// getOrCreate returns the stored profile for an account id, materializing
// the default one on first access. It never persists; mutating callers
// commit with saveProfiles, and reads stay reads.
func (s *AppService) getOrCreate(id string) *domain.ProfileRecord {
	p, ok := s.profiles[id]
	if !ok {
		joined := s.now().UTC()
		if i, ok := s.byID[id]; ok {
			joined = s.accounts[i].CreatedAt
		}
		p = &domain.ProfileRecord{
			Bio:              defaultBio,
			Status:           defaultStatus,
			Friends:          []string{},
			SentRequests:     []string{},
			ReceivedRequests: []string{},
			Favorites:        []string{},
			JoinDate:         joined,
		}
		s.profiles[id] = p
	}
	return p
}

func contains(list []string, v string) bool {
	for _, item := range list {
		if item == v {
			return true
		}
	}
	return false
}

func remove(list []string, v string) []string {
	out := list[:0]
	for _, item := range list {
		if item != v {
			out = append(out, item)
		}
	}
	return out
}

func (s *AppService) SendRequest(ctx context.Context, sender, receiver string) error {
	if sender == receiver {
		return service.ErrSelfRequest
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	senderID, ok := s.resolve(sender)
	if !ok {
		return service.ErrUnknownUser
	}
	receiverID, ok := s.resolve(receiver)
	if !ok {
		return service.ErrUnknownUser
	}

	senderProfile := s.getOrCreate(senderID)
	receiverProfile := s.getOrCreate(receiverID)

	switch {
	case contains(senderProfile.Friends, receiverID):
		return service.ErrAlreadyFriends
	case contains(senderProfile.SentRequests, receiverID):
		return service.ErrRequestAlreadySent
	case contains(senderProfile.ReceivedRequests, receiverID):
		return service.ErrReciprocalRequest
	}

	// Both records live in the one profiles document, so this commits the
	// mirrored pair in a single write.
	senderProfile.SentRequests = append(senderProfile.SentRequests, receiverID)
	receiverProfile.ReceivedRequests = append(receiverProfile.ReceivedRequests, senderID)
	return s.saveProfiles()
}

func (s *AppService) AcceptRequest(ctx context.Context, accepter, sender string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	accepterID, ok := s.resolve(accepter)
	if !ok {
		return service.ErrUnknownUser
	}
	senderID, ok := s.resolve(sender)
	if !ok {
		return service.ErrUnknownUser
	}

	accepterProfile := s.getOrCreate(accepterID)
	if !contains(accepterProfile.ReceivedRequests, senderID) {
		// Nothing pending; accepting is a vacuous success.
		return nil
	}
	senderProfile := s.getOrCreate(senderID)

	accepterProfile.ReceivedRequests = remove(accepterProfile.ReceivedRequests, senderID)
	senderProfile.SentRequests = remove(senderProfile.SentRequests, accepterID)
	if !contains(accepterProfile.Friends, senderID) {
		accepterProfile.Friends = append(accepterProfile.Friends, senderID)
	}
	if !contains(senderProfile.Friends, accepterID) {
		senderProfile.Friends = append(senderProfile.Friends, accepterID)
	}
	return s.saveProfiles()
}

func (s *AppService) DeclineRequest(ctx context.Context, decliner, sender string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	declinerID, ok := s.resolve(decliner)
	if !ok {
		return service.ErrUnknownUser
	}
	senderID, ok := s.resolve(sender)
	if !ok {
		return service.ErrUnknownUser
	}

	declinerProfile := s.getOrCreate(declinerID)
	if !contains(declinerProfile.ReceivedRequests, senderID) {
		return nil
	}
	senderProfile := s.getOrCreate(senderID)

	declinerProfile.ReceivedRequests = remove(declinerProfile.ReceivedRequests, senderID)
	senderProfile.SentRequests = remove(senderProfile.SentRequests, declinerID)
	return s.saveProfiles()
}

func (s *AppService) AreFriends(ctx context.Context, a, b string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	aID, ok := s.resolve(a)
	if !ok {
		return false, nil
	}
	bID, ok := s.resolve(b)
	if !ok {
		return false, nil
	}

	p, ok := s.profiles[aID]
	if !ok {
		return false, nil
	}
	return contains(p.Friends, bID), nil
}

func (s *AppService) GetProfile(ctx context.Context, username string) (domain.Profile, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id, ok := s.resolve(username)
	if !ok {
		return domain.Profile{}, service.ErrUnknownUser
	}

	p := s.getOrCreate(id)
	return domain.Profile{
		Username:         username,
		Bio:              p.Bio,
		Status:           p.Status,
		Friends:          s.resolveAll(p.Friends),
		SentRequests:     s.resolveAll(p.SentRequests),
		ReceivedRequests: s.resolveAll(p.ReceivedRequests),
		Favorites:        append([]string{}, p.Favorites...),
		ProfilePicture:   p.ProfilePicture,
		JoinDate:         p.JoinDate,
	}, nil
}

// resolveAll maps account ids back to usernames for display, silently
// skipping ids that no longer resolve.
func (s *AppService) resolveAll(ids []string) []string {
	names := make([]string, 0, len(ids))
	for _, id := range ids {
		if name, ok := s.usernameOf(id); ok {
			names = append(names, name)
		}
	}
	return names
}

func (s *AppService) UpdateProfile(ctx context.Context, username, bio, status, picture string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	id, ok := s.resolve(username)
	if !ok {
		return service.ErrUnknownUser
	}

	p := s.getOrCreate(id)
	if bio != "" {
		p.Bio = bio
	}
	if status != "" {
		p.Status = status
	}
	if picture != "" {
		p.ProfilePicture = picture
	}
	return s.saveProfiles()
}
