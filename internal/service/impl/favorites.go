package core

import (
	"context"
	"strings"

	"github.com/sidereusnuntius/rogold/internal/service"
)

func (s *AppService) AddFavorite(ctx context.Context, username, title string) error {
	if strings.TrimSpace(title) == "" {
		return service.ErrInvalidTitle
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	id, ok := s.resolve(username)
	if !ok {
		return service.ErrUnknownUser
	}

	p := s.getOrCreate(id)
	if contains(p.Favorites, title) {
		return service.ErrAlreadyFavorited
	}

	p.Favorites = append(p.Favorites, title)
	return s.saveProfiles()
}

func (s *AppService) RemoveFavorite(ctx context.Context, username, title string) error {
	if strings.TrimSpace(title) == "" {
		return service.ErrInvalidTitle
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	id, ok := s.resolve(username)
	if !ok {
		return service.ErrUnknownUser
	}

	p := s.getOrCreate(id)
	if !contains(p.Favorites, title) {
		return service.ErrNotFavorited
	}

	p.Favorites = remove(p.Favorites, title)
	return s.saveProfiles()
}
