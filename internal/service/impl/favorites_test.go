package core

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/sidereusnuntius/rogold/internal/service"
)

func TestFavorites(t *testing.T) {
	s, store := newTestService(t)
	register(t, s, "ana")

	if err := s.AddFavorite(ctx, "ana", "Sword Fight on the Heights"); err != nil {
		t.Fatalf("failed to add favorite: %s", err)
	}
	if err := s.AddFavorite(ctx, "ana", "Work at a Pizza Place"); err != nil {
		t.Fatalf("failed to add favorite: %s", err)
	}
	if err := s.AddFavorite(ctx, "ana", "Sword Fight on the Heights"); !errors.Is(err, service.ErrAlreadyFavorited) {
		t.Errorf("expected %v on a duplicate, got %v", service.ErrAlreadyFavorited, err)
	}

	profile, err := s.GetProfile(ctx, "ana")
	if err != nil {
		t.Fatalf("failed to get profile: %s", err)
	}
	if diff := cmp.Diff([]string{"Sword Fight on the Heights", "Work at a Pizza Place"}, profile.Favorites); diff != "" {
		t.Error(diff)
	}

	if err = s.RemoveFavorite(ctx, "ana", "Sword Fight on the Heights"); err != nil {
		t.Fatalf("failed to remove favorite: %s", err)
	}
	if err = s.RemoveFavorite(ctx, "ana", "Sword Fight on the Heights"); !errors.Is(err, service.ErrNotFavorited) {
		t.Errorf("expected %v on a second removal, got %v", service.ErrNotFavorited, err)
	}

	s = reopen(t, store)
	profile, err = s.GetProfile(ctx, "ana")
	if err != nil {
		t.Fatalf("failed to get profile after reopen: %s", err)
	}
	if diff := cmp.Diff([]string{"Work at a Pizza Place"}, profile.Favorites); diff != "" {
		t.Error(diff)
	}
}

func TestFavoritesErrors(t *testing.T) {
	s, _ := newTestService(t)
	register(t, s, "ana")

	cases := []struct {
		name     string
		op       func() error
		expected error
	}{
		{"AddBlankTitle", func() error { return s.AddFavorite(ctx, "ana", "   ") }, service.ErrInvalidTitle},
		{"RemoveBlankTitle", func() error { return s.RemoveFavorite(ctx, "ana", "") }, service.ErrInvalidTitle},
		{"AddUnknownUser", func() error { return s.AddFavorite(ctx, "bruno", "Sword Fight") }, service.ErrUnknownUser},
		{"RemoveUnknownUser", func() error { return s.RemoveFavorite(ctx, "bruno", "Sword Fight") }, service.ErrUnknownUser},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			if err := c.op(); !errors.Is(err, c.expected) {
				t.Errorf("expected error %v, got %v", c.expected, err)
			}
		})
	}
}
