package db

import (
	"context"

	"github.com/sidereusnuntius/rogold/internal/domain"
)

type Games interface {
	// SaveGame inserts the game, or replaces it if the id is already present,
	// bumping the update time. An empty id means a new game; the generated id
	// is returned either way.
	SaveGame(ctx context.Context, game domain.Game) (string, error)
	GetGame(ctx context.Context, id string) (domain.Game, error)
	// GetAllGames lists previews ordered by most recently updated first.
	GetAllGames(ctx context.Context) ([]domain.GamePreview, error)
	DeleteGame(ctx context.Context, id string) error
}
