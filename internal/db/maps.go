package db

import (
	"context"
	"encoding/json"
)

type Maps interface {
	// SaveMap inserts or replaces the map stored under name.
	SaveMap(ctx context.Context, name string, data json.RawMessage) error
	GetMap(ctx context.Context, name string) (json.RawMessage, error)
	// GetAllMaps lists map names ordered by most recently updated first.
	GetAllMaps(ctx context.Context) ([]string, error)
	DeleteMap(ctx context.Context, name string) error
}
