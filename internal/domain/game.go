package domain

import (
	"encoding/json"
	"time"
)

// Game is a record in the embedded game store. Data is an opaque JSON
// payload owned by the game editor; the store never looks inside it.
type Game struct {
	ID        string          `json:"id"`
	Title     string          `json:"title"`
	Thumbnail string          `json:"thumbnail,omitempty"`
	Data      json.RawMessage `json:"data"`
	CreatedAt time.Time       `json:"createdAt"`
	UpdatedAt time.Time       `json:"updatedAt"`
}

// GamePreview is the listing form of a Game, without the payload.
type GamePreview struct {
	ID        string    `json:"id"`
	Title     string    `json:"title"`
	Thumbnail string    `json:"thumbnail,omitempty"`
	CreatedAt time.Time `json:"timestamp"`
}
