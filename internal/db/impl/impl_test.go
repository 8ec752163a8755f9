package impl

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
	"github.com/sidereusnuntius/rogold/internal/config"
	"github.com/sidereusnuntius/rogold/internal/db"
	"github.com/sidereusnuntius/rogold/internal/domain"
	"github.com/sidereusnuntius/rogold/internal/initialization"
)

var DB db.DB
var ctx = context.Background()

func TestMain(m *testing.M) {
	cfg := config.Configuration{
		Name: "test portal",
	}
	d, err := initialization.OpenDB("file:temp?mode=memory&cache=shared")
	if err != nil {
		return
	}

	err = initialization.SetupDB(d, "../../../migrations", "temp")
	if err != nil {
		return
	}
	DB = New(cfg, d)
	m.Run()
}

func TestSaveAndGetGame(t *testing.T) {
	payload := json.RawMessage(`{"blocks":[{"x":0,"y":1}],"spawn":"plate"}`)
	id, err := DB.SaveGame(ctx, domain.Game{
		Title:     "Natural Disaster Survival",
		Thumbnail: "data:image/png;base64,xyz",
		Data:      payload,
	})
	if err != nil {
		t.Fatal("unexpected error:", err)
	}
	if id == "" {
		t.Fatal("expected a generated id")
	}

	game, err := DB.GetGame(ctx, id)
	if err != nil {
		t.Fatal("unexpected error:", err)
	}

	if game.Title != "Natural Disaster Survival" {
		t.Errorf("unexpected title %q", game.Title)
	}
	if diff := cmp.Diff(string(payload), string(game.Data)); diff != "" {
		t.Errorf("payload mismatch (-want +got):\n%s", diff)
	}
	if game.CreatedAt.IsZero() || game.UpdatedAt.IsZero() {
		t.Error("expected timestamps to be set")
	}
}

func TestSaveGameReplaces(t *testing.T) {
	id, err := DB.SaveGame(ctx, domain.Game{Title: "Obby", Data: json.RawMessage(`{}`)})
	if err != nil {
		t.Fatal("unexpected error:", err)
	}

	_, err = DB.SaveGame(ctx, domain.Game{ID: id, Title: "Obby v2", Data: json.RawMessage(`{"v":2}`)})
	if err != nil {
		t.Fatal("unexpected error:", err)
	}

	game, err := DB.GetGame(ctx, id)
	if err != nil {
		t.Fatal("unexpected error:", err)
	}
	if game.Title != "Obby v2" {
		t.Errorf("expected replaced title, got %q", game.Title)
	}
}

func TestGetGameNotFound(t *testing.T) {
	_, err := DB.GetGame(ctx, "no-such-id")
	if !errors.Is(err, db.ErrNotFound) {
		t.Errorf("unexpected error: %s\nexpected \"%s\"", err, db.ErrNotFound)
	}
}

func TestGetAllGamesOrder(t *testing.T) {
	first, err := DB.SaveGame(ctx, domain.Game{Title: "older", Data: json.RawMessage(`{}`)})
	if err != nil {
		t.Fatal(err)
	}
	// Force distinct update timestamps before asserting on order.
	time.Sleep(10 * time.Millisecond)
	second, err := DB.SaveGame(ctx, domain.Game{Title: "newer", Data: json.RawMessage(`{}`)})
	if err != nil {
		t.Fatal(err)
	}

	previews, err := DB.GetAllGames(ctx)
	if err != nil {
		t.Fatal(err)
	}

	var posFirst, posSecond = -1, -1
	for i, p := range previews {
		switch p.ID {
		case first:
			posFirst = i
		case second:
			posSecond = i
		}
	}
	if posFirst == -1 || posSecond == -1 {
		t.Fatal("saved games missing from listing")
	}
	if posSecond > posFirst {
		t.Errorf("expected most recently updated first; got positions %d and %d", posSecond, posFirst)
	}
}

func TestDeleteGame(t *testing.T) {
	id, err := DB.SaveGame(ctx, domain.Game{Title: "doomed", Data: json.RawMessage(`{}`)})
	if err != nil {
		t.Fatal(err)
	}

	if err = DB.DeleteGame(ctx, id); err != nil {
		t.Errorf("unexpected error: %s", err)
	}

	if err = DB.DeleteGame(ctx, id); !errors.Is(err, db.ErrNotFound) {
		t.Errorf("unexpected error: %s\nexpected \"%s\"", err, db.ErrNotFound)
	}
}

func TestMaps(t *testing.T) {
	data := json.RawMessage(`{"terrain":"grass"}`)
	if err := DB.SaveMap(ctx, "crossroads", data); err != nil {
		t.Fatal("unexpected error:", err)
	}

	got, err := DB.GetMap(ctx, "crossroads")
	if err != nil {
		t.Fatal("unexpected error:", err)
	}
	if diff := cmp.Diff(string(data), string(got)); diff != "" {
		t.Errorf("map payload mismatch (-want +got):\n%s", diff)
	}

	names, err := DB.GetAllMaps(ctx)
	if err != nil {
		t.Fatal(err)
	}
	found := false
	for _, n := range names {
		if n == "crossroads" {
			found = true
		}
	}
	if !found {
		t.Error("saved map missing from listing")
	}

	if err = DB.DeleteMap(ctx, "crossroads"); err != nil {
		t.Errorf("unexpected error: %s", err)
	}
	if _, err = DB.GetMap(ctx, "crossroads"); !errors.Is(err, db.ErrNotFound) {
		t.Errorf("unexpected error: %s\nexpected \"%s\"", err, db.ErrNotFound)
	}
}
