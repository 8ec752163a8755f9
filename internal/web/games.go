package web

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/sidereusnuntius/rogold/internal/domain"
	"github.com/sidereusnuntius/rogold/internal/validate"
)

func SaveGame(h *Handler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var game domain.Game
		if err := json.NewDecoder(r.Body).Decode(&game); err != nil {
			writeJSON(w, http.StatusBadRequest, Result{Success: false, Message: "failed to parse game payload"})
			return
		}
		if err := validate.Title(game.Title); err != nil {
			writeJSON(w, http.StatusBadRequest, Result{Success: false, Message: err.Error()})
			return
		}
		if len(game.Data) == 0 {
			game.Data = json.RawMessage(`{}`)
		}

		id, err := h.games.SaveGame(r.Context(), game)
		if err != nil {
			fail(w, err)
			return
		}
		okExtra(w, "game saved", map[string]any{"id": id})
	}
}

func GetGame(h *Handler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		game, err := h.games.GetGame(r.Context(), chi.URLParam(r, "id"))
		if err != nil {
			fail(w, err)
			return
		}
		writeJSON(w, http.StatusOK, game)
	}
}

func ListGames(h *Handler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		previews, err := h.games.GetAllGames(r.Context())
		if err != nil {
			fail(w, err)
			return
		}
		writeJSON(w, http.StatusOK, previews)
	}
}

func DeleteGame(h *Handler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := h.games.DeleteGame(r.Context(), chi.URLParam(r, "id")); err != nil {
			fail(w, err)
			return
		}
		ok(w, "game deleted")
	}
}

func SaveMap(h *Handler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var data json.RawMessage
		if err := json.NewDecoder(r.Body).Decode(&data); err != nil {
			writeJSON(w, http.StatusBadRequest, Result{Success: false, Message: "failed to parse map payload"})
			return
		}

		if err := h.games.SaveMap(r.Context(), chi.URLParam(r, "name"), data); err != nil {
			fail(w, err)
			return
		}
		ok(w, "map saved")
	}
}

func GetMap(h *Handler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		data, err := h.games.GetMap(r.Context(), chi.URLParam(r, "name"))
		if err != nil {
			fail(w, err)
			return
		}
		writeJSON(w, http.StatusOK, data)
	}
}

func ListMaps(h *Handler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		names, err := h.games.GetAllMaps(r.Context())
		if err != nil {
			fail(w, err)
			return
		}
		writeJSON(w, http.StatusOK, names)
	}
}

func DeleteMap(h *Handler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := h.games.DeleteMap(r.Context(), chi.URLParam(r, "name")); err != nil {
			fail(w, err)
			return
		}
		ok(w, "map deleted")
	}
}
