package web

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

func ListUsers(h *Handler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		names, err := h.service.ListUsernames(r.Context())
		if err != nil {
			fail(w, err)
			return
		}
		writeJSON(w, http.StatusOK, names)
	}
}

func Profile(h *Handler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		username := chi.URLParam(r, "username")
		p, err := h.service.GetProfile(r.Context(), username)
		if err != nil {
			fail(w, err)
			return
		}
		writeJSON(w, http.StatusOK, p)
	}
}

func UpdateProfile(h *Handler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		s, _ := GetSession(ctx)
		if err := r.ParseForm(); err != nil {
			writeJSON(w, http.StatusBadRequest, Result{Success: false, Message: "failed to parse form body"})
			return
		}

		err := h.service.UpdateProfile(ctx, s.Username,
			r.Form.Get("bio"),
			r.Form.Get("status"),
			r.Form.Get("picture"),
		)
		if err != nil {
			fail(w, err)
			return
		}
		ok(w, "profile updated")
	}
}

// counterpart reads the other user of a relationship operation from the
// form body.
func counterpart(r *http.Request) string {
	return r.Form.Get("user")
}

func SendRequest(h *Handler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		s, _ := GetSession(ctx)
		if err := r.ParseForm(); err != nil {
			writeJSON(w, http.StatusBadRequest, Result{Success: false, Message: "failed to parse form body"})
			return
		}

		receiver := counterpart(r)
		if err := h.service.SendRequest(ctx, s.Username, receiver); err != nil {
			fail(w, err)
			return
		}
		ok(w, "friend request sent to "+receiver)
	}
}

func AcceptRequest(h *Handler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		s, _ := GetSession(ctx)
		if err := r.ParseForm(); err != nil {
			writeJSON(w, http.StatusBadRequest, Result{Success: false, Message: "failed to parse form body"})
			return
		}

		sender := counterpart(r)
		if err := h.service.AcceptRequest(ctx, s.Username, sender); err != nil {
			fail(w, err)
			return
		}
		ok(w, "you and "+sender+" are now friends")
	}
}

func DeclineRequest(h *Handler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		s, _ := GetSession(ctx)
		if err := r.ParseForm(); err != nil {
			writeJSON(w, http.StatusBadRequest, Result{Success: false, Message: "failed to parse form body"})
			return
		}

		sender := counterpart(r)
		if err := h.service.DeclineRequest(ctx, s.Username, sender); err != nil {
			fail(w, err)
			return
		}
		ok(w, "friend request from "+sender+" declined")
	}
}

func AddFavorite(h *Handler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		s, _ := GetSession(ctx)
		if err := r.ParseForm(); err != nil {
			writeJSON(w, http.StatusBadRequest, Result{Success: false, Message: "failed to parse form body"})
			return
		}

		title := r.Form.Get("title")
		if err := h.service.AddFavorite(ctx, s.Username, title); err != nil {
			fail(w, err)
			return
		}
		ok(w, "'"+title+"' added to your favorites")
	}
}

func RemoveFavorite(h *Handler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		s, _ := GetSession(ctx)
		if err := r.ParseForm(); err != nil {
			writeJSON(w, http.StatusBadRequest, Result{Success: false, Message: "failed to parse form body"})
			return
		}

		title := r.Form.Get("title")
		if err := h.service.RemoveFavorite(ctx, s.Username, title); err != nil {
			fail(w, err)
			return
		}
		ok(w, "'"+title+"' removed from your favorites")
	}
}
