package web

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
)

func GetTopics(h *Handler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		topics, err := h.service.GetTopics(r.Context())
		if err != nil {
			fail(w, err)
			return
		}
		writeJSON(w, http.StatusOK, topics)
	}
}

func GetTopic(h *Handler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
		if err != nil {
			writeJSON(w, http.StatusBadRequest, Result{Success: false, Message: "invalid topic id"})
			return
		}

		topic, err := h.service.GetTopic(r.Context(), id)
		if err != nil {
			fail(w, err)
			return
		}
		writeJSON(w, http.StatusOK, topic)
	}
}

func CreateTopic(h *Handler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		s, _ := GetSession(ctx)
		if err := r.ParseForm(); err != nil {
			writeJSON(w, http.StatusBadRequest, Result{Success: false, Message: "failed to parse form body"})
			return
		}

		topic, err := h.service.CreateTopic(ctx, r.Form.Get("title"), r.Form.Get("body"), s.Username)
		if err != nil {
			fail(w, err)
			return
		}
		okExtra(w, "topic created", map[string]any{"topic": topic})
	}
}

func AddReply(h *Handler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		s, _ := GetSession(ctx)
		id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
		if err != nil {
			writeJSON(w, http.StatusBadRequest, Result{Success: false, Message: "invalid topic id"})
			return
		}
		if err := r.ParseForm(); err != nil {
			writeJSON(w, http.StatusBadRequest, Result{Success: false, Message: "failed to parse form body"})
			return
		}

		reply, err := h.service.AddReply(ctx, id, r.Form.Get("body"), s.Username)
		if err != nil {
			fail(w, err)
			return
		}
		okExtra(w, "reply added", map[string]any{"reply": reply})
	}
}
