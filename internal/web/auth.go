package web

import (
	"context"
	"net/http"

	"github.com/rs/zerolog/log"
)

const SessionKey = "user"

type Session struct {
	AccountID string
	Username  string
}

type key struct{}

func GetSession(ctx context.Context) (Session, bool) {
	s, ok := ctx.Value(key{}).(Session)
	return s, ok
}

func AuthenticatedMiddleware(handler *Handler) func(http.Handler) http.Handler {
	return func(handler http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			_, ok := GetSession(r.Context())
			if ok {
				handler.ServeHTTP(w, r)
				return
			}
			writeJSON(w, http.StatusForbidden, Result{Success: false, Message: "login required"})
		})
	}
}

func SessionMiddleware(handler *Handler) func(http.Handler) http.Handler {
	return func(h http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			zero := Session{}
			session := handler.SessionManager.Load(r)
			var s Session
			err := session.GetObject(SessionKey, &s)
			if s != zero && err == nil {
				ctx := r.Context()
				ctx = context.WithValue(ctx, key{}, s)
				r = r.WithContext(ctx)
			}

			h.ServeHTTP(w, r)
		})
	}
}

func SignUp(h *Handler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if err := r.ParseForm(); err != nil {
			writeJSON(w, http.StatusBadRequest, Result{Success: false, Message: "failed to parse form body"})
			return
		}

		username := r.Form.Get("username")
		password := r.Form.Get("password")

		if err := h.service.Register(ctx, username, password); err != nil {
			fail(w, err)
			return
		}
		ok(w, "account created")
	}
}

func Login(h *Handler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		session := h.SessionManager.Load(r)
		if err := r.ParseForm(); err != nil {
			writeJSON(w, http.StatusBadRequest, Result{Success: false, Message: "failed to parse form body"})
			return
		}

		username := r.Form.Get("username")
		password := r.Form.Get("password")

		account, err := h.service.Authenticate(ctx, username, password)
		if err != nil {
			fail(w, err)
			return
		}

		err = session.PutObject(w, SessionKey, Session{
			AccountID: account.ID,
			Username:  account.Username,
		})
		if err != nil {
			log.Error().Err(err).Msg("failed to create and load session")
			writeJSON(w, http.StatusInternalServerError, Result{Success: false, Message: "failed to create session"})
			return
		}
		okExtra(w, "logged in", map[string]any{"username": account.Username})
	}
}

func Logout(h *Handler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := h.service.Logout(r.Context()); err != nil {
			fail(w, err)
			return
		}

		s := h.SessionManager.Load(r)
		if err := s.Destroy(w); err != nil {
			log.Error().Err(err).Msg("failed to destroy session cookie")
		}
		ok(w, "logged out")
	}
}

// Settings handles the combined rename and password change form. The session
// cookie is refreshed so the displayed name follows the rename.
func Settings(h *Handler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		s, _ := GetSession(ctx)
		if err := r.ParseForm(); err != nil {
			writeJSON(w, http.StatusBadRequest, Result{Success: false, Message: "failed to parse form body"})
			return
		}

		account, err := h.service.UpdateAccount(ctx,
			s.Username,
			r.Form.Get("current_password"),
			r.Form.Get("new_username"),
			r.Form.Get("new_password"),
		)
		if err != nil {
			fail(w, err)
			return
		}

		session := h.SessionManager.Load(r)
		err = session.PutObject(w, SessionKey, Session{
			AccountID: account.ID,
			Username:  account.Username,
		})
		if err != nil {
			log.Error().Err(err).Msg("failed to refresh session")
		}
		okExtra(w, "account updated", map[string]any{"username": account.Username})
	}
}
