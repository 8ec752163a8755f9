package web

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/rs/zerolog/log"
	"github.com/sidereusnuntius/rogold/internal/db"
	"github.com/sidereusnuntius/rogold/internal/service"
)

// Result is the shape every mutating endpoint answers with. Extra holds
// operation specific fields, flattened next to success and message.
type Result struct {
	Success bool           `json:"success"`
	Message string         `json:"message,omitempty"`
	Extra   map[string]any `json:"-"`
}

func (r Result) MarshalJSON() ([]byte, error) {
	doc := map[string]any{"success": r.Success}
	if r.Message != "" {
		doc["message"] = r.Message
	}
	for k, v := range r.Extra {
		doc[k] = v
	}
	return json.Marshal(doc)
}

func GetCode(err error) int {
	switch {
	case errors.Is(err, service.ErrInvalidCredentials):
		return http.StatusUnauthorized
	case errors.Is(err, service.ErrNotFound), errors.Is(err, db.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, service.ErrConflict):
		return http.StatusConflict
	case errors.Is(err, service.ErrInvalidInput):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Error().Err(err).Msg("failed to encode response")
	}
}

func ok(w http.ResponseWriter, message string) {
	writeJSON(w, http.StatusOK, Result{Success: true, Message: message})
}

func okExtra(w http.ResponseWriter, message string, extra map[string]any) {
	writeJSON(w, http.StatusOK, Result{Success: true, Message: message, Extra: extra})
}

// fail converts a service error into the structured failure result; nothing
// below the web layer reaches the portal page as a fault.
func fail(w http.ResponseWriter, err error) {
	code := GetCode(err)
	message := err.Error()
	if code == http.StatusInternalServerError {
		log.Error().Err(err).Msg("internal error")
		message = "internal error"
	}
	writeJSON(w, code, Result{Success: false, Message: message})
}
