package stubapi

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/arturyumaev/casinodesk/internal/middleware"
	"github.com/arturyumaev/casinodesk/internal/model"
)

// NewRouter builds the stub's HTTP surface. Paths and payload shapes mirror
// the production game service, including its flat {"error": "..."} error
// body.
func NewRouter(state *State, logger *slog.Logger) http.Handler {
	h := &handlers{state: state}

	r := mux.NewRouter()
	r.Use(middleware.Recovery(logger, panicHandler))
	r.Use(middleware.Logging(logger))

	api := r.PathPrefix("/api").Subrouter()
	api.HandleFunc("/users", h.listUsers).Methods(http.MethodGet)
	api.HandleFunc("/users/{id}/role", h.setRole).Methods(http.MethodPost)
	api.HandleFunc("/users/{id}/reward", h.grantReward).Methods(http.MethodPost)
	api.HandleFunc("/assets", h.getAssets).Methods(http.MethodGet)
	api.HandleFunc("/assets", h.saveAssets).Methods(http.MethodPost)
	api.HandleFunc("/assets/reset", h.resetAssets).Methods(http.MethodPost)

	return r
}

type handlers struct {
	state *State
}

func (h *handlers) listUsers(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.state.Players())
}

func (h *handlers) setRole(w http.ResponseWriter, r *http.Request) {
	id := model.RecordID(mux.Vars(r)["id"])

	var body struct {
		Role model.Role `json:"role"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if body.Role == "" {
		writeError(w, http.StatusBadRequest, "role is required")
		return
	}

	if err := h.state.SetRole(id, body.Role); err != nil {
		writeModelError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"ok": true})
}

func (h *handlers) grantReward(w http.ResponseWriter, r *http.Request) {
	id := model.RecordID(mux.Vars(r)["id"])

	var body struct {
		Amount float64 `json:"amount"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if err := h.state.GrantReward(id, body.Amount); err != nil {
		writeModelError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]bool{"ok": true})
}

func (h *handlers) getAssets(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.state.Assets())
}

func (h *handlers) saveAssets(w http.ResponseWriter, r *http.Request) {
	var doc model.AssetConfig
	if err := json.NewDecoder(r.Body).Decode(&doc); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	writeJSON(w, http.StatusOK, h.state.SaveAssets(&doc))
}

func (h *handlers) resetAssets(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.state.ResetAssets())
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, map[string]string{"error": message})
}

func writeModelError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, model.ErrRecordNotFound):
		writeError(w, http.StatusNotFound, "user not found")
	case errors.Is(err, model.ErrInvalidAmount):
		writeError(w, http.StatusBadRequest, "amount must be greater than zero")
	default:
		writeError(w, http.StatusInternalServerError, "internal error")
	}
}

func panicHandler(w http.ResponseWriter, _ *http.Request, _ any) {
	writeError(w, http.StatusInternalServerError, "internal error")
}
