// internal/api/handler.go
package api

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/hydrolearn/backend/internal/service"
)

// Handler holds all dependencies needed by HTTP handlers.
// Instead of relying on package-level globals, every handler method
// receives its dependencies through this struct.
type Handler struct {
	learner *service.LearnerState
	solver  *service.SolverService
	logger  *slog.Logger
}

// NewHandler creates a Handler with the given dependencies.
func NewHandler(learner *service.LearnerState, solver *service.SolverService, logger *slog.Logger) *Handler {
	return &Handler{
		learner: learner,
		solver:  solver,
		logger:  logger,
	}
}

// respondJSON writes a JSON response with the given status code.
func respondJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

// decodeJSON decodes the request body into v. On failure it writes a 400
// and returns false; the caller should return immediately.
func decodeJSON(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		http.Error(w, "invalid json", http.StatusBadRequest)
		return false
	}
	return true
}

// respondError writes the generic failure envelope. Internal detail goes to
// the log, never to the student.
func (h *Handler) respondError(w http.ResponseWriter, status int, message string, err error) {
	if err != nil {
		h.logger.Error(message, "error", err)
	}
	respondJSON(w, status, map[string]string{"error": message})
}
