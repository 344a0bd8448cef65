package api

import "net/http"

// ── Response types ──────────────────────────────────────────────────────────

type DarkModeResponse struct {
	DarkMode bool `json:"darkMode"`
}

// ── Handlers ────────────────────────────────────────────────────────────────

// GET /api/state
func (h *Handler) getState(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, h.learner.Snapshot())
}

// POST /api/state/dark-mode
func (h *Handler) toggleDarkMode(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, DarkModeResponse{DarkMode: h.learner.ToggleDarkMode()})
}

// GET /api/concepts/weak
func (h *Handler) weakConcepts(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, h.learner.WeakestConcepts())
}

// GET /api/progress
func (h *Handler) getProgress(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, h.learner.Progress())
}
