package api

import (
	"net/http"

	"github.com/hydrolearn/backend/internal/domain/note"
)

// ── Request / Response types ────────────────────────────────────────────────

type EvaluateNoteRequest struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

type SaveNoteRequest struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

// ── Handlers ────────────────────────────────────────────────────────────────

// POST /api/ai/evaluate-note
//
//	@Summary  Evaluate a teach-back note against the rubric
//	@Accept   json
//	@Produce  json
//	@Param    request body EvaluateNoteRequest true "note title and content"
//	@Success  200 {object} note.Evaluation
//	@Failure  400 {object} map[string]string
//	@Router   /api/ai/evaluate-note [post]
func (h *Handler) evaluateNote(w http.ResponseWriter, r *http.Request) {
	var req EvaluateNoteRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	// Missing fields are rejected before any computation.
	if req.Title == "" || req.Content == "" {
		h.respondError(w, http.StatusBadRequest, "title and content are required", nil)
		return
	}

	respondJSON(w, http.StatusOK, note.Evaluate(req.Title, req.Content))
}

// POST /api/notes
func (h *Handler) saveNote(w http.ResponseWriter, r *http.Request) {
	var req SaveNoteRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	if req.Title == "" || req.Content == "" {
		h.respondError(w, http.StatusBadRequest, "title and content are required", nil)
		return
	}

	eval := note.Evaluate(req.Title, req.Content)
	saved := h.learner.SaveNote(req.Title, req.Content, eval)
	respondJSON(w, http.StatusCreated, saved)
}

// GET /api/notes
func (h *Handler) listNotes(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, h.learner.Notes())
}
