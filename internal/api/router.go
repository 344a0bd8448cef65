// internal/api/router.go
package api

import "net/http"

// RegisterRoutes attaches all API routes to the mux.
func RegisterRoutes(mux *http.ServeMux, h *Handler) {
	// AI-style engine operations
	mux.HandleFunc("POST /api/ai/evaluate-note", h.evaluateNote)
	mux.HandleFunc("POST /api/ai/problem-solver", h.problemSolver)

	// Learner state
	mux.HandleFunc("GET /api/state", h.getState)
	mux.HandleFunc("POST /api/state/dark-mode", h.toggleDarkMode)
	mux.HandleFunc("GET /api/concepts/weak", h.weakConcepts)
	mux.HandleFunc("GET /api/progress", h.getProgress)

	// Teach-back notes
	mux.HandleFunc("POST /api/notes", h.saveNote)
	mux.HandleFunc("GET /api/notes", h.listNotes)

	// Virtual lab
	mux.HandleFunc("GET /api/lab", h.getLab)
	mux.HandleFunc("POST /api/lab/steps/{stepID}/answer", h.answerLabStep)
	mux.HandleFunc("POST /api/lab/attempts", h.addLabAttempt)

	// Course catalog
	mux.HandleFunc("GET /api/course", h.getCourse)
}
