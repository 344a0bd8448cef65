package api

import (
	"net/http"

	"github.com/hydrolearn/backend/internal/course"
)

// GET /api/course
func (h *Handler) getCourse(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, course.Catalog())
}
