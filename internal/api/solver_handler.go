package api

import (
	"net/http"
)

// ── Request / Response types ────────────────────────────────────────────────

type ProblemSolverRequest struct {
	Problem    string `json:"problem"`
	Step       string `json:"step"` // concept-detection, concept-question, hint, answer-check
	UserAnswer string `json:"userAnswer,omitempty"`
	HintsUsed  int    `json:"hintsUsed,omitempty"`
}

type ConceptQuestionResponse struct {
	Question string `json:"question"`
}

type HintResponse struct {
	Hint string `json:"hint"`
}

// ── Handlers ────────────────────────────────────────────────────────────────

// POST /api/ai/problem-solver
//
//	@Summary  Advance a guided problem-solving session by one step
//	@Accept   json
//	@Produce  json
//	@Param    request body ProblemSolverRequest true "problem text and step"
//	@Success  200 {object} map[string]any
//	@Failure  400 {object} map[string]string
//	@Router   /api/ai/problem-solver [post]
func (h *Handler) problemSolver(w http.ResponseWriter, r *http.Request) {
	var req ProblemSolverRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	if req.Problem == "" {
		h.respondError(w, http.StatusBadRequest, "problem is required", nil)
		return
	}

	switch req.Step {
	case "concept-detection":
		detection, err := h.solver.DetectConcepts(r.Context(), req.Problem)
		if err != nil {
			h.respondError(w, http.StatusInternalServerError, "failed to process request", err)
			return
		}
		respondJSON(w, http.StatusOK, detection)

	case "concept-question":
		respondJSON(w, http.StatusOK, ConceptQuestionResponse{
			Question: h.solver.ConceptQuestion(req.Problem),
		})

	case "hint":
		respondJSON(w, http.StatusOK, HintResponse{
			Hint: h.solver.Hint(req.Problem, req.HintsUsed),
		})

	case "answer-check":
		result, err := h.solver.CheckAnswer(r.Context(), req.Problem, req.UserAnswer, req.HintsUsed)
		if err != nil {
			h.respondError(w, http.StatusInternalServerError, "failed to process request", err)
			return
		}
		respondJSON(w, http.StatusOK, result)

	default:
		h.respondError(w, http.StatusBadRequest, "unknown step", nil)
	}
}
