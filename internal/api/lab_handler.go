package api

import (
	"errors"
	"net/http"
	"time"

	"github.com/hydrolearn/backend/internal/domain/attempt"
	"github.com/hydrolearn/backend/internal/domain/lab"
)

// ── Request / Response types ────────────────────────────────────────────────

type LabResponse struct {
	LabID  string     `json:"labId"`
	PreLab lab.PreLab `json:"preLab"`
	Steps  []lab.Step `json:"steps"`
}

type LabStepAnswerRequest struct {
	Answer string `json:"answer"`
}

type AddLabAttemptRequest struct {
	LabID    string `json:"labId"`
	Mode     string `json:"mode"` // guided or exam
	Score    int    `json:"score"`
	Mistakes int    `json:"mistakes"`
}

// ── Handlers ────────────────────────────────────────────────────────────────

// GET /api/lab
func (h *Handler) getLab(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusOK, LabResponse{
		LabID:  lab.LabID,
		PreLab: lab.PreLabContent(),
		Steps:  lab.Steps(),
	})
}

// POST /api/lab/steps/{stepID}/answer
func (h *Handler) answerLabStep(w http.ResponseWriter, r *http.Request) {
	stepID := r.PathValue("stepID")

	var req LabStepAnswerRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	result, err := lab.GradeStep(stepID, req.Answer)
	if errors.Is(err, lab.ErrStepNotFound) {
		http.Error(w, "lab step not found", http.StatusNotFound)
		return
	}
	if err != nil {
		h.respondError(w, http.StatusInternalServerError, "failed to grade step", err)
		return
	}

	respondJSON(w, http.StatusOK, result)
}

// POST /api/lab/attempts
func (h *Handler) addLabAttempt(w http.ResponseWriter, r *http.Request) {
	var req AddLabAttemptRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	mode := attempt.LabMode(req.Mode)
	if mode != attempt.LabModeGuided && mode != attempt.LabModeExam {
		h.respondError(w, http.StatusBadRequest, "mode must be guided or exam", nil)
		return
	}
	if req.Score < 0 || req.Score > 100 || req.Mistakes < 0 {
		h.respondError(w, http.StatusBadRequest, "invalid score or mistakes", nil)
		return
	}

	a := attempt.LabAttempt{
		LabID:     req.LabID,
		Mode:      mode,
		Score:     req.Score,
		Mistakes:  req.Mistakes,
		Timestamp: time.Now(),
	}
	h.learner.AddLabAttempt(a)

	respondJSON(w, http.StatusCreated, a)
}
