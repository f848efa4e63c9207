package server

import (
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/claude/paceline/internal/calc"
	"github.com/claude/paceline/internal/models"
	"github.com/claude/paceline/internal/plan"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

// planResponse pairs a generated document with any intake warnings so
// callers can surface soft problems without failing the request.
type planResponse struct {
	Plan     *models.PlanDocument `json:"plan"`
	Warnings []string             `json:"warnings,omitempty"`
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleCreatePlan(w http.ResponseWriter, r *http.Request) {
	var intake models.Intake
	if err := json.NewDecoder(r.Body).Decode(&intake); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON: " + err.Error()})
		return
	}

	doc, warnings, err := s.gen.Generate(&intake, models.DateOf(time.Now()))
	if err != nil {
		writeJSON(w, http.StatusUnprocessableEntity, map[string]any{
			"error":    err.Error(),
			"warnings": warnings,
		})
		return
	}
	if err := plan.Validate(doc); err != nil {
		s.log.Error("generated plan failed validation", "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}

	if _, err := s.store.InsertIntake(r.Context(), &intake); err != nil {
		s.log.Error("intake insert error", "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	if err := s.store.InsertPlan(r.Context(), doc); err != nil {
		s.log.Error("plan insert error", "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}

	writeJSON(w, http.StatusCreated, planResponse{Plan: doc, Warnings: warnings})
}

func (s *Server) handleListPlans(w http.ResponseWriter, r *http.Request) {
	limit := 0
	if v := r.URL.Query().Get("limit"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid limit parameter"})
			return
		}
		limit = n
	}

	summaries, err := s.store.ListPlans(r.Context(), limit)
	if err != nil {
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	if summaries == nil {
		summaries = []models.PlanSummary{}
	}
	writeJSON(w, http.StatusOK, summaries)
}

func (s *Server) handleGetPlan(w http.ResponseWriter, r *http.Request) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid plan ID"})
		return
	}

	doc, err := s.store.GetPlan(r.Context(), id)
	if err != nil {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "plan not found"})
		return
	}
	writeJSON(w, http.StatusOK, doc)
}

// handlePreviewPlan generates a plan without persisting it.
func (s *Server) handlePreviewPlan(w http.ResponseWriter, r *http.Request) {
	var intake models.Intake
	if err := json.NewDecoder(r.Body).Decode(&intake); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON: " + err.Error()})
		return
	}

	doc, warnings, err := s.gen.Generate(&intake, models.DateOf(time.Now()))
	if err != nil {
		writeJSON(w, http.StatusUnprocessableEntity, map[string]any{
			"error":    err.Error(),
			"warnings": warnings,
		})
		return
	}
	writeJSON(w, http.StatusOK, planResponse{Plan: doc, Warnings: warnings})
}

// handleZones computes pace and heart-rate zones for an intake without
// generating a full plan.
func (s *Server) handleZones(w http.ResponseWriter, r *http.Request) {
	var intake models.Intake
	if err := json.NewDecoder(r.Body).Decode(&intake); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON: " + err.Error()})
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"paceZones": calc.PaceZones(intake.RecentRace),
		"hrZones":   calc.HRZones(intake.HeartRate, intake.BodyComposition.Age),
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
