package mcp

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/claude/paceline/internal/models"
	"github.com/google/uuid"
)

// TestHTTPClientCreatePlan verifies the create path: POST body, API key
// header, and envelope decoding.
func TestHTTPClientCreatePlan(t *testing.T) {
	planID := uuid.New()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost || r.URL.Path != "/api/v1/plans" {
			t.Errorf("unexpected request: %s %s", r.Method, r.URL.Path)
		}
		if r.Header.Get("X-API-Key") != "k" {
			t.Errorf("X-API-Key = %q, want k", r.Header.Get("X-API-Key"))
		}
		var intake models.Intake
		if err := json.NewDecoder(r.Body).Decode(&intake); err != nil {
			t.Errorf("decoding posted intake: %v", err)
		}
		if intake.Email != "a@example.com" {
			t.Errorf("posted email = %q", intake.Email)
		}
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(planEnvelope{
			Plan: &models.PlanDocument{
				Metadata: models.PlanMetadata{PlanID: planID},
				Weeks:    make([]models.PlanWeek, 12),
			},
			Warnings: []string{"missing heartRate: HR zones will be estimated from age"},
		})
	}))
	defer srv.Close()

	c := NewHTTPClient(srv.URL, "k")
	doc, warnings, err := c.CreatePlan(context.Background(), &models.Intake{Email: "a@example.com"})
	if err != nil {
		t.Fatalf("CreatePlan: %v", err)
	}
	if doc.Metadata.PlanID != planID {
		t.Errorf("plan ID = %s, want %s", doc.Metadata.PlanID, planID)
	}
	if len(warnings) != 1 {
		t.Errorf("got %d warnings, want 1", len(warnings))
	}
}

// TestHTTPClientGetPlan verifies the fetch path and error mapping.
func TestHTTPClientGetPlan(t *testing.T) {
	planID := uuid.New()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/v1/plans/"+planID.String() {
			w.WriteHeader(http.StatusNotFound)
			w.Write([]byte(`{"error":"plan not found"}`))
			return
		}
		json.NewEncoder(w).Encode(models.PlanDocument{
			Metadata: models.PlanMetadata{PlanID: planID},
		})
	}))
	defer srv.Close()

	c := NewHTTPClient(srv.URL, "k")
	doc, err := c.GetPlan(context.Background(), planID)
	if err != nil {
		t.Fatalf("GetPlan: %v", err)
	}
	if doc.Metadata.PlanID != planID {
		t.Errorf("plan ID = %s, want %s", doc.Metadata.PlanID, planID)
	}

	if _, err := c.GetPlan(context.Background(), uuid.New()); err == nil {
		t.Error("GetPlan succeeded for unknown ID")
	}
}

// TestHTTPClientListPlans verifies the limit parameter is forwarded.
func TestHTTPClientListPlans(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("limit"); got != "5" {
			t.Errorf("limit = %q, want 5", got)
		}
		json.NewEncoder(w).Encode([]models.PlanSummary{{PlanID: uuid.New()}})
	}))
	defer srv.Close()

	c := NewHTTPClient(srv.URL, "k")
	summaries, err := c.ListPlans(context.Background(), 5)
	if err != nil {
		t.Fatalf("ListPlans: %v", err)
	}
	if len(summaries) != 1 {
		t.Errorf("got %d summaries, want 1", len(summaries))
	}
}

// TestHTTPClientPreviewExpects200 verifies the preview path treats 200 as
// success and anything else as an error.
func TestHTTPClientPreviewExpects200(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/api/v1/preview" {
			t.Errorf("path = %s, want /api/v1/preview", r.URL.Path)
		}
		w.WriteHeader(http.StatusUnprocessableEntity)
		w.Write([]byte(`{"error":"raceDate is required"}`))
	}))
	defer srv.Close()

	c := NewHTTPClient(srv.URL, "k")
	if _, _, err := c.PreviewPlan(context.Background(), &models.Intake{}); err == nil {
		t.Error("PreviewPlan succeeded on 422 response")
	}
}

// TestHTTPClientTrimsTrailingSlash verifies base URL normalization.
func TestHTTPClientTrimsTrailingSlash(t *testing.T) {
	c := NewHTTPClient("http://example.com/", "k")
	if c.baseURL != "http://example.com" {
		t.Errorf("baseURL = %q, want trailing slash trimmed", c.baseURL)
	}
}
