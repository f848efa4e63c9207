package server

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/claude/paceline/internal/models"
	"github.com/claude/paceline/internal/plan"
	"github.com/claude/paceline/internal/storage"
	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

// PlanStore is the persistence surface the handlers need.
type PlanStore interface {
	InsertIntake(ctx context.Context, intake *models.Intake) (uuid.UUID, error)
	InsertPlan(ctx context.Context, doc *models.PlanDocument) error
	GetPlan(ctx context.Context, id uuid.UUID) (*models.PlanDocument, error)
	ListPlans(ctx context.Context, limit int) ([]models.PlanSummary, error)
}

var _ PlanStore = (*storage.DB)(nil)

// Server holds dependencies for HTTP handlers.
type Server struct {
	store  PlanStore
	gen    *plan.Generator
	log    *slog.Logger
	apiKey string
	router chi.Router
}

// New creates a new Server with all routes configured.
func New(store PlanStore, gen *plan.Generator, apiKey string, log *slog.Logger) *Server {
	s := &Server{
		store:  store,
		gen:    gen,
		log:    log,
		apiKey: apiKey,
		router: chi.NewRouter(),
	}
	s.routes()
	return s
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) routes() {
	s.router.Use(RequestLogging(s.log))
	s.router.Use(CORS)

	s.router.Get("/healthz", s.handleHealth)

	// Generation endpoints (API key required)
	s.router.Route("/api/v1/plans", func(r chi.Router) {
		r.Use(APIKeyAuth(s.apiKey))
		r.Post("/", s.handleCreatePlan)
		r.Get("/", s.handleListPlans)
		r.Get("/{id}", s.handleGetPlan)
	})

	// Stateless calculators (API key required, nothing stored)
	s.router.Route("/api/v1/preview", func(r chi.Router) {
		r.Use(APIKeyAuth(s.apiKey))
		r.Post("/", s.handlePreviewPlan)
		r.Post("/zones", s.handleZones)
	})
}
