package mcp

import (
	"context"
	"time"

	"github.com/claude/paceline/internal/models"
	"github.com/claude/paceline/internal/plan"
	"github.com/google/uuid"
)

// DataSource abstracts the plan backend for MCP tools. Local (generator +
// database) and HTTPClient (remote via REST API) both satisfy it.
type DataSource interface {
	CreatePlan(ctx context.Context, intake *models.Intake) (*models.PlanDocument, []string, error)
	PreviewPlan(ctx context.Context, intake *models.Intake) (*models.PlanDocument, []string, error)
	GetPlan(ctx context.Context, id uuid.UUID) (*models.PlanDocument, error)
	ListPlans(ctx context.Context, limit int) ([]models.PlanSummary, error)
}

// Store is the persistence slice Local needs; *storage.DB satisfies it.
type Store interface {
	InsertIntake(ctx context.Context, intake *models.Intake) (uuid.UUID, error)
	InsertPlan(ctx context.Context, doc *models.PlanDocument) error
	GetPlan(ctx context.Context, id uuid.UUID) (*models.PlanDocument, error)
	ListPlans(ctx context.Context, limit int) ([]models.PlanSummary, error)
}

// Local implements DataSource against the in-process generator and store.
type Local struct {
	store Store
	gen   *plan.Generator
}

// Compile-time check: *Local satisfies DataSource.
var _ DataSource = (*Local)(nil)

// NewLocal creates a Local data source.
func NewLocal(store Store, gen *plan.Generator) *Local {
	return &Local{store: store, gen: gen}
}

func (l *Local) CreatePlan(ctx context.Context, intake *models.Intake) (*models.PlanDocument, []string, error) {
	doc, warnings, err := l.gen.Generate(intake, models.DateOf(time.Now()))
	if err != nil {
		return nil, warnings, err
	}
	if err := plan.Validate(doc); err != nil {
		return nil, warnings, err
	}
	if _, err := l.store.InsertIntake(ctx, intake); err != nil {
		return nil, warnings, err
	}
	if err := l.store.InsertPlan(ctx, doc); err != nil {
		return nil, warnings, err
	}
	return doc, warnings, nil
}

func (l *Local) PreviewPlan(_ context.Context, intake *models.Intake) (*models.PlanDocument, []string, error) {
	return l.gen.Generate(intake, models.DateOf(time.Now()))
}

func (l *Local) GetPlan(ctx context.Context, id uuid.UUID) (*models.PlanDocument, error) {
	return l.store.GetPlan(ctx, id)
}

func (l *Local) ListPlans(ctx context.Context, limit int) ([]models.PlanSummary, error) {
	return l.store.ListPlans(ctx, limit)
}
