package mcp

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/claude/paceline/internal/models"
	"github.com/claude/paceline/internal/plan"
	"github.com/google/uuid"
)

// fakeStore is an in-memory Store for data source tests.
type fakeStore struct {
	plans   map[uuid.UUID]*models.PlanDocument
	intakes int
}

func newFakeStore() *fakeStore {
	return &fakeStore{plans: make(map[uuid.UUID]*models.PlanDocument)}
}

func (f *fakeStore) InsertIntake(_ context.Context, _ *models.Intake) (uuid.UUID, error) {
	f.intakes++
	return uuid.New(), nil
}

func (f *fakeStore) InsertPlan(_ context.Context, doc *models.PlanDocument) error {
	f.plans[doc.Metadata.PlanID] = doc
	return nil
}

func (f *fakeStore) GetPlan(_ context.Context, id uuid.UUID) (*models.PlanDocument, error) {
	if doc, ok := f.plans[id]; ok {
		return doc, nil
	}
	return nil, fmt.Errorf("no plan %s", id)
}

func (f *fakeStore) ListPlans(_ context.Context, limit int) ([]models.PlanSummary, error) {
	var out []models.PlanSummary
	for _, doc := range f.plans {
		out = append(out, models.PlanSummary{PlanID: doc.Metadata.PlanID, Weeks: len(doc.Weeks)})
		if limit > 0 && len(out) == limit {
			break
		}
	}
	return out, nil
}

func testIntake() *models.Intake {
	return &models.Intake{
		Email:         "casey.runner@example.com",
		Goal:          "marathon",
		RaceDate:      models.DateOf(time.Now().AddDate(0, 4, 0)),
		WeeklyMileage: 30,
		Availability: models.Availability{
			RunningDays: models.NewDaySet(models.Monday, models.Tuesday,
				models.Thursday, models.Friday, models.Saturday, models.Sunday),
			StrengthDays:        models.NewDaySet(models.Tuesday, models.Thursday),
			PreferredLongRunDay: models.Sunday,
		},
		StrengthPrefs: models.StrengthPreferences{
			DaysPerWeek:   2,
			PreferredDays: models.NewDaySet(models.Tuesday, models.Thursday),
		},
		RecentRace:      models.RecentRace{DistanceKm: 21.1, TimeMinutes: 105},
		HeartRate:       models.HeartRate{MaxBPM: 190, RestingBPM: 50},
		BodyComposition: models.BodyComposition{WeightKg: 70, HeightCm: 175, Age: 34, Sex: "male"},
	}
}

func testLocal(store Store) *Local {
	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	return NewLocal(store, plan.NewGenerator(log, "test"))
}

// TestLocalCreatePlan verifies the local data source generates, validates,
// and stores a plan.
func TestLocalCreatePlan(t *testing.T) {
	store := newFakeStore()
	local := testLocal(store)

	doc, _, err := local.CreatePlan(context.Background(), testIntake())
	if err != nil {
		t.Fatalf("CreatePlan: %v", err)
	}
	if len(doc.Weeks) == 0 {
		t.Fatal("plan has no weeks")
	}
	if store.intakes != 1 {
		t.Errorf("stored %d intakes, want 1", store.intakes)
	}
	if _, ok := store.plans[doc.Metadata.PlanID]; !ok {
		t.Error("plan not stored under its ID")
	}
}

// TestLocalPreviewPlan verifies previews never touch the store.
func TestLocalPreviewPlan(t *testing.T) {
	store := newFakeStore()
	local := testLocal(store)

	doc, _, err := local.PreviewPlan(context.Background(), testIntake())
	if err != nil {
		t.Fatalf("PreviewPlan: %v", err)
	}
	if len(doc.Weeks) == 0 {
		t.Fatal("plan has no weeks")
	}
	if store.intakes != 0 || len(store.plans) != 0 {
		t.Error("preview must not persist anything")
	}
}

// TestLocalCreatePlanBadIntake verifies a structurally unusable intake
// fails without storing.
func TestLocalCreatePlanBadIntake(t *testing.T) {
	store := newFakeStore()
	local := testLocal(store)

	intake := testIntake()
	intake.RaceDate = models.PlanDate{}
	if _, _, err := local.CreatePlan(context.Background(), intake); err == nil {
		t.Fatal("CreatePlan succeeded without a race date")
	}
	if store.intakes != 0 || len(store.plans) != 0 {
		t.Error("failed generation must not persist anything")
	}
}

// TestDecodeIntake verifies intake JSON parsing including day sets.
func TestDecodeIntake(t *testing.T) {
	intake, err := decodeIntake(`{
		"email": "a@example.com",
		"raceDate": "2026-10-04",
		"availability": {
			"runningDays": ["monday", "wednesday", "saturday"],
			"preferredLongRunDay": "saturday"
		}
	}`)
	if err != nil {
		t.Fatalf("decodeIntake: %v", err)
	}
	if intake.Email != "a@example.com" {
		t.Errorf("email = %q", intake.Email)
	}
	if !intake.Availability.RunningDays.Has(models.Wednesday) {
		t.Error("wednesday missing from running days")
	}
	if intake.Availability.PreferredLongRunDay != models.Saturday {
		t.Errorf("preferredLongRunDay = %v, want saturday", intake.Availability.PreferredLongRunDay)
	}

	if _, err := decodeIntake("{not json"); err == nil {
		t.Error("decodeIntake accepted malformed JSON")
	}
}
