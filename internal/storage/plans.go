package storage

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/claude/paceline/internal/models"
	"github.com/google/uuid"
)

// InsertPlan stores a generated plan document as JSONB alongside its
// queryable summary columns.
func (db *DB) InsertPlan(ctx context.Context, doc *models.PlanDocument) error {
	raw, err := json.Marshal(doc)
	if err != nil {
		return fmt.Errorf("marshaling plan document: %w", err)
	}
	_, err = db.Pool.Exec(ctx,
		`INSERT INTO plans (id, email, goal, race_date, weeks, document)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		doc.Metadata.PlanID, doc.Athlete.Email, doc.Metadata.Goal,
		doc.Metadata.RaceDate.Time, len(doc.Weeks), raw)
	if err != nil {
		return fmt.Errorf("inserting plan: %w", err)
	}
	return nil
}

// GetPlan fetches a stored plan document by ID.
func (db *DB) GetPlan(ctx context.Context, id uuid.UUID) (*models.PlanDocument, error) {
	var raw []byte
	err := db.Pool.QueryRow(ctx,
		`SELECT document FROM plans WHERE id = $1`, id).Scan(&raw)
	if err != nil {
		return nil, fmt.Errorf("fetching plan %s: %w", id, err)
	}
	var doc models.PlanDocument
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("unmarshaling plan %s: %w", id, err)
	}
	return &doc, nil
}

// ListPlans returns summaries of stored plans, newest first.
func (db *DB) ListPlans(ctx context.Context, limit int) ([]models.PlanSummary, error) {
	if limit <= 0 {
		limit = 50
	}
	rows, err := db.Pool.Query(ctx,
		`SELECT id, email, goal, race_date, weeks, created_at
		 FROM plans
		 ORDER BY created_at DESC
		 LIMIT $1`, limit)
	if err != nil {
		return nil, fmt.Errorf("listing plans: %w", err)
	}
	defer rows.Close()

	var out []models.PlanSummary
	for rows.Next() {
		var s models.PlanSummary
		var raceDate time.Time
		if err := rows.Scan(&s.PlanID, &s.Email, &s.Goal, &raceDate, &s.Weeks, &s.CreatedAt); err != nil {
			return nil, fmt.Errorf("scanning plan summary: %w", err)
		}
		s.RaceDate = models.DateOf(raceDate)
		out = append(out, s)
	}
	return out, rows.Err()
}
