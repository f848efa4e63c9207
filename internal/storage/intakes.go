package storage

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/claude/paceline/internal/models"
	"github.com/google/uuid"
)

// InsertIntake archives a received intake submission so a plan can be
// regenerated or audited later. Returns the intake's assigned ID.
func (db *DB) InsertIntake(ctx context.Context, intake *models.Intake) (uuid.UUID, error) {
	raw, err := json.Marshal(intake)
	if err != nil {
		return uuid.Nil, fmt.Errorf("marshaling intake: %w", err)
	}
	id := uuid.New()
	_, err = db.Pool.Exec(ctx,
		`INSERT INTO intakes (id, email, payload) VALUES ($1, $2, $3)`,
		id, intake.Email, raw)
	if err != nil {
		return uuid.Nil, fmt.Errorf("inserting intake: %w", err)
	}
	return id, nil
}

// GetIntake fetches an archived intake by ID.
func (db *DB) GetIntake(ctx context.Context, id uuid.UUID) (*models.Intake, error) {
	var raw []byte
	err := db.Pool.QueryRow(ctx,
		`SELECT payload FROM intakes WHERE id = $1`, id).Scan(&raw)
	if err != nil {
		return nil, fmt.Errorf("fetching intake %s: %w", id, err)
	}
	var intake models.Intake
	if err := json.Unmarshal(raw, &intake); err != nil {
		return nil, fmt.Errorf("unmarshaling intake %s: %w", id, err)
	}
	return &intake, nil
}
