package models

import "fmt"

// BlockKind classifies a blocked date range: the athlete is either fully
// unavailable (rest) or available for non-running activity only
// (cross-training).
type BlockKind string

const (
	BlockRest          BlockKind = "rest"
	BlockCrossTraining BlockKind = "cross-training"
)

// BlockedDateRange is a declared calendar interval of reduced or no
// availability. EndDate is inclusive. On overlapping ranges the first
// containing range wins.
type BlockedDateRange struct {
	StartDate             PlanDate  `json:"startDate"`
	EndDate               PlanDate  `json:"endDate"`
	Kind                  BlockKind `json:"type"`
	Reason                string    `json:"reason"`
	CrossTrainingActivity string    `json:"crossTrainingActivity,omitempty"`
}

// Contains reports whether date falls within the range, inclusive of both
// endpoints.
func (r BlockedDateRange) Contains(date PlanDate) bool {
	return !date.Before(r.StartDate.Time) && !date.After(r.EndDate.Time)
}

// Validate checks the startDate <= endDate invariant.
func (r BlockedDateRange) Validate() error {
	if r.StartDate.After(r.EndDate.Time) {
		return fmt.Errorf("blocked range %s: startDate %s after endDate %s", r.Reason, r.StartDate, r.EndDate)
	}
	switch r.Kind {
	case BlockRest, BlockCrossTraining:
	default:
		return fmt.Errorf("blocked range %s: unknown type %q", r.Reason, r.Kind)
	}
	return nil
}
