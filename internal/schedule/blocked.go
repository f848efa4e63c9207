package schedule

import "github.com/claude/paceline/internal/models"

// BlockVerdict is the resolution of one calendar date against the
// athlete's blocked date ranges.
type BlockVerdict struct {
	Blocked  bool
	Kind     models.BlockKind
	Reason   string
	Activity string
}

// ResolveBlocked maps a date against a list of blocked ranges. The scan is
// linear and the first containing range wins; a date matched by no range
// is unblocked. Total: there are no failure modes.
func ResolveBlocked(date models.PlanDate, ranges []models.BlockedDateRange) BlockVerdict {
	for _, r := range ranges {
		if r.Contains(date) {
			return BlockVerdict{
				Blocked:  true,
				Kind:     r.Kind,
				Reason:   r.Reason,
				Activity: r.CrossTrainingActivity,
			}
		}
	}
	return BlockVerdict{}
}
