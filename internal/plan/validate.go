package plan

import (
	"fmt"

	"github.com/claude/paceline/internal/models"
	"github.com/google/uuid"
)

// Validate checks the structural requirements of a generated document
// before it is persisted: identified metadata, at least one week, and
// exactly one entry per weekday in every week. It guards against engine
// regressions, not athlete input (input problems surface as generation
// warnings instead).
func Validate(doc *models.PlanDocument) error {
	if doc.Metadata.PlanID == uuid.Nil {
		return fmt.Errorf("plan has no ID")
	}
	if len(doc.Weeks) == 0 {
		return fmt.Errorf("plan has no weeks")
	}
	for _, week := range doc.Weeks {
		if len(week.Days) != models.DaysPerWeek {
			return fmt.Errorf("week %d has %d days, want %d", week.WeekNumber, len(week.Days), models.DaysPerWeek)
		}
		for _, d := range models.AllWeekdays() {
			day, ok := week.Days[d.String()]
			if !ok {
				return fmt.Errorf("week %d missing %s", week.WeekNumber, d)
			}
			if day.Run.Type == "" {
				return fmt.Errorf("week %d %s has no running assignment", week.WeekNumber, d)
			}
		}
	}
	return nil
}
