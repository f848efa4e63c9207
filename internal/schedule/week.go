package schedule

import "github.com/claude/paceline/internal/models"

// WeekInput carries everything one week's computation needs. Weeks are
// independent: the engine keeps no cross-week memory, so computing many
// weeks is trivially parallel at the caller's discretion.
type WeekInput struct {
	Template      WeekTemplate
	RunningDays   models.DaySet
	StrengthDays  models.DaySet
	StrengthPrefs models.StrengthPreferences
	Blocked       []models.BlockedDateRange
	WeekStart     models.PlanDate // the week's Monday
	Phase         models.Phase
	RecoveryWeek  bool
}

// BuildWeek is the engine entry point: a pure function from the ideal
// template plus real-world constraints to the realized week. Every
// invocation constructs fresh values; nothing persists or mutates across
// weeks.
func BuildWeek(in WeekInput, nut NutritionCalculator) WeekResult {
	running, runNotes := AssignRunning(in.Template, in.RunningDays, in.Blocked, in.WeekStart)
	strength, strengthNotes := AllocateStrength(running, in.StrengthDays, in.StrengthPrefs, in.Phase, in.RecoveryWeek)
	totals, nutrition := AggregateWeek(running, strength, nut)

	result := WeekResult{
		Running:   running,
		Strength:  strength,
		Totals:    totals,
		Nutrition: nutrition,
		Focus:     in.Template.Focus,
	}
	result.Notes = append(result.Notes, runNotes...)
	result.Notes = append(result.Notes, strengthNotes...)
	return result
}
