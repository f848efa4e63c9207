// Package plan assembles a complete multi-week training plan document
// from athlete intake: periodization tables produce each week's ideal
// template, the schedule engine realizes it against availability and
// blocked dates, and the calculators fill in zones and nutrition.
package plan

import (
	"fmt"
	"log/slog"
	"time"

	"github.com/claude/paceline/internal/calc"
	"github.com/claude/paceline/internal/models"
	"github.com/claude/paceline/internal/periodization"
	"github.com/claude/paceline/internal/schedule"
	"github.com/google/uuid"
)

// MinWeeks is the shortest plan worth generating; shorter horizons still
// produce a plan but carry a warning for the reviewer.
const MinWeeks = 10

// MaxWeeks caps the plan length; a more distant race date delays the plan
// start instead of stretching the base phase.
const MaxWeeks = 18

// Generator builds plan documents. It is stateless apart from logging.
type Generator struct {
	log     *slog.Logger
	version string
}

// NewGenerator creates a Generator.
func NewGenerator(log *slog.Logger, version string) *Generator {
	return &Generator{log: log, version: version}
}

// Generate produces the plan document for an intake, anchored on today's
// date. Recoverable intake problems come back as warnings; only a
// structurally unusable intake returns an error.
func (g *Generator) Generate(intake *models.Intake, today models.PlanDate) (*models.PlanDocument, []string, error) {
	warnings, err := intake.Validate()
	if err != nil {
		return nil, warnings, fmt.Errorf("validating intake: %w", err)
	}

	raceWeekStart := mondayOf(intake.RaceDate)
	start := mondayOf(today).AddDays(7) // first full week after today
	if !start.Before(raceWeekStart.Time) {
		return nil, warnings, fmt.Errorf("race date %s leaves no full training week", intake.RaceDate)
	}

	totalWeeks := start.DaysUntil(raceWeekStart)/7 + 1
	if totalWeeks > MaxWeeks {
		start = raceWeekStart.AddDays(-7 * (MaxWeeks - 1))
		totalWeeks = MaxWeeks
	}
	if totalWeeks < MinWeeks {
		warnings = append(warnings, fmt.Sprintf("only %d weeks before the race; %d or more is recommended", totalWeeks, MinWeeks))
	}

	level := intake.ExperienceLevel()
	nutritionist := calc.NewNutritionist(intake.BodyComposition)

	doc := &models.PlanDocument{
		Metadata: models.PlanMetadata{
			PlanID:      uuid.New(),
			PlanName:    planName(intake),
			Goal:        intake.Goal,
			RaceName:    intake.RaceName,
			RaceDate:    intake.RaceDate,
			GeneratedAt: time.Now().UTC(),
			Generator:   "paceline",
			Version:     g.version,
		},
		Athlete: models.PlanAthlete{
			Email:         intake.Email,
			Level:         level,
			WeeklyMileage: intake.WeeklyMileage,
			WeightKg:      intake.BodyComposition.WeightKg,
		},
		PaceZones: calc.PaceZones(intake.RecentRace),
		HRZones:   calc.HRZones(intake.HeartRate, intake.BodyComposition.Age),
	}

	for week := 1; week <= totalWeeks; week++ {
		weekStart := start.AddDays(7 * (week - 1))
		phase := periodization.PhaseForWeek(week, totalWeeks)
		recovery := periodization.IsRecoveryWeek(week, phase)
		tmpl := periodization.WeekTemplate(phase, week, totalWeeks, level, intake.Availability, recovery)

		result := schedule.BuildWeek(schedule.WeekInput{
			Template:      tmpl,
			RunningDays:   intake.Availability.RunningDays,
			StrengthDays:  intake.Availability.StrengthDays,
			StrengthPrefs: intake.StrengthPrefs,
			Blocked:       intake.BlockedDates,
			WeekStart:     weekStart,
			Phase:         phase,
			RecoveryWeek:  recovery,
		}, nutritionist)

		doc.Weeks = append(doc.Weeks, buildWeekDoc(week, weekStart, phase, recovery, &result))
	}

	if g.log != nil {
		g.log.Info("plan generated",
			"plan_id", doc.Metadata.PlanID,
			"weeks", totalWeeks,
			"level", level,
			"warnings", len(warnings),
		)
	}
	return doc, warnings, nil
}

// buildWeekDoc converts one realized week into its document form.
func buildWeekDoc(week int, weekStart models.PlanDate, phase models.Phase, recovery bool, result *schedule.WeekResult) models.PlanWeek {
	out := models.PlanWeek{
		WeekNumber:    week,
		StartDate:     weekStart,
		Phase:         phase,
		RecoveryWeek:  recovery,
		Focus:         result.Focus,
		TotalMileage:  result.Totals.DistanceMiles,
		TrainingHours: result.Totals.TrainingHours,
		AvgDailyCals:  result.Totals.AvgDailyCalories,
		Notes:         result.Notes,
		Days:          make(map[string]models.PlanDay, models.DaysPerWeek),
	}

	for _, d := range models.AllWeekdays() {
		run := result.Running[d]
		day := models.PlanDay{
			Run: models.RunEntry{
				Type:            string(run.Kind),
				DistanceMiles:   run.Distance,
				DurationMinutes: run.DurationMin,
				Reason:          run.Reason,
			},
			IsBlockedDay: run.IsBlockedDay,
			Adjustment:   run.Adjustment,
		}
		if run.Kind == schedule.RunCross {
			day.CrossTraining = &models.CrossTrainingEntry{
				Activity: run.CrossTrainingActivity,
				Notes:    run.Reason,
			}
		}
		if s := result.Strength[d]; s != nil {
			day.Strength = &models.StrengthEntry{
				Type:            string(s.Type),
				Timing:          s.Timing,
				DurationMinutes: s.DurationMin,
				Notes:           s.Notes,
			}
		}
		nutrition := result.Nutrition[d]
		day.Nutrition = &nutrition
		out.Days[d.String()] = day
	}
	return out
}

// mondayOf returns the Monday of the week containing date.
func mondayOf(date models.PlanDate) models.PlanDate {
	offset := (int(date.Weekday()) + 6) % 7 // time.Weekday has Sunday == 0
	return date.AddDays(-offset)
}

func planName(intake *models.Intake) string {
	if intake.RaceName != "" {
		return intake.RaceName + " training plan"
	}
	return "marathon training plan"
}
