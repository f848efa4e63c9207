// Package schedule implements the availability-constrained weekly schedule
// assignment engine: it maps an idealized week template plus the athlete's
// real availability and blocked date ranges onto a concrete, conflict-free
// assignment of running and strength work for each of the seven weekdays.
//
// The engine is a deterministic priority-ordered heuristic, not a solver.
// Each week is computed independently with no cross-week memory, and
// unsatisfiable constraints never raise errors: they degrade to rest with
// an explanatory reason, matching an offline-generation workflow that is
// reviewed by a human before use.
package schedule

import (
	"math"

	"github.com/claude/paceline/internal/models"
)

// RunKind classifies a day's running assignment.
type RunKind string

const (
	RunEasy        RunKind = "easy"
	RunLong        RunKind = "long"
	RunProgression RunKind = "progression"
	RunTempo       RunKind = "tempo"
	RunIntervals   RunKind = "intervals"
	RunHills       RunKind = "hill repeats"
	RunFartlek     RunKind = "fartlek"
	RunRacePace    RunKind = "race pace"
	RunRest        RunKind = "rest"
	RunCross       RunKind = "cross-training"
)

// IsRun reports whether the kind is an actual running workout (not rest or
// cross-training).
func (k RunKind) IsRun() bool {
	return k != RunRest && k != RunCross && k != ""
}

// IsLongType reports whether the kind is a long or progression run, the
// session class that forbids strength work the day before.
func (k RunKind) IsLongType() bool {
	return k == RunLong || k == RunProgression
}

// IsSpeedWork reports whether the kind is a speed-type run for the
// 48-hour heavy-leg buffer.
func (k RunKind) IsSpeedWork() bool {
	switch k {
	case RunTempo, RunIntervals, RunHills, RunFartlek, RunRacePace:
		return true
	}
	return false
}

// estimated training paces in minutes per mile, by kind. Interval and hill
// paces include recovery jogs, so they sit near easy pace.
var paceMinPerMile = map[RunKind]float64{
	RunEasy:        10.5,
	RunLong:        11.0,
	RunProgression: 10.5,
	RunTempo:       9.0,
	RunIntervals:   10.0,
	RunHills:       10.5,
	RunFartlek:     9.5,
	RunRacePace:    9.0,
}

// estimateMinutes converts a distance to an estimated session duration.
func estimateMinutes(kind RunKind, distanceMiles float64) int {
	pace, ok := paceMinPerMile[kind]
	if !ok || distanceMiles <= 0 {
		return 0
	}
	return int(math.Round(pace * distanceMiles))
}

// QualitySlot is one quality session in the ideal template.
type QualitySlot struct {
	Day      models.Weekday
	Kind     RunKind
	Distance float64
}

// WeekTemplate is the idealized weekly workout layout produced by the
// periodization tables. It is read-only input: the engine never mutates
// it, so template-to-result diffs can be asserted directly.
type WeekTemplate struct {
	Focus             string
	LongRunDay        models.Weekday
	LongRunDistance   float64
	Quality           []QualitySlot
	EasyRunDays       []models.Weekday
	EasyRunDistance   float64
	RestDays          []models.Weekday
	CrossTrainingDay  *models.Weekday
	CrossTrainingNote string
	TotalMileage      float64
}

// RunningAssignment is the realized running outcome for one weekday. Kind
// distinguishes the workout/rest/cross-training variants; Reason explains
// any degraded outcome.
type RunningAssignment struct {
	Day                   models.Weekday
	Kind                  RunKind
	Distance              float64
	DurationMin           int
	Reason                string
	CrossTrainingActivity string
	IsBlockedDay          bool
	Adjustment            *models.Adjustment
}

// StrengthType classifies a strength session.
type StrengthType string

const (
	StrengthFullBody StrengthType = "full-body"
	StrengthUpper    StrengthType = "upper-body"
	StrengthLower    StrengthType = "lower-body"
	StrengthCore     StrengthType = "core"
	StrengthMobility StrengthType = "mobility"
)

// StrengthAssignment is an allocated strength session on one weekday.
type StrengthAssignment struct {
	Day         models.Weekday
	Type        StrengthType
	Timing      string
	DurationMin int
	Notes       string
}

// WeekTotals holds the aggregated week numbers.
type WeekTotals struct {
	DistanceMiles    float64
	TrainingHours    float64
	AvgDailyCalories float64
}

// WeekResult is the realized week: exactly one running assignment per
// weekday, up to one strength assignment per weekday, totals, and notes
// explaining anything the engine could not satisfy.
type WeekResult struct {
	Running   [models.DaysPerWeek]RunningAssignment
	Strength  [models.DaysPerWeek]*StrengthAssignment
	Totals    WeekTotals
	Focus     string
	Nutrition [models.DaysPerWeek]models.NutritionEntry
	Notes     []string
}

// RunOn returns the realized run kind for a day.
func (r *WeekResult) RunOn(day models.Weekday) RunKind {
	return r.Running[day].Kind
}

// round1 rounds to one decimal place.
func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
