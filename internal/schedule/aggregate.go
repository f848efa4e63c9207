package schedule

import "github.com/claude/paceline/internal/models"

// strengthSessionMinutes is the flat time cost a strength session adds to
// the weekly training-hours total, independent of its prescribed duration.
const strengthSessionMinutes = 30

// NutritionCalculator is the external per-day nutrition math the
// aggregator delegates to. Implementations hold the athlete's body
// composition; the engine only supplies workout-derived calorie inputs.
type NutritionCalculator interface {
	// RunningCalories estimates calories burned by a run of the given
	// distance at the given intensity factor.
	RunningCalories(distanceMiles, intensity float64) float64
	// StrengthCalories estimates calories burned by a strength session.
	StrengthCalories(durationMin int) float64
	// DailyNutrition builds the day's calorie and macro targets from the
	// workout calories.
	DailyNutrition(runningCalories, strengthCalories float64) models.NutritionEntry
	// BaseTDEE is the no-training daily energy expenditure, the fallback
	// when a week has no positive daily totals.
	BaseTDEE() float64
}

// intensityFactor scales running calorie burn by session type.
func intensityFactor(kind RunKind) float64 {
	switch {
	case kind.IsSpeedWork():
		return 1.1
	case kind.IsLongType():
		return 1.05
	default:
		return 1.0
	}
}

// AggregateWeek sums distance and estimated time across the realized week
// and computes per-day nutrition targets, averaging the positive daily
// calorie totals for the week (falling back to base TDEE if none are
// positive).
func AggregateWeek(running [models.DaysPerWeek]RunningAssignment, strength [models.DaysPerWeek]*StrengthAssignment, nut NutritionCalculator) (WeekTotals, [models.DaysPerWeek]models.NutritionEntry) {
	var totals WeekTotals
	var nutrition [models.DaysPerWeek]models.NutritionEntry

	minutes := 0
	calorieSum := 0.0
	calorieDays := 0

	for _, d := range models.AllWeekdays() {
		run := running[d]
		totals.DistanceMiles += run.Distance
		minutes += run.DurationMin

		var runCal, strengthCal float64
		if run.Kind.IsRun() {
			runCal = nut.RunningCalories(run.Distance, intensityFactor(run.Kind))
		}
		if s := strength[d]; s != nil {
			minutes += strengthSessionMinutes
			strengthCal = nut.StrengthCalories(s.DurationMin)
		}

		daily := nut.DailyNutrition(runCal, strengthCal)
		nutrition[d] = daily
		if daily.Calories > 0 {
			calorieSum += daily.Calories
			calorieDays++
		}
	}

	totals.DistanceMiles = round1(totals.DistanceMiles)
	totals.TrainingHours = round1(float64(minutes) / 60)
	if calorieDays > 0 {
		totals.AvgDailyCalories = round1(calorieSum / float64(calorieDays))
	} else {
		totals.AvgDailyCalories = round1(nut.BaseTDEE())
	}
	return totals, nutrition
}
