package schedule

import (
	"fmt"

	"github.com/claude/paceline/internal/models"
)

// AssignRunning produces the seven running assignments for a week via an
// ordered, single-pass, non-backtracking procedure: long run first, then
// quality sessions, easy runs, rest days, and the cross-training day.
// After the pass every weekday has exactly one assignment. Unsatisfiable
// constraints never fail; they degrade to rest with an explanatory reason,
// returned alongside the assignments as reviewer notes.
func AssignRunning(tmpl WeekTemplate, runningDays models.DaySet, ranges []models.BlockedDateRange, weekStart models.PlanDate) ([models.DaysPerWeek]RunningAssignment, []string) {
	var out [models.DaysPerWeek]RunningAssignment
	var assigned [models.DaysPerWeek]bool
	var notes []string

	var verdicts [models.DaysPerWeek]BlockVerdict
	for _, d := range models.AllWeekdays() {
		verdicts[d] = ResolveBlocked(weekStart.AddDays(int(d)), ranges)
	}

	canRun := func(d models.Weekday) bool {
		return runningDays.Has(d) && !verdicts[d].Blocked
	}
	place := func(a RunningAssignment) {
		out[a.Day] = a
		assigned[a.Day] = true
	}

	// Step A: the long run has priority 1. An unavailable long-run day is
	// retried once on the paired weekend alternate; if that also fails the
	// long run is dropped for the week and the day degrades to rest. No
	// broader search across the other weekdays is performed.
	longDay := tmpl.LongRunDay
	if canRun(longDay) {
		place(runWorkout(longDay, RunLong, tmpl.LongRunDistance))
	} else {
		reason := unavailableReason(longDay, runningDays, verdicts[longDay])
		alt := longDay.WeekendAlternate()
		if canRun(alt) && !assigned[alt] {
			a := runWorkout(alt, RunLong, tmpl.LongRunDistance)
			a.Adjustment = &models.Adjustment{WasAdjusted: true, OriginalDay: longDay, Reason: reason}
			place(a)
			// The original day falls through to the later steps, which
			// resolve it from its own block verdict.
		} else {
			place(degradedDay(longDay, runningDays, verdicts[longDay]))
			notes = append(notes, "long run dropped this week: "+reason)
		}
	}

	// Step B: quality sessions are never relocated. A fully blocked day
	// becomes rest; a cross-training block downgrades the session in place
	// to an easy run one distance unit shorter.
	for _, q := range tmpl.Quality {
		if assigned[q.Day] {
			// The relocated long run took this slot; priority 1 wins.
			notes = append(notes, fmt.Sprintf("%s session dropped: %s taken by the long run", q.Kind, q.Day))
			continue
		}
		v := verdicts[q.Day]
		switch {
		case !runningDays.Has(q.Day):
			place(restDay(q.Day, "not available for running", v.Blocked))
		case v.Blocked && v.Kind == models.BlockRest:
			place(restDay(q.Day, v.Reason, true))
		case v.Blocked:
			d := q.Distance - 1
			if d < 1 {
				d = 1
			}
			a := runWorkout(q.Day, RunEasy, d)
			a.Reason = fmt.Sprintf("downgraded from %s: %s", q.Kind, v.Reason)
			a.IsBlockedDay = true
			place(a)
		default:
			place(runWorkout(q.Day, q.Kind, q.Distance))
		}
	}

	// Step C: easy runs come from the phase/level default distance. A
	// dropped easy run never redistributes volume onto another day.
	for _, d := range tmpl.EasyRunDays {
		if assigned[d] {
			continue
		}
		v := verdicts[d]
		switch {
		case !runningDays.Has(d):
			place(restDay(d, "not available for running", v.Blocked))
		case v.Blocked && v.Kind == models.BlockCrossTraining:
			place(crossDay(d, v, true))
		case v.Blocked:
			place(restDay(d, v.Reason, true))
		default:
			place(runWorkout(d, RunEasy, tmpl.EasyRunDistance))
		}
	}

	// Step D: remaining template rest days.
	for _, d := range tmpl.RestDays {
		if assigned[d] {
			continue
		}
		v := verdicts[d]
		place(restDay(d, v.Reason, v.Blocked))
	}

	// Step E: the optional cross-training day.
	if tmpl.CrossTrainingDay != nil && !assigned[*tmpl.CrossTrainingDay] {
		d := *tmpl.CrossTrainingDay
		v := verdicts[d]
		switch {
		case v.Blocked && v.Kind == models.BlockRest:
			place(restDay(d, v.Reason, true))
		case v.Blocked:
			place(crossDay(d, v, true))
		default:
			a := RunningAssignment{Day: d, Kind: RunCross, CrossTrainingActivity: tmpl.CrossTrainingNote}
			if a.CrossTrainingActivity == "" {
				a.CrossTrainingActivity = "athlete's choice"
			}
			place(a)
		}
	}

	// Full-coverage fill: anything the template left unmentioned, plus the
	// original day of a relocated long run.
	for _, d := range models.AllWeekdays() {
		if assigned[d] {
			continue
		}
		place(degradedDay(d, runningDays, verdicts[d]))
	}

	return out, notes
}

func runWorkout(day models.Weekday, kind RunKind, distance float64) RunningAssignment {
	return RunningAssignment{
		Day:         day,
		Kind:        kind,
		Distance:    distance,
		DurationMin: estimateMinutes(kind, distance),
	}
}

func restDay(day models.Weekday, reason string, blocked bool) RunningAssignment {
	return RunningAssignment{Day: day, Kind: RunRest, Reason: reason, IsBlockedDay: blocked}
}

func crossDay(day models.Weekday, v BlockVerdict, blocked bool) RunningAssignment {
	activity := v.Activity
	if activity == "" {
		activity = v.Reason
	}
	return RunningAssignment{
		Day:                   day,
		Kind:                  RunCross,
		CrossTrainingActivity: activity,
		Reason:                v.Reason,
		IsBlockedDay:          blocked,
	}
}

// degradedDay resolves a day the template plan could not serve, honoring
// the block kind: a cross-training block still yields cross-training,
// anything else yields rest.
func degradedDay(day models.Weekday, runningDays models.DaySet, v BlockVerdict) RunningAssignment {
	switch {
	case v.Blocked && v.Kind == models.BlockCrossTraining:
		return crossDay(day, v, true)
	case v.Blocked:
		return restDay(day, v.Reason, true)
	case !runningDays.Has(day):
		return restDay(day, "not available for running", false)
	default:
		return restDay(day, "", false)
	}
}

func unavailableReason(day models.Weekday, runningDays models.DaySet, v BlockVerdict) string {
	if v.Blocked {
		return v.Reason
	}
	if !runningDays.Has(day) {
		return fmt.Sprintf("%s is not a running day", day)
	}
	return ""
}
