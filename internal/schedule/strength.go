package schedule

import (
	"fmt"
	"math"

	"github.com/claude/paceline/internal/models"
)

// base strength session durations in minutes.
var strengthDuration = map[StrengthType]int{
	StrengthFullBody: 35,
	StrengthLower:    40,
	StrengthUpper:    30,
	StrengthCore:     20,
	StrengthMobility: 15,
}

// StrengthTarget returns how many strength sessions the week should carry:
// one on a recovery week, otherwise a per-phase transform of the athlete's
// preferred weekly count.
func StrengthTarget(phase models.Phase, recoveryWeek bool, preferredPerWeek int) int {
	if recoveryWeek {
		return 1
	}
	if preferredPerWeek <= 0 {
		return 0
	}
	switch phase {
	case models.PhaseBase:
		return preferredPerWeek
	case models.PhaseBuild:
		if preferredPerWeek-1 < 1 {
			return 1
		}
		return preferredPerWeek - 1
	case models.PhasePeak:
		half := int(math.Ceil(float64(preferredPerWeek) / 2))
		if half > 2 {
			return 2
		}
		return half
	case models.PhaseTaper, models.PhaseRace:
		return 0
	}
	return preferredPerWeek
}

// AllocateStrength walks the ordered candidate days and places up to the
// target number of strength sessions around the realized running week. If
// fewer eligible days exist than the target, fewer sessions are scheduled;
// the shortfall is reported as a note, never an error.
func AllocateStrength(running [models.DaysPerWeek]RunningAssignment, strengthDays models.DaySet, prefs models.StrengthPreferences, phase models.Phase, recoveryWeek bool) ([models.DaysPerWeek]*StrengthAssignment, []string) {
	var out [models.DaysPerWeek]*StrengthAssignment
	var notes []string

	target := StrengthTarget(phase, recoveryWeek, prefs.DaysPerWeek)
	if target == 0 {
		return out, nil
	}

	seq := NewSequencer(running)

	// Candidates: strength-available days that pass the any-strength rule,
	// athlete-preferred days first, ties in natural weekday order.
	var candidates []models.Weekday
	for _, d := range strengthDays.Days() {
		if prefs.PreferredDays.Has(d) && seq.CanAnyStrength(d) {
			candidates = append(candidates, d)
		}
	}
	for _, d := range strengthDays.Days() {
		if !prefs.PreferredDays.Has(d) && seq.CanAnyStrength(d) {
			candidates = append(candidates, d)
		}
	}

	placed := 0
	lowerPlaced := false
	upperPlaced := false
	for _, d := range candidates {
		if placed >= target {
			break
		}

		var session StrengthAssignment
		switch {
		case recoveryWeek:
			session = StrengthAssignment{
				Type:  StrengthFullBody,
				Notes: "light recovery session: movement quality over load",
			}
		case phase == models.PhasePeak:
			// Maintenance only at peak: one lower-body session where the
			// heavy-leg buffer allows, core everywhere else.
			if !lowerPlaced && seq.CanHeavyLegs(d) {
				session = StrengthAssignment{Type: StrengthLower, Notes: "maintenance load"}
				lowerPlaced = true
			} else {
				session = StrengthAssignment{Type: StrengthCore}
			}
		default:
			switch {
			case !lowerPlaced && seq.CanHeavyLegs(d):
				session = StrengthAssignment{Type: StrengthLower}
				lowerPlaced = true
			case !upperPlaced:
				session = StrengthAssignment{Type: StrengthUpper}
				upperPlaced = true
			default:
				session = StrengthAssignment{Type: StrengthCore}
			}
		}

		session.Day = d
		session.Timing = sessionTiming(running[d])
		session.DurationMin = sessionDuration(session.Type, phase, recoveryWeek)
		out[d] = &session
		placed++
	}

	if placed < target {
		notes = append(notes, fmt.Sprintf("scheduled %d of %d strength sessions: not enough eligible days", placed, target))
	}
	return out, notes
}

// sessionTiming places strength after the day's run when one exists.
func sessionTiming(run RunningAssignment) string {
	if run.Kind.IsRun() {
		return "after run"
	}
	return "any time"
}

// sessionDuration applies the recovery override and phase multipliers to
// the base duration table, rounding to whole minutes.
func sessionDuration(t StrengthType, phase models.Phase, recoveryWeek bool) int {
	if recoveryWeek {
		if t == StrengthCore {
			return 15
		}
		return 25
	}
	base := float64(strengthDuration[t])
	switch phase {
	case models.PhasePeak:
		base *= 0.7
	case models.PhaseTaper:
		base *= 0.5
	}
	return int(math.Round(base))
}
