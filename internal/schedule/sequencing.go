package schedule

import "github.com/claude/paceline/internal/models"

// Sequencer answers strength-placement questions over the realized
// run-type map for a week. Both predicates are pure and cheap enough to
// recompute per candidate day across the 7-day domain.
type Sequencer struct {
	runs [models.DaysPerWeek]RunKind
}

// NewSequencer builds a Sequencer from the realized running assignments.
func NewSequencer(running [models.DaysPerWeek]RunningAssignment) *Sequencer {
	var s Sequencer
	for _, d := range models.AllWeekdays() {
		s.runs[d] = running[d].Kind
	}
	return &s
}

// CanAnyStrength reports whether any strength work may occur on day. It is
// false only when the next day carries a long or progression run: legs
// must be fresh for the week's primary endurance session.
func (s *Sequencer) CanAnyStrength(day models.Weekday) bool {
	return !s.runs[day.Next()].IsLongType()
}

// CanHeavyLegs reports whether a heavy lower-body session may occur on
// day: CanAnyStrength must hold, and neither the previous day, the next
// day, nor the day after next may carry a speed-type run. The window is a
// symmetric 48-hour buffer around hard running.
func (s *Sequencer) CanHeavyLegs(day models.Weekday) bool {
	if !s.CanAnyStrength(day) {
		return false
	}
	if s.runs[day.Prev()].IsSpeedWork() {
		return false
	}
	if s.runs[day.Next()].IsSpeedWork() {
		return false
	}
	if s.runs[day.Next().Next()].IsSpeedWork() {
		return false
	}
	return true
}
