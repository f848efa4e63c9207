// Package periodization holds the phase tables that decide the idealized
// weekly targets per training phase, and builds the week templates the
// schedule engine consumes. The tables are plain immutable data: loaded
// once, never mutated.
package periodization

import (
	"math"

	"github.com/claude/paceline/internal/models"
)

// peakWeeklyMileage is the highest planned weekly volume by level.
var peakWeeklyMileage = map[models.Level]float64{
	models.LevelBeginner:     35,
	models.LevelIntermediate: 45,
	models.LevelAdvanced:     55,
}

// peakLongRunMiles caps the longest long run by level.
var peakLongRunMiles = map[models.Level]float64{
	models.LevelBeginner:     18,
	models.LevelIntermediate: 20,
	models.LevelAdvanced:     22,
}

// phaseVolume maps each phase to its share of peak weekly mileage at the
// start and end of the phase; weeks interpolate linearly between them.
var phaseVolume = map[models.Phase]struct{ start, end float64 }{
	models.PhaseBase:  {0.60, 0.80},
	models.PhaseBuild: {0.80, 0.95},
	models.PhasePeak:  {0.95, 1.00},
	models.PhaseTaper: {0.70, 0.45},
	models.PhaseRace:  {0.30, 0.30},
}

// recoveryVolumeFactor scales a recovery week's mileage down.
const recoveryVolumeFactor = 0.7

// phaseFocus is the reviewer-facing summary line per phase.
var phaseFocus = map[models.Phase]string{
	models.PhaseBase:  "aerobic base: easy volume and one quality touch",
	models.PhaseBuild: "build: threshold and interval work on a growing base",
	models.PhasePeak:  "peak: race-specific work at full volume",
	models.PhaseTaper: "taper: shed fatigue, keep the legs sharp",
	models.PhaseRace:  "race week: short shakeouts, then go",
}

const recoveryFocus = "recovery week: reduced volume to absorb training stress"

// taperWeeks is how many final weeks (race week included) step down to
// the race.
const taperWeeks = 3

// PhaseForWeek returns the phase governing the given 1-based week of a
// plan with totalWeeks weeks: base, then build, then peak, with the final
// taperWeeks weeks tapering into the race.
func PhaseForWeek(week, totalWeeks int) models.Phase {
	if week >= totalWeeks {
		return models.PhaseRace
	}
	if week > totalWeeks-taperWeeks {
		return models.PhaseTaper
	}
	working := totalWeeks - taperWeeks
	baseEnd := int(math.Round(float64(working) * 0.45))
	buildEnd := baseEnd + int(math.Round(float64(working)*0.35))
	switch {
	case week <= baseEnd:
		return models.PhaseBase
	case week <= buildEnd:
		return models.PhaseBuild
	default:
		return models.PhasePeak
	}
}

// IsRecoveryWeek reports whether the week is a periodic recovery week:
// every fourth week, except inside the taper and race weeks which are
// already reduced.
func IsRecoveryWeek(week int, phase models.Phase) bool {
	if phase == models.PhaseTaper || phase == models.PhaseRace {
		return false
	}
	return week%4 == 0
}

// phaseSpan returns the 1-based position of week within its phase and the
// phase length, for volume interpolation.
func phaseSpan(week, totalWeeks int) (pos, length int) {
	phase := PhaseForWeek(week, totalWeeks)
	first := week
	for first > 1 && PhaseForWeek(first-1, totalWeeks) == phase {
		first--
	}
	last := week
	for last < totalWeeks && PhaseForWeek(last+1, totalWeeks) == phase {
		last++
	}
	return week - first + 1, last - first + 1
}

// weeklyMileage computes the week's planned volume from the phase tables.
func weeklyMileage(phase models.Phase, week, totalWeeks int, level models.Level, recovery bool) float64 {
	vol := phaseVolume[phase]
	pos, length := phaseSpan(week, totalWeeks)
	frac := vol.start
	if length > 1 {
		frac = vol.start + (vol.end-vol.start)*float64(pos-1)/float64(length-1)
	}
	miles := peakWeeklyMileage[level] * frac
	if recovery {
		miles *= recoveryVolumeFactor
	}
	return math.Round(miles*10) / 10
}
