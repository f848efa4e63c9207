package periodization

import (
	"math"

	"github.com/claude/paceline/internal/models"
	"github.com/claude/paceline/internal/schedule"
)

// marathonMiles is the race-week long run: the race itself.
const marathonMiles = 26.2

// qualityKinds is the quality-session mix per phase, in template order.
var qualityKinds = map[models.Phase][]schedule.RunKind{
	models.PhaseBase:  {schedule.RunTempo},
	models.PhaseBuild: {schedule.RunTempo, schedule.RunIntervals},
	models.PhasePeak:  {schedule.RunRacePace, schedule.RunIntervals},
	models.PhaseTaper: {schedule.RunRacePace},
	models.PhaseRace:  nil,
}

// WeekTemplate builds the idealized template for one week. The template
// honors only the athlete's preferred long-run day; real availability and
// blocked dates are the schedule engine's concern.
func WeekTemplate(phase models.Phase, week, totalWeeks int, level models.Level, avail models.Availability, recovery bool) schedule.WeekTemplate {
	longDay := avail.PreferredLongRunDay
	total := weeklyMileage(phase, week, totalWeeks, level, recovery)

	tmpl := schedule.WeekTemplate{
		Focus:        phaseFocus[phase],
		LongRunDay:   longDay,
		TotalMileage: total,
	}
	if recovery {
		tmpl.Focus = recoveryFocus
	}

	if phase == models.PhaseRace {
		return raceWeekTemplate(tmpl, longDay)
	}

	// Long run: roughly 40% of the week, capped by level.
	long := total * 0.4
	if limit := peakLongRunMiles[level]; long > limit {
		long = limit
	}
	tmpl.LongRunDistance = round1(long)

	// Quality sessions on the classic Tuesday/Thursday slots, skipping the
	// long-run day if it collides.
	kinds := qualityKinds[phase]
	if recovery && len(kinds) > 1 {
		kinds = kinds[:1]
	}
	qualityDays := pickDays([]models.Weekday{models.Tuesday, models.Thursday}, []models.Weekday{longDay}, len(kinds))
	qualityShare := []float64{0.17, 0.20}
	qualityTotal := 0.0
	for i, kind := range kinds {
		d := round1(total * qualityShare[i])
		if d < 3 {
			d = 3
		}
		tmpl.Quality = append(tmpl.Quality, schedule.QualitySlot{Day: qualityDays[i], Kind: kind, Distance: d})
		qualityTotal += d
	}

	// Wednesday rests; the free weekend day cross-trains outside the peak
	// and taper.
	restOccupied := append([]models.Weekday{longDay}, qualityDays...)
	restDay := pickDays([]models.Weekday{models.Wednesday}, restOccupied, 1)[0]
	tmpl.RestDays = []models.Weekday{restDay}

	if phase == models.PhaseBase || phase == models.PhaseBuild {
		cross := longDay.WeekendAlternate()
		tmpl.CrossTrainingDay = &cross
		tmpl.CrossTrainingNote = "low-impact aerobic work"
	}

	// Easy runs fill the remaining volume on Monday and Friday, dodging
	// every slot already claimed above so no template day is double-booked.
	occupied := append([]models.Weekday{longDay, restDay}, qualityDays...)
	if tmpl.CrossTrainingDay != nil {
		occupied = append(occupied, *tmpl.CrossTrainingDay)
	}
	easyDays := pickDays([]models.Weekday{models.Monday, models.Friday}, occupied, 2)
	easy := (total - tmpl.LongRunDistance - qualityTotal) / float64(len(easyDays))
	if easy < 3 {
		easy = 3
	}
	tmpl.EasyRunDays = easyDays
	tmpl.EasyRunDistance = round1(easy)

	return tmpl
}

// raceWeekTemplate lays out the final week: two short shakeouts, rest
// everywhere else, and the race on the long-run slot.
func raceWeekTemplate(tmpl schedule.WeekTemplate, longDay models.Weekday) schedule.WeekTemplate {
	tmpl.LongRunDistance = marathonMiles
	tmpl.EasyRunDays = pickDays([]models.Weekday{models.Tuesday, models.Thursday}, []models.Weekday{longDay}, 2)
	tmpl.EasyRunDistance = 2
	tmpl.TotalMileage = round1(marathonMiles + 2*tmpl.EasyRunDistance)
	for _, d := range models.AllWeekdays() {
		if d == longDay || containsDay(tmpl.EasyRunDays, d) {
			continue
		}
		tmpl.RestDays = append(tmpl.RestDays, d)
	}
	return tmpl
}

// pickDays returns n days from preferred (skipping occupied days), topping
// up from the remaining unoccupied week in natural order.
func pickDays(preferred []models.Weekday, occupied []models.Weekday, n int) []models.Weekday {
	var out []models.Weekday
	for _, d := range preferred {
		if !containsDay(occupied, d) && len(out) < n {
			out = append(out, d)
		}
	}
	for _, d := range models.AllWeekdays() {
		if len(out) >= n {
			break
		}
		if !containsDay(occupied, d) && !containsDay(out, d) && !containsDay(preferred, d) {
			out = append(out, d)
		}
	}
	return out
}

func containsDay(days []models.Weekday, d models.Weekday) bool {
	for _, x := range days {
		if x == d {
			return true
		}
	}
	return false
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
