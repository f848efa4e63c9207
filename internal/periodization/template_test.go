package periodization

import (
	"testing"

	"github.com/claude/paceline/internal/models"
	"github.com/claude/paceline/internal/schedule"
)

func testAvailability() models.Availability {
	return models.Availability{PreferredLongRunDay: models.Sunday}
}

// TestPhaseForWeekProgression verifies the base/build/peak/taper/race
// phase sequence over a 16-week plan.
func TestPhaseForWeekProgression(t *testing.T) {
	if got := PhaseForWeek(1, 16); got != models.PhaseBase {
		t.Errorf("week 1 = %s, want base", got)
	}
	if got := PhaseForWeek(8, 16); got != models.PhaseBuild {
		t.Errorf("week 8 = %s, want build", got)
	}
	if got := PhaseForWeek(12, 16); got != models.PhasePeak {
		t.Errorf("week 12 = %s, want peak", got)
	}
	if got := PhaseForWeek(14, 16); got != models.PhaseTaper {
		t.Errorf("week 14 = %s, want taper", got)
	}
	if got := PhaseForWeek(16, 16); got != models.PhaseRace {
		t.Errorf("week 16 = %s, want race", got)
	}
}

// TestPhaseOrderNeverRegresses verifies the phase sequence is monotone
// across every plan length the assembler produces.
func TestPhaseOrderNeverRegresses(t *testing.T) {
	order := map[models.Phase]int{
		models.PhaseBase: 0, models.PhaseBuild: 1, models.PhasePeak: 2,
		models.PhaseTaper: 3, models.PhaseRace: 4,
	}
	for total := 10; total <= 18; total++ {
		prev := 0
		for week := 1; week <= total; week++ {
			cur := order[PhaseForWeek(week, total)]
			if cur < prev {
				t.Errorf("total %d: phase regressed at week %d", total, week)
			}
			prev = cur
		}
	}
}

// TestRecoveryWeekCadence verifies every fourth week recovers, except
// inside the taper.
func TestRecoveryWeekCadence(t *testing.T) {
	if !IsRecoveryWeek(4, models.PhaseBase) {
		t.Error("week 4 should recover")
	}
	if IsRecoveryWeek(5, models.PhaseBase) {
		t.Error("week 5 should not recover")
	}
	if IsRecoveryWeek(16, models.PhaseRace) {
		t.Error("race week never recovers")
	}
}

// TestWeekTemplateHonorsLongRunDay verifies the template pins the long run
// to the athlete's preferred day and never double-books it.
func TestWeekTemplateHonorsLongRunDay(t *testing.T) {
	avail := models.Availability{PreferredLongRunDay: models.Saturday}
	tmpl := WeekTemplate(models.PhaseBuild, 8, 16, models.LevelIntermediate, avail, false)

	if tmpl.LongRunDay != models.Saturday {
		t.Errorf("long run day = %s, want saturday", tmpl.LongRunDay)
	}
	for _, q := range tmpl.Quality {
		if q.Day == models.Saturday {
			t.Errorf("quality session collides with the long run on %s", q.Day)
		}
	}
	for _, d := range tmpl.EasyRunDays {
		if d == models.Saturday {
			t.Error("easy run collides with the long run")
		}
	}
	if tmpl.CrossTrainingDay != nil && *tmpl.CrossTrainingDay != models.Sunday {
		t.Errorf("cross-training day = %s, want sunday", *tmpl.CrossTrainingDay)
	}
}

// TestWeekTemplateDisjointDaySlots verifies no template day is ever
// double-booked. A Monday long run is the sharp case: it pushes the easy
// runs off Monday, and the top-up day must also dodge the quality, rest,
// and cross-training slots.
func TestWeekTemplateDisjointDaySlots(t *testing.T) {
	for _, longDay := range models.AllWeekdays() {
		avail := models.Availability{PreferredLongRunDay: longDay}
		for week := 1; week <= 16; week++ {
			phase := PhaseForWeek(week, 16)
			tmpl := WeekTemplate(phase, week, 16, models.LevelIntermediate, avail, IsRecoveryWeek(week, phase))

			used := map[models.Weekday]string{tmpl.LongRunDay: "long run"}
			claim := func(d models.Weekday, what string) {
				if prev, ok := used[d]; ok {
					t.Errorf("long day %s, week %d (%s): %s and %s both on %s", longDay, week, phase, prev, what, d)
				}
				used[d] = what
			}
			for _, q := range tmpl.Quality {
				claim(q.Day, string(q.Kind))
			}
			for _, d := range tmpl.EasyRunDays {
				claim(d, "easy run")
			}
			for _, d := range tmpl.RestDays {
				claim(d, "rest")
			}
			if tmpl.CrossTrainingDay != nil {
				claim(*tmpl.CrossTrainingDay, "cross-training")
			}
		}
	}
}

// TestWeekTemplateBuildPhase verifies a build week carries two quality
// sessions and plausible distances.
func TestWeekTemplateBuildPhase(t *testing.T) {
	tmpl := WeekTemplate(models.PhaseBuild, 8, 16, models.LevelIntermediate, testAvailability(), false)

	if len(tmpl.Quality) != 2 {
		t.Fatalf("quality sessions = %d, want 2", len(tmpl.Quality))
	}
	if tmpl.Quality[0].Kind != schedule.RunTempo || tmpl.Quality[1].Kind != schedule.RunIntervals {
		t.Errorf("quality kinds = %s/%s, want tempo/intervals", tmpl.Quality[0].Kind, tmpl.Quality[1].Kind)
	}
	if tmpl.LongRunDistance <= 0 || tmpl.LongRunDistance > 20 {
		t.Errorf("long run = %.1f, want within (0, 20]", tmpl.LongRunDistance)
	}
	if tmpl.TotalMileage <= tmpl.LongRunDistance {
		t.Errorf("total %.1f should exceed the long run %.1f", tmpl.TotalMileage, tmpl.LongRunDistance)
	}
}

// TestWeekTemplateRecoveryReducesVolume verifies a recovery week plans
// less volume and drops to a single quality session.
func TestWeekTemplateRecoveryReducesVolume(t *testing.T) {
	normal := WeekTemplate(models.PhaseBuild, 7, 16, models.LevelIntermediate, testAvailability(), false)
	recovery := WeekTemplate(models.PhaseBuild, 8, 16, models.LevelIntermediate, testAvailability(), true)

	if recovery.TotalMileage >= normal.TotalMileage {
		t.Errorf("recovery mileage %.1f should be under %.1f", recovery.TotalMileage, normal.TotalMileage)
	}
	if len(recovery.Quality) != 1 {
		t.Errorf("recovery quality sessions = %d, want 1", len(recovery.Quality))
	}
}

// TestWeekTemplateRaceWeek verifies the final week is the race plus short
// shakeouts and rest.
func TestWeekTemplateRaceWeek(t *testing.T) {
	tmpl := WeekTemplate(models.PhaseRace, 16, 16, models.LevelIntermediate, testAvailability(), false)

	if tmpl.LongRunDistance != 26.2 {
		t.Errorf("race distance = %.1f, want 26.2", tmpl.LongRunDistance)
	}
	if len(tmpl.Quality) != 0 {
		t.Errorf("race week has %d quality sessions, want 0", len(tmpl.Quality))
	}
	if tmpl.EasyRunDistance != 2 {
		t.Errorf("shakeout distance = %.1f, want 2", tmpl.EasyRunDistance)
	}
}

// TestMileageRampsAcrossPhases verifies planned volume grows from early
// base to peak and shrinks through the taper.
func TestMileageRampsAcrossPhases(t *testing.T) {
	early := weeklyMileage(models.PhaseBase, 1, 16, models.LevelIntermediate, false)
	peak := weeklyMileage(models.PhasePeak, 12, 16, models.LevelIntermediate, false)
	taper := weeklyMileage(models.PhaseTaper, 15, 16, models.LevelIntermediate, false)

	if !(early < peak) {
		t.Errorf("base %.1f should be under peak %.1f", early, peak)
	}
	if !(taper < peak) {
		t.Errorf("taper %.1f should be under peak %.1f", taper, peak)
	}
}
