package models

import (
	"fmt"
	"strings"
)

// Phase is a stage of the training cycle governing target volume and
// strength emphasis.
type Phase string

const (
	PhaseBase  Phase = "base"
	PhaseBuild Phase = "build"
	PhasePeak  Phase = "peak"
	PhaseTaper Phase = "taper"
	PhaseRace  Phase = "race"
)

// Level buckets athlete experience for the periodization tables.
type Level string

const (
	LevelBeginner     Level = "beginner"
	LevelIntermediate Level = "intermediate"
	LevelAdvanced     Level = "advanced"
)

// Availability is the athlete's week-invariant per-activity availability.
type Availability struct {
	RunningDays         DaySet  `json:"runningDays"`
	StrengthDays        DaySet  `json:"strengthDays"`
	PreferredLongRunDay Weekday `json:"preferredLongRunDay"`
}

// StrengthPreferences describes how often and on which days the athlete
// wants to lift.
type StrengthPreferences struct {
	DaysPerWeek   int    `json:"daysPerWeek"`
	PreferredDays DaySet `json:"preferredDays"`
	Notes         string `json:"notes,omitempty"`
}

// RecentRace is a race result used to derive pace and heart-rate zones.
type RecentRace struct {
	DistanceKm  float64 `json:"distanceKm"`
	TimeMinutes float64 `json:"timeMinutes"`
	Date        string  `json:"date,omitempty"`
}

// HeartRate holds measured or estimated heart-rate bounds.
type HeartRate struct {
	MaxBPM     int `json:"maxBPM"`
	RestingBPM int `json:"restingBPM"`
}

// BodyComposition holds the measurements the nutrition calculators need.
type BodyComposition struct {
	WeightKg float64 `json:"weightKg"`
	HeightCm float64 `json:"heightCm"`
	Age      int     `json:"age"`
	Sex      string  `json:"sex"`
}

// Intake is an athlete's plan-request submission.
type Intake struct {
	Email           string              `json:"email"`
	Goal            string              `json:"goal"`
	RaceName        string              `json:"raceName,omitempty"`
	RaceDate        PlanDate            `json:"raceDate"`
	WeeklyMileage   float64             `json:"currentWeeklyMileage"`
	Availability    Availability        `json:"availability"`
	StrengthPrefs   StrengthPreferences `json:"strengthPreferences"`
	RecentRace      RecentRace          `json:"recentRace"`
	HeartRate       HeartRate           `json:"heartRate"`
	BodyComposition BodyComposition     `json:"bodyComposition"`
	BlockedDates    []BlockedDateRange  `json:"blockedDates,omitempty"`
}

// Validate checks structural requirements and returns warnings for fields
// that are missing but survivable. Malformed blocked ranges are hard
// errors; everything else degrades with a warning so a plan can still be
// produced for human review.
func (in *Intake) Validate() (warnings []string, err error) {
	if in.Email == "" {
		warnings = append(warnings, "missing email")
	}
	if in.RaceDate.IsZero() {
		return warnings, fmt.Errorf("raceDate is required")
	}
	if in.Availability.RunningDays == 0 {
		warnings = append(warnings, "empty runningDays: every day will degrade to rest")
	}
	if in.RecentRace.DistanceKm <= 0 || in.RecentRace.TimeMinutes <= 0 {
		warnings = append(warnings, "missing recentRace: pace zones will use defaults")
	}
	if in.HeartRate.MaxBPM <= 0 {
		warnings = append(warnings, "missing heartRate: HR zones will be estimated from age")
	}
	if in.BodyComposition.WeightKg <= 0 {
		warnings = append(warnings, "missing bodyComposition: nutrition targets will use defaults")
	}
	for _, r := range in.BlockedDates {
		if err := r.Validate(); err != nil {
			return warnings, err
		}
	}
	return warnings, nil
}

// ExperienceLevel buckets the athlete by current weekly mileage.
func (in *Intake) ExperienceLevel() Level {
	switch {
	case in.WeeklyMileage >= 40:
		return LevelAdvanced
	case in.WeeklyMileage >= 20:
		return LevelIntermediate
	default:
		return LevelBeginner
	}
}

// EmailPrefix returns the address's local part with separators normalized,
// used for plan file naming.
func (in *Intake) EmailPrefix() string {
	if !strings.Contains(in.Email, "@") {
		return "athlete"
	}
	prefix := strings.SplitN(in.Email, "@", 2)[0]
	prefix = strings.ReplaceAll(prefix, ".", "-")
	return strings.ReplaceAll(prefix, "_", "-")
}
