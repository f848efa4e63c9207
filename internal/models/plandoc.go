package models

import (
	"time"

	"github.com/google/uuid"
)

// PlanDocument is the persisted training plan schema, later rendered by an
// external document layer.
type PlanDocument struct {
	Metadata  PlanMetadata `json:"metadata"`
	Athlete   PlanAthlete  `json:"athlete"`
	PaceZones []PaceZone   `json:"paceZones"`
	HRZones   []HRZone     `json:"hrZones"`
	Weeks     []PlanWeek   `json:"weeks"`
}

// PlanMetadata identifies the plan and how it was generated.
type PlanMetadata struct {
	PlanID      uuid.UUID `json:"planId"`
	PlanName    string    `json:"planName"`
	Goal        string    `json:"goal"`
	RaceName    string    `json:"raceName,omitempty"`
	RaceDate    PlanDate  `json:"raceDate"`
	GeneratedAt time.Time `json:"generatedAt"`
	Generator   string    `json:"generator"`
	Version     string    `json:"version"`
}

// PlanAthlete echoes the intake fields the document renderer needs.
type PlanAthlete struct {
	Email         string  `json:"email,omitempty"`
	Level         Level   `json:"level"`
	WeeklyMileage float64 `json:"currentWeeklyMileage"`
	WeightKg      float64 `json:"weightKg,omitempty"`
}

// PaceZone is a named training pace band in minutes per mile.
type PaceZone struct {
	Name       string  `json:"name"`
	MinPerMile float64 `json:"minPerMile"`
	MaxPerMile float64 `json:"maxPerMile"`
	Purpose    string  `json:"purpose,omitempty"`
}

// HRZone is a named heart-rate band in beats per minute.
type HRZone struct {
	Name   string `json:"name"`
	MinBPM int    `json:"minBPM"`
	MaxBPM int    `json:"maxBPM"`
}

// PlanWeek is one realized training week in the document.
type PlanWeek struct {
	WeekNumber     int                 `json:"weekNumber"`
	StartDate      PlanDate            `json:"startDate"`
	Phase          Phase               `json:"phase"`
	RecoveryWeek   bool                `json:"recoveryWeek,omitempty"`
	Focus          string              `json:"focus"`
	TotalMileage   float64             `json:"totalMileage"`
	TrainingHours  float64             `json:"trainingHours"`
	AvgDailyCals   float64             `json:"avgDailyCalories"`
	Notes          []string            `json:"notes,omitempty"`
	Days           map[string]PlanDay  `json:"days"`
}

// PlanDay is one realized day: a running assignment, an optional strength
// session, and the day's nutrition targets.
type PlanDay struct {
	Run           RunEntry            `json:"run"`
	IsBlockedDay  bool                `json:"isBlockedDay,omitempty"`
	Adjustment    *Adjustment         `json:"adjustment,omitempty"`
	CrossTraining *CrossTrainingEntry `json:"crossTraining,omitempty"`
	Strength      *StrengthEntry      `json:"strength,omitempty"`
	Nutrition     *NutritionEntry     `json:"nutrition,omitempty"`
}

// RunEntry is the serialized running assignment for a day.
type RunEntry struct {
	Type            string  `json:"type"`
	DistanceMiles   float64 `json:"distanceMiles,omitempty"`
	DurationMinutes int     `json:"durationMinutes,omitempty"`
	Reason          string  `json:"reason,omitempty"`
}

// Adjustment records why an assignment moved from its template day.
type Adjustment struct {
	WasAdjusted bool    `json:"wasAdjusted"`
	OriginalDay Weekday `json:"originalDay"`
	Reason      string  `json:"reason"`
}

// CrossTrainingEntry describes a cross-training day.
type CrossTrainingEntry struct {
	Activity string `json:"activity"`
	Notes    string `json:"notes,omitempty"`
}

// StrengthEntry is the serialized strength session for a day.
type StrengthEntry struct {
	Type            string `json:"type"`
	Timing          string `json:"timing"`
	DurationMinutes int    `json:"durationMinutes"`
	Notes           string `json:"notes,omitempty"`
}

// NutritionEntry is the day's calorie and macro targets.
type NutritionEntry struct {
	Calories float64 `json:"calories"`
	ProteinG float64 `json:"proteinG"`
	CarbsG   float64 `json:"carbsG"`
	FatG     float64 `json:"fatG"`
}

// PlanSummary is the listing row for stored plans.
type PlanSummary struct {
	PlanID    uuid.UUID `json:"planId"`
	Email     string    `json:"email"`
	Goal      string    `json:"goal"`
	RaceDate  PlanDate  `json:"raceDate"`
	Weeks     int       `json:"weeks"`
	CreatedAt time.Time `json:"createdAt"`
}
