package calc

import (
	"math"
	"strings"

	"github.com/claude/paceline/internal/models"
)

// activityFactor converts BMR to baseline TDEE for a lightly active day
// with no training load; workout calories are added on top per day.
const activityFactor = 1.4

// kcal per kg of body weight per km of running at easy intensity.
const runKcalPerKgKm = 1.036

// Nutritionist computes per-day calorie and macro targets for one
// athlete. It satisfies the schedule engine's NutritionCalculator
// interface.
type Nutritionist struct {
	body models.BodyComposition
}

// NewNutritionist builds a Nutritionist, substituting population defaults
// for missing measurements so a plan can always be produced.
func NewNutritionist(body models.BodyComposition) *Nutritionist {
	if body.WeightKg <= 0 {
		body.WeightKg = 70
	}
	if body.HeightCm <= 0 {
		body.HeightCm = 172
	}
	if body.Age <= 0 {
		body.Age = 35
	}
	return &Nutritionist{body: body}
}

// BMR is the Mifflin-St Jeor basal metabolic rate.
func (n *Nutritionist) BMR() float64 {
	b := 10*n.body.WeightKg + 6.25*n.body.HeightCm - 5*float64(n.body.Age)
	switch strings.ToLower(n.body.Sex) {
	case "male", "m":
		return b + 5
	case "female", "f":
		return b - 161
	default:
		return b - 78
	}
}

// BaseTDEE is the no-training daily energy expenditure.
func (n *Nutritionist) BaseTDEE() float64 {
	return n.BMR() * activityFactor
}

// RunningCalories estimates the energy cost of a run from distance, body
// weight, and an intensity factor.
func (n *Nutritionist) RunningCalories(distanceMiles, intensity float64) float64 {
	if distanceMiles <= 0 {
		return 0
	}
	return runKcalPerKgKm * n.body.WeightKg * distanceMiles * kmPerMile * intensity
}

// StrengthCalories estimates the energy cost of a strength session,
// scaled by body weight around a 70 kg reference.
func (n *Nutritionist) StrengthCalories(durationMin int) float64 {
	if durationMin <= 0 {
		return 0
	}
	return 6 * float64(durationMin) * n.body.WeightKg / 70
}

// DailyNutrition builds the day's calorie and macro targets: training
// calories on top of baseline TDEE, protein by body weight (higher on
// strength days), fat at 25% of calories, carbohydrate as the remainder.
func (n *Nutritionist) DailyNutrition(runningCalories, strengthCalories float64) models.NutritionEntry {
	calories := n.BaseTDEE() + runningCalories + strengthCalories

	proteinPerKg := 1.6
	if strengthCalories > 0 {
		proteinPerKg = 1.8
	}
	protein := proteinPerKg * n.body.WeightKg
	fat := calories * 0.25 / 9
	carbs := (calories - protein*4 - fat*9) / 4

	return models.NutritionEntry{
		Calories: math.Round(calories),
		ProteinG: math.Round(protein),
		CarbsG:   math.Round(carbs),
		FatG:     math.Round(fat),
	}
}
