package calc

import (
	"testing"

	"github.com/claude/paceline/internal/models"
)

func testBody() models.BodyComposition {
	return models.BodyComposition{WeightKg: 70, HeightCm: 175, Age: 30, Sex: "male"}
}

// TestBMRMifflin verifies the Mifflin-St Jeor formula against a hand
// computation.
func TestBMRMifflin(t *testing.T) {
	n := NewNutritionist(testBody())
	// 10*70 + 6.25*175 - 5*30 + 5 = 1648.75
	if got := n.BMR(); got != 1648.75 {
		t.Errorf("BMR = %.2f, want 1648.75", got)
	}
}

// TestRunningCaloriesScalesWithIntensity verifies harder runs of the same
// distance cost more energy.
func TestRunningCaloriesScalesWithIntensity(t *testing.T) {
	n := NewNutritionist(testBody())
	easy := n.RunningCalories(5, 1.0)
	hard := n.RunningCalories(5, 1.1)
	if easy <= 0 {
		t.Fatalf("easy calories = %.0f, want positive", easy)
	}
	if hard <= easy {
		t.Errorf("intensity 1.1 (%.0f) should exceed 1.0 (%.0f)", hard, easy)
	}
}

// TestDailyNutritionMacros verifies the macro split: calories add up from
// the macro grams within rounding error.
func TestDailyNutritionMacros(t *testing.T) {
	n := NewNutritionist(testBody())
	day := n.DailyNutrition(500, 200)

	if day.Calories <= n.BaseTDEE() {
		t.Errorf("calories = %.0f, want above base TDEE %.0f", day.Calories, n.BaseTDEE())
	}
	fromMacros := day.ProteinG*4 + day.CarbsG*4 + day.FatG*9
	if diff := day.Calories - fromMacros; diff > 15 || diff < -15 {
		t.Errorf("macros total %.0f kcal vs %.0f target", fromMacros, day.Calories)
	}
}

// TestDailyNutritionProteinOnStrengthDays verifies the protein target
// rises on strength days.
func TestDailyNutritionProteinOnStrengthDays(t *testing.T) {
	n := NewNutritionist(testBody())
	rest := n.DailyNutrition(300, 0)
	lift := n.DailyNutrition(300, 200)
	if lift.ProteinG <= rest.ProteinG {
		t.Errorf("strength-day protein %.0f should exceed %.0f", lift.ProteinG, rest.ProteinG)
	}
}

// TestNutritionistDefaults verifies missing body composition degrades to
// population defaults rather than zeroing the targets.
func TestNutritionistDefaults(t *testing.T) {
	n := NewNutritionist(models.BodyComposition{})
	if n.BaseTDEE() <= 0 {
		t.Errorf("TDEE = %.0f, want positive with defaults", n.BaseTDEE())
	}
}
