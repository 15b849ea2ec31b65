package nutrition

import (
	"math"

	"github.com/hibikero/nutributler/domain"
)

const (
	// Returned when the biometric profile is incomplete.
	fallbackBMR = 1500
	// BMR is never reported below this, to avoid degenerate diet targets.
	minBMR = 800

	defaultActivityMultiplier = 1.375

	caloriesPerGramProtein = 4
	caloriesPerGramCarbs   = 4
	caloriesPerGramFat     = 9
)

// BiometricProfile is the read-only planner input, taken from the user record.
// Nil fields mean the user has not filled them in yet.
type BiometricProfile struct {
	Gender        string
	Weight        *float64 // kg
	Height        *float64 // cm
	Age           *int     // years
	ActivityLevel *int     // 1..5
}

var activityMultipliers = map[int]float64{
	1: 1.20,  // sedentary
	2: 1.375, // light activity
	3: 1.55,  // moderate activity
	4: 1.725, // high activity
	5: 1.90,  // very high activity
}

// goalCalorieFactors adjusts TDEE per health goal. The constants are carried
// over from the original design as-is.
var goalCalorieFactors = map[domain.HealthGoal]float64{
	domain.GoalBodyComposition: 0.80,
	domain.GoalEnergy:          1.00,
	domain.GoalSleep:           1.00,
	domain.GoalImmunity:        1.05,
	domain.GoalGlycemicControl: 1.00,
}

// Ratios is the fractional split of daily calories among macros; the three
// fields sum to 1.0.
type Ratios struct {
	Protein float64
	Carbs   float64
	Fat     float64
}

var goalNutritionRatios = map[domain.HealthGoal]Ratios{
	domain.GoalBodyComposition: {Protein: 0.25, Carbs: 0.45, Fat: 0.30},
	domain.GoalEnergy:          {Protein: 0.20, Carbs: 0.50, Fat: 0.30},
	domain.GoalSleep:           {Protein: 0.20, Carbs: 0.50, Fat: 0.30},
	domain.GoalImmunity:        {Protein: 0.25, Carbs: 0.45, Fat: 0.30},
	domain.GoalGlycemicControl: {Protein: 0.30, Carbs: 0.40, Fat: 0.30},
}

// CalculateBMR estimates basal metabolic rate with the Mifflin-St Jeor
// formula. It is a total function: an incomplete profile yields the fallback
// value instead of an error, and the result is floored at minBMR.
func CalculateBMR(p BiometricProfile) float64 {
	if p.Gender == "" || p.Weight == nil || p.Height == nil || p.Age == nil {
		return fallbackBMR
	}

	bmr := 10**p.Weight + 6.25**p.Height - 5*float64(*p.Age)
	if p.Gender == domain.GenderMale {
		bmr += 5
	} else {
		bmr -= 161
	}

	return math.Max(bmr, minBMR)
}

// CalculateTDEE scales BMR by the activity multiplier. A missing or
// out-of-range activity level defaults to light activity.
func CalculateTDEE(p BiometricProfile) float64 {
	return CalculateBMR(p) * ActivityMultiplier(p.ActivityLevel)
}

func ActivityMultiplier(level *int) float64 {
	if level == nil {
		return defaultActivityMultiplier
	}
	m, ok := activityMultipliers[*level]
	if !ok {
		return defaultActivityMultiplier
	}
	return m
}

// CalculateTargetCalories applies the goal adjustment factor to TDEE and
// rounds to whole kcal. Unknown goals keep TDEE unchanged.
func CalculateTargetCalories(p BiometricProfile, goal domain.HealthGoal) int {
	tdee := CalculateTDEE(p)
	factor, ok := goalCalorieFactors[goal]
	if !ok {
		factor = 1.00
	}
	return int(math.Round(tdee * factor))
}

// NutritionRatios returns the fixed macro split for a goal; unknown goals get
// the body-composition defaults.
func NutritionRatios(goal domain.HealthGoal) Ratios {
	r, ok := goalNutritionRatios[goal]
	if !ok {
		return goalNutritionRatios[domain.GoalBodyComposition]
	}
	return r
}

// MealNutrition is one meal's calorie share converted into macro grams at
// 4 kcal/g for protein and carbohydrate, 9 kcal/g for fat.
type MealNutrition struct {
	Calories     int
	ProteinGrams float64
	CarbGrams    float64
	FatGrams     float64
}

type MealDistribution struct {
	Breakfast MealNutrition
	Lunch     MealNutrition
	Dinner    MealNutrition
}

// CalculateMealDistribution splits the daily calorie target 30/40/30 over
// breakfast, lunch and dinner. Per-meal calories are truncated, which keeps
// the three shares within 2 kcal of the target in aggregate.
func CalculateMealDistribution(targetCalories int, r Ratios) MealDistribution {
	return MealDistribution{
		Breakfast: mealNutrition(int(float64(targetCalories)*0.30), r),
		Lunch:     mealNutrition(int(float64(targetCalories)*0.40), r),
		Dinner:    mealNutrition(int(float64(targetCalories)*0.30), r),
	}
}

func mealNutrition(calories int, r Ratios) MealNutrition {
	return MealNutrition{
		Calories:     calories,
		ProteinGrams: float64(calories) * r.Protein / caloriesPerGramProtein,
		CarbGrams:    float64(calories) * r.Carbs / caloriesPerGramCarbs,
		FatGrams:     float64(calories) * r.Fat / caloriesPerGramFat,
	}
}
