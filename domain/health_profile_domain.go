package domain

import (
	"errors"
)

// HealthGoal drives the calorie adjustment, macro ratios and nutrition
// strategy attached to a health profile.
type HealthGoal string

const (
	GoalBodyComposition HealthGoal = "body_composition"
	GoalEnergy          HealthGoal = "energy"
	GoalSleep           HealthGoal = "sleep"
	GoalImmunity        HealthGoal = "immunity"
	GoalGlycemicControl HealthGoal = "glycemic_control"
)

// HealthGoals lists every valid goal, in the order the original numeric codes
// used (1..5).
var HealthGoals = []HealthGoal{
	GoalBodyComposition,
	GoalEnergy,
	GoalSleep,
	GoalImmunity,
	GoalGlycemicControl,
}

func ParseHealthGoal(s string) (HealthGoal, error) {
	for _, g := range HealthGoals {
		if string(g) == s {
			return g, nil
		}
	}
	return "", ErrInvalidHealthGoal
}

var (
	MessageSuccessCreateProfile    = "health profile created successfully"
	MessageSuccessUpdateProfile    = "health profile updated successfully"
	MessageSuccessGetProfile       = "health profile retrieved successfully"
	MessageSuccessDeleteProfile    = "health profile deleted successfully"
	MessageSuccessTargetCalories   = "target calories calculated successfully"
	MessageSuccessNutritionRatios  = "nutrition ratios calculated successfully"
	MessageSuccessMealDistribution = "meal distribution calculated successfully"
	MessageSuccessStrategy         = "nutrition strategy generated successfully"

	MessageFailedCreateProfile    = "failed to create health profile"
	MessageFailedUpdateProfile    = "failed to update health profile"
	MessageFailedGetProfile       = "failed to retrieve health profile"
	MessageFailedDeleteProfile    = "failed to delete health profile"
	MessageFailedTargetCalories   = "failed to calculate target calories"
	MessageFailedNutritionRatios  = "failed to calculate nutrition ratios"
	MessageFailedMealDistribution = "failed to calculate meal distribution"
	MessageFailedStrategy         = "failed to generate nutrition strategy"

	ErrHealthProfileNotFound = errors.New("health profile not found")
	ErrActiveProfileExists   = errors.New("user already has an active health profile")
	ErrInvalidHealthGoal     = errors.New("invalid health goal")
)

type (
	CreateHealthProfileRequest struct {
		HealthGoal         string `json:"health_goal" validate:"required,oneof=body_composition energy sleep immunity glycemic_control"`
		GoalDescription    string `json:"goal_description" validate:"omitempty,max=500"`
		Allergies          string `json:"allergies" validate:"omitempty"`
		DietaryPreferences string `json:"dietary_preferences" validate:"omitempty"`
		AvoidFoods         string `json:"avoid_foods" validate:"omitempty"`
		SpecialNeeds       string `json:"special_needs" validate:"omitempty"`
	}

	UpdateHealthProfileRequest struct {
		HealthGoal         string `json:"health_goal" validate:"omitempty,oneof=body_composition energy sleep immunity glycemic_control"`
		GoalDescription    string `json:"goal_description" validate:"omitempty,max=500"`
		Allergies          string `json:"allergies" validate:"omitempty"`
		DietaryPreferences string `json:"dietary_preferences" validate:"omitempty"`
		AvoidFoods         string `json:"avoid_foods" validate:"omitempty"`
		SpecialNeeds       string `json:"special_needs" validate:"omitempty"`
	}

	HealthProfileResponse struct {
		ID                 string  `json:"id"`
		UserID             string  `json:"user_id"`
		HealthGoal         string  `json:"health_goal"`
		GoalDescription    string  `json:"goal_description,omitempty"`
		TargetCalories     int     `json:"target_calories"`
		TargetProteinRatio float64 `json:"target_protein_ratio"`
		TargetCarbRatio    float64 `json:"target_carb_ratio"`
		TargetFatRatio     float64 `json:"target_fat_ratio"`
		Allergies          string  `json:"allergies,omitempty"`
		DietaryPreferences string  `json:"dietary_preferences,omitempty"`
		AvoidFoods         string  `json:"avoid_foods,omitempty"`
		SpecialNeeds       string  `json:"special_needs,omitempty"`
		NutritionStrategy  string  `json:"nutrition_strategy,omitempty"`
		IsActive           bool    `json:"is_active"`
	}

	MealNutritionResponse struct {
		Calories     int     `json:"calories"`
		ProteinGrams float64 `json:"protein_grams"`
		CarbGrams    float64 `json:"carb_grams"`
		FatGrams     float64 `json:"fat_grams"`
	}

	MealDistributionResponse struct {
		Breakfast MealNutritionResponse `json:"breakfast"`
		Lunch     MealNutritionResponse `json:"lunch"`
		Dinner    MealNutritionResponse `json:"dinner"`
	}

	NutritionRatiosResponse struct {
		Protein float64 `json:"protein"`
		Carbs   float64 `json:"carbohydrates"`
		Fat     float64 `json:"fat"`
	}
)
