package entities

import (
	"github.com/google/uuid"
)

type HealthProfile struct {
	ID              uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	UserID          uuid.UUID `json:"user_id"`
	HealthGoal      string    `json:"health_goal"` // "body_composition", "energy", "sleep", "immunity", "glycemic_control"
	GoalDescription string    `json:"goal_description,omitempty"`

	// Derived targets, recomputed on every create/update. Ratios are fractions
	// of daily calories and sum to 1.0.
	TargetCalories     int     `json:"target_calories"`
	TargetProteinRatio float64 `json:"target_protein_ratio"`
	TargetCarbRatio    float64 `json:"target_carb_ratio"`
	TargetFatRatio     float64 `json:"target_fat_ratio"`

	Allergies          string `json:"allergies,omitempty" gorm:"type:text"`
	DietaryPreferences string `json:"dietary_preferences,omitempty" gorm:"type:text"`
	AvoidFoods         string `json:"avoid_foods,omitempty" gorm:"type:text"`
	SpecialNeeds       string `json:"special_needs,omitempty" gorm:"type:text"`
	NutritionStrategy  string `json:"nutrition_strategy,omitempty" gorm:"type:text"`

	IsActive bool `json:"is_active"`
	Deleted  bool `json:"-"`

	User *User `gorm:"foreignKey:UserID"`
	Timestamp
}
