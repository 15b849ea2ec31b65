package entities

import (
	"github.com/google/uuid"
)

// Ingredient is reference data describing a food stuff; nutrient values are
// per 100 g.
type Ingredient struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key;default:uuid_generate_v4()" json:"id"`
	Name        string    `json:"name"`
	NameEn      string    `json:"name_en,omitempty"`
	Category    string    `json:"category,omitempty"`
	Description string    `json:"description,omitempty" gorm:"type:text"`
	ImageURL    string    `json:"image_url,omitempty"`

	Calories float64 `json:"calories"`
	Protein  float64 `json:"protein"`
	Carbs    float64 `json:"carbs"`
	Fat      float64 `json:"fat"`
	Fiber    float64 `json:"fiber"`
	Sugar    float64 `json:"sugar"`
	Sodium   float64 `json:"sodium"`

	SpoonacularID int `json:"spoonacular_id,omitempty"`

	Timestamp
}
