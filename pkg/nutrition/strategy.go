package nutrition

import (
	"encoding/json"

	"github.com/hibikero/nutributler/domain"
)

// Strategy is qualitative per-goal guidance attached to a health profile. The
// content is illustrative only and not separately validated.
type Strategy struct {
	FocusNutrients []string `json:"focusNutrients"`
	GreenFoods     []string `json:"greenFoods"`
	YellowFoods    []string `json:"yellowFoods"`
	RedFoods       []string `json:"redFoods"`
	MealFrequency  string   `json:"mealFrequency"`
	Hydration      string   `json:"hydration"`
}

var goalStrategies = map[domain.HealthGoal]Strategy{
	domain.GoalBodyComposition: {
		FocusNutrients: []string{"protein", "fiber", "vitamin B"},
		GreenFoods:     []string{"chicken breast", "fish", "vegetables", "whole grains"},
		YellowFoods:    []string{"nuts", "fruit", "dairy"},
		RedFoods:       []string{"fried food", "sugary drinks", "processed food"},
		MealFrequency:  "three meals a day with light snacks",
		Hydration:      "2-3 liters of water daily",
	},
	domain.GoalEnergy: {
		FocusNutrients: []string{"iron", "vitamin B12", "folate", "vitamin C"},
		GreenFoods:     []string{"lean meat", "legumes", "leafy greens", "nuts"},
		YellowFoods:    []string{"whole grains", "fruit", "dairy"},
		RedFoods:       []string{"refined sugar", "excess caffeine", "alcohol"},
		MealFrequency:  "smaller frequent meals to keep blood sugar steady",
		Hydration:      "2-3 liters of water daily, moderate caffeine",
	},
	domain.GoalSleep: {
		FocusNutrients: []string{"magnesium", "tryptophan", "vitamin B6", "calcium"},
		GreenFoods:     []string{"bananas", "oats", "almonds", "milk"},
		YellowFoods:    []string{"whole grains", "nuts", "fish"},
		RedFoods:       []string{"caffeine", "alcohol", "sugary food"},
		MealFrequency:  "light dinner, no food within 2 hours of bedtime",
		Hydration:      "reduce fluids after the afternoon",
	},
	domain.GoalImmunity: {
		FocusNutrients: []string{"vitamin C", "vitamin D", "zinc", "selenium"},
		GreenFoods:     []string{"citrus fruit", "berries", "leafy greens", "nuts"},
		YellowFoods:    []string{"fish", "whole grains", "dairy"},
		RedFoods:       []string{"processed food", "sugary food", "alcohol"},
		MealFrequency:  "balanced three meals with varied foods",
		Hydration:      "2-3 liters of water daily, some green tea",
	},
	domain.GoalGlycemicControl: {
		FocusNutrients: []string{"fiber", "protein", "healthy fats", "chromium"},
		GreenFoods:     []string{"leafy greens", "legumes", "whole grains", "nuts"},
		YellowFoods:    []string{"fish", "lean meat", "low-sugar fruit"},
		RedFoods:       []string{"refined sugar", "white rice and flour", "sugary drinks"},
		MealFrequency:  "regular portioned meals, smaller and more frequent",
		Hydration:      "2-3 liters of water daily, no sugary drinks",
	},
}

// GenerateNutritionStrategy serializes the static strategy record for a goal.
// Profile creation must never block on strategy text, so any failure (unknown
// goal, encode error) yields the empty-object representation.
func GenerateNutritionStrategy(goal domain.HealthGoal) string {
	strategy, ok := goalStrategies[goal]
	if !ok {
		return "{}"
	}

	data, err := json.Marshal(strategy)
	if err != nil {
		return "{}"
	}
	return string(data)
}
