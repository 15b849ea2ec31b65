package nutrition

import (
	"encoding/json"
	"testing"

	"github.com/hibikero/nutributler/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateNutritionStrategy(t *testing.T) {
	for _, goal := range domain.HealthGoals {
		raw := GenerateNutritionStrategy(goal)

		var s Strategy
		require.NoError(t, json.Unmarshal([]byte(raw), &s), "goal %s", goal)

		assert.NotEmpty(t, s.FocusNutrients, "goal %s", goal)
		assert.NotEmpty(t, s.GreenFoods, "goal %s", goal)
		assert.NotEmpty(t, s.RedFoods, "goal %s", goal)
		assert.NotEmpty(t, s.MealFrequency, "goal %s", goal)
		assert.NotEmpty(t, s.Hydration, "goal %s", goal)
	}
}

func TestGenerateNutritionStrategyUnknownGoal(t *testing.T) {
	assert.Equal(t, "{}", GenerateNutritionStrategy(domain.HealthGoal("nonsense")))
	assert.Equal(t, "{}", GenerateNutritionStrategy(""))
}
