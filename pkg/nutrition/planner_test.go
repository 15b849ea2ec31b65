package nutrition

import (
	"testing"

	"github.com/hibikero/nutributler/domain"
	"github.com/stretchr/testify/assert"
)

func ptrFloat(v float64) *float64 { return &v }
func ptrInt(v int) *int           { return &v }

func completeProfile() BiometricProfile {
	return BiometricProfile{
		Gender:        domain.GenderMale,
		Weight:        ptrFloat(80),
		Height:        ptrFloat(180),
		Age:           ptrInt(30),
		ActivityLevel: ptrInt(3),
	}
}

func TestCalculateBMR(t *testing.T) {
	t.Run("male uses plus five constant", func(t *testing.T) {
		// 10*80 + 6.25*180 - 5*30 + 5
		assert.InDelta(t, 1780.0, CalculateBMR(completeProfile()), 1e-9)
	})

	t.Run("female uses minus one sixty one constant", func(t *testing.T) {
		p := completeProfile()
		p.Gender = domain.GenderFemale
		assert.InDelta(t, 1614.0, CalculateBMR(p), 1e-9)
	})

	t.Run("unknown gender treated like female", func(t *testing.T) {
		p := completeProfile()
		p.Gender = domain.GenderUnknown
		assert.InDelta(t, 1614.0, CalculateBMR(p), 1e-9)
	})

	t.Run("incomplete profile falls back", func(t *testing.T) {
		p := completeProfile()
		p.Weight = nil
		assert.Equal(t, float64(fallbackBMR), CalculateBMR(p))

		assert.Equal(t, float64(fallbackBMR), CalculateBMR(BiometricProfile{}))
	})

	t.Run("result floored at minimum", func(t *testing.T) {
		p := BiometricProfile{
			Gender: domain.GenderFemale,
			Weight: ptrFloat(30),
			Height: ptrFloat(100),
			Age:    ptrInt(80),
		}
		// raw formula gives 364, well below the floor
		assert.Equal(t, float64(minBMR), CalculateBMR(p))
	})
}

func TestActivityMultiplier(t *testing.T) {
	cases := []struct {
		level int
		want  float64
	}{
		{1, 1.20},
		{2, 1.375},
		{3, 1.55},
		{4, 1.725},
		{5, 1.90},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, ActivityMultiplier(&c.level))
	}

	assert.Equal(t, defaultActivityMultiplier, ActivityMultiplier(nil))

	outOfRange := 7
	assert.Equal(t, defaultActivityMultiplier, ActivityMultiplier(&outOfRange))
}

func TestCalculateTDEE(t *testing.T) {
	p := completeProfile()
	assert.InDelta(t, 1780.0*1.55, CalculateTDEE(p), 1e-9)

	p.ActivityLevel = nil
	assert.InDelta(t, 1780.0*1.375, CalculateTDEE(p), 1e-9)
}

func TestCalculateTargetCalories(t *testing.T) {
	p := completeProfile()

	// TDEE 2759, body composition factor 0.80
	assert.Equal(t, 2207, CalculateTargetCalories(p, domain.GoalBodyComposition))
	// immunity is the only goal adding calories
	assert.Equal(t, 2897, CalculateTargetCalories(p, domain.GoalImmunity))
	// energy, sleep and glycemic control leave TDEE unchanged
	assert.Equal(t, 2759, CalculateTargetCalories(p, domain.GoalEnergy))
	assert.Equal(t, 2759, CalculateTargetCalories(p, domain.HealthGoal("nonsense")))
}

func TestNutritionRatiosSumToOne(t *testing.T) {
	for _, goal := range domain.HealthGoals {
		r := NutritionRatios(goal)
		assert.InDelta(t, 1.0, r.Protein+r.Carbs+r.Fat, 1e-9, "goal %s", goal)
	}

	// unknown goal gets the body composition split
	assert.Equal(t, NutritionRatios(domain.GoalBodyComposition), NutritionRatios(domain.HealthGoal("nonsense")))
}

func TestCalculateMealDistribution(t *testing.T) {
	target := 2207
	r := NutritionRatios(domain.GoalBodyComposition)
	dist := CalculateMealDistribution(target, r)

	assert.Equal(t, 662, dist.Breakfast.Calories)
	assert.Equal(t, 882, dist.Lunch.Calories)
	assert.Equal(t, 662, dist.Dinner.Calories)

	// truncation loses at most 2 kcal in aggregate
	sum := dist.Breakfast.Calories + dist.Lunch.Calories + dist.Dinner.Calories
	assert.LessOrEqual(t, target-sum, 2)
	assert.GreaterOrEqual(t, target-sum, 0)

	// grams follow the 4/4/9 kcal-per-gram conversion
	assert.InDelta(t, 662*0.25/4.0, dist.Breakfast.ProteinGrams, 1e-9)
	assert.InDelta(t, 662*0.45/4.0, dist.Breakfast.CarbGrams, 1e-9)
	assert.InDelta(t, 662*0.30/9.0, dist.Breakfast.FatGrams, 1e-9)
}

func TestMealDistributionEndToEnd(t *testing.T) {
	// full pipeline: biometrics -> target calories -> meal split
	p := completeProfile()
	goal := domain.GoalBodyComposition

	target := CalculateTargetCalories(p, goal)
	dist := CalculateMealDistribution(target, NutritionRatios(goal))

	assert.Equal(t, 2207, target)
	assert.Equal(t, int(float64(target)*0.30), dist.Breakfast.Calories)
	assert.Equal(t, int(float64(target)*0.40), dist.Lunch.Calories)
	assert.Equal(t, dist.Breakfast.Calories, dist.Dinner.Calories)
}
