package healthprofile

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/hibikero/nutributler/domain"
	"github.com/hibikero/nutributler/entities"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type fakeProfileRepository struct {
	profiles map[string]*entities.HealthProfile
}

func newFakeProfileRepository() *fakeProfileRepository {
	return &fakeProfileRepository{profiles: make(map[string]*entities.HealthProfile)}
}

func (r *fakeProfileRepository) CreateHealthProfile(_ context.Context, profile *entities.HealthProfile) error {
	if profile.ID == uuid.Nil {
		profile.ID = uuid.New()
	}
	r.profiles[profile.ID.String()] = profile
	return nil
}

func (r *fakeProfileRepository) GetHealthProfileByID(_ context.Context, id string) (*entities.HealthProfile, error) {
	profile, ok := r.profiles[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return profile, nil
}

func (r *fakeProfileRepository) GetActiveProfileByUserID(_ context.Context, userID string) (*entities.HealthProfile, error) {
	for _, profile := range r.profiles {
		if profile.UserID.String() == userID && profile.IsActive && !profile.Deleted {
			return profile, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeProfileRepository) GetProfilesByUserID(_ context.Context, userID string) ([]*entities.HealthProfile, error) {
	var out []*entities.HealthProfile
	for _, profile := range r.profiles {
		if profile.UserID.String() == userID && !profile.Deleted {
			out = append(out, profile)
		}
	}
	return out, nil
}

func (r *fakeProfileRepository) UpdateHealthProfile(_ context.Context, profile *entities.HealthProfile) error {
	r.profiles[profile.ID.String()] = profile
	return nil
}

type fakeUserRepository struct {
	users map[string]*entities.User
}

func newFakeUserRepository() *fakeUserRepository {
	return &fakeUserRepository{users: make(map[string]*entities.User)}
}

func (r *fakeUserRepository) CreateUser(_ context.Context, u *entities.User) error {
	r.users[u.ID.String()] = u
	return nil
}

func (r *fakeUserRepository) GetUserByID(_ context.Context, id string) (*entities.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return u, nil
}

func (r *fakeUserRepository) GetUserByUsername(_ context.Context, username string) (*entities.User, error) {
	for _, u := range r.users {
		if u.Username == username {
			return u, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeUserRepository) UpdateUser(_ context.Context, u *entities.User) error {
	r.users[u.ID.String()] = u
	return nil
}

func (r *fakeUserRepository) CheckUsernameExist(_ context.Context, username string) bool {
	_, err := r.GetUserByUsername(context.Background(), username)
	return err == nil
}

func (r *fakeUserRepository) GetAllUsers(_ context.Context) ([]*entities.User, error) {
	var out []*entities.User
	for _, u := range r.users {
		out = append(out, u)
	}
	return out, nil
}

func newTestProfileService(t *testing.T) (HealthProfileService, *fakeProfileRepository, *entities.User) {
	t.Helper()

	profileRepo := newFakeProfileRepository()
	userRepo := newFakeUserRepository()

	weight, height, age, level := 80.0, 180.0, 30, 3
	u := &entities.User{
		ID:            uuid.New(),
		Username:      "ling",
		Gender:        domain.GenderMale,
		Weight:        &weight,
		Height:        &height,
		Age:           &age,
		ActivityLevel: &level,
	}
	require.NoError(t, userRepo.CreateUser(context.Background(), u))

	return NewHealthProfileService(profileRepo, userRepo), profileRepo, u
}

func TestCreateHealthProfileComputesTargets(t *testing.T) {
	svc, _, u := newTestProfileService(t)

	res, err := svc.CreateHealthProfile(context.Background(), domain.CreateHealthProfileRequest{
		HealthGoal: string(domain.GoalBodyComposition),
	}, u.ID.String())
	require.NoError(t, err)

	// BMR 1780, TDEE 2759, body composition factor 0.80
	assert.Equal(t, 2207, res.TargetCalories)
	assert.InDelta(t, 0.25, res.TargetProteinRatio, 1e-9)
	assert.InDelta(t, 0.45, res.TargetCarbRatio, 1e-9)
	assert.InDelta(t, 0.30, res.TargetFatRatio, 1e-9)
	assert.True(t, res.IsActive)
	assert.NotEqual(t, "{}", res.NutritionStrategy)
}

func TestCreateHealthProfileRejectsSecondActive(t *testing.T) {
	svc, _, u := newTestProfileService(t)

	_, err := svc.CreateHealthProfile(context.Background(), domain.CreateHealthProfileRequest{
		HealthGoal: string(domain.GoalEnergy),
	}, u.ID.String())
	require.NoError(t, err)

	_, err = svc.CreateHealthProfile(context.Background(), domain.CreateHealthProfileRequest{
		HealthGoal: string(domain.GoalSleep),
	}, u.ID.String())
	assert.ErrorIs(t, err, domain.ErrActiveProfileExists)
}

func TestCreateHealthProfileUnknownUserOrGoal(t *testing.T) {
	svc, _, u := newTestProfileService(t)

	_, err := svc.CreateHealthProfile(context.Background(), domain.CreateHealthProfileRequest{
		HealthGoal: string(domain.GoalEnergy),
	}, uuid.NewString())
	assert.ErrorIs(t, err, domain.ErrUserNotFound)

	_, err = svc.CreateHealthProfile(context.Background(), domain.CreateHealthProfileRequest{
		HealthGoal: "run a marathon",
	}, u.ID.String())
	assert.ErrorIs(t, err, domain.ErrInvalidHealthGoal)
}

func TestUpdateHealthProfileRecomputesTargets(t *testing.T) {
	svc, _, u := newTestProfileService(t)

	created, err := svc.CreateHealthProfile(context.Background(), domain.CreateHealthProfileRequest{
		HealthGoal: string(domain.GoalBodyComposition),
	}, u.ID.String())
	require.NoError(t, err)

	updated, err := svc.UpdateHealthProfile(context.Background(), created.ID, domain.UpdateHealthProfileRequest{
		HealthGoal: string(domain.GoalImmunity),
	}, u.ID.String())
	require.NoError(t, err)

	// immunity: TDEE 2759 * 1.05
	assert.Equal(t, 2897, updated.TargetCalories)
	assert.InDelta(t, 0.25, updated.TargetProteinRatio, 1e-9)
	assert.NotEqual(t, created.NutritionStrategy, updated.NutritionStrategy)
}

func TestDeleteHealthProfileAllowsNewActive(t *testing.T) {
	svc, repo, u := newTestProfileService(t)

	created, err := svc.CreateHealthProfile(context.Background(), domain.CreateHealthProfileRequest{
		HealthGoal: string(domain.GoalEnergy),
	}, u.ID.String())
	require.NoError(t, err)

	require.NoError(t, svc.DeleteHealthProfile(context.Background(), created.ID, u.ID.String()))
	assert.True(t, repo.profiles[created.ID].Deleted)

	// retiring the old profile unblocks a new one
	_, err = svc.CreateHealthProfile(context.Background(), domain.CreateHealthProfileRequest{
		HealthGoal: string(domain.GoalSleep),
	}, u.ID.String())
	assert.NoError(t, err)
}

func TestHealthProfileOwnership(t *testing.T) {
	svc, _, u := newTestProfileService(t)

	created, err := svc.CreateHealthProfile(context.Background(), domain.CreateHealthProfileRequest{
		HealthGoal: string(domain.GoalEnergy),
	}, u.ID.String())
	require.NoError(t, err)

	err = svc.DeleteHealthProfile(context.Background(), created.ID, uuid.NewString())
	assert.ErrorIs(t, err, domain.ErrUserNotAllowed)
}

func TestCalculationEndpoints(t *testing.T) {
	svc, _, u := newTestProfileService(t)

	// without an active profile every calculation is a not-found
	_, err := svc.GetTargetCalories(context.Background(), u.ID.String())
	assert.ErrorIs(t, err, domain.ErrHealthProfileNotFound)

	_, err = svc.CreateHealthProfile(context.Background(), domain.CreateHealthProfileRequest{
		HealthGoal: string(domain.GoalGlycemicControl),
	}, u.ID.String())
	require.NoError(t, err)

	calories, err := svc.GetTargetCalories(context.Background(), u.ID.String())
	require.NoError(t, err)
	assert.Equal(t, 2759, calories) // glycemic control keeps TDEE

	ratios, err := svc.GetNutritionRatios(context.Background(), u.ID.String())
	require.NoError(t, err)
	assert.InDelta(t, 0.30, ratios.Protein, 1e-9)
	assert.InDelta(t, 0.40, ratios.Carbs, 1e-9)
	assert.InDelta(t, 0.30, ratios.Fat, 1e-9)

	dist, err := svc.GetMealDistribution(context.Background(), u.ID.String())
	require.NoError(t, err)
	assert.Equal(t, int(float64(calories)*0.30), dist.Breakfast.Calories)
	assert.Equal(t, int(float64(calories)*0.40), dist.Lunch.Calories)

	strategy, err := svc.GetNutritionStrategy(context.Background(), u.ID.String())
	require.NoError(t, err)
	assert.Contains(t, strategy, "fiber")
}
