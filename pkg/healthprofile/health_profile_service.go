package healthprofile

import (
	"context"
	"errors"

	"github.com/hibikero/nutributler/domain"
	"github.com/hibikero/nutributler/entities"
	"github.com/hibikero/nutributler/pkg/nutrition"
	"github.com/hibikero/nutributler/pkg/user"
	"gorm.io/gorm"
)

type (
	HealthProfileService interface {
		CreateHealthProfile(ctx context.Context, req domain.CreateHealthProfileRequest, userID string) (domain.HealthProfileResponse, error)
		UpdateHealthProfile(ctx context.Context, id string, req domain.UpdateHealthProfileRequest, userID string) (domain.HealthProfileResponse, error)
		DeleteHealthProfile(ctx context.Context, id string, userID string) error
		GetActiveProfile(ctx context.Context, userID string) (domain.HealthProfileResponse, error)
		GetProfileHistory(ctx context.Context, userID string) ([]domain.HealthProfileResponse, error)
		GetTargetCalories(ctx context.Context, userID string) (int, error)
		GetNutritionRatios(ctx context.Context, userID string) (domain.NutritionRatiosResponse, error)
		GetMealDistribution(ctx context.Context, userID string) (domain.MealDistributionResponse, error)
		GetNutritionStrategy(ctx context.Context, userID string) (string, error)
	}

	healthProfileService struct {
		profileRepository HealthProfileRepository
		userRepository    user.UserRepository
	}
)

func NewHealthProfileService(profileRepository HealthProfileRepository, userRepository user.UserRepository) HealthProfileService {
	return &healthProfileService{
		profileRepository: profileRepository,
		userRepository:    userRepository,
	}
}

func (s *healthProfileService) CreateHealthProfile(ctx context.Context, req domain.CreateHealthProfileRequest, userID string) (domain.HealthProfileResponse, error) {
	u, err := s.loadUser(ctx, userID)
	if err != nil {
		return domain.HealthProfileResponse{}, err
	}

	goal, err := domain.ParseHealthGoal(req.HealthGoal)
	if err != nil {
		return domain.HealthProfileResponse{}, err
	}

	// One active profile per user; a new goal requires retiring the old
	// profile first.
	if _, err := s.profileRepository.GetActiveProfileByUserID(ctx, userID); err == nil {
		return domain.HealthProfileResponse{}, domain.ErrActiveProfileExists
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.HealthProfileResponse{}, err
	}

	profile := &entities.HealthProfile{
		UserID:             u.ID,
		HealthGoal:         string(goal),
		GoalDescription:    req.GoalDescription,
		Allergies:          req.Allergies,
		DietaryPreferences: req.DietaryPreferences,
		AvoidFoods:         req.AvoidFoods,
		SpecialNeeds:       req.SpecialNeeds,
		IsActive:           true,
	}
	s.recomputeTargets(profile, u)

	if err := s.profileRepository.CreateHealthProfile(ctx, profile); err != nil {
		return domain.HealthProfileResponse{}, err
	}

	return toProfileResponse(profile), nil
}

func (s *healthProfileService) UpdateHealthProfile(ctx context.Context, id string, req domain.UpdateHealthProfileRequest, userID string) (domain.HealthProfileResponse, error) {
	profile, err := s.loadOwnedProfile(ctx, id, userID)
	if err != nil {
		return domain.HealthProfileResponse{}, err
	}

	u, err := s.loadUser(ctx, userID)
	if err != nil {
		return domain.HealthProfileResponse{}, err
	}

	if req.HealthGoal != "" {
		goal, err := domain.ParseHealthGoal(req.HealthGoal)
		if err != nil {
			return domain.HealthProfileResponse{}, err
		}
		profile.HealthGoal = string(goal)
	}
	if req.GoalDescription != "" {
		profile.GoalDescription = req.GoalDescription
	}
	if req.Allergies != "" {
		profile.Allergies = req.Allergies
	}
	if req.DietaryPreferences != "" {
		profile.DietaryPreferences = req.DietaryPreferences
	}
	if req.AvoidFoods != "" {
		profile.AvoidFoods = req.AvoidFoods
	}
	if req.SpecialNeeds != "" {
		profile.SpecialNeeds = req.SpecialNeeds
	}

	// Targets always reflect the current goal and biometrics.
	s.recomputeTargets(profile, u)

	if err := s.profileRepository.UpdateHealthProfile(ctx, profile); err != nil {
		return domain.HealthProfileResponse{}, err
	}

	return toProfileResponse(profile), nil
}

func (s *healthProfileService) DeleteHealthProfile(ctx context.Context, id string, userID string) error {
	profile, err := s.loadOwnedProfile(ctx, id, userID)
	if err != nil {
		return err
	}

	profile.Deleted = true
	profile.IsActive = false
	return s.profileRepository.UpdateHealthProfile(ctx, profile)
}

func (s *healthProfileService) GetActiveProfile(ctx context.Context, userID string) (domain.HealthProfileResponse, error) {
	profile, err := s.loadActiveProfile(ctx, userID)
	if err != nil {
		return domain.HealthProfileResponse{}, err
	}
	return toProfileResponse(profile), nil
}

func (s *healthProfileService) GetProfileHistory(ctx context.Context, userID string) ([]domain.HealthProfileResponse, error) {
	profiles, err := s.profileRepository.GetProfilesByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	responses := make([]domain.HealthProfileResponse, 0, len(profiles))
	for _, profile := range profiles {
		responses = append(responses, toProfileResponse(profile))
	}
	return responses, nil
}

func (s *healthProfileService) GetTargetCalories(ctx context.Context, userID string) (int, error) {
	u, profile, err := s.loadUserAndActiveProfile(ctx, userID)
	if err != nil {
		return 0, err
	}
	return nutrition.CalculateTargetCalories(biometrics(u), domain.HealthGoal(profile.HealthGoal)), nil
}

func (s *healthProfileService) GetNutritionRatios(ctx context.Context, userID string) (domain.NutritionRatiosResponse, error) {
	profile, err := s.loadActiveProfile(ctx, userID)
	if err != nil {
		return domain.NutritionRatiosResponse{}, err
	}

	r := nutrition.NutritionRatios(domain.HealthGoal(profile.HealthGoal))
	return domain.NutritionRatiosResponse{
		Protein: r.Protein,
		Carbs:   r.Carbs,
		Fat:     r.Fat,
	}, nil
}

func (s *healthProfileService) GetMealDistribution(ctx context.Context, userID string) (domain.MealDistributionResponse, error) {
	u, profile, err := s.loadUserAndActiveProfile(ctx, userID)
	if err != nil {
		return domain.MealDistributionResponse{}, err
	}

	goal := domain.HealthGoal(profile.HealthGoal)
	target := nutrition.CalculateTargetCalories(biometrics(u), goal)
	dist := nutrition.CalculateMealDistribution(target, nutrition.NutritionRatios(goal))

	return domain.MealDistributionResponse{
		Breakfast: toMealResponse(dist.Breakfast),
		Lunch:     toMealResponse(dist.Lunch),
		Dinner:    toMealResponse(dist.Dinner),
	}, nil
}

func (s *healthProfileService) GetNutritionStrategy(ctx context.Context, userID string) (string, error) {
	profile, err := s.loadActiveProfile(ctx, userID)
	if err != nil {
		return "", err
	}
	return nutrition.GenerateNutritionStrategy(domain.HealthGoal(profile.HealthGoal)), nil
}

func (s *healthProfileService) recomputeTargets(profile *entities.HealthProfile, u *entities.User) {
	goal := domain.HealthGoal(profile.HealthGoal)
	bio := biometrics(u)

	profile.TargetCalories = nutrition.CalculateTargetCalories(bio, goal)
	r := nutrition.NutritionRatios(goal)
	profile.TargetProteinRatio = r.Protein
	profile.TargetCarbRatio = r.Carbs
	profile.TargetFatRatio = r.Fat
	profile.NutritionStrategy = nutrition.GenerateNutritionStrategy(goal)
}

func (s *healthProfileService) loadUser(ctx context.Context, userID string) (*entities.User, error) {
	u, err := s.userRepository.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}
	return u, nil
}

func (s *healthProfileService) loadActiveProfile(ctx context.Context, userID string) (*entities.HealthProfile, error) {
	profile, err := s.profileRepository.GetActiveProfileByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrHealthProfileNotFound
		}
		return nil, err
	}
	return profile, nil
}

func (s *healthProfileService) loadUserAndActiveProfile(ctx context.Context, userID string) (*entities.User, *entities.HealthProfile, error) {
	u, err := s.loadUser(ctx, userID)
	if err != nil {
		return nil, nil, err
	}
	profile, err := s.loadActiveProfile(ctx, userID)
	if err != nil {
		return nil, nil, err
	}
	return u, profile, nil
}

func (s *healthProfileService) loadOwnedProfile(ctx context.Context, id string, userID string) (*entities.HealthProfile, error) {
	profile, err := s.profileRepository.GetHealthProfileByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrHealthProfileNotFound
		}
		return nil, err
	}

	if profile.UserID.String() != userID {
		return nil, domain.ErrUserNotAllowed
	}

	return profile, nil
}

func biometrics(u *entities.User) nutrition.BiometricProfile {
	return nutrition.BiometricProfile{
		Gender:        u.Gender,
		Weight:        u.Weight,
		Height:        u.Height,
		Age:           u.Age,
		ActivityLevel: u.ActivityLevel,
	}
}

func toMealResponse(m nutrition.MealNutrition) domain.MealNutritionResponse {
	return domain.MealNutritionResponse{
		Calories:     m.Calories,
		ProteinGrams: m.ProteinGrams,
		CarbGrams:    m.CarbGrams,
		FatGrams:     m.FatGrams,
	}
}

func toProfileResponse(profile *entities.HealthProfile) domain.HealthProfileResponse {
	return domain.HealthProfileResponse{
		ID:                 profile.ID.String(),
		UserID:             profile.UserID.String(),
		HealthGoal:         profile.HealthGoal,
		GoalDescription:    profile.GoalDescription,
		TargetCalories:     profile.TargetCalories,
		TargetProteinRatio: profile.TargetProteinRatio,
		TargetCarbRatio:    profile.TargetCarbRatio,
		TargetFatRatio:     profile.TargetFatRatio,
		Allergies:          profile.Allergies,
		DietaryPreferences: profile.DietaryPreferences,
		AvoidFoods:         profile.AvoidFoods,
		SpecialNeeds:       profile.SpecialNeeds,
		NutritionStrategy:  profile.NutritionStrategy,
		IsActive:           profile.IsActive,
	}
}
