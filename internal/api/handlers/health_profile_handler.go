package handlers

import (
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/hibikero/nutributler/domain"
	"github.com/hibikero/nutributler/internal/api/presenters"
	"github.com/hibikero/nutributler/pkg/healthprofile"
)

type (
	HealthProfileHandler interface {
		CreateHealthProfile(c *fiber.Ctx) error
		UpdateHealthProfile(c *fiber.Ctx) error
		DeleteHealthProfile(c *fiber.Ctx) error
		GetActiveProfile(c *fiber.Ctx) error
		GetProfileHistory(c *fiber.Ctx) error
		GetTargetCalories(c *fiber.Ctx) error
		GetNutritionRatios(c *fiber.Ctx) error
		GetMealDistribution(c *fiber.Ctx) error
		GetNutritionStrategy(c *fiber.Ctx) error
	}

	healthProfileHandler struct {
		profileService healthprofile.HealthProfileService
		validator      *validator.Validate
	}
)

func NewHealthProfileHandler(profileService healthprofile.HealthProfileService, validator *validator.Validate) HealthProfileHandler {
	return &healthProfileHandler{
		profileService: profileService,
		validator:      validator,
	}
}

func (h *healthProfileHandler) CreateHealthProfile(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	req := new(domain.CreateHealthProfileRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedCreateProfile, err)
	}

	res, err := h.profileService.CreateHealthProfile(c.Context(), *req, userID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedCreateProfile, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusCreated, domain.MessageSuccessCreateProfile)
}

func (h *healthProfileHandler) UpdateHealthProfile(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	profileID := c.Params("id")
	req := new(domain.UpdateHealthProfileRequest)

	if err := c.BodyParser(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedBodyRequest, err)
	}

	if err := h.validator.Struct(req); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdateProfile, err)
	}

	res, err := h.profileService.UpdateHealthProfile(c.Context(), profileID, *req, userID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedUpdateProfile, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessUpdateProfile)
}

func (h *healthProfileHandler) DeleteHealthProfile(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)
	profileID := c.Params("id")

	if err := h.profileService.DeleteHealthProfile(c.Context(), profileID, userID); err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedDeleteProfile, err)
	}

	return presenters.SuccessResponse(c, nil, fiber.StatusOK, domain.MessageSuccessDeleteProfile)
}

func (h *healthProfileHandler) GetActiveProfile(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	res, err := h.profileService.GetActiveProfile(c.Context(), userID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetProfile, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetProfile)
}

func (h *healthProfileHandler) GetProfileHistory(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	res, err := h.profileService.GetProfileHistory(c.Context(), userID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedGetProfile, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessGetProfile)
}

func (h *healthProfileHandler) GetTargetCalories(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	calories, err := h.profileService.GetTargetCalories(c.Context(), userID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedTargetCalories, err)
	}

	return presenters.SuccessResponse(c, fiber.Map{"target_calories": calories}, fiber.StatusOK, domain.MessageSuccessTargetCalories)
}

func (h *healthProfileHandler) GetNutritionRatios(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	res, err := h.profileService.GetNutritionRatios(c.Context(), userID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedNutritionRatios, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessNutritionRatios)
}

func (h *healthProfileHandler) GetMealDistribution(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	res, err := h.profileService.GetMealDistribution(c.Context(), userID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedMealDistribution, err)
	}

	return presenters.SuccessResponse(c, res, fiber.StatusOK, domain.MessageSuccessMealDistribution)
}

func (h *healthProfileHandler) GetNutritionStrategy(c *fiber.Ctx) error {
	userID := c.Locals("user_id").(string)

	strategy, err := h.profileService.GetNutritionStrategy(c.Context(), userID)
	if err != nil {
		return presenters.ErrorResponse(c, fiber.StatusBadRequest, domain.MessageFailedStrategy, err)
	}

	return presenters.SuccessResponse(c, fiber.Map{"strategy": strategy}, fiber.StatusOK, domain.MessageSuccessStrategy)
}
