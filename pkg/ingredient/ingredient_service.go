package ingredient

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/hibikero/nutributler/domain"
	"github.com/hibikero/nutributler/entities"
	"github.com/hibikero/nutributler/internal/utils/storage"
	"gorm.io/gorm"
)

type (
	IngredientService interface {
		CreateIngredient(ctx context.Context, req domain.CreateIngredientRequest) (domain.IngredientResponse, error)
		GetIngredientByID(ctx context.Context, id string) (domain.IngredientResponse, error)
		SearchIngredients(ctx context.Context, term string, limit int) ([]domain.IngredientResponse, error)
		GetIngredientsByCategory(ctx context.Context, category string) ([]domain.IngredientResponse, error)
		SearchSpoonacular(ctx context.Context, query string, number int) ([]domain.IngredientResponse, error)
		ImportFromSpoonacular(ctx context.Context, req domain.ImportIngredientRequest) (domain.IngredientResponse, error)
		UploadIngredientImage(ctx context.Context, req domain.UploadIngredientImageRequest) error
	}

	ingredientService struct {
		ingredientRepository IngredientRepository
		spoonacular          SpoonacularClient
		s3                   storage.AwsS3
	}
)

func NewIngredientService(ingredientRepository IngredientRepository, spoonacular SpoonacularClient, s3 storage.AwsS3) IngredientService {
	return &ingredientService{
		ingredientRepository: ingredientRepository,
		spoonacular:          spoonacular,
		s3:                   s3,
	}
}

func (s *ingredientService) CreateIngredient(ctx context.Context, req domain.CreateIngredientRequest) (domain.IngredientResponse, error) {
	ingredient := &entities.Ingredient{
		ID:          uuid.New(),
		Name:        req.Name,
		NameEn:      req.NameEn,
		Category:    req.Category,
		Description: req.Description,
		Calories:    req.Calories,
		Protein:     req.Protein,
		Carbs:       req.Carbs,
		Fat:         req.Fat,
		Fiber:       req.Fiber,
		Sugar:       req.Sugar,
		Sodium:      req.Sodium,
	}

	if err := s.ingredientRepository.CreateIngredient(ctx, ingredient); err != nil {
		return domain.IngredientResponse{}, err
	}

	return toIngredientResponse(ingredient), nil
}

func (s *ingredientService) GetIngredientByID(ctx context.Context, id string) (domain.IngredientResponse, error) {
	ingredient, err := s.ingredientRepository.GetIngredientByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.IngredientResponse{}, domain.ErrIngredientNotFound
		}
		return domain.IngredientResponse{}, err
	}
	return toIngredientResponse(ingredient), nil
}

func (s *ingredientService) SearchIngredients(ctx context.Context, term string, limit int) ([]domain.IngredientResponse, error) {
	ingredients, err := s.ingredientRepository.SearchIngredients(ctx, term, limit)
	if err != nil {
		return nil, err
	}
	return toIngredientResponses(ingredients), nil
}

func (s *ingredientService) GetIngredientsByCategory(ctx context.Context, category string) ([]domain.IngredientResponse, error) {
	ingredients, err := s.ingredientRepository.GetIngredientsByCategory(ctx, category)
	if err != nil {
		return nil, err
	}
	return toIngredientResponses(ingredients), nil
}

func (s *ingredientService) SearchSpoonacular(ctx context.Context, query string, number int) ([]domain.IngredientResponse, error) {
	results, err := s.spoonacular.SearchIngredients(ctx, query, number)
	if err != nil {
		return nil, domain.ErrSpoonacularUnavailable
	}

	responses := make([]domain.IngredientResponse, 0, len(results))
	for _, result := range results {
		responses = append(responses, domain.IngredientResponse{
			Name:          result.Name,
			NameEn:        result.Name,
			ImageURL:      result.ImageURL,
			SpoonacularID: result.ID,
		})
	}
	return responses, nil
}

func (s *ingredientService) ImportFromSpoonacular(ctx context.Context, req domain.ImportIngredientRequest) (domain.IngredientResponse, error) {
	// Re-importing an already known ingredient refreshes it in place instead
	// of creating a duplicate.
	existing, err := s.ingredientRepository.GetIngredientBySpoonacularID(ctx, req.SpoonacularID)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.IngredientResponse{}, err
	}

	detail, err := s.spoonacular.GetIngredientInformation(ctx, req.SpoonacularID)
	if err != nil {
		if errors.Is(err, domain.ErrIngredientNotFound) {
			return domain.IngredientResponse{}, domain.ErrIngredientNotFound
		}
		return domain.IngredientResponse{}, domain.ErrSpoonacularUnavailable
	}

	ingredient := detail.toEntity()
	if existing != nil {
		ingredient.ID = existing.ID
		ingredient.Name = existing.Name // keep the localized display name
		ingredient.Timestamp = existing.Timestamp
		if err := s.ingredientRepository.UpdateIngredient(ctx, ingredient); err != nil {
			return domain.IngredientResponse{}, err
		}
	} else {
		ingredient.ID = uuid.New()
		if err := s.ingredientRepository.CreateIngredient(ctx, ingredient); err != nil {
			return domain.IngredientResponse{}, err
		}
	}

	return toIngredientResponse(ingredient), nil
}

func (s *ingredientService) UploadIngredientImage(ctx context.Context, req domain.UploadIngredientImageRequest) error {
	ingredient, err := s.ingredientRepository.GetIngredientByID(ctx, req.IngredientID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrIngredientNotFound
		}
		return err
	}

	fileName := fmt.Sprintf("ingredient-%s", ingredient.ID.String())
	objectKey, err := s.s3.UploadFile(fileName, req.Image, "ingredients", storage.AllowImage...)
	if err != nil {
		return err
	}

	ingredient.ImageURL = s.s3.GetPublicLinkKey(objectKey)
	return s.ingredientRepository.UpdateIngredient(ctx, ingredient)
}

func toIngredientResponse(ingredient *entities.Ingredient) domain.IngredientResponse {
	return domain.IngredientResponse{
		ID:            ingredient.ID.String(),
		Name:          ingredient.Name,
		NameEn:        ingredient.NameEn,
		Category:      ingredient.Category,
		Description:   ingredient.Description,
		ImageURL:      ingredient.ImageURL,
		Calories:      ingredient.Calories,
		Protein:       ingredient.Protein,
		Carbs:         ingredient.Carbs,
		Fat:           ingredient.Fat,
		Fiber:         ingredient.Fiber,
		Sugar:         ingredient.Sugar,
		Sodium:        ingredient.Sodium,
		SpoonacularID: ingredient.SpoonacularID,
	}
}

func toIngredientResponses(ingredients []*entities.Ingredient) []domain.IngredientResponse {
	responses := make([]domain.IngredientResponse, 0, len(ingredients))
	for _, ingredient := range ingredients {
		responses = append(responses, toIngredientResponse(ingredient))
	}
	return responses
}
