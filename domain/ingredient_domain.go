package domain

import (
	"errors"
	"mime/multipart"
)

var (
	MessageSuccessCreateIngredient = "ingredient created successfully"
	MessageSuccessGetIngredient    = "ingredient retrieved successfully"
	MessageSuccessSearchIngredient = "ingredients retrieved successfully"
	MessageSuccessImportIngredient = "ingredient imported successfully"
	MessageSuccessUploadImage      = "ingredient image uploaded successfully"

	MessageFailedCreateIngredient = "failed to create ingredient"
	MessageFailedGetIngredient    = "failed to retrieve ingredient"
	MessageFailedSearchIngredient = "failed to search ingredients"
	MessageFailedImportIngredient = "failed to import ingredient"
	MessageFailedUploadImage      = "failed to upload ingredient image"

	ErrIngredientNotFound     = errors.New("ingredient not found")
	ErrIngredientNameRequired = errors.New("ingredient name is required")
	ErrSpoonacularUnavailable = errors.New("spoonacular request failed")
)

type (
	CreateIngredientRequest struct {
		Name        string  `json:"name" validate:"required,max=100"`
		NameEn      string  `json:"name_en" validate:"omitempty,max=100"`
		Category    string  `json:"category" validate:"omitempty,max=50"`
		Description string  `json:"description" validate:"omitempty,max=500"`
		Calories    float64 `json:"calories" validate:"omitempty,gte=0"`
		Protein     float64 `json:"protein" validate:"omitempty,gte=0"`
		Carbs       float64 `json:"carbs" validate:"omitempty,gte=0"`
		Fat         float64 `json:"fat" validate:"omitempty,gte=0"`
		Fiber       float64 `json:"fiber" validate:"omitempty,gte=0"`
		Sugar       float64 `json:"sugar" validate:"omitempty,gte=0"`
		Sodium      float64 `json:"sodium" validate:"omitempty,gte=0"`
	}

	ImportIngredientRequest struct {
		SpoonacularID int `json:"spoonacular_id" validate:"required,min=1"`
	}

	UploadIngredientImageRequest struct {
		IngredientID string                `json:"ingredient_id" form:"ingredient_id" validate:"required,uuid"`
		Image        *multipart.FileHeader `json:"image" form:"image" validate:"required"`
	}

	IngredientResponse struct {
		ID            string  `json:"id"`
		Name          string  `json:"name"`
		NameEn        string  `json:"name_en,omitempty"`
		Category      string  `json:"category,omitempty"`
		Description   string  `json:"description,omitempty"`
		ImageURL      string  `json:"image_url,omitempty"`
		Calories      float64 `json:"calories"`
		Protein       float64 `json:"protein"`
		Carbs         float64 `json:"carbs"`
		Fat           float64 `json:"fat"`
		Fiber         float64 `json:"fiber"`
		Sugar         float64 `json:"sugar"`
		Sodium        float64 `json:"sodium"`
		SpoonacularID int     `json:"spoonacular_id,omitempty"`
	}
)
