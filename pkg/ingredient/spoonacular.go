package ingredient

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/hibikero/nutributler/domain"
	"github.com/hibikero/nutributler/entities"
	"github.com/hibikero/nutributler/internal/utils"
)

// SpoonacularClient looks up ingredient reference data from the Spoonacular
// food API. Only the fields the pantry needs are mapped; nutrients come back
// normalized to a 100 g serving.
type (
	SpoonacularClient interface {
		SearchIngredients(ctx context.Context, query string, number int) ([]SpoonacularIngredient, error)
		GetIngredientInformation(ctx context.Context, id int) (*SpoonacularIngredient, error)
	}

	SpoonacularIngredient struct {
		ID       int
		Name     string
		Category string
		ImageURL string
		Calories float64
		Protein  float64
		Carbs    float64
		Fat      float64
		Fiber    float64
		Sugar    float64
		Sodium   float64
	}

	spoonacularClient struct {
		httpClient *http.Client
		apiKey     string
		baseURL    string
	}
)

func NewSpoonacularClient() SpoonacularClient {
	return &spoonacularClient{
		httpClient: &http.Client{Timeout: 30 * time.Second},
		apiKey:     utils.GetConfig("SPOONACULAR_API_KEY"),
		baseURL:    utils.GetConfig("SPOONACULAR_BASE_URL"),
	}
}

func (c *spoonacularClient) SearchIngredients(ctx context.Context, query string, number int) ([]SpoonacularIngredient, error) {
	endpoint := fmt.Sprintf("%s/food/ingredients/search?apiKey=%s&query=%s&number=%d",
		c.baseURL, c.apiKey, url.QueryEscape(query), number)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("spoonacular search: unexpected status %s", resp.Status)
	}

	var searchResult struct {
		Results []struct {
			ID    int    `json:"id"`
			Name  string `json:"name"`
			Image string `json:"image"`
		} `json:"results"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&searchResult); err != nil {
		return nil, err
	}

	ingredients := make([]SpoonacularIngredient, 0, len(searchResult.Results))
	for _, result := range searchResult.Results {
		ingredients = append(ingredients, SpoonacularIngredient{
			ID:       result.ID,
			Name:     result.Name,
			ImageURL: spoonacularImageURL(result.Image),
		})
	}
	return ingredients, nil
}

func (c *spoonacularClient) GetIngredientInformation(ctx context.Context, id int) (*SpoonacularIngredient, error) {
	endpoint := fmt.Sprintf("%s/food/ingredients/%d/information?apiKey=%s&amount=100&unit=g",
		c.baseURL, id, c.apiKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, err
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return nil, domain.ErrIngredientNotFound
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("spoonacular information: unexpected status %s", resp.Status)
	}

	var detail struct {
		ID           int      `json:"id"`
		Name         string   `json:"name"`
		Image        string   `json:"image"`
		CategoryPath []string `json:"categoryPath"`
		Nutrition    struct {
			Nutrients []struct {
				Name   string  `json:"name"`
				Amount float64 `json:"amount"`
				Unit   string  `json:"unit"`
			} `json:"nutrients"`
		} `json:"nutrition"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&detail); err != nil {
		return nil, err
	}

	ingredient := &SpoonacularIngredient{
		ID:       detail.ID,
		Name:     detail.Name,
		ImageURL: spoonacularImageURL(detail.Image),
	}
	if len(detail.CategoryPath) > 0 {
		ingredient.Category = detail.CategoryPath[len(detail.CategoryPath)-1]
	}

	for _, nutrient := range detail.Nutrition.Nutrients {
		switch nutrient.Name {
		case "Calories":
			ingredient.Calories = nutrient.Amount
		case "Protein":
			ingredient.Protein = nutrient.Amount
		case "Carbohydrates":
			ingredient.Carbs = nutrient.Amount
		case "Fat":
			ingredient.Fat = nutrient.Amount
		case "Fiber":
			ingredient.Fiber = nutrient.Amount
		case "Sugar":
			ingredient.Sugar = nutrient.Amount
		case "Sodium":
			ingredient.Sodium = nutrient.Amount
		}
	}

	return ingredient, nil
}

func spoonacularImageURL(image string) string {
	if image == "" {
		return ""
	}
	return "https://spoonacular.com/cdn/ingredients_100x100/" + image
}

// toEntity converts an API result into the local reference record. The
// English name doubles as the display name until a localized one is set.
func (i *SpoonacularIngredient) toEntity() *entities.Ingredient {
	return &entities.Ingredient{
		Name:          i.Name,
		NameEn:        i.Name,
		Category:      i.Category,
		ImageURL:      i.ImageURL,
		Calories:      i.Calories,
		Protein:       i.Protein,
		Carbs:         i.Carbs,
		Fat:           i.Fat,
		Fiber:         i.Fiber,
		Sugar:         i.Sugar,
		Sodium:        i.Sodium,
		SpoonacularID: i.ID,
	}
}
