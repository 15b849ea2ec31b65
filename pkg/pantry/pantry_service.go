package pantry

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/hibikero/nutributler/domain"
	"github.com/hibikero/nutributler/entities"
	"github.com/hibikero/nutributler/pkg/ingredient"
	"gorm.io/gorm"
)

const dateLayout = "2006-01-02"

type (
	PantryService interface {
		AddIngredientToPantry(ctx context.Context, req domain.AddPantryItemRequest, userID string) (domain.PantryItemResponse, error)
		UpdatePantryItem(ctx context.Context, id string, req domain.UpdatePantryItemRequest, userID string) (domain.PantryItemResponse, error)
		MarkAsConsumed(ctx context.Context, id string, req domain.ConsumePantryItemRequest, userID string) (domain.PantryItemResponse, error)
		DeletePantryItem(ctx context.Context, id string, userID string) error
		GetPantryItemByID(ctx context.Context, id string, userID string) (domain.PantryItemResponse, error)
		GetUserPantry(ctx context.Context, userID string) ([]domain.PantryItemResponse, error)
		GetActivePantry(ctx context.Context, userID string) ([]domain.PantryItemResponse, error)
		GetExpiringIngredients(ctx context.Context, userID string, days int) ([]domain.PantryItemResponse, error)
		GetExpiredIngredients(ctx context.Context, userID string) ([]domain.PantryItemResponse, error)
		GetPantryByStorageLocation(ctx context.Context, userID string, location string) ([]domain.PantryItemResponse, error)
		SearchPantryItems(ctx context.Context, userID string, term string) ([]domain.PantryItemResponse, error)
		GetPantryStats(ctx context.Context, userID string) (domain.PantryStatsResponse, error)
	}

	pantryService struct {
		pantryRepository     PantryRepository
		ingredientRepository ingredient.IngredientRepository
		now                  func() time.Time
	}
)

func NewPantryService(pantryRepository PantryRepository, ingredientRepository ingredient.IngredientRepository) PantryService {
	return &pantryService{
		pantryRepository:     pantryRepository,
		ingredientRepository: ingredientRepository,
		now:                  time.Now,
	}
}

func (s *pantryService) AddIngredientToPantry(ctx context.Context, req domain.AddPantryItemRequest, userID string) (domain.PantryItemResponse, error) {
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return domain.PantryItemResponse{}, domain.ErrParseUUID
	}

	ing, err := s.ingredientRepository.GetIngredientByID(ctx, req.IngredientID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.PantryItemResponse{}, domain.ErrIngredientNotFound
		}
		return domain.PantryItemResponse{}, err
	}

	purchaseDate, err := time.Parse(dateLayout, req.PurchaseDate)
	if err != nil {
		return domain.PantryItemResponse{}, domain.ErrInvalidPurchaseDate
	}

	rule := ResolveExpiryRule(ing.Name)
	expiryDate := purchaseDate.AddDate(0, 0, rule.ShelfLifeDays)

	storageLocation := req.StorageLocation
	if storageLocation == "" {
		storageLocation = string(rule.Storage)
	}

	item := &entities.PantryItem{
		ID:              uuid.New(),
		UserID:          userUUID,
		IngredientID:    ing.ID,
		IngredientName:  ing.Name,
		Quantity:        req.Quantity,
		Unit:            req.Unit,
		PurchaseDate:    purchaseDate,
		ExpiryDate:      &expiryDate,
		StorageLocation: storageLocation,
		Notes:           req.Notes,
	}

	if err := s.pantryRepository.CreatePantryItem(ctx, item); err != nil {
		return domain.PantryItemResponse{}, err
	}

	return s.toResponse(item), nil
}

func (s *pantryService) UpdatePantryItem(ctx context.Context, id string, req domain.UpdatePantryItemRequest, userID string) (domain.PantryItemResponse, error) {
	item, err := s.loadOwnedItem(ctx, id, userID)
	if err != nil {
		return domain.PantryItemResponse{}, err
	}

	purchaseDate, err := time.Parse(dateLayout, req.PurchaseDate)
	if err != nil {
		return domain.PantryItemResponse{}, domain.ErrInvalidPurchaseDate
	}

	item.Quantity = req.Quantity
	item.Unit = req.Unit
	item.PurchaseDate = purchaseDate
	item.StorageLocation = req.StorageLocation
	item.Notes = req.Notes

	// A caller-supplied expiry date is authoritative; editing never re-derives
	// it from the rule table.
	if req.ExpiryDate != "" {
		expiryDate, err := time.Parse(dateLayout, req.ExpiryDate)
		if err != nil {
			return domain.PantryItemResponse{}, domain.ErrInvalidExpiryDate
		}
		item.ExpiryDate = &expiryDate
	}

	if err := s.pantryRepository.UpdatePantryItem(ctx, item); err != nil {
		return domain.PantryItemResponse{}, err
	}

	return s.toResponse(item), nil
}

func (s *pantryService) MarkAsConsumed(ctx context.Context, id string, req domain.ConsumePantryItemRequest, userID string) (domain.PantryItemResponse, error) {
	item, err := s.loadOwnedItem(ctx, id, userID)
	if err != nil {
		return domain.PantryItemResponse{}, err
	}

	consumedDate := truncateToDay(s.now())
	if req.ConsumedDate != "" {
		consumedDate, err = time.Parse(dateLayout, req.ConsumedDate)
		if err != nil {
			return domain.PantryItemResponse{}, domain.ErrInvalidConsumedDate
		}
	}

	item.IsConsumed = true
	item.ConsumedDate = &consumedDate

	if err := s.pantryRepository.UpdatePantryItem(ctx, item); err != nil {
		return domain.PantryItemResponse{}, err
	}

	return s.toResponse(item), nil
}

func (s *pantryService) DeletePantryItem(ctx context.Context, id string, userID string) error {
	item, err := s.loadOwnedItem(ctx, id, userID)
	if err != nil {
		return err
	}

	item.Deleted = true
	return s.pantryRepository.UpdatePantryItem(ctx, item)
}

func (s *pantryService) GetPantryItemByID(ctx context.Context, id string, userID string) (domain.PantryItemResponse, error) {
	item, err := s.loadOwnedItem(ctx, id, userID)
	if err != nil {
		return domain.PantryItemResponse{}, err
	}
	return s.toResponse(item), nil
}

func (s *pantryService) GetUserPantry(ctx context.Context, userID string) ([]domain.PantryItemResponse, error) {
	items, err := s.pantryRepository.GetUserPantry(ctx, userID)
	if err != nil {
		return nil, err
	}
	return s.toResponses(items), nil
}

func (s *pantryService) GetActivePantry(ctx context.Context, userID string) ([]domain.PantryItemResponse, error) {
	items, err := s.pantryRepository.GetActivePantry(ctx, userID)
	if err != nil {
		return nil, err
	}
	return s.toResponses(items), nil
}

func (s *pantryService) GetExpiringIngredients(ctx context.Context, userID string, days int) ([]domain.PantryItemResponse, error) {
	today := truncateToDay(s.now())
	items, err := s.pantryRepository.GetItemsExpiringBetween(ctx, userID, today, today.AddDate(0, 0, days))
	if err != nil {
		return nil, err
	}
	return s.toResponses(items), nil
}

func (s *pantryService) GetExpiredIngredients(ctx context.Context, userID string) ([]domain.PantryItemResponse, error) {
	items, err := s.pantryRepository.GetItemsExpiredBefore(ctx, userID, truncateToDay(s.now()))
	if err != nil {
		return nil, err
	}
	return s.toResponses(items), nil
}

func (s *pantryService) GetPantryByStorageLocation(ctx context.Context, userID string, location string) ([]domain.PantryItemResponse, error) {
	items, err := s.pantryRepository.GetPantryByStorageLocation(ctx, userID, location)
	if err != nil {
		return nil, err
	}
	return s.toResponses(items), nil
}

func (s *pantryService) SearchPantryItems(ctx context.Context, userID string, term string) ([]domain.PantryItemResponse, error) {
	items, err := s.pantryRepository.SearchPantryItems(ctx, userID, term)
	if err != nil {
		return nil, err
	}
	return s.toResponses(items), nil
}

func (s *pantryService) GetPantryStats(ctx context.Context, userID string) (domain.PantryStatsResponse, error) {
	today := truncateToDay(s.now())

	totalItems, err := s.pantryRepository.CountPantryItems(ctx, userID)
	if err != nil {
		return domain.PantryStatsResponse{}, err
	}

	activeItems, err := s.pantryRepository.CountActiveItems(ctx, userID)
	if err != nil {
		return domain.PantryStatsResponse{}, err
	}

	expiringItems, err := s.pantryRepository.CountItemsExpiringBetween(ctx, userID, today, today.AddDate(0, 0, 7))
	if err != nil {
		return domain.PantryStatsResponse{}, err
	}

	expiredItems, err := s.pantryRepository.CountItemsExpiredBefore(ctx, userID, today)
	if err != nil {
		return domain.PantryStatsResponse{}, err
	}

	refrigerated, err := s.pantryRepository.CountByStorageLocation(ctx, userID, string(domain.StorageRefrigerated))
	if err != nil {
		return domain.PantryStatsResponse{}, err
	}

	frozen, err := s.pantryRepository.CountByStorageLocation(ctx, userID, string(domain.StorageFrozen))
	if err != nil {
		return domain.PantryStatsResponse{}, err
	}

	roomTemperature, err := s.pantryRepository.CountByStorageLocation(ctx, userID, string(domain.StorageRoomTemperature))
	if err != nil {
		return domain.PantryStatsResponse{}, err
	}

	return domain.PantryStatsResponse{
		TotalItems:           totalItems,
		ActiveItems:          activeItems,
		ExpiringItems:        expiringItems,
		ExpiredItems:         expiredItems,
		RefrigeratedItems:    refrigerated,
		FrozenItems:          frozen,
		RoomTemperatureItems: roomTemperature,
	}, nil
}

func (s *pantryService) loadOwnedItem(ctx context.Context, id string, userID string) (*entities.PantryItem, error) {
	item, err := s.pantryRepository.GetPantryItemByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrPantryItemNotFound
		}
		return nil, err
	}

	if item.UserID.String() != userID {
		return nil, domain.ErrUserNotAllowed
	}

	return item, nil
}

func (s *pantryService) toResponse(item *entities.PantryItem) domain.PantryItemResponse {
	today := truncateToDay(s.now())

	remaining, ok := RemainingDays(item.ExpiryDate, today)
	if !ok {
		remaining = -1
	}

	res := domain.PantryItemResponse{
		ID:              item.ID.String(),
		IngredientID:    item.IngredientID.String(),
		IngredientName:  item.IngredientName,
		Quantity:        item.Quantity,
		Unit:            item.Unit,
		PurchaseDate:    item.PurchaseDate.Format(dateLayout),
		StorageLocation: item.StorageLocation,
		Notes:           item.Notes,
		IsConsumed:      item.IsConsumed,
		RemainingDays:   remaining,
		ExpiryStatus:    Classify(item, today),
	}

	if item.ExpiryDate != nil {
		res.ExpiryDate = item.ExpiryDate.Format(dateLayout)
	}
	if item.ConsumedDate != nil {
		res.ConsumedDate = item.ConsumedDate.Format(dateLayout)
	}

	return res
}

func (s *pantryService) toResponses(items []*entities.PantryItem) []domain.PantryItemResponse {
	responses := make([]domain.PantryItemResponse, 0, len(items))
	for _, item := range items {
		responses = append(responses, s.toResponse(item))
	}
	return responses
}
