package pantry

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/hibikero/nutributler/domain"
	"github.com/hibikero/nutributler/entities"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type fakePantryRepository struct {
	items map[string]*entities.PantryItem
}

func newFakePantryRepository() *fakePantryRepository {
	return &fakePantryRepository{items: make(map[string]*entities.PantryItem)}
}

func (r *fakePantryRepository) CreatePantryItem(_ context.Context, item *entities.PantryItem) error {
	r.items[item.ID.String()] = item
	return nil
}

func (r *fakePantryRepository) GetPantryItemByID(_ context.Context, id string) (*entities.PantryItem, error) {
	item, ok := r.items[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return item, nil
}

func (r *fakePantryRepository) UpdatePantryItem(_ context.Context, item *entities.PantryItem) error {
	r.items[item.ID.String()] = item
	return nil
}

func (r *fakePantryRepository) GetUserPantry(_ context.Context, userID string) ([]*entities.PantryItem, error) {
	var out []*entities.PantryItem
	for _, item := range r.items {
		if item.UserID.String() == userID && !item.Deleted {
			out = append(out, item)
		}
	}
	return out, nil
}

func (r *fakePantryRepository) GetActivePantry(_ context.Context, userID string) ([]*entities.PantryItem, error) {
	var out []*entities.PantryItem
	for _, item := range r.items {
		if item.UserID.String() == userID && !item.Deleted && !item.IsConsumed {
			out = append(out, item)
		}
	}
	return out, nil
}

func (r *fakePantryRepository) GetItemsExpiringBetween(ctx context.Context, userID string, start, end time.Time) ([]*entities.PantryItem, error) {
	active, _ := r.GetActivePantry(ctx, userID)
	var out []*entities.PantryItem
	for _, item := range active {
		if item.ExpiryDate == nil {
			continue
		}
		if !item.ExpiryDate.Before(start) && !item.ExpiryDate.After(end) {
			out = append(out, item)
		}
	}
	return out, nil
}

func (r *fakePantryRepository) GetItemsExpiredBefore(ctx context.Context, userID string, date time.Time) ([]*entities.PantryItem, error) {
	active, _ := r.GetActivePantry(ctx, userID)
	var out []*entities.PantryItem
	for _, item := range active {
		if item.ExpiryDate != nil && item.ExpiryDate.Before(date) {
			out = append(out, item)
		}
	}
	return out, nil
}

func (r *fakePantryRepository) GetPantryByStorageLocation(ctx context.Context, userID string, location string) ([]*entities.PantryItem, error) {
	all, _ := r.GetUserPantry(ctx, userID)
	var out []*entities.PantryItem
	for _, item := range all {
		if item.StorageLocation == location {
			out = append(out, item)
		}
	}
	return out, nil
}

func (r *fakePantryRepository) SearchPantryItems(ctx context.Context, userID string, term string) ([]*entities.PantryItem, error) {
	return r.GetUserPantry(ctx, userID)
}

func (r *fakePantryRepository) CountPantryItems(ctx context.Context, userID string) (int64, error) {
	items, _ := r.GetUserPantry(ctx, userID)
	return int64(len(items)), nil
}

func (r *fakePantryRepository) CountActiveItems(ctx context.Context, userID string) (int64, error) {
	items, _ := r.GetActivePantry(ctx, userID)
	return int64(len(items)), nil
}

func (r *fakePantryRepository) CountItemsExpiringBetween(ctx context.Context, userID string, start, end time.Time) (int64, error) {
	items, _ := r.GetItemsExpiringBetween(ctx, userID, start, end)
	return int64(len(items)), nil
}

func (r *fakePantryRepository) CountItemsExpiredBefore(ctx context.Context, userID string, date time.Time) (int64, error) {
	items, _ := r.GetItemsExpiredBefore(ctx, userID, date)
	return int64(len(items)), nil
}

func (r *fakePantryRepository) CountByStorageLocation(ctx context.Context, userID string, location string) (int64, error) {
	items, _ := r.GetPantryByStorageLocation(ctx, userID, location)
	return int64(len(items)), nil
}

type fakeIngredientRepository struct {
	ingredients map[string]*entities.Ingredient
}

func newFakeIngredientRepository() *fakeIngredientRepository {
	return &fakeIngredientRepository{ingredients: make(map[string]*entities.Ingredient)}
}

func (r *fakeIngredientRepository) CreateIngredient(_ context.Context, ing *entities.Ingredient) error {
	r.ingredients[ing.ID.String()] = ing
	return nil
}

func (r *fakeIngredientRepository) GetIngredientByID(_ context.Context, id string) (*entities.Ingredient, error) {
	ing, ok := r.ingredients[id]
	if !ok {
		return nil, gorm.ErrRecordNotFound
	}
	return ing, nil
}

func (r *fakeIngredientRepository) GetIngredientBySpoonacularID(_ context.Context, _ int) (*entities.Ingredient, error) {
	return nil, gorm.ErrRecordNotFound
}

func (r *fakeIngredientRepository) UpdateIngredient(_ context.Context, ing *entities.Ingredient) error {
	r.ingredients[ing.ID.String()] = ing
	return nil
}

func (r *fakeIngredientRepository) SearchIngredients(_ context.Context, _ string, _ int) ([]*entities.Ingredient, error) {
	return nil, nil
}

func (r *fakeIngredientRepository) GetIngredientsByCategory(_ context.Context, _ string) ([]*entities.Ingredient, error) {
	return nil, nil
}

var serviceToday = time.Date(2024, 1, 1, 10, 30, 0, 0, time.UTC)

func newTestPantryService(t *testing.T) (*pantryService, *fakePantryRepository, *entities.Ingredient, string) {
	t.Helper()

	pantryRepo := newFakePantryRepository()
	ingredientRepo := newFakeIngredientRepository()

	chicken := &entities.Ingredient{ID: uuid.New(), Name: "鸡肉", NameEn: "chicken"}
	require.NoError(t, ingredientRepo.CreateIngredient(context.Background(), chicken))

	svc := &pantryService{
		pantryRepository:     pantryRepo,
		ingredientRepository: ingredientRepo,
		now:                  func() time.Time { return serviceToday },
	}

	return svc, pantryRepo, chicken, uuid.NewString()
}

func TestAddIngredientToPantryDerivesExpiry(t *testing.T) {
	svc, repo, chicken, userID := newTestPantryService(t)

	res, err := svc.AddIngredientToPantry(context.Background(), domain.AddPantryItemRequest{
		IngredientID: chicken.ID.String(),
		Quantity:     500,
		Unit:         "g",
		PurchaseDate: "2024-01-01",
	}, userID)
	require.NoError(t, err)

	// chicken keeps for 2 days refrigerated
	assert.Equal(t, "2024-01-03", res.ExpiryDate)
	assert.Equal(t, string(domain.StorageRefrigerated), res.StorageLocation)
	assert.Equal(t, "鸡肉", res.IngredientName)
	assert.Equal(t, 2, res.RemainingDays)
	assert.Equal(t, domain.SeverityWarning, res.ExpiryStatus)

	stored := repo.items[res.ID]
	require.NotNil(t, stored)
	assert.False(t, stored.IsConsumed)
	assert.False(t, stored.Deleted)
}

func TestAddIngredientToPantryKeepsExplicitStorage(t *testing.T) {
	svc, _, chicken, userID := newTestPantryService(t)

	res, err := svc.AddIngredientToPantry(context.Background(), domain.AddPantryItemRequest{
		IngredientID:    chicken.ID.String(),
		Quantity:        1,
		Unit:            "kg",
		PurchaseDate:    "2024-01-01",
		StorageLocation: string(domain.StorageFrozen),
	}, userID)
	require.NoError(t, err)

	assert.Equal(t, string(domain.StorageFrozen), res.StorageLocation)
}

func TestAddIngredientToPantryErrors(t *testing.T) {
	svc, _, chicken, userID := newTestPantryService(t)

	_, err := svc.AddIngredientToPantry(context.Background(), domain.AddPantryItemRequest{
		IngredientID: uuid.NewString(),
		Quantity:     1,
		Unit:         "g",
		PurchaseDate: "2024-01-01",
	}, userID)
	assert.ErrorIs(t, err, domain.ErrIngredientNotFound)

	_, err = svc.AddIngredientToPantry(context.Background(), domain.AddPantryItemRequest{
		IngredientID: chicken.ID.String(),
		Quantity:     1,
		Unit:         "g",
		PurchaseDate: "01/01/2024",
	}, userID)
	assert.ErrorIs(t, err, domain.ErrInvalidPurchaseDate)

	_, err = svc.AddIngredientToPantry(context.Background(), domain.AddPantryItemRequest{
		IngredientID: chicken.ID.String(),
		Quantity:     1,
		Unit:         "g",
		PurchaseDate: "2024-01-01",
	}, "not-a-uuid")
	assert.ErrorIs(t, err, domain.ErrParseUUID)
}

func TestUpdatePantryItemExpiryIsAuthoritative(t *testing.T) {
	svc, _, chicken, userID := newTestPantryService(t)

	added, err := svc.AddIngredientToPantry(context.Background(), domain.AddPantryItemRequest{
		IngredientID: chicken.ID.String(),
		Quantity:     500,
		Unit:         "g",
		PurchaseDate: "2024-01-01",
	}, userID)
	require.NoError(t, err)

	// moving the purchase date without an expiry keeps the stored expiry
	updated, err := svc.UpdatePantryItem(context.Background(), added.ID, domain.UpdatePantryItemRequest{
		Quantity:     250,
		Unit:         "g",
		PurchaseDate: "2024-01-02",
	}, userID)
	require.NoError(t, err)
	assert.Equal(t, "2024-01-03", updated.ExpiryDate)

	// a caller-supplied expiry replaces it verbatim
	updated, err = svc.UpdatePantryItem(context.Background(), added.ID, domain.UpdatePantryItemRequest{
		Quantity:     250,
		Unit:         "g",
		PurchaseDate: "2024-01-02",
		ExpiryDate:   "2024-02-01",
	}, userID)
	require.NoError(t, err)
	assert.Equal(t, "2024-02-01", updated.ExpiryDate)
}

func TestMarkAsConsumed(t *testing.T) {
	svc, repo, chicken, userID := newTestPantryService(t)

	added, err := svc.AddIngredientToPantry(context.Background(), domain.AddPantryItemRequest{
		IngredientID: chicken.ID.String(),
		Quantity:     500,
		Unit:         "g",
		PurchaseDate: "2024-01-01",
	}, userID)
	require.NoError(t, err)

	res, err := svc.MarkAsConsumed(context.Background(), added.ID, domain.ConsumePantryItemRequest{}, userID)
	require.NoError(t, err)

	assert.True(t, res.IsConsumed)
	assert.Equal(t, "2024-01-01", res.ConsumedDate) // defaults to today

	// repeating the call keeps the item consumed
	res, err = svc.MarkAsConsumed(context.Background(), added.ID, domain.ConsumePantryItemRequest{ConsumedDate: "2024-01-02"}, userID)
	require.NoError(t, err)
	assert.True(t, res.IsConsumed)
	assert.Equal(t, "2024-01-02", res.ConsumedDate)

	assert.True(t, repo.items[added.ID].IsConsumed)
}

func TestPantryOwnership(t *testing.T) {
	svc, _, chicken, userID := newTestPantryService(t)

	added, err := svc.AddIngredientToPantry(context.Background(), domain.AddPantryItemRequest{
		IngredientID: chicken.ID.String(),
		Quantity:     500,
		Unit:         "g",
		PurchaseDate: "2024-01-01",
	}, userID)
	require.NoError(t, err)

	otherUser := uuid.NewString()

	_, err = svc.GetPantryItemByID(context.Background(), added.ID, otherUser)
	assert.ErrorIs(t, err, domain.ErrUserNotAllowed)

	err = svc.DeletePantryItem(context.Background(), added.ID, otherUser)
	assert.ErrorIs(t, err, domain.ErrUserNotAllowed)

	_, err = svc.GetPantryItemByID(context.Background(), uuid.NewString(), userID)
	assert.ErrorIs(t, err, domain.ErrPantryItemNotFound)
}

func TestDeletePantryItemIsSoft(t *testing.T) {
	svc, repo, chicken, userID := newTestPantryService(t)

	added, err := svc.AddIngredientToPantry(context.Background(), domain.AddPantryItemRequest{
		IngredientID: chicken.ID.String(),
		Quantity:     500,
		Unit:         "g",
		PurchaseDate: "2024-01-01",
	}, userID)
	require.NoError(t, err)

	require.NoError(t, svc.DeletePantryItem(context.Background(), added.ID, userID))

	// record survives, but hidden from listings
	assert.True(t, repo.items[added.ID].Deleted)

	items, err := svc.GetUserPantry(context.Background(), userID)
	require.NoError(t, err)
	assert.Empty(t, items)
}

func TestGetPantryStats(t *testing.T) {
	svc, _, chicken, userID := newTestPantryService(t)

	for _, date := range []string{"2024-01-01", "2024-01-01"} {
		_, err := svc.AddIngredientToPantry(context.Background(), domain.AddPantryItemRequest{
			IngredientID: chicken.ID.String(),
			Quantity:     500,
			Unit:         "g",
			PurchaseDate: date,
		}, userID)
		require.NoError(t, err)
	}

	stats, err := svc.GetPantryStats(context.Background(), userID)
	require.NoError(t, err)

	assert.Equal(t, int64(2), stats.TotalItems)
	assert.Equal(t, int64(2), stats.ActiveItems)
	assert.Equal(t, int64(2), stats.ExpiringItems) // chicken expires in 2 days
	assert.Equal(t, int64(0), stats.ExpiredItems)
	assert.Equal(t, int64(2), stats.RefrigeratedItems)
	assert.Equal(t, int64(0), stats.FrozenItems)
}
