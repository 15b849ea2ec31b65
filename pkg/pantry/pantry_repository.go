package pantry

import (
	"context"
	"time"

	"github.com/hibikero/nutributler/entities"
	"gorm.io/gorm"
)

type (
	PantryRepository interface {
		CreatePantryItem(ctx context.Context, item *entities.PantryItem) error
		GetPantryItemByID(ctx context.Context, id string) (*entities.PantryItem, error)
		UpdatePantryItem(ctx context.Context, item *entities.PantryItem) error
		GetUserPantry(ctx context.Context, userID string) ([]*entities.PantryItem, error)
		GetActivePantry(ctx context.Context, userID string) ([]*entities.PantryItem, error)
		GetItemsExpiringBetween(ctx context.Context, userID string, startDate, endDate time.Time) ([]*entities.PantryItem, error)
		GetItemsExpiredBefore(ctx context.Context, userID string, date time.Time) ([]*entities.PantryItem, error)
		GetPantryByStorageLocation(ctx context.Context, userID string, location string) ([]*entities.PantryItem, error)
		SearchPantryItems(ctx context.Context, userID string, term string) ([]*entities.PantryItem, error)
		CountPantryItems(ctx context.Context, userID string) (int64, error)
		CountActiveItems(ctx context.Context, userID string) (int64, error)
		CountItemsExpiringBetween(ctx context.Context, userID string, startDate, endDate time.Time) (int64, error)
		CountItemsExpiredBefore(ctx context.Context, userID string, date time.Time) (int64, error)
		CountByStorageLocation(ctx context.Context, userID string, location string) (int64, error)
	}

	pantryRepository struct {
		db *gorm.DB
	}
)

func NewPantryRepository(db *gorm.DB) PantryRepository {
	return &pantryRepository{db: db}
}

func (r *pantryRepository) CreatePantryItem(ctx context.Context, item *entities.PantryItem) error {
	return r.db.WithContext(ctx).Create(item).Error
}

func (r *pantryRepository) GetPantryItemByID(ctx context.Context, id string) (*entities.PantryItem, error) {
	var item entities.PantryItem
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&item).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

func (r *pantryRepository) UpdatePantryItem(ctx context.Context, item *entities.PantryItem) error {
	return r.db.WithContext(ctx).Save(item).Error
}

func (r *pantryRepository) GetUserPantry(ctx context.Context, userID string) ([]*entities.PantryItem, error) {
	var items []*entities.PantryItem
	if err := r.db.WithContext(ctx).
		Where("user_id = ? AND deleted = ?", userID, false).
		Order("purchase_date desc").
		Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (r *pantryRepository) GetActivePantry(ctx context.Context, userID string) ([]*entities.PantryItem, error) {
	var items []*entities.PantryItem
	if err := r.db.WithContext(ctx).
		Where("user_id = ? AND is_consumed = ? AND deleted = ?", userID, false, false).
		Order("expiry_date asc").
		Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (r *pantryRepository) GetItemsExpiringBetween(ctx context.Context, userID string, startDate, endDate time.Time) ([]*entities.PantryItem, error) {
	var items []*entities.PantryItem
	if err := r.db.WithContext(ctx).
		Where("user_id = ? AND is_consumed = ? AND deleted = ? AND expiry_date BETWEEN ? AND ?",
			userID, false, false, startDate, endDate).
		Order("expiry_date asc").
		Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (r *pantryRepository) GetItemsExpiredBefore(ctx context.Context, userID string, date time.Time) ([]*entities.PantryItem, error) {
	var items []*entities.PantryItem
	if err := r.db.WithContext(ctx).
		Where("user_id = ? AND is_consumed = ? AND deleted = ? AND expiry_date < ?",
			userID, false, false, date).
		Order("expiry_date asc").
		Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (r *pantryRepository) GetPantryByStorageLocation(ctx context.Context, userID string, location string) ([]*entities.PantryItem, error) {
	var items []*entities.PantryItem
	if err := r.db.WithContext(ctx).
		Where("user_id = ? AND deleted = ? AND storage_location = ?", userID, false, location).
		Order("expiry_date asc").
		Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (r *pantryRepository) SearchPantryItems(ctx context.Context, userID string, term string) ([]*entities.PantryItem, error) {
	var items []*entities.PantryItem
	if err := r.db.WithContext(ctx).
		Where("user_id = ? AND deleted = ? AND ingredient_name ILIKE ?", userID, false, "%"+term+"%").
		Order("expiry_date asc").
		Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (r *pantryRepository) CountPantryItems(ctx context.Context, userID string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&entities.PantryItem{}).
		Where("user_id = ? AND deleted = ?", userID, false).
		Count(&count).Error
	return count, err
}

func (r *pantryRepository) CountActiveItems(ctx context.Context, userID string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&entities.PantryItem{}).
		Where("user_id = ? AND is_consumed = ? AND deleted = ?", userID, false, false).
		Count(&count).Error
	return count, err
}

func (r *pantryRepository) CountItemsExpiringBetween(ctx context.Context, userID string, startDate, endDate time.Time) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&entities.PantryItem{}).
		Where("user_id = ? AND is_consumed = ? AND deleted = ? AND expiry_date BETWEEN ? AND ?",
			userID, false, false, startDate, endDate).
		Count(&count).Error
	return count, err
}

func (r *pantryRepository) CountItemsExpiredBefore(ctx context.Context, userID string, date time.Time) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&entities.PantryItem{}).
		Where("user_id = ? AND is_consumed = ? AND deleted = ? AND expiry_date < ?",
			userID, false, false, date).
		Count(&count).Error
	return count, err
}

func (r *pantryRepository) CountByStorageLocation(ctx context.Context, userID string, location string) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&entities.PantryItem{}).
		Where("user_id = ? AND deleted = ? AND storage_location = ?", userID, false, location).
		Count(&count).Error
	return count, err
}
