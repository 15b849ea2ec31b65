package healthprofile

import (
	"context"

	"github.com/hibikero/nutributler/entities"
	"gorm.io/gorm"
)

type (
	HealthProfileRepository interface {
		CreateHealthProfile(ctx context.Context, profile *entities.HealthProfile) error
		GetHealthProfileByID(ctx context.Context, id string) (*entities.HealthProfile, error)
		GetActiveProfileByUserID(ctx context.Context, userID string) (*entities.HealthProfile, error)
		GetProfilesByUserID(ctx context.Context, userID string) ([]*entities.HealthProfile, error)
		UpdateHealthProfile(ctx context.Context, profile *entities.HealthProfile) error
	}

	healthProfileRepository struct {
		db *gorm.DB
	}
)

func NewHealthProfileRepository(db *gorm.DB) HealthProfileRepository {
	return &healthProfileRepository{db: db}
}

func (r *healthProfileRepository) CreateHealthProfile(ctx context.Context, profile *entities.HealthProfile) error {
	return r.db.WithContext(ctx).Create(profile).Error
}

func (r *healthProfileRepository) GetHealthProfileByID(ctx context.Context, id string) (*entities.HealthProfile, error) {
	var profile entities.HealthProfile
	if err := r.db.WithContext(ctx).Where("id = ?", id).First(&profile).Error; err != nil {
		return nil, err
	}
	return &profile, nil
}

func (r *healthProfileRepository) GetActiveProfileByUserID(ctx context.Context, userID string) (*entities.HealthProfile, error) {
	var profile entities.HealthProfile
	if err := r.db.WithContext(ctx).
		Where("user_id = ? AND is_active = ? AND deleted = ?", userID, true, false).
		First(&profile).Error; err != nil {
		return nil, err
	}
	return &profile, nil
}

func (r *healthProfileRepository) GetProfilesByUserID(ctx context.Context, userID string) ([]*entities.HealthProfile, error) {
	var profiles []*entities.HealthProfile
	if err := r.db.WithContext(ctx).
		Where("user_id = ? AND deleted = ?", userID, false).
		Order("created_at desc").
		Find(&profiles).Error; err != nil {
		return nil, err
	}
	return profiles, nil
}

func (r *healthProfileRepository) UpdateHealthProfile(ctx context.Context, profile *entities.HealthProfile) error {
	return r.db.WithContext(ctx).Save(profile).Error
}
