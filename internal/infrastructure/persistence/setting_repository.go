package persistence

import (
	"context"
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/resitrack/backend/internal/domain/registry"
	"github.com/resitrack/backend/internal/domain/shared"
	"github.com/resitrack/backend/internal/infrastructure/persistence/models"
)

// GormSettingRepository implements registry.SettingRepository using GORM
type GormSettingRepository struct {
	db *gorm.DB
}

// NewGormSettingRepository creates a new GormSettingRepository
func NewGormSettingRepository(db *gorm.DB) *GormSettingRepository {
	return &GormSettingRepository{db: db}
}

// Get returns the setting for a key, shared.ErrNotFound when never set
func (r *GormSettingRepository) Get(ctx context.Context, key string) (*registry.SystemSetting, error) {
	var model models.SystemSettingModel
	if err := r.db.WithContext(ctx).
		Where("key = ?", key).
		First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// GetAll returns every configured setting, ordered by key
func (r *GormSettingRepository) GetAll(ctx context.Context) ([]*registry.SystemSetting, error) {
	var settingModels []models.SystemSettingModel
	if err := r.db.WithContext(ctx).
		Order("key ASC").
		Find(&settingModels).Error; err != nil {
		return nil, err
	}

	settings := make([]*registry.SystemSetting, len(settingModels))
	for i := range settingModels {
		settings[i] = settingModels[i].ToDomain()
	}
	return settings, nil
}

// Set upserts a setting value by key
func (r *GormSettingRepository) Set(ctx context.Context, setting *registry.SystemSetting) error {
	model := models.SystemSettingModelFromDomain(setting)
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "key"}},
			DoUpdates: clause.AssignmentColumns([]string{"value", "updated_at"}),
		}).
		Create(model).Error
}

// Ensure GormSettingRepository implements SettingRepository
var _ registry.SettingRepository = (*GormSettingRepository)(nil)
