package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/resitrack/backend/internal/domain/registry"
	"github.com/resitrack/backend/internal/domain/shared"
	"github.com/resitrack/backend/internal/infrastructure/persistence/models"
)

// GormDriverRepository implements registry.DriverRepository using GORM
type GormDriverRepository struct {
	db *gorm.DB
}

// NewGormDriverRepository creates a new GormDriverRepository
func NewGormDriverRepository(db *gorm.DB) *GormDriverRepository {
	return &GormDriverRepository{db: db}
}

// Save inserts a new collection driver
func (r *GormDriverRepository) Save(ctx context.Context, driver *registry.CollectionDriver) error {
	model := models.CollectionDriverModelFromDomain(driver)
	return r.db.WithContext(ctx).Create(model).Error
}

// Update persists changes to an existing collection driver
func (r *GormDriverRepository) Update(ctx context.Context, driver *registry.CollectionDriver) error {
	model := models.CollectionDriverModelFromDomain(driver)
	result := r.db.WithContext(ctx).
		Model(&models.CollectionDriverModel{}).
		Where("id = ?", driver.ID).
		Select("*").Omit("id", "created_at", "created_by").
		Updates(model)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// FindByID finds a collection driver by its ID
func (r *GormDriverRepository) FindByID(ctx context.Context, id uuid.UUID) (*registry.CollectionDriver, error) {
	var model models.CollectionDriverModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// List returns a page of collection drivers matching the filter
func (r *GormDriverRepository) List(ctx context.Context, filter shared.Filter) (shared.Paginated[*registry.CollectionDriver], error) {
	var empty shared.Paginated[*registry.CollectionDriver]

	base := r.db.WithContext(ctx).Model(&models.CollectionDriverModel{})
	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		base = base.Where("name ILIKE ? OR license_number ILIKE ?", pattern, pattern)
	}
	if active, ok := filter.Filters["active"]; ok {
		base = base.Where("active = ?", active == "true")
	}

	var total int64
	if err := base.Count(&total).Error; err != nil {
		return empty, err
	}

	orderField := ValidateSortField(filter.OrderBy, DriverSortFields, "name")
	orderDir := ValidateSortOrder(filter.OrderDir)

	var driverModels []models.CollectionDriverModel
	if err := base.
		Order(orderField + " " + orderDir).
		Offset(filter.Offset()).
		Limit(filter.Limit()).
		Find(&driverModels).Error; err != nil {
		return empty, err
	}

	drivers := make([]*registry.CollectionDriver, len(driverModels))
	for i := range driverModels {
		drivers[i] = driverModels[i].ToDomain()
	}
	return shared.NewPaginated(drivers, total, filter.Page, filter.Limit()), nil
}

// Delete removes a collection driver
func (r *GormDriverRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&models.CollectionDriverModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// Ensure GormDriverRepository implements DriverRepository
var _ registry.DriverRepository = (*GormDriverRepository)(nil)
