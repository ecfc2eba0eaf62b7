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

// GormVehicleRepository implements registry.VehicleRepository using GORM
type GormVehicleRepository struct {
	db *gorm.DB
}

// NewGormVehicleRepository creates a new GormVehicleRepository
func NewGormVehicleRepository(db *gorm.DB) *GormVehicleRepository {
	return &GormVehicleRepository{db: db}
}

// Save inserts a new vehicle. Plates are unique across the fleet.
func (r *GormVehicleRepository) Save(ctx context.Context, vehicle *registry.Vehicle) error {
	model := models.VehicleModelFromDomain(vehicle)
	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return shared.ErrAlreadyExists
		}
		return err
	}
	return nil
}

// Update persists changes to an existing vehicle
func (r *GormVehicleRepository) Update(ctx context.Context, vehicle *registry.Vehicle) error {
	model := models.VehicleModelFromDomain(vehicle)
	result := r.db.WithContext(ctx).
		Model(&models.VehicleModel{}).
		Where("id = ?", vehicle.ID).
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

// FindByID finds a vehicle by its ID
func (r *GormVehicleRepository) FindByID(ctx context.Context, id uuid.UUID) (*registry.Vehicle, error) {
	var model models.VehicleModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// List returns a page of vehicles matching the filter
func (r *GormVehicleRepository) List(ctx context.Context, filter shared.Filter) (shared.Paginated[*registry.Vehicle], error) {
	var empty shared.Paginated[*registry.Vehicle]

	base := r.db.WithContext(ctx).Model(&models.VehicleModel{})
	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		base = base.Where("plates ILIKE ? OR model ILIKE ?", pattern, pattern)
	}
	if active, ok := filter.Filters["active"]; ok {
		base = base.Where("active = ?", active == "true")
	}

	var total int64
	if err := base.Count(&total).Error; err != nil {
		return empty, err
	}

	orderField := ValidateSortField(filter.OrderBy, VehicleSortFields, "plates")
	orderDir := ValidateSortOrder(filter.OrderDir)

	var vehicleModels []models.VehicleModel
	if err := base.
		Order(orderField + " " + orderDir).
		Offset(filter.Offset()).
		Limit(filter.Limit()).
		Find(&vehicleModels).Error; err != nil {
		return empty, err
	}

	vehicles := make([]*registry.Vehicle, len(vehicleModels))
	for i := range vehicleModels {
		vehicles[i] = vehicleModels[i].ToDomain()
	}
	return shared.NewPaginated(vehicles, total, filter.Page, filter.Limit()), nil
}

// Delete removes a vehicle
func (r *GormVehicleRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&models.VehicleModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// Ensure GormVehicleRepository implements VehicleRepository
var _ registry.VehicleRepository = (*GormVehicleRepository)(nil)
