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

// GormDestinationRepository implements registry.DestinationRepository using GORM
type GormDestinationRepository struct {
	db *gorm.DB
}

// NewGormDestinationRepository creates a new GormDestinationRepository
func NewGormDestinationRepository(db *gorm.DB) *GormDestinationRepository {
	return &GormDestinationRepository{db: db}
}

// Save inserts a new final destination
func (r *GormDestinationRepository) Save(ctx context.Context, destination *registry.FinalDestination) error {
	model := models.FinalDestinationModelFromDomain(destination)
	return r.db.WithContext(ctx).Create(model).Error
}

// Update persists changes to an existing final destination
func (r *GormDestinationRepository) Update(ctx context.Context, destination *registry.FinalDestination) error {
	model := models.FinalDestinationModelFromDomain(destination)
	result := r.db.WithContext(ctx).
		Model(&models.FinalDestinationModel{}).
		Where("id = ?", destination.ID).
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

// FindByID finds a final destination by its ID
func (r *GormDestinationRepository) FindByID(ctx context.Context, id uuid.UUID) (*registry.FinalDestination, error) {
	var model models.FinalDestinationModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// List returns a page of final destinations matching the filter
func (r *GormDestinationRepository) List(ctx context.Context, filter shared.Filter) (shared.Paginated[*registry.FinalDestination], error) {
	var empty shared.Paginated[*registry.FinalDestination]

	base := r.db.WithContext(ctx).Model(&models.FinalDestinationModel{})
	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		base = base.Where("name ILIKE ? OR authorization_code ILIKE ? OR city ILIKE ?", pattern, pattern, pattern)
	}
	if active, ok := filter.Filters["active"]; ok {
		base = base.Where("active = ?", active == "true")
	}

	var total int64
	if err := base.Count(&total).Error; err != nil {
		return empty, err
	}

	orderField := ValidateSortField(filter.OrderBy, DestinationSortFields, "name")
	orderDir := ValidateSortOrder(filter.OrderDir)

	var destinationModels []models.FinalDestinationModel
	if err := base.
		Order(orderField + " " + orderDir).
		Offset(filter.Offset()).
		Limit(filter.Limit()).
		Find(&destinationModels).Error; err != nil {
		return empty, err
	}

	destinations := make([]*registry.FinalDestination, len(destinationModels))
	for i := range destinationModels {
		destinations[i] = destinationModels[i].ToDomain()
	}
	return shared.NewPaginated(destinations, total, filter.Page, filter.Limit()), nil
}

// Delete removes a final destination
func (r *GormDestinationRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&models.FinalDestinationModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// Ensure GormDestinationRepository implements DestinationRepository
var _ registry.DestinationRepository = (*GormDestinationRepository)(nil)
