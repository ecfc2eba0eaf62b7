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

// GormSiteRepository implements registry.SiteRepository using GORM
type GormSiteRepository struct {
	db *gorm.DB
}

// NewGormSiteRepository creates a new GormSiteRepository
func NewGormSiteRepository(db *gorm.DB) *GormSiteRepository {
	return &GormSiteRepository{db: db}
}

// Save inserts a new generator site. The unique index on serial_prefix keeps
// site prefixes, and therefore serial namespaces, disjoint.
func (r *GormSiteRepository) Save(ctx context.Context, site *registry.GeneratorSite) error {
	model := models.GeneratorSiteModelFromDomain(site)
	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return shared.ErrAlreadyExists
		}
		return err
	}
	return nil
}

// Update persists changes to an existing generator site
func (r *GormSiteRepository) Update(ctx context.Context, site *registry.GeneratorSite) error {
	model := models.GeneratorSiteModelFromDomain(site)
	result := r.db.WithContext(ctx).
		Model(&models.GeneratorSiteModel{}).
		Where("id = ?", site.ID).
		Select("*").Omit("id", "created_at", "created_by", "serial_prefix").
		Updates(model)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// FindByID finds a generator site by its ID
func (r *GormSiteRepository) FindByID(ctx context.Context, id uuid.UUID) (*registry.GeneratorSite, error) {
	var model models.GeneratorSiteModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// List returns a page of generator sites matching the filter
func (r *GormSiteRepository) List(ctx context.Context, filter shared.Filter) (shared.Paginated[*registry.GeneratorSite], error) {
	var empty shared.Paginated[*registry.GeneratorSite]

	base := r.db.WithContext(ctx).Model(&models.GeneratorSiteModel{})
	if filter.Search != "" {
		pattern := "%" + filter.Search + "%"
		base = base.Where("name ILIKE ? OR serial_prefix ILIKE ? OR city ILIKE ?", pattern, pattern, pattern)
	}
	if active, ok := filter.Filters["active"]; ok {
		base = base.Where("active = ?", active == "true")
	}

	var total int64
	if err := base.Count(&total).Error; err != nil {
		return empty, err
	}

	orderField := ValidateSortField(filter.OrderBy, SiteSortFields, "name")
	orderDir := ValidateSortOrder(filter.OrderDir)

	var siteModels []models.GeneratorSiteModel
	if err := base.
		Order(orderField + " " + orderDir).
		Offset(filter.Offset()).
		Limit(filter.Limit()).
		Find(&siteModels).Error; err != nil {
		return empty, err
	}

	sites := make([]*registry.GeneratorSite, len(siteModels))
	for i := range siteModels {
		sites[i] = siteModels[i].ToDomain()
	}
	return shared.NewPaginated(sites, total, filter.Page, filter.Limit()), nil
}

// Delete removes a generator site
func (r *GormSiteRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&models.GeneratorSiteModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// Ensure GormSiteRepository implements SiteRepository
var _ registry.SiteRepository = (*GormSiteRepository)(nil)
