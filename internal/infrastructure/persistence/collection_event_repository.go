package persistence

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/resitrack/backend/internal/domain/collection"
	"github.com/resitrack/backend/internal/domain/shared"
	"github.com/resitrack/backend/internal/infrastructure/persistence/models"
)

// GormEventRepository implements collection.EventRepository using GORM
type GormEventRepository struct {
	db *gorm.DB
}

// NewGormEventRepository creates a new GormEventRepository
func NewGormEventRepository(db *gorm.DB) *GormEventRepository {
	return &GormEventRepository{db: db}
}

// Save inserts a collection event with its detail lines in one transaction
func (r *GormEventRepository) Save(ctx context.Context, event *collection.CollectionEvent) error {
	model := models.CollectionEventModelFromDomain(event)
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Create(model).Error
	})
}

// FindByID finds a collection event with its detail lines by ID
func (r *GormEventRepository) FindByID(ctx context.Context, id uuid.UUID) (*collection.CollectionEvent, error) {
	var model models.CollectionEventModel
	if err := r.db.WithContext(ctx).
		Preload("Details").
		First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// ListBySite returns a page of a site's collection events inside the
// inclusive [from, to] date range
func (r *GormEventRepository) ListBySite(ctx context.Context, siteID uuid.UUID, from, to time.Time, filter shared.Filter) (shared.Paginated[*collection.CollectionEvent], error) {
	var empty shared.Paginated[*collection.CollectionEvent]

	base := r.db.WithContext(ctx).
		Model(&models.CollectionEventModel{}).
		Where("site_id = ?", siteID)
	if !from.IsZero() {
		base = base.Where("event_date >= ?", from)
	}
	if !to.IsZero() {
		base = base.Where("event_date <= ?", to)
	}

	var total int64
	if err := base.Count(&total).Error; err != nil {
		return empty, err
	}

	orderField := ValidateSortField(filter.OrderBy, CollectionEventSortFields, "event_date")
	orderDir := ValidateSortOrder(filter.OrderDir)

	var eventModels []models.CollectionEventModel
	if err := base.
		Preload("Details").
		Order(orderField + " " + orderDir).
		Offset(filter.Offset()).
		Limit(filter.Limit()).
		Find(&eventModels).Error; err != nil {
		return empty, err
	}

	events := make([]*collection.CollectionEvent, len(eventModels))
	for i := range eventModels {
		events[i] = eventModels[i].ToDomain()
	}
	return shared.NewPaginated(events, total, filter.Page, filter.Limit()), nil
}

// SumByCategory aggregates a site's collected kilograms per category over the
// inclusive [from, to] date range. Categories without quantities are absent
// from the result.
func (r *GormEventRepository) SumByCategory(ctx context.Context, siteID uuid.UUID, from, to time.Time) (map[string]decimal.Decimal, error) {
	var rows []struct {
		CategoryCode string
		Total        decimal.Decimal
	}

	if err := r.db.WithContext(ctx).
		Table("collection_event_details AS d").
		Select("d.category_code, SUM(d.kilograms) AS total").
		Joins("JOIN collection_events e ON e.id = d.event_id").
		Where("e.site_id = ? AND e.event_date >= ? AND e.event_date <= ?", siteID, from, to).
		Group("d.category_code").
		Scan(&rows).Error; err != nil {
		return nil, err
	}

	sums := make(map[string]decimal.Decimal, len(rows))
	for _, row := range rows {
		sums[row.CategoryCode] = row.Total
	}
	return sums, nil
}

// Delete removes a collection event and its detail lines in one transaction
func (r *GormEventRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("event_id = ?", id).
			Delete(&models.CollectionEventDetailModel{}).Error; err != nil {
			return err
		}

		result := tx.Delete(&models.CollectionEventModel{}, "id = ?", id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return shared.ErrNotFound
		}
		return nil
	})
}

// Ensure GormEventRepository implements EventRepository
var _ collection.EventRepository = (*GormEventRepository)(nil)
