package persistence

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/resitrack/backend/internal/domain/folio"
	"github.com/resitrack/backend/internal/domain/manifest"
	"github.com/resitrack/backend/internal/domain/shared"
	"github.com/resitrack/backend/internal/infrastructure/persistence/models"
)

// GormManifestRepository implements manifest.Repository using GORM
type GormManifestRepository struct {
	db *gorm.DB
}

// NewGormManifestRepository creates a new GormManifestRepository
func NewGormManifestRepository(db *gorm.DB) *GormManifestRepository {
	return &GormManifestRepository{db: db}
}

// Create inserts the manifest with its residue lines and, when bindSerial is
// non-empty, consumes the matching reservation with a conditional update.
// Everything runs in one transaction; a bind miss rolls the insert back.
func (r *GormManifestRepository) Create(ctx context.Context, m *manifest.Manifest, bindSerial string) error {
	model := models.ManifestModelFromDomain(m)

	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(model).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return folio.ErrDuplicateSerial
			}
			return err
		}

		if bindSerial == "" {
			return nil
		}

		now := time.Now()
		result := tx.Model(&models.FolioReservationModel{}).
			Where("serial_number = ? AND used = ?", bindSerial, false).
			Updates(map[string]any{
				"used":              true,
				"bound_manifest_id": m.ID,
				"used_at":           now,
				"updated_at":        now,
			})
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return folio.ErrAlreadyUsed
		}
		return nil
	})
}

// FindByID finds a manifest with its residue lines by ID
func (r *GormManifestRepository) FindByID(ctx context.Context, id uuid.UUID) (*manifest.Manifest, error) {
	var model models.ManifestModel
	if err := r.db.WithContext(ctx).
		Preload("Residues").
		First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindBySerial finds a manifest with its residue lines by serial number
func (r *GormManifestRepository) FindBySerial(ctx context.Context, serial string) (*manifest.Manifest, error) {
	var model models.ManifestModel
	if err := r.db.WithContext(ctx).
		Preload("Residues").
		Where("serial_number = ?", serial).
		First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// List returns a page of manifests matching the filter
func (r *GormManifestRepository) List(ctx context.Context, filter shared.Filter) (shared.Paginated[*manifest.Manifest], error) {
	var empty shared.Paginated[*manifest.Manifest]

	base := r.applyFilters(r.db.WithContext(ctx).Model(&models.ManifestModel{}), filter)

	var total int64
	if err := base.Count(&total).Error; err != nil {
		return empty, err
	}

	orderField := ValidateSortField(filter.OrderBy, ManifestSortFields, "issue_date")
	orderDir := ValidateSortOrder(filter.OrderDir)

	var manifestModels []models.ManifestModel
	if err := base.
		Preload("Residues").
		Order(orderField + " " + orderDir).
		Offset(filter.Offset()).
		Limit(filter.Limit()).
		Find(&manifestModels).Error; err != nil {
		return empty, err
	}

	manifests := make([]*manifest.Manifest, len(manifestModels))
	for i := range manifestModels {
		manifests[i] = manifestModels[i].ToDomain()
	}
	return shared.NewPaginated(manifests, total, filter.Page, filter.Limit()), nil
}

// UpdatePDF records PDF bookkeeping on an issued manifest
func (r *GormManifestRepository) UpdatePDF(ctx context.Context, id uuid.UUID, generated bool, path *string) error {
	result := r.db.WithContext(ctx).
		Model(&models.ManifestModel{}).
		Where("id = ?", id).
		Updates(map[string]any{
			"pdf_generated": generated,
			"pdf_path":      path,
			"updated_at":    time.Now(),
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// Delete removes a manifest, releasing any reservation bound to it first so a
// crash between the two steps leaves the serial available rather than orphaned.
func (r *GormManifestRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&models.FolioReservationModel{}).
			Where("bound_manifest_id = ?", id).
			Updates(map[string]any{
				"used":              false,
				"bound_manifest_id": nil,
				"used_at":           nil,
				"updated_at":        time.Now(),
			}).Error; err != nil {
			return err
		}

		if err := tx.Where("manifest_id = ?", id).
			Delete(&models.ManifestResidueModel{}).Error; err != nil {
			return err
		}

		result := tx.Delete(&models.ManifestModel{}, "id = ?", id)
		if result.Error != nil {
			return result.Error
		}
		if result.RowsAffected == 0 {
			return shared.ErrNotFound
		}
		return nil
	})
}

// applyFilters applies search and key/value filters without pagination
func (r *GormManifestRepository) applyFilters(query *gorm.DB, filter shared.Filter) *gorm.DB {
	if filter.Search != "" {
		query = query.Where("serial_number ILIKE ?", "%"+filter.Search+"%")
	}

	for key, value := range filter.Filters {
		switch key {
		case "site_id":
			query = query.Where("generator_site_id = ?", value)
		case "serial_number":
			query = query.Where("serial_number = ?", value)
		case "issued_from":
			query = query.Where("issue_date >= ?", value)
		case "issued_to":
			query = query.Where("issue_date <= ?", value)
		}
	}

	return query
}

// Ensure GormManifestRepository implements Repository
var _ manifest.Repository = (*GormManifestRepository)(nil)
