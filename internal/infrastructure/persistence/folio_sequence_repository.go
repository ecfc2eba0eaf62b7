package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/resitrack/backend/internal/domain/folio"
	"github.com/resitrack/backend/internal/infrastructure/persistence/models"
)

// GormSequenceRepository implements folio.SequenceRepository using GORM
type GormSequenceRepository struct {
	db *gorm.DB
}

// NewGormSequenceRepository creates a new GormSequenceRepository
func NewGormSequenceRepository(db *gorm.DB) *GormSequenceRepository {
	return &GormSequenceRepository{db: db}
}

// Next advances the (site, year) counter and returns the minted value.
// The upsert is a single statement, so concurrent callers serialize on the
// row lock and can never observe the same value.
func (r *GormSequenceRepository) Next(ctx context.Context, siteID uuid.UUID, year int) (int64, error) {
	var next int64
	err := r.db.WithContext(ctx).Raw(`
		INSERT INTO folio_sequences (site_id, year, last_value, updated_at)
		VALUES (?, ?, 1, NOW())
		ON CONFLICT (site_id, year)
		DO UPDATE SET last_value = folio_sequences.last_value + 1, updated_at = NOW()
		RETURNING last_value`,
		siteID, year,
	).Scan(&next).Error
	if err != nil {
		return 0, err
	}
	return next, nil
}

// Current returns the counter state without advancing it.
// A counter that was never touched reads as zero.
func (r *GormSequenceRepository) Current(ctx context.Context, siteID uuid.UUID, year int) (*folio.FolioSequence, error) {
	var model models.FolioSequenceModel
	if err := r.db.WithContext(ctx).
		Where("site_id = ? AND year = ?", siteID, year).
		First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return &folio.FolioSequence{SiteID: siteID, Year: year}, nil
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// Ensure GormSequenceRepository implements SequenceRepository
var _ folio.SequenceRepository = (*GormSequenceRepository)(nil)
