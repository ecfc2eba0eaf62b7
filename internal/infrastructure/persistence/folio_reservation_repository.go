package persistence

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/resitrack/backend/internal/domain/folio"
	"github.com/resitrack/backend/internal/domain/shared"
	"github.com/resitrack/backend/internal/infrastructure/persistence/models"
)

// GormReservationRepository implements folio.ReservationRepository using GORM
type GormReservationRepository struct {
	db *gorm.DB
}

// NewGormReservationRepository creates a new GormReservationRepository
func NewGormReservationRepository(db *gorm.DB) *GormReservationRepository {
	return &GormReservationRepository{db: db}
}

// Save inserts a new reservation. The bucket count check and the insert share
// one transaction, but at READ COMMITTED two concurrent saves can still both
// pass the count; the quota is a best-effort cap, only serial uniqueness is
// absolute via the unique index on serial_number.
func (r *GormReservationRepository) Save(ctx context.Context, reservation *folio.FolioReservation) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var total int64
		if err := tx.Model(&models.FolioReservationModel{}).
			Where("site_id = ? AND month = ? AND year = ?",
				reservation.SiteID, reservation.Month, reservation.Year).
			Count(&total).Error; err != nil {
			return err
		}
		if total >= folio.ReservationQuota {
			return folio.ErrQuotaExceeded
		}

		model := models.FolioReservationModelFromDomain(reservation)
		if err := tx.Create(model).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return folio.ErrDuplicateSerial
			}
			return err
		}
		return nil
	})
}

// FindByID finds a reservation by its ID
func (r *GormReservationRepository) FindByID(ctx context.Context, id uuid.UUID) (*folio.FolioReservation, error) {
	var model models.FolioReservationModel
	if err := r.db.WithContext(ctx).First(&model, "id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindBySerial finds a reservation by its serial number
func (r *GormReservationRepository) FindBySerial(ctx context.Context, serial string) (*folio.FolioReservation, error) {
	var model models.FolioReservationModel
	if err := r.db.WithContext(ctx).
		Where("serial_number = ?", serial).
		First(&model).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, shared.ErrNotFound
		}
		return nil, err
	}
	return model.ToDomain(), nil
}

// FindAvailable lists unconsumed reservations in a (site, month, year) bucket
func (r *GormReservationRepository) FindAvailable(ctx context.Context, siteID uuid.UUID, month, year int) ([]*folio.FolioReservation, error) {
	var reservationModels []models.FolioReservationModel
	if err := r.db.WithContext(ctx).
		Where("site_id = ? AND month = ? AND year = ? AND used = ?", siteID, month, year, false).
		Order("serial_number ASC").
		Find(&reservationModels).Error; err != nil {
		return nil, err
	}

	reservations := make([]*folio.FolioReservation, len(reservationModels))
	for i := range reservationModels {
		reservations[i] = reservationModels[i].ToDomain()
	}
	return reservations, nil
}

// CountBucket returns the total and consumed reservation counts for a bucket
func (r *GormReservationRepository) CountBucket(ctx context.Context, siteID uuid.UUID, month, year int) (int64, int64, error) {
	var total int64
	if err := r.db.WithContext(ctx).
		Model(&models.FolioReservationModel{}).
		Where("site_id = ? AND month = ? AND year = ?", siteID, month, year).
		Count(&total).Error; err != nil {
		return 0, 0, err
	}

	var used int64
	if err := r.db.WithContext(ctx).
		Model(&models.FolioReservationModel{}).
		Where("site_id = ? AND month = ? AND year = ? AND used = ?", siteID, month, year, true).
		Count(&used).Error; err != nil {
		return 0, 0, err
	}

	return total, used, nil
}

// Bind consumes an unused reservation with a single conditional update.
// Zero affected rows means the reservation is missing or already consumed;
// the condition in the WHERE clause is what makes concurrent binds safe.
func (r *GormReservationRepository) Bind(ctx context.Context, serial string, manifestID uuid.UUID) error {
	now := time.Now()
	result := r.db.WithContext(ctx).
		Model(&models.FolioReservationModel{}).
		Where("serial_number = ? AND used = ?", serial, false).
		Updates(map[string]any{
			"used":              true,
			"bound_manifest_id": manifestID,
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
}

// ReleaseByManifest returns any reservation bound to the manifest to the pool
// and reports how many rows were released.
func (r *GormReservationRepository) ReleaseByManifest(ctx context.Context, manifestID uuid.UUID) (int64, error) {
	result := r.db.WithContext(ctx).
		Model(&models.FolioReservationModel{}).
		Where("bound_manifest_id = ?", manifestID).
		Updates(map[string]any{
			"used":              false,
			"bound_manifest_id": nil,
			"used_at":           nil,
			"updated_at":        time.Now(),
		})
	if result.Error != nil {
		return 0, result.Error
	}
	return result.RowsAffected, nil
}

// Delete removes a reservation row
func (r *GormReservationRepository) Delete(ctx context.Context, id uuid.UUID) error {
	result := r.db.WithContext(ctx).Delete(&models.FolioReservationModel{}, "id = ?", id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}
	return nil
}

// Ensure GormReservationRepository implements ReservationRepository
var _ folio.ReservationRepository = (*GormReservationRepository)(nil)
