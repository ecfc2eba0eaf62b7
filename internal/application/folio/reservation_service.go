package folio

import (
	"context"

	"github.com/google/uuid"

	"github.com/resitrack/backend/internal/domain/folio"
	"github.com/resitrack/backend/internal/domain/registry"
)

// ReservationService manages the manual folio reservation pool
type ReservationService struct {
	reservations folio.ReservationRepository
	sites        registry.SiteRepository
}

// NewReservationService creates a reservation service
func NewReservationService(reservations folio.ReservationRepository, sites registry.SiteRepository) *ReservationService {
	return &ReservationService{
		reservations: reservations,
		sites:        sites,
	}
}

// Reserve creates a manual serial reservation. The repository enforces the
// per-bucket quota and serial uniqueness inside one transaction.
func (s *ReservationService) Reserve(ctx context.Context, req ReserveFolioRequest) (*ReservationResponse, error) {
	if _, err := s.sites.FindByID(ctx, req.SiteID); err != nil {
		return nil, err
	}

	reservation, err := folio.NewFolioReservation(req.SerialNumber, req.SiteID, req.CreatedBy)
	if err != nil {
		return nil, err
	}

	if err := s.reservations.Save(ctx, reservation); err != nil {
		return nil, err
	}

	resp := ToReservationResponse(reservation)
	return &resp, nil
}

// ListAvailable returns unused reservations in a (site, month, year) bucket
func (s *ReservationService) ListAvailable(ctx context.Context, siteID uuid.UUID, month, year int) ([]ReservationResponse, error) {
	reservations, err := s.reservations.FindAvailable(ctx, siteID, month, year)
	if err != nil {
		return nil, err
	}
	return ToReservationResponses(reservations), nil
}

// Stats reports bucket occupancy and remaining quota
func (s *ReservationService) Stats(ctx context.Context, siteID uuid.UUID, month, year int) (*StatsResponse, error) {
	total, used, err := s.reservations.CountBucket(ctx, siteID, month, year)
	if err != nil {
		return nil, err
	}

	stats := folio.NewReservationStats(total, used)
	return &StatsResponse{
		SiteID:         siteID,
		Month:          month,
		Year:           year,
		Total:          stats.Total,
		Used:           stats.Used,
		Available:      stats.Available,
		Quota:          folio.ReservationQuota,
		QuotaRemaining: stats.QuotaRemaining,
	}, nil
}

// Delete removes an unused reservation. Reservations bound to a manifest are
// rejected with RESERVATION_IN_USE.
func (s *ReservationService) Delete(ctx context.Context, id uuid.UUID) error {
	reservation, err := s.reservations.FindByID(ctx, id)
	if err != nil {
		return err
	}
	if err := reservation.EnsureDeletable(); err != nil {
		return err
	}
	return s.reservations.Delete(ctx, id)
}
