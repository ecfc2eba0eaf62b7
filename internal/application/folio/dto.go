package folio

import (
	"time"

	"github.com/google/uuid"

	"github.com/resitrack/backend/internal/domain/folio"
)

// ReserveFolioRequest asks for a manual serial reservation
type ReserveFolioRequest struct {
	SerialNumber string     `json:"serial_number"`
	SiteID       uuid.UUID  `json:"site_id"`
	CreatedBy    *uuid.UUID `json:"created_by,omitempty"`
}

// ReservationResponse is the API view of a folio reservation
type ReservationResponse struct {
	ID              uuid.UUID  `json:"id"`
	SerialNumber    string     `json:"serial_number"`
	SiteID          uuid.UUID  `json:"site_id"`
	Month           int        `json:"month"`
	Year            int        `json:"year"`
	Used            bool       `json:"used"`
	BoundManifestID *uuid.UUID `json:"bound_manifest_id,omitempty"`
	UsedAt          *time.Time `json:"used_at,omitempty"`
	CreatedAt       time.Time  `json:"created_at"`
}

// StatsResponse summarizes a reservation bucket. Quota is the fixed per-bucket
// cap so clients never hardcode it.
type StatsResponse struct {
	SiteID         uuid.UUID `json:"site_id"`
	Month          int       `json:"month"`
	Year           int       `json:"year"`
	Total          int64     `json:"total"`
	Used           int64     `json:"used"`
	Available      int64     `json:"available"`
	Quota          int64     `json:"quota"`
	QuotaRemaining int64     `json:"quota_remaining"`
}

// SequenceResponse is the API view of an automatic serial counter
type SequenceResponse struct {
	SiteID    uuid.UUID `json:"site_id"`
	Year      int       `json:"year"`
	LastValue int64     `json:"last_value"`
}

// ToSequenceResponse maps a domain sequence to its API view
func ToSequenceResponse(s *folio.FolioSequence) SequenceResponse {
	return SequenceResponse{
		SiteID:    s.SiteID,
		Year:      s.Year,
		LastValue: s.LastValue,
	}
}

// ToReservationResponse maps a domain reservation to its API view
func ToReservationResponse(r *folio.FolioReservation) ReservationResponse {
	return ReservationResponse{
		ID:              r.ID,
		SerialNumber:    r.SerialNumber,
		SiteID:          r.SiteID,
		Month:           r.Month,
		Year:            r.Year,
		Used:            r.Used,
		BoundManifestID: r.BoundManifestID,
		UsedAt:          r.UsedAt,
		CreatedAt:       r.CreatedAt,
	}
}

// ToReservationResponses maps a slice of reservations
func ToReservationResponses(rs []*folio.FolioReservation) []ReservationResponse {
	out := make([]ReservationResponse, len(rs))
	for i, r := range rs {
		out[i] = ToReservationResponse(r)
	}
	return out
}
