package folio

import (
	"time"

	"github.com/google/uuid"

	"github.com/resitrack/backend/internal/domain/shared"
)

// Folio-specific domain errors
var (
	ErrQuotaExceeded    = shared.NewDomainError("QUOTA_EXCEEDED", "Reservation quota exhausted for this site and period")
	ErrAlreadyUsed      = shared.NewDomainError("ALREADY_USED", "Folio reservation is missing or already consumed")
	ErrReservationInUse = shared.NewDomainError("RESERVATION_IN_USE", "Folio reservation is bound to a manifest")
	ErrDuplicateSerial  = shared.NewDomainError("DUPLICATE_SERIAL", "Serial number is already taken")
	ErrAllocationFailed = shared.NewDomainError("ALLOCATION_FAILED", "Could not allocate the next folio sequence value")
)

// FolioReservation is a manually pre-reserved manifest serial number.
// The serial is unique system-wide and can be consumed by exactly one manifest.
type FolioReservation struct {
	shared.AuditedAggregateRoot
	SerialNumber    string     `json:"serial_number"`
	SiteID          uuid.UUID  `json:"site_id"`
	Month           int        `json:"month"`
	Year            int        `json:"year"`
	Used            bool       `json:"used"`
	BoundManifestID *uuid.UUID `json:"bound_manifest_id,omitempty"`
	UsedAt          *time.Time `json:"used_at,omitempty"`
}

// NewFolioReservation creates a reservation for a well-formed serial.
// The quota bucket year is taken from the serial's embedded year.
func NewFolioReservation(rawSerial string, siteID uuid.UUID, createdBy *uuid.UUID) (*FolioReservation, error) {
	serial, err := ParseSerialNumber(rawSerial)
	if err != nil {
		return nil, err
	}

	if siteID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_INPUT", "site ID is required")
	}

	r := &FolioReservation{
		AuditedAggregateRoot: shared.NewAuditedAggregateRoot(createdBy),
		SerialNumber:         serial.String(),
		SiteID:               siteID,
		Month:                QuotaBucketMonth,
		Year:                 serial.Year,
	}
	r.AddDomainEvent(NewFolioReservedEvent(r.ID, r.SerialNumber, r.SiteID))

	return r, nil
}

// Bind consumes the reservation for the given manifest.
// Persistence enforces the same transition atomically; this method keeps the
// in-memory aggregate consistent with it.
func (r *FolioReservation) Bind(manifestID uuid.UUID) error {
	if r.Used {
		return ErrAlreadyUsed
	}
	now := time.Now()
	r.Used = true
	r.BoundManifestID = &manifestID
	r.UsedAt = &now
	r.Touch()
	r.AddDomainEvent(NewFolioBoundEvent(r.ID, r.SerialNumber, manifestID))
	return nil
}

// Release returns a consumed reservation to the available pool
func (r *FolioReservation) Release() {
	if !r.Used {
		return
	}
	r.Used = false
	r.BoundManifestID = nil
	r.UsedAt = nil
	r.Touch()
	r.AddDomainEvent(NewFolioReleasedEvent(r.ID, r.SerialNumber))
}

// EnsureDeletable rejects deletion of reservations bound to a manifest
func (r *FolioReservation) EnsureDeletable() error {
	if r.Used {
		return ErrReservationInUse
	}
	return nil
}

// ReservationStats summarizes a (site, month, year) reservation bucket
type ReservationStats struct {
	Total          int64 `json:"total"`
	Used           int64 `json:"used"`
	Available      int64 `json:"available"`
	QuotaRemaining int64 `json:"quota_remaining"`
}

// NewReservationStats derives the available and remaining-quota counts
func NewReservationStats(total, used int64) ReservationStats {
	remaining := int64(ReservationQuota) - total
	if remaining < 0 {
		remaining = 0
	}
	return ReservationStats{
		Total:          total,
		Used:           used,
		Available:      total - used,
		QuotaRemaining: remaining,
	}
}
