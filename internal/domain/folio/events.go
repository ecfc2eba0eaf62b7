package folio

import (
	"github.com/google/uuid"

	"github.com/resitrack/backend/internal/domain/shared"
)

// Event type names
const (
	EventFolioReserved = "folio.reserved"
	EventFolioBound    = "folio.bound"
	EventFolioReleased = "folio.released"
)

// FolioReservedEvent is emitted when a serial is manually reserved
type FolioReservedEvent struct {
	shared.BaseDomainEvent
	SerialNumber string    `json:"serial_number"`
	SiteID       uuid.UUID `json:"site_id"`
}

// NewFolioReservedEvent creates a FolioReservedEvent
func NewFolioReservedEvent(reservationID uuid.UUID, serial string, siteID uuid.UUID) FolioReservedEvent {
	return FolioReservedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventFolioReserved, reservationID),
		SerialNumber:    serial,
		SiteID:          siteID,
	}
}

// FolioBoundEvent is emitted when a reservation is consumed by a manifest
type FolioBoundEvent struct {
	shared.BaseDomainEvent
	SerialNumber string    `json:"serial_number"`
	ManifestID   uuid.UUID `json:"manifest_id"`
}

// NewFolioBoundEvent creates a FolioBoundEvent
func NewFolioBoundEvent(reservationID uuid.UUID, serial string, manifestID uuid.UUID) FolioBoundEvent {
	return FolioBoundEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventFolioBound, reservationID),
		SerialNumber:    serial,
		ManifestID:      manifestID,
	}
}

// FolioReleasedEvent is emitted when a bound reservation returns to the pool
type FolioReleasedEvent struct {
	shared.BaseDomainEvent
	SerialNumber string `json:"serial_number"`
}

// NewFolioReleasedEvent creates a FolioReleasedEvent
func NewFolioReleasedEvent(reservationID uuid.UUID, serial string) FolioReleasedEvent {
	return FolioReleasedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventFolioReleased, reservationID),
		SerialNumber:    serial,
	}
}
