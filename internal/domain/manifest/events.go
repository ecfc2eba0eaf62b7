package manifest

import (
	"github.com/google/uuid"

	"github.com/resitrack/backend/internal/domain/shared"
)

// Event type names
const (
	EventManifestIssued     = "manifest.issued"
	EventManifestPDFUpdated = "manifest.pdf_updated"
	EventManifestDeleted    = "manifest.deleted"
)

// ManifestIssuedEvent is emitted when a manifest is created
type ManifestIssuedEvent struct {
	shared.BaseDomainEvent
	SerialNumber    string    `json:"serial_number"`
	GeneratorSiteID uuid.UUID `json:"generator_site_id"`
}

// NewManifestIssuedEvent creates a ManifestIssuedEvent
func NewManifestIssuedEvent(manifestID uuid.UUID, serial string, siteID uuid.UUID) ManifestIssuedEvent {
	return ManifestIssuedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventManifestIssued, manifestID),
		SerialNumber:    serial,
		GeneratorSiteID: siteID,
	}
}

// ManifestPDFUpdatedEvent is emitted when the PDF bookkeeping changes
type ManifestPDFUpdatedEvent struct {
	shared.BaseDomainEvent
	SerialNumber string `json:"serial_number"`
	PDFGenerated bool   `json:"pdf_generated"`
}

// NewManifestPDFUpdatedEvent creates a ManifestPDFUpdatedEvent
func NewManifestPDFUpdatedEvent(manifestID uuid.UUID, serial string, generated bool) ManifestPDFUpdatedEvent {
	return ManifestPDFUpdatedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventManifestPDFUpdated, manifestID),
		SerialNumber:    serial,
		PDFGenerated:    generated,
	}
}

// ManifestDeletedEvent is emitted when a manifest is removed
type ManifestDeletedEvent struct {
	shared.BaseDomainEvent
	SerialNumber string `json:"serial_number"`
}

// NewManifestDeletedEvent creates a ManifestDeletedEvent
func NewManifestDeletedEvent(manifestID uuid.UUID, serial string) ManifestDeletedEvent {
	return ManifestDeletedEvent{
		BaseDomainEvent: shared.NewBaseDomainEvent(EventManifestDeleted, manifestID),
		SerialNumber:    serial,
	}
}
