package collection

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/resitrack/backend/internal/domain/manifest"
	"github.com/resitrack/backend/internal/domain/shared"
)

// EventDetail is one collected-quantity line of a collection event
type EventDetail struct {
	CategoryCode string          `json:"category_code"`
	Kilograms    decimal.Decimal `json:"kilograms"`
}

// CollectionEvent records one pickup at a generator site. Its detail lines are
// the raw data period aggregation projects onto the residue catalog.
type CollectionEvent struct {
	shared.AuditedAggregateRoot
	SiteID    uuid.UUID     `json:"site_id"`
	EventDate time.Time     `json:"event_date"`
	Notes     string        `json:"notes"`
	Details   []EventDetail `json:"details"`
}

// NewCollectionEvent creates a collection event with its detail lines
func NewCollectionEvent(siteID uuid.UUID, eventDate time.Time, notes string, details []EventDetail, createdBy *uuid.UUID) (*CollectionEvent, error) {
	if siteID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_INPUT", "site ID is required")
	}
	if eventDate.IsZero() {
		return nil, shared.NewDomainError("INVALID_INPUT", "event date is required")
	}
	if len(details) == 0 {
		return nil, shared.NewDomainError("INVALID_INPUT", "at least one detail line is required")
	}

	seen := make(map[string]bool, len(details))
	for _, d := range details {
		if _, ok := manifest.CategoryByCode(d.CategoryCode); !ok {
			return nil, shared.NewDomainError("INVALID_INPUT", "unknown residue category "+d.CategoryCode)
		}
		if seen[d.CategoryCode] {
			return nil, shared.NewDomainError("INVALID_INPUT", "duplicate detail line for category "+d.CategoryCode)
		}
		seen[d.CategoryCode] = true
		if d.Kilograms.IsNegative() {
			return nil, shared.NewDomainError("INVALID_INPUT", "kilograms must not be negative")
		}
	}

	return &CollectionEvent{
		AuditedAggregateRoot: shared.NewAuditedAggregateRoot(createdBy),
		SiteID:               siteID,
		EventDate:            eventDate,
		Notes:                notes,
		Details:              details,
	}, nil
}

// TotalKilograms sums all detail lines
func (e *CollectionEvent) TotalKilograms() decimal.Decimal {
	total := decimal.Zero
	for _, d := range e.Details {
		total = total.Add(d.Kilograms)
	}
	return total
}
