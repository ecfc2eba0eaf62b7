package collection

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/resitrack/backend/internal/domain/collection"
)

// EventDetailInput is one detail line of a recorded collection event
type EventDetailInput struct {
	CategoryCode string          `json:"category_code"`
	Kilograms    decimal.Decimal `json:"kilograms"`
}

// RecordEventRequest records a pickup at a generator site
type RecordEventRequest struct {
	SiteID    uuid.UUID          `json:"site_id"`
	EventDate time.Time          `json:"event_date"`
	Notes     string             `json:"notes"`
	Details   []EventDetailInput `json:"details"`
	CreatedBy *uuid.UUID         `json:"created_by,omitempty"`
}

// EventDetailResponse is the API view of one detail line
type EventDetailResponse struct {
	CategoryCode string          `json:"category_code"`
	Kilograms    decimal.Decimal `json:"kilograms"`
}

// EventResponse is the API view of a collection event
type EventResponse struct {
	ID             uuid.UUID             `json:"id"`
	SiteID         uuid.UUID             `json:"site_id"`
	EventDate      time.Time             `json:"event_date"`
	Notes          string                `json:"notes,omitempty"`
	Details        []EventDetailResponse `json:"details"`
	TotalKilograms decimal.Decimal       `json:"total_kilograms"`
	CreatedAt      time.Time             `json:"created_at"`
}

// ToEventResponse maps a domain event to its API view
func ToEventResponse(e *collection.CollectionEvent) EventResponse {
	details := make([]EventDetailResponse, len(e.Details))
	for i, d := range e.Details {
		details[i] = EventDetailResponse{CategoryCode: d.CategoryCode, Kilograms: d.Kilograms}
	}
	return EventResponse{
		ID:             e.ID,
		SiteID:         e.SiteID,
		EventDate:      e.EventDate,
		Notes:          e.Notes,
		Details:        details,
		TotalKilograms: e.TotalKilograms(),
		CreatedAt:      e.CreatedAt,
	}
}
