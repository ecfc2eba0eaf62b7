package collection

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/resitrack/backend/internal/domain/collection"
	"github.com/resitrack/backend/internal/domain/registry"
	"github.com/resitrack/backend/internal/domain/shared"
)

// EventService records and queries collection events
type EventService struct {
	events collection.EventRepository
	sites  registry.SiteRepository
}

// NewEventService creates a collection event service
func NewEventService(events collection.EventRepository, sites registry.SiteRepository) *EventService {
	return &EventService{
		events: events,
		sites:  sites,
	}
}

// Record stores a new collection event
func (s *EventService) Record(ctx context.Context, req RecordEventRequest) (*EventResponse, error) {
	if _, err := s.sites.FindByID(ctx, req.SiteID); err != nil {
		return nil, err
	}

	details := make([]collection.EventDetail, len(req.Details))
	for i, d := range req.Details {
		details[i] = collection.EventDetail{CategoryCode: d.CategoryCode, Kilograms: d.Kilograms}
	}

	event, err := collection.NewCollectionEvent(req.SiteID, req.EventDate, req.Notes, details, req.CreatedBy)
	if err != nil {
		return nil, err
	}

	if err := s.events.Save(ctx, event); err != nil {
		return nil, err
	}

	resp := ToEventResponse(event)
	return &resp, nil
}

// GetByID fetches one collection event
func (s *EventService) GetByID(ctx context.Context, id uuid.UUID) (*EventResponse, error) {
	event, err := s.events.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := ToEventResponse(event)
	return &resp, nil
}

// ListBySite returns a page of events for one site over [from, to]
func (s *EventService) ListBySite(ctx context.Context, siteID uuid.UUID, from, to time.Time, filter shared.Filter) (shared.Paginated[EventResponse], error) {
	page, err := s.events.ListBySite(ctx, siteID, from, to, filter)
	if err != nil {
		return shared.Paginated[EventResponse]{}, err
	}

	items := make([]EventResponse, len(page.Items))
	for i, e := range page.Items {
		items[i] = ToEventResponse(e)
	}
	return shared.NewPaginated(items, page.Total, page.Page, page.PageSize), nil
}

// Delete removes a collection event
func (s *EventService) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.events.FindByID(ctx, id); err != nil {
		return err
	}
	return s.events.Delete(ctx, id)
}
