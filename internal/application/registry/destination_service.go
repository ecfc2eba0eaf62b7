package registry

import (
	"context"

	"github.com/google/uuid"

	"github.com/resitrack/backend/internal/domain/registry"
	"github.com/resitrack/backend/internal/domain/shared"
)

// DestinationService manages final destinations
type DestinationService struct {
	destinations registry.DestinationRepository
}

// NewDestinationService creates a destination service
func NewDestinationService(destinations registry.DestinationRepository) *DestinationService {
	return &DestinationService{destinations: destinations}
}

// Create registers a new final destination
func (s *DestinationService) Create(ctx context.Context, req CreateDestinationRequest) (*DestinationResponse, error) {
	destination, err := registry.NewFinalDestination(req.Name, req.AuthorizationCode, req.Street, req.City, req.State, req.PostalCode, req.CreatedBy)
	if err != nil {
		return nil, err
	}
	if err := s.destinations.Save(ctx, destination); err != nil {
		return nil, err
	}
	resp := ToDestinationResponse(destination)
	return &resp, nil
}

// GetByID fetches one destination
func (s *DestinationService) GetByID(ctx context.Context, id uuid.UUID) (*DestinationResponse, error) {
	destination, err := s.destinations.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := ToDestinationResponse(destination)
	return &resp, nil
}

// List returns a page of destinations
func (s *DestinationService) List(ctx context.Context, filter shared.Filter) (shared.Paginated[DestinationResponse], error) {
	page, err := s.destinations.List(ctx, filter)
	if err != nil {
		return shared.Paginated[DestinationResponse]{}, err
	}
	items := make([]DestinationResponse, len(page.Items))
	for i, d := range page.Items {
		items[i] = ToDestinationResponse(d)
	}
	return shared.NewPaginated(items, page.Total, page.Page, page.PageSize), nil
}

// Update changes the destination fields and the active flag
func (s *DestinationService) Update(ctx context.Context, id uuid.UUID, req UpdateDestinationRequest) (*DestinationResponse, error) {
	destination, err := s.destinations.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := destination.Update(req.Name, req.AuthorizationCode, req.Street, req.City, req.State, req.PostalCode); err != nil {
		return nil, err
	}
	if req.Active != nil {
		if *req.Active {
			destination.Activate()
		} else {
			destination.Deactivate()
		}
	}
	if err := s.destinations.Update(ctx, destination); err != nil {
		return nil, err
	}
	resp := ToDestinationResponse(destination)
	return &resp, nil
}

// Delete removes a destination
func (s *DestinationService) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.destinations.FindByID(ctx, id); err != nil {
		return err
	}
	return s.destinations.Delete(ctx, id)
}
