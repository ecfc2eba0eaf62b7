package registry

import (
	"context"

	"github.com/google/uuid"

	"github.com/resitrack/backend/internal/domain/registry"
	"github.com/resitrack/backend/internal/domain/shared"
)

// SiteService manages generator sites
type SiteService struct {
	sites registry.SiteRepository
}

// NewSiteService creates a site service
func NewSiteService(sites registry.SiteRepository) *SiteService {
	return &SiteService{sites: sites}
}

// Create registers a new generator site
func (s *SiteService) Create(ctx context.Context, req CreateSiteRequest) (*SiteResponse, error) {
	site, err := registry.NewGeneratorSite(req.Name, req.SerialPrefix, req.Street, req.City, req.State, req.PostalCode, req.ContactName, req.ContactEmail, req.CreatedBy)
	if err != nil {
		return nil, err
	}
	if err := s.sites.Save(ctx, site); err != nil {
		return nil, err
	}
	resp := ToSiteResponse(site)
	return &resp, nil
}

// GetByID fetches one site
func (s *SiteService) GetByID(ctx context.Context, id uuid.UUID) (*SiteResponse, error) {
	site, err := s.sites.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := ToSiteResponse(site)
	return &resp, nil
}

// List returns a page of sites
func (s *SiteService) List(ctx context.Context, filter shared.Filter) (shared.Paginated[SiteResponse], error) {
	page, err := s.sites.List(ctx, filter)
	if err != nil {
		return shared.Paginated[SiteResponse]{}, err
	}
	items := make([]SiteResponse, len(page.Items))
	for i, site := range page.Items {
		items[i] = ToSiteResponse(site)
	}
	return shared.NewPaginated(items, page.Total, page.Page, page.PageSize), nil
}

// Update changes the mutable site fields and the active flag
func (s *SiteService) Update(ctx context.Context, id uuid.UUID, req UpdateSiteRequest) (*SiteResponse, error) {
	site, err := s.sites.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := site.Update(req.Name, req.Street, req.City, req.State, req.PostalCode, req.ContactName, req.ContactEmail); err != nil {
		return nil, err
	}
	if req.Active != nil {
		if *req.Active {
			site.Activate()
		} else {
			site.Deactivate()
		}
	}
	if err := s.sites.Update(ctx, site); err != nil {
		return nil, err
	}
	resp := ToSiteResponse(site)
	return &resp, nil
}

// Delete removes a site
func (s *SiteService) Delete(ctx context.Context, id uuid.UUID) error {
	if _, err := s.sites.FindByID(ctx, id); err != nil {
		return err
	}
	return s.sites.Delete(ctx, id)
}
