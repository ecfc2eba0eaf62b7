package manifest

import (
	"context"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/resitrack/backend/internal/domain/manifest"
	"github.com/resitrack/backend/internal/domain/shared"
)

// ManifestService drives the manifest lifecycle: create, read, list,
// pdf-bookkeeping update and delete.
type ManifestService struct {
	assembler *ManifestAssembler
	manifests manifest.Repository
	logger    *zap.Logger
}

// NewManifestService creates a manifest service
func NewManifestService(assembler *ManifestAssembler, manifests manifest.Repository, logger *zap.Logger) *ManifestService {
	return &ManifestService{
		assembler: assembler,
		manifests: manifests,
		logger:    logger,
	}
}

// Create assembles and persists a manifest. Persisting and consuming the
// reservation happen in one transaction, so a lost bind race undoes the
// whole creation.
func (s *ManifestService) Create(ctx context.Context, req CreateManifestRequest) (*ManifestResponse, error) {
	m, bindSerial, err := s.assembler.Assemble(ctx, req)
	if err != nil {
		return nil, err
	}

	if err := s.manifests.Create(ctx, m, bindSerial); err != nil {
		return nil, err
	}

	s.logger.Info("manifest issued",
		zap.String("serial", m.SerialNumber),
		zap.String("site_id", m.GeneratorSiteID.String()),
		zap.Bool("reserved_serial", bindSerial != ""))

	resp := ToManifestResponse(m)
	return &resp, nil
}

// GetByID fetches one manifest
func (s *ManifestService) GetByID(ctx context.Context, id uuid.UUID) (*ManifestResponse, error) {
	m, err := s.manifests.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := ToManifestResponse(m)
	return &resp, nil
}

// GetBySerial fetches one manifest by its serial number
func (s *ManifestService) GetBySerial(ctx context.Context, serial string) (*ManifestResponse, error) {
	m, err := s.manifests.FindBySerial(ctx, serial)
	if err != nil {
		return nil, err
	}
	resp := ToManifestResponse(m)
	return &resp, nil
}

// List returns a page of manifests; filter supports site_id and serial
func (s *ManifestService) List(ctx context.Context, filter shared.Filter) (shared.Paginated[ManifestResponse], error) {
	page, err := s.manifests.List(ctx, filter)
	if err != nil {
		return shared.Paginated[ManifestResponse]{}, err
	}

	items := make([]ManifestResponse, len(page.Items))
	for i, m := range page.Items {
		items[i] = ToManifestResponse(m)
	}
	return shared.NewPaginated(items, page.Total, page.Page, page.PageSize), nil
}

// ListBySite returns a page of manifests for one generator site
func (s *ManifestService) ListBySite(ctx context.Context, siteID uuid.UUID, filter shared.Filter) (shared.Paginated[ManifestResponse], error) {
	if filter.Filters == nil {
		filter.Filters = make(map[string]string)
	}
	filter.Filters["site_id"] = siteID.String()
	return s.List(ctx, filter)
}

// UpdatePDF updates only the PDF bookkeeping fields
func (s *ManifestService) UpdatePDF(ctx context.Context, id uuid.UUID, req UpdatePDFRequest) (*ManifestResponse, error) {
	m, err := s.manifests.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	m.UpdatePDF(req.PDFGenerated, req.PDFPath)
	if err := s.manifests.UpdatePDF(ctx, id, req.PDFGenerated, req.PDFPath); err != nil {
		return nil, err
	}

	resp := ToManifestResponse(m)
	return &resp, nil
}

// Delete removes a manifest. The repository releases any bound reservation
// before the row goes, inside one transaction, so the serial returns to the
// pool even if the process dies mid-delete.
func (s *ManifestService) Delete(ctx context.Context, id uuid.UUID) error {
	m, err := s.manifests.FindByID(ctx, id)
	if err != nil {
		return err
	}

	if err := s.manifests.Delete(ctx, id); err != nil {
		return err
	}

	s.logger.Info("manifest deleted",
		zap.String("serial", m.SerialNumber),
		zap.String("manifest_id", id.String()))

	return nil
}
