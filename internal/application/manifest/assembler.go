package manifest

import (
	"context"
	"errors"
	"time"

	appfolio "github.com/resitrack/backend/internal/application/folio"
	"github.com/resitrack/backend/internal/domain/folio"
	"github.com/resitrack/backend/internal/domain/manifest"
	"github.com/resitrack/backend/internal/domain/registry"
	"github.com/resitrack/backend/internal/domain/shared"
)

// ManifestAssembler validates participants, freezes snapshots, aggregates the
// period residues and resolves the serial number. It produces an unsaved
// manifest plus the reservation serial the repository must consume atomically
// during creation (empty for automatically allocated serials).
type ManifestAssembler struct {
	sites        registry.SiteRepository
	drivers      registry.DriverRepository
	vehicles     registry.VehicleRepository
	destinations registry.DestinationRepository
	settings     registry.SettingRepository
	reservations folio.ReservationRepository
	aggregator   *PeriodAggregator
	allocator    *appfolio.SequenceAllocator
}

// NewManifestAssembler creates a manifest assembler
func NewManifestAssembler(
	sites registry.SiteRepository,
	drivers registry.DriverRepository,
	vehicles registry.VehicleRepository,
	destinations registry.DestinationRepository,
	settings registry.SettingRepository,
	reservations folio.ReservationRepository,
	aggregator *PeriodAggregator,
	allocator *appfolio.SequenceAllocator,
) *ManifestAssembler {
	return &ManifestAssembler{
		sites:        sites,
		drivers:      drivers,
		vehicles:     vehicles,
		destinations: destinations,
		settings:     settings,
		reservations: reservations,
		aggregator:   aggregator,
		allocator:    allocator,
	}
}

// Assemble builds an unsaved manifest from the request. The returned
// bindSerial is the reserved serial to consume during creation, or empty.
func (as *ManifestAssembler) Assemble(ctx context.Context, req CreateManifestRequest) (*manifest.Manifest, string, error) {
	if err := manifest.ValidatePeriod(req.PeriodStart, req.PeriodEnd); err != nil {
		return nil, "", err
	}

	site, err := as.sites.FindByID(ctx, req.GeneratorSiteID)
	if err != nil {
		return nil, "", lookupError(err, "generator site")
	}
	driver, err := as.drivers.FindByID(ctx, req.DriverID)
	if err != nil {
		return nil, "", lookupError(err, "driver")
	}
	vehicle, err := as.vehicles.FindByID(ctx, req.VehicleID)
	if err != nil {
		return nil, "", lookupError(err, "vehicle")
	}
	destination, err := as.destinations.FindByID(ctx, req.DestinationID)
	if err != nil {
		return nil, "", lookupError(err, "final destination")
	}

	// Only the transport side is activity-gated; sites and drivers may be
	// deactivated after the fact without blocking issuance for past periods.
	if !vehicle.Active {
		return nil, "", inactiveError("vehicle")
	}
	if !destination.Active {
		return nil, "", inactiveError("final destination")
	}

	issueDate := req.IssueDate
	if issueDate.IsZero() {
		issueDate = time.Now()
	}

	residues, err := as.aggregator.Aggregate(ctx, site.ID, req.PeriodStart, req.PeriodEnd)
	if err != nil {
		return nil, "", err
	}

	issuer, err := as.loadIssuer(ctx)
	if err != nil {
		return nil, "", err
	}

	serial, bindSerial, err := as.resolveSerial(ctx, req.ReservedSerial, site, issueDate)
	if err != nil {
		return nil, "", err
	}

	m, err := manifest.NewManifest(manifest.NewManifestParams{
		SerialNumber:    serial,
		GeneratorSiteID: site.ID,
		DriverID:        driver.ID,
		VehicleID:       vehicle.ID,
		DestinationID:   destination.ID,
		PeriodStart:     req.PeriodStart,
		PeriodEnd:       req.PeriodEnd,
		IssueDate:       issueDate,
		Residues:        residues,
		GeneratorSnapshot: manifest.PartySnapshot{
			Name:    site.Name,
			Address: addressOrFallback(site.Address()),
		},
		IssuerSnapshot: issuer,
		DriverName:     driver.Name,
		VehicleSnapshot: manifest.VehicleSnapshot{
			Plates: vehicle.Plates,
			Model:  vehicle.Model,
		},
		DestinationSnapshot: manifest.DestinationSnapshot{
			Name:              destination.Name,
			AuthorizationCode: destination.AuthorizationCode,
		},
		CreatedBy: req.CreatedBy,
	})
	if err != nil {
		return nil, "", err
	}

	return m, bindSerial, nil
}

// resolveSerial picks between a manual reservation and automatic allocation.
// The reservation check here is a fast-fail courtesy; the authoritative
// consume happens atomically inside the creation transaction.
func (as *ManifestAssembler) resolveSerial(ctx context.Context, reservedSerial string, site *registry.GeneratorSite, issueDate time.Time) (serial, bindSerial string, err error) {
	if reservedSerial == "" {
		serial, err = as.allocator.NextSerial(ctx, site, issueDate.Year())
		return serial, "", err
	}

	reservation, err := as.reservations.FindBySerial(ctx, reservedSerial)
	if err != nil {
		if errors.Is(err, shared.ErrNotFound) {
			return "", "", folio.ErrAlreadyUsed
		}
		return "", "", err
	}
	if reservation.Used {
		return "", "", folio.ErrAlreadyUsed
	}
	if reservation.SiteID != site.ID {
		return "", "", shared.NewDomainError("INVALID_INPUT", "reservation belongs to a different site")
	}

	return reservation.SerialNumber, reservation.SerialNumber, nil
}

// loadIssuer reads the issuing company identity from settings, substituting
// placeholders for keys that were never configured.
func (as *ManifestAssembler) loadIssuer(ctx context.Context) (manifest.IssuerSnapshot, error) {
	read := func(key string) (string, error) {
		setting, err := as.settings.Get(ctx, key)
		if err != nil {
			if errors.Is(err, shared.ErrNotFound) {
				return registry.SettingOrPlaceholder(key, ""), nil
			}
			return "", err
		}
		return registry.SettingOrPlaceholder(key, setting.Value), nil
	}

	name, err := read(registry.SettingIssuerName)
	if err != nil {
		return manifest.IssuerSnapshot{}, err
	}
	address, err := read(registry.SettingIssuerAddress)
	if err != nil {
		return manifest.IssuerSnapshot{}, err
	}
	registryNumber, err := read(registry.SettingIssuerRegistry)
	if err != nil {
		return manifest.IssuerSnapshot{}, err
	}

	return manifest.IssuerSnapshot{
		Name:           name,
		Address:        address,
		RegistryNumber: registryNumber,
	}, nil
}

func addressOrFallback(address string) string {
	if address == "" {
		return manifest.AddressFallback
	}
	return address
}

func inactiveError(entity string) *shared.DomainError {
	return shared.NewDomainError("INACTIVE_ENTITY", "Referenced "+entity+" is inactive")
}

// lookupError names the entity behind a failed participant lookup so callers
// can tell which reference was dangling. Storage errors pass through untouched.
func lookupError(err error, entity string) error {
	if errors.Is(err, shared.ErrNotFound) {
		return shared.NewDomainError("NOT_FOUND", "Referenced "+entity+" not found")
	}
	return err
}
