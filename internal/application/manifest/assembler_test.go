package manifest

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	appfolio "github.com/resitrack/backend/internal/application/folio"
	"github.com/resitrack/backend/internal/domain/folio"
	"github.com/resitrack/backend/internal/domain/manifest"
	"github.com/resitrack/backend/internal/domain/registry"
	"github.com/resitrack/backend/internal/domain/shared"
)

type assemblerFixture struct {
	sites        *MockSiteRepository
	drivers      *MockDriverRepository
	vehicles     *MockVehicleRepository
	destinations *MockDestinationRepository
	settings     *MockSettingRepository
	reservations *MockReservationRepository
	events       *MockEventRepository
	sequences    *MockSequenceRepository
	assembler    *ManifestAssembler

	site        *registry.GeneratorSite
	driver      *registry.CollectionDriver
	vehicle     *registry.Vehicle
	destination *registry.FinalDestination
}

func newAssemblerFixture(t *testing.T) *assemblerFixture {
	t.Helper()

	f := &assemblerFixture{
		sites:        new(MockSiteRepository),
		drivers:      new(MockDriverRepository),
		vehicles:     new(MockVehicleRepository),
		destinations: new(MockDestinationRepository),
		settings:     new(MockSettingRepository),
		reservations: new(MockReservationRepository),
		events:       new(MockEventRepository),
		sequences:    new(MockSequenceRepository),
	}

	var err error
	f.site, err = registry.NewGeneratorSite("Plaza Central", "CDMX", "Av. Reforma 100", "CDMX", "CDMX", "06600", "", "", nil)
	require.NoError(t, err)
	f.driver, err = registry.NewCollectionDriver("J. Morales", "LIC-8841", nil)
	require.NoError(t, err)
	f.vehicle, err = registry.NewVehicle("ABC-123-D", "Kenworth T380", decimal.NewFromInt(8000), nil)
	require.NoError(t, err)
	f.destination, err = registry.NewFinalDestination("Recicladora Norte", "DST-009", "Km 12 Carr. Norte", "Tultitlán", "MEX", "54900", nil)
	require.NoError(t, err)

	aggregator := NewPeriodAggregator(f.events)
	allocator := appfolio.NewSequenceAllocator(f.sequences, zap.NewNop())
	f.assembler = NewManifestAssembler(f.sites, f.drivers, f.vehicles, f.destinations, f.settings, f.reservations, aggregator, allocator)

	return f
}

func (f *assemblerFixture) stubParticipants(ctx context.Context) {
	f.sites.On("FindByID", ctx, f.site.ID).Return(f.site, nil)
	f.drivers.On("FindByID", ctx, f.driver.ID).Return(f.driver, nil)
	f.vehicles.On("FindByID", ctx, f.vehicle.ID).Return(f.vehicle, nil)
	f.destinations.On("FindByID", ctx, f.destination.ID).Return(f.destination, nil)
}

func (f *assemblerFixture) stubIssuerSettings(ctx context.Context) {
	f.settings.On("Get", ctx, registry.SettingIssuerName).Return(&registry.SystemSetting{Key: registry.SettingIssuerName, Value: "ResiTrack S.A. de C.V."}, nil)
	f.settings.On("Get", ctx, registry.SettingIssuerAddress).Return(&registry.SystemSetting{Key: registry.SettingIssuerAddress, Value: "Calle 5 No. 22"}, nil)
	f.settings.On("Get", ctx, registry.SettingIssuerRegistry).Return(&registry.SystemSetting{Key: registry.SettingIssuerRegistry, Value: "AMB-2020-117"}, nil)
}

func (f *assemblerFixture) request() CreateManifestRequest {
	return CreateManifestRequest{
		GeneratorSiteID: f.site.ID,
		DriverID:        f.driver.ID,
		VehicleID:       f.vehicle.ID,
		DestinationID:   f.destination.ID,
		PeriodStart:     time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC),
		PeriodEnd:       time.Date(2026, 3, 31, 0, 0, 0, 0, time.UTC),
		IssueDate:       time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC),
	}
}

func TestAssembleAutomaticSerial(t *testing.T) {
	ctx := context.Background()
	f := newAssemblerFixture(t)
	req := f.request()

	f.stubParticipants(ctx)
	f.stubIssuerSettings(ctx)
	f.events.On("SumByCategory", ctx, f.site.ID, req.PeriodStart, req.PeriodEnd).Return(map[string]decimal.Decimal{
		manifest.CategoryCardboard: decimal.NewFromInt(120),
	}, nil)
	f.sequences.On("Next", ctx, f.site.ID, 2026).Return(int64(43), nil)

	m, bindSerial, err := f.assembler.Assemble(ctx, req)
	require.NoError(t, err)
	assert.Empty(t, bindSerial)
	assert.Equal(t, "CDMX-043-2026", m.SerialNumber)
	assert.Equal(t, "Plaza Central", m.GeneratorSnapshot.Name)
	assert.Equal(t, "Av. Reforma 100, CDMX, CDMX, 06600", m.GeneratorSnapshot.Address)
	assert.Equal(t, "ResiTrack S.A. de C.V.", m.IssuerSnapshot.Name)
	assert.Equal(t, "J. Morales", m.DriverName)
	assert.Equal(t, "ABC-123-D", m.VehicleSnapshot.Plates)
	assert.Equal(t, "DST-009", m.DestinationSnapshot.AuthorizationCode)
	assert.True(t, m.Residues.TotalKilograms().Equal(decimal.NewFromInt(120)))

	// manual pool untouched on the automatic path
	f.reservations.AssertNotCalled(t, "FindBySerial", mock.Anything, mock.Anything)
}

func TestAssembleReservedSerial(t *testing.T) {
	ctx := context.Background()
	f := newAssemblerFixture(t)
	req := f.request()
	req.ReservedSerial = "CDMX-042-2026"

	reservation, err := folio.NewFolioReservation("CDMX-042-2026", f.site.ID, nil)
	require.NoError(t, err)

	f.stubParticipants(ctx)
	f.stubIssuerSettings(ctx)
	f.events.On("SumByCategory", ctx, f.site.ID, req.PeriodStart, req.PeriodEnd).Return(map[string]decimal.Decimal{}, nil)
	f.reservations.On("FindBySerial", ctx, "CDMX-042-2026").Return(reservation, nil)

	m, bindSerial, err := f.assembler.Assemble(ctx, req)
	require.NoError(t, err)
	assert.Equal(t, "CDMX-042-2026", m.SerialNumber)
	assert.Equal(t, "CDMX-042-2026", bindSerial)

	// allocator must not burn a sequence value on the manual path
	f.sequences.AssertNotCalled(t, "Next", mock.Anything, mock.Anything, mock.Anything)
}

func TestAssembleReservedSerialConflicts(t *testing.T) {
	ctx := context.Background()

	t.Run("consumed reservation", func(t *testing.T) {
		f := newAssemblerFixture(t)
		req := f.request()
		req.ReservedSerial = "CDMX-042-2026"

		reservation, err := folio.NewFolioReservation("CDMX-042-2026", f.site.ID, nil)
		require.NoError(t, err)
		require.NoError(t, reservation.Bind(uuid.New()))

		f.stubParticipants(ctx)
		f.stubIssuerSettings(ctx)
		f.events.On("SumByCategory", ctx, f.site.ID, req.PeriodStart, req.PeriodEnd).Return(map[string]decimal.Decimal{}, nil)
		f.reservations.On("FindBySerial", ctx, "CDMX-042-2026").Return(reservation, nil)

		_, _, err = f.assembler.Assemble(ctx, req)
		assert.ErrorIs(t, err, folio.ErrAlreadyUsed)
	})

	t.Run("unknown reservation", func(t *testing.T) {
		f := newAssemblerFixture(t)
		req := f.request()
		req.ReservedSerial = "CDMX-777-2026"

		f.stubParticipants(ctx)
		f.stubIssuerSettings(ctx)
		f.events.On("SumByCategory", ctx, f.site.ID, req.PeriodStart, req.PeriodEnd).Return(map[string]decimal.Decimal{}, nil)
		f.reservations.On("FindBySerial", ctx, "CDMX-777-2026").Return(nil, shared.ErrNotFound)

		_, _, err := f.assembler.Assemble(ctx, req)
		assert.ErrorIs(t, err, folio.ErrAlreadyUsed)
	})

	t.Run("reservation for another site", func(t *testing.T) {
		f := newAssemblerFixture(t)
		req := f.request()
		req.ReservedSerial = "CDMX-042-2026"

		reservation, err := folio.NewFolioReservation("CDMX-042-2026", uuid.New(), nil)
		require.NoError(t, err)

		f.stubParticipants(ctx)
		f.stubIssuerSettings(ctx)
		f.events.On("SumByCategory", ctx, f.site.ID, req.PeriodStart, req.PeriodEnd).Return(map[string]decimal.Decimal{}, nil)
		f.reservations.On("FindBySerial", ctx, "CDMX-042-2026").Return(reservation, nil)

		_, _, err = f.assembler.Assemble(ctx, req)
		require.Error(t, err)
		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "INVALID_INPUT", domainErr.Code)
	})
}

func TestAssembleValidation(t *testing.T) {
	ctx := context.Background()

	t.Run("inverted period", func(t *testing.T) {
		f := newAssemblerFixture(t)
		req := f.request()
		req.PeriodStart, req.PeriodEnd = req.PeriodEnd, req.PeriodStart

		_, _, err := f.assembler.Assemble(ctx, req)
		assert.ErrorIs(t, err, manifest.ErrInvalidPeriod)
		f.sites.AssertNotCalled(t, "FindByID", mock.Anything, mock.Anything)
	})

	t.Run("unknown site", func(t *testing.T) {
		f := newAssemblerFixture(t)
		req := f.request()

		f.sites.On("FindByID", ctx, f.site.ID).Return(nil, shared.ErrNotFound)

		_, _, err := f.assembler.Assemble(ctx, req)
		assert.ErrorIs(t, err, shared.ErrNotFound)
		assert.Contains(t, err.Error(), "generator site")
	})

	t.Run("missing participants are named per entity", func(t *testing.T) {
		f := newAssemblerFixture(t)
		req := f.request()

		f.sites.On("FindByID", ctx, f.site.ID).Return(f.site, nil)
		f.drivers.On("FindByID", ctx, f.driver.ID).Return(nil, shared.ErrNotFound)

		_, _, driverErr := f.assembler.Assemble(ctx, req)
		require.ErrorIs(t, driverErr, shared.ErrNotFound)
		assert.Contains(t, driverErr.Error(), "driver")

		f2 := newAssemblerFixture(t)
		req2 := f2.request()

		f2.sites.On("FindByID", ctx, f2.site.ID).Return(f2.site, nil)
		f2.drivers.On("FindByID", ctx, f2.driver.ID).Return(f2.driver, nil)
		f2.vehicles.On("FindByID", ctx, f2.vehicle.ID).Return(nil, shared.ErrNotFound)

		_, _, vehicleErr := f2.assembler.Assemble(ctx, req2)
		require.ErrorIs(t, vehicleErr, shared.ErrNotFound)
		assert.Contains(t, vehicleErr.Error(), "vehicle")

		assert.NotEqual(t, driverErr.Error(), vehicleErr.Error())
	})

	t.Run("inactive vehicle", func(t *testing.T) {
		f := newAssemblerFixture(t)
		req := f.request()
		f.vehicle.Deactivate()

		f.stubParticipants(ctx)

		_, _, err := f.assembler.Assemble(ctx, req)
		require.Error(t, err)
		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "INACTIVE_ENTITY", domainErr.Code)
	})

	t.Run("inactive destination", func(t *testing.T) {
		f := newAssemblerFixture(t)
		req := f.request()
		f.destination.Deactivate()

		f.stubParticipants(ctx)

		_, _, err := f.assembler.Assemble(ctx, req)
		require.Error(t, err)
		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "INACTIVE_ENTITY", domainErr.Code)
	})

	t.Run("deactivated site and driver do not block issuance", func(t *testing.T) {
		f := newAssemblerFixture(t)
		req := f.request()
		f.site.Deactivate()
		f.driver.Deactivate()

		f.stubParticipants(ctx)
		f.stubIssuerSettings(ctx)
		f.events.On("SumByCategory", ctx, f.site.ID, req.PeriodStart, req.PeriodEnd).Return(map[string]decimal.Decimal{}, nil)
		f.sequences.On("Next", ctx, f.site.ID, 2026).Return(int64(44), nil)

		m, _, err := f.assembler.Assemble(ctx, req)
		require.NoError(t, err)
		assert.Equal(t, "CDMX-044-2026", m.SerialNumber)
	})
}

func TestAssembleSnapshotFallbacks(t *testing.T) {
	ctx := context.Background()
	f := newAssemblerFixture(t)

	// site with no address data, settings never configured
	bareSite, err := registry.NewGeneratorSite("Sin Domicilio", "SD", "", "", "", "", "", "", nil)
	require.NoError(t, err)
	f.site = bareSite
	req := f.request()

	f.stubParticipants(ctx)
	f.settings.On("Get", ctx, mock.AnythingOfType("string")).Return(nil, shared.ErrNotFound)
	f.events.On("SumByCategory", ctx, f.site.ID, req.PeriodStart, req.PeriodEnd).Return(map[string]decimal.Decimal{}, nil)
	f.sequences.On("Next", ctx, f.site.ID, 2026).Return(int64(1), nil)

	m, _, err := f.assembler.Assemble(ctx, req)
	require.NoError(t, err)
	assert.Equal(t, manifest.AddressFallback, m.GeneratorSnapshot.Address)
	assert.Equal(t, "Issuer pending configuration", m.IssuerSnapshot.Name)
	assert.Equal(t, "not specified", m.IssuerSnapshot.Address)
	assert.Equal(t, "pending", m.IssuerSnapshot.RegistryNumber)
}
