package manifest

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"

	"github.com/resitrack/backend/internal/domain/collection"
	"github.com/resitrack/backend/internal/domain/folio"
	"github.com/resitrack/backend/internal/domain/manifest"
	"github.com/resitrack/backend/internal/domain/registry"
	"github.com/resitrack/backend/internal/domain/shared"
)

type MockManifestRepository struct {
	mock.Mock
}

func (m *MockManifestRepository) Create(ctx context.Context, mf *manifest.Manifest, bindSerial string) error {
	args := m.Called(ctx, mf, bindSerial)
	return args.Error(0)
}

func (m *MockManifestRepository) FindByID(ctx context.Context, id uuid.UUID) (*manifest.Manifest, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*manifest.Manifest), args.Error(1)
}

func (m *MockManifestRepository) FindBySerial(ctx context.Context, serial string) (*manifest.Manifest, error) {
	args := m.Called(ctx, serial)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*manifest.Manifest), args.Error(1)
}

func (m *MockManifestRepository) List(ctx context.Context, filter shared.Filter) (shared.Paginated[*manifest.Manifest], error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(shared.Paginated[*manifest.Manifest]), args.Error(1)
}

func (m *MockManifestRepository) UpdatePDF(ctx context.Context, id uuid.UUID, generated bool, path *string) error {
	args := m.Called(ctx, id, generated, path)
	return args.Error(0)
}

func (m *MockManifestRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockEventRepository struct {
	mock.Mock
}

func (m *MockEventRepository) Save(ctx context.Context, event *collection.CollectionEvent) error {
	args := m.Called(ctx, event)
	return args.Error(0)
}

func (m *MockEventRepository) FindByID(ctx context.Context, id uuid.UUID) (*collection.CollectionEvent, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*collection.CollectionEvent), args.Error(1)
}

func (m *MockEventRepository) ListBySite(ctx context.Context, siteID uuid.UUID, from, to time.Time, filter shared.Filter) (shared.Paginated[*collection.CollectionEvent], error) {
	args := m.Called(ctx, siteID, from, to, filter)
	return args.Get(0).(shared.Paginated[*collection.CollectionEvent]), args.Error(1)
}

func (m *MockEventRepository) SumByCategory(ctx context.Context, siteID uuid.UUID, from, to time.Time) (map[string]decimal.Decimal, error) {
	args := m.Called(ctx, siteID, from, to)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]decimal.Decimal), args.Error(1)
}

func (m *MockEventRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockReservationRepository struct {
	mock.Mock
}

func (m *MockReservationRepository) Save(ctx context.Context, r *folio.FolioReservation) error {
	args := m.Called(ctx, r)
	return args.Error(0)
}

func (m *MockReservationRepository) FindByID(ctx context.Context, id uuid.UUID) (*folio.FolioReservation, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*folio.FolioReservation), args.Error(1)
}

func (m *MockReservationRepository) FindBySerial(ctx context.Context, serial string) (*folio.FolioReservation, error) {
	args := m.Called(ctx, serial)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*folio.FolioReservation), args.Error(1)
}

func (m *MockReservationRepository) FindAvailable(ctx context.Context, siteID uuid.UUID, month, year int) ([]*folio.FolioReservation, error) {
	args := m.Called(ctx, siteID, month, year)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*folio.FolioReservation), args.Error(1)
}

func (m *MockReservationRepository) CountBucket(ctx context.Context, siteID uuid.UUID, month, year int) (int64, int64, error) {
	args := m.Called(ctx, siteID, month, year)
	return args.Get(0).(int64), args.Get(1).(int64), args.Error(2)
}

func (m *MockReservationRepository) Bind(ctx context.Context, serial string, manifestID uuid.UUID) error {
	args := m.Called(ctx, serial, manifestID)
	return args.Error(0)
}

func (m *MockReservationRepository) ReleaseByManifest(ctx context.Context, manifestID uuid.UUID) (int64, error) {
	args := m.Called(ctx, manifestID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockReservationRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockSequenceRepository struct {
	mock.Mock
}

func (m *MockSequenceRepository) Next(ctx context.Context, siteID uuid.UUID, year int) (int64, error) {
	args := m.Called(ctx, siteID, year)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockSequenceRepository) Current(ctx context.Context, siteID uuid.UUID, year int) (*folio.FolioSequence, error) {
	args := m.Called(ctx, siteID, year)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*folio.FolioSequence), args.Error(1)
}

type MockSiteRepository struct {
	mock.Mock
}

func (m *MockSiteRepository) Save(ctx context.Context, site *registry.GeneratorSite) error {
	args := m.Called(ctx, site)
	return args.Error(0)
}

func (m *MockSiteRepository) Update(ctx context.Context, site *registry.GeneratorSite) error {
	args := m.Called(ctx, site)
	return args.Error(0)
}

func (m *MockSiteRepository) FindByID(ctx context.Context, id uuid.UUID) (*registry.GeneratorSite, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*registry.GeneratorSite), args.Error(1)
}

func (m *MockSiteRepository) List(ctx context.Context, filter shared.Filter) (shared.Paginated[*registry.GeneratorSite], error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(shared.Paginated[*registry.GeneratorSite]), args.Error(1)
}

func (m *MockSiteRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockDriverRepository struct {
	mock.Mock
}

func (m *MockDriverRepository) Save(ctx context.Context, driver *registry.CollectionDriver) error {
	args := m.Called(ctx, driver)
	return args.Error(0)
}

func (m *MockDriverRepository) Update(ctx context.Context, driver *registry.CollectionDriver) error {
	args := m.Called(ctx, driver)
	return args.Error(0)
}

func (m *MockDriverRepository) FindByID(ctx context.Context, id uuid.UUID) (*registry.CollectionDriver, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*registry.CollectionDriver), args.Error(1)
}

func (m *MockDriverRepository) List(ctx context.Context, filter shared.Filter) (shared.Paginated[*registry.CollectionDriver], error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(shared.Paginated[*registry.CollectionDriver]), args.Error(1)
}

func (m *MockDriverRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockVehicleRepository struct {
	mock.Mock
}

func (m *MockVehicleRepository) Save(ctx context.Context, vehicle *registry.Vehicle) error {
	args := m.Called(ctx, vehicle)
	return args.Error(0)
}

func (m *MockVehicleRepository) Update(ctx context.Context, vehicle *registry.Vehicle) error {
	args := m.Called(ctx, vehicle)
	return args.Error(0)
}

func (m *MockVehicleRepository) FindByID(ctx context.Context, id uuid.UUID) (*registry.Vehicle, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*registry.Vehicle), args.Error(1)
}

func (m *MockVehicleRepository) List(ctx context.Context, filter shared.Filter) (shared.Paginated[*registry.Vehicle], error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(shared.Paginated[*registry.Vehicle]), args.Error(1)
}

func (m *MockVehicleRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockDestinationRepository struct {
	mock.Mock
}

func (m *MockDestinationRepository) Save(ctx context.Context, destination *registry.FinalDestination) error {
	args := m.Called(ctx, destination)
	return args.Error(0)
}

func (m *MockDestinationRepository) Update(ctx context.Context, destination *registry.FinalDestination) error {
	args := m.Called(ctx, destination)
	return args.Error(0)
}

func (m *MockDestinationRepository) FindByID(ctx context.Context, id uuid.UUID) (*registry.FinalDestination, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*registry.FinalDestination), args.Error(1)
}

func (m *MockDestinationRepository) List(ctx context.Context, filter shared.Filter) (shared.Paginated[*registry.FinalDestination], error) {
	args := m.Called(ctx, filter)
	return args.Get(0).(shared.Paginated[*registry.FinalDestination]), args.Error(1)
}

func (m *MockDestinationRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type MockSettingRepository struct {
	mock.Mock
}

func (m *MockSettingRepository) Get(ctx context.Context, key string) (*registry.SystemSetting, error) {
	args := m.Called(ctx, key)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*registry.SystemSetting), args.Error(1)
}

func (m *MockSettingRepository) GetAll(ctx context.Context) ([]*registry.SystemSetting, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*registry.SystemSetting), args.Error(1)
}

func (m *MockSettingRepository) Set(ctx context.Context, setting *registry.SystemSetting) error {
	args := m.Called(ctx, setting)
	return args.Error(0)
}
