package collection

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/resitrack/backend/internal/domain/collection"
	"github.com/resitrack/backend/internal/domain/manifest"
	"github.com/resitrack/backend/internal/domain/registry"
	"github.com/resitrack/backend/internal/domain/shared"
)

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

func TestEventServiceRecord(t *testing.T) {
	ctx := context.Background()
	site, err := registry.NewGeneratorSite("Plaza Central", "CDMX", "", "", "", "", "", "", nil)
	require.NoError(t, err)

	t.Run("success", func(t *testing.T) {
		events := new(MockEventRepository)
		sites := new(MockSiteRepository)
		svc := NewEventService(events, sites)

		sites.On("FindByID", ctx, site.ID).Return(site, nil)
		events.On("Save", ctx, mock.AnythingOfType("*collection.CollectionEvent")).Return(nil)

		resp, err := svc.Record(ctx, RecordEventRequest{
			SiteID:    site.ID,
			EventDate: time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC),
			Details: []EventDetailInput{
				{CategoryCode: manifest.CategoryCardboard, Kilograms: decimal.NewFromInt(40)},
				{CategoryCode: manifest.CategoryGlass, Kilograms: decimal.NewFromFloat(7.25)},
			},
		})
		require.NoError(t, err)
		assert.Len(t, resp.Details, 2)
		assert.True(t, resp.TotalKilograms.Equal(decimal.NewFromFloat(47.25)))
		events.AssertExpectations(t)
	})

	t.Run("unknown site", func(t *testing.T) {
		events := new(MockEventRepository)
		sites := new(MockSiteRepository)
		svc := NewEventService(events, sites)

		missing := uuid.New()
		sites.On("FindByID", ctx, missing).Return(nil, shared.ErrNotFound)

		_, err := svc.Record(ctx, RecordEventRequest{
			SiteID:    missing,
			EventDate: time.Now(),
			Details:   []EventDetailInput{{CategoryCode: manifest.CategoryPET, Kilograms: decimal.NewFromInt(1)}},
		})
		assert.ErrorIs(t, err, shared.ErrNotFound)
		events.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	})

	t.Run("invalid category", func(t *testing.T) {
		events := new(MockEventRepository)
		sites := new(MockSiteRepository)
		svc := NewEventService(events, sites)

		sites.On("FindByID", ctx, site.ID).Return(site, nil)

		_, err := svc.Record(ctx, RecordEventRequest{
			SiteID:    site.ID,
			EventDate: time.Now(),
			Details:   []EventDetailInput{{CategoryCode: "ORGANIC", Kilograms: decimal.NewFromInt(1)}},
		})
		assert.Error(t, err)
		events.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	})
}
