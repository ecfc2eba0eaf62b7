package registry

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/resitrack/backend/internal/domain/registry"
	"github.com/resitrack/backend/internal/domain/shared"
)

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

func TestSiteServiceCreate(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		sites := new(MockSiteRepository)
		svc := NewSiteService(sites)

		sites.On("Save", ctx, mock.AnythingOfType("*registry.GeneratorSite")).Return(nil)

		resp, err := svc.Create(ctx, CreateSiteRequest{
			Name:         "Plaza Central",
			SerialPrefix: "CDMX",
			Street:       "Av. Reforma 100",
			City:         "CDMX",
		})
		require.NoError(t, err)
		assert.Equal(t, "CDMX", resp.SerialPrefix)
		assert.True(t, resp.Active)
		sites.AssertExpectations(t)
	})

	t.Run("invalid prefix", func(t *testing.T) {
		sites := new(MockSiteRepository)
		svc := NewSiteService(sites)

		_, err := svc.Create(ctx, CreateSiteRequest{Name: "Plaza", SerialPrefix: "x"})
		assert.Error(t, err)
		sites.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
	})
}

func TestSiteServiceUpdateActiveFlag(t *testing.T) {
	ctx := context.Background()
	sites := new(MockSiteRepository)
	svc := NewSiteService(sites)

	site, err := registry.NewGeneratorSite("Plaza Central", "CDMX", "", "", "", "", "", "", nil)
	require.NoError(t, err)

	inactive := false
	sites.On("FindByID", ctx, site.ID).Return(site, nil)
	sites.On("Update", ctx, site).Return(nil)

	resp, err := svc.Update(ctx, site.ID, UpdateSiteRequest{Name: "Plaza Central", Active: &inactive})
	require.NoError(t, err)
	assert.False(t, resp.Active)
}

func TestListCategories(t *testing.T) {
	cats := ListCategories()
	require.Len(t, cats, 9)
	assert.Equal(t, "CARDBOARD", cats[0].Code)
	assert.Equal(t, 1, cats[0].Position)
	assert.Equal(t, "ARCHIVE_PAPER", cats[8].Code)
}
