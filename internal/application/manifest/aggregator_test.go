package manifest

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/resitrack/backend/internal/domain/manifest"
)

func TestPeriodAggregatorAggregate(t *testing.T) {
	ctx := context.Background()
	siteID := uuid.New()
	from := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2026, 3, 31, 0, 0, 0, 0, time.UTC)

	t.Run("no events yields nine zeros", func(t *testing.T) {
		events := new(MockEventRepository)
		agg := NewPeriodAggregator(events)

		events.On("SumByCategory", ctx, siteID, from, to).Return(map[string]decimal.Decimal{}, nil)

		breakdown, err := agg.Aggregate(ctx, siteID, from, to)
		require.NoError(t, err)
		require.Len(t, breakdown, 9)
		for _, line := range breakdown {
			assert.True(t, line.Kilograms.IsZero())
		}
	})

	t.Run("partial sums are zero-filled in catalog order", func(t *testing.T) {
		events := new(MockEventRepository)
		agg := NewPeriodAggregator(events)

		events.On("SumByCategory", ctx, siteID, from, to).Return(map[string]decimal.Decimal{
			manifest.CategoryGlass:      decimal.NewFromFloat(20.5),
			manifest.CategoryScrapMetal: decimal.NewFromInt(8),
		}, nil)

		breakdown, err := agg.Aggregate(ctx, siteID, from, to)
		require.NoError(t, err)
		require.Len(t, breakdown, 9)
		assert.Equal(t, manifest.CategoryCardboard, breakdown[0].CategoryCode)
		assert.True(t, breakdown[0].Kilograms.IsZero())
		assert.True(t, breakdown[1].Kilograms.Equal(decimal.NewFromFloat(20.5)))
		assert.True(t, breakdown[7].Kilograms.Equal(decimal.NewFromInt(8)))
		assert.True(t, breakdown.TotalKilograms().Equal(decimal.NewFromFloat(28.5)))
	})

	t.Run("single day period is inclusive", func(t *testing.T) {
		events := new(MockEventRepository)
		agg := NewPeriodAggregator(events)

		day := time.Date(2026, 3, 15, 0, 0, 0, 0, time.UTC)
		events.On("SumByCategory", ctx, siteID, day, day).Return(map[string]decimal.Decimal{
			manifest.CategoryPET: decimal.NewFromInt(5),
		}, nil)

		breakdown, err := agg.Aggregate(ctx, siteID, day, day)
		require.NoError(t, err)
		assert.True(t, breakdown.TotalKilograms().Equal(decimal.NewFromInt(5)))
	})

	t.Run("inverted period is rejected before any read", func(t *testing.T) {
		events := new(MockEventRepository)
		agg := NewPeriodAggregator(events)

		_, err := agg.Aggregate(ctx, siteID, to, from)
		assert.ErrorIs(t, err, manifest.ErrInvalidPeriod)
		events.AssertNotCalled(t, "SumByCategory")
	})
}

func TestPeriodAggregatorResponse(t *testing.T) {
	ctx := context.Background()
	siteID := uuid.New()
	from := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	to := time.Date(2026, 3, 31, 0, 0, 0, 0, time.UTC)

	events := new(MockEventRepository)
	agg := NewPeriodAggregator(events)

	events.On("SumByCategory", ctx, siteID, from, to).Return(map[string]decimal.Decimal{
		manifest.CategoryAluminum: decimal.NewFromInt(3),
	}, nil)

	resp, err := agg.AggregateResponse(ctx, siteID, from, to)
	require.NoError(t, err)
	assert.Equal(t, siteID, resp.SiteID)
	require.Len(t, resp.Residues, 9)
	assert.Equal(t, "Aluminum", resp.Residues[6].CategoryName)
	assert.Equal(t, 7, resp.Residues[6].Position)
	assert.True(t, resp.TotalKilograms.Equal(decimal.NewFromInt(3)))
}
