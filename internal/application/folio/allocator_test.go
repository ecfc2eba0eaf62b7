package folio

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/resitrack/backend/internal/domain/folio"
)

func TestSequenceAllocatorNextSerial(t *testing.T) {
	ctx := context.Background()
	site := testSite(t)

	t.Run("formats prefix, padded sequence and year", func(t *testing.T) {
		sequences := new(MockSequenceRepository)
		allocator := NewSequenceAllocator(sequences, zap.NewNop())

		sequences.On("Next", ctx, site.ID, 2026).Return(int64(7), nil).Once()

		serial, err := allocator.NextSerial(ctx, site, 2026)
		require.NoError(t, err)
		assert.Equal(t, "CDMX-007-2026", serial)
		sequences.AssertExpectations(t)
	})

	t.Run("consecutive values yield distinct serials", func(t *testing.T) {
		sequences := new(MockSequenceRepository)
		allocator := NewSequenceAllocator(sequences, zap.NewNop())

		sequences.On("Next", ctx, site.ID, 2026).Return(int64(101), nil).Once()
		sequences.On("Next", ctx, site.ID, 2026).Return(int64(102), nil).Once()

		first, err := allocator.NextSerial(ctx, site, 2026)
		require.NoError(t, err)
		second, err := allocator.NextSerial(ctx, site, 2026)
		require.NoError(t, err)
		assert.NotEqual(t, first, second)
	})

	t.Run("counter failure surfaces as allocation error", func(t *testing.T) {
		sequences := new(MockSequenceRepository)
		allocator := NewSequenceAllocator(sequences, zap.NewNop())

		sequences.On("Next", ctx, site.ID, 2026).Return(int64(0), errors.New("connection reset")).Once()

		_, err := allocator.NextSerial(ctx, site, 2026)
		assert.ErrorIs(t, err, folio.ErrAllocationFailed)
	})

	t.Run("sequence wider than padding", func(t *testing.T) {
		sequences := new(MockSequenceRepository)
		allocator := NewSequenceAllocator(sequences, zap.NewNop())

		sequences.On("Next", ctx, site.ID, 2026).Return(int64(10422), nil).Once()

		serial, err := allocator.NextSerial(ctx, site, 2026)
		require.NoError(t, err)
		assert.Equal(t, "CDMX-10422-2026", serial)
		assert.True(t, folio.IsValidSerialNumber(serial))
	})
}

func TestSequenceAllocatorCurrentSequence(t *testing.T) {
	ctx := context.Background()
	site := testSite(t)

	sequences := new(MockSequenceRepository)
	allocator := NewSequenceAllocator(sequences, zap.NewNop())

	sequences.On("Current", ctx, site.ID, 2026).
		Return(&folio.FolioSequence{SiteID: site.ID, Year: 2026, LastValue: 42}, nil).Once()

	seq, err := allocator.CurrentSequence(ctx, site.ID, 2026)
	require.NoError(t, err)
	assert.Equal(t, int64(42), seq.LastValue)
	sequences.AssertExpectations(t)

	// reading never advances the counter
	sequences.AssertNotCalled(t, "Next", ctx, site.ID, 2026)
}
