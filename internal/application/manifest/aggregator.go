package manifest

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/resitrack/backend/internal/domain/collection"
	"github.com/resitrack/backend/internal/domain/manifest"
)

// PeriodAggregator projects collection events in an inclusive date range onto
// the fixed residue catalog. Pure read, no coordination with issuance.
type PeriodAggregator struct {
	events collection.EventRepository
}

// NewPeriodAggregator creates a period aggregator
func NewPeriodAggregator(events collection.EventRepository) *PeriodAggregator {
	return &PeriodAggregator{events: events}
}

// Aggregate sums collected kilograms per category over [from, to] for one
// site. Categories without data come back zero-filled, in catalog order.
func (a *PeriodAggregator) Aggregate(ctx context.Context, siteID uuid.UUID, from, to time.Time) (manifest.ResidueBreakdown, error) {
	if err := manifest.ValidatePeriod(from, to); err != nil {
		return nil, err
	}

	sums, err := a.events.SumByCategory(ctx, siteID, from, to)
	if err != nil {
		return nil, err
	}

	return manifest.NewBreakdown(sums), nil
}

// AggregateResponse runs Aggregate and wraps the result in its API view
func (a *PeriodAggregator) AggregateResponse(ctx context.Context, siteID uuid.UUID, from, to time.Time) (*AggregationResponse, error) {
	breakdown, err := a.Aggregate(ctx, siteID, from, to)
	if err != nil {
		return nil, err
	}
	return &AggregationResponse{
		SiteID:         siteID,
		PeriodStart:    from,
		PeriodEnd:      to,
		Residues:       ToResidueLines(breakdown),
		TotalKilograms: breakdown.TotalKilograms(),
	}, nil
}
