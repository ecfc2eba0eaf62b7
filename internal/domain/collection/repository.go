package collection

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/resitrack/backend/internal/domain/shared"
)

// EventRepository persists collection events and serves the two narrow reads
// period aggregation needs. SumByCategory covers the inclusive [from, to]
// date range and returns only categories that actually have quantities;
// zero-filling is the caller's concern.
type EventRepository interface {
	Save(ctx context.Context, event *CollectionEvent) error
	FindByID(ctx context.Context, id uuid.UUID) (*CollectionEvent, error)
	ListBySite(ctx context.Context, siteID uuid.UUID, from, to time.Time, filter shared.Filter) (shared.Paginated[*CollectionEvent], error)
	SumByCategory(ctx context.Context, siteID uuid.UUID, from, to time.Time) (map[string]decimal.Decimal, error)
	Delete(ctx context.Context, id uuid.UUID) error
}
