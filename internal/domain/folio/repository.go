package folio

import (
	"context"

	"github.com/google/uuid"
)

// ReservationRepository manages the folio reservation pool.
//
// Save checks the per-bucket quota (ErrQuotaExceeded) before inserting; the
// check is best-effort under concurrent saves, while system-wide serial
// uniqueness (ErrDuplicateSerial) is backed by a unique index and absolute.
// Bind must be a single conditional update: it either consumes an unused
// reservation or reports ErrAlreadyUsed, never a read followed by a write.
type ReservationRepository interface {
	Save(ctx context.Context, reservation *FolioReservation) error
	FindByID(ctx context.Context, id uuid.UUID) (*FolioReservation, error)
	FindBySerial(ctx context.Context, serial string) (*FolioReservation, error)
	FindAvailable(ctx context.Context, siteID uuid.UUID, month, year int) ([]*FolioReservation, error)
	CountBucket(ctx context.Context, siteID uuid.UUID, month, year int) (total int64, used int64, err error)
	Bind(ctx context.Context, serial string, manifestID uuid.UUID) error
	ReleaseByManifest(ctx context.Context, manifestID uuid.UUID) (int64, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// SequenceRepository advances per-(site, year) folio counters.
// Next must mint each value with a single atomic statement so that two
// concurrent callers can never observe the same value. Current is a plain
// read; an untouched counter reads as a zero-valued sequence.
type SequenceRepository interface {
	Next(ctx context.Context, siteID uuid.UUID, year int) (int64, error)
	Current(ctx context.Context, siteID uuid.UUID, year int) (*FolioSequence, error)
}
