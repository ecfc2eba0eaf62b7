package manifest

import (
	"context"

	"github.com/google/uuid"

	"github.com/resitrack/backend/internal/domain/shared"
)

// Repository persists manifests.
//
// Create runs in one storage transaction: the manifest row (and its residue
// rows) is inserted first, then, when bindSerial is non-empty, the matching
// folio reservation is consumed with a conditional update inside the same
// transaction. A bind miss rolls the whole creation back. Duplicate serials
// surface as folio.ErrDuplicateSerial, a missing-or-consumed reservation as
// folio.ErrAlreadyUsed.
//
// Delete releases any reservation bound to the manifest before removing the
// row, in that order, within one transaction. A crash between the two steps
// leaves the serial available rather than orphaned.
type Repository interface {
	Create(ctx context.Context, m *Manifest, bindSerial string) error
	FindByID(ctx context.Context, id uuid.UUID) (*Manifest, error)
	FindBySerial(ctx context.Context, serial string) (*Manifest, error)
	List(ctx context.Context, filter shared.Filter) (shared.Paginated[*Manifest], error)
	UpdatePDF(ctx context.Context, id uuid.UUID, generated bool, path *string) error
	Delete(ctx context.Context, id uuid.UUID) error
}
