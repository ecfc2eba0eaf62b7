package registry

import (
	"context"

	"github.com/google/uuid"

	"github.com/resitrack/backend/internal/domain/shared"
)

// SiteRepository persists generator sites
type SiteRepository interface {
	Save(ctx context.Context, site *GeneratorSite) error
	Update(ctx context.Context, site *GeneratorSite) error
	FindByID(ctx context.Context, id uuid.UUID) (*GeneratorSite, error)
	List(ctx context.Context, filter shared.Filter) (shared.Paginated[*GeneratorSite], error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// DriverRepository persists collection drivers
type DriverRepository interface {
	Save(ctx context.Context, driver *CollectionDriver) error
	Update(ctx context.Context, driver *CollectionDriver) error
	FindByID(ctx context.Context, id uuid.UUID) (*CollectionDriver, error)
	List(ctx context.Context, filter shared.Filter) (shared.Paginated[*CollectionDriver], error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// VehicleRepository persists collection vehicles
type VehicleRepository interface {
	Save(ctx context.Context, vehicle *Vehicle) error
	Update(ctx context.Context, vehicle *Vehicle) error
	FindByID(ctx context.Context, id uuid.UUID) (*Vehicle, error)
	List(ctx context.Context, filter shared.Filter) (shared.Paginated[*Vehicle], error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// DestinationRepository persists final destinations
type DestinationRepository interface {
	Save(ctx context.Context, destination *FinalDestination) error
	Update(ctx context.Context, destination *FinalDestination) error
	FindByID(ctx context.Context, id uuid.UUID) (*FinalDestination, error)
	List(ctx context.Context, filter shared.Filter) (shared.Paginated[*FinalDestination], error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// SettingRepository persists system settings. Get returns shared.ErrNotFound
// for keys that were never set; callers decide whether a placeholder applies.
type SettingRepository interface {
	Get(ctx context.Context, key string) (*SystemSetting, error)
	GetAll(ctx context.Context) ([]*SystemSetting, error)
	Set(ctx context.Context, setting *SystemSetting) error
}
