package registry

import (
	"context"

	"github.com/google/uuid"

	"github.com/resitrack/backend/internal/domain/registry"
	"github.com/resitrack/backend/internal/domain/shared"
)

// FleetService manages collection drivers and vehicles
type FleetService struct {
	drivers  registry.DriverRepository
	vehicles registry.VehicleRepository
}

// NewFleetService creates a fleet service
func NewFleetService(drivers registry.DriverRepository, vehicles registry.VehicleRepository) *FleetService {
	return &FleetService{
		drivers:  drivers,
		vehicles: vehicles,
	}
}

// CreateDriver registers a new driver
func (s *FleetService) CreateDriver(ctx context.Context, req CreateDriverRequest) (*DriverResponse, error) {
	driver, err := registry.NewCollectionDriver(req.Name, req.LicenseNumber, req.CreatedBy)
	if err != nil {
		return nil, err
	}
	if err := s.drivers.Save(ctx, driver); err != nil {
		return nil, err
	}
	resp := ToDriverResponse(driver)
	return &resp, nil
}

// GetDriver fetches one driver
func (s *FleetService) GetDriver(ctx context.Context, id uuid.UUID) (*DriverResponse, error) {
	driver, err := s.drivers.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := ToDriverResponse(driver)
	return &resp, nil
}

// ListDrivers returns a page of drivers
func (s *FleetService) ListDrivers(ctx context.Context, filter shared.Filter) (shared.Paginated[DriverResponse], error) {
	page, err := s.drivers.List(ctx, filter)
	if err != nil {
		return shared.Paginated[DriverResponse]{}, err
	}
	items := make([]DriverResponse, len(page.Items))
	for i, d := range page.Items {
		items[i] = ToDriverResponse(d)
	}
	return shared.NewPaginated(items, page.Total, page.Page, page.PageSize), nil
}

// UpdateDriver changes the driver fields and the active flag
func (s *FleetService) UpdateDriver(ctx context.Context, id uuid.UUID, req UpdateDriverRequest) (*DriverResponse, error) {
	driver, err := s.drivers.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := driver.Update(req.Name, req.LicenseNumber); err != nil {
		return nil, err
	}
	if req.Active != nil {
		if *req.Active {
			driver.Activate()
		} else {
			driver.Deactivate()
		}
	}
	if err := s.drivers.Update(ctx, driver); err != nil {
		return nil, err
	}
	resp := ToDriverResponse(driver)
	return &resp, nil
}

// DeleteDriver removes a driver
func (s *FleetService) DeleteDriver(ctx context.Context, id uuid.UUID) error {
	if _, err := s.drivers.FindByID(ctx, id); err != nil {
		return err
	}
	return s.drivers.Delete(ctx, id)
}

// CreateVehicle registers a new vehicle
func (s *FleetService) CreateVehicle(ctx context.Context, req CreateVehicleRequest) (*VehicleResponse, error) {
	vehicle, err := registry.NewVehicle(req.Plates, req.Model, req.CapacityKg, req.CreatedBy)
	if err != nil {
		return nil, err
	}
	if err := s.vehicles.Save(ctx, vehicle); err != nil {
		return nil, err
	}
	resp := ToVehicleResponse(vehicle)
	return &resp, nil
}

// GetVehicle fetches one vehicle
func (s *FleetService) GetVehicle(ctx context.Context, id uuid.UUID) (*VehicleResponse, error) {
	vehicle, err := s.vehicles.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	resp := ToVehicleResponse(vehicle)
	return &resp, nil
}

// ListVehicles returns a page of vehicles
func (s *FleetService) ListVehicles(ctx context.Context, filter shared.Filter) (shared.Paginated[VehicleResponse], error) {
	page, err := s.vehicles.List(ctx, filter)
	if err != nil {
		return shared.Paginated[VehicleResponse]{}, err
	}
	items := make([]VehicleResponse, len(page.Items))
	for i, v := range page.Items {
		items[i] = ToVehicleResponse(v)
	}
	return shared.NewPaginated(items, page.Total, page.Page, page.PageSize), nil
}

// UpdateVehicle changes the vehicle fields and the active flag
func (s *FleetService) UpdateVehicle(ctx context.Context, id uuid.UUID, req UpdateVehicleRequest) (*VehicleResponse, error) {
	vehicle, err := s.vehicles.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := vehicle.Update(req.Plates, req.Model, req.CapacityKg); err != nil {
		return nil, err
	}
	if req.Active != nil {
		if *req.Active {
			vehicle.Activate()
		} else {
			vehicle.Deactivate()
		}
	}
	if err := s.vehicles.Update(ctx, vehicle); err != nil {
		return nil, err
	}
	resp := ToVehicleResponse(vehicle)
	return &resp, nil
}

// DeleteVehicle removes a vehicle
func (s *FleetService) DeleteVehicle(ctx context.Context, id uuid.UUID) error {
	if _, err := s.vehicles.FindByID(ctx, id); err != nil {
		return err
	}
	return s.vehicles.Delete(ctx, id)
}
