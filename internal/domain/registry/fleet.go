package registry

import (
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/resitrack/backend/internal/domain/shared"
)

// CollectionDriver operates collection routes and appears on manifests by name
type CollectionDriver struct {
	shared.AuditedAggregateRoot
	Name          string `json:"name"`
	LicenseNumber string `json:"license_number"`
	Active        bool   `json:"active"`
}

// NewCollectionDriver creates an active driver
func NewCollectionDriver(name, licenseNumber string, createdBy *uuid.UUID) (*CollectionDriver, error) {
	if strings.TrimSpace(name) == "" {
		return nil, shared.NewDomainError("INVALID_INPUT", "driver name is required")
	}

	return &CollectionDriver{
		AuditedAggregateRoot: shared.NewAuditedAggregateRoot(createdBy),
		Name:                 strings.TrimSpace(name),
		LicenseNumber:        strings.TrimSpace(licenseNumber),
		Active:               true,
	}, nil
}

// Update changes the driver fields
func (d *CollectionDriver) Update(name, licenseNumber string) error {
	if strings.TrimSpace(name) == "" {
		return shared.NewDomainError("INVALID_INPUT", "driver name is required")
	}
	d.Name = strings.TrimSpace(name)
	d.LicenseNumber = strings.TrimSpace(licenseNumber)
	d.Touch()
	return nil
}

// Activate marks the driver usable for manifests
func (d *CollectionDriver) Activate() {
	d.Active = true
	d.Touch()
}

// Deactivate blocks the driver from new manifests
func (d *CollectionDriver) Deactivate() {
	d.Active = false
	d.Touch()
}

// Vehicle is a collection vehicle identified on manifests by plates and model
type Vehicle struct {
	shared.AuditedAggregateRoot
	Plates     string          `json:"plates"`
	Model      string          `json:"model"`
	CapacityKg decimal.Decimal `json:"capacity_kg"`
	Active     bool            `json:"active"`
}

// NewVehicle creates an active vehicle
func NewVehicle(plates, model string, capacityKg decimal.Decimal, createdBy *uuid.UUID) (*Vehicle, error) {
	if strings.TrimSpace(plates) == "" {
		return nil, shared.NewDomainError("INVALID_INPUT", "vehicle plates are required")
	}
	if capacityKg.IsNegative() {
		return nil, shared.NewDomainError("INVALID_INPUT", "vehicle capacity must not be negative")
	}

	return &Vehicle{
		AuditedAggregateRoot: shared.NewAuditedAggregateRoot(createdBy),
		Plates:               strings.TrimSpace(plates),
		Model:                strings.TrimSpace(model),
		CapacityKg:           capacityKg,
		Active:               true,
	}, nil
}

// Update changes the vehicle fields
func (v *Vehicle) Update(plates, model string, capacityKg decimal.Decimal) error {
	if strings.TrimSpace(plates) == "" {
		return shared.NewDomainError("INVALID_INPUT", "vehicle plates are required")
	}
	if capacityKg.IsNegative() {
		return shared.NewDomainError("INVALID_INPUT", "vehicle capacity must not be negative")
	}
	v.Plates = strings.TrimSpace(plates)
	v.Model = strings.TrimSpace(model)
	v.CapacityKg = capacityKg
	v.Touch()
	return nil
}

// Activate marks the vehicle usable for manifests
func (v *Vehicle) Activate() {
	v.Active = true
	v.Touch()
}

// Deactivate blocks the vehicle from new manifests
func (v *Vehicle) Deactivate() {
	v.Active = false
	v.Touch()
}
