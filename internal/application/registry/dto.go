package registry

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/resitrack/backend/internal/domain/manifest"
	"github.com/resitrack/backend/internal/domain/registry"
)

// CreateSiteRequest registers a generator site
type CreateSiteRequest struct {
	Name         string     `json:"name"`
	SerialPrefix string     `json:"serial_prefix"`
	Street       string     `json:"street"`
	City         string     `json:"city"`
	State        string     `json:"state"`
	PostalCode   string     `json:"postal_code"`
	ContactName  string     `json:"contact_name"`
	ContactEmail string     `json:"contact_email"`
	CreatedBy    *uuid.UUID `json:"created_by,omitempty"`
}

// UpdateSiteRequest changes the mutable site fields
type UpdateSiteRequest struct {
	Name         string `json:"name"`
	Street       string `json:"street"`
	City         string `json:"city"`
	State        string `json:"state"`
	PostalCode   string `json:"postal_code"`
	ContactName  string `json:"contact_name"`
	ContactEmail string `json:"contact_email"`
	Active       *bool  `json:"active"`
}

// SiteResponse is the API view of a generator site
type SiteResponse struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	SerialPrefix string    `json:"serial_prefix"`
	Street       string    `json:"street,omitempty"`
	City         string    `json:"city,omitempty"`
	State        string    `json:"state,omitempty"`
	PostalCode   string    `json:"postal_code,omitempty"`
	ContactName  string    `json:"contact_name,omitempty"`
	ContactEmail string    `json:"contact_email,omitempty"`
	Address      string    `json:"address,omitempty"`
	Active       bool      `json:"active"`
	CreatedAt    time.Time `json:"created_at"`
}

// ToSiteResponse maps a domain site to its API view
func ToSiteResponse(s *registry.GeneratorSite) SiteResponse {
	return SiteResponse{
		ID:           s.ID,
		Name:         s.Name,
		SerialPrefix: s.SerialPrefix,
		Street:       s.Street,
		City:         s.City,
		State:        s.State,
		PostalCode:   s.PostalCode,
		ContactName:  s.ContactName,
		ContactEmail: s.ContactEmail,
		Address:      s.Address(),
		Active:       s.Active,
		CreatedAt:    s.CreatedAt,
	}
}

// CreateDriverRequest registers a collection driver
type CreateDriverRequest struct {
	Name          string     `json:"name"`
	LicenseNumber string     `json:"license_number"`
	CreatedBy     *uuid.UUID `json:"created_by,omitempty"`
}

// UpdateDriverRequest changes the driver fields
type UpdateDriverRequest struct {
	Name          string `json:"name"`
	LicenseNumber string `json:"license_number"`
	Active        *bool  `json:"active"`
}

// DriverResponse is the API view of a collection driver
type DriverResponse struct {
	ID            uuid.UUID `json:"id"`
	Name          string    `json:"name"`
	LicenseNumber string    `json:"license_number,omitempty"`
	Active        bool      `json:"active"`
	CreatedAt     time.Time `json:"created_at"`
}

// ToDriverResponse maps a domain driver to its API view
func ToDriverResponse(d *registry.CollectionDriver) DriverResponse {
	return DriverResponse{
		ID:            d.ID,
		Name:          d.Name,
		LicenseNumber: d.LicenseNumber,
		Active:        d.Active,
		CreatedAt:     d.CreatedAt,
	}
}

// CreateVehicleRequest registers a collection vehicle
type CreateVehicleRequest struct {
	Plates     string          `json:"plates"`
	Model      string          `json:"model"`
	CapacityKg decimal.Decimal `json:"capacity_kg"`
	CreatedBy  *uuid.UUID      `json:"created_by,omitempty"`
}

// UpdateVehicleRequest changes the vehicle fields
type UpdateVehicleRequest struct {
	Plates     string          `json:"plates"`
	Model      string          `json:"model"`
	CapacityKg decimal.Decimal `json:"capacity_kg"`
	Active     *bool           `json:"active"`
}

// VehicleResponse is the API view of a vehicle
type VehicleResponse struct {
	ID         uuid.UUID       `json:"id"`
	Plates     string          `json:"plates"`
	Model      string          `json:"model,omitempty"`
	CapacityKg decimal.Decimal `json:"capacity_kg"`
	Active     bool            `json:"active"`
	CreatedAt  time.Time       `json:"created_at"`
}

// ToVehicleResponse maps a domain vehicle to its API view
func ToVehicleResponse(v *registry.Vehicle) VehicleResponse {
	return VehicleResponse{
		ID:         v.ID,
		Plates:     v.Plates,
		Model:      v.Model,
		CapacityKg: v.CapacityKg,
		Active:     v.Active,
		CreatedAt:  v.CreatedAt,
	}
}

// CreateDestinationRequest registers a final destination
type CreateDestinationRequest struct {
	Name              string     `json:"name"`
	AuthorizationCode string     `json:"authorization_code"`
	Street            string     `json:"street"`
	City              string     `json:"city"`
	State             string     `json:"state"`
	PostalCode        string     `json:"postal_code"`
	CreatedBy         *uuid.UUID `json:"created_by,omitempty"`
}

// UpdateDestinationRequest changes the destination fields
type UpdateDestinationRequest struct {
	Name              string `json:"name"`
	AuthorizationCode string `json:"authorization_code"`
	Street            string `json:"street"`
	City              string `json:"city"`
	State             string `json:"state"`
	PostalCode        string `json:"postal_code"`
	Active            *bool  `json:"active"`
}

// DestinationResponse is the API view of a final destination
type DestinationResponse struct {
	ID                uuid.UUID `json:"id"`
	Name              string    `json:"name"`
	AuthorizationCode string    `json:"authorization_code"`
	Address           string    `json:"address,omitempty"`
	Active            bool      `json:"active"`
	CreatedAt         time.Time `json:"created_at"`
}

// ToDestinationResponse maps a domain destination to its API view
func ToDestinationResponse(d *registry.FinalDestination) DestinationResponse {
	return DestinationResponse{
		ID:                d.ID,
		Name:              d.Name,
		AuthorizationCode: d.AuthorizationCode,
		Address:           d.Address(),
		Active:            d.Active,
		CreatedAt:         d.CreatedAt,
	}
}

// CategoryResponse is one entry of the residue catalog
type CategoryResponse struct {
	Code     string `json:"code"`
	Name     string `json:"name"`
	Position int    `json:"position"`
}

// ListCategories returns the fixed residue catalog in catalog order
func ListCategories() []CategoryResponse {
	cats := manifest.Categories()
	out := make([]CategoryResponse, len(cats))
	for i, c := range cats {
		out[i] = CategoryResponse{Code: c.Code, Name: c.Name, Position: c.Position}
	}
	return out
}

// SettingResponse is the API view of a system setting
type SettingResponse struct {
	Key       string    `json:"key"`
	Value     string    `json:"value"`
	UpdatedAt time.Time `json:"updated_at"`
}

// ToSettingResponse maps a domain setting to its API view
func ToSettingResponse(s *registry.SystemSetting) SettingResponse {
	return SettingResponse{
		Key:       s.Key,
		Value:     s.Value,
		UpdatedAt: s.UpdatedAt,
	}
}
