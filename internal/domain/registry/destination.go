package registry

import (
	"strings"

	"github.com/google/uuid"

	"github.com/resitrack/backend/internal/domain/shared"
)

// FinalDestination is an authorized recycling or disposal facility
type FinalDestination struct {
	shared.AuditedAggregateRoot
	Name              string `json:"name"`
	AuthorizationCode string `json:"authorization_code"`
	Street            string `json:"street"`
	City              string `json:"city"`
	State             string `json:"state"`
	PostalCode        string `json:"postal_code"`
	Active            bool   `json:"active"`
}

// NewFinalDestination creates an active final destination
func NewFinalDestination(name, authorizationCode, street, city, state, postalCode string, createdBy *uuid.UUID) (*FinalDestination, error) {
	if strings.TrimSpace(name) == "" {
		return nil, shared.NewDomainError("INVALID_INPUT", "destination name is required")
	}
	if strings.TrimSpace(authorizationCode) == "" {
		return nil, shared.NewDomainError("INVALID_INPUT", "authorization code is required")
	}

	return &FinalDestination{
		AuditedAggregateRoot: shared.NewAuditedAggregateRoot(createdBy),
		Name:                 strings.TrimSpace(name),
		AuthorizationCode:    strings.TrimSpace(authorizationCode),
		Street:               strings.TrimSpace(street),
		City:                 strings.TrimSpace(city),
		State:                strings.TrimSpace(state),
		PostalCode:           strings.TrimSpace(postalCode),
		Active:               true,
	}, nil
}

// Update changes the destination fields
func (d *FinalDestination) Update(name, authorizationCode, street, city, state, postalCode string) error {
	if strings.TrimSpace(name) == "" {
		return shared.NewDomainError("INVALID_INPUT", "destination name is required")
	}
	if strings.TrimSpace(authorizationCode) == "" {
		return shared.NewDomainError("INVALID_INPUT", "authorization code is required")
	}
	d.Name = strings.TrimSpace(name)
	d.AuthorizationCode = strings.TrimSpace(authorizationCode)
	d.Street = strings.TrimSpace(street)
	d.City = strings.TrimSpace(city)
	d.State = strings.TrimSpace(state)
	d.PostalCode = strings.TrimSpace(postalCode)
	d.Touch()
	return nil
}

// Activate marks the destination usable for manifests
func (d *FinalDestination) Activate() {
	d.Active = true
	d.Touch()
}

// Deactivate blocks the destination from new manifests
func (d *FinalDestination) Deactivate() {
	d.Active = false
	d.Touch()
}

// Address joins the non-empty address components with commas
func (d *FinalDestination) Address() string {
	return JoinAddress(d.Street, d.City, d.State, d.PostalCode)
}
