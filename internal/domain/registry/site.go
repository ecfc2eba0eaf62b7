package registry

import (
	"regexp"
	"strings"

	"github.com/google/uuid"

	"github.com/resitrack/backend/internal/domain/shared"
)

var prefixPattern = regexp.MustCompile(`^[A-Z]{2,5}$`)

// GeneratorSite is a waste-generating location under collection contract.
// SerialPrefix identifies the site inside manifest serial numbers.
type GeneratorSite struct {
	shared.AuditedAggregateRoot
	Name         string `json:"name"`
	SerialPrefix string `json:"serial_prefix"`
	Street       string `json:"street"`
	City         string `json:"city"`
	State        string `json:"state"`
	PostalCode   string `json:"postal_code"`
	ContactName  string `json:"contact_name"`
	ContactEmail string `json:"contact_email"`
	Active       bool   `json:"active"`
}

// NewGeneratorSite creates an active generator site
func NewGeneratorSite(name, serialPrefix, street, city, state, postalCode, contactName, contactEmail string, createdBy *uuid.UUID) (*GeneratorSite, error) {
	if strings.TrimSpace(name) == "" {
		return nil, shared.NewDomainError("INVALID_INPUT", "site name is required")
	}
	if !prefixPattern.MatchString(serialPrefix) {
		return nil, shared.NewDomainError("INVALID_INPUT", "serial prefix must be 2 to 5 uppercase letters")
	}

	return &GeneratorSite{
		AuditedAggregateRoot: shared.NewAuditedAggregateRoot(createdBy),
		Name:                 strings.TrimSpace(name),
		SerialPrefix:         serialPrefix,
		Street:               strings.TrimSpace(street),
		City:                 strings.TrimSpace(city),
		State:                strings.TrimSpace(state),
		PostalCode:           strings.TrimSpace(postalCode),
		ContactName:          strings.TrimSpace(contactName),
		ContactEmail:         strings.TrimSpace(contactEmail),
		Active:               true,
	}, nil
}

// Update changes the mutable site fields. The serial prefix is immutable once
// folios have been issued against it, so it is not updatable here.
func (s *GeneratorSite) Update(name, street, city, state, postalCode, contactName, contactEmail string) error {
	if strings.TrimSpace(name) == "" {
		return shared.NewDomainError("INVALID_INPUT", "site name is required")
	}
	s.Name = strings.TrimSpace(name)
	s.Street = strings.TrimSpace(street)
	s.City = strings.TrimSpace(city)
	s.State = strings.TrimSpace(state)
	s.PostalCode = strings.TrimSpace(postalCode)
	s.ContactName = strings.TrimSpace(contactName)
	s.ContactEmail = strings.TrimSpace(contactEmail)
	s.Touch()
	return nil
}

// Activate marks the site usable for manifests
func (s *GeneratorSite) Activate() {
	s.Active = true
	s.Touch()
}

// Deactivate blocks the site from new manifests
func (s *GeneratorSite) Deactivate() {
	s.Active = false
	s.Touch()
}

// Address joins the non-empty address components with commas. An empty result
// means no address data was captured.
func (s *GeneratorSite) Address() string {
	return JoinAddress(s.Street, s.City, s.State, s.PostalCode)
}

// JoinAddress concatenates non-empty address parts with ", "
func JoinAddress(parts ...string) string {
	kept := make([]string, 0, len(parts))
	for _, p := range parts {
		if strings.TrimSpace(p) != "" {
			kept = append(kept, strings.TrimSpace(p))
		}
	}
	return strings.Join(kept, ", ")
}
