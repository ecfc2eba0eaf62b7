package manifest

import (
	"time"

	"github.com/google/uuid"

	"github.com/resitrack/backend/internal/domain/folio"
	"github.com/resitrack/backend/internal/domain/shared"
)

// ErrInvalidPeriod rejects inverted manifest periods
var ErrInvalidPeriod = shared.NewDomainError("INVALID_PERIOD", "Period start must not be after period end")

// AddressFallback replaces empty snapshot addresses on the printed document
const AddressFallback = "not specified"

// PartySnapshot freezes a party's name and address at issuance time
type PartySnapshot struct {
	Name    string `json:"name"`
	Address string `json:"address"`
}

// IssuerSnapshot freezes the issuing company's legal identity at issuance time
type IssuerSnapshot struct {
	Name           string `json:"name"`
	Address        string `json:"address"`
	RegistryNumber string `json:"registry_number"`
}

// VehicleSnapshot freezes the vehicle identification at issuance time
type VehicleSnapshot struct {
	Plates string `json:"plates"`
	Model  string `json:"model"`
}

// DestinationSnapshot freezes the final destination identification at issuance time
type DestinationSnapshot struct {
	Name              string `json:"name"`
	AuthorizationCode string `json:"authorization_code"`
}

// Manifest is an issued regulatory collection manifest. Everything except the
// PDF bookkeeping fields is immutable once the document exists.
type Manifest struct {
	shared.AuditedAggregateRoot
	SerialNumber        string              `json:"serial_number"`
	GeneratorSiteID     uuid.UUID           `json:"generator_site_id"`
	DriverID            uuid.UUID           `json:"driver_id"`
	VehicleID           uuid.UUID           `json:"vehicle_id"`
	DestinationID       uuid.UUID           `json:"destination_id"`
	PeriodStart         time.Time           `json:"period_start"`
	PeriodEnd           time.Time           `json:"period_end"`
	IssueDate           time.Time           `json:"issue_date"`
	Residues            ResidueBreakdown    `json:"residues"`
	GeneratorSnapshot   PartySnapshot       `json:"generator_snapshot"`
	IssuerSnapshot      IssuerSnapshot      `json:"issuer_snapshot"`
	DriverName          string              `json:"driver_name"`
	VehicleSnapshot     VehicleSnapshot     `json:"vehicle_snapshot"`
	DestinationSnapshot DestinationSnapshot `json:"destination_snapshot"`
	PDFGenerated        bool                `json:"pdf_generated"`
	PDFPath             *string             `json:"pdf_path,omitempty"`
}

// NewManifestParams carries everything the constructor needs. Snapshots are
// assembled by the application layer from live registry data and settings.
type NewManifestParams struct {
	SerialNumber        string
	GeneratorSiteID     uuid.UUID
	DriverID            uuid.UUID
	VehicleID           uuid.UUID
	DestinationID       uuid.UUID
	PeriodStart         time.Time
	PeriodEnd           time.Time
	IssueDate           time.Time
	Residues            ResidueBreakdown
	GeneratorSnapshot   PartySnapshot
	IssuerSnapshot      IssuerSnapshot
	DriverName          string
	VehicleSnapshot     VehicleSnapshot
	DestinationSnapshot DestinationSnapshot
	CreatedBy           *uuid.UUID
}

// NewManifest creates an issued manifest
func NewManifest(p NewManifestParams) (*Manifest, error) {
	if err := ValidatePeriod(p.PeriodStart, p.PeriodEnd); err != nil {
		return nil, err
	}
	if !folio.IsValidSerialNumber(p.SerialNumber) {
		return nil, shared.NewDomainError("INVALID_INPUT", "manifest serial number is malformed")
	}
	for _, id := range []uuid.UUID{p.GeneratorSiteID, p.DriverID, p.VehicleID, p.DestinationID} {
		if id == uuid.Nil {
			return nil, shared.NewDomainError("INVALID_INPUT", "all participant references are required")
		}
	}
	if !p.Residues.IsComplete() {
		return nil, shared.NewDomainError("INVALID_INPUT", "residue breakdown must cover the full catalog")
	}

	issueDate := p.IssueDate
	if issueDate.IsZero() {
		issueDate = time.Now()
	}

	m := &Manifest{
		AuditedAggregateRoot: shared.NewAuditedAggregateRoot(p.CreatedBy),
		SerialNumber:         p.SerialNumber,
		GeneratorSiteID:      p.GeneratorSiteID,
		DriverID:             p.DriverID,
		VehicleID:            p.VehicleID,
		DestinationID:        p.DestinationID,
		PeriodStart:          p.PeriodStart,
		PeriodEnd:            p.PeriodEnd,
		IssueDate:            issueDate,
		Residues:             p.Residues,
		GeneratorSnapshot:    p.GeneratorSnapshot,
		IssuerSnapshot:       p.IssuerSnapshot,
		DriverName:           p.DriverName,
		VehicleSnapshot:      p.VehicleSnapshot,
		DestinationSnapshot:  p.DestinationSnapshot,
	}
	m.AddDomainEvent(NewManifestIssuedEvent(m.ID, m.SerialNumber, m.GeneratorSiteID))

	return m, nil
}

// ValidatePeriod rejects inverted date ranges. Equal start and end is a valid
// single-day period.
func ValidatePeriod(start, end time.Time) error {
	if start.IsZero() || end.IsZero() {
		return shared.NewDomainError("INVALID_INPUT", "period start and end are required")
	}
	if start.After(end) {
		return ErrInvalidPeriod
	}
	return nil
}

// UpdatePDF records PDF bookkeeping. This is the only mutation a manifest
// supports after issuance.
func (m *Manifest) UpdatePDF(generated bool, path *string) {
	m.PDFGenerated = generated
	m.PDFPath = path
	m.Touch()
	m.AddDomainEvent(NewManifestPDFUpdatedEvent(m.ID, m.SerialNumber, generated))
}

// TotalKilograms is the sum over all residue categories
func (m *Manifest) TotalKilograms() string {
	return m.Residues.TotalKilograms().String()
}
