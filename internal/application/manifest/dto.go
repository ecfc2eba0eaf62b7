package manifest

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/resitrack/backend/internal/domain/manifest"
)

// CreateManifestRequest asks for a new manifest to be issued.
// An empty ReservedSerial selects automatic serial allocation; a zero
// IssueDate defaults to today.
type CreateManifestRequest struct {
	GeneratorSiteID uuid.UUID  `json:"generator_site_id"`
	DriverID        uuid.UUID  `json:"driver_id"`
	VehicleID       uuid.UUID  `json:"vehicle_id"`
	DestinationID   uuid.UUID  `json:"destination_id"`
	PeriodStart     time.Time  `json:"period_start"`
	PeriodEnd       time.Time  `json:"period_end"`
	IssueDate       time.Time  `json:"issue_date"`
	ReservedSerial  string     `json:"reserved_serial"`
	CreatedBy       *uuid.UUID `json:"created_by,omitempty"`
}

// UpdatePDFRequest updates the PDF bookkeeping fields, nothing else
type UpdatePDFRequest struct {
	PDFGenerated bool    `json:"pdf_generated"`
	PDFPath      *string `json:"pdf_path"`
}

// ResidueLineResponse is one catalog row of a manifest or aggregation
type ResidueLineResponse struct {
	CategoryCode string          `json:"category_code"`
	CategoryName string          `json:"category_name"`
	Position     int             `json:"position"`
	Kilograms    decimal.Decimal `json:"kilograms"`
}

// ManifestResponse is the API view of an issued manifest
type ManifestResponse struct {
	ID                  uuid.UUID                    `json:"id"`
	SerialNumber        string                       `json:"serial_number"`
	GeneratorSiteID     uuid.UUID                    `json:"generator_site_id"`
	DriverID            uuid.UUID                    `json:"driver_id"`
	VehicleID           uuid.UUID                    `json:"vehicle_id"`
	DestinationID       uuid.UUID                    `json:"destination_id"`
	PeriodStart         time.Time                    `json:"period_start"`
	PeriodEnd           time.Time                    `json:"period_end"`
	IssueDate           time.Time                    `json:"issue_date"`
	Residues            []ResidueLineResponse        `json:"residues"`
	TotalKilograms      decimal.Decimal              `json:"total_kilograms"`
	GeneratorSnapshot   manifest.PartySnapshot       `json:"generator_snapshot"`
	IssuerSnapshot      manifest.IssuerSnapshot      `json:"issuer_snapshot"`
	DriverName          string                       `json:"driver_name"`
	VehicleSnapshot     manifest.VehicleSnapshot     `json:"vehicle_snapshot"`
	DestinationSnapshot manifest.DestinationSnapshot `json:"destination_snapshot"`
	PDFGenerated        bool                         `json:"pdf_generated"`
	PDFPath             *string                      `json:"pdf_path,omitempty"`
	CreatedAt           time.Time                    `json:"created_at"`
}

// AggregationResponse is a standalone period aggregation result
type AggregationResponse struct {
	SiteID         uuid.UUID             `json:"site_id"`
	PeriodStart    time.Time             `json:"period_start"`
	PeriodEnd      time.Time             `json:"period_end"`
	Residues       []ResidueLineResponse `json:"residues"`
	TotalKilograms decimal.Decimal       `json:"total_kilograms"`
}

// ToResidueLines maps a breakdown to catalog-annotated API rows
func ToResidueLines(b manifest.ResidueBreakdown) []ResidueLineResponse {
	out := make([]ResidueLineResponse, len(b))
	for i, a := range b {
		cat, _ := manifest.CategoryByCode(a.CategoryCode)
		out[i] = ResidueLineResponse{
			CategoryCode: a.CategoryCode,
			CategoryName: cat.Name,
			Position:     cat.Position,
			Kilograms:    a.Kilograms,
		}
	}
	return out
}

// ToManifestResponse maps a domain manifest to its API view
func ToManifestResponse(m *manifest.Manifest) ManifestResponse {
	return ManifestResponse{
		ID:                  m.ID,
		SerialNumber:        m.SerialNumber,
		GeneratorSiteID:     m.GeneratorSiteID,
		DriverID:            m.DriverID,
		VehicleID:           m.VehicleID,
		DestinationID:       m.DestinationID,
		PeriodStart:         m.PeriodStart,
		PeriodEnd:           m.PeriodEnd,
		IssueDate:           m.IssueDate,
		Residues:            ToResidueLines(m.Residues),
		TotalKilograms:      m.Residues.TotalKilograms(),
		GeneratorSnapshot:   m.GeneratorSnapshot,
		IssuerSnapshot:      m.IssuerSnapshot,
		DriverName:          m.DriverName,
		VehicleSnapshot:     m.VehicleSnapshot,
		DestinationSnapshot: m.DestinationSnapshot,
		PDFGenerated:        m.PDFGenerated,
		PDFPath:             m.PDFPath,
		CreatedAt:           m.CreatedAt,
	}
}
