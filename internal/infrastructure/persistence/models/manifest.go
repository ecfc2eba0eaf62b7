package models

import (
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/resitrack/backend/internal/domain/manifest"
)

// ManifestModel is the persistence model for the Manifest aggregate.
// Participant snapshots are flattened into columns; residue lines live in a
// child table and are always loaded together with the manifest.
type ManifestModel struct {
	AuditedAggregateModel
	SerialNumber        string    `gorm:"type:varchar(20);not null;uniqueIndex"`
	GeneratorSiteID     uuid.UUID `gorm:"type:uuid;not null;index"`
	DriverID            uuid.UUID `gorm:"type:uuid;not null"`
	VehicleID           uuid.UUID `gorm:"type:uuid;not null"`
	DestinationID       uuid.UUID `gorm:"type:uuid;not null"`
	PeriodStart         time.Time `gorm:"type:date;not null"`
	PeriodEnd           time.Time `gorm:"type:date;not null"`
	IssueDate           time.Time `gorm:"type:date;not null;index"`
	GeneratorName       string    `gorm:"type:varchar(200);not null"`
	GeneratorAddress    string    `gorm:"type:text"`
	IssuerName          string    `gorm:"type:varchar(200);not null"`
	IssuerAddress       string    `gorm:"type:text"`
	IssuerRegistry      string    `gorm:"type:varchar(100)"`
	DriverName          string    `gorm:"type:varchar(200);not null"`
	VehiclePlates       string    `gorm:"type:varchar(50);not null"`
	VehicleModel        string    `gorm:"type:varchar(100)"`
	DestinationName     string    `gorm:"type:varchar(200);not null"`
	DestinationAuthCode string    `gorm:"type:varchar(100)"`
	PDFGenerated        bool      `gorm:"not null;default:false"`
	PDFPath             *string   `gorm:"type:text"`

	Residues []ManifestResidueModel `gorm:"foreignKey:ManifestID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for GORM
func (ManifestModel) TableName() string {
	return "manifests"
}

// ManifestResidueModel is one residue line of a manifest. Every manifest has
// exactly one row per catalog category, zero quantities included.
type ManifestResidueModel struct {
	ManifestID   uuid.UUID       `gorm:"type:uuid;primaryKey"`
	CategoryCode string          `gorm:"type:varchar(30);primaryKey"`
	Position     int             `gorm:"not null"`
	Kilograms    decimal.Decimal `gorm:"type:decimal(12,3);not null;default:0"`
}

// TableName returns the table name for GORM
func (ManifestResidueModel) TableName() string {
	return "manifest_residues"
}

// ToDomain converts the persistence model to a domain Manifest aggregate.
// Residue lines are returned in catalog order regardless of storage order.
func (m *ManifestModel) ToDomain() *manifest.Manifest {
	residues := make([]ManifestResidueModel, len(m.Residues))
	copy(residues, m.Residues)
	sort.Slice(residues, func(i, j int) bool {
		return residues[i].Position < residues[j].Position
	})

	breakdown := make(manifest.ResidueBreakdown, len(residues))
	for i, r := range residues {
		breakdown[i] = manifest.ResidueAmount{
			CategoryCode: r.CategoryCode,
			Kilograms:    r.Kilograms,
		}
	}

	doc := &manifest.Manifest{
		SerialNumber:    m.SerialNumber,
		GeneratorSiteID: m.GeneratorSiteID,
		DriverID:        m.DriverID,
		VehicleID:       m.VehicleID,
		DestinationID:   m.DestinationID,
		PeriodStart:     m.PeriodStart,
		PeriodEnd:       m.PeriodEnd,
		IssueDate:       m.IssueDate,
		Residues:        breakdown,
		GeneratorSnapshot: manifest.PartySnapshot{
			Name:    m.GeneratorName,
			Address: m.GeneratorAddress,
		},
		IssuerSnapshot: manifest.IssuerSnapshot{
			Name:           m.IssuerName,
			Address:        m.IssuerAddress,
			RegistryNumber: m.IssuerRegistry,
		},
		DriverName: m.DriverName,
		VehicleSnapshot: manifest.VehicleSnapshot{
			Plates: m.VehiclePlates,
			Model:  m.VehicleModel,
		},
		DestinationSnapshot: manifest.DestinationSnapshot{
			Name:              m.DestinationName,
			AuthorizationCode: m.DestinationAuthCode,
		},
		PDFGenerated: m.PDFGenerated,
		PDFPath:      m.PDFPath,
	}
	m.PopulateAuditedAggregateRoot(&doc.AuditedAggregateRoot)
	return doc
}

// FromDomain populates the persistence model from a domain Manifest aggregate.
func (m *ManifestModel) FromDomain(doc *manifest.Manifest) {
	m.FromDomainAuditedAggregateRoot(doc.AuditedAggregateRoot)
	m.SerialNumber = doc.SerialNumber
	m.GeneratorSiteID = doc.GeneratorSiteID
	m.DriverID = doc.DriverID
	m.VehicleID = doc.VehicleID
	m.DestinationID = doc.DestinationID
	m.PeriodStart = doc.PeriodStart
	m.PeriodEnd = doc.PeriodEnd
	m.IssueDate = doc.IssueDate
	m.GeneratorName = doc.GeneratorSnapshot.Name
	m.GeneratorAddress = doc.GeneratorSnapshot.Address
	m.IssuerName = doc.IssuerSnapshot.Name
	m.IssuerAddress = doc.IssuerSnapshot.Address
	m.IssuerRegistry = doc.IssuerSnapshot.RegistryNumber
	m.DriverName = doc.DriverName
	m.VehiclePlates = doc.VehicleSnapshot.Plates
	m.VehicleModel = doc.VehicleSnapshot.Model
	m.DestinationName = doc.DestinationSnapshot.Name
	m.DestinationAuthCode = doc.DestinationSnapshot.AuthorizationCode
	m.PDFGenerated = doc.PDFGenerated
	m.PDFPath = doc.PDFPath

	m.Residues = make([]ManifestResidueModel, len(doc.Residues))
	for i, line := range doc.Residues {
		position := i + 1
		if cat, ok := manifest.CategoryByCode(line.CategoryCode); ok {
			position = cat.Position
		}
		m.Residues[i] = ManifestResidueModel{
			ManifestID:   doc.ID,
			CategoryCode: line.CategoryCode,
			Position:     position,
			Kilograms:    line.Kilograms,
		}
	}
}

// ManifestModelFromDomain creates a new persistence model from a domain aggregate.
func ManifestModelFromDomain(doc *manifest.Manifest) *ManifestModel {
	m := &ManifestModel{}
	m.FromDomain(doc)
	return m
}
