package models

import (
	"time"

	"github.com/google/uuid"

	"github.com/resitrack/backend/internal/domain/folio"
)

// FolioReservationModel is the persistence model for the FolioReservation aggregate.
type FolioReservationModel struct {
	AuditedAggregateModel
	SerialNumber    string     `gorm:"type:varchar(20);not null;uniqueIndex"`
	SiteID          uuid.UUID  `gorm:"type:uuid;not null;index:idx_reservation_bucket,priority:1"`
	Month           int        `gorm:"not null;index:idx_reservation_bucket,priority:2"`
	Year            int        `gorm:"not null;index:idx_reservation_bucket,priority:3"`
	Used            bool       `gorm:"not null;default:false"`
	BoundManifestID *uuid.UUID `gorm:"type:uuid;index"`
	UsedAt          *time.Time
}

// TableName returns the table name for GORM
func (FolioReservationModel) TableName() string {
	return "folio_reservations"
}

// ToDomain converts the persistence model to a domain FolioReservation aggregate.
func (m *FolioReservationModel) ToDomain() *folio.FolioReservation {
	r := &folio.FolioReservation{
		SerialNumber:    m.SerialNumber,
		SiteID:          m.SiteID,
		Month:           m.Month,
		Year:            m.Year,
		Used:            m.Used,
		BoundManifestID: m.BoundManifestID,
		UsedAt:          m.UsedAt,
	}
	m.PopulateAuditedAggregateRoot(&r.AuditedAggregateRoot)
	return r
}

// FromDomain populates the persistence model from a domain FolioReservation aggregate.
func (m *FolioReservationModel) FromDomain(r *folio.FolioReservation) {
	m.FromDomainAuditedAggregateRoot(r.AuditedAggregateRoot)
	m.SerialNumber = r.SerialNumber
	m.SiteID = r.SiteID
	m.Month = r.Month
	m.Year = r.Year
	m.Used = r.Used
	m.BoundManifestID = r.BoundManifestID
	m.UsedAt = r.UsedAt
}

// FolioReservationModelFromDomain creates a new persistence model from a domain aggregate.
func FolioReservationModelFromDomain(r *folio.FolioReservation) *FolioReservationModel {
	m := &FolioReservationModel{}
	m.FromDomain(r)
	return m
}

// FolioSequenceModel is the persistence model for per-(site, year) serial counters.
// LastValue is only ever advanced by an atomic upsert.
type FolioSequenceModel struct {
	SiteID    uuid.UUID `gorm:"type:uuid;primaryKey"`
	Year      int       `gorm:"primaryKey"`
	LastValue int64     `gorm:"not null;default:0"`
	UpdatedAt time.Time `gorm:"not null"`
}

// TableName returns the table name for GORM
func (FolioSequenceModel) TableName() string {
	return "folio_sequences"
}

// ToDomain converts the persistence model to a domain FolioSequence.
func (m *FolioSequenceModel) ToDomain() *folio.FolioSequence {
	return &folio.FolioSequence{
		SiteID:    m.SiteID,
		Year:      m.Year,
		LastValue: m.LastValue,
	}
}
