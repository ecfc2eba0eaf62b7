package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/resitrack/backend/internal/domain/collection"
)

// CollectionEventModel is the persistence model for the CollectionEvent aggregate.
type CollectionEventModel struct {
	AuditedAggregateModel
	SiteID    uuid.UUID `gorm:"type:uuid;not null;index:idx_collection_site_date,priority:1"`
	EventDate time.Time `gorm:"type:date;not null;index:idx_collection_site_date,priority:2"`
	Notes     string    `gorm:"type:text"`

	Details []CollectionEventDetailModel `gorm:"foreignKey:EventID;constraint:OnDelete:CASCADE"`
}

// TableName returns the table name for GORM
func (CollectionEventModel) TableName() string {
	return "collection_events"
}

// CollectionEventDetailModel is one collected-quantity line of a collection event.
type CollectionEventDetailModel struct {
	EventID      uuid.UUID       `gorm:"type:uuid;primaryKey"`
	CategoryCode string          `gorm:"type:varchar(30);primaryKey;index"`
	Kilograms    decimal.Decimal `gorm:"type:decimal(12,3);not null;default:0"`
}

// TableName returns the table name for GORM
func (CollectionEventDetailModel) TableName() string {
	return "collection_event_details"
}

// ToDomain converts the persistence model to a domain CollectionEvent aggregate.
func (m *CollectionEventModel) ToDomain() *collection.CollectionEvent {
	details := make([]collection.EventDetail, len(m.Details))
	for i, d := range m.Details {
		details[i] = collection.EventDetail{
			CategoryCode: d.CategoryCode,
			Kilograms:    d.Kilograms,
		}
	}

	e := &collection.CollectionEvent{
		SiteID:    m.SiteID,
		EventDate: m.EventDate,
		Notes:     m.Notes,
		Details:   details,
	}
	m.PopulateAuditedAggregateRoot(&e.AuditedAggregateRoot)
	return e
}

// FromDomain populates the persistence model from a domain CollectionEvent aggregate.
func (m *CollectionEventModel) FromDomain(e *collection.CollectionEvent) {
	m.FromDomainAuditedAggregateRoot(e.AuditedAggregateRoot)
	m.SiteID = e.SiteID
	m.EventDate = e.EventDate
	m.Notes = e.Notes

	m.Details = make([]CollectionEventDetailModel, len(e.Details))
	for i, d := range e.Details {
		m.Details[i] = CollectionEventDetailModel{
			EventID:      e.ID,
			CategoryCode: d.CategoryCode,
			Kilograms:    d.Kilograms,
		}
	}
}

// CollectionEventModelFromDomain creates a new persistence model from a domain aggregate.
func CollectionEventModelFromDomain(e *collection.CollectionEvent) *CollectionEventModel {
	m := &CollectionEventModel{}
	m.FromDomain(e)
	return m
}
