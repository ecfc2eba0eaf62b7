package models

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/resitrack/backend/internal/domain/registry"
)

// GeneratorSiteModel is the persistence model for the GeneratorSite aggregate.
type GeneratorSiteModel struct {
	AuditedAggregateModel
	Name         string `gorm:"type:varchar(200);not null"`
	SerialPrefix string `gorm:"type:varchar(5);not null;uniqueIndex"`
	Street       string `gorm:"type:varchar(200)"`
	City         string `gorm:"type:varchar(100)"`
	State        string `gorm:"type:varchar(100)"`
	PostalCode   string `gorm:"type:varchar(20)"`
	ContactName  string `gorm:"type:varchar(100)"`
	ContactEmail string `gorm:"type:varchar(200)"`
	Active       bool   `gorm:"not null;default:true"`
}

// TableName returns the table name for GORM
func (GeneratorSiteModel) TableName() string {
	return "generator_sites"
}

// ToDomain converts the persistence model to a domain GeneratorSite aggregate.
func (m *GeneratorSiteModel) ToDomain() *registry.GeneratorSite {
	s := &registry.GeneratorSite{
		Name:         m.Name,
		SerialPrefix: m.SerialPrefix,
		Street:       m.Street,
		City:         m.City,
		State:        m.State,
		PostalCode:   m.PostalCode,
		ContactName:  m.ContactName,
		ContactEmail: m.ContactEmail,
		Active:       m.Active,
	}
	m.PopulateAuditedAggregateRoot(&s.AuditedAggregateRoot)
	return s
}

// FromDomain populates the persistence model from a domain GeneratorSite aggregate.
func (m *GeneratorSiteModel) FromDomain(s *registry.GeneratorSite) {
	m.FromDomainAuditedAggregateRoot(s.AuditedAggregateRoot)
	m.Name = s.Name
	m.SerialPrefix = s.SerialPrefix
	m.Street = s.Street
	m.City = s.City
	m.State = s.State
	m.PostalCode = s.PostalCode
	m.ContactName = s.ContactName
	m.ContactEmail = s.ContactEmail
	m.Active = s.Active
}

// GeneratorSiteModelFromDomain creates a new persistence model from a domain aggregate.
func GeneratorSiteModelFromDomain(s *registry.GeneratorSite) *GeneratorSiteModel {
	m := &GeneratorSiteModel{}
	m.FromDomain(s)
	return m
}

// CollectionDriverModel is the persistence model for the CollectionDriver aggregate.
type CollectionDriverModel struct {
	AuditedAggregateModel
	Name          string `gorm:"type:varchar(200);not null"`
	LicenseNumber string `gorm:"type:varchar(100)"`
	Active        bool   `gorm:"not null;default:true"`
}

// TableName returns the table name for GORM
func (CollectionDriverModel) TableName() string {
	return "collection_drivers"
}

// ToDomain converts the persistence model to a domain CollectionDriver aggregate.
func (m *CollectionDriverModel) ToDomain() *registry.CollectionDriver {
	d := &registry.CollectionDriver{
		Name:          m.Name,
		LicenseNumber: m.LicenseNumber,
		Active:        m.Active,
	}
	m.PopulateAuditedAggregateRoot(&d.AuditedAggregateRoot)
	return d
}

// FromDomain populates the persistence model from a domain CollectionDriver aggregate.
func (m *CollectionDriverModel) FromDomain(d *registry.CollectionDriver) {
	m.FromDomainAuditedAggregateRoot(d.AuditedAggregateRoot)
	m.Name = d.Name
	m.LicenseNumber = d.LicenseNumber
	m.Active = d.Active
}

// CollectionDriverModelFromDomain creates a new persistence model from a domain aggregate.
func CollectionDriverModelFromDomain(d *registry.CollectionDriver) *CollectionDriverModel {
	m := &CollectionDriverModel{}
	m.FromDomain(d)
	return m
}

// VehicleModel is the persistence model for the Vehicle aggregate.
type VehicleModel struct {
	AuditedAggregateModel
	Plates     string          `gorm:"type:varchar(50);not null;uniqueIndex"`
	Model      string          `gorm:"type:varchar(100)"`
	CapacityKg decimal.Decimal `gorm:"type:decimal(10,2);not null;default:0"`
	Active     bool            `gorm:"not null;default:true"`
}

// TableName returns the table name for GORM
func (VehicleModel) TableName() string {
	return "vehicles"
}

// ToDomain converts the persistence model to a domain Vehicle aggregate.
func (m *VehicleModel) ToDomain() *registry.Vehicle {
	v := &registry.Vehicle{
		Plates:     m.Plates,
		Model:      m.Model,
		CapacityKg: m.CapacityKg,
		Active:     m.Active,
	}
	m.PopulateAuditedAggregateRoot(&v.AuditedAggregateRoot)
	return v
}

// FromDomain populates the persistence model from a domain Vehicle aggregate.
func (m *VehicleModel) FromDomain(v *registry.Vehicle) {
	m.FromDomainAuditedAggregateRoot(v.AuditedAggregateRoot)
	m.Plates = v.Plates
	m.Model = v.Model
	m.CapacityKg = v.CapacityKg
	m.Active = v.Active
}

// VehicleModelFromDomain creates a new persistence model from a domain aggregate.
func VehicleModelFromDomain(v *registry.Vehicle) *VehicleModel {
	m := &VehicleModel{}
	m.FromDomain(v)
	return m
}

// FinalDestinationModel is the persistence model for the FinalDestination aggregate.
type FinalDestinationModel struct {
	AuditedAggregateModel
	Name              string `gorm:"type:varchar(200);not null"`
	AuthorizationCode string `gorm:"type:varchar(100);not null"`
	Street            string `gorm:"type:varchar(200)"`
	City              string `gorm:"type:varchar(100)"`
	State             string `gorm:"type:varchar(100)"`
	PostalCode        string `gorm:"type:varchar(20)"`
	Active            bool   `gorm:"not null;default:true"`
}

// TableName returns the table name for GORM
func (FinalDestinationModel) TableName() string {
	return "final_destinations"
}

// ToDomain converts the persistence model to a domain FinalDestination aggregate.
func (m *FinalDestinationModel) ToDomain() *registry.FinalDestination {
	d := &registry.FinalDestination{
		Name:              m.Name,
		AuthorizationCode: m.AuthorizationCode,
		Street:            m.Street,
		City:              m.City,
		State:             m.State,
		PostalCode:        m.PostalCode,
		Active:            m.Active,
	}
	m.PopulateAuditedAggregateRoot(&d.AuditedAggregateRoot)
	return d
}

// FromDomain populates the persistence model from a domain FinalDestination aggregate.
func (m *FinalDestinationModel) FromDomain(d *registry.FinalDestination) {
	m.FromDomainAuditedAggregateRoot(d.AuditedAggregateRoot)
	m.Name = d.Name
	m.AuthorizationCode = d.AuthorizationCode
	m.Street = d.Street
	m.City = d.City
	m.State = d.State
	m.PostalCode = d.PostalCode
	m.Active = d.Active
}

// FinalDestinationModelFromDomain creates a new persistence model from a domain aggregate.
func FinalDestinationModelFromDomain(d *registry.FinalDestination) *FinalDestinationModel {
	m := &FinalDestinationModel{}
	m.FromDomain(d)
	return m
}

// SystemSettingModel is the persistence model for key/value system settings.
type SystemSettingModel struct {
	Key       string    `gorm:"type:varchar(100);primaryKey"`
	Value     string    `gorm:"type:text;not null"`
	UpdatedAt time.Time `gorm:"not null"`
}

// TableName returns the table name for GORM
func (SystemSettingModel) TableName() string {
	return "system_settings"
}

// ToDomain converts the persistence model to a domain SystemSetting.
func (m *SystemSettingModel) ToDomain() *registry.SystemSetting {
	return &registry.SystemSetting{
		Key:       m.Key,
		Value:     m.Value,
		UpdatedAt: m.UpdatedAt,
	}
}

// SystemSettingModelFromDomain creates a new persistence model from a domain setting.
func SystemSettingModelFromDomain(s *registry.SystemSetting) *SystemSettingModel {
	return &SystemSettingModel{
		Key:       s.Key,
		Value:     s.Value,
		UpdatedAt: s.UpdatedAt,
	}
}
