package models

import (
	"github.com/glosas/backend/internal/domain/partner"
)

// InstitutionModel is the persistence model for the Institution aggregate.
type InstitutionModel struct {
	AggregateModel
	TaxID        string `gorm:"type:varchar(30);not null;uniqueIndex"`
	LegalName    string `gorm:"type:varchar(300);not null"`
	TradeName    string `gorm:"type:varchar(300)"`
	Kind         string `gorm:"type:varchar(10);not null;index"`
	Address      string `gorm:"type:varchar(300)"`
	Phone        string `gorm:"type:varchar(50)"`
	ContactEmail string `gorm:"type:varchar(200)"`
	Active       bool   `gorm:"not null;default:true"`
}

// TableName returns the table name for GORM
func (InstitutionModel) TableName() string {
	return "institutions"
}

// ToDomain converts the persistence model to a domain Institution entity.
func (m *InstitutionModel) ToDomain() *partner.Institution {
	return &partner.Institution{
		BaseAggregateRoot: m.ToDomainAggregateRoot(),
		TaxID:             m.TaxID,
		LegalName:         m.LegalName,
		TradeName:         m.TradeName,
		Kind:              partner.InstitutionKind(m.Kind),
		Address:           m.Address,
		Phone:             m.Phone,
		ContactEmail:      m.ContactEmail,
		Active:            m.Active,
	}
}

// FromDomain populates the persistence model from a domain Institution entity.
func (m *InstitutionModel) FromDomain(i *partner.Institution) {
	m.FromDomainAggregateRoot(i.BaseAggregateRoot)
	m.TaxID = i.TaxID
	m.LegalName = i.LegalName
	m.TradeName = i.TradeName
	m.Kind = string(i.Kind)
	m.Address = i.Address
	m.Phone = i.Phone
	m.ContactEmail = i.ContactEmail
	m.Active = i.Active
}

// InstitutionModelFromDomain creates a new persistence model from a domain Institution.
func InstitutionModelFromDomain(i *partner.Institution) *InstitutionModel {
	m := &InstitutionModel{}
	m.FromDomain(i)
	return m
}
