package models

import (
	"time"

	"github.com/glosas/backend/internal/domain/billing"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// InvoiceModel is the persistence model for the Invoice aggregate.
type InvoiceModel struct {
	AggregateModel
	Number     string          `gorm:"type:varchar(50);not null;uniqueIndex"`
	IssuerID   uuid.UUID       `gorm:"type:uuid;not null;index"`
	ReceiverID uuid.UUID       `gorm:"type:uuid;not null;index"`
	IssueDate  time.Time       `gorm:"not null"`
	FilingDate *time.Time
	PayerName  string          `gorm:"type:varchar(300)"`
	Total      decimal.Decimal `gorm:"type:numeric(18,2);not null"`
	Status     string          `gorm:"type:varchar(20);not null;index"`
	Notes      string          `gorm:"type:text"`
}

// TableName returns the table name for GORM
func (InvoiceModel) TableName() string {
	return "invoices"
}

// ToDomain converts the persistence model to a domain Invoice entity.
func (m *InvoiceModel) ToDomain() *billing.Invoice {
	return &billing.Invoice{
		BaseAggregateRoot: m.ToDomainAggregateRoot(),
		Number:            m.Number,
		IssuerID:          m.IssuerID,
		ReceiverID:        m.ReceiverID,
		IssueDate:         m.IssueDate,
		FilingDate:        m.FilingDate,
		PayerName:         m.PayerName,
		Total:             m.Total,
		Status:            billing.InvoiceStatus(m.Status),
		Notes:             m.Notes,
	}
}

// FromDomain populates the persistence model from a domain Invoice entity.
func (m *InvoiceModel) FromDomain(i *billing.Invoice) {
	m.FromDomainAggregateRoot(i.BaseAggregateRoot)
	m.Number = i.Number
	m.IssuerID = i.IssuerID
	m.ReceiverID = i.ReceiverID
	m.IssueDate = i.IssueDate
	m.FilingDate = i.FilingDate
	m.PayerName = i.PayerName
	m.Total = i.Total
	m.Status = string(i.Status)
	m.Notes = i.Notes
}

// InvoiceModelFromDomain creates a new persistence model from a domain Invoice.
func InvoiceModelFromDomain(i *billing.Invoice) *InvoiceModel {
	m := &InvoiceModel{}
	m.FromDomain(i)
	return m
}
