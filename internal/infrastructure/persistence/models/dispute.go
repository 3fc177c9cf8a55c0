package models

import (
	"time"

	"github.com/glosas/backend/internal/domain/dispute"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ReasonCodeModel is the persistence model for the ReasonCode aggregate.
type ReasonCodeModel struct {
	AggregateModel
	Code        string `gorm:"type:varchar(30);not null;uniqueIndex"`
	Description string `gorm:"type:varchar(500);not null"`
	AppliesTo   string `gorm:"type:varchar(100)"`
}

// TableName returns the table name for GORM
func (ReasonCodeModel) TableName() string {
	return "reason_codes"
}

// ToDomain converts the persistence model to a domain ReasonCode entity.
func (m *ReasonCodeModel) ToDomain() *dispute.ReasonCode {
	return &dispute.ReasonCode{
		BaseAggregateRoot: m.ToDomainAggregateRoot(),
		Code:              m.Code,
		Description:       m.Description,
		AppliesTo:         m.AppliesTo,
	}
}

// FromDomain populates the persistence model from a domain ReasonCode entity.
func (m *ReasonCodeModel) FromDomain(rc *dispute.ReasonCode) {
	m.FromDomainAggregateRoot(rc.BaseAggregateRoot)
	m.Code = rc.Code
	m.Description = rc.Description
	m.AppliesTo = rc.AppliesTo
}

// ReasonCodeModelFromDomain creates a new persistence model from a domain ReasonCode.
func ReasonCodeModelFromDomain(rc *dispute.ReasonCode) *ReasonCodeModel {
	m := &ReasonCodeModel{}
	m.FromDomain(rc)
	return m
}

// GlosaModel is the persistence model for the Glosa aggregate.
type GlosaModel struct {
	AggregateModel
	InvoiceID     uuid.UUID       `gorm:"type:uuid;not null;index"`
	ReasonCodeID  uuid.UUID       `gorm:"type:uuid;not null;index"`
	DisputeDate   time.Time       `gorm:"not null"`
	Amount        decimal.Decimal `gorm:"type:numeric(18,2);not null"`
	Status        string          `gorm:"type:varchar(50);not null;index"`
	Notes         string          `gorm:"type:text"`
	ResponsibleID *uuid.UUID      `gorm:"type:uuid;index"`
	Deadline      *time.Time      `gorm:"index"`
}

// TableName returns the table name for GORM
func (GlosaModel) TableName() string {
	return "glosas"
}

// ToDomain converts the persistence model to a domain Glosa entity.
func (m *GlosaModel) ToDomain() *dispute.Glosa {
	return &dispute.Glosa{
		BaseAggregateRoot: m.ToDomainAggregateRoot(),
		InvoiceID:         m.InvoiceID,
		ReasonCodeID:      m.ReasonCodeID,
		DisputeDate:       m.DisputeDate,
		Amount:            m.Amount,
		Status:            dispute.GlosaStatus(m.Status),
		Notes:             m.Notes,
		ResponsibleID:     m.ResponsibleID,
		Deadline:          m.Deadline,
	}
}

// FromDomain populates the persistence model from a domain Glosa entity.
func (m *GlosaModel) FromDomain(g *dispute.Glosa) {
	m.FromDomainAggregateRoot(g.BaseAggregateRoot)
	m.InvoiceID = g.InvoiceID
	m.ReasonCodeID = g.ReasonCodeID
	m.DisputeDate = g.DisputeDate
	m.Amount = g.Amount
	m.Status = string(g.Status)
	m.Notes = g.Notes
	m.ResponsibleID = g.ResponsibleID
	m.Deadline = g.Deadline
}

// GlosaModelFromDomain creates a new persistence model from a domain Glosa.
func GlosaModelFromDomain(g *dispute.Glosa) *GlosaModel {
	m := &GlosaModel{}
	m.FromDomain(g)
	return m
}

// GlosaResponseModel is the persistence model for the GlosaResponse aggregate.
type GlosaResponseModel struct {
	AggregateModel
	GlosaID         uuid.UUID       `gorm:"type:uuid;not null;index"`
	ResponderID     uuid.UUID       `gorm:"type:uuid;not null;index"`
	ResponseDate    time.Time       `gorm:"not null"`
	Kind            string          `gorm:"type:varchar(100);not null"`
	Accepted        decimal.Decimal `gorm:"type:numeric(18,2);not null"`
	Rejected        decimal.Decimal `gorm:"type:numeric(18,2);not null"`
	Argument        string          `gorm:"type:text;not null"`
	ResultingStatus string          `gorm:"type:varchar(50);not null"`
}

// TableName returns the table name for GORM
func (GlosaResponseModel) TableName() string {
	return "glosa_responses"
}

// ToDomain converts the persistence model to a domain GlosaResponse entity.
func (m *GlosaResponseModel) ToDomain() *dispute.GlosaResponse {
	return &dispute.GlosaResponse{
		BaseAggregateRoot: m.ToDomainAggregateRoot(),
		GlosaID:           m.GlosaID,
		ResponderID:       m.ResponderID,
		ResponseDate:      m.ResponseDate,
		Kind:              m.Kind,
		Accepted:          m.Accepted,
		Rejected:          m.Rejected,
		Argument:          m.Argument,
		ResultingStatus:   dispute.GlosaStatus(m.ResultingStatus),
	}
}

// FromDomain populates the persistence model from a domain GlosaResponse entity.
func (m *GlosaResponseModel) FromDomain(r *dispute.GlosaResponse) {
	m.FromDomainAggregateRoot(r.BaseAggregateRoot)
	m.GlosaID = r.GlosaID
	m.ResponderID = r.ResponderID
	m.ResponseDate = r.ResponseDate
	m.Kind = r.Kind
	m.Accepted = r.Accepted
	m.Rejected = r.Rejected
	m.Argument = r.Argument
	m.ResultingStatus = string(r.ResultingStatus)
}

// GlosaResponseModelFromDomain creates a new persistence model from a domain GlosaResponse.
func GlosaResponseModelFromDomain(r *dispute.GlosaResponse) *GlosaResponseModel {
	m := &GlosaResponseModel{}
	m.FromDomain(r)
	return m
}

// AttachmentModel is the persistence model for the Attachment aggregate.
type AttachmentModel struct {
	AggregateModel
	GlosaID     *uuid.UUID `gorm:"type:uuid;index"`
	ResponseID  *uuid.UUID `gorm:"type:uuid;index"`
	FileName    string     `gorm:"type:varchar(300);not null"`
	MimeType    string     `gorm:"type:varchar(100)"`
	StoragePath string     `gorm:"type:varchar(500);not null"`
	Category    string     `gorm:"type:varchar(100)"`
	UploaderID  uuid.UUID  `gorm:"type:uuid;not null"`
}

// TableName returns the table name for GORM
func (AttachmentModel) TableName() string {
	return "attachments"
}

// ToDomain converts the persistence model to a domain Attachment entity.
func (m *AttachmentModel) ToDomain() *dispute.Attachment {
	return &dispute.Attachment{
		BaseAggregateRoot: m.ToDomainAggregateRoot(),
		GlosaID:           m.GlosaID,
		ResponseID:        m.ResponseID,
		FileName:          m.FileName,
		MimeType:          m.MimeType,
		StoragePath:       m.StoragePath,
		Category:          m.Category,
		UploaderID:        m.UploaderID,
	}
}

// FromDomain populates the persistence model from a domain Attachment entity.
func (m *AttachmentModel) FromDomain(a *dispute.Attachment) {
	m.FromDomainAggregateRoot(a.BaseAggregateRoot)
	m.GlosaID = a.GlosaID
	m.ResponseID = a.ResponseID
	m.FileName = a.FileName
	m.MimeType = a.MimeType
	m.StoragePath = a.StoragePath
	m.Category = a.Category
	m.UploaderID = a.UploaderID
}

// AttachmentModelFromDomain creates a new persistence model from a domain Attachment.
func AttachmentModelFromDomain(a *dispute.Attachment) *AttachmentModel {
	m := &AttachmentModel{}
	m.FromDomain(a)
	return m
}
