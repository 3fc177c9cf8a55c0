package dispute

import (
	"time"

	"github.com/glosas/backend/internal/domain/dispute"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CreateReasonCodeRequest represents a request to register a reason code
type CreateReasonCodeRequest struct {
	Code        string `json:"code" binding:"required,min=1,max=30"`
	Description string `json:"description" binding:"required,min=1,max=500"`
	AppliesTo   string `json:"applies_to" binding:"max=100"`
}

// UpdateReasonCodeRequest represents a partial reason code update
type UpdateReasonCodeRequest struct {
	Description *string `json:"description" binding:"omitempty,min=1,max=500"`
	AppliesTo   *string `json:"applies_to" binding:"omitempty,max=100"`
}

// ReasonCodeResponse represents a reason code in API responses
type ReasonCodeResponse struct {
	ID          uuid.UUID `json:"id"`
	Code        string    `json:"code"`
	Description string    `json:"description"`
	AppliesTo   string    `json:"applies_to"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

// ToReasonCodeResponse converts a domain reason code into its API representation
func ToReasonCodeResponse(rc *dispute.ReasonCode) *ReasonCodeResponse {
	return &ReasonCodeResponse{
		ID:          rc.ID,
		Code:        rc.Code,
		Description: rc.Description,
		AppliesTo:   rc.AppliesTo,
		CreatedAt:   rc.CreatedAt,
		UpdatedAt:   rc.UpdatedAt,
	}
}

// ReasonCodeListResponse is a paginated list of reason codes
type ReasonCodeListResponse struct {
	Items []*ReasonCodeResponse `json:"items"`
	Total int64                 `json:"total"`
}

// CreateGlosaRequest represents a request to file a dispute
type CreateGlosaRequest struct {
	InvoiceID     uuid.UUID       `json:"invoice_id" binding:"required"`
	ReasonCodeID  uuid.UUID       `json:"reason_code_id" binding:"required"`
	DisputeDate   time.Time       `json:"dispute_date" binding:"required"`
	Amount        decimal.Decimal `json:"amount" binding:"required"`
	Notes         string          `json:"notes"`
	ResponsibleID *uuid.UUID      `json:"responsible_id"`
	Deadline      *time.Time      `json:"deadline"`
}

// UpdateGlosaRequest represents a partial glosa update
type UpdateGlosaRequest struct {
	Notes         *string    `json:"notes"`
	ResponsibleID *uuid.UUID `json:"responsible_id"`
	Deadline      *time.Time `json:"deadline"`
}

// OverrideStatusRequest carries the free-text status set by an administrator
type OverrideStatusRequest struct {
	Status string `json:"status" binding:"required,min=1,max=50"`
}

// GlosaResponse represents a glosa in API responses
type GlosaResponse struct {
	ID            uuid.UUID       `json:"id"`
	InvoiceID     uuid.UUID       `json:"invoice_id"`
	ReasonCodeID  uuid.UUID       `json:"reason_code_id"`
	DisputeDate   time.Time       `json:"dispute_date"`
	Amount        decimal.Decimal `json:"amount"`
	Status        string          `json:"status"`
	Notes         string          `json:"notes"`
	ResponsibleID *uuid.UUID      `json:"responsible_id,omitempty"`
	Deadline      *time.Time      `json:"deadline,omitempty"`
	AlertLevel    string          `json:"alert_level"`
	AlertColor    string          `json:"alert_color"`
	CreatedAt     time.Time       `json:"created_at"`
	UpdatedAt     time.Time       `json:"updated_at"`
}

// ToGlosaResponse converts a domain glosa into its API representation,
// classifying its alert level against today.
func ToGlosaResponse(g *dispute.Glosa, today time.Time) *GlosaResponse {
	alert := g.ClassifyAlert(today)
	return &GlosaResponse{
		ID:            g.ID,
		InvoiceID:     g.InvoiceID,
		ReasonCodeID:  g.ReasonCodeID,
		DisputeDate:   g.DisputeDate,
		Amount:        g.Amount,
		Status:        string(g.Status),
		Notes:         g.Notes,
		ResponsibleID: g.ResponsibleID,
		Deadline:      g.Deadline,
		AlertLevel:    string(alert),
		AlertColor:    alert.Color(),
		CreatedAt:     g.CreatedAt,
		UpdatedAt:     g.UpdatedAt,
	}
}

// GlosaListResponse is a paginated list of glosas
type GlosaListResponse struct {
	Items []*GlosaResponse `json:"items"`
	Total int64            `json:"total"`
}

// SubmitResponseRequest represents an answer to a dispute
type SubmitResponseRequest struct {
	Argument string          `json:"argument" binding:"required,min=1"`
	Accepted decimal.Decimal `json:"accepted"`
	Rejected decimal.Decimal `json:"rejected"`
}

// ResponseDTO represents a glosa response in API responses
type ResponseDTO struct {
	ID              uuid.UUID       `json:"id"`
	GlosaID         uuid.UUID       `json:"glosa_id"`
	ResponderID     uuid.UUID       `json:"responder_id"`
	ResponseDate    time.Time       `json:"response_date"`
	Kind            string          `json:"kind"`
	Accepted        decimal.Decimal `json:"accepted"`
	Rejected        decimal.Decimal `json:"rejected"`
	Argument        string          `json:"argument"`
	ResultingStatus string          `json:"resulting_status"`
	CreatedAt       time.Time       `json:"created_at"`
}

// ToResponseDTO converts a domain glosa response into its API representation
func ToResponseDTO(r *dispute.GlosaResponse) *ResponseDTO {
	return &ResponseDTO{
		ID:              r.ID,
		GlosaID:         r.GlosaID,
		ResponderID:     r.ResponderID,
		ResponseDate:    r.ResponseDate,
		Kind:            r.Kind,
		Accepted:        r.Accepted,
		Rejected:        r.Rejected,
		Argument:        r.Argument,
		ResultingStatus: string(r.ResultingStatus),
		CreatedAt:       r.CreatedAt,
	}
}

// CreateAttachmentRequest represents a request to register an attachment
type CreateAttachmentRequest struct {
	GlosaID     *uuid.UUID `json:"glosa_id"`
	ResponseID  *uuid.UUID `json:"response_id"`
	FileName    string     `json:"file_name" binding:"required,min=1,max=300"`
	MimeType    string     `json:"mime_type" binding:"max=100"`
	StoragePath string     `json:"storage_path" binding:"required,min=1,max=500"`
	Category    string     `json:"category" binding:"max=100"`
}

// AttachmentResponse represents an attachment in API responses
type AttachmentResponse struct {
	ID          uuid.UUID  `json:"id"`
	GlosaID     *uuid.UUID `json:"glosa_id,omitempty"`
	ResponseID  *uuid.UUID `json:"response_id,omitempty"`
	FileName    string     `json:"file_name"`
	MimeType    string     `json:"mime_type"`
	StoragePath string     `json:"storage_path"`
	Category    string     `json:"category"`
	UploaderID  uuid.UUID  `json:"uploader_id"`
	CreatedAt   time.Time  `json:"created_at"`
}

// ToAttachmentResponse converts a domain attachment into its API representation
func ToAttachmentResponse(a *dispute.Attachment) *AttachmentResponse {
	return &AttachmentResponse{
		ID:          a.ID,
		GlosaID:     a.GlosaID,
		ResponseID:  a.ResponseID,
		FileName:    a.FileName,
		MimeType:    a.MimeType,
		StoragePath: a.StoragePath,
		Category:    a.Category,
		UploaderID:  a.UploaderID,
		CreatedAt:   a.CreatedAt,
	}
}

// DashboardResponse summarizes the dispute workload
type DashboardResponse struct {
	TotalInvoices  int64            `json:"total_invoices"`
	TotalGlosas    int64            `json:"total_glosas"`
	AlertCounts    map[string]int64 `json:"alert_counts"`
	PendingGlosas  int64            `json:"pending_glosas"`
	RespondedCount int64            `json:"responded_glosas"`
	HighValue      int64            `json:"high_value_glosas"`
}
