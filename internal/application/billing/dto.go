package billing

import (
	"time"

	"github.com/glosas/backend/internal/domain/billing"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// CreateInvoiceRequest represents a request to register an invoice
type CreateInvoiceRequest struct {
	Number     string          `json:"number" binding:"required,min=1,max=50"`
	IssuerID   uuid.UUID       `json:"issuer_id" binding:"required"`
	ReceiverID uuid.UUID       `json:"receiver_id" binding:"required"`
	IssueDate  time.Time       `json:"issue_date" binding:"required"`
	FilingDate *time.Time      `json:"filing_date"`
	PayerName  string          `json:"payer_name" binding:"max=300"`
	Total      decimal.Decimal `json:"total" binding:"required"`
	Notes      string          `json:"notes"`
}

// UpdateInvoiceRequest represents a partial invoice update
type UpdateInvoiceRequest struct {
	FilingDate *time.Time `json:"filing_date"`
	PayerName  *string    `json:"payer_name" binding:"omitempty,max=300"`
	Status     *string    `json:"status" binding:"omitempty,oneof=Issued Filed"`
	Notes      *string    `json:"notes"`
}

// InvoiceResponse represents an invoice in API responses
type InvoiceResponse struct {
	ID         uuid.UUID       `json:"id"`
	Number     string          `json:"number"`
	IssuerID   uuid.UUID       `json:"issuer_id"`
	ReceiverID uuid.UUID       `json:"receiver_id"`
	IssueDate  time.Time       `json:"issue_date"`
	FilingDate *time.Time      `json:"filing_date,omitempty"`
	PayerName  string          `json:"payer_name"`
	Total      decimal.Decimal `json:"total"`
	Status     string          `json:"status"`
	Notes      string          `json:"notes"`
	CreatedAt  time.Time       `json:"created_at"`
	UpdatedAt  time.Time       `json:"updated_at"`
}

// ToInvoiceResponse converts a domain invoice into its API representation
func ToInvoiceResponse(inv *billing.Invoice) *InvoiceResponse {
	return &InvoiceResponse{
		ID:         inv.ID,
		Number:     inv.Number,
		IssuerID:   inv.IssuerID,
		ReceiverID: inv.ReceiverID,
		IssueDate:  inv.IssueDate,
		FilingDate: inv.FilingDate,
		PayerName:  inv.PayerName,
		Total:      inv.Total,
		Status:     string(inv.Status),
		Notes:      inv.Notes,
		CreatedAt:  inv.CreatedAt,
		UpdatedAt:  inv.UpdatedAt,
	}
}

// InvoiceListResponse is a paginated list of invoices
type InvoiceListResponse struct {
	Items []*InvoiceResponse `json:"items"`
	Total int64              `json:"total"`
}
