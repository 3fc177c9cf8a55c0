package billing

import (
	"strings"
	"time"

	"github.com/glosas/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// InvoiceStatus represents the billing state of an invoice
type InvoiceStatus string

const (
	// InvoiceStatusIssued is the default state at creation
	InvoiceStatusIssued InvoiceStatus = "Issued"
	// InvoiceStatusFiled is set when the invoice has been filed with the payer
	InvoiceStatusFiled InvoiceStatus = "Filed"
)

// Invoice represents a bill issued by an IPS to an EPS.
// Disputes (glosas) reference invoices by ID.
type Invoice struct {
	shared.BaseAggregateRoot
	Number     string
	IssuerID   uuid.UUID
	ReceiverID uuid.UUID
	IssueDate  time.Time
	FilingDate *time.Time
	PayerName  string
	Total      decimal.Decimal
	Status     InvoiceStatus
	Notes      string
}

// NewInvoice creates a new invoice in the Issued state
func NewInvoice(number string, issuerID, receiverID uuid.UUID, issueDate time.Time, total decimal.Decimal) (*Invoice, error) {
	number = strings.TrimSpace(number)
	if number == "" {
		return nil, shared.NewDomainError("INVALID_INVOICE_NUMBER", "Invoice number cannot be empty")
	}
	if issuerID == uuid.Nil || receiverID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_INSTITUTION", "Issuer and receiver institutions are required")
	}
	if total.IsNegative() {
		return nil, shared.NewDomainError("INVALID_TOTAL", "Invoice total cannot be negative")
	}

	return &Invoice{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		Number:            number,
		IssuerID:          issuerID,
		ReceiverID:        receiverID,
		IssueDate:         issueDate,
		Total:             total,
		Status:            InvoiceStatusIssued,
	}, nil
}

// MarkFiled records the filing date and moves the invoice to Filed
func (inv *Invoice) MarkFiled(filingDate time.Time) {
	inv.FilingDate = &filingDate
	inv.Status = InvoiceStatusFiled
	inv.Touch()
	inv.IncrementVersion()
}

// SetStatus overwrites the invoice status
func (inv *Invoice) SetStatus(status InvoiceStatus) {
	inv.Status = status
	inv.Touch()
	inv.IncrementVersion()
}
