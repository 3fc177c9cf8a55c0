package report

import (
	"time"

	"github.com/glosas/backend/internal/domain/report"
	"github.com/google/uuid"
)

// ExportRequest narrows the dispute export
type ExportRequest struct {
	IssuerID *uuid.UUID `form:"issuer_id"`
	From     *time.Time `form:"from" time_format:"2006-01-02"`
	To       *time.Time `form:"to" time_format:"2006-01-02"`
}

func (r *ExportRequest) toFilter() report.Filter {
	return report.Filter{
		IssuerID: r.IssuerID,
		From:     r.From,
		To:       r.To,
	}
}

// DetailRowResponse is one export line in API form
type DetailRowResponse struct {
	InvoiceNumber    string  `json:"invoice_number"`
	IssueDate        string  `json:"issue_date"`
	IssuerTaxID      string  `json:"issuer_tax_id"`
	IssuerName       string  `json:"issuer_name"`
	ReceiverTaxID    string  `json:"receiver_tax_id"`
	ReceiverName     string  `json:"receiver_name"`
	InvoiceTotal     string  `json:"invoice_total"`
	ReasonCode       string  `json:"reason_code"`
	ReasonDesc       string  `json:"reason_desc"`
	DisputeDate      *string `json:"dispute_date"`
	DisputedAmount   string  `json:"disputed_amount"`
	GlosaStatus      string  `json:"glosa_status"`
	AcceptedAmount   string  `json:"accepted_amount"`
	RejectedAmount   string  `json:"rejected_amount"`
	ResponseDate     *string `json:"response_date"`
	ResponseArgument string  `json:"response_argument"`
}

// IssuerSummaryResponse is one aggregate line in API form
type IssuerSummaryResponse struct {
	IssuerID         uuid.UUID `json:"issuer_id"`
	IssuerTaxID      string    `json:"issuer_tax_id"`
	IssuerName       string    `json:"issuer_name"`
	TotalInvoiced    string    `json:"total_invoiced"`
	TotalDisputed    string    `json:"total_disputed"`
	TotalAccepted    string    `json:"total_accepted"`
	TotalRejected    string    `json:"total_rejected"`
	PercentRecovered string    `json:"percent_recovered"`
}

// ExportResponse bundles the detail rows with the per-issuer summary
type ExportResponse struct {
	Rows      []DetailRowResponse     `json:"rows"`
	Summaries []IssuerSummaryResponse `json:"summaries"`
}

const dateLayout = "2006-01-02"

func formatDate(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format(dateLayout)
	return &s
}

func toDetailRowResponse(row report.DetailRow) DetailRowResponse {
	return DetailRowResponse{
		InvoiceNumber:    row.InvoiceNumber,
		IssueDate:        row.IssueDate.Format(dateLayout),
		IssuerTaxID:      row.IssuerTaxID,
		IssuerName:       row.IssuerName,
		ReceiverTaxID:    row.ReceiverTaxID,
		ReceiverName:     row.ReceiverName,
		InvoiceTotal:     row.InvoiceTotal.StringFixed(2),
		ReasonCode:       row.ReasonCode,
		ReasonDesc:       row.ReasonDesc,
		DisputeDate:      formatDate(row.DisputeDate),
		DisputedAmount:   row.DisputedAmount.StringFixed(2),
		GlosaStatus:      row.GlosaStatus,
		AcceptedAmount:   row.AcceptedAmount.StringFixed(2),
		RejectedAmount:   row.RejectedAmount.StringFixed(2),
		ResponseDate:     formatDate(row.ResponseDate),
		ResponseArgument: row.ResponseArgument,
	}
}

func toIssuerSummaryResponse(s report.IssuerSummary) IssuerSummaryResponse {
	return IssuerSummaryResponse{
		IssuerID:         s.IssuerID,
		IssuerTaxID:      s.IssuerTaxID,
		IssuerName:       s.IssuerName,
		TotalInvoiced:    s.TotalInvoiced.StringFixed(2),
		TotalDisputed:    s.TotalDisputed.StringFixed(2),
		TotalAccepted:    s.TotalAccepted.StringFixed(2),
		TotalRejected:    s.TotalRejected.StringFixed(2),
		PercentRecovered: s.PercentRecovered.StringFixed(2),
	}
}
