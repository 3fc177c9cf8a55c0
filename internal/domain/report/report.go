package report

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// DetailRow is one line of the dispute export: an invoice joined to
// one of its glosas and, when present, the latest response.
type DetailRow struct {
	InvoiceNumber    string
	IssueDate        time.Time
	IssuerTaxID      string
	IssuerName       string
	ReceiverTaxID    string
	ReceiverName     string
	InvoiceTotal     decimal.Decimal
	ReasonCode       string
	ReasonDesc       string
	DisputeDate      *time.Time
	DisputedAmount   decimal.Decimal
	GlosaStatus      string
	AcceptedAmount   decimal.Decimal
	RejectedAmount   decimal.Decimal
	ResponseDate     *time.Time
	ResponseArgument string
}

// IssuerSummary aggregates dispute totals for one issuing institution.
// PercentRecovered is accepted over disputed, as a percentage with two
// decimal places.
type IssuerSummary struct {
	IssuerID         uuid.UUID
	IssuerTaxID      string
	IssuerName       string
	TotalInvoiced    decimal.Decimal
	TotalDisputed    decimal.Decimal
	TotalAccepted    decimal.Decimal
	TotalRejected    decimal.Decimal
	PercentRecovered decimal.Decimal
}

// Filter narrows report queries
type Filter struct {
	IssuerID *uuid.UUID
	From     *time.Time
	To       *time.Time
}

// DisputeReportRepository is the read model behind the dispute export
type DisputeReportRepository interface {
	// DetailRows returns one row per glosa with its invoice and the
	// most recent response, insertion-ordered.
	DetailRows(ctx context.Context, filter Filter) ([]DetailRow, error)

	// IssuerTotals returns raw per-issuer sums. PercentRecovered is
	// left zero; callers derive it.
	IssuerTotals(ctx context.Context, filter Filter) ([]IssuerSummary, error)
}
