package persistence

import (
	"context"
	"time"

	"github.com/glosas/backend/internal/domain/report"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// GormDisputeReportRepository implements report.DisputeReportRepository using GORM
type GormDisputeReportRepository struct {
	db *gorm.DB
}

// NewGormDisputeReportRepository creates a new GormDisputeReportRepository
func NewGormDisputeReportRepository(db *gorm.DB) *GormDisputeReportRepository {
	return &GormDisputeReportRepository{db: db}
}

// DetailRows returns the invoice/glosa/response join behind the export
func (r *GormDisputeReportRepository) DetailRows(ctx context.Context, filter report.Filter) ([]report.DetailRow, error) {
	type detailResult struct {
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

	var results []detailResult

	// One row per glosa; the lateral-style subquery picks the most
	// recent response so multiple responses never duplicate rows.
	query := dbFromContext(ctx, r.db).Table("glosas g").
		Select(`
			i.number as invoice_number,
			i.issue_date,
			emi.tax_id as issuer_tax_id,
			emi.legal_name as issuer_name,
			rec.tax_id as receiver_tax_id,
			rec.legal_name as receiver_name,
			i.total as invoice_total,
			rc.code as reason_code,
			rc.description as reason_desc,
			g.dispute_date,
			g.amount as disputed_amount,
			g.status as glosa_status,
			COALESCE(resp.accepted, 0) as accepted_amount,
			COALESCE(resp.rejected, 0) as rejected_amount,
			resp.response_date,
			COALESCE(resp.argument, '') as response_argument
		`).
		Joins("JOIN invoices i ON i.id = g.invoice_id").
		Joins("JOIN institutions emi ON emi.id = i.issuer_id").
		Joins("JOIN institutions rec ON rec.id = i.receiver_id").
		Joins("JOIN reason_codes rc ON rc.id = g.reason_code_id").
		Joins(`LEFT JOIN glosa_responses resp ON resp.id = (
			SELECT r2.id FROM glosa_responses r2
			WHERE r2.glosa_id = g.id
			ORDER BY r2.response_date DESC, r2.created_at DESC
			LIMIT 1
		)`).
		Order("i.number, g.created_at")

	query = applyReportFilter(query, filter)

	if err := query.Scan(&results).Error; err != nil {
		return nil, translateError(err)
	}

	rows := make([]report.DetailRow, len(results))
	for idx, res := range results {
		rows[idx] = report.DetailRow(res)
	}
	return rows, nil
}

// IssuerTotals returns per-issuer invoiced/disputed/accepted/rejected sums
func (r *GormDisputeReportRepository) IssuerTotals(ctx context.Context, filter report.Filter) ([]report.IssuerSummary, error) {
	type totalsResult struct {
		IssuerID      uuid.UUID
		IssuerTaxID   string
		IssuerName    string
		TotalInvoiced decimal.Decimal
		TotalDisputed decimal.Decimal
		TotalAccepted decimal.Decimal
		TotalRejected decimal.Decimal
	}

	var results []totalsResult

	// Invoiced totals are summed over the invoices table and dispute
	// totals over the glosa join separately, so an invoice carrying
	// several glosas is not double counted on the invoiced side.
	query := dbFromContext(ctx, r.db).Table("invoices i").
		Select(`
			i.issuer_id,
			emi.tax_id as issuer_tax_id,
			emi.legal_name as issuer_name,
			COALESCE((
				SELECT SUM(i2.total) FROM invoices i2
				WHERE i2.issuer_id = i.issuer_id
			), 0) as total_invoiced,
			COALESCE(SUM(g.amount), 0) as total_disputed,
			COALESCE(SUM(resp.accepted), 0) as total_accepted,
			COALESCE(SUM(resp.rejected), 0) as total_rejected
		`).
		Joins("JOIN institutions emi ON emi.id = i.issuer_id").
		Joins("LEFT JOIN glosas g ON g.invoice_id = i.id").
		Joins(`LEFT JOIN glosa_responses resp ON resp.id = (
			SELECT r2.id FROM glosa_responses r2
			WHERE r2.glosa_id = g.id
			ORDER BY r2.response_date DESC, r2.created_at DESC
			LIMIT 1
		)`).
		Group("i.issuer_id, emi.tax_id, emi.legal_name").
		Order("emi.legal_name")

	if filter.IssuerID != nil {
		query = query.Where("i.issuer_id = ?", *filter.IssuerID)
	}

	if err := query.Scan(&results).Error; err != nil {
		return nil, translateError(err)
	}

	summaries := make([]report.IssuerSummary, len(results))
	for idx, res := range results {
		summaries[idx] = report.IssuerSummary{
			IssuerID:      res.IssuerID,
			IssuerTaxID:   res.IssuerTaxID,
			IssuerName:    res.IssuerName,
			TotalInvoiced: res.TotalInvoiced,
			TotalDisputed: res.TotalDisputed,
			TotalAccepted: res.TotalAccepted,
			TotalRejected: res.TotalRejected,
		}
	}
	return summaries, nil
}

func applyReportFilter(query *gorm.DB, filter report.Filter) *gorm.DB {
	if filter.IssuerID != nil {
		query = query.Where("i.issuer_id = ?", *filter.IssuerID)
	}
	if filter.From != nil {
		query = query.Where("g.dispute_date >= ?", *filter.From)
	}
	if filter.To != nil {
		query = query.Where("g.dispute_date <= ?", *filter.To)
	}
	return query
}
