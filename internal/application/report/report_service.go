package report

import (
	"context"
	"encoding/csv"
	"io"

	"github.com/glosas/backend/internal/domain/report"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

var percentFactor = decimal.NewFromInt(100)

// ReportService produces the dispute export: a detail table joining
// invoices to their glosas and responses, plus per-issuer recovery
// totals.
type ReportService struct {
	repo   report.DisputeReportRepository
	logger *zap.Logger
}

// NewReportService creates a new ReportService
func NewReportService(repo report.DisputeReportRepository, logger *zap.Logger) *ReportService {
	return &ReportService{repo: repo, logger: logger}
}

// Export returns detail rows and issuer summaries in one response
func (s *ReportService) Export(ctx context.Context, req *ExportRequest) (*ExportResponse, error) {
	filter := req.toFilter()

	rows, err := s.repo.DetailRows(ctx, filter)
	if err != nil {
		return nil, err
	}
	totals, err := s.repo.IssuerTotals(ctx, filter)
	if err != nil {
		return nil, err
	}

	resp := &ExportResponse{
		Rows:      make([]DetailRowResponse, len(rows)),
		Summaries: make([]IssuerSummaryResponse, len(totals)),
	}
	for i, row := range rows {
		resp.Rows[i] = toDetailRowResponse(row)
	}
	for i, t := range totals {
		t.PercentRecovered = percentRecovered(t.TotalAccepted, t.TotalDisputed)
		resp.Summaries[i] = toIssuerSummaryResponse(t)
	}
	return resp, nil
}

// WriteCSV streams the detail rows followed by a summary block
func (s *ReportService) WriteCSV(ctx context.Context, req *ExportRequest, w io.Writer) error {
	resp, err := s.Export(ctx, req)
	if err != nil {
		return err
	}

	cw := csv.NewWriter(w)

	header := []string{
		"numero_factura", "fecha_emision", "nit_emisora", "emisora",
		"nit_receptora", "receptora", "valor_total", "codigo_motivo",
		"motivo", "fecha_glosa", "valor_glosado", "estado",
		"valor_aceptado", "valor_rechazado", "fecha_respuesta", "argumento",
	}
	if err := cw.Write(header); err != nil {
		return err
	}
	for _, row := range resp.Rows {
		record := []string{
			row.InvoiceNumber, row.IssueDate, row.IssuerTaxID, row.IssuerName,
			row.ReceiverTaxID, row.ReceiverName, row.InvoiceTotal, row.ReasonCode,
			row.ReasonDesc, derefOrEmpty(row.DisputeDate), row.DisputedAmount, row.GlosaStatus,
			row.AcceptedAmount, row.RejectedAmount, derefOrEmpty(row.ResponseDate), row.ResponseArgument,
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}

	// Blank separator line, then the per-issuer aggregate block.
	if err := cw.Write([]string{}); err != nil {
		return err
	}
	summaryHeader := []string{
		"nit_emisora", "emisora", "total_facturado", "total_glosado",
		"total_aceptado", "total_rechazado", "porcentaje_recuperado",
	}
	if err := cw.Write(summaryHeader); err != nil {
		return err
	}
	for _, sum := range resp.Summaries {
		record := []string{
			sum.IssuerTaxID, sum.IssuerName, sum.TotalInvoiced, sum.TotalDisputed,
			sum.TotalAccepted, sum.TotalRejected, sum.PercentRecovered,
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}

// percentRecovered is accepted over disputed as a percentage, two
// decimal places, zero when nothing is disputed.
func percentRecovered(accepted, disputed decimal.Decimal) decimal.Decimal {
	if disputed.IsZero() {
		return decimal.Zero
	}
	return accepted.Div(disputed).Mul(percentFactor).Round(2)
}

func derefOrEmpty(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}
