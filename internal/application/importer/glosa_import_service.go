package importer

import (
	"context"
	"errors"
	"io"

	"github.com/glosas/backend/internal/domain/billing"
	"github.com/glosas/backend/internal/domain/dispute"
	"github.com/glosas/backend/internal/domain/shared"
	"github.com/glosas/backend/internal/infrastructure/csvimport"
	"go.uber.org/zap"
)

// GlosaImportService loads dispute batches from CSV files.
// Invoice numbers are matched after normalizing the trailing ".0"
// that spreadsheet exports append to numeric cells. A row whose
// invoice or reason code cannot be resolved lands in an unmatched
// list; a row whose (invoice, reason, amount) tuple already exists
// is skipped silently so re-running a batch is safe.
type GlosaImportService struct {
	glosaRepo    dispute.GlosaRepository
	reasonRepo   dispute.ReasonCodeRepository
	invoiceRepo  billing.InvoiceRepository
	maxRowErrors int
	logger       *zap.Logger
}

// NewGlosaImportService creates a new GlosaImportService
func NewGlosaImportService(
	glosaRepo dispute.GlosaRepository,
	reasonRepo dispute.ReasonCodeRepository,
	invoiceRepo billing.InvoiceRepository,
	maxRowErrors int,
	logger *zap.Logger,
) *GlosaImportService {
	return &GlosaImportService{
		glosaRepo:    glosaRepo,
		reasonRepo:   reasonRepo,
		invoiceRepo:  invoiceRepo,
		maxRowErrors: maxRowErrors,
		logger:       logger,
	}
}

// Import reads a CSV stream and creates one pending glosa per new row
func (s *GlosaImportService) Import(ctx context.Context, r io.Reader) (*GlosaImportResult, error) {
	parser, err := csvimport.NewParser(r)
	if err != nil {
		return nil, err
	}
	if err := parser.ParseHeader(); err != nil {
		return nil, err
	}
	if err := parser.RequireHeaders(colInvoiceNumber, colReasonCode, colDisputeDate, colDisputed); err != nil {
		return nil, err
	}

	rows, err := parser.ReadAllRows()
	if err != nil {
		return nil, err
	}

	errs := csvimport.NewErrorCollection(s.maxRowErrors)
	unmatchedInvoices := newKeyCollector()
	unmatchedReasons := newKeyCollector()
	inserted := 0
	duplicates := 0

	invoices := make(map[string]*billing.Invoice)
	reasons := make(map[string]*dispute.ReasonCode)

	for _, row := range rows {
		number := csvimport.NormalizeCellNumber(row.Get(colInvoiceNumber))
		if number == "" {
			errs.AddRequiredError(row.LineNumber, colInvoiceNumber)
			continue
		}
		code := csvimport.NormalizeCellNumber(row.Get(colReasonCode))
		if code == "" {
			errs.AddRequiredError(row.LineNumber, colReasonCode)
			continue
		}

		inv, ok := invoices[number]
		if !ok {
			inv, err = s.invoiceRepo.FindByNumber(ctx, number)
			if err != nil {
				if errors.Is(err, shared.ErrNotFound) {
					unmatchedInvoices.Add(number)
					continue
				}
				return nil, err
			}
			invoices[number] = inv
		}

		reason, ok := reasons[code]
		if !ok {
			reason, err = s.reasonRepo.FindByCode(ctx, code)
			if err != nil {
				if errors.Is(err, shared.ErrNotFound) {
					unmatchedReasons.Add(code)
					continue
				}
				return nil, err
			}
			reasons[code] = reason
		}

		disputeDate, err := csvimport.ParseDate(row.Get(colDisputeDate))
		if err != nil {
			errs.AddFormatError(row.LineNumber, colDisputeDate, "date", row.Get(colDisputeDate))
			continue
		}
		amount, err := csvimport.ParseAmount(row.Get(colDisputed))
		if err != nil {
			errs.AddTypeError(row.LineNumber, colDisputed, "number", row.Get(colDisputed))
			continue
		}

		exists, err := s.glosaRepo.ExistsByTuple(ctx, inv.ID, reason.ID, amount)
		if err != nil {
			return nil, err
		}
		if exists {
			duplicates++
			continue
		}

		g, err := dispute.NewGlosa(inv.ID, reason.ID, disputeDate, amount)
		if err != nil {
			errs.Add(csvimport.NewRowError(row.LineNumber, colDisputed, csvimport.ErrCodeInvalidFormat, err.Error()))
			continue
		}
		g.Notes = row.Get(colNotes)

		if err := s.glosaRepo.Create(ctx, g); err != nil {
			errs.Add(csvimport.NewRowError(row.LineNumber, colInvoiceNumber, csvimport.ErrCodeDuplicateInDB, err.Error()))
			continue
		}
		inserted++
	}

	s.logger.Info("glosa import finished",
		zap.Int("processed", len(rows)),
		zap.Int("inserted", inserted),
		zap.Int("duplicates", duplicates),
		zap.Int("unmatched_invoices", len(unmatchedInvoices.Keys())),
		zap.Int("unmatched_reason_codes", len(unmatchedReasons.Keys())),
		zap.Int("errors", errs.TotalCount()),
	)

	return &GlosaImportResult{
		Processed:            len(rows),
		Inserted:             inserted,
		Duplicates:           duplicates,
		UnmatchedInvoices:    unmatchedInvoices.Keys(),
		UnmatchedReasonCodes: unmatchedReasons.Keys(),
		Errors:               errs.Errors(),
		TotalErrors:          errs.TotalCount(),
	}, nil
}
