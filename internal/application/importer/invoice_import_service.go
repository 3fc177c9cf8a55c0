package importer

import (
	"context"
	"errors"
	"io"

	"github.com/glosas/backend/internal/domain/billing"
	"github.com/glosas/backend/internal/domain/partner"
	"github.com/glosas/backend/internal/domain/shared"
	"github.com/glosas/backend/internal/infrastructure/csvimport"
	"go.uber.org/zap"
)

// InvoiceImportService loads invoice batches from CSV files.
// Rows whose issuer or receiver NIT does not resolve to a registered
// institution are skipped and reported; resolvable rows always create
// a new invoice, there is no duplicate check against prior batches.
type InvoiceImportService struct {
	invoiceRepo     billing.InvoiceRepository
	institutionRepo partner.InstitutionRepository
	maxRowErrors    int
	logger          *zap.Logger
}

// NewInvoiceImportService creates a new InvoiceImportService
func NewInvoiceImportService(
	invoiceRepo billing.InvoiceRepository,
	institutionRepo partner.InstitutionRepository,
	maxRowErrors int,
	logger *zap.Logger,
) *InvoiceImportService {
	return &InvoiceImportService{
		invoiceRepo:     invoiceRepo,
		institutionRepo: institutionRepo,
		maxRowErrors:    maxRowErrors,
		logger:          logger,
	}
}

// Import reads a CSV stream and creates one invoice per valid row
func (s *InvoiceImportService) Import(ctx context.Context, r io.Reader) (*InvoiceImportResult, error) {
	parser, err := csvimport.NewParser(r)
	if err != nil {
		return nil, err
	}
	if err := parser.ParseHeader(); err != nil {
		return nil, err
	}
	if err := parser.RequireHeaders(colInvoiceNumber, colIssuerTaxID, colReceiverTaxID, colIssueDate, colTotal); err != nil {
		return nil, err
	}

	rows, err := parser.ReadAllRows()
	if err != nil {
		return nil, err
	}

	errs := csvimport.NewErrorCollection(s.maxRowErrors)
	unmatchedIssuers := newKeyCollector()
	unmatchedReceivers := newKeyCollector()
	created := 0

	// Institutions repeat across rows in real exports, so cache the
	// NIT lookups per batch.
	institutions := make(map[string]*partner.Institution)
	lookup := func(taxID string) (*partner.Institution, error) {
		if inst, ok := institutions[taxID]; ok {
			return inst, nil
		}
		inst, err := s.institutionRepo.FindByTaxID(ctx, taxID)
		if err != nil {
			return nil, err
		}
		institutions[taxID] = inst
		return inst, nil
	}

	for _, row := range rows {
		number := csvimport.NormalizeCellNumber(row.Get(colInvoiceNumber))
		if number == "" {
			errs.AddRequiredError(row.LineNumber, colInvoiceNumber)
			continue
		}

		issuerTaxID := csvimport.NormalizeCellNumber(row.Get(colIssuerTaxID))
		if issuerTaxID == "" {
			errs.AddRequiredError(row.LineNumber, colIssuerTaxID)
			continue
		}
		receiverTaxID := csvimport.NormalizeCellNumber(row.Get(colReceiverTaxID))
		if receiverTaxID == "" {
			errs.AddRequiredError(row.LineNumber, colReceiverTaxID)
			continue
		}

		issuer, err := lookup(issuerTaxID)
		if err != nil {
			if errors.Is(err, shared.ErrNotFound) {
				unmatchedIssuers.Add(issuerTaxID)
				continue
			}
			return nil, err
		}
		receiver, err := lookup(receiverTaxID)
		if err != nil {
			if errors.Is(err, shared.ErrNotFound) {
				unmatchedReceivers.Add(receiverTaxID)
				continue
			}
			return nil, err
		}

		issueDate, err := csvimport.ParseDate(row.Get(colIssueDate))
		if err != nil {
			errs.AddFormatError(row.LineNumber, colIssueDate, "date", row.Get(colIssueDate))
			continue
		}
		total, err := csvimport.ParseAmount(row.Get(colTotal))
		if err != nil {
			errs.AddTypeError(row.LineNumber, colTotal, "number", row.Get(colTotal))
			continue
		}

		inv, err := billing.NewInvoice(number, issuer.ID, receiver.ID, issueDate, total)
		if err != nil {
			errs.Add(csvimport.NewRowError(row.LineNumber, colInvoiceNumber, csvimport.ErrCodeInvalidFormat, err.Error()))
			continue
		}
		inv.PayerName = row.Get(colPayerName)

		// Imported batches come from the payer filing system, so every
		// row lands as Filed even when the filing date cell is empty.
		if raw := row.Get(colFilingDate); raw != "" {
			filingDate, err := csvimport.ParseDate(raw)
			if err != nil {
				errs.AddFormatError(row.LineNumber, colFilingDate, "date", raw)
				continue
			}
			inv.MarkFiled(filingDate)
		} else {
			inv.SetStatus(billing.InvoiceStatusFiled)
		}

		if err := s.invoiceRepo.Create(ctx, inv); err != nil {
			errs.Add(csvimport.NewRowError(row.LineNumber, colInvoiceNumber, csvimport.ErrCodeDuplicateInDB, err.Error()))
			continue
		}
		created++
	}

	s.logger.Info("invoice import finished",
		zap.Int("processed", len(rows)),
		zap.Int("created", created),
		zap.Int("unmatched_issuers", len(unmatchedIssuers.Keys())),
		zap.Int("unmatched_receivers", len(unmatchedReceivers.Keys())),
		zap.Int("errors", errs.TotalCount()),
	)

	return &InvoiceImportResult{
		Processed:          len(rows),
		Created:            created,
		UnmatchedIssuers:   unmatchedIssuers.Keys(),
		UnmatchedReceivers: unmatchedReceivers.Keys(),
		Errors:             errs.Errors(),
		TotalErrors:        errs.TotalCount(),
	}, nil
}
