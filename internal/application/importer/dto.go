package importer

import (
	"github.com/glosas/backend/internal/infrastructure/csvimport"
)

// Spreadsheet column keys. Headers are lower-cased and trimmed before
// lookup, so files exported with mixed-case headers still match.
const (
	colInvoiceNumber = "numero_factura"
	colIssuerTaxID   = "id_emisora"
	colReceiverTaxID = "id_receptora"
	colIssueDate     = "fecha_emision"
	colFilingDate    = "fecha_radicado"
	colPayerName     = "nombre_eps"
	colTotal         = "valor_total"
	colReasonCode    = "codigo_motivo"
	colDisputeDate   = "fecha_glosa"
	colDisputed      = "valor_glosado"
	colNotes         = "observacion"
)

// InvoiceImportResult reports the outcome of an invoice batch
type InvoiceImportResult struct {
	Processed          int                  `json:"processed"`
	Created            int                  `json:"created"`
	UnmatchedIssuers   []string             `json:"unmatched_issuers"`
	UnmatchedReceivers []string             `json:"unmatched_receivers"`
	Errors             []csvimport.RowError `json:"errors"`
	TotalErrors        int                  `json:"total_errors"`
}

// GlosaImportResult reports the outcome of a glosa batch
type GlosaImportResult struct {
	Processed            int                  `json:"processed"`
	Inserted             int                  `json:"inserted"`
	Duplicates           int                  `json:"duplicates"`
	UnmatchedInvoices    []string             `json:"unmatched_invoices"`
	UnmatchedReasonCodes []string             `json:"unmatched_reason_codes"`
	Errors               []csvimport.RowError `json:"errors"`
	TotalErrors          int                  `json:"total_errors"`
}

// keyCollector accumulates unmatched business keys, deduplicated,
// preserving first-seen order.
type keyCollector struct {
	seen map[string]struct{}
	keys []string
}

func newKeyCollector() *keyCollector {
	return &keyCollector{seen: make(map[string]struct{})}
}

func (c *keyCollector) Add(key string) {
	if _, ok := c.seen[key]; ok {
		return
	}
	c.seen[key] = struct{}{}
	c.keys = append(c.keys, key)
}

func (c *keyCollector) Keys() []string {
	if c.keys == nil {
		return []string{}
	}
	return c.keys
}
