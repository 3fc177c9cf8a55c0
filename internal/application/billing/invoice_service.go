package billing

import (
	"context"

	"github.com/glosas/backend/internal/domain/billing"
	"github.com/glosas/backend/internal/domain/partner"
	"github.com/glosas/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// InvoiceService handles invoice management operations
type InvoiceService struct {
	invoiceRepo     billing.InvoiceRepository
	institutionRepo partner.InstitutionRepository
}

// NewInvoiceService creates a new InvoiceService
func NewInvoiceService(invoiceRepo billing.InvoiceRepository, institutionRepo partner.InstitutionRepository) *InvoiceService {
	return &InvoiceService{
		invoiceRepo:     invoiceRepo,
		institutionRepo: institutionRepo,
	}
}

// Create registers a new invoice
func (s *InvoiceService) Create(ctx context.Context, req CreateInvoiceRequest) (*InvoiceResponse, error) {
	exists, err := s.invoiceRepo.ExistsByNumber(ctx, req.Number)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, shared.NewDomainError("ALREADY_EXISTS", "An invoice with this number already exists")
	}

	if _, err := s.institutionRepo.FindByID(ctx, req.IssuerID); err != nil {
		return nil, shared.NewDomainError("ISSUER_NOT_FOUND", "Issuer institution does not exist")
	}
	if _, err := s.institutionRepo.FindByID(ctx, req.ReceiverID); err != nil {
		return nil, shared.NewDomainError("RECEIVER_NOT_FOUND", "Receiver institution does not exist")
	}

	inv, err := billing.NewInvoice(req.Number, req.IssuerID, req.ReceiverID, req.IssueDate, req.Total)
	if err != nil {
		return nil, err
	}
	inv.PayerName = req.PayerName
	inv.Notes = req.Notes
	if req.FilingDate != nil {
		inv.MarkFiled(*req.FilingDate)
	}

	if err := s.invoiceRepo.Create(ctx, inv); err != nil {
		return nil, err
	}
	return ToInvoiceResponse(inv), nil
}

// Get returns an invoice by ID
func (s *InvoiceService) Get(ctx context.Context, id uuid.UUID) (*InvoiceResponse, error) {
	inv, err := s.invoiceRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return ToInvoiceResponse(inv), nil
}

// GetByNumber returns an invoice by its business number
func (s *InvoiceService) GetByNumber(ctx context.Context, number string) (*InvoiceResponse, error) {
	inv, err := s.invoiceRepo.FindByNumber(ctx, number)
	if err != nil {
		return nil, err
	}
	return ToInvoiceResponse(inv), nil
}

// List returns invoices matching the filter
func (s *InvoiceService) List(ctx context.Context, filter shared.Filter) (*InvoiceListResponse, error) {
	invoices, total, err := s.invoiceRepo.FindAll(ctx, filter)
	if err != nil {
		return nil, err
	}

	items := make([]*InvoiceResponse, len(invoices))
	for i, inv := range invoices {
		items[i] = ToInvoiceResponse(inv)
	}
	return &InvoiceListResponse{Items: items, Total: total}, nil
}

// Update applies a partial update to an invoice
func (s *InvoiceService) Update(ctx context.Context, id uuid.UUID, req UpdateInvoiceRequest) (*InvoiceResponse, error) {
	inv, err := s.invoiceRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.FilingDate != nil {
		inv.MarkFiled(*req.FilingDate)
	}
	if req.PayerName != nil {
		inv.PayerName = *req.PayerName
		inv.Touch()
	}
	if req.Status != nil {
		inv.SetStatus(billing.InvoiceStatus(*req.Status))
	}
	if req.Notes != nil {
		inv.Notes = *req.Notes
		inv.Touch()
	}

	if err := s.invoiceRepo.Update(ctx, inv); err != nil {
		return nil, err
	}
	return ToInvoiceResponse(inv), nil
}

// Delete removes an invoice
func (s *InvoiceService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.invoiceRepo.Delete(ctx, id)
}
