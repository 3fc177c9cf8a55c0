package dispute

import (
	"context"
	"time"

	"github.com/glosas/backend/internal/domain/billing"
	"github.com/glosas/backend/internal/domain/dispute"
	"github.com/glosas/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// GlosaService handles the dispute lifecycle
type GlosaService struct {
	glosaRepo      dispute.GlosaRepository
	responseRepo   dispute.ResponseRepository
	invoiceRepo    billing.InvoiceRepository
	reasonCodeRepo dispute.ReasonCodeRepository
	txManager      shared.TxManager
	logger         *zap.Logger
}

// NewGlosaService creates a new GlosaService
func NewGlosaService(
	glosaRepo dispute.GlosaRepository,
	responseRepo dispute.ResponseRepository,
	invoiceRepo billing.InvoiceRepository,
	reasonCodeRepo dispute.ReasonCodeRepository,
	txManager shared.TxManager,
	logger *zap.Logger,
) *GlosaService {
	return &GlosaService{
		glosaRepo:      glosaRepo,
		responseRepo:   responseRepo,
		invoiceRepo:    invoiceRepo,
		reasonCodeRepo: reasonCodeRepo,
		txManager:      txManager,
		logger:         logger,
	}
}

// Create files a new dispute against an invoice
func (s *GlosaService) Create(ctx context.Context, req CreateGlosaRequest) (*GlosaResponse, error) {
	if _, err := s.invoiceRepo.FindByID(ctx, req.InvoiceID); err != nil {
		return nil, shared.NewDomainError("INVOICE_NOT_FOUND", "Invoice does not exist")
	}
	if _, err := s.reasonCodeRepo.FindByID(ctx, req.ReasonCodeID); err != nil {
		return nil, shared.NewDomainError("REASON_CODE_NOT_FOUND", "Reason code does not exist")
	}

	glosa, err := dispute.NewGlosa(req.InvoiceID, req.ReasonCodeID, req.DisputeDate, req.Amount)
	if err != nil {
		return nil, err
	}
	glosa.Notes = req.Notes
	if req.ResponsibleID != nil {
		glosa.AssignResponsible(req.ResponsibleID)
	}
	if req.Deadline != nil {
		glosa.SetDeadline(req.Deadline)
	}

	if err := s.glosaRepo.Create(ctx, glosa); err != nil {
		return nil, err
	}
	return ToGlosaResponse(glosa, time.Now()), nil
}

// Get returns a glosa by ID
func (s *GlosaService) Get(ctx context.Context, id uuid.UUID) (*GlosaResponse, error) {
	glosa, err := s.glosaRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return ToGlosaResponse(glosa, time.Now()), nil
}

// List returns glosas matching the filter, each with its alert level
func (s *GlosaService) List(ctx context.Context, filter shared.Filter) (*GlosaListResponse, error) {
	glosas, total, err := s.glosaRepo.FindAll(ctx, filter)
	if err != nil {
		return nil, err
	}

	today := time.Now()
	items := make([]*GlosaResponse, len(glosas))
	for i, g := range glosas {
		items[i] = ToGlosaResponse(g, today)
	}
	return &GlosaListResponse{Items: items, Total: total}, nil
}

// ListByInvoice returns all glosas filed against an invoice
func (s *GlosaService) ListByInvoice(ctx context.Context, invoiceID uuid.UUID) ([]*GlosaResponse, error) {
	glosas, err := s.glosaRepo.FindByInvoice(ctx, invoiceID)
	if err != nil {
		return nil, err
	}

	today := time.Now()
	items := make([]*GlosaResponse, len(glosas))
	for i, g := range glosas {
		items[i] = ToGlosaResponse(g, today)
	}
	return items, nil
}

// Update applies a partial update to a glosa
func (s *GlosaService) Update(ctx context.Context, id uuid.UUID, req UpdateGlosaRequest) (*GlosaResponse, error) {
	glosa, err := s.glosaRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Notes != nil {
		glosa.Notes = *req.Notes
		glosa.Touch()
	}
	if req.ResponsibleID != nil {
		glosa.AssignResponsible(req.ResponsibleID)
	}
	if req.Deadline != nil {
		glosa.SetDeadline(req.Deadline)
	}

	if err := s.glosaRepo.Update(ctx, glosa); err != nil {
		return nil, err
	}
	return ToGlosaResponse(glosa, time.Now()), nil
}

// Delete removes a glosa together with its responses and attachments
func (s *GlosaService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.glosaRepo.Delete(ctx, id)
}

// SubmitResponse answers a dispute. The status transition and the response
// record are written in one transaction, so a failed write leaves the
// glosa untouched.
func (s *GlosaService) SubmitResponse(ctx context.Context, glosaID, responderID uuid.UUID, req SubmitResponseRequest) (*ResponseDTO, error) {
	var dto *ResponseDTO
	err := s.txManager.WithinTransaction(ctx, func(txCtx context.Context) error {
		glosa, err := s.glosaRepo.FindByID(txCtx, glosaID)
		if err != nil {
			return err
		}

		response, err := glosa.Respond(responderID, req.Argument, req.Accepted, req.Rejected)
		if err != nil {
			return err
		}

		if err := s.glosaRepo.Update(txCtx, glosa); err != nil {
			return err
		}
		if err := s.responseRepo.Create(txCtx, response); err != nil {
			return err
		}

		dto = ToResponseDTO(response)
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.logger.Info("glosa responded",
		zap.String("glosa_id", glosaID.String()),
		zap.String("responder_id", responderID.String()),
	)
	return dto, nil
}

// ListResponses returns the responses recorded for a glosa
func (s *GlosaService) ListResponses(ctx context.Context, glosaID uuid.UUID) ([]*ResponseDTO, error) {
	if _, err := s.glosaRepo.FindByID(ctx, glosaID); err != nil {
		return nil, err
	}

	responses, err := s.responseRepo.FindByGlosa(ctx, glosaID)
	if err != nil {
		return nil, err
	}

	items := make([]*ResponseDTO, len(responses))
	for i, r := range responses {
		items[i] = ToResponseDTO(r)
	}
	return items, nil
}

// OverrideStatus sets an arbitrary status on a glosa. Reserved for
// administrators; the handler enforces the role check.
func (s *GlosaService) OverrideStatus(ctx context.Context, id uuid.UUID, req OverrideStatusRequest) (*GlosaResponse, error) {
	glosa, err := s.glosaRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := glosa.OverrideStatus(req.Status); err != nil {
		return nil, err
	}
	if err := s.glosaRepo.Update(ctx, glosa); err != nil {
		return nil, err
	}

	s.logger.Info("glosa status overridden",
		zap.String("glosa_id", id.String()),
		zap.String("status", req.Status),
	)
	return ToGlosaResponse(glosa, time.Now()), nil
}

// GetAlert returns the alert classification for a single glosa
func (s *GlosaService) GetAlert(ctx context.Context, id uuid.UUID) (*GlosaResponse, error) {
	return s.Get(ctx, id)
}

// Dashboard aggregates workload counters across all glosas
func (s *GlosaService) Dashboard(ctx context.Context) (*DashboardResponse, error) {
	totalInvoices, err := s.invoiceRepo.Count(ctx)
	if err != nil {
		return nil, err
	}
	totalGlosas, err := s.glosaRepo.Count(ctx)
	if err != nil {
		return nil, err
	}

	counts := map[string]int64{
		string(dispute.AlertNoDeadline): 0,
		string(dispute.AlertResolved):   0,
		string(dispute.AlertOverdue):    0,
		string(dispute.AlertNearDue):    0,
		string(dispute.AlertOK):         0,
	}
	var pending, responded, highValue int64

	today := time.Now()
	highValueThreshold := decimal.NewFromInt(1000000)
	filter := shared.Filter{Offset: 0, Limit: 1000}
	for {
		glosas, _, err := s.glosaRepo.FindAll(ctx, filter)
		if err != nil {
			return nil, err
		}
		for _, g := range glosas {
			counts[string(g.ClassifyAlert(today))]++
			switch g.Status {
			case dispute.GlosaStatusPending:
				pending++
			case dispute.GlosaStatusResponded:
				responded++
			}
			if g.Amount.GreaterThan(highValueThreshold) {
				highValue++
			}
		}
		if len(glosas) < filter.Limit {
			break
		}
		filter.Offset += filter.Limit
	}

	return &DashboardResponse{
		TotalInvoices:  totalInvoices,
		TotalGlosas:    totalGlosas,
		AlertCounts:    counts,
		PendingGlosas:  pending,
		RespondedCount: responded,
		HighValue:      highValue,
	}, nil
}
