package dispute

import (
	"context"

	"github.com/glosas/backend/internal/domain/dispute"
	"github.com/glosas/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// ReasonCodeService handles the reason code catalog
type ReasonCodeService struct {
	reasonCodeRepo dispute.ReasonCodeRepository
}

// NewReasonCodeService creates a new ReasonCodeService
func NewReasonCodeService(reasonCodeRepo dispute.ReasonCodeRepository) *ReasonCodeService {
	return &ReasonCodeService{reasonCodeRepo: reasonCodeRepo}
}

// Create registers a new reason code
func (s *ReasonCodeService) Create(ctx context.Context, req CreateReasonCodeRequest) (*ReasonCodeResponse, error) {
	exists, err := s.reasonCodeRepo.ExistsByCode(ctx, req.Code)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, shared.NewDomainError("ALREADY_EXISTS", "A reason code with this code already exists")
	}

	rc, err := dispute.NewReasonCode(req.Code, req.Description, req.AppliesTo)
	if err != nil {
		return nil, err
	}
	if err := s.reasonCodeRepo.Create(ctx, rc); err != nil {
		return nil, err
	}
	return ToReasonCodeResponse(rc), nil
}

// Get returns a reason code by ID
func (s *ReasonCodeService) Get(ctx context.Context, id uuid.UUID) (*ReasonCodeResponse, error) {
	rc, err := s.reasonCodeRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return ToReasonCodeResponse(rc), nil
}

// List returns reason codes matching the filter
func (s *ReasonCodeService) List(ctx context.Context, filter shared.Filter) (*ReasonCodeListResponse, error) {
	codes, total, err := s.reasonCodeRepo.FindAll(ctx, filter)
	if err != nil {
		return nil, err
	}

	items := make([]*ReasonCodeResponse, len(codes))
	for i, rc := range codes {
		items[i] = ToReasonCodeResponse(rc)
	}
	return &ReasonCodeListResponse{Items: items, Total: total}, nil
}

// Update applies a partial update to a reason code
func (s *ReasonCodeService) Update(ctx context.Context, id uuid.UUID, req UpdateReasonCodeRequest) (*ReasonCodeResponse, error) {
	rc, err := s.reasonCodeRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if req.Description != nil {
		rc.Description = *req.Description
		rc.Touch()
	}
	if req.AppliesTo != nil {
		rc.AppliesTo = *req.AppliesTo
		rc.Touch()
	}

	if err := s.reasonCodeRepo.Update(ctx, rc); err != nil {
		return nil, err
	}
	return ToReasonCodeResponse(rc), nil
}

// Delete removes a reason code
func (s *ReasonCodeService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.reasonCodeRepo.Delete(ctx, id)
}
