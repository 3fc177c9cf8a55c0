package dispute

import (
	"context"

	"github.com/glosas/backend/internal/domain/dispute"
	"github.com/glosas/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// AttachmentService handles supporting documents for glosas and responses
type AttachmentService struct {
	attachmentRepo dispute.AttachmentRepository
	glosaRepo      dispute.GlosaRepository
	responseRepo   dispute.ResponseRepository
}

// NewAttachmentService creates a new AttachmentService
func NewAttachmentService(
	attachmentRepo dispute.AttachmentRepository,
	glosaRepo dispute.GlosaRepository,
	responseRepo dispute.ResponseRepository,
) *AttachmentService {
	return &AttachmentService{
		attachmentRepo: attachmentRepo,
		glosaRepo:      glosaRepo,
		responseRepo:   responseRepo,
	}
}

// Create registers a new attachment under a glosa or a response
func (s *AttachmentService) Create(ctx context.Context, uploaderID uuid.UUID, req CreateAttachmentRequest) (*AttachmentResponse, error) {
	if req.GlosaID != nil {
		if _, err := s.glosaRepo.FindByID(ctx, *req.GlosaID); err != nil {
			return nil, shared.NewDomainError("GLOSA_NOT_FOUND", "Glosa does not exist")
		}
	}
	if req.ResponseID != nil {
		if _, err := s.responseRepo.FindByID(ctx, *req.ResponseID); err != nil {
			return nil, shared.NewDomainError("RESPONSE_NOT_FOUND", "Response does not exist")
		}
	}

	attachment, err := dispute.NewAttachment(req.GlosaID, req.ResponseID, req.FileName, req.MimeType, req.StoragePath, req.Category, uploaderID)
	if err != nil {
		return nil, err
	}

	if err := s.attachmentRepo.Create(ctx, attachment); err != nil {
		return nil, err
	}
	return ToAttachmentResponse(attachment), nil
}

// Get returns an attachment by ID
func (s *AttachmentService) Get(ctx context.Context, id uuid.UUID) (*AttachmentResponse, error) {
	attachment, err := s.attachmentRepo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	return ToAttachmentResponse(attachment), nil
}

// ListByGlosa returns attachments recorded for a glosa
func (s *AttachmentService) ListByGlosa(ctx context.Context, glosaID uuid.UUID) ([]*AttachmentResponse, error) {
	attachments, err := s.attachmentRepo.FindByGlosa(ctx, glosaID)
	if err != nil {
		return nil, err
	}

	items := make([]*AttachmentResponse, len(attachments))
	for i, a := range attachments {
		items[i] = ToAttachmentResponse(a)
	}
	return items, nil
}

// Delete removes an attachment record
func (s *AttachmentService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.attachmentRepo.Delete(ctx, id)
}
