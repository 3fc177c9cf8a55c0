package dispute

import (
	"strings"

	"github.com/glosas/backend/internal/domain/shared"
	"github.com/google/uuid"
)

// Attachment is supporting documentation linked to a glosa and/or a
// response. At least one parent reference is required.
type Attachment struct {
	shared.BaseAggregateRoot
	GlosaID     *uuid.UUID
	ResponseID  *uuid.UUID
	FileName    string
	MimeType    string
	StoragePath string
	Category    string
	UploaderID  uuid.UUID
}

// NewAttachment creates a new attachment record
func NewAttachment(glosaID, responseID *uuid.UUID, fileName, mimeType, storagePath, category string, uploaderID uuid.UUID) (*Attachment, error) {
	if glosaID == nil && responseID == nil {
		return nil, shared.NewDomainError("ORPHAN_ATTACHMENT",
			"Attachment must reference a glosa or a response")
	}
	if strings.TrimSpace(fileName) == "" {
		return nil, shared.NewDomainError("INVALID_FILE_NAME", "File name cannot be empty")
	}
	if strings.TrimSpace(storagePath) == "" {
		return nil, shared.NewDomainError("INVALID_STORAGE_PATH", "Storage path cannot be empty")
	}
	if uploaderID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_UPLOADER", "Attachment requires an uploading user")
	}

	return &Attachment{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		GlosaID:           glosaID,
		ResponseID:        responseID,
		FileName:          strings.TrimSpace(fileName),
		MimeType:          strings.TrimSpace(mimeType),
		StoragePath:       strings.TrimSpace(storagePath),
		Category:          strings.TrimSpace(category),
		UploaderID:        uploaderID,
	}, nil
}
