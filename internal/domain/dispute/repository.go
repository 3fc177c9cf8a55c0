package dispute

import (
	"context"

	"github.com/glosas/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ReasonCodeRepository defines the interface for reason code persistence
type ReasonCodeRepository interface {
	Create(ctx context.Context, rc *ReasonCode) error
	Update(ctx context.Context, rc *ReasonCode) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindByID(ctx context.Context, id uuid.UUID) (*ReasonCode, error)
	FindByCode(ctx context.Context, code string) (*ReasonCode, error)
	FindAll(ctx context.Context, filter shared.Filter) ([]*ReasonCode, int64, error)
	ExistsByCode(ctx context.Context, code string) (bool, error)
}

// GlosaRepository defines the interface for glosa persistence.
// Delete cascades to the glosa's responses and attachments.
type GlosaRepository interface {
	Create(ctx context.Context, g *Glosa) error
	Update(ctx context.Context, g *Glosa) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindByID(ctx context.Context, id uuid.UUID) (*Glosa, error)
	FindAll(ctx context.Context, filter shared.Filter) ([]*Glosa, int64, error)
	FindByInvoice(ctx context.Context, invoiceID uuid.UUID) ([]*Glosa, error)

	// ExistsByTuple reports whether a glosa with the same
	// (invoice, reason code, disputed amount) already exists.
	// Used by the bulk import duplicate check.
	ExistsByTuple(ctx context.Context, invoiceID, reasonCodeID uuid.UUID, amount decimal.Decimal) (bool, error)

	Count(ctx context.Context) (int64, error)
}

// ResponseRepository defines the interface for response persistence
type ResponseRepository interface {
	Create(ctx context.Context, r *GlosaResponse) error
	Update(ctx context.Context, r *GlosaResponse) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindByID(ctx context.Context, id uuid.UUID) (*GlosaResponse, error)
	FindAll(ctx context.Context, filter shared.Filter) ([]*GlosaResponse, int64, error)
	FindByGlosa(ctx context.Context, glosaID uuid.UUID) ([]*GlosaResponse, error)
}

// AttachmentRepository defines the interface for attachment persistence
type AttachmentRepository interface {
	Create(ctx context.Context, a *Attachment) error
	Update(ctx context.Context, a *Attachment) error
	Delete(ctx context.Context, id uuid.UUID) error
	FindByID(ctx context.Context, id uuid.UUID) (*Attachment, error)
	FindAll(ctx context.Context, filter shared.Filter) ([]*Attachment, int64, error)
	FindByGlosa(ctx context.Context, glosaID uuid.UUID) ([]*Attachment, error)
}
