package dispute

import (
	"time"

	"github.com/glosas/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// DefaultResponseKind labels a regular provider reply
const DefaultResponseKind = "Respuesta IPS"

// GlosaResponse is the issuing institution's reply to a glosa,
// apportioning the disputed amount into accepted and rejected parts.
type GlosaResponse struct {
	shared.BaseAggregateRoot
	GlosaID         uuid.UUID
	ResponderID     uuid.UUID
	ResponseDate    time.Time
	Kind            string
	Accepted        decimal.Decimal
	Rejected        decimal.Decimal
	Argument        string
	ResultingStatus GlosaStatus
}

func newGlosaResponse(glosaID, responderID uuid.UUID, argument string, accepted, rejected decimal.Decimal) *GlosaResponse {
	return &GlosaResponse{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		GlosaID:           glosaID,
		ResponderID:       responderID,
		ResponseDate:      time.Now(),
		Kind:              DefaultResponseKind,
		Accepted:          accepted,
		Rejected:          rejected,
		Argument:          argument,
		ResultingStatus:   GlosaStatusResponded,
	}
}
