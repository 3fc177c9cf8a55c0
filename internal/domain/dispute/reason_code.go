package dispute

import (
	"strings"

	"github.com/glosas/backend/internal/domain/shared"
)

// ReasonCode is the coded justification category for a dispute.
// Reference data: created once, never mutated by the lifecycle.
type ReasonCode struct {
	shared.BaseAggregateRoot
	Code        string
	Description string
	AppliesTo   string
}

// NewReasonCode creates a new reason code
func NewReasonCode(code, description, appliesTo string) (*ReasonCode, error) {
	code = strings.TrimSpace(code)
	if code == "" {
		return nil, shared.NewDomainError("INVALID_REASON_CODE", "Reason code cannot be empty")
	}
	if strings.TrimSpace(description) == "" {
		return nil, shared.NewDomainError("INVALID_REASON_DESCRIPTION", "Reason description cannot be empty")
	}

	return &ReasonCode{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		Code:              code,
		Description:       strings.TrimSpace(description),
		AppliesTo:         strings.TrimSpace(appliesTo),
	}, nil
}
