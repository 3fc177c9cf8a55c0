package dispute

import (
	"strings"
	"time"

	"github.com/glosas/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// GlosaStatus is the lifecycle state of a dispute. Pending and
// Responded are the conventional states; an admin override may set
// any free-text value.
type GlosaStatus string

const (
	GlosaStatusPending   GlosaStatus = "Pending"
	GlosaStatusResponded GlosaStatus = "Responded"
)

// AlertLevel classifies a glosa against its response deadline
type AlertLevel string

const (
	AlertNoDeadline AlertLevel = "no-deadline"
	AlertResolved   AlertLevel = "resolved"
	AlertOverdue    AlertLevel = "overdue"
	AlertNearDue    AlertLevel = "near-due"
	AlertOK         AlertLevel = "ok"
)

// nearDueWindowDays is the inclusive near-due window before the deadline
const nearDueWindowDays = 5

// Color returns the presentation color for an alert level
func (a AlertLevel) Color() string {
	switch a {
	case AlertNoDeadline:
		return "secondary"
	case AlertOverdue:
		return "danger"
	case AlertNearDue:
		return "warning"
	default:
		return "success"
	}
}

// Glosa is a disputed line item raised against an invoice.
// It owns its responses and attachments: deleting a glosa cascades.
type Glosa struct {
	shared.BaseAggregateRoot
	InvoiceID     uuid.UUID
	ReasonCodeID  uuid.UUID
	DisputeDate   time.Time
	Amount        decimal.Decimal
	Status        GlosaStatus
	Notes         string
	ResponsibleID *uuid.UUID
	Deadline      *time.Time
}

// NewGlosa creates a new dispute in the Pending state
func NewGlosa(invoiceID, reasonCodeID uuid.UUID, disputeDate time.Time, amount decimal.Decimal) (*Glosa, error) {
	if invoiceID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_INVOICE", "Glosa requires an invoice")
	}
	if reasonCodeID == uuid.Nil {
		return nil, shared.NewDomainError("INVALID_REASON", "Glosa requires a reason code")
	}
	if amount.IsNegative() {
		return nil, shared.NewDomainError("INVALID_AMOUNT", "Disputed amount cannot be negative")
	}

	return &Glosa{
		BaseAggregateRoot: shared.NewBaseAggregateRoot(),
		InvoiceID:         invoiceID,
		ReasonCodeID:      reasonCodeID,
		DisputeDate:       disputeDate,
		Amount:            amount,
		Status:            GlosaStatusPending,
	}, nil
}

// ClassifyAlert derives the alert level from (status, deadline, today).
// Pure function of its inputs; consumers can re-derive it without
// querying other tables.
func (g *Glosa) ClassifyAlert(today time.Time) AlertLevel {
	if g.Deadline == nil {
		return AlertNoDeadline
	}
	if g.Status == GlosaStatusResponded {
		return AlertResolved
	}

	day := truncateToDay(today)
	deadline := truncateToDay(*g.Deadline)

	if deadline.Before(day) {
		return AlertOverdue
	}
	if !deadline.After(day.AddDate(0, 0, nearDueWindowDays)) {
		return AlertNearDue
	}
	return AlertOK
}

// Respond apportions the disputed amount into accepted and rejected
// sub-amounts. The sum must exactly equal the disputed amount; on
// mismatch nothing changes. On success the glosa moves to Responded
// and the created response is returned for persistence alongside it.
func (g *Glosa) Respond(userID uuid.UUID, argument string, accepted, rejected decimal.Decimal) (*GlosaResponse, error) {
	if accepted.IsNegative() || rejected.IsNegative() {
		return nil, shared.NewDomainError("INVALID_RESPONSE_AMOUNTS", "Response amounts cannot be negative")
	}
	if !accepted.Add(rejected).Equal(g.Amount) {
		return nil, shared.NewDomainError("RESPONSE_SUM_MISMATCH",
			"Accepted plus rejected amounts must equal the disputed amount")
	}

	resp := newGlosaResponse(g.ID, userID, argument, accepted, rejected)
	g.Status = GlosaStatusResponded
	g.Touch()
	g.IncrementVersion()
	return resp, nil
}

// OverrideStatus unconditionally overwrites the status. Used by the
// manual admin override; always bumps the last-modified timestamp.
func (g *Glosa) OverrideStatus(status string) error {
	if strings.TrimSpace(status) == "" {
		return shared.NewDomainError("INVALID_STATUS", "Status cannot be empty")
	}
	g.Status = GlosaStatus(strings.TrimSpace(status))
	g.Touch()
	g.IncrementVersion()
	return nil
}

// SetDeadline sets or clears the response deadline
func (g *Glosa) SetDeadline(deadline *time.Time) {
	g.Deadline = deadline
	g.Touch()
	g.IncrementVersion()
}

// AssignResponsible sets or clears the responsible user
func (g *Glosa) AssignResponsible(userID *uuid.UUID) {
	g.ResponsibleID = userID
	g.Touch()
	g.IncrementVersion()
}

func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}
