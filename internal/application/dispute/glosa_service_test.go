package dispute

import (
	"context"
	"testing"
	"time"

	"github.com/glosas/backend/internal/domain/dispute"
	"github.com/glosas/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newTestGlosa(t *testing.T, amount int64) *dispute.Glosa {
	t.Helper()
	g, err := dispute.NewGlosa(uuid.New(), uuid.New(), time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC), decimal.NewFromInt(amount))
	require.NoError(t, err)
	return g
}

func newGlosaService(glosaRepo *MockGlosaRepository, responseRepo *MockResponseRepository) *GlosaService {
	return NewGlosaService(glosaRepo, responseRepo, new(MockInvoiceRepository), new(MockReasonCodeRepository), passthroughTxManager{}, zap.NewNop())
}

func TestGlosaService_SubmitResponse(t *testing.T) {
	t.Run("creates one response and marks the glosa responded", func(t *testing.T) {
		g := newTestGlosa(t, 40000)
		responderID := uuid.New()

		glosaRepo := new(MockGlosaRepository)
		responseRepo := new(MockResponseRepository)
		glosaRepo.On("FindByID", mock.Anything, g.ID).Return(g, nil)
		glosaRepo.On("Update", mock.Anything, mock.MatchedBy(func(updated *dispute.Glosa) bool {
			return updated.Status == dispute.GlosaStatusResponded
		})).Return(nil)
		responseRepo.On("Create", mock.Anything, mock.MatchedBy(func(r *dispute.GlosaResponse) bool {
			return r.GlosaID == g.ID && r.ResponderID == responderID &&
				r.Accepted.Equal(decimal.NewFromInt(25000)) &&
				r.Rejected.Equal(decimal.NewFromInt(15000))
		})).Return(nil)

		svc := newGlosaService(glosaRepo, responseRepo)
		dto, err := svc.SubmitResponse(context.Background(), g.ID, responderID, SubmitResponseRequest{
			Argument: "soportes adjuntos",
			Accepted: decimal.NewFromInt(25000),
			Rejected: decimal.NewFromInt(15000),
		})

		require.NoError(t, err)
		assert.Equal(t, "Responded", dto.ResultingStatus)
		glosaRepo.AssertExpectations(t)
		responseRepo.AssertExpectations(t)
	})

	t.Run("rejects amounts that do not sum to the disputed amount", func(t *testing.T) {
		g := newTestGlosa(t, 40000)

		glosaRepo := new(MockGlosaRepository)
		responseRepo := new(MockResponseRepository)
		glosaRepo.On("FindByID", mock.Anything, g.ID).Return(g, nil)

		svc := newGlosaService(glosaRepo, responseRepo)
		_, err := svc.SubmitResponse(context.Background(), g.ID, uuid.New(), SubmitResponseRequest{
			Argument: "parcial",
			Accepted: decimal.NewFromInt(25000),
			Rejected: decimal.NewFromInt(10000),
		})

		require.Error(t, err)
		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "RESPONSE_SUM_MISMATCH", domainErr.Code)
		assert.Equal(t, dispute.GlosaStatusPending, g.Status)
		glosaRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
		responseRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})

	t.Run("propagates not found without writes", func(t *testing.T) {
		glosaRepo := new(MockGlosaRepository)
		responseRepo := new(MockResponseRepository)
		missing := uuid.New()
		glosaRepo.On("FindByID", mock.Anything, missing).Return(nil, shared.ErrNotFound)

		svc := newGlosaService(glosaRepo, responseRepo)
		_, err := svc.SubmitResponse(context.Background(), missing, uuid.New(), SubmitResponseRequest{
			Argument: "x",
			Accepted: decimal.NewFromInt(1),
			Rejected: decimal.Zero,
		})

		assert.ErrorIs(t, err, shared.ErrNotFound)
		responseRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})
}

func TestGlosaService_OverrideStatus(t *testing.T) {
	t.Run("overwrites the status unconditionally", func(t *testing.T) {
		g := newTestGlosa(t, 1000)

		glosaRepo := new(MockGlosaRepository)
		glosaRepo.On("FindByID", mock.Anything, g.ID).Return(g, nil)
		glosaRepo.On("Update", mock.Anything, mock.MatchedBy(func(updated *dispute.Glosa) bool {
			return string(updated.Status) == "En conciliacion"
		})).Return(nil)

		svc := newGlosaService(glosaRepo, new(MockResponseRepository))
		resp, err := svc.OverrideStatus(context.Background(), g.ID, OverrideStatusRequest{Status: "En conciliacion"})

		require.NoError(t, err)
		assert.Equal(t, "En conciliacion", resp.Status)
		glosaRepo.AssertExpectations(t)
	})

	t.Run("rejects an empty status", func(t *testing.T) {
		g := newTestGlosa(t, 1000)

		glosaRepo := new(MockGlosaRepository)
		glosaRepo.On("FindByID", mock.Anything, g.ID).Return(g, nil)

		svc := newGlosaService(glosaRepo, new(MockResponseRepository))
		_, err := svc.OverrideStatus(context.Background(), g.ID, OverrideStatusRequest{Status: "   "})

		assert.Error(t, err)
		glosaRepo.AssertNotCalled(t, "Update", mock.Anything, mock.Anything)
	})
}

func TestGlosaService_Alerts(t *testing.T) {
	today := time.Now()

	t.Run("get alert classifies against today", func(t *testing.T) {
		g := newTestGlosa(t, 1000)
		overdue := today.AddDate(0, 0, -1)
		g.SetDeadline(&overdue)

		glosaRepo := new(MockGlosaRepository)
		glosaRepo.On("FindByID", mock.Anything, g.ID).Return(g, nil)

		svc := newGlosaService(glosaRepo, new(MockResponseRepository))
		resp, err := svc.GetAlert(context.Background(), g.ID)

		require.NoError(t, err)
		assert.Equal(t, "overdue", resp.AlertLevel)
		assert.Equal(t, "danger", resp.AlertColor)
	})

	t.Run("list carries alert levels per item", func(t *testing.T) {
		noDeadline := newTestGlosa(t, 1000)
		nearDue := newTestGlosa(t, 2000)
		soon := today.AddDate(0, 0, 3)
		nearDue.SetDeadline(&soon)

		glosaRepo := new(MockGlosaRepository)
		glosaRepo.On("FindAll", mock.Anything, mock.Anything).Return([]*dispute.Glosa{noDeadline, nearDue}, int64(2), nil)

		svc := newGlosaService(glosaRepo, new(MockResponseRepository))
		list, err := svc.List(context.Background(), shared.Filter{Limit: 20})

		require.NoError(t, err)
		require.Len(t, list.Items, 2)
		assert.Equal(t, "no-deadline", list.Items[0].AlertLevel)
		assert.Equal(t, "near-due", list.Items[1].AlertLevel)
	})
}

func TestGlosaService_Create(t *testing.T) {
	t.Run("rejects a glosa for a missing invoice", func(t *testing.T) {
		invoiceRepo := new(MockInvoiceRepository)
		invoiceID := uuid.New()
		invoiceRepo.On("FindByID", mock.Anything, invoiceID).Return(nil, shared.ErrNotFound)

		svc := NewGlosaService(new(MockGlosaRepository), new(MockResponseRepository), invoiceRepo, new(MockReasonCodeRepository), passthroughTxManager{}, zap.NewNop())
		_, err := svc.Create(context.Background(), CreateGlosaRequest{
			InvoiceID:    invoiceID,
			ReasonCodeID: uuid.New(),
			DisputeDate:  time.Now(),
			Amount:       decimal.NewFromInt(100),
		})

		require.Error(t, err)
		var domainErr *shared.DomainError
		require.ErrorAs(t, err, &domainErr)
		assert.Equal(t, "INVOICE_NOT_FOUND", domainErr.Code)
	})
}

func TestGlosaService_Dashboard(t *testing.T) {
	t.Run("counts pending, responded and high-value glosas", func(t *testing.T) {
		pending := newTestGlosa(t, 500000)
		big := newTestGlosa(t, 2500000)
		responded := newTestGlosa(t, 40000)
		_, err := responded.Respond(uuid.New(), "ok", decimal.NewFromInt(40000), decimal.Zero)
		require.NoError(t, err)

		glosaRepo := new(MockGlosaRepository)
		glosaRepo.On("Count", mock.Anything).Return(int64(3), nil)
		glosaRepo.On("FindAll", mock.Anything, mock.Anything).Return([]*dispute.Glosa{pending, big, responded}, int64(3), nil)

		invoiceRepo := new(MockInvoiceRepository)
		invoiceRepo.On("Count", mock.Anything).Return(int64(2), nil)

		svc := NewGlosaService(glosaRepo, new(MockResponseRepository), invoiceRepo, new(MockReasonCodeRepository), passthroughTxManager{}, zap.NewNop())
		summary, err := svc.Dashboard(context.Background())

		require.NoError(t, err)
		assert.Equal(t, int64(2), summary.TotalInvoices)
		assert.Equal(t, int64(3), summary.TotalGlosas)
		assert.Equal(t, int64(2), summary.PendingGlosas)
		assert.Equal(t, int64(1), summary.RespondedCount)
		assert.Equal(t, int64(1), summary.HighValue)
	})
}
