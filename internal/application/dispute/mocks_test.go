package dispute

import (
	"context"

	"github.com/glosas/backend/internal/domain/billing"
	"github.com/glosas/backend/internal/domain/dispute"
	"github.com/glosas/backend/internal/domain/shared"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

// passthroughTxManager runs the function directly, no transaction
type passthroughTxManager struct{}

func (passthroughTxManager) WithinTransaction(ctx context.Context, fn func(txCtx context.Context) error) error {
	return fn(ctx)
}

// MockGlosaRepository is a mock implementation of dispute.GlosaRepository
type MockGlosaRepository struct {
	mock.Mock
}

func (m *MockGlosaRepository) Create(ctx context.Context, g *dispute.Glosa) error {
	args := m.Called(ctx, g)
	return args.Error(0)
}

func (m *MockGlosaRepository) Update(ctx context.Context, g *dispute.Glosa) error {
	args := m.Called(ctx, g)
	return args.Error(0)
}

func (m *MockGlosaRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockGlosaRepository) FindByID(ctx context.Context, id uuid.UUID) (*dispute.Glosa, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dispute.Glosa), args.Error(1)
}

func (m *MockGlosaRepository) FindAll(ctx context.Context, filter shared.Filter) ([]*dispute.Glosa, int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]*dispute.Glosa), args.Get(1).(int64), args.Error(2)
}

func (m *MockGlosaRepository) FindByInvoice(ctx context.Context, invoiceID uuid.UUID) ([]*dispute.Glosa, error) {
	args := m.Called(ctx, invoiceID)
	return args.Get(0).([]*dispute.Glosa), args.Error(1)
}

func (m *MockGlosaRepository) ExistsByTuple(ctx context.Context, invoiceID, reasonCodeID uuid.UUID, amount decimal.Decimal) (bool, error) {
	args := m.Called(ctx, invoiceID, reasonCodeID, amount)
	return args.Bool(0), args.Error(1)
}

func (m *MockGlosaRepository) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

// MockResponseRepository is a mock implementation of dispute.ResponseRepository
type MockResponseRepository struct {
	mock.Mock
}

func (m *MockResponseRepository) Create(ctx context.Context, r *dispute.GlosaResponse) error {
	args := m.Called(ctx, r)
	return args.Error(0)
}

func (m *MockResponseRepository) Update(ctx context.Context, r *dispute.GlosaResponse) error {
	args := m.Called(ctx, r)
	return args.Error(0)
}

func (m *MockResponseRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockResponseRepository) FindByID(ctx context.Context, id uuid.UUID) (*dispute.GlosaResponse, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dispute.GlosaResponse), args.Error(1)
}

func (m *MockResponseRepository) FindAll(ctx context.Context, filter shared.Filter) ([]*dispute.GlosaResponse, int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]*dispute.GlosaResponse), args.Get(1).(int64), args.Error(2)
}

func (m *MockResponseRepository) FindByGlosa(ctx context.Context, glosaID uuid.UUID) ([]*dispute.GlosaResponse, error) {
	args := m.Called(ctx, glosaID)
	return args.Get(0).([]*dispute.GlosaResponse), args.Error(1)
}

// MockInvoiceRepository is a mock implementation of billing.InvoiceRepository
type MockInvoiceRepository struct {
	mock.Mock
}

func (m *MockInvoiceRepository) Create(ctx context.Context, inv *billing.Invoice) error {
	args := m.Called(ctx, inv)
	return args.Error(0)
}

func (m *MockInvoiceRepository) Update(ctx context.Context, inv *billing.Invoice) error {
	args := m.Called(ctx, inv)
	return args.Error(0)
}

func (m *MockInvoiceRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockInvoiceRepository) FindByID(ctx context.Context, id uuid.UUID) (*billing.Invoice, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*billing.Invoice), args.Error(1)
}

func (m *MockInvoiceRepository) FindByNumber(ctx context.Context, number string) (*billing.Invoice, error) {
	args := m.Called(ctx, number)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*billing.Invoice), args.Error(1)
}

func (m *MockInvoiceRepository) FindAll(ctx context.Context, filter shared.Filter) ([]*billing.Invoice, int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]*billing.Invoice), args.Get(1).(int64), args.Error(2)
}

func (m *MockInvoiceRepository) ExistsByNumber(ctx context.Context, number string) (bool, error) {
	args := m.Called(ctx, number)
	return args.Bool(0), args.Error(1)
}

func (m *MockInvoiceRepository) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}

// MockReasonCodeRepository is a mock implementation of dispute.ReasonCodeRepository
type MockReasonCodeRepository struct {
	mock.Mock
}

func (m *MockReasonCodeRepository) Create(ctx context.Context, rc *dispute.ReasonCode) error {
	args := m.Called(ctx, rc)
	return args.Error(0)
}

func (m *MockReasonCodeRepository) Update(ctx context.Context, rc *dispute.ReasonCode) error {
	args := m.Called(ctx, rc)
	return args.Error(0)
}

func (m *MockReasonCodeRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockReasonCodeRepository) FindByID(ctx context.Context, id uuid.UUID) (*dispute.ReasonCode, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dispute.ReasonCode), args.Error(1)
}

func (m *MockReasonCodeRepository) FindByCode(ctx context.Context, code string) (*dispute.ReasonCode, error) {
	args := m.Called(ctx, code)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*dispute.ReasonCode), args.Error(1)
}

func (m *MockReasonCodeRepository) FindAll(ctx context.Context, filter shared.Filter) ([]*dispute.ReasonCode, int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]*dispute.ReasonCode), args.Get(1).(int64), args.Error(2)
}

func (m *MockReasonCodeRepository) ExistsByCode(ctx context.Context, code string) (bool, error) {
	args := m.Called(ctx, code)
	return args.Bool(0), args.Error(1)
}
