package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"
	"time"

	appdispute "github.com/glosas/backend/internal/application/dispute"
	"github.com/glosas/backend/internal/domain/billing"
	"github.com/glosas/backend/internal/domain/dispute"
	"github.com/glosas/backend/internal/domain/identity"
	"github.com/glosas/backend/internal/domain/shared"
	"github.com/glosas/backend/internal/infrastructure/auth"
	"github.com/glosas/backend/internal/interfaces/http/middleware"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// passthroughTxManager runs the transaction body directly
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

type glosaTestEnv struct {
	router       *gin.Engine
	glosaRepo    *MockGlosaRepository
	responseRepo *MockResponseRepository
	jwt          *auth.JWTService
}

func setupGlosaTest(t *testing.T) *glosaTestEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	glosaRepo := new(MockGlosaRepository)
	responseRepo := new(MockResponseRepository)
	jwtService := auth.NewJWTService(testJWTConfig())

	glosaService := appdispute.NewGlosaService(
		glosaRepo, responseRepo,
		new(MockInvoiceRepository), new(MockReasonCodeRepository),
		passthroughTxManager{}, zap.NewNop(),
	)

	authMW := middleware.JWTAuthMiddlewareWithConfig(middleware.JWTMiddlewareConfig{
		JWTService: jwtService,
	})

	r := gin.New()
	api := r.Group("/api/v1")
	NewGlosaHandler(glosaService, authMW).RegisterRoutes(api)

	return &glosaTestEnv{router: r, glosaRepo: glosaRepo, responseRepo: responseRepo, jwt: jwtService}
}

func (env *glosaTestEnv) tokenFor(t *testing.T, role identity.Role) string {
	t.Helper()
	user, err := identity.NewUser("Test User", "user@clinica.co", "Password123!", role)
	require.NoError(t, err)
	tokens, err := env.jwt.GenerateTokenPair(user)
	require.NoError(t, err)
	return tokens.AccessToken
}

func newPendingGlosa(t *testing.T, amount int64) *dispute.Glosa {
	t.Helper()
	g, err := dispute.NewGlosa(uuid.New(), uuid.New(), time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC), decimal.NewFromInt(amount))
	require.NoError(t, err)
	return g
}

func TestGlosaHandler_SubmitResponse(t *testing.T) {
	t.Run("records a response when accepted plus rejected covers the amount", func(t *testing.T) {
		env := setupGlosaTest(t)
		g := newPendingGlosa(t, 50000)

		env.glosaRepo.On("FindByID", mock.Anything, g.ID).Return(g, nil)
		env.glosaRepo.On("Update", mock.Anything, g).Return(nil)
		env.responseRepo.On("Create", mock.Anything, mock.AnythingOfType("*dispute.GlosaResponse")).Return(nil)

		token := env.tokenFor(t, identity.RoleAuditorIPS)
		w := doJSON(env.router, http.MethodPost, "/api/v1/glosas/"+g.ID.String()+"/responses", appdispute.SubmitResponseRequest{
			Argument: "Se acepta parcialmente la glosa",
			Accepted: decimal.NewFromInt(30000),
			Rejected: decimal.NewFromInt(20000),
		}, token)

		assert.Equal(t, http.StatusCreated, w.Code)

		var response map[string]any
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		data := response["data"].(map[string]any)
		assert.Equal(t, "Se acepta parcialmente la glosa", data["argument"])

		env.responseRepo.AssertNumberOfCalls(t, "Create", 1)
	})

	t.Run("rejects a response whose amounts do not cover the dispute", func(t *testing.T) {
		env := setupGlosaTest(t)
		g := newPendingGlosa(t, 50000)

		env.glosaRepo.On("FindByID", mock.Anything, g.ID).Return(g, nil)

		token := env.tokenFor(t, identity.RoleAuditorIPS)
		w := doJSON(env.router, http.MethodPost, "/api/v1/glosas/"+g.ID.String()+"/responses", appdispute.SubmitResponseRequest{
			Argument: "Suma incompleta",
			Accepted: decimal.NewFromInt(10000),
			Rejected: decimal.NewFromInt(10000),
		}, token)

		assert.Equal(t, http.StatusBadRequest, w.Code)
		env.responseRepo.AssertNotCalled(t, "Create")
		env.glosaRepo.AssertNotCalled(t, "Update")
	})

	t.Run("forbids roles outside the responder set", func(t *testing.T) {
		env := setupGlosaTest(t)
		g := newPendingGlosa(t, 50000)

		token := env.tokenFor(t, identity.RoleBillerIPS)
		w := doJSON(env.router, http.MethodPost, "/api/v1/glosas/"+g.ID.String()+"/responses", appdispute.SubmitResponseRequest{
			Argument: "No autorizado",
			Accepted: decimal.NewFromInt(50000),
			Rejected: decimal.Zero,
		}, token)

		assert.Equal(t, http.StatusForbidden, w.Code)
		env.glosaRepo.AssertNotCalled(t, "FindByID")
	})
}

func TestGlosaHandler_OverrideStatus(t *testing.T) {
	t.Run("lets an administrator set a free-text status", func(t *testing.T) {
		env := setupGlosaTest(t)
		g := newPendingGlosa(t, 20000)

		env.glosaRepo.On("FindByID", mock.Anything, g.ID).Return(g, nil)
		env.glosaRepo.On("Update", mock.Anything, g).Return(nil)

		token := env.tokenFor(t, identity.RoleAdmin)
		w := doJSON(env.router, http.MethodPut, "/api/v1/glosas/"+g.ID.String()+"/status", appdispute.OverrideStatusRequest{
			Status: "En conciliacion",
		}, token)

		assert.Equal(t, http.StatusOK, w.Code)

		var response map[string]any
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		data := response["data"].(map[string]any)
		assert.Equal(t, "En conciliacion", data["status"])
	})

	t.Run("forbids non-administrators", func(t *testing.T) {
		env := setupGlosaTest(t)
		g := newPendingGlosa(t, 20000)

		token := env.tokenFor(t, identity.RoleManagerIPS)
		w := doJSON(env.router, http.MethodPut, "/api/v1/glosas/"+g.ID.String()+"/status", appdispute.OverrideStatusRequest{
			Status: "En conciliacion",
		}, token)

		assert.Equal(t, http.StatusForbidden, w.Code)
	})
}

func TestGlosaHandler_List(t *testing.T) {
	t.Run("rejects unauthenticated requests", func(t *testing.T) {
		env := setupGlosaTest(t)

		w := doJSON(env.router, http.MethodGet, "/api/v1/glosas", nil, "")

		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("returns pagination metadata", func(t *testing.T) {
		env := setupGlosaTest(t)
		g := newPendingGlosa(t, 15000)

		env.glosaRepo.On("FindAll", mock.Anything, shared.Filter{Offset: 0, Limit: 20}).
			Return([]*dispute.Glosa{g}, int64(1), nil)

		token := env.tokenFor(t, identity.RoleUserEPS)
		w := doJSON(env.router, http.MethodGet, "/api/v1/glosas", nil, token)

		assert.Equal(t, http.StatusOK, w.Code)

		var response map[string]any
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		meta := response["meta"].(map[string]any)
		assert.Equal(t, float64(1), meta["total"])
		assert.Equal(t, float64(1), meta["page"])
	})
}
