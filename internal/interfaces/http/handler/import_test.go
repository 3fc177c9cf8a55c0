package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/glosas/backend/internal/application/importer"
	"github.com/glosas/backend/internal/domain/identity"
	"github.com/glosas/backend/internal/domain/partner"
	"github.com/glosas/backend/internal/domain/shared"
	"github.com/glosas/backend/internal/infrastructure/auth"
	"github.com/glosas/backend/internal/infrastructure/config"
	"github.com/glosas/backend/internal/interfaces/http/middleware"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// MockInstitutionRepository is a mock implementation of partner.InstitutionRepository
type MockInstitutionRepository struct {
	mock.Mock
}

func (m *MockInstitutionRepository) Create(ctx context.Context, inst *partner.Institution) error {
	args := m.Called(ctx, inst)
	return args.Error(0)
}

func (m *MockInstitutionRepository) Update(ctx context.Context, inst *partner.Institution) error {
	args := m.Called(ctx, inst)
	return args.Error(0)
}

func (m *MockInstitutionRepository) Delete(ctx context.Context, id uuid.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockInstitutionRepository) FindByID(ctx context.Context, id uuid.UUID) (*partner.Institution, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*partner.Institution), args.Error(1)
}

func (m *MockInstitutionRepository) FindByTaxID(ctx context.Context, taxID string) (*partner.Institution, error) {
	args := m.Called(ctx, taxID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*partner.Institution), args.Error(1)
}

func (m *MockInstitutionRepository) FindAll(ctx context.Context, filter shared.Filter) ([]*partner.Institution, int64, error) {
	args := m.Called(ctx, filter)
	return args.Get(0).([]*partner.Institution), args.Get(1).(int64), args.Error(2)
}

func (m *MockInstitutionRepository) ExistsByTaxID(ctx context.Context, taxID string) (bool, error) {
	args := m.Called(ctx, taxID)
	return args.Bool(0), args.Error(1)
}

type importTestEnv struct {
	router          *gin.Engine
	invoiceRepo     *MockInvoiceRepository
	institutionRepo *MockInstitutionRepository
	jwt             *auth.JWTService
}

func setupImportTest(t *testing.T, importCfg config.ImportConfig) *importTestEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	invoiceRepo := new(MockInvoiceRepository)
	institutionRepo := new(MockInstitutionRepository)
	glosaRepo := new(MockGlosaRepository)
	reasonRepo := new(MockReasonCodeRepository)
	jwtService := auth.NewJWTService(testJWTConfig())

	invoiceImport := importer.NewInvoiceImportService(invoiceRepo, institutionRepo, importCfg.MaxRowErrors, zap.NewNop())
	glosaImport := importer.NewGlosaImportService(glosaRepo, reasonRepo, invoiceRepo, importCfg.MaxRowErrors, zap.NewNop())

	authMW := middleware.JWTAuthMiddlewareWithConfig(middleware.JWTMiddlewareConfig{
		JWTService: jwtService,
	})

	r := gin.New()
	api := r.Group("/api/v1")
	NewImportHandler(invoiceImport, glosaImport, importCfg, authMW).RegisterRoutes(api)

	return &importTestEnv{router: r, invoiceRepo: invoiceRepo, institutionRepo: institutionRepo, jwt: jwtService}
}

func (env *importTestEnv) tokenFor(t *testing.T, role identity.Role) string {
	t.Helper()
	user, err := identity.NewUser("Import User", "import@clinica.co", "Password123!", role)
	require.NoError(t, err)
	tokens, err := env.jwt.GenerateTokenPair(user)
	require.NoError(t, err)
	return tokens.AccessToken
}

func uploadCSV(t *testing.T, r *gin.Engine, path, csv, token string) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	fw, err := mw.CreateFormFile("file", "batch.csv")
	require.NoError(t, err)
	_, err = fw.Write([]byte(csv))
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, path, &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestImportHandler_ImportInvoices(t *testing.T) {
	defaultCfg := config.ImportConfig{MaxFileSize: 10 << 20, MaxRowErrors: 100}

	t.Run("creates invoices from a valid CSV", func(t *testing.T) {
		env := setupImportTest(t, defaultCfg)

		issuer, err := partner.NewInstitution("900123456", "Clinica del Norte", partner.KindIPS)
		require.NoError(t, err)
		receiver, err := partner.NewInstitution("800987654", "EPS Salud Total", partner.KindEPS)
		require.NoError(t, err)

		env.institutionRepo.On("FindByTaxID", mock.Anything, "900123456").Return(issuer, nil)
		env.institutionRepo.On("FindByTaxID", mock.Anything, "800987654").Return(receiver, nil)
		env.invoiceRepo.On("Create", mock.Anything, mock.AnythingOfType("*billing.Invoice")).Return(nil)

		csv := strings.Join([]string{
			"numero_factura,id_emisora,id_receptora,fecha_emision,valor_total",
			"FE-1001,900123456,800987654,2026-01-10,250000",
			"FE-1002,900123456,800987654,2026-01-12,310000",
		}, "\n")

		token := env.tokenFor(t, identity.RoleBillerIPS)
		w := uploadCSV(t, env.router, "/api/v1/imports/invoices", csv, token)

		assert.Equal(t, http.StatusOK, w.Code)

		var response map[string]any
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
		data := response["data"].(map[string]any)
		assert.Equal(t, float64(2), data["processed"])
		assert.Equal(t, float64(2), data["created"])

		env.invoiceRepo.AssertNumberOfCalls(t, "Create", 2)
	})

	t.Run("rejects a CSV with missing required headers", func(t *testing.T) {
		env := setupImportTest(t, defaultCfg)

		csv := "numero_factura,valor_total\nFE-1001,250000"
		token := env.tokenFor(t, identity.RoleAdmin)
		w := uploadCSV(t, env.router, "/api/v1/imports/invoices", csv, token)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("rejects files over the configured size limit", func(t *testing.T) {
		env := setupImportTest(t, config.ImportConfig{MaxFileSize: 64, MaxRowErrors: 100})

		csv := "numero_factura,id_emisora,id_receptora,fecha_emision,valor_total\n" +
			strings.Repeat("FE-1001,900123456,800987654,2026-01-10,250000\n", 10)
		token := env.tokenFor(t, identity.RoleBillerIPS)
		w := uploadCSV(t, env.router, "/api/v1/imports/invoices", csv, token)

		assert.Equal(t, http.StatusRequestEntityTooLarge, w.Code)
	})

	t.Run("forbids roles outside the import set", func(t *testing.T) {
		env := setupImportTest(t, defaultCfg)

		csv := "numero_factura,id_emisora,id_receptora,fecha_emision,valor_total\n"
		token := env.tokenFor(t, identity.RoleAuditorEPS)
		w := uploadCSV(t, env.router, "/api/v1/imports/invoices", csv, token)

		assert.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("requires a file part", func(t *testing.T) {
		env := setupImportTest(t, defaultCfg)

		token := env.tokenFor(t, identity.RoleAdmin)
		req := httptest.NewRequest(http.MethodPost, "/api/v1/imports/invoices", nil)
		req.Header.Set("Authorization", "Bearer "+token)
		w := httptest.NewRecorder()
		env.router.ServeHTTP(w, req)

		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}
