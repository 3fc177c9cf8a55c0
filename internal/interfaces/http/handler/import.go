package handler

import (
	"errors"
	"mime/multipart"
	"net/http"

	"github.com/glosas/backend/internal/application/importer"
	"github.com/glosas/backend/internal/domain/identity"
	"github.com/glosas/backend/internal/infrastructure/config"
	"github.com/glosas/backend/internal/infrastructure/csvimport"
	"github.com/glosas/backend/internal/interfaces/http/dto"
	"github.com/glosas/backend/internal/interfaces/http/middleware"
	"github.com/gin-gonic/gin"
)

// ImportHandler handles CSV batch uploads
type ImportHandler struct {
	BaseHandler
	invoiceImport *importer.InvoiceImportService
	glosaImport   *importer.GlosaImportService
	maxFileSize   int64
	authMW        gin.HandlerFunc
}

// NewImportHandler creates a new ImportHandler
func NewImportHandler(
	invoiceImport *importer.InvoiceImportService,
	glosaImport *importer.GlosaImportService,
	cfg config.ImportConfig,
	authMW gin.HandlerFunc,
) *ImportHandler {
	return &ImportHandler{
		invoiceImport: invoiceImport,
		glosaImport:   glosaImport,
		maxFileSize:   cfg.MaxFileSize,
		authMW:        authMW,
	}
}

// RegisterRoutes registers import routes
func (h *ImportHandler) RegisterRoutes(rg *gin.RouterGroup) {
	imports := rg.Group("/imports", h.authMW, middleware.RequireRoles(identity.RoleAdmin, identity.RoleBillerIPS))
	{
		imports.POST("/invoices", h.ImportInvoices)
		imports.POST("/glosas", h.ImportGlosas)
	}
}

// ImportInvoices loads an invoice batch from an uploaded CSV file
func (h *ImportHandler) ImportInvoices(c *gin.Context) {
	file, ok := h.openUpload(c)
	if !ok {
		return
	}
	defer file.Close()

	result, err := h.invoiceImport.Import(c.Request.Context(), file)
	if err != nil {
		h.handleImportError(c, err)
		return
	}
	h.Success(c, result)
}

// ImportGlosas loads a glosa batch from an uploaded CSV file
func (h *ImportHandler) ImportGlosas(c *gin.Context) {
	file, ok := h.openUpload(c)
	if !ok {
		return
	}
	defer file.Close()

	result, err := h.glosaImport.Import(c.Request.Context(), file)
	if err != nil {
		h.handleImportError(c, err)
		return
	}
	h.Success(c, result)
}

func (h *ImportHandler) openUpload(c *gin.Context) (multipart.File, bool) {
	file, header, err := c.Request.FormFile("file")
	if err != nil {
		h.BadRequest(c, "file is required")
		return nil, false
	}

	if h.maxFileSize > 0 && header.Size > h.maxFileSize {
		file.Close()
		c.JSON(http.StatusRequestEntityTooLarge,
			dto.NewErrorResponse(dto.ErrCodeValidation, "file exceeds the maximum import size"))
		return nil, false
	}

	contentType := header.Header.Get("Content-Type")
	switch contentType {
	case "", "text/csv", "text/plain", "application/octet-stream", "application/vnd.ms-excel":
	default:
		file.Close()
		c.JSON(http.StatusUnsupportedMediaType,
			dto.NewErrorResponse(dto.ErrCodeValidation, "file must be a CSV file"))
		return nil, false
	}

	return file, true
}

func (h *ImportHandler) handleImportError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, csvimport.ErrEmptyFile):
		h.BadRequest(c, "CSV file is empty")
	case errors.Is(err, csvimport.ErrInvalidEncoding):
		h.BadRequest(c, "CSV file has invalid encoding, must be UTF-8")
	case errors.Is(err, csvimport.ErrInvalidHeader):
		h.BadRequest(c, err.Error())
	default:
		h.HandleError(c, err)
	}
}
