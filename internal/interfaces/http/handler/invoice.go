package handler

import (
	"github.com/glosas/backend/internal/application/billing"
	appdispute "github.com/glosas/backend/internal/application/dispute"
	"github.com/glosas/backend/internal/domain/identity"
	"github.com/glosas/backend/internal/domain/shared"
	"github.com/glosas/backend/internal/interfaces/http/dto"
	"github.com/glosas/backend/internal/interfaces/http/middleware"
	"github.com/gin-gonic/gin"
)

// InvoiceHandler handles invoice requests
type InvoiceHandler struct {
	BaseHandler
	invoiceService *billing.InvoiceService
	glosaService   *appdispute.GlosaService
	authMW         gin.HandlerFunc
}

// NewInvoiceHandler creates a new InvoiceHandler
func NewInvoiceHandler(invoiceService *billing.InvoiceService, glosaService *appdispute.GlosaService, authMW gin.HandlerFunc) *InvoiceHandler {
	return &InvoiceHandler{invoiceService: invoiceService, glosaService: glosaService, authMW: authMW}
}

// RegisterRoutes registers invoice routes
func (h *InvoiceHandler) RegisterRoutes(rg *gin.RouterGroup) {
	invoices := rg.Group("/invoices", h.authMW)
	{
		invoices.GET("", h.List)
		invoices.GET("/:id", h.Get)
		invoices.GET("/by-number/:number", h.GetByNumber)
		invoices.GET("/:id/glosas", h.ListGlosas)

		writers := middleware.RequireRoles(identity.RoleAdmin, identity.RoleBillerIPS)
		invoices.POST("", writers, h.Create)
		invoices.PUT("/:id", writers, h.Update)
		invoices.DELETE("/:id", middleware.RequireRoles(identity.RoleAdmin), h.Delete)
	}
}

// Create registers an invoice
func (h *InvoiceHandler) Create(c *gin.Context) {
	var req billing.CreateInvoiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Invalid request body")
		return
	}

	inv, err := h.invoiceService.Create(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, inv)
}

// List returns invoices paginated
func (h *InvoiceHandler) List(c *gin.Context) {
	var req dto.ListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		h.BadRequest(c, "Invalid pagination parameters")
		return
	}
	offset, limit := req.Normalize()

	list, err := h.invoiceService.List(c.Request.Context(), shared.Filter{Offset: offset, Limit: limit})
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.SuccessWithMeta(c, list.Items, list.Total, req.Page, req.PageSize)
}

// Get returns one invoice
func (h *InvoiceHandler) Get(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		h.BadRequest(c, "Invalid invoice ID")
		return
	}

	inv, err := h.invoiceService.Get(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, inv)
}

// GetByNumber returns one invoice by its business number
func (h *InvoiceHandler) GetByNumber(c *gin.Context) {
	inv, err := h.invoiceService.GetByNumber(c.Request.Context(), c.Param("number"))
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, inv)
}

// ListGlosas returns the disputes filed against an invoice
func (h *InvoiceHandler) ListGlosas(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		h.BadRequest(c, "Invalid invoice ID")
		return
	}

	glosas, err := h.glosaService.ListByInvoice(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, glosas)
}

// Update applies a partial update to an invoice
func (h *InvoiceHandler) Update(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		h.BadRequest(c, "Invalid invoice ID")
		return
	}

	var req billing.UpdateInvoiceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Invalid request body")
		return
	}

	inv, err := h.invoiceService.Update(c.Request.Context(), id, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, inv)
}

// Delete removes an invoice
func (h *InvoiceHandler) Delete(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		h.BadRequest(c, "Invalid invoice ID")
		return
	}

	if err := h.invoiceService.Delete(c.Request.Context(), id); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}
