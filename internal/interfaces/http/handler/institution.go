package handler

import (
	"github.com/glosas/backend/internal/application/partner"
	"github.com/glosas/backend/internal/domain/identity"
	"github.com/glosas/backend/internal/domain/shared"
	"github.com/glosas/backend/internal/interfaces/http/dto"
	"github.com/glosas/backend/internal/interfaces/http/middleware"
	"github.com/gin-gonic/gin"
)

// InstitutionHandler handles IPS/EPS registry requests
type InstitutionHandler struct {
	BaseHandler
	institutionService *partner.InstitutionService
	authMW             gin.HandlerFunc
}

// NewInstitutionHandler creates a new InstitutionHandler
func NewInstitutionHandler(institutionService *partner.InstitutionService, authMW gin.HandlerFunc) *InstitutionHandler {
	return &InstitutionHandler{institutionService: institutionService, authMW: authMW}
}

// RegisterRoutes registers institution routes
func (h *InstitutionHandler) RegisterRoutes(rg *gin.RouterGroup) {
	institutions := rg.Group("/institutions", h.authMW)
	{
		institutions.GET("", h.List)
		institutions.GET("/:id", h.Get)

		adminOnly := middleware.RequireRoles(identity.RoleAdmin)
		institutions.POST("", adminOnly, h.Create)
		institutions.PUT("/:id", adminOnly, h.Update)
		institutions.DELETE("/:id", adminOnly, h.Delete)
	}
}

// Create registers an institution
func (h *InstitutionHandler) Create(c *gin.Context) {
	var req partner.CreateInstitutionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Invalid request body")
		return
	}

	inst, err := h.institutionService.Create(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, inst)
}

// List returns institutions paginated
func (h *InstitutionHandler) List(c *gin.Context) {
	var req dto.ListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		h.BadRequest(c, "Invalid pagination parameters")
		return
	}
	offset, limit := req.Normalize()

	list, err := h.institutionService.List(c.Request.Context(), shared.Filter{Offset: offset, Limit: limit})
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.SuccessWithMeta(c, list.Items, list.Total, req.Page, req.PageSize)
}

// Get returns one institution
func (h *InstitutionHandler) Get(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		h.BadRequest(c, "Invalid institution ID")
		return
	}

	inst, err := h.institutionService.Get(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, inst)
}

// Update applies a partial update to an institution
func (h *InstitutionHandler) Update(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		h.BadRequest(c, "Invalid institution ID")
		return
	}

	var req partner.UpdateInstitutionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Invalid request body")
		return
	}

	inst, err := h.institutionService.Update(c.Request.Context(), id, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, inst)
}

// Delete removes an institution
func (h *InstitutionHandler) Delete(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		h.BadRequest(c, "Invalid institution ID")
		return
	}

	if err := h.institutionService.Delete(c.Request.Context(), id); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}
