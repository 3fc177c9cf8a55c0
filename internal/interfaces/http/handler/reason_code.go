package handler

import (
	appdispute "github.com/glosas/backend/internal/application/dispute"
	"github.com/glosas/backend/internal/domain/identity"
	"github.com/glosas/backend/internal/domain/shared"
	"github.com/glosas/backend/internal/interfaces/http/dto"
	"github.com/glosas/backend/internal/interfaces/http/middleware"
	"github.com/gin-gonic/gin"
)

// ReasonCodeHandler handles dispute reason catalog requests
type ReasonCodeHandler struct {
	BaseHandler
	reasonCodeService *appdispute.ReasonCodeService
	authMW            gin.HandlerFunc
}

// NewReasonCodeHandler creates a new ReasonCodeHandler
func NewReasonCodeHandler(reasonCodeService *appdispute.ReasonCodeService, authMW gin.HandlerFunc) *ReasonCodeHandler {
	return &ReasonCodeHandler{reasonCodeService: reasonCodeService, authMW: authMW}
}

// RegisterRoutes registers reason code routes
func (h *ReasonCodeHandler) RegisterRoutes(rg *gin.RouterGroup) {
	codes := rg.Group("/reason-codes", h.authMW)
	{
		codes.GET("", h.List)
		codes.GET("/:id", h.Get)

		adminOnly := middleware.RequireRoles(identity.RoleAdmin)
		codes.POST("", adminOnly, h.Create)
		codes.PUT("/:id", adminOnly, h.Update)
		codes.DELETE("/:id", adminOnly, h.Delete)
	}
}

// Create registers a reason code
func (h *ReasonCodeHandler) Create(c *gin.Context) {
	var req appdispute.CreateReasonCodeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Invalid request body")
		return
	}

	rc, err := h.reasonCodeService.Create(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, rc)
}

// List returns reason codes paginated
func (h *ReasonCodeHandler) List(c *gin.Context) {
	var req dto.ListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		h.BadRequest(c, "Invalid pagination parameters")
		return
	}
	offset, limit := req.Normalize()

	list, err := h.reasonCodeService.List(c.Request.Context(), shared.Filter{Offset: offset, Limit: limit})
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.SuccessWithMeta(c, list.Items, list.Total, req.Page, req.PageSize)
}

// Get returns one reason code
func (h *ReasonCodeHandler) Get(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		h.BadRequest(c, "Invalid reason code ID")
		return
	}

	rc, err := h.reasonCodeService.Get(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, rc)
}

// Update applies a partial update to a reason code
func (h *ReasonCodeHandler) Update(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		h.BadRequest(c, "Invalid reason code ID")
		return
	}

	var req appdispute.UpdateReasonCodeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Invalid request body")
		return
	}

	rc, err := h.reasonCodeService.Update(c.Request.Context(), id, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, rc)
}

// Delete removes a reason code
func (h *ReasonCodeHandler) Delete(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		h.BadRequest(c, "Invalid reason code ID")
		return
	}

	if err := h.reasonCodeService.Delete(c.Request.Context(), id); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}
