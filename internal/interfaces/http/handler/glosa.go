package handler

import (
	appdispute "github.com/glosas/backend/internal/application/dispute"
	"github.com/glosas/backend/internal/domain/identity"
	"github.com/glosas/backend/internal/domain/shared"
	"github.com/glosas/backend/internal/interfaces/http/dto"
	"github.com/glosas/backend/internal/interfaces/http/middleware"
	"github.com/gin-gonic/gin"
)

// GlosaHandler handles dispute lifecycle requests
type GlosaHandler struct {
	BaseHandler
	glosaService *appdispute.GlosaService
	authMW       gin.HandlerFunc
}

// NewGlosaHandler creates a new GlosaHandler
func NewGlosaHandler(glosaService *appdispute.GlosaService, authMW gin.HandlerFunc) *GlosaHandler {
	return &GlosaHandler{glosaService: glosaService, authMW: authMW}
}

// RegisterRoutes registers glosa routes
func (h *GlosaHandler) RegisterRoutes(rg *gin.RouterGroup) {
	glosas := rg.Group("/glosas", h.authMW)
	{
		glosas.GET("", h.List)
		glosas.GET("/:id", h.Get)
		glosas.GET("/:id/alert", h.GetAlert)
		glosas.GET("/:id/responses", h.ListResponses)

		writers := middleware.RequireRoles(identity.RoleAdmin, identity.RoleBillerIPS, identity.RoleAuditorIPS, identity.RoleAuditorEPS)
		glosas.POST("", writers, h.Create)
		glosas.PUT("/:id", writers, h.Update)

		responders := middleware.RequireRoles(identity.RoleAdmin, identity.RoleAuditorIPS, identity.RoleManagerIPS)
		glosas.POST("/:id/responses", responders, h.SubmitResponse)

		adminOnly := middleware.RequireRoles(identity.RoleAdmin)
		glosas.PUT("/:id/status", adminOnly, h.OverrideStatus)
		glosas.DELETE("/:id", adminOnly, h.Delete)
	}

	rg.GET("/dashboard", h.authMW, h.Dashboard)
}

// Create files a dispute against an invoice
func (h *GlosaHandler) Create(c *gin.Context) {
	var req appdispute.CreateGlosaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Invalid request body")
		return
	}

	g, err := h.glosaService.Create(c.Request.Context(), req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, g)
}

// List returns glosas paginated, each carrying its alert classification
func (h *GlosaHandler) List(c *gin.Context) {
	var req dto.ListRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		h.BadRequest(c, "Invalid pagination parameters")
		return
	}
	offset, limit := req.Normalize()

	list, err := h.glosaService.List(c.Request.Context(), shared.Filter{Offset: offset, Limit: limit})
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.SuccessWithMeta(c, list.Items, list.Total, req.Page, req.PageSize)
}

// Get returns one glosa
func (h *GlosaHandler) Get(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		h.BadRequest(c, "Invalid glosa ID")
		return
	}

	g, err := h.glosaService.Get(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, g)
}

// GetAlert returns the deadline classification for one glosa
func (h *GlosaHandler) GetAlert(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		h.BadRequest(c, "Invalid glosa ID")
		return
	}

	g, err := h.glosaService.GetAlert(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, gin.H{
		"glosa_id":    g.ID,
		"alert_level": g.AlertLevel,
		"alert_color": g.AlertColor,
		"deadline":    g.Deadline,
		"status":      g.Status,
	})
}

// Update applies a partial update to a glosa
func (h *GlosaHandler) Update(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		h.BadRequest(c, "Invalid glosa ID")
		return
	}

	var req appdispute.UpdateGlosaRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Invalid request body")
		return
	}

	g, err := h.glosaService.Update(c.Request.Context(), id, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, g)
}

// SubmitResponse answers a dispute on behalf of the authenticated user
func (h *GlosaHandler) SubmitResponse(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		h.BadRequest(c, "Invalid glosa ID")
		return
	}

	userID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	var req appdispute.SubmitResponseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Invalid request body")
		return
	}

	resp, err := h.glosaService.SubmitResponse(c.Request.Context(), id, userID, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, resp)
}

// ListResponses returns the responses recorded for a glosa
func (h *GlosaHandler) ListResponses(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		h.BadRequest(c, "Invalid glosa ID")
		return
	}

	responses, err := h.glosaService.ListResponses(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, responses)
}

// OverrideStatus overwrites a glosa's status with free text
func (h *GlosaHandler) OverrideStatus(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		h.BadRequest(c, "Invalid glosa ID")
		return
	}

	var req appdispute.OverrideStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Invalid request body")
		return
	}

	g, err := h.glosaService.OverrideStatus(c.Request.Context(), id, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, g)
}

// Delete removes a glosa with its responses and attachments
func (h *GlosaHandler) Delete(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		h.BadRequest(c, "Invalid glosa ID")
		return
	}

	if err := h.glosaService.Delete(c.Request.Context(), id); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}

// Dashboard returns workload counters
func (h *GlosaHandler) Dashboard(c *gin.Context) {
	summary, err := h.glosaService.Dashboard(c.Request.Context())
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, summary)
}
