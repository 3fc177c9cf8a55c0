package handler

import (
	appdispute "github.com/glosas/backend/internal/application/dispute"
	"github.com/gin-gonic/gin"
)

// AttachmentHandler handles dispute document metadata requests
type AttachmentHandler struct {
	BaseHandler
	attachmentService *appdispute.AttachmentService
	authMW            gin.HandlerFunc
}

// NewAttachmentHandler creates a new AttachmentHandler
func NewAttachmentHandler(attachmentService *appdispute.AttachmentService, authMW gin.HandlerFunc) *AttachmentHandler {
	return &AttachmentHandler{attachmentService: attachmentService, authMW: authMW}
}

// RegisterRoutes registers attachment routes
func (h *AttachmentHandler) RegisterRoutes(rg *gin.RouterGroup) {
	attachments := rg.Group("/attachments", h.authMW)
	{
		attachments.POST("", h.Create)
		attachments.GET("/:id", h.Get)
		attachments.DELETE("/:id", h.Delete)
	}

	rg.GET("/glosas/:id/attachments", h.authMW, h.ListByGlosa)
}

// Create registers an attachment against a glosa or response
func (h *AttachmentHandler) Create(c *gin.Context) {
	userID, err := getUserID(c)
	if err != nil {
		h.Unauthorized(c, "Authentication required")
		return
	}

	var req appdispute.CreateAttachmentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.BadRequest(c, "Invalid request body")
		return
	}

	att, err := h.attachmentService.Create(c.Request.Context(), userID, req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Created(c, att)
}

// Get returns one attachment
func (h *AttachmentHandler) Get(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		h.BadRequest(c, "Invalid attachment ID")
		return
	}

	att, err := h.attachmentService.Get(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, att)
}

// ListByGlosa returns the attachments filed under a glosa
func (h *AttachmentHandler) ListByGlosa(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		h.BadRequest(c, "Invalid glosa ID")
		return
	}

	attachments, err := h.attachmentService.ListByGlosa(c.Request.Context(), id)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, attachments)
}

// Delete removes an attachment
func (h *AttachmentHandler) Delete(c *gin.Context) {
	id, ok := parseIDParam(c)
	if !ok {
		h.BadRequest(c, "Invalid attachment ID")
		return
	}

	if err := h.attachmentService.Delete(c.Request.Context(), id); err != nil {
		h.HandleError(c, err)
		return
	}
	h.NoContent(c)
}
