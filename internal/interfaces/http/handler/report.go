package handler

import (
	"fmt"
	"time"

	"github.com/glosas/backend/internal/application/report"
	"github.com/gin-gonic/gin"
)

// ReportHandler handles dispute export requests
type ReportHandler struct {
	BaseHandler
	reportService *report.ReportService
	authMW        gin.HandlerFunc
}

// NewReportHandler creates a new ReportHandler
func NewReportHandler(reportService *report.ReportService, authMW gin.HandlerFunc) *ReportHandler {
	return &ReportHandler{reportService: reportService, authMW: authMW}
}

// RegisterRoutes registers report routes
func (h *ReportHandler) RegisterRoutes(rg *gin.RouterGroup) {
	reports := rg.Group("/reports", h.authMW)
	{
		reports.GET("/disputes", h.Disputes)
		reports.GET("/disputes.csv", h.DisputesCSV)
	}
}

// Disputes returns the dispute export as JSON
func (h *ReportHandler) Disputes(c *gin.Context) {
	var req report.ExportRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		h.BadRequest(c, "Invalid report filters")
		return
	}

	result, err := h.reportService.Export(c.Request.Context(), &req)
	if err != nil {
		h.HandleError(c, err)
		return
	}
	h.Success(c, result)
}

// DisputesCSV streams the dispute export as a CSV download
func (h *ReportHandler) DisputesCSV(c *gin.Context) {
	var req report.ExportRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		h.BadRequest(c, "Invalid report filters")
		return
	}

	fileName := fmt.Sprintf("glosas-%s.csv", time.Now().Format("20060102"))
	c.Header("Content-Type", "text/csv; charset=utf-8")
	c.Header("Content-Disposition", `attachment; filename="`+fileName+`"`)

	if err := h.reportService.WriteCSV(c.Request.Context(), &req, c.Writer); err != nil {
		h.HandleError(c, err)
		return
	}
}
