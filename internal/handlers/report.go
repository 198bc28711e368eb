package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/yukikurage/skillswap-api/internal/dto"
	apierrors "github.com/yukikurage/skillswap-api/internal/errors"
	"github.com/yukikurage/skillswap-api/internal/middleware"
	"github.com/yukikurage/skillswap-api/internal/models"
	"github.com/yukikurage/skillswap-api/internal/services"
)

// ReportHandler handles filing and moderating reports.
type ReportHandler struct {
	reportService *services.ReportService
}

// NewReportHandler creates a new ReportHandler.
func NewReportHandler(reportService *services.ReportService) *ReportHandler {
	return &ReportHandler{reportService: reportService}
}

// CreateReport handles POST /api/reports
func (h *ReportHandler) CreateReport(c *gin.Context) {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		apierrors.Unauthorized(c, "")
		return
	}

	type CreateReportRequest struct {
		ReportedUserID string `json:"reported_user_id" binding:"required"`
		Reason         string `json:"reason" binding:"required,max=255"`
		Description    string `json:"description"`
	}

	var req CreateReportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequestWithDetails(c, "Invalid request body", err.Error())
		return
	}

	report, err := h.reportService.File(c.Request.Context(), services.FileReportInput{
		ReporterID:     userID,
		ReportedUserID: req.ReportedUserID,
		Reason:         req.Reason,
		Description:    req.Description,
	})
	if err != nil {
		apierrors.Respond(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": "Report submitted",
		"report":  dto.ToReportDTO(*report),
	})
}

// ListReports handles GET /api/admin/reports
func (h *ReportHandler) ListReports(c *gin.Context) {
	reports, err := h.reportService.ListPending(c.Request.Context())
	if err != nil {
		apierrors.Respond(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Pending reports retrieved",
		"reports": dto.ToReportDTOs(reports),
	})
}

// ResolveReport handles PATCH /api/admin/reports/:id
func (h *ReportHandler) ResolveReport(c *gin.Context) {
	type ResolveReportRequest struct {
		Status     models.ReportStatus `json:"status" binding:"required"`
		AdminNotes string              `json:"admin_notes"`
	}

	var req ResolveReportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apierrors.BadRequestWithDetails(c, "Invalid request body", err.Error())
		return
	}

	report, err := h.reportService.Resolve(c.Request.Context(), services.ResolveReportInput{
		ReportID:   c.Param("id"),
		Status:     req.Status,
		AdminNotes: req.AdminNotes,
	})
	if err != nil {
		apierrors.Respond(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Report updated",
		"report":  dto.ToReportDTO(*report),
	})
}
