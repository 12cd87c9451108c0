package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/hirenow/hirenow-backend/internal/service"
)

type ReportHandler struct {
	reports *service.ReportService
}

func NewReportHandler(reports *service.ReportService) *ReportHandler {
	return &ReportHandler{reports: reports}
}

// Create POST /reports — участник подаёт жалобу по проекту.
func (h *ReportHandler) Create(c *gin.Context) {
	reporterID, err := currentUserID(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}
	role, err := currentUserRole(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}

	var req struct {
		ProjectID   string `json:"projectId" binding:"required"`
		Description string `json:"description" binding:"required"`
		Rating      int    `json:"rating" binding:"required,min=1,max=5"`
		TargetType  string `json:"targetType" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "не заполнены обязательные поля"})
		return
	}

	report, err := h.reports.Create(c.Request.Context(), reporterID, role, service.CreateReportInput{
		ProjectID:   req.ProjectID,
		Description: req.Description,
		Rating:      req.Rating,
		TargetType:  req.TargetType,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, report)
}

// ListMy GET /reports/my — жалобы, поданные текущим участником.
func (h *ReportHandler) ListMy(c *gin.Context) {
	reporterID, err := currentUserID(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}

	reports := h.reports.ListForReporter(reporterID)
	c.JSON(http.StatusOK, gin.H{"reports": reports})
}
