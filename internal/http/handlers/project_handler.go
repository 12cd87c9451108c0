package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/hirenow/hirenow-backend/internal/service"
)

type ProjectHandler struct {
	projects *service.ProjectService
	hires    *service.HireRequestService
}

func NewProjectHandler(projects *service.ProjectService, hires *service.HireRequestService) *ProjectHandler {
	return &ProjectHandler{projects: projects, hires: hires}
}

// Create POST /projects — подрядчик создаёт проект.
func (h *ProjectHandler) Create(c *gin.Context) {
	contractorID, err := currentUserID(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}

	var req struct {
		Title       string   `json:"title" binding:"required"`
		Description string   `json:"description" binding:"required"`
		Location    string   `json:"location" binding:"required"`
		PhotoURLs   []string `json:"photoUrls"`
		StartDate   string   `json:"startDate"`
		EndDate     string   `json:"endDate"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "не заполнены обязательные поля"})
		return
	}

	project, err := h.projects.Create(c.Request.Context(), contractorID, service.CreateProjectInput{
		Title:       req.Title,
		Description: req.Description,
		Location:    req.Location,
		PhotoURLs:   req.PhotoURLs,
		StartDate:   req.StartDate,
		EndDate:     req.EndDate,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, project)
}

// ListMy GET /projects/my — проекты текущего подрядчика.
func (h *ProjectHandler) ListMy(c *gin.Context) {
	contractorID, err := currentUserID(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}

	projects := h.projects.ListForContractor(contractorID)
	c.JSON(http.StatusOK, gin.H{"projects": projects})
}

// Get GET /projects/:id — проект вместе с его заявками на найм.
func (h *ProjectHandler) Get(c *gin.Context) {
	project, ok := h.projects.Get(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "проект не найден"})
		return
	}

	requests := h.hires.ListForProject(project.ID)
	c.JSON(http.StatusOK, gin.H{
		"project":      project,
		"hireRequests": requests,
	})
}

// Complete PUT /projects/:id/status — подрядчик закрывает проект.
func (h *ProjectHandler) Complete(c *gin.Context) {
	contractorID, err := currentUserID(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}

	project, err := h.projects.Complete(c.Request.Context(), contractorID, c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, project)
}
