package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/hirenow/hirenow-backend/internal/models"
	"github.com/hirenow/hirenow-backend/internal/service"
)

type HireHandler struct {
	hires *service.HireRequestService
}

func NewHireHandler(hires *service.HireRequestService) *HireHandler {
	return &HireHandler{hires: hires}
}

// Create POST /hire-requests — подрядчик отправляет заявку рабочему.
func (h *HireHandler) Create(c *gin.Context) {
	contractorID, err := currentUserID(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}

	var req struct {
		ProjectID       string  `json:"projectId" binding:"required"`
		LaborerID       string  `json:"laborerId" binding:"required"`
		Date            string  `json:"date" binding:"required"`
		PickupLocation  string  `json:"pickupLocation" binding:"required"`
		DropoffLocation string  `json:"dropoffLocation"`
		OfferedAmount   float64 `json:"offeredAmount" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "не заполнены обязательные поля"})
		return
	}

	request, err := h.hires.Create(c.Request.Context(), contractorID, service.CreateHireRequestInput{
		ProjectID:       req.ProjectID,
		LaborerID:       req.LaborerID,
		Date:            req.Date,
		PickupLocation:  req.PickupLocation,
		DropoffLocation: req.DropoffLocation,
		OfferedAmount:   req.OfferedAmount,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, request)
}

// ListMy GET /hire-requests/my — заявки текущего участника по его роли.
func (h *HireHandler) ListMy(c *gin.Context) {
	userID, err := currentUserID(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}
	role, err := currentUserRole(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}

	var requests []models.HireRequest
	if role == models.RoleContractor {
		requests = h.hires.ListForContractor(userID)
	} else {
		requests = h.hires.ListForLaborer(userID)
	}

	c.JSON(http.StatusOK, gin.H{"hireRequests": requests})
}

// Accept POST /hire-requests/:id/accept — рабочий принимает заявку,
// при желании поправив точки встречи.
func (h *HireHandler) Accept(c *gin.Context) {
	laborerID, err := currentUserID(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}

	var req struct {
		PickupLocation  *string `json:"pickupLocation"`
		DropoffLocation *string `json:"dropoffLocation"`
	}
	// Тело необязательное: пустой запрос — принять как есть.
	_ = c.ShouldBindJSON(&req)

	request, err := h.hires.Accept(c.Request.Context(), laborerID, c.Param("id"), req.PickupLocation, req.DropoffLocation)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, request)
}

// Decline POST /hire-requests/:id/decline — рабочий отклоняет заявку.
func (h *HireHandler) Decline(c *gin.Context) {
	laborerID, err := currentUserID(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}

	request, err := h.hires.Decline(c.Request.Context(), laborerID, c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, request)
}

// Counter POST /hire-requests/:id/counter — рабочий предлагает свою сумму.
func (h *HireHandler) Counter(c *gin.Context) {
	laborerID, err := currentUserID(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}

	var req struct {
		Amount float64 `json:"amount" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "нужна сумма встречного предложения"})
		return
	}

	request, err := h.hires.Counter(c.Request.Context(), laborerID, c.Param("id"), req.Amount)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, request)
}

// Approve POST /hire-requests/:id/approve — подрядчик принимает встречную сумму.
func (h *HireHandler) Approve(c *gin.Context) {
	contractorID, err := currentUserID(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}

	request, err := h.hires.ApproveCounter(c.Request.Context(), contractorID, c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, request)
}

// Deny POST /hire-requests/:id/deny — подрядчик отклоняет встречную сумму.
func (h *HireHandler) Deny(c *gin.Context) {
	contractorID, err := currentUserID(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}

	request, err := h.hires.DenyCounter(c.Request.Context(), contractorID, c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, request)
}

// Amend POST /hire-requests/:id/amend — подрядчик правит сумму, заявка
// возвращается рабочему на повторное решение.
func (h *HireHandler) Amend(c *gin.Context) {
	contractorID, err := currentUserID(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}

	var req struct {
		Amount float64 `json:"amount" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "нужна новая сумма"})
		return
	}

	request, err := h.hires.Amend(c.Request.Context(), contractorID, c.Param("id"), req.Amount)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, request)
}

// Complete POST /hire-requests/:id/complete — подрядчик отмечает работу
// выполненной.
func (h *HireHandler) Complete(c *gin.Context) {
	contractorID, err := currentUserID(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}

	request, err := h.hires.Complete(c.Request.Context(), contractorID, c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, request)
}
