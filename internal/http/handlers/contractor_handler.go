package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/hirenow/hirenow-backend/internal/service"
)

type ContractorHandler struct {
	profiles *service.ProfileService
	ratings  *service.RatingService
}

func NewContractorHandler(profiles *service.ProfileService, ratings *service.RatingService) *ContractorHandler {
	return &ContractorHandler{profiles: profiles, ratings: ratings}
}

// Register POST /contractors — регистрация подрядчика.
func (h *ContractorHandler) Register(c *gin.Context) {
	var req struct {
		Name     string `json:"name" binding:"required"`
		Phone    string `json:"phone" binding:"required"`
		Company  string `json:"company" binding:"required"`
		Location string `json:"location" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "не заполнены обязательные поля"})
		return
	}

	contractor, err := h.profiles.RegisterContractor(c.Request.Context(), service.RegisterContractorInput{
		Name:     req.Name,
		Phone:    req.Phone,
		Company:  req.Company,
		Location: req.Location,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, contractor)
}

// Get GET /contractors/:id — профиль подрядчика со средним рейтингом.
func (h *ContractorHandler) Get(c *gin.Context) {
	contractor, ok := h.profiles.GetContractor(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "подрядчик не найден"})
		return
	}

	resp := gin.H{"contractor": contractor}
	if avg, count, ok := h.ratings.ContractorAverage(contractor.ID); ok {
		resp["averageRating"] = avg
		resp["ratingStars"] = service.RoundedStars(avg)
		resp["totalRatings"] = count
	}

	c.JSON(http.StatusOK, resp)
}

// Rate POST /contractors/:id/ratings — рабочий оставляет отзыв подрядчику.
func (h *ContractorHandler) Rate(c *gin.Context) {
	laborerID, err := currentUserID(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}

	var req struct {
		Stars   int    `json:"stars" binding:"required,min=1,max=5"`
		Comment string `json:"comment"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "рейтинг должен быть от 1 до 5"})
		return
	}

	rating, err := h.ratings.RateContractor(c.Request.Context(), laborerID, c.Param("id"), req.Stars, req.Comment)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, rating)
}
