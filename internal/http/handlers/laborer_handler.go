package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/hirenow/hirenow-backend/internal/models"
	"github.com/hirenow/hirenow-backend/internal/service"
)

type LaborerHandler struct {
	profiles *service.ProfileService
	catalog  *service.CatalogService
	ratings  *service.RatingService
}

func NewLaborerHandler(profiles *service.ProfileService, catalog *service.CatalogService, ratings *service.RatingService) *LaborerHandler {
	return &LaborerHandler{profiles: profiles, catalog: catalog, ratings: ratings}
}

// Register POST /laborers — регистрация рабочего.
func (h *LaborerHandler) Register(c *gin.Context) {
	var req struct {
		Name         string         `json:"name" binding:"required"`
		Phone        string         `json:"phone" binding:"required"`
		Location     string         `json:"location" binding:"required"`
		Skills       []models.Skill `json:"skills" binding:"required"`
		Availability []string       `json:"availability"`
		PhotoURLs    []string       `json:"photoUrls"`
		CanDrive     bool           `json:"canDrive"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "не заполнены обязательные поля"})
		return
	}

	laborer, err := h.profiles.RegisterLaborer(c.Request.Context(), service.RegisterLaborerInput{
		Name:         req.Name,
		Phone:        req.Phone,
		Location:     req.Location,
		Skills:       req.Skills,
		Availability: req.Availability,
		PhotoURLs:    req.PhotoURLs,
		CanDrive:     req.CanDrive,
	})
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, laborer)
}

// List GET /laborers — каталог с фильтрами и сортировкой.
// Выборка пересчитывается на каждый запрос, кэша нет.
func (h *LaborerHandler) List(c *gin.Context) {
	filter := service.CatalogFilter{
		Skill:    c.Query("skill"),
		Location: c.Query("location"),
		Day:      c.Query("day"),
		Sort:     c.DefaultQuery("sort", service.SortAsc),
	}

	laborers := h.catalog.Search(filter)
	c.JSON(http.StatusOK, gin.H{"laborers": laborers})
}

// Options GET /laborers/options — значения для фильтров каталога.
func (h *LaborerHandler) Options(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"skills":    h.catalog.SkillOptions(),
		"locations": h.catalog.LocationOptions(),
		"days":      models.Weekdays,
	})
}

// Get GET /laborers/:id — профиль рабочего со средним рейтингом.
func (h *LaborerHandler) Get(c *gin.Context) {
	laborer, ok := h.profiles.GetLaborer(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "рабочий не найден"})
		return
	}

	resp := gin.H{"laborer": laborer}
	if avg, count, ok := h.ratings.LaborerAverage(laborer.ID); ok {
		resp["averageRating"] = avg
		resp["ratingStars"] = service.RoundedStars(avg)
		resp["totalRatings"] = count
	}

	c.JSON(http.StatusOK, resp)
}

// Rate POST /laborers/:id/ratings — подрядчик оставляет отзыв рабочему.
func (h *LaborerHandler) Rate(c *gin.Context) {
	contractorID, err := currentUserID(c)
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

	rating, err := h.ratings.RateLaborer(c.Request.Context(), contractorID, c.Param("id"), req.Stars, req.Comment)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, rating)
}
