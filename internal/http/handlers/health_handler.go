package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/hirenow/hirenow-backend/internal/store"
)

type HealthHandler struct {
	store *store.Store
}

func NewHealthHandler(st *store.Store) *HealthHandler {
	return &HealthHandler{store: st}
}

// Health GET /health — живость процесса.
func (h *HealthHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

// Ready GET /ready — готовность: данные загружены или засеяны.
func (h *HealthHandler) Ready(c *gin.Context) {
	if !h.store.Hydrated() {
		c.JSON(http.StatusServiceUnavailable, gin.H{"status": "hydrating"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "ready"})
}
