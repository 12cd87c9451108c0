package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/hirenow/hirenow-backend/internal/service"
)

type AuthHandler struct {
	sessions *service.SessionService
}

func NewAuthHandler(sessions *service.SessionService) *AuthHandler {
	return &AuthHandler{sessions: sessions}
}

// CreateSession POST /auth/session — вход выбором роли.
func (h *AuthHandler) CreateSession(c *gin.Context) {
	var req struct {
		Role   string `json:"role" binding:"required"`
		UserID string `json:"userId" binding:"required"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "нужны роль и идентификатор пользователя"})
		return
	}

	token, err := h.sessions.Login(c.Request.Context(), req.Role, req.UserID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"token":  token,
		"role":   req.Role,
		"userId": req.UserID,
	})
}

// GetSession GET /auth/session — текущая сессия.
func (h *AuthHandler) GetSession(c *gin.Context) {
	role, userID, ok := h.sessions.Current()
	if !ok {
		c.JSON(http.StatusOK, gin.H{"role": nil, "userId": nil})
		return
	}
	c.JSON(http.StatusOK, gin.H{"role": role, "userId": userID})
}

// DeleteSession DELETE /auth/session — выход.
func (h *AuthHandler) DeleteSession(c *gin.Context) {
	h.sessions.Logout(c.Request.Context())
	c.Status(http.StatusNoContent)
}
