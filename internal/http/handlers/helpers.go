package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/hirenow/hirenow-backend/internal/http/middleware"
	"github.com/hirenow/hirenow-backend/internal/pkg/apperror"
)

var errUserNotFound = errors.New("пользователь не найден в контексте")

// currentUserID извлекает идентификатор пользователя из контекста.
func currentUserID(c *gin.Context) (string, error) {
	raw, exists := c.Get(middleware.ContextUserIDKey)
	if !exists {
		return "", errUserNotFound
	}

	userID, ok := raw.(string)
	if !ok || userID == "" {
		return "", errUserNotFound
	}

	return userID, nil
}

// currentUserRole извлекает роль пользователя из контекста.
func currentUserRole(c *gin.Context) (string, error) {
	raw, exists := c.Get(middleware.ContextRoleKey)
	if !exists {
		return "", errUserNotFound
	}

	role, ok := raw.(string)
	if !ok {
		return "", errUserNotFound
	}

	return role, nil
}

// respondError отвечает статусом по типу ошибки: AppError несёт свой статус,
// остальные ошибки сервисов — это ошибки валидации границы (400).
func respondError(c *gin.Context, err error) {
	var appErr *apperror.AppError
	if errors.As(err, &appErr) {
		c.JSON(appErr.HTTPStatus, gin.H{"error": appErr.Message})
		return
	}
	c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
}
