package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"github.com/hirenow/hirenow-backend/internal/goroutine"
	"github.com/hirenow/hirenow-backend/internal/http/middleware"
	"github.com/hirenow/hirenow-backend/internal/logger"
	"github.com/hirenow/hirenow-backend/internal/ws"
)

type WSHandler struct {
	hub      *ws.Hub
	tokens   middleware.TokenParser
	upgrader websocket.Upgrader
}

func NewWSHandler(hub *ws.Hub, tokens middleware.TokenParser, checkOrigin func(r *http.Request) bool) *WSHandler {
	return &WSHandler{
		hub:    hub,
		tokens: tokens,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     checkOrigin,
		},
	}
}

// Serve GET /ws — подписка на события заявок. Браузерный WebSocket не умеет
// выставлять заголовки, поэтому токен принимается и через query параметр.
func (h *WSHandler) Serve(c *gin.Context) {
	token := c.Query("token")
	if token == "" {
		token = c.GetHeader("Sec-WebSocket-Protocol")
	}
	if token == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "требуется авторизация"})
		return
	}

	userID, _, err := h.tokens.Parse(token)
	if err != nil || userID == "" {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "токен невалиден"})
		return
	}

	conn, err := h.upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		logger.WithComponent("ws").WithError(err).Warn("не удалось обновить соединение")
		return
	}

	client := ws.NewClient(conn, h.hub, userID)
	h.hub.Register(client)
	goroutine.SafeGoWithContext(c.Request.Context(), client.Run)
}
