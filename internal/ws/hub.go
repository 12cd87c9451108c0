package ws

import (
	"context"
	"encoding/json"
	"sync"

	"github.com/hirenow/hirenow-backend/internal/logger"
)

// Hub управляет всеми WebSocket подключениями и рассылает события
// жизненного цикла заявок затронутой стороне. Доставка fire-and-forget:
// если получатель не подключён, событие просто теряется.
type Hub struct {
	mu         sync.RWMutex
	clients    map[string]map[*Client]struct{}
	register   chan *Client
	unregister chan *Client
	broadcast  chan message
	ctx        context.Context
}

type message struct {
	userID  string
	payload []byte
}

// NewHub создаёт новый хаб.
func NewHub(ctx context.Context) *Hub {
	return &Hub{
		clients:    make(map[string]map[*Client]struct{}),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		broadcast:  make(chan message, 32),
		ctx:        ctx,
	}
}

// Run запускает главный цикл хаба. Завершается по отмене контекста.
func (h *Hub) Run() {
	for {
		select {
		case <-h.ctx.Done():
			return
		case client := <-h.register:
			h.addClient(client)
		case client := <-h.unregister:
			h.removeClient(client)
		case msg := <-h.broadcast:
			h.send(msg.userID, msg.payload)
		}
	}
}

// Register добавляет клиента.
func (h *Hub) Register(client *Client) {
	h.register <- client
}

// Unregister удаляет клиента.
func (h *Hub) Unregister(client *Client) {
	h.unregister <- client
}

// Notify отправляет событие всем подключениям пользователя.
// Сообщение следует контракту: "type" — имя события, "data" — полезная нагрузка.
func (h *Hub) Notify(userID, event string, data any) {
	payload, err := json.Marshal(map[string]any{
		"type": event,
		"data": data,
	})
	if err != nil {
		if logger.Log != nil {
			logger.Log.WithError(err).Error("ws: не удалось сериализовать сообщение")
		}
		return
	}

	select {
	case h.broadcast <- message{userID: userID, payload: payload}:
	case <-h.ctx.Done():
	}
}

func (h *Hub) addClient(client *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if _, ok := h.clients[client.userID]; !ok {
		h.clients[client.userID] = make(map[*Client]struct{})
	}
	h.clients[client.userID][client] = struct{}{}
}

func (h *Hub) removeClient(client *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if clients, ok := h.clients[client.userID]; ok {
		delete(clients, client)
		if len(clients) == 0 {
			delete(h.clients, client.userID)
		}
	}
}

func (h *Hub) send(userID string, payload []byte) {
	h.mu.RLock()
	defer h.mu.RUnlock()

	for client := range h.clients[userID] {
		select {
		case client.send <- payload:
		default:
			// Переполненный буфер — медленный клиент, отключаем.
			go client.Close()
		}
	}
}
