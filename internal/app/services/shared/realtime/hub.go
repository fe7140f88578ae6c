package realtime

import (
	"mamacare-service/internal/app/contracts"
	"mamacare-service/internal/app/models"
	"mamacare-service/internal/pkg/constvars"
	"sync"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

// Client is one websocket connection of an authenticated user.
type Client struct {
	ID     string
	UserID string
	Send   chan []byte
}

// Hub tracks live connections per user. A user may hold several connections
// and every one of them receives the user's events.
type Hub struct {
	mu      sync.RWMutex
	clients map[string]map[*Client]struct{}
	all     map[*Client]struct{}
	Log     *zap.Logger
}

var _ contracts.EventPusher = (*Hub)(nil)

func NewHub(logger *zap.Logger) *Hub {
	return &Hub{
		clients: make(map[string]map[*Client]struct{}),
		all:     make(map[*Client]struct{}),
		Log:     logger,
	}
}

func (h *Hub) Register(client *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	h.all[client] = struct{}{}
	if h.clients[client.UserID] == nil {
		h.clients[client.UserID] = make(map[*Client]struct{})
	}
	h.clients[client.UserID][client] = struct{}{}
}

// Unregister removes client and closes its Send channel. Calling it twice is
// a no-op.
func (h *Hub) Unregister(client *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()

	if _, ok := h.all[client]; !ok {
		return
	}

	if connections, ok := h.clients[client.UserID]; ok {
		delete(connections, client)
		if len(connections) == 0 {
			delete(h.clients, client.UserID)
		}
	}

	delete(h.all, client)
	close(client.Send)
}

// PushToUser queues event on every connection of userID and returns how many
// connections accepted it. Full buffers are skipped.
func (h *Hub) PushToUser(userID string, event *models.AppointmentEvent) int {
	data, err := json.Marshal(event)
	if err != nil {
		h.Log.Error("Hub.PushToUser failed to marshal event",
			zap.String(constvars.LoggingRecipientKey, userID),
			zap.Error(err))
		return 0
	}

	h.mu.RLock()
	defer h.mu.RUnlock()

	delivered := 0
	for client := range h.clients[userID] {
		select {
		case client.Send <- data:
			delivered++
		default:
			h.Log.Warn("Hub.PushToUser client buffer full",
				zap.String(constvars.LoggingClientIDKey, client.ID),
				zap.String(constvars.LoggingRecipientKey, userID))
		}
	}
	return delivered
}

func (h *Hub) ClientCount() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.all)
}

func (h *Hub) UserConnectionCount(userID string) int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.clients[userID])
}
