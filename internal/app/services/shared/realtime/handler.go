package realtime

import (
	"context"
	"mamacare-service/internal/app/contracts"
	"mamacare-service/internal/pkg/constvars"
	"mamacare-service/internal/pkg/exceptions"
	"mamacare-service/internal/pkg/utils"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	maxMessageSize = 512
	sendBufferSize = 256
)

// Conn abstracts a websocket connection for tests.
type Conn interface {
	ReadMessage() (messageType int, p []byte, err error)
	WriteMessage(messageType int, data []byte) error
	SetReadLimit(limit int64)
	SetReadDeadline(t time.Time) error
	SetWriteDeadline(t time.Time) error
	SetPongHandler(h func(appData string) error)
	Close() error
}

type Handler struct {
	Hub            *Hub
	SessionService contracts.SessionService
	JWTSecret      string
	Log            *zap.Logger
	upgrader       websocket.Upgrader
}

func NewHandler(hub *Hub, sessionService contracts.SessionService, jwtSecret string, allowedOrigins []string, logger *zap.Logger) *Handler {
	return &Handler{
		Hub:            hub,
		SessionService: sessionService,
		JWTSecret:      jwtSecret,
		Log:            logger,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     originChecker(allowedOrigins),
		},
	}
}

func originChecker(allowedOrigins []string) func(r *http.Request) bool {
	return func(r *http.Request) bool {
		origin := r.Header.Get("Origin")
		if origin == "" {
			return true
		}
		for _, allowed := range allowedOrigins {
			if allowed == "*" || strings.EqualFold(allowed, origin) {
				return true
			}
		}
		return false
	}
}

// ServeHTTP authenticates the caller with the same session token used by the
// REST API, then upgrades and binds the connection to the caller's user id.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	token := r.URL.Query().Get(constvars.WebsocketTokenQueryParam)
	if token == "" {
		token = strings.TrimPrefix(r.Header.Get(constvars.HeaderAuthorization), constvars.AuthorizationBearerPrefix)
	}
	token = strings.TrimSpace(token)
	if token == "" {
		utils.BuildErrorResponse(h.Log, w, exceptions.ErrTokenMissing(nil))
		return
	}

	sessionID, err := utils.ParseJWT(token, h.JWTSecret)
	if err != nil {
		utils.BuildErrorResponse(h.Log, w, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
	defer cancel()

	session, err := h.SessionService.GetSessionData(ctx, sessionID)
	if err != nil {
		utils.BuildErrorResponse(h.Log, w, err)
		return
	}

	ws, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.Log.Warn("realtime.Handler upgrade failed", zap.Error(err))
		return
	}

	client := &Client{
		ID:     uuid.NewString(),
		UserID: session.UserID,
		Send:   make(chan []byte, sendBufferSize),
	}
	h.Hub.Register(client)

	h.Log.Info("realtime.Handler client connected",
		zap.String(constvars.LoggingClientIDKey, client.ID),
		zap.String(constvars.LoggingUserIDKey, client.UserID))

	go h.writePump(client, ws)
	go h.readPump(client, ws)
}

// readPump only drains control frames; clients never send application data.
func (h *Handler) readPump(client *Client, conn Conn) {
	defer func() {
		h.Hub.Unregister(client)
		conn.Close()
		h.Log.Info("realtime.Handler client disconnected",
			zap.String(constvars.LoggingClientIDKey, client.ID),
			zap.String(constvars.LoggingUserIDKey, client.UserID))
	}()

	conn.SetReadLimit(maxMessageSize)
	_ = conn.SetReadDeadline(time.Now().Add(pongWait))
	conn.SetPongHandler(func(string) error {
		return conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			return
		}
	}
}

func (h *Handler) writePump(client *Client, conn Conn) {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		conn.Close()
	}()

	for {
		select {
		case message, ok := <-client.Send:
			_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				_ = conn.WriteMessage(websocket.CloseMessage, []byte{})
				return
			}
			if err := conn.WriteMessage(websocket.TextMessage, message); err != nil {
				return
			}
		case <-ticker.C:
			_ = conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
