package realtime

import (
	"context"
	"errors"
	"mamacare-service/internal/app/models"
	"mamacare-service/internal/pkg/exceptions"
	"mamacare-service/internal/pkg/utils"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const testSecret = "realtime-secret"

type stubSessions struct {
	sessions map[string]*models.Session
}

func (s *stubSessions) CreateSession(ctx context.Context, user *models.User) (string, error) {
	return "", nil
}

func (s *stubSessions) DeleteSession(ctx context.Context, sessionID string) error {
	return nil
}

func (s *stubSessions) GetSessionData(ctx context.Context, sessionID string) (*models.Session, error) {
	session, ok := s.sessions[sessionID]
	if !ok {
		return nil, exceptions.ErrSessionNotFound(errors.New("missing"))
	}
	return session, nil
}

func newRequestWithOrigin(origin string) *http.Request {
	r := httptest.NewRequest(http.MethodGet, "/ws", nil)
	if origin != "" {
		r.Header.Set("Origin", origin)
	}
	return r
}

func TestHandlerRejectsMissingToken(t *testing.T) {
	handler := NewHandler(NewHub(zap.NewNop()), &stubSessions{}, testSecret, []string{"*"}, zap.NewNop())

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/ws", nil))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestHandlerDeliversPushedEvents(t *testing.T) {
	hub := NewHub(zap.NewNop())
	sessions := &stubSessions{sessions: map[string]*models.Session{
		"session-1": {SessionID: "session-1", UserID: "parent-1"},
	}}
	handler := NewHandler(hub, sessions, testSecret, []string{"*"}, zap.NewNop())

	server := httptest.NewServer(handler)
	defer server.Close()

	token, err := utils.GenerateSessionJWT("session-1", testSecret, 1)
	require.NoError(t, err)

	url := "ws" + strings.TrimPrefix(server.URL, "http") + "?token=" + token
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	defer conn.Close()

	require.Eventually(t, func() bool { return hub.UserConnectionCount("parent-1") == 1 }, time.Second, 10*time.Millisecond)
	assert.Equal(t, 1, hub.PushToUser("parent-1", acceptedEvent("parent-1")))

	require.NoError(t, conn.SetReadDeadline(time.Now().Add(time.Second)))
	_, data, err := conn.ReadMessage()
	require.NoError(t, err)
	assert.Contains(t, string(data), `"to":"parent-1"`)

	conn.Close()
	assert.Eventually(t, func() bool { return hub.ClientCount() == 0 }, time.Second, 10*time.Millisecond)
}
