package middlewares

import (
	"context"
	"errors"
	"mamacare-service/internal/app/config"
	"mamacare-service/internal/app/models"
	"mamacare-service/internal/pkg/constvars"
	"mamacare-service/internal/pkg/utils"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

const testSecret = "middleware-test-secret"

type MockSessionService struct {
	mock.Mock
}

func (m *MockSessionService) CreateSession(ctx context.Context, user *models.User) (string, error) {
	args := m.Called(ctx, user)
	return args.String(0), args.Error(1)
}

func (m *MockSessionService) GetSessionData(ctx context.Context, sessionID string) (*models.Session, error) {
	args := m.Called(ctx, sessionID)
	session, _ := args.Get(0).(*models.Session)
	return session, args.Error(1)
}

func (m *MockSessionService) DeleteSession(ctx context.Context, sessionID string) error {
	args := m.Called(ctx, sessionID)
	return args.Error(0)
}

func newTestMiddlewares(sessionService *MockSessionService) *Middlewares {
	return NewMiddlewares(zap.NewNop(), sessionService, &config.InternalConfig{
		JWT: config.JWT{Secret: testSecret, ExpiryInHours: 1},
	})
}

func sessionEcho(t *testing.T) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		session, ok := r.Context().Value(constvars.CONTEXT_SESSION_DATA_KEY).(*models.Session)
		require.True(t, ok)
		w.Header().Set("X-User-ID", session.UserID)
		w.WriteHeader(http.StatusOK)
	})
}

func TestAuthenticate(t *testing.T) {
	t.Run("missing bearer token", func(t *testing.T) {
		sessionService := new(MockSessionService)
		handler := newTestMiddlewares(sessionService).Authenticate(sessionEcho(t))

		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/appointments", nil))

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		sessionService.AssertNotCalled(t, "GetSessionData", mock.Anything, mock.Anything)
	})

	t.Run("malformed token", func(t *testing.T) {
		sessionService := new(MockSessionService)
		handler := newTestMiddlewares(sessionService).Authenticate(sessionEcho(t))

		req := httptest.NewRequest(http.MethodGet, "/appointments", nil)
		req.Header.Set(constvars.HeaderAuthorization, "Bearer not-a-jwt")
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("token signed with another secret", func(t *testing.T) {
		sessionService := new(MockSessionService)
		handler := newTestMiddlewares(sessionService).Authenticate(sessionEcho(t))

		token, err := utils.GenerateSessionJWT("session-1", "other-secret", 1)
		require.NoError(t, err)

		req := httptest.NewRequest(http.MethodGet, "/appointments", nil)
		req.Header.Set(constvars.HeaderAuthorization, "Bearer "+token)
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
	})

	t.Run("expired session", func(t *testing.T) {
		sessionService := new(MockSessionService)
		sessionService.On("GetSessionData", mock.Anything, "session-1").Return(nil, errors.New("gone"))
		handler := newTestMiddlewares(sessionService).Authenticate(sessionEcho(t))

		token, err := utils.GenerateSessionJWT("session-1", testSecret, 1)
		require.NoError(t, err)

		req := httptest.NewRequest(http.MethodGet, "/appointments", nil)
		req.Header.Set(constvars.HeaderAuthorization, "Bearer "+token)
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusUnauthorized, rec.Code)
		sessionService.AssertExpectations(t)
	})

	t.Run("valid session", func(t *testing.T) {
		sessionService := new(MockSessionService)
		sessionService.On("GetSessionData", mock.Anything, "session-1").Return(&models.Session{
			SessionID: "session-1",
			UserID:    "user-1",
			Role:      constvars.RoleUser,
		}, nil)
		handler := newTestMiddlewares(sessionService).Authenticate(sessionEcho(t))

		token, err := utils.GenerateSessionJWT("session-1", testSecret, 1)
		require.NoError(t, err)

		req := httptest.NewRequest(http.MethodGet, "/appointments", nil)
		req.Header.Set(constvars.HeaderAuthorization, "Bearer "+token)
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "user-1", rec.Header().Get("X-User-ID"))
	})
}

func TestRequestIDMiddleware(t *testing.T) {
	m := newTestMiddlewares(new(MockSessionService))

	var seen string
	handler := m.RequestIDMiddleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		seen = utils.GetRequestID(r.Context())
	}))

	t.Run("client supplied id is kept", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/check", nil)
		req.Header.Set(constvars.HeaderXRequestID, "client-id-1")
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)

		assert.Equal(t, "client-id-1", seen)
		assert.Equal(t, "client-id-1", rec.Header().Get(constvars.HeaderXRequestID))
	})

	t.Run("id generated when absent", func(t *testing.T) {
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/check", nil))

		assert.NotEmpty(t, seen)
		assert.Equal(t, seen, rec.Header().Get(constvars.HeaderXRequestID))
	})
}

func TestErrorHandlerRecoversPanic(t *testing.T) {
	m := newTestMiddlewares(new(MockSessionService))
	handler := m.ErrorHandler(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		panic("boom")
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/check", nil))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestLoggingRecordsStatus(t *testing.T) {
	m := newTestMiddlewares(new(MockSessionService))
	handler := m.Logging(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/check", nil))

	assert.Equal(t, http.StatusTeapot, rec.Code)
}
