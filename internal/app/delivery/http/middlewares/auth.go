package middlewares

import (
	"context"
	"mamacare-service/internal/pkg/constvars"
	"mamacare-service/internal/pkg/exceptions"
	"mamacare-service/internal/pkg/utils"
	"net/http"
	"strings"

	"go.uber.org/zap"
)

// Authenticate resolves the bearer token into a session and stores it under
// CONTEXT_SESSION_DATA_KEY. Requests without a live session get a 401.
func (m *Middlewares) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := utils.GetRequestID(r.Context())

		authHeader := r.Header.Get(constvars.HeaderAuthorization)
		if !strings.HasPrefix(authHeader, constvars.AuthorizationBearerPrefix) {
			m.Log.Warn("Middlewares.Authenticate bearer token missing",
				zap.String(constvars.LoggingRequestIDKey, requestID),
			)
			utils.BuildErrorResponse(m.Log, w, exceptions.ErrTokenMissing(nil))
			return
		}

		token := strings.TrimSpace(strings.TrimPrefix(authHeader, constvars.AuthorizationBearerPrefix))
		if token == "" {
			utils.BuildErrorResponse(m.Log, w, exceptions.ErrTokenMissing(nil))
			return
		}

		sessionID, err := utils.ParseJWT(token, m.InternalConfig.JWT.Secret)
		if err != nil {
			m.Log.Warn("Middlewares.Authenticate invalid token",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.Error(err),
			)
			utils.BuildErrorResponse(m.Log, w, err)
			return
		}

		session, err := m.SessionService.GetSessionData(r.Context(), sessionID)
		if err != nil {
			m.Log.Warn("Middlewares.Authenticate session lookup failed",
				zap.String(constvars.LoggingRequestIDKey, requestID),
				zap.Error(err),
			)
			utils.BuildErrorResponse(m.Log, w, exceptions.ErrSessionNotFound(err))
			return
		}

		m.Log.Debug("Middlewares.Authenticate session resolved",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingUserIDKey, session.UserID),
			zap.String(constvars.LoggingUserRoleKey, session.Role),
		)

		ctx := context.WithValue(r.Context(), constvars.CONTEXT_SESSION_DATA_KEY, session)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
