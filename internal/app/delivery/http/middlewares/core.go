package middlewares

import (
	"context"
	"mamacare-service/internal/pkg/constvars"
	"mamacare-service/internal/pkg/utils"
	"net/http"
	"time"

	"go.uber.org/zap"
)

type responseRecorder struct {
	http.ResponseWriter
	statusCode int
}

func (rec *responseRecorder) WriteHeader(code int) {
	rec.statusCode = code
	rec.ResponseWriter.WriteHeader(code)
}

func (m *Middlewares) Logging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		requestID := utils.GetRequestID(r.Context())
		isClientRequestID, _ := r.Context().Value(constvars.CONTEXT_IS_CLIENT_REQUEST_ID_KEY).(bool)

		m.Log.Info("API request started",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Bool("is_client_request_id", isClientRequestID),
			zap.String(constvars.LoggingMethodKey, r.Method),
			zap.String(constvars.LoggingEndpointKey, r.URL.Path),
			zap.String(constvars.LoggingRemoteAddrKey, r.RemoteAddr),
			zap.String(constvars.LoggingUserAgentKey, r.UserAgent()),
			zap.String(constvars.LoggingQueryKey, r.URL.RawQuery),
		)

		recorder := &responseRecorder{ResponseWriter: w, statusCode: http.StatusOK}
		next.ServeHTTP(recorder, r)

		m.Log.Info("API request completed",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingMethodKey, r.Method),
			zap.String(constvars.LoggingEndpointKey, r.URL.Path),
			zap.Int(constvars.LoggingStatusCodeKey, recorder.statusCode),
			zap.Duration(constvars.LoggingDurationKey, time.Since(start)),
			zap.Bool(constvars.LoggingSuccessKey, recorder.statusCode < http.StatusBadRequest),
		)
	})
}

// RequestIDMiddleware reuses the caller's X-Request-ID when present and
// generates one otherwise. The id is echoed back on the response.
func (m *Middlewares) RequestIDMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := r.Header.Get(constvars.HeaderXRequestID)
		isClientRequestID := requestID != ""
		if !isClientRequestID {
			requestID = utils.GenerateRequestID()
		}

		ctx := context.WithValue(r.Context(), constvars.CONTEXT_REQUEST_ID_KEY, requestID)
		ctx = context.WithValue(ctx, constvars.CONTEXT_IS_CLIENT_REQUEST_ID_KEY, isClientRequestID)

		w.Header().Set(constvars.HeaderXRequestID, requestID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
