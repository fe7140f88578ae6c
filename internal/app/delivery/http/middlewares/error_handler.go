package middlewares

import (
	"errors"
	"mamacare-service/internal/pkg/constvars"
	"mamacare-service/internal/pkg/utils"
	"net/http"

	"go.uber.org/zap"
)

func (m *Middlewares) ErrorHandler(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				var err error
				switch x := rec.(type) {
				case string:
					err = errors.New(x)
				case error:
					err = x
				default:
					err = errors.New("unknown error")
				}

				m.Log.Error("Recovered from panic",
					zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(r.Context())),
					zap.Error(err),
				)
				utils.BuildErrorResponse(m.Log, w, err)
			}
		}()
		next.ServeHTTP(w, r)
	})
}
