package utils

import (
	"errors"
	"mamacare-service/internal/pkg/constvars"
	"mamacare-service/internal/pkg/dto/responses"
	"mamacare-service/internal/pkg/exceptions"
	"net/http"
	"sync/atomic"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

var exposeDevMessage atomic.Bool

// ExposeDevMessages controls whether error responses carry developer details.
// It is switched off for production.
func ExposeDevMessages(enabled bool) {
	exposeDevMessage.Store(enabled)
}

func BuildSuccessResponse(w http.ResponseWriter, code int, message string, data interface{}) {
	response := responses.ResponseDTO{
		Success: true,
		Message: message,
		Data:    data,
	}
	w.Header().Set(constvars.HeaderContentType, constvars.MIMEApplicationJSON)
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(response)
}

func BuildErrorResponse(log *zap.Logger, w http.ResponseWriter, err error) {
	code := constvars.StatusInternalServerError
	clientMessage := constvars.ErrClientSomethingWrongWithApplication

	var customErr *exceptions.CustomError
	if errors.As(err, &customErr) {
		code = customErr.StatusCode
		clientMessage = customErr.ClientMessage
		for _, location := range customErr.Locations {
			log.Error(customErr.DevMessage,
				zap.String("file", location.File),
				zap.Int("line", location.Line),
				zap.String("function_name", location.FunctionName),
			)
		}
	} else if err != nil {
		log.Error(err.Error())
	}

	response := exceptions.CustomError{
		StatusCode:    code,
		Success:       false,
		ClientMessage: clientMessage,
	}
	if customErr != nil && exposeDevMessage.Load() {
		response.DevMessage = customErr.DevMessage
		response.Locations = customErr.Locations
	}

	w.Header().Set(constvars.HeaderContentType, constvars.MIMEApplicationJSON)
	w.WriteHeader(code)
	json.NewEncoder(w).Encode(response)
}
