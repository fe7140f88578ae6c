package exceptions

import (
	"errors"
	"fmt"
	"mamacare-service/internal/pkg/constvars"
	"runtime"
)

type CustomError struct {
	StatusCode    int        `json:"status_code"`
	Success       bool       `json:"success"`
	ClientMessage string     `json:"message"`
	DevMessage    string     `json:"dev_message,omitempty"`
	Locations     []Location `json:"locations,omitempty"`
	Err           error      `json:"-"`
}

type Location struct {
	File         string `json:"file"`
	Line         int    `json:"line"`
	FunctionName string `json:"function_name"`
}

func (e *CustomError) Error() string {
	if len(e.Locations) == 0 {
		return e.DevMessage
	}
	location := e.Locations[0]
	return fmt.Sprintf("%s (%s:%d %s)", e.DevMessage, location.File, location.Line, location.FunctionName)
}

func (e *CustomError) Unwrap() error {
	return e.Err
}

// BuildNewCustomError records the caller location. When err is already a
// CustomError its status and messages win and the new location is appended.
func BuildNewCustomError(err error, statusCode int, clientMessage, devMessage string) *CustomError {
	location := getLocation(3)

	var existing *CustomError
	if errors.As(err, &existing) {
		return &CustomError{
			StatusCode:    existing.StatusCode,
			ClientMessage: existing.ClientMessage,
			DevMessage:    existing.DevMessage,
			Locations:     append(append([]Location{}, existing.Locations...), location),
			Err:           existing.Err,
		}
	}

	if err != nil {
		devMessage = fmt.Sprintf("%s: %s", devMessage, err.Error())
	}
	return &CustomError{
		StatusCode:    statusCode,
		ClientMessage: clientMessage,
		DevMessage:    devMessage,
		Locations:     []Location{location},
		Err:           err,
	}
}

// StatusCodeOf returns the HTTP status carried by err, or 500.
func StatusCodeOf(err error) int {
	var customErr *CustomError
	if errors.As(err, &customErr) {
		return customErr.StatusCode
	}
	return constvars.StatusInternalServerError
}

func getLocation(skip int) Location {
	pc, file, line, ok := runtime.Caller(skip)
	if !ok {
		return Location{
			File:         "unknown",
			Line:         0,
			FunctionName: "unknown",
		}
	}
	return Location{
		File:         file,
		Line:         line,
		FunctionName: runtime.FuncForPC(pc).Name(),
	}
}
