package exceptions

import (
	"mamacare-service/internal/pkg/constvars"
	"strings"

	"github.com/go-playground/validator/v10"
)

func FormatFirstValidationError(err error) string {
	if err == nil {
		return constvars.ErrClientCannotProcessRequest
	}

	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok || len(validationErrors) == 0 {
		return constvars.ErrDevInvalidInput
	}

	firstErr := validationErrors[0]
	fieldName := strings.ToLower(firstErr.Field())
	tag := firstErr.Tag()
	customMessage, ok := constvars.CustomValidationErrorMessages[tag]
	if !ok {
		customMessage = "is invalid"
	}

	if constvars.TagsWithParams[tag] {
		param := firstErr.Param()
		if tag == "oneof" {
			param = strings.Join(strings.Fields(param), ", ")
		}
		customMessage = strings.Replace(customMessage, "%s", param, 1)
	}
	return fieldName + " " + customMessage
}
