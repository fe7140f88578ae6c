package utils

import (
	"mamacare-service/internal/app/models"
	"mamacare-service/internal/pkg/constvars"
	"reflect"
	"regexp"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

var (
	validate        *validator.Validate
	timeOfDayRegexp = regexp.MustCompile(`^([01]\d|2[0-3]):[0-5]\d$`)
)

func init() {
	validate = validator.New()
	validate.RegisterTagNameFunc(func(field reflect.StructField) string {
		for _, tag := range []string{"json", "form"} {
			name := strings.SplitN(field.Tag.Get(tag), ",", 2)[0]
			if name != "" && name != "-" {
				return name
			}
		}
		return field.Name
	})
	validate.RegisterValidation("appointment_mode", validateAppointmentMode)
	validate.RegisterValidation("user_role", validateUserRole)
	validate.RegisterValidation("date_of_birth", validateDateOfBirth)
	validate.RegisterValidation("time_of_day", validateTimeOfDay)
}

func ValidateStruct(s interface{}) error {
	return validate.Struct(s)
}

func validateAppointmentMode(fl validator.FieldLevel) bool {
	return models.AppointmentMode(fl.Field().String()).IsValid()
}

func validateUserRole(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case constvars.RoleUser, constvars.RoleDoctor, constvars.RoleAdmin:
		return true
	}
	return false
}

func validateDateOfBirth(fl validator.FieldLevel) bool {
	_, err := time.Parse(constvars.DateOfBirthLayout, fl.Field().String())
	return err == nil
}

func validateTimeOfDay(fl validator.FieldLevel) bool {
	return timeOfDayRegexp.MatchString(fl.Field().String())
}
