package utils

import (
	"mamacare-service/internal/pkg/constvars"
	"mamacare-service/internal/pkg/dto/requests"
	"strings"
)

func trimPointer(value *string) *string {
	if value == nil {
		return nil
	}
	trimmed := strings.TrimSpace(*value)
	return &trimmed
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func SanitizeRegisterUserRequest(input *requests.RegisterUser) {
	input.Name = strings.TrimSpace(input.Name)
	input.Email = normalizeEmail(input.Email)
	input.Role = strings.ToLower(strings.TrimSpace(input.Role))
	if input.Role == "" {
		input.Role = constvars.RoleUser
	}
	input.Specialization = strings.TrimSpace(input.Specialization)
	input.AvailableFrom = strings.TrimSpace(input.AvailableFrom)
	input.AvailableTo = strings.TrimSpace(input.AvailableTo)
}

func SanitizeLoginUserRequest(input *requests.LoginUser) {
	input.Email = normalizeEmail(input.Email)
}

func SanitizeUpdateProfileRequest(input *requests.UpdateProfile) {
	input.Name = trimPointer(input.Name)
	if input.Email != nil {
		email := normalizeEmail(*input.Email)
		input.Email = &email
	}
}

func SanitizeUpdateDoctorRequest(input *requests.UpdateDoctor) {
	input.Name = trimPointer(input.Name)
	input.Specialization = trimPointer(input.Specialization)
	input.AvailableFrom = trimPointer(input.AvailableFrom)
	input.AvailableTo = trimPointer(input.AvailableTo)
	if input.Email != nil {
		email := normalizeEmail(*input.Email)
		input.Email = &email
	}
}

func SanitizeCreateAppointmentRequest(input *requests.CreateAppointment) {
	input.Title = strings.TrimSpace(input.Title)
	input.Description = strings.TrimSpace(input.Description)
	input.MeetingLink = trimPointer(input.MeetingLink)
	if input.MeetingLink != nil && *input.MeetingLink == "" {
		input.MeetingLink = nil
	}
}
