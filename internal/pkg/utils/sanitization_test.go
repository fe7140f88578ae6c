package utils

import (
	"mamacare-service/internal/pkg/constvars"
	"mamacare-service/internal/pkg/dto/requests"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSanitizeRegisterUserRequest(t *testing.T) {
	request := &requests.RegisterUser{
		Name:  "  Amina ",
		Email: " Amina@Example.COM ",
	}
	SanitizeRegisterUserRequest(request)

	assert.Equal(t, "Amina", request.Name)
	assert.Equal(t, "amina@example.com", request.Email)
	assert.Equal(t, constvars.RoleUser, request.Role)
}

func TestSanitizeCreateAppointmentRequest(t *testing.T) {
	blank := "   "
	request := &requests.CreateAppointment{Title: " Checkup ", MeetingLink: &blank}
	SanitizeCreateAppointmentRequest(request)

	assert.Equal(t, "Checkup", request.Title)
	assert.Nil(t, request.MeetingLink)
}
