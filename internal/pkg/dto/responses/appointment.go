package responses

import (
	"mamacare-service/internal/app/models"
)

type AppointmentSummary struct {
	*models.Appointment
	Doctor *UserSummary  `json:"doctor,omitempty"`
	Child  *models.Child `json:"child,omitempty"`
}

type AppointmentDetail struct {
	*models.Appointment
	Parent *UserSummary  `json:"parent,omitempty"`
	Doctor *UserSummary  `json:"doctor,omitempty"`
	Child  *models.Child `json:"child,omitempty"`
}

type AppointmentSchedule struct {
	ID     string                   `json:"id"`
	Date   string                   `json:"date"`
	Time   string                   `json:"time"`
	Mode   models.AppointmentMode   `json:"mode"`
	Status models.AppointmentStatus `json:"status"`
	Title  string                   `json:"title"`
}

type CounterAppointment struct {
	Appointment *models.Appointment `json:"appointment"`
	Title       string              `json:"title"`
}
