package models

import "time"

// AppointmentEvent is the payload broadcast on the fan-out channel after an
// appointment status change.
type AppointmentEvent struct {
	Event       string       `json:"event"`
	Action      string       `json:"action"`
	Appointment *Appointment `json:"appointment"`
	Title       string       `json:"title"`
	To          string       `json:"to"`
	OccurredAt  time.Time    `json:"occurred_at"`
}
