package constvars

const (
	EventAppointmentCreated  = "appointment-created"
	EventAppointmentUpdated  = "appointment-updated"
	EventAppointmentAccepted = "appointment-accepted"
	EventAppointmentRejected = "appointment-rejected"
)

const (
	EventActionCreated   = "created"
	EventActionCountered = "countered"
	EventActionAccepted  = "accepted"
	EventActionRejected  = "rejected"
)

const (
	EventTitleNewAppointment      = "New Appointment Request"
	EventTitleAppointmentAccepted = "Appointment Accepted"
	EventTitleAppointmentRejected = "Appointment Rejected"
	EventTitleCounterSuffix       = "Countered on your Appointment"
)
