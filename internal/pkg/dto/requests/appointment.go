package requests

import "time"

type CreateAppointment struct {
	DoctorID        string    `json:"doctor_id" validate:"required,mongodb"`
	ChildID         string    `json:"child_id" validate:"required,mongodb"`
	AppointmentDate time.Time `json:"appointment_date" validate:"required"`
	Mode            string    `json:"mode" validate:"required,appointment_mode"`
	MeetingLink     *string   `json:"meeting_link" validate:"omitempty,url"`
	Title           string    `json:"title" validate:"required,max=200"`
	Description     string    `json:"description" validate:"omitempty,max=2000"`
}

type UpdateAppointment struct {
	DoctorID        *string    `json:"doctor_id" validate:"omitempty,mongodb"`
	ChildID         *string    `json:"child_id" validate:"omitempty,mongodb"`
	AppointmentDate *time.Time `json:"appointment_date"`
	Mode            *string    `json:"mode" validate:"omitempty,appointment_mode"`
	MeetingLink     *string    `json:"meeting_link" validate:"omitempty,url"`
	Title           *string    `json:"title" validate:"omitempty,min=1,max=200"`
	Description     *string    `json:"description" validate:"omitempty,max=2000"`
}

func (r *UpdateAppointment) IsEmpty() bool {
	return r.DoctorID == nil && r.ChildID == nil && r.AppointmentDate == nil && r.Mode == nil &&
		r.MeetingLink == nil && r.Title == nil && r.Description == nil
}

// CounterAppointment carries a proposed schedule. The date part of
// CounterProposalDate and the HH:MM CounterProposalTime may be sent alone.
type CounterAppointment struct {
	CounterProposalDate *time.Time `json:"counter_proposal_date"`
	CounterProposalTime *string    `json:"counter_proposal_time" validate:"omitempty,time_of_day"`
	CounterMode         *string    `json:"counter_mode" validate:"omitempty,appointment_mode"`
	CounterMeetingLink  *string    `json:"counter_meeting_link" validate:"omitempty,url"`
}

func (r *CounterAppointment) IsEmpty() bool {
	return r.CounterProposalDate == nil && r.CounterProposalTime == nil && r.CounterMode == nil
}

type AppointmentQuery struct {
	Status string `json:"status" validate:"omitempty,oneof=Pending Accepted Rejected Countered"`
}
