package models

import (
	"strings"
	"time"
)

type AppointmentStatus string

const (
	AppointmentStatusPending   AppointmentStatus = "Pending"
	AppointmentStatusAccepted  AppointmentStatus = "Accepted"
	AppointmentStatusRejected  AppointmentStatus = "Rejected"
	AppointmentStatusCountered AppointmentStatus = "Countered"
)

func (s AppointmentStatus) IsValid() bool {
	switch s {
	case AppointmentStatusPending, AppointmentStatusAccepted, AppointmentStatusRejected, AppointmentStatusCountered:
		return true
	}
	return false
}

// IsTerminal reports whether no transition may leave s.
func (s AppointmentStatus) IsTerminal() bool {
	return s == AppointmentStatusRejected
}

type AppointmentMode string

const (
	AppointmentModePhysical AppointmentMode = "Physical"
	AppointmentModeOnline   AppointmentMode = "Online"
)

func (m AppointmentMode) IsValid() bool {
	return m == AppointmentModePhysical || m == AppointmentModeOnline
}

type Appointment struct {
	ID                  string            `json:"id" bson:"_id,omitempty"`
	ParentID            string            `json:"parent_id" bson:"parent_id"`
	DoctorID            string            `json:"doctor_id" bson:"doctor_id"`
	ChildID             string            `json:"child_id" bson:"child_id"`
	AppointmentDate     time.Time         `json:"appointment_date" bson:"appointment_date"`
	Mode                AppointmentMode   `json:"mode" bson:"mode"`
	MeetingLink         *string           `json:"meeting_link" bson:"meeting_link"`
	Status              AppointmentStatus `json:"status" bson:"status"`
	CounterProposalDate *time.Time        `json:"counter_proposal_date" bson:"counter_proposal_date"`
	CounterMode         *AppointmentMode  `json:"counter_mode" bson:"counter_mode"`
	CounterMeetingLink  *string           `json:"counter_meeting_link,omitempty" bson:"counter_meeting_link"`
	Title               string            `json:"title" bson:"title"`
	Description         string            `json:"description" bson:"description"`
	TimeModel           `bson:",inline"`
}

// HasConsistentMeetingLink holds when a link is present exactly for online
// appointments.
func (a *Appointment) HasConsistentMeetingLink() bool {
	hasLink := a.MeetingLink != nil && strings.TrimSpace(*a.MeetingLink) != ""
	if a.Mode == AppointmentModeOnline {
		return hasLink
	}
	return a.MeetingLink == nil
}

// NormalizeMeetingLink drops the link of a non online appointment.
func (a *Appointment) NormalizeMeetingLink() {
	if a.Mode != AppointmentModeOnline {
		a.MeetingLink = nil
	}
}

func (a *Appointment) ClearCounterProposal() {
	a.CounterProposalDate = nil
	a.CounterMode = nil
	a.CounterMeetingLink = nil
}

// AdoptCounterProposal moves the proposed schedule onto the appointment and
// clears the proposal.
func (a *Appointment) AdoptCounterProposal() {
	if a.CounterProposalDate != nil {
		a.AppointmentDate = *a.CounterProposalDate
	}
	if a.CounterMode != nil {
		a.Mode = *a.CounterMode
	}
	if a.CounterMeetingLink != nil {
		a.MeetingLink = a.CounterMeetingLink
	}
	a.NormalizeMeetingLink()
	a.ClearCounterProposal()
}

// AppointmentFilter narrows appointment lookups. Empty fields are ignored.
type AppointmentFilter struct {
	ID              string
	ParentID        string
	DoctorID        string
	Statuses        []AppointmentStatus
	ExcludeStatuses []AppointmentStatus
}
