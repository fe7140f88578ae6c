package appointments

import (
	"mamacare-service/internal/app/models"
	"mamacare-service/internal/pkg/constvars"
	"mamacare-service/internal/pkg/exceptions"
	"strings"
	"time"
)

// Party is the side of an appointment a caller acts for.
type Party string

const (
	PartyParent Party = "parent"
	PartyDoctor Party = "doctor"
)

// PartyOf maps a session role to its party. Every non doctor acts as parent.
func PartyOf(session *models.Session) Party {
	if session.IsDoctor() {
		return PartyDoctor
	}
	return PartyParent
}

type Operation string

const (
	OperationAccept  Operation = "accept"
	OperationReject  Operation = "reject"
	OperationCounter Operation = "counter"
	OperationUpdate  Operation = "update"
	OperationDelete  Operation = "delete"
)

func (o Operation) pastTense() string {
	switch o {
	case OperationAccept:
		return "accepted"
	case OperationReject:
		return "rejected"
	case OperationCounter:
		return "countered"
	case OperationUpdate:
		return "updated"
	case OperationDelete:
		return "deleted"
	}
	return string(o)
}

type transitionKey struct {
	from      models.AppointmentStatus
	operation Operation
}

// transitions lists, per source status and operation, the parties allowed to
// perform it and the resulting status. Delete keeps the status since the
// record is removed.
var transitions = map[transitionKey]map[Party]models.AppointmentStatus{
	{models.AppointmentStatusPending, OperationAccept}: {
		PartyDoctor: models.AppointmentStatusAccepted,
	},
	{models.AppointmentStatusPending, OperationReject}: {
		PartyDoctor: models.AppointmentStatusRejected,
	},
	{models.AppointmentStatusPending, OperationCounter}: {
		PartyDoctor: models.AppointmentStatusCountered,
		PartyParent: models.AppointmentStatusCountered,
	},
	{models.AppointmentStatusAccepted, OperationCounter}: {
		PartyDoctor: models.AppointmentStatusCountered,
		PartyParent: models.AppointmentStatusCountered,
	},
	{models.AppointmentStatusCountered, OperationAccept}: {
		PartyDoctor: models.AppointmentStatusAccepted,
		PartyParent: models.AppointmentStatusAccepted,
	},
	{models.AppointmentStatusCountered, OperationReject}: {
		PartyDoctor: models.AppointmentStatusRejected,
		PartyParent: models.AppointmentStatusRejected,
	},
	{models.AppointmentStatusPending, OperationUpdate}: {
		PartyParent: models.AppointmentStatusPending,
	},
	{models.AppointmentStatusPending, OperationDelete}: {
		PartyParent: models.AppointmentStatusPending,
	},
	{models.AppointmentStatusAccepted, OperationDelete}: {
		PartyParent: models.AppointmentStatusAccepted,
	},
	{models.AppointmentStatusCountered, OperationDelete}: {
		PartyParent: models.AppointmentStatusCountered,
	},
}

func CanTransition(party Party, status models.AppointmentStatus, operation Operation) bool {
	_, ok := transitions[transitionKey{status, operation}][party]
	return ok
}

// NextStatus returns the status reached when party performs operation on an
// appointment in status. When another party could perform it the error is a
// 403, when nobody could it is a 409.
func NextStatus(party Party, status models.AppointmentStatus, operation Operation) (models.AppointmentStatus, error) {
	allowed := transitions[transitionKey{status, operation}]
	if next, ok := allowed[party]; ok {
		return next, nil
	}

	if _, ok := allowed[PartyDoctor]; ok {
		return "", exceptions.ErrOnlyDoctorCanDecide(nil, string(party), string(operation))
	}
	if _, ok := allowed[PartyParent]; ok {
		return "", exceptions.ErrOnlyParentCanModify(nil, string(party), string(operation))
	}
	return "", exceptions.ErrInvalidStatusTransition(nil, operation.pastTense(), string(status))
}

// Counterparty returns the user that must hear about an action taken by party.
func Counterparty(party Party, appointment *models.Appointment) string {
	if party == PartyDoctor {
		return appointment.ParentID
	}
	return appointment.DoctorID
}

// BuildCounterTitle names the parts of the schedule a counter-proposal
// changes. Unchanged parts leave an empty segment, e.g.
// "Date, , Time Countered on your Appointment".
func BuildCounterTitle(dateChanged, modeChanged, timeChanged bool) string {
	segment := func(changed bool, name string) string {
		if changed {
			return name
		}
		return ""
	}
	return strings.Join([]string{
		segment(dateChanged, "Date"),
		segment(modeChanged, "Mode"),
		segment(timeChanged, "Time"),
	}, ", ") + " " + constvars.EventTitleCounterSuffix
}

func sameCalendarDate(a, b time.Time) bool {
	return a.UTC().Format(constvars.ScheduleDateFmt) == b.UTC().Format(constvars.ScheduleDateFmt)
}

func clockOf(t time.Time) string {
	return t.UTC().Format(constvars.ScheduleTimeFmt)
}
