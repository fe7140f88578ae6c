package appointments

import (
	"mamacare-service/internal/app/models"
	"mamacare-service/internal/pkg/constvars"
	"mamacare-service/internal/pkg/exceptions"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNextStatus(t *testing.T) {
	tests := []struct {
		name       string
		party      Party
		from       models.AppointmentStatus
		operation  Operation
		want       models.AppointmentStatus
		wantStatus int
	}{
		{"doctor accepts pending", PartyDoctor, models.AppointmentStatusPending, OperationAccept, models.AppointmentStatusAccepted, 0},
		{"doctor rejects pending", PartyDoctor, models.AppointmentStatusPending, OperationReject, models.AppointmentStatusRejected, 0},
		{"parent cannot accept pending", PartyParent, models.AppointmentStatusPending, OperationAccept, "", http.StatusForbidden},
		{"parent cannot reject pending", PartyParent, models.AppointmentStatusPending, OperationReject, "", http.StatusForbidden},
		{"doctor counters pending", PartyDoctor, models.AppointmentStatusPending, OperationCounter, models.AppointmentStatusCountered, 0},
		{"parent counters accepted", PartyParent, models.AppointmentStatusAccepted, OperationCounter, models.AppointmentStatusCountered, 0},
		{"parent accepts countered", PartyParent, models.AppointmentStatusCountered, OperationAccept, models.AppointmentStatusAccepted, 0},
		{"doctor rejects countered", PartyDoctor, models.AppointmentStatusCountered, OperationReject, models.AppointmentStatusRejected, 0},
		{"accepting accepted conflicts", PartyDoctor, models.AppointmentStatusAccepted, OperationAccept, "", http.StatusConflict},
		{"countering countered conflicts", PartyParent, models.AppointmentStatusCountered, OperationCounter, "", http.StatusConflict},
		{"rejected is terminal", PartyDoctor, models.AppointmentStatusRejected, OperationCounter, "", http.StatusConflict},
		{"parent updates pending", PartyParent, models.AppointmentStatusPending, OperationUpdate, models.AppointmentStatusPending, 0},
		{"doctor cannot update pending", PartyDoctor, models.AppointmentStatusPending, OperationUpdate, "", http.StatusForbidden},
		{"update needs pending", PartyParent, models.AppointmentStatusAccepted, OperationUpdate, "", http.StatusConflict},
		{"parent deletes countered", PartyParent, models.AppointmentStatusCountered, OperationDelete, models.AppointmentStatusCountered, 0},
		{"doctor cannot delete", PartyDoctor, models.AppointmentStatusAccepted, OperationDelete, "", http.StatusForbidden},
		{"rejected cannot be deleted", PartyParent, models.AppointmentStatusRejected, OperationDelete, "", http.StatusConflict},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NextStatus(tt.party, tt.from, tt.operation)
			if tt.wantStatus != 0 {
				require.Error(t, err)
				assert.Equal(t, tt.wantStatus, exceptions.StatusCodeOf(err))
				assert.False(t, CanTransition(tt.party, tt.from, tt.operation))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.True(t, CanTransition(tt.party, tt.from, tt.operation))
		})
	}
}

func TestNoTransitionLeavesRejected(t *testing.T) {
	operations := []Operation{OperationAccept, OperationReject, OperationCounter, OperationUpdate, OperationDelete}
	for _, party := range []Party{PartyParent, PartyDoctor} {
		for _, operation := range operations {
			assert.False(t, CanTransition(party, models.AppointmentStatusRejected, operation), "%s %s", party, operation)
		}
	}
}

func TestPartyOf(t *testing.T) {
	assert.Equal(t, PartyDoctor, PartyOf(&models.Session{Role: constvars.RoleDoctor}))
	assert.Equal(t, PartyParent, PartyOf(&models.Session{Role: constvars.RoleUser}))
	assert.Equal(t, PartyParent, PartyOf(&models.Session{Role: constvars.RoleAdmin}))
}

func TestCounterparty(t *testing.T) {
	appointment := &models.Appointment{ParentID: "parent", DoctorID: "doctor"}
	assert.Equal(t, "parent", Counterparty(PartyDoctor, appointment))
	assert.Equal(t, "doctor", Counterparty(PartyParent, appointment))
}

func TestBuildCounterTitle(t *testing.T) {
	assert.Equal(t, "Date, Mode, Time Countered on your Appointment", BuildCounterTitle(true, true, true))
	assert.Equal(t, "Date, , Time Countered on your Appointment", BuildCounterTitle(true, false, true))
	assert.Equal(t, ", Mode,  Countered on your Appointment", BuildCounterTitle(false, true, false))
	assert.Equal(t, ", ,  Countered on your Appointment", BuildCounterTitle(false, false, false))
}
