package appointments

import (
	"context"
	"fmt"
	"mamacare-service/internal/app/config"
	"mamacare-service/internal/app/models"
	"mamacare-service/internal/app/services/shared/eventbus"
	"mamacare-service/internal/pkg/constvars"
	"mamacare-service/internal/pkg/dto/requests"
	"mamacare-service/internal/pkg/exceptions"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

type appointmentFixture struct {
	usecase      *appointmentUsecase
	appointments *memoryAppointmentRepository
	locker       *memoryLocker
	events       <-chan *models.AppointmentEvent
	parent       *models.Session
	otherParent  *models.Session
	doctor       *models.Session
	otherDoctor  *models.Session
	childID      string
	baseDate     time.Time
}

func newAppointmentFixture(t *testing.T) *appointmentFixture {
	t.Helper()

	parentID := primitive.NewObjectID().Hex()
	otherParentID := primitive.NewObjectID().Hex()
	doctorID := primitive.NewObjectID().Hex()
	otherDoctorID := primitive.NewObjectID().Hex()
	childID := primitive.NewObjectID().Hex()

	users := &memoryUserRepository{users: map[string]*models.User{
		parentID:      {ID: parentID, Name: "Parent", Role: constvars.RoleUser},
		otherParentID: {ID: otherParentID, Name: "Other Parent", Role: constvars.RoleUser},
		doctorID:      {ID: doctorID, Name: "Dr. Lee", Role: constvars.RoleDoctor},
		otherDoctorID: {ID: otherDoctorID, Name: "Dr. Green", Role: constvars.RoleDoctor},
	}}
	children := &memoryChildRepository{children: map[string]*models.Child{
		childID: {ID: childID, ParentID: parentID, Name: "Baby"},
	}}

	bus := eventbus.NewMemoryBus(16)
	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)
	events, err := bus.Subscribe(ctx)
	require.NoError(t, err)

	internalConfig := &config.InternalConfig{App: config.App{
		AppointmentLockInSeconds:    5,
		EventPublishTimeoutInSecond: 2,
	}}

	appointments := newMemoryAppointmentRepository()
	locker := newMemoryLocker()
	usecase := NewAppointmentUsecase(appointments, users, children, locker, bus, internalConfig, zap.NewNop()).(*appointmentUsecase)

	return &appointmentFixture{
		usecase:      usecase,
		appointments: appointments,
		locker:       locker,
		events:       events,
		parent:       &models.Session{SessionID: "s-parent", UserID: parentID, Role: constvars.RoleUser},
		otherParent:  &models.Session{SessionID: "s-other-parent", UserID: otherParentID, Role: constvars.RoleUser},
		doctor:       &models.Session{SessionID: "s-doctor", UserID: doctorID, Role: constvars.RoleDoctor},
		otherDoctor:  &models.Session{SessionID: "s-other-doctor", UserID: otherDoctorID, Role: constvars.RoleDoctor},
		childID:      childID,
		baseDate:     time.Date(2025, 1, 31, 9, 0, 0, 0, time.UTC),
	}
}

func (f *appointmentFixture) createRequest(mode models.AppointmentMode, link *string) *requests.CreateAppointment {
	return &requests.CreateAppointment{
		DoctorID:        f.doctor.UserID,
		ChildID:         f.childID,
		AppointmentDate: f.baseDate,
		Mode:            string(mode),
		MeetingLink:     link,
		Title:           "Checkup",
		Description:     "Routine visit",
	}
}

func (f *appointmentFixture) create(t *testing.T, mode models.AppointmentMode, link *string) *models.Appointment {
	t.Helper()
	appointment, err := f.usecase.CreateAppointment(context.Background(), f.parent, f.createRequest(mode, link))
	require.NoError(t, err)
	f.nextEvent(t)
	return appointment
}

func (f *appointmentFixture) withStatus(t *testing.T, status models.AppointmentStatus) *models.Appointment {
	t.Helper()
	appointment := f.create(t, models.AppointmentModePhysical, nil)
	stored := f.appointments.get(appointment.ID)
	stored.Status = status
	f.appointments.put(stored)
	return stored
}

func (f *appointmentFixture) nextEvent(t *testing.T) *models.AppointmentEvent {
	t.Helper()
	select {
	case event := <-f.events:
		return event
	case <-time.After(2 * time.Second):
		t.Fatal("expected an appointment event")
		return nil
	}
}

func (f *appointmentFixture) assertNoEvent(t *testing.T) {
	t.Helper()
	select {
	case event := <-f.events:
		t.Fatalf("unexpected event %s", event.Event)
	case <-time.After(100 * time.Millisecond):
	}
}

func stringPtr(value string) *string {
	return &value
}

func TestAppointmentUsecase_CreatePhysical(t *testing.T) {
	f := newAppointmentFixture(t)

	appointment, err := f.usecase.CreateAppointment(context.Background(), f.parent, f.createRequest(models.AppointmentModePhysical, stringPtr("https://meet.example.com/x")))
	require.NoError(t, err)

	assert.Equal(t, models.AppointmentStatusPending, appointment.Status)
	assert.Equal(t, f.parent.UserID, appointment.ParentID)
	assert.Nil(t, appointment.MeetingLink)
	assert.True(t, appointment.HasConsistentMeetingLink())

	event := f.nextEvent(t)
	assert.Equal(t, constvars.EventAppointmentCreated, event.Event)
	assert.Equal(t, constvars.EventActionCreated, event.Action)
	assert.Equal(t, constvars.EventTitleNewAppointment, event.Title)
	assert.Equal(t, f.doctor.UserID, event.To)
	assert.Equal(t, appointment.ID, event.Appointment.ID)
}

func TestAppointmentUsecase_CreateValidation(t *testing.T) {
	f := newAppointmentFixture(t)
	ctx := context.Background()

	t.Run("online without link", func(t *testing.T) {
		_, err := f.usecase.CreateAppointment(ctx, f.parent, f.createRequest(models.AppointmentModeOnline, nil))
		assert.Equal(t, http.StatusBadRequest, exceptions.StatusCodeOf(err))
	})

	t.Run("doctor cannot book", func(t *testing.T) {
		_, err := f.usecase.CreateAppointment(ctx, f.doctor, f.createRequest(models.AppointmentModePhysical, nil))
		assert.Equal(t, http.StatusForbidden, exceptions.StatusCodeOf(err))
	})

	t.Run("unknown doctor", func(t *testing.T) {
		request := f.createRequest(models.AppointmentModePhysical, nil)
		request.DoctorID = f.otherParent.UserID
		_, err := f.usecase.CreateAppointment(ctx, f.parent, request)
		assert.Equal(t, http.StatusNotFound, exceptions.StatusCodeOf(err))
	})

	t.Run("child of another parent", func(t *testing.T) {
		_, err := f.usecase.CreateAppointment(ctx, f.otherParent, f.createRequest(models.AppointmentModePhysical, nil))
		assert.Equal(t, http.StatusNotFound, exceptions.StatusCodeOf(err))
	})

	f.assertNoEvent(t)
}

func TestAppointmentUsecase_DoctorAccepts(t *testing.T) {
	f := newAppointmentFixture(t)
	created := f.create(t, models.AppointmentModeOnline, stringPtr("https://meet.example.com/a"))

	accepted, err := f.usecase.AcceptAppointment(context.Background(), f.doctor, created.ID)
	require.NoError(t, err)
	assert.Equal(t, models.AppointmentStatusAccepted, accepted.Status)
	assert.True(t, accepted.HasConsistentMeetingLink())

	event := f.nextEvent(t)
	assert.Equal(t, constvars.EventAppointmentAccepted, event.Event)
	assert.Equal(t, constvars.EventTitleAppointmentAccepted, event.Title)
	assert.Equal(t, f.parent.UserID, event.To)
	assert.Equal(t, models.AppointmentStatusAccepted, f.appointments.get(created.ID).Status)
}

func TestAppointmentUsecase_ParentCannotAcceptPending(t *testing.T) {
	f := newAppointmentFixture(t)
	created := f.create(t, models.AppointmentModePhysical, nil)

	_, err := f.usecase.AcceptAppointment(context.Background(), f.parent, created.ID)
	assert.Equal(t, http.StatusForbidden, exceptions.StatusCodeOf(err))
	assert.Equal(t, models.AppointmentStatusPending, f.appointments.get(created.ID).Status)
	f.assertNoEvent(t)
}

func TestAppointmentUsecase_OtherDoctorGetsNotFound(t *testing.T) {
	f := newAppointmentFixture(t)
	created := f.create(t, models.AppointmentModePhysical, nil)
	ctx := context.Background()

	_, err := f.usecase.AcceptAppointment(ctx, f.otherDoctor, created.ID)
	assert.Equal(t, http.StatusNotFound, exceptions.StatusCodeOf(err))

	_, err = f.usecase.RejectAppointment(ctx, f.otherDoctor, created.ID)
	assert.Equal(t, http.StatusNotFound, exceptions.StatusCodeOf(err))

	_, err = f.usecase.FindByID(ctx, f.otherDoctor, created.ID)
	assert.Equal(t, http.StatusNotFound, exceptions.StatusCodeOf(err))

	assert.Equal(t, models.AppointmentStatusPending, f.appointments.get(created.ID).Status)
	f.assertNoEvent(t)
}

func TestAppointmentUsecase_RejectedIsTerminal(t *testing.T) {
	f := newAppointmentFixture(t)
	created := f.create(t, models.AppointmentModePhysical, nil)
	ctx := context.Background()

	rejected, err := f.usecase.RejectAppointment(ctx, f.doctor, created.ID)
	require.NoError(t, err)
	assert.Equal(t, models.AppointmentStatusRejected, rejected.Status)

	event := f.nextEvent(t)
	assert.Equal(t, constvars.EventAppointmentRejected, event.Event)
	assert.Equal(t, constvars.EventTitleAppointmentRejected, event.Title)
	assert.Equal(t, f.parent.UserID, event.To)

	_, err = f.usecase.RejectAppointment(ctx, f.doctor, created.ID)
	assert.Equal(t, http.StatusNotFound, exceptions.StatusCodeOf(err))

	_, err = f.usecase.AcceptAppointment(ctx, f.doctor, created.ID)
	assert.Equal(t, http.StatusNotFound, exceptions.StatusCodeOf(err))

	_, err = f.usecase.CounterAppointment(ctx, f.parent, created.ID, &requests.CounterAppointment{CounterMode: stringPtr("Online"), CounterMeetingLink: stringPtr("https://meet.example.com/r")})
	assert.Equal(t, http.StatusNotFound, exceptions.StatusCodeOf(err))

	_, err = f.usecase.UpdateAppointment(ctx, f.parent, created.ID, &requests.UpdateAppointment{Title: stringPtr("New title")})
	assert.Equal(t, http.StatusNotFound, exceptions.StatusCodeOf(err))

	err = f.usecase.DeleteAppointment(ctx, f.parent, created.ID)
	assert.Equal(t, http.StatusNotFound, exceptions.StatusCodeOf(err))

	assert.Equal(t, models.AppointmentStatusRejected, f.appointments.get(created.ID).Status)
	f.assertNoEvent(t)
}

func TestAppointmentUsecase_AcceptingAcceptedConflicts(t *testing.T) {
	f := newAppointmentFixture(t)
	accepted := f.withStatus(t, models.AppointmentStatusAccepted)

	_, err := f.usecase.AcceptAppointment(context.Background(), f.doctor, accepted.ID)
	assert.Equal(t, http.StatusConflict, exceptions.StatusCodeOf(err))
}

func TestAppointmentUsecase_CounterTitle(t *testing.T) {
	f := newAppointmentFixture(t)
	created := f.create(t, models.AppointmentModePhysical, nil)

	newDate := f.baseDate.AddDate(0, 0, 3)
	countered, err := f.usecase.CounterAppointment(context.Background(), f.doctor, created.ID, &requests.CounterAppointment{
		CounterProposalDate: &newDate,
		CounterMode:         stringPtr(string(models.AppointmentModePhysical)),
		CounterProposalTime: stringPtr("14:30"),
	})
	require.NoError(t, err)

	assert.Equal(t, "Date, , Time Countered on your Appointment", countered.Title)
	assert.Contains(t, countered.Title, "Date")
	assert.Contains(t, countered.Title, "Time")
	assert.NotContains(t, countered.Title, "Mode")

	appointment := countered.Appointment
	assert.Equal(t, models.AppointmentStatusCountered, appointment.Status)
	require.NotNil(t, appointment.CounterProposalDate)
	assert.Equal(t, time.Date(2025, 2, 3, 14, 30, 0, 0, time.UTC), *appointment.CounterProposalDate)
	require.NotNil(t, appointment.CounterMode)
	assert.Equal(t, models.AppointmentModePhysical, *appointment.CounterMode)
	assert.Equal(t, f.baseDate, appointment.AppointmentDate)

	event := f.nextEvent(t)
	assert.Equal(t, constvars.EventAppointmentUpdated, event.Event)
	assert.Equal(t, constvars.EventActionCountered, event.Action)
	assert.Equal(t, countered.Title, event.Title)
	assert.Equal(t, f.parent.UserID, event.To)
}

func TestAppointmentUsecase_CounterTitleFollowsProposedSchedule(t *testing.T) {
	f := newAppointmentFixture(t)
	created := f.create(t, models.AppointmentModePhysical, nil)

	sameDayLater := time.Date(2025, 1, 31, 15, 0, 0, 0, time.UTC)
	countered, err := f.usecase.CounterAppointment(context.Background(), f.doctor, created.ID, &requests.CounterAppointment{
		CounterProposalDate: &sameDayLater,
	})
	require.NoError(t, err)

	assert.Equal(t, ", , Time Countered on your Appointment", countered.Title)
	require.NotNil(t, countered.Appointment.CounterProposalDate)
	assert.Equal(t, sameDayLater, *countered.Appointment.CounterProposalDate)
	assert.Equal(t, countered.Title, f.nextEvent(t).Title)
}

func TestAppointmentUsecase_CounterTitleIgnoresUnchangedFields(t *testing.T) {
	f := newAppointmentFixture(t)
	created := f.create(t, models.AppointmentModePhysical, nil)

	nextDaySameTime := f.baseDate.AddDate(0, 0, 1)
	countered, err := f.usecase.CounterAppointment(context.Background(), f.parent, created.ID, &requests.CounterAppointment{
		CounterProposalDate: &nextDaySameTime,
		CounterMode:         stringPtr(string(models.AppointmentModePhysical)),
		CounterProposalTime: stringPtr("09:00"),
	})
	require.NoError(t, err)

	assert.Equal(t, "Date, ,  Countered on your Appointment", countered.Title)
}

func TestAppointmentUsecase_CounterOnlineNeedsLink(t *testing.T) {
	f := newAppointmentFixture(t)
	created := f.create(t, models.AppointmentModePhysical, nil)

	_, err := f.usecase.CounterAppointment(context.Background(), f.doctor, created.ID, &requests.CounterAppointment{
		CounterMode: stringPtr(string(models.AppointmentModeOnline)),
	})
	assert.Equal(t, http.StatusBadRequest, exceptions.StatusCodeOf(err))
	assert.Equal(t, models.AppointmentStatusPending, f.appointments.get(created.ID).Status)
}

func TestAppointmentUsecase_AcceptCounterAdoptsProposal(t *testing.T) {
	f := newAppointmentFixture(t)
	created := f.create(t, models.AppointmentModePhysical, nil)
	ctx := context.Background()

	_, err := f.usecase.CounterAppointment(ctx, f.parent, created.ID, &requests.CounterAppointment{
		CounterMode:         stringPtr(string(models.AppointmentModeOnline)),
		CounterMeetingLink:  stringPtr("https://meet.example.com/c"),
		CounterProposalTime: stringPtr("16:00"),
	})
	require.NoError(t, err)
	counterEvent := f.nextEvent(t)
	assert.Equal(t, f.doctor.UserID, counterEvent.To)
	assert.Equal(t, ", Mode, Time Countered on your Appointment", counterEvent.Title)

	accepted, err := f.usecase.AcceptAppointment(ctx, f.doctor, created.ID)
	require.NoError(t, err)

	assert.Equal(t, models.AppointmentStatusAccepted, accepted.Status)
	assert.Equal(t, models.AppointmentModeOnline, accepted.Mode)
	require.NotNil(t, accepted.MeetingLink)
	assert.Equal(t, "https://meet.example.com/c", *accepted.MeetingLink)
	assert.Equal(t, time.Date(2025, 1, 31, 16, 0, 0, 0, time.UTC), accepted.AppointmentDate)
	assert.Nil(t, accepted.CounterProposalDate)
	assert.Nil(t, accepted.CounterMode)
	assert.Nil(t, accepted.CounterMeetingLink)
	assert.True(t, accepted.HasConsistentMeetingLink())

	event := f.nextEvent(t)
	assert.Equal(t, constvars.EventAppointmentAccepted, event.Event)
	assert.Equal(t, f.parent.UserID, event.To)
}

func TestAppointmentUsecase_RejectCounterClearsProposal(t *testing.T) {
	f := newAppointmentFixture(t)
	created := f.create(t, models.AppointmentModePhysical, nil)
	ctx := context.Background()

	newDate := f.baseDate.AddDate(0, 0, 1)
	_, err := f.usecase.CounterAppointment(ctx, f.doctor, created.ID, &requests.CounterAppointment{CounterProposalDate: &newDate})
	require.NoError(t, err)
	f.nextEvent(t)

	rejected, err := f.usecase.RejectAppointment(ctx, f.parent, created.ID)
	require.NoError(t, err)
	assert.Equal(t, models.AppointmentStatusRejected, rejected.Status)
	assert.Nil(t, rejected.CounterProposalDate)
	assert.Nil(t, rejected.CounterMode)
	assert.Equal(t, f.baseDate, rejected.AppointmentDate)

	event := f.nextEvent(t)
	assert.Equal(t, constvars.EventAppointmentRejected, event.Event)
	assert.Equal(t, f.doctor.UserID, event.To)
}

func TestAppointmentUsecase_UpdateToPhysicalDropsLink(t *testing.T) {
	f := newAppointmentFixture(t)
	created := f.create(t, models.AppointmentModeOnline, stringPtr("https://meet.example.com/u"))

	updated, err := f.usecase.UpdateAppointment(context.Background(), f.parent, created.ID, &requests.UpdateAppointment{
		Mode: stringPtr(string(models.AppointmentModePhysical)),
	})
	require.NoError(t, err)
	assert.Equal(t, models.AppointmentModePhysical, updated.Mode)
	assert.Nil(t, updated.MeetingLink)
	assert.Nil(t, f.appointments.get(created.ID).MeetingLink)
	assert.Equal(t, models.AppointmentStatusPending, updated.Status)
	f.assertNoEvent(t)
}

func TestAppointmentUsecase_UpdateRules(t *testing.T) {
	f := newAppointmentFixture(t)
	ctx := context.Background()
	created := f.create(t, models.AppointmentModePhysical, nil)

	t.Run("online without link", func(t *testing.T) {
		_, err := f.usecase.UpdateAppointment(ctx, f.parent, created.ID, &requests.UpdateAppointment{Mode: stringPtr(string(models.AppointmentModeOnline))})
		assert.Equal(t, http.StatusBadRequest, exceptions.StatusCodeOf(err))
	})

	t.Run("doctor cannot edit", func(t *testing.T) {
		_, err := f.usecase.UpdateAppointment(ctx, f.doctor, created.ID, &requests.UpdateAppointment{Title: stringPtr("x")})
		assert.Equal(t, http.StatusForbidden, exceptions.StatusCodeOf(err))
	})

	t.Run("other parent", func(t *testing.T) {
		_, err := f.usecase.UpdateAppointment(ctx, f.otherParent, created.ID, &requests.UpdateAppointment{Title: stringPtr("x")})
		assert.Equal(t, http.StatusNotFound, exceptions.StatusCodeOf(err))
	})

	t.Run("empty request", func(t *testing.T) {
		_, err := f.usecase.UpdateAppointment(ctx, f.parent, created.ID, &requests.UpdateAppointment{})
		assert.Equal(t, http.StatusBadRequest, exceptions.StatusCodeOf(err))
	})

	t.Run("accepted is not editable", func(t *testing.T) {
		accepted := f.withStatus(t, models.AppointmentStatusAccepted)
		_, err := f.usecase.UpdateAppointment(ctx, f.parent, accepted.ID, &requests.UpdateAppointment{Title: stringPtr("x")})
		assert.Equal(t, http.StatusNotFound, exceptions.StatusCodeOf(err))
	})
}

func TestAppointmentUsecase_Delete(t *testing.T) {
	f := newAppointmentFixture(t)
	ctx := context.Background()
	created := f.create(t, models.AppointmentModePhysical, nil)

	err := f.usecase.DeleteAppointment(ctx, f.doctor, created.ID)
	assert.Equal(t, http.StatusForbidden, exceptions.StatusCodeOf(err))

	err = f.usecase.DeleteAppointment(ctx, f.otherDoctor, created.ID)
	assert.Equal(t, http.StatusNotFound, exceptions.StatusCodeOf(err))

	require.NoError(t, f.usecase.DeleteAppointment(ctx, f.parent, created.ID))
	assert.Nil(t, f.appointments.get(created.ID))

	err = f.usecase.DeleteAppointment(ctx, f.parent, created.ID)
	assert.Equal(t, http.StatusNotFound, exceptions.StatusCodeOf(err))
	f.assertNoEvent(t)
}

func TestAppointmentUsecase_HeldLockConflicts(t *testing.T) {
	f := newAppointmentFixture(t)
	created := f.create(t, models.AppointmentModePhysical, nil)

	key := fmt.Sprintf(constvars.AppointmentLockKeyFormat, created.ID)
	acquired, _, err := f.locker.TryLock(context.Background(), key, time.Second)
	require.NoError(t, err)
	require.True(t, acquired)

	_, err = f.usecase.AcceptAppointment(context.Background(), f.doctor, created.ID)
	assert.Equal(t, http.StatusConflict, exceptions.StatusCodeOf(err))
	assert.Equal(t, models.AppointmentStatusPending, f.appointments.get(created.ID).Status)
}

func TestAppointmentUsecase_FindMineScopesAndSorts(t *testing.T) {
	f := newAppointmentFixture(t)
	ctx := context.Background()

	first := f.create(t, models.AppointmentModePhysical, nil)
	request := f.createRequest(models.AppointmentModePhysical, nil)
	request.AppointmentDate = f.baseDate.AddDate(0, 0, 28)
	second, err := f.usecase.CreateAppointment(ctx, f.parent, request)
	require.NoError(t, err)
	f.nextEvent(t)

	_, err = f.usecase.AcceptAppointment(ctx, f.doctor, first.ID)
	require.NoError(t, err)
	f.nextEvent(t)

	mine, err := f.usecase.FindMine(ctx, f.parent, &requests.AppointmentQuery{})
	require.NoError(t, err)
	require.Len(t, mine, 2)
	assert.Equal(t, second.ID, mine[0].ID)
	assert.Equal(t, first.ID, mine[1].ID)
	require.NotNil(t, mine[0].Doctor)
	assert.Equal(t, "Dr. Lee", mine[0].Doctor.Name)
	require.NotNil(t, mine[0].Child)
	assert.Equal(t, f.childID, mine[0].Child.ID)

	accepted, err := f.usecase.FindMine(ctx, f.doctor, &requests.AppointmentQuery{Status: string(models.AppointmentStatusAccepted)})
	require.NoError(t, err)
	require.Len(t, accepted, 1)
	assert.Equal(t, first.ID, accepted[0].ID)

	none, err := f.usecase.FindMine(ctx, f.otherDoctor, &requests.AppointmentQuery{})
	require.NoError(t, err)
	assert.Empty(t, none)

	schedule, err := f.usecase.FindSchedule(ctx, f.doctor)
	require.NoError(t, err)
	require.Len(t, schedule, 2)
	assert.Equal(t, "2025-02-28", schedule[0].Date)
	assert.Equal(t, "09:00", schedule[0].Time)
}

func TestAppointmentUsecase_FindByIDPopulates(t *testing.T) {
	f := newAppointmentFixture(t)
	created := f.create(t, models.AppointmentModePhysical, nil)

	detail, err := f.usecase.FindByID(context.Background(), f.doctor, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, detail.ID)
	require.NotNil(t, detail.Parent)
	assert.Equal(t, f.parent.UserID, detail.Parent.ID)
	require.NotNil(t, detail.Doctor)
	assert.Equal(t, f.doctor.UserID, detail.Doctor.ID)
	require.NotNil(t, detail.Child)
}
