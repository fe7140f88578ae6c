package notifications

import (
	"context"
	"errors"
	"mamacare-service/internal/app/models"
	"mamacare-service/internal/app/services/shared/eventbus"
	"mamacare-service/internal/pkg/constvars"
	"mamacare-service/internal/pkg/exceptions"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type MockNotificationRepository struct {
	mock.Mock
}

func (m *MockNotificationRepository) CreateNotification(ctx context.Context, notification *models.Notification) (string, error) {
	args := m.Called(ctx, notification)
	return args.String(0), args.Error(1)
}

func (m *MockNotificationRepository) FindByRecipient(ctx context.Context, recipientID string) ([]*models.Notification, error) {
	args := m.Called(ctx, recipientID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*models.Notification), args.Error(1)
}

func (m *MockNotificationRepository) FindByIDAndRecipient(ctx context.Context, notificationID, recipientID string) (*models.Notification, error) {
	args := m.Called(ctx, notificationID, recipientID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.Notification), args.Error(1)
}

func (m *MockNotificationRepository) MarkAsRead(ctx context.Context, notificationID, recipientID string) (bool, error) {
	args := m.Called(ctx, notificationID, recipientID)
	return args.Bool(0), args.Error(1)
}

func (m *MockNotificationRepository) DeleteByIDAndRecipient(ctx context.Context, notificationID, recipientID string) (bool, error) {
	args := m.Called(ctx, notificationID, recipientID)
	return args.Bool(0), args.Error(1)
}

var parentSession = &models.Session{SessionID: "session-1", UserID: "parent-1", Role: constvars.RoleUser}

func counteredEvent() *models.AppointmentEvent {
	return &models.AppointmentEvent{
		Event:  "appointment-updated",
		Action: "countered",
		Title:  "Date, , Time Countered on your Appointment",
		To:     "parent-1",
		Appointment: &models.Appointment{
			ID:       "appointment-1",
			ParentID: "parent-1",
			DoctorID: "doctor-1",
			ChildID:  "child-1",
		},
		OccurredAt: time.Date(2025, 2, 3, 8, 30, 0, 0, time.UTC),
	}
}

func TestRecordEvent(t *testing.T) {
	repo := new(MockNotificationRepository)
	usecase := NewNotificationUsecase(repo, zap.NewNop())

	repo.On("CreateNotification", mock.Anything, mock.MatchedBy(func(n *models.Notification) bool {
		return n.To == "parent-1" &&
			n.AppointmentID == "appointment-1" &&
			n.DoctorID == "doctor-1" &&
			n.Action == "countered" &&
			!n.Read &&
			n.CreatedAt.Equal(time.Date(2025, 2, 3, 8, 30, 0, 0, time.UTC))
	})).Return("notification-1", nil)

	notification, err := usecase.RecordEvent(context.Background(), counteredEvent())
	require.NoError(t, err)
	assert.Equal(t, "notification-1", notification.ID)
	assert.Equal(t, "Date, , Time Countered on your Appointment", notification.Title)
	repo.AssertExpectations(t)
}

func TestRecordEventStorageFailure(t *testing.T) {
	repo := new(MockNotificationRepository)
	usecase := NewNotificationUsecase(repo, zap.NewNop())
	repo.On("CreateNotification", mock.Anything, mock.Anything).Return("", exceptions.ErrMongoDBInsertDocument(errors.New("timeout")))

	_, err := usecase.RecordEvent(context.Background(), counteredEvent())
	assert.Error(t, err)
}

func TestNotificationsAreScopedToRecipient(t *testing.T) {
	ctx := context.Background()

	t.Run("find by id of someone else is not found", func(t *testing.T) {
		repo := new(MockNotificationRepository)
		usecase := NewNotificationUsecase(repo, zap.NewNop())
		repo.On("FindByIDAndRecipient", ctx, "notification-9", "parent-1").Return(nil, nil)

		_, err := usecase.FindByID(ctx, parentSession, "notification-9")
		require.Error(t, err)
		assert.Equal(t, constvars.StatusNotFound, exceptions.StatusCodeOf(err))
	})

	t.Run("mark as read returns the updated notification", func(t *testing.T) {
		repo := new(MockNotificationRepository)
		usecase := NewNotificationUsecase(repo, zap.NewNop())
		repo.On("MarkAsRead", ctx, "notification-1", "parent-1").Return(true, nil)
		repo.On("FindByIDAndRecipient", ctx, "notification-1", "parent-1").
			Return(&models.Notification{ID: "notification-1", To: "parent-1", Read: true}, nil)

		notification, err := usecase.MarkAsRead(ctx, parentSession, "notification-1")
		require.NoError(t, err)
		assert.True(t, notification.Read)
	})

	t.Run("mark as read of a missing notification", func(t *testing.T) {
		repo := new(MockNotificationRepository)
		usecase := NewNotificationUsecase(repo, zap.NewNop())
		repo.On("MarkAsRead", ctx, "notification-9", "parent-1").Return(false, nil)

		_, err := usecase.MarkAsRead(ctx, parentSession, "notification-9")
		assert.Equal(t, constvars.StatusNotFound, exceptions.StatusCodeOf(err))
	})

	t.Run("delete", func(t *testing.T) {
		repo := new(MockNotificationRepository)
		usecase := NewNotificationUsecase(repo, zap.NewNop())
		repo.On("DeleteByIDAndRecipient", ctx, "notification-1", "parent-1").Return(true, nil)
		repo.On("DeleteByIDAndRecipient", ctx, "notification-9", "parent-1").Return(false, nil)

		assert.NoError(t, usecase.DeleteNotification(ctx, parentSession, "notification-1"))
		assert.Equal(t, constvars.StatusNotFound, exceptions.StatusCodeOf(usecase.DeleteNotification(ctx, parentSession, "notification-9")))
	})
}

type recordingUsecase struct {
	mu       sync.Mutex
	recorded []*models.AppointmentEvent
	fail     bool
}

func (u *recordingUsecase) RecordEvent(ctx context.Context, event *models.AppointmentEvent) (*models.Notification, error) {
	u.mu.Lock()
	defer u.mu.Unlock()
	if u.fail {
		u.fail = false
		return nil, errors.New("mongo unavailable")
	}
	u.recorded = append(u.recorded, event)
	return &models.Notification{ID: "notification-" + event.To}, nil
}

func (u *recordingUsecase) FindMine(ctx context.Context, session *models.Session) ([]*models.Notification, error) {
	return nil, nil
}

func (u *recordingUsecase) FindByID(ctx context.Context, session *models.Session, notificationID string) (*models.Notification, error) {
	return nil, nil
}

func (u *recordingUsecase) MarkAsRead(ctx context.Context, session *models.Session, notificationID string) (*models.Notification, error) {
	return nil, nil
}

func (u *recordingUsecase) DeleteNotification(ctx context.Context, session *models.Session, notificationID string) error {
	return nil
}

func (u *recordingUsecase) recipients() []string {
	u.mu.Lock()
	defer u.mu.Unlock()
	to := make([]string, 0, len(u.recorded))
	for _, event := range u.recorded {
		to = append(to, event.To)
	}
	return to
}

func TestWorkerRecordsEvents(t *testing.T) {
	bus := eventbus.NewMemoryBus(8)
	usecase := &recordingUsecase{fail: true}
	worker := NewWorker(zap.NewNop(), bus, usecase)

	stop, err := worker.Start(context.Background())
	require.NoError(t, err)

	ctx := context.Background()
	failed := counteredEvent()
	failed.To = "lost"
	require.NoError(t, bus.Publish(ctx, failed))
	require.NoError(t, bus.Publish(ctx, &models.AppointmentEvent{Event: "appointment-updated"}))
	require.NoError(t, bus.Publish(ctx, counteredEvent()))

	assert.Eventually(t, func() bool { return len(usecase.recipients()) == 1 }, time.Second, 10*time.Millisecond)
	stop()
	assert.Equal(t, []string{"parent-1"}, usecase.recipients())
}
