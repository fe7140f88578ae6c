package notifications

import (
	"context"
	"mamacare-service/internal/app/contracts"
	"mamacare-service/internal/app/models"
	"mamacare-service/internal/pkg/constvars"
	"mamacare-service/internal/pkg/exceptions"
	"mamacare-service/internal/pkg/utils"
	"time"

	"go.uber.org/zap"
)

type notificationUsecase struct {
	NotificationRepository contracts.NotificationRepository
	Log                    *zap.Logger
}

func NewNotificationUsecase(notificationRepository contracts.NotificationRepository, logger *zap.Logger) contracts.NotificationUsecase {
	return &notificationUsecase{
		NotificationRepository: notificationRepository,
		Log:                    logger,
	}
}

// RecordEvent stores event in the inbox of its recipient.
func (uc *notificationUsecase) RecordEvent(ctx context.Context, event *models.AppointmentEvent) (*models.Notification, error) {
	notification := &models.Notification{
		To:     event.To,
		Event:  event.Event,
		Action: event.Action,
		Title:  event.Title,
	}
	if appointment := event.Appointment; appointment != nil {
		notification.AppointmentID = appointment.ID
		notification.ParentID = appointment.ParentID
		notification.DoctorID = appointment.DoctorID
		notification.ChildID = appointment.ChildID
	}

	occurredAt := event.OccurredAt
	if occurredAt.IsZero() {
		occurredAt = time.Now()
	}
	notification.Touch(occurredAt)

	var err error
	notification.ID, err = uc.NotificationRepository.CreateNotification(ctx, notification)
	if err != nil {
		return nil, err
	}
	return notification, nil
}

func (uc *notificationUsecase) FindMine(ctx context.Context, session *models.Session) ([]*models.Notification, error) {
	return uc.NotificationRepository.FindByRecipient(ctx, session.UserID)
}

func (uc *notificationUsecase) FindByID(ctx context.Context, session *models.Session, notificationID string) (*models.Notification, error) {
	notification, err := uc.NotificationRepository.FindByIDAndRecipient(ctx, notificationID, session.UserID)
	if err != nil {
		return nil, err
	}
	if notification == nil {
		return nil, exceptions.ErrNotificationNotExist(nil)
	}
	return notification, nil
}

func (uc *notificationUsecase) MarkAsRead(ctx context.Context, session *models.Session, notificationID string) (*models.Notification, error) {
	updated, err := uc.NotificationRepository.MarkAsRead(ctx, notificationID, session.UserID)
	if err != nil {
		return nil, err
	}
	if !updated {
		return nil, exceptions.ErrNotificationNotExist(nil)
	}
	return uc.FindByID(ctx, session, notificationID)
}

func (uc *notificationUsecase) DeleteNotification(ctx context.Context, session *models.Session, notificationID string) error {
	deleted, err := uc.NotificationRepository.DeleteByIDAndRecipient(ctx, notificationID, session.UserID)
	if err != nil {
		return err
	}
	if !deleted {
		return exceptions.ErrNotificationNotExist(nil)
	}

	uc.Log.Info("notificationUsecase.DeleteNotification succeeded",
		zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
		zap.String(constvars.LoggingNotificationKey, notificationID))
	return nil
}
