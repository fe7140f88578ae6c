package contracts

import (
	"context"
	"mamacare-service/internal/app/models"
)

type NotificationRepository interface {
	CreateNotification(ctx context.Context, notification *models.Notification) (string, error)
	FindByRecipient(ctx context.Context, recipientID string) ([]*models.Notification, error)
	FindByIDAndRecipient(ctx context.Context, notificationID, recipientID string) (*models.Notification, error)
	MarkAsRead(ctx context.Context, notificationID, recipientID string) (bool, error)
	DeleteByIDAndRecipient(ctx context.Context, notificationID, recipientID string) (bool, error)
}

type NotificationUsecase interface {
	RecordEvent(ctx context.Context, event *models.AppointmentEvent) (*models.Notification, error)
	FindMine(ctx context.Context, session *models.Session) ([]*models.Notification, error)
	FindByID(ctx context.Context, session *models.Session, notificationID string) (*models.Notification, error)
	MarkAsRead(ctx context.Context, session *models.Session, notificationID string) (*models.Notification, error)
	DeleteNotification(ctx context.Context, session *models.Session, notificationID string) error
}
