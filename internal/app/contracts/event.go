package contracts

import (
	"context"
	"mamacare-service/internal/app/models"
)

type EventPublisher interface {
	Publish(ctx context.Context, event *models.AppointmentEvent) error
}

// EventSubscriber delivers events until ctx is cancelled, then closes the
// returned channel.
type EventSubscriber interface {
	Subscribe(ctx context.Context) (<-chan *models.AppointmentEvent, error)
}

// EventPusher delivers an event to the live connections of one recipient.
type EventPusher interface {
	PushToUser(userID string, event *models.AppointmentEvent) int
}
