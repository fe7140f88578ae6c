package notifications

import (
	"context"
	"mamacare-service/internal/app/contracts"
	"mamacare-service/internal/pkg/constvars"
	"sync"
	"time"

	"go.uber.org/zap"
)

// Worker persists every appointment event delivered on the shared
// notification queue into the recipient's inbox.
type Worker struct {
	log                 *zap.Logger
	subscriber          contracts.EventSubscriber
	notificationUsecase contracts.NotificationUsecase
	writeTimeout        time.Duration
}

func NewWorker(log *zap.Logger, subscriber contracts.EventSubscriber, notificationUsecase contracts.NotificationUsecase) *Worker {
	return &Worker{
		log:                 log,
		subscriber:          subscriber,
		notificationUsecase: notificationUsecase,
		writeTimeout:        5 * time.Second,
	}
}

// Start subscribes and consumes in the background. It returns a stop function
// that waits for the in-flight write to finish.
func (w *Worker) Start(ctx context.Context) (stop func(), err error) {
	ctx, cancel := context.WithCancel(ctx)
	events, err := w.subscriber.Subscribe(ctx)
	if err != nil {
		cancel()
		return nil, err
	}

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		for event := range events {
			if event == nil || event.To == "" {
				continue
			}

			writeCtx, writeCancel := context.WithTimeout(context.Background(), w.writeTimeout)
			notification, err := w.notificationUsecase.RecordEvent(writeCtx, event)
			writeCancel()
			if err != nil {
				w.log.Error("notifications.Worker failed to record event",
					zap.String(constvars.LoggingEventNameKey, event.Event),
					zap.String(constvars.LoggingRecipientKey, event.To),
					zap.Error(err))
				continue
			}

			w.log.Info("notifications.Worker recorded event",
				zap.String(constvars.LoggingEventNameKey, event.Event),
				zap.String(constvars.LoggingRecipientKey, event.To),
				zap.String(constvars.LoggingNotificationKey, notification.ID))
		}
	}()

	w.log.Info("notifications.Worker started")
	return func() {
		cancel()
		wg.Wait()
		w.log.Info("notifications.Worker stopped")
	}, nil
}
