package realtime

import (
	"context"
	"mamacare-service/internal/app/contracts"
	"mamacare-service/internal/pkg/constvars"
	"sync"

	"go.uber.org/zap"
)

// Relay forwards every event received by this instance to the recipient's
// live connections.
type Relay struct {
	Subscriber contracts.EventSubscriber
	Pusher     contracts.EventPusher
	Log        *zap.Logger
}

func NewRelay(subscriber contracts.EventSubscriber, pusher contracts.EventPusher, logger *zap.Logger) *Relay {
	return &Relay{
		Subscriber: subscriber,
		Pusher:     pusher,
		Log:        logger,
	}
}

func (r *Relay) Start(ctx context.Context) (stop func(), err error) {
	ctx, cancel := context.WithCancel(ctx)
	events, err := r.Subscriber.Subscribe(ctx)
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
			delivered := r.Pusher.PushToUser(event.To, event)
			r.Log.Debug("Relay pushed event",
				zap.String(constvars.LoggingEventNameKey, event.Event),
				zap.String(constvars.LoggingRecipientKey, event.To),
				zap.Int("connections", delivered))
		}
	}()

	r.Log.Info("Relay started")
	return func() {
		cancel()
		wg.Wait()
		r.Log.Info("Relay stopped")
	}, nil
}
