package eventbus

import (
	"context"
	"mamacare-service/internal/app/contracts"
	"mamacare-service/internal/app/models"
	"mamacare-service/internal/pkg/constvars"
	"mamacare-service/internal/pkg/exceptions"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type QueueOptions struct {
	// Name is left empty for a server named queue.
	Name string
	// Exclusive queues live as long as this connection, so each instance gets
	// its own copy of every event. Shared durable queues split the events
	// between consumers instead.
	Exclusive bool
}

type rabbitMQSubscriber struct {
	channel  AMQPChannel
	exchange string
	queue    QueueOptions
	Log      *zap.Logger
}

func NewRabbitMQSubscriber(channel AMQPChannel, exchange string, queue QueueOptions, logger *zap.Logger) contracts.EventSubscriber {
	return &rabbitMQSubscriber{
		channel:  channel,
		exchange: exchange,
		queue:    queue,
		Log:      logger,
	}
}

func (s *rabbitMQSubscriber) Subscribe(ctx context.Context) (<-chan *models.AppointmentEvent, error) {
	if s.channel == nil {
		return nil, exceptions.ErrRabbitMQChannelNotOpened(nil)
	}
	if err := declareFanoutExchange(s.channel, s.exchange); err != nil {
		return nil, exceptions.ErrRabbitMQDeclareExchange(err, s.exchange)
	}

	queue, err := s.channel.QueueDeclare(s.queue.Name, !s.queue.Exclusive, s.queue.Exclusive, s.queue.Exclusive, false, nil)
	if err != nil {
		return nil, exceptions.ErrRabbitMQDeclareQueue(err, s.queue.Name)
	}
	if err := s.channel.QueueBind(queue.Name, "", s.exchange, false, nil); err != nil {
		return nil, exceptions.ErrRabbitMQDeclareQueue(err, queue.Name)
	}

	deliveries, err := s.channel.Consume(queue.Name, "", false, s.queue.Exclusive, false, false, nil)
	if err != nil {
		return nil, exceptions.ErrRabbitMQConsumeQueue(err, queue.Name)
	}

	events := make(chan *models.AppointmentEvent, 64)
	go func() {
		defer close(events)
		for {
			select {
			case <-ctx.Done():
				return
			case delivery, ok := <-deliveries:
				if !ok {
					s.Log.Warn("rabbitMQSubscriber deliveries closed",
						zap.String(constvars.LoggingQueueKey, queue.Name))
					return
				}

				event := new(models.AppointmentEvent)
				if err := json.Unmarshal(delivery.Body, event); err != nil {
					s.Log.Error("rabbitMQSubscriber dropping malformed event",
						zap.String(constvars.LoggingQueueKey, queue.Name),
						zap.Error(err))
					_ = delivery.Nack(false, false)
					continue
				}

				select {
				case events <- event:
					_ = delivery.Ack(false)
				case <-ctx.Done():
					_ = delivery.Nack(false, true)
					return
				}
			}
		}
	}()

	s.Log.Info("rabbitMQSubscriber subscribed",
		zap.String(constvars.LoggingExchangeKey, s.exchange),
		zap.String(constvars.LoggingQueueKey, queue.Name))
	return events, nil
}
