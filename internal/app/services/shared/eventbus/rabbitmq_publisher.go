package eventbus

import (
	"context"
	"mamacare-service/internal/app/contracts"
	"mamacare-service/internal/app/models"
	"mamacare-service/internal/pkg/constvars"
	"mamacare-service/internal/pkg/exceptions"
	"sync"
	"time"

	"github.com/goccy/go-json"
	"github.com/google/uuid"
	"github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
)

type rabbitMQPublisher struct {
	mu       sync.Mutex
	channel  AMQPChannel
	exchange string
	Log      *zap.Logger
}

// NewRabbitMQPublisher declares a durable fanout exchange so every bound
// queue receives each appointment event.
func NewRabbitMQPublisher(channel AMQPChannel, exchange string, logger *zap.Logger) (contracts.EventPublisher, error) {
	if channel == nil {
		return nil, exceptions.ErrRabbitMQChannelNotOpened(nil)
	}
	if err := declareFanoutExchange(channel, exchange); err != nil {
		return nil, exceptions.ErrRabbitMQDeclareExchange(err, exchange)
	}
	return &rabbitMQPublisher{
		channel:  channel,
		exchange: exchange,
		Log:      logger,
	}, nil
}

func (p *rabbitMQPublisher) Publish(ctx context.Context, event *models.AppointmentEvent) error {
	body, err := json.Marshal(event)
	if err != nil {
		return exceptions.ErrCannotMarshalJSON(err)
	}

	message := amqp091.Publishing{
		ContentType:  constvars.MIMEApplicationJSON,
		Body:         body,
		DeliveryMode: amqp091.Persistent,
		MessageId:    uuid.NewString(),
		Type:         event.Event,
		Timestamp:    time.Now().UTC(),
	}

	p.mu.Lock()
	err = p.channel.PublishWithContext(ctx, p.exchange, "", false, false, message)
	p.mu.Unlock()
	if err != nil {
		return exceptions.ErrRabbitMQPublishMessage(err, p.exchange)
	}

	p.Log.Info("rabbitMQPublisher.Publish succeeded",
		zap.String(constvars.LoggingExchangeKey, p.exchange),
		zap.String(constvars.LoggingEventNameKey, event.Event),
		zap.String(constvars.LoggingRecipientKey, event.To),
	)
	return nil
}
