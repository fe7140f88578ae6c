package eventbus

import (
	"context"

	"github.com/rabbitmq/amqp091-go"
)

// AMQPChannel is the subset of *amqp091.Channel used by the bus.
type AMQPChannel interface {
	ExchangeDeclare(name, kind string, durable, autoDelete, internal, noWait bool, args amqp091.Table) error
	QueueDeclare(name string, durable, autoDelete, exclusive, noWait bool, args amqp091.Table) (amqp091.Queue, error)
	QueueBind(name, key, exchange string, noWait bool, args amqp091.Table) error
	Consume(queue, consumer string, autoAck, exclusive, noLocal, noWait bool, args amqp091.Table) (<-chan amqp091.Delivery, error)
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp091.Publishing) error
	Close() error
}

func declareFanoutExchange(channel AMQPChannel, exchange string) error {
	return channel.ExchangeDeclare(exchange, amqp091.ExchangeFanout, true, false, false, false, nil)
}
