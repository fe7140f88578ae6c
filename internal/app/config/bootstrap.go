package config

import (
	"context"

	"github.com/go-chi/chi/v5"
	"github.com/minio/minio-go/v7"
	"github.com/rabbitmq/amqp091-go"
	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

type Bootstrap struct {
	Router         *chi.Mux
	MongoDB        *mongo.Client
	Redis          *redis.Client
	RabbitMQ       *amqp091.Connection
	Minio          *minio.Client
	Logger         *zap.Logger
	InternalConfig *InternalConfig
	DriverConfig   *DriverConfig
	// WorkerStops are called during Shutdown to stop background consumers
	WorkerStops []func()
}

func (b *Bootstrap) Shutdown(ctx context.Context) error {
	for _, stop := range b.WorkerStops {
		stop()
	}
	b.Logger.Info("Successfully stopped background workers")

	if err := b.RabbitMQ.Close(); err != nil {
		return err
	}
	b.Logger.Info("Successfully closing RabbitMQ")

	if err := b.Redis.Close(); err != nil {
		return err
	}
	b.Logger.Info("Successfully closing Redis")

	if err := b.MongoDB.Disconnect(ctx); err != nil {
		return err
	}
	b.Logger.Info("Successfully closing MongoDB")

	_ = b.Logger.Sync()
	return nil
}
