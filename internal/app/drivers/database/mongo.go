package database

import (
	"context"
	"fmt"
	"mamacare-service/internal/app/config"
	"time"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

func NewMongoDB(driverConfig *config.DriverConfig, log *zap.Logger) *mongo.Client {
	connectionString := fmt.Sprintf("mongodb://%s:%s", driverConfig.MongoDB.Host, driverConfig.MongoDB.Port)
	dbOptions := options.Client().ApplyURI(connectionString)
	if driverConfig.MongoDB.Username != "" {
		dbOptions.SetAuth(options.Credential{
			Username: driverConfig.MongoDB.Username,
			Password: driverConfig.MongoDB.Password,
		})
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	client, err := mongo.Connect(ctx, dbOptions)
	if err != nil {
		log.Fatal("Failed to connect to mongo database", zap.Error(err))
	}
	err = client.Ping(ctx, nil)
	if err != nil {
		log.Fatal("Failed to ping or test the connection to mongo database", zap.Error(err))
	}
	log.Info("Successfully connected to mongo database", zap.String("db_name", driverConfig.MongoDB.DbName))
	return client
}
