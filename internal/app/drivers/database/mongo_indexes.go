package database

import (
	"context"
	"mamacare-service/internal/pkg/constvars"
	"mamacare-service/internal/pkg/exceptions"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.uber.org/zap"
)

// CollectionIndexes lists the indexes each collection relies on. users.email
// backs the duplicate-email check.
var CollectionIndexes = map[string][]mongo.IndexModel{
	constvars.MongoCollectionUsers: {
		{Keys: bson.D{{Key: "email", Value: 1}}, Options: options.Index().SetUnique(true).SetName("uniq_email")},
		{Keys: bson.D{{Key: "role", Value: 1}, {Key: "name", Value: 1}}, Options: options.Index().SetName("role_name")},
	},
	constvars.MongoCollectionChildren: {
		{Keys: bson.D{{Key: "parent_id", Value: 1}, {Key: "created_at", Value: 1}}, Options: options.Index().SetName("parent_created")},
	},
	constvars.MongoCollectionAppointments: {
		{Keys: bson.D{{Key: "parent_id", Value: 1}, {Key: "appointment_date", Value: -1}}, Options: options.Index().SetName("parent_date")},
		{Keys: bson.D{{Key: "doctor_id", Value: 1}, {Key: "appointment_date", Value: -1}}, Options: options.Index().SetName("doctor_date")},
	},
	constvars.MongoCollectionNotifications: {
		{Keys: bson.D{{Key: "to", Value: 1}, {Key: "created_at", Value: -1}}, Options: options.Index().SetName("to_created")},
	},
	constvars.MongoCollectionArticles: {
		{Keys: bson.D{{Key: "published_date", Value: -1}}, Options: options.Index().SetName("published_date")},
	},
}

func EnsureIndexes(ctx context.Context, db *mongo.Database, log *zap.Logger) error {
	for collection, indexes := range CollectionIndexes {
		names, err := db.Collection(collection).Indexes().CreateMany(ctx, indexes)
		if err != nil {
			log.Error("Failed to create mongo indexes",
				zap.String("collection", collection),
				zap.Error(err))
			return exceptions.ErrMongoDBCreateIndex(err)
		}
		log.Info("Mongo indexes ensured",
			zap.String("collection", collection),
			zap.Strings("indexes", names))
	}
	return nil
}
