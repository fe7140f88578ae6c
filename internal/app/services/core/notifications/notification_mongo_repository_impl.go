package notifications

import (
	"context"
	"mamacare-service/internal/app/contracts"
	"mamacare-service/internal/app/models"
	"mamacare-service/internal/pkg/constvars"
	"mamacare-service/internal/pkg/exceptions"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type NotificationMongoRepository struct {
	Collection *mongo.Collection
}

func NewNotificationMongoRepository(db *mongo.Client, dbName string) contracts.NotificationRepository {
	return &NotificationMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionNotifications),
	}
}

func recipientFilter(notificationID, recipientID string) (bson.M, error) {
	objectID, err := primitive.ObjectIDFromHex(notificationID)
	if err != nil {
		return nil, exceptions.ErrMongoDBNotObjectID(err)
	}
	return bson.M{"_id": objectID, "to": recipientID}, nil
}

func (repo *NotificationMongoRepository) CreateNotification(ctx context.Context, notification *models.Notification) (string, error) {
	result, err := repo.Collection.InsertOne(ctx, notification)
	if err != nil {
		return "", exceptions.ErrMongoDBInsertDocument(err)
	}
	return result.InsertedID.(primitive.ObjectID).Hex(), nil
}

func (repo *NotificationMongoRepository) FindByRecipient(ctx context.Context, recipientID string) ([]*models.Notification, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := repo.Collection.Find(ctx, bson.M{"to": recipientID}, opts)
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	notifications := make([]*models.Notification, 0)
	if err := cursor.All(ctx, &notifications); err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return notifications, nil
}

func (repo *NotificationMongoRepository) FindByIDAndRecipient(ctx context.Context, notificationID, recipientID string) (*models.Notification, error) {
	filter, err := recipientFilter(notificationID, recipientID)
	if err != nil {
		return nil, err
	}

	var notification models.Notification
	err = repo.Collection.FindOne(ctx, filter).Decode(&notification)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &notification, nil
}

func (repo *NotificationMongoRepository) MarkAsRead(ctx context.Context, notificationID, recipientID string) (bool, error) {
	filter, err := recipientFilter(notificationID, recipientID)
	if err != nil {
		return false, err
	}

	update := bson.M{"$set": bson.M{"read": true, "updated_at": time.Now().UTC()}}
	result, err := repo.Collection.UpdateOne(ctx, filter, update)
	if err != nil {
		return false, exceptions.ErrMongoDBUpdateDocument(err)
	}
	return result.MatchedCount > 0, nil
}

func (repo *NotificationMongoRepository) DeleteByIDAndRecipient(ctx context.Context, notificationID, recipientID string) (bool, error) {
	filter, err := recipientFilter(notificationID, recipientID)
	if err != nil {
		return false, err
	}

	result, err := repo.Collection.DeleteOne(ctx, filter)
	if err != nil {
		return false, exceptions.ErrMongoDBDeleteDocument(err)
	}
	return result.DeletedCount > 0, nil
}
