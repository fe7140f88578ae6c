package children

import (
	"context"
	"mamacare-service/internal/app/contracts"
	"mamacare-service/internal/app/models"
	"mamacare-service/internal/pkg/constvars"
	"mamacare-service/internal/pkg/exceptions"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type ChildMongoRepository struct {
	Collection *mongo.Collection
}

func NewChildMongoRepository(db *mongo.Client, dbName string) contracts.ChildRepository {
	return &ChildMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionChildren),
	}
}

func (repo *ChildMongoRepository) CreateChild(ctx context.Context, child *models.Child) (string, error) {
	result, err := repo.Collection.InsertOne(ctx, child)
	if err != nil {
		return "", exceptions.ErrMongoDBInsertDocument(err)
	}
	return result.InsertedID.(primitive.ObjectID).Hex(), nil
}

func (repo *ChildMongoRepository) FindByID(ctx context.Context, childID string) (*models.Child, error) {
	objectID, err := primitive.ObjectIDFromHex(childID)
	if err != nil {
		return nil, exceptions.ErrMongoDBNotObjectID(err)
	}

	var child models.Child
	err = repo.Collection.FindOne(ctx, bson.M{"_id": objectID}).Decode(&child)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &child, nil
}

func (repo *ChildMongoRepository) FindByParentID(ctx context.Context, parentID string) ([]*models.Child, error) {
	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: 1}})
	return repo.find(ctx, bson.M{"parent_id": parentID}, opts)
}

func (repo *ChildMongoRepository) FindByIDs(ctx context.Context, childIDs []string) ([]*models.Child, error) {
	objectIDs := make([]primitive.ObjectID, 0, len(childIDs))
	for _, childID := range childIDs {
		if objectID, err := primitive.ObjectIDFromHex(childID); err == nil {
			objectIDs = append(objectIDs, objectID)
		}
	}
	if len(objectIDs) == 0 {
		return []*models.Child{}, nil
	}
	return repo.find(ctx, bson.M{"_id": bson.M{"$in": objectIDs}}, nil)
}

func (repo *ChildMongoRepository) find(ctx context.Context, filter bson.M, opts *options.FindOptions) ([]*models.Child, error) {
	cursor, err := repo.Collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	children := make([]*models.Child, 0)
	if err := cursor.All(ctx, &children); err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return children, nil
}

func (repo *ChildMongoRepository) DeleteByParentID(ctx context.Context, parentID string) error {
	_, err := repo.Collection.DeleteMany(ctx, bson.M{"parent_id": parentID})
	if err != nil {
		return exceptions.ErrMongoDBDeleteDocument(err)
	}
	return nil
}
