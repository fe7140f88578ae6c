package users

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

type UserMongoRepository struct {
	Collection *mongo.Collection
}

func NewUserMongoRepository(db *mongo.Client, dbName string) contracts.UserRepository {
	return &UserMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionUsers),
	}
}

func (repo *UserMongoRepository) CreateUser(ctx context.Context, userModel *models.User) (userID string, err error) {
	result, err := repo.Collection.InsertOne(ctx, userModel)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return "", exceptions.ErrUserAlreadyExist(err)
		}
		return "", exceptions.ErrMongoDBInsertDocument(err)
	}
	return result.InsertedID.(primitive.ObjectID).Hex(), nil
}

func (repo *UserMongoRepository) FindByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	err := repo.Collection.FindOne(ctx, bson.M{"email": email}).Decode(&user)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &user, nil
}

func (repo *UserMongoRepository) FindByID(ctx context.Context, userID string) (*models.User, error) {
	var user models.User
	objectID, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return nil, exceptions.ErrMongoDBNotObjectID(err)
	}
	err = repo.Collection.FindOne(ctx, bson.M{"_id": objectID}).Decode(&user)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &user, nil
}

func (repo *UserMongoRepository) FindByIDs(ctx context.Context, userIDs []string) ([]*models.User, error) {
	objectIDs := make([]primitive.ObjectID, 0, len(userIDs))
	for _, userID := range userIDs {
		objectID, err := primitive.ObjectIDFromHex(userID)
		if err != nil {
			continue
		}
		objectIDs = append(objectIDs, objectID)
	}
	if len(objectIDs) == 0 {
		return []*models.User{}, nil
	}
	return repo.find(ctx, bson.M{"_id": bson.M{"$in": objectIDs}}, nil)
}

func (repo *UserMongoRepository) FindByRole(ctx context.Context, role string) ([]*models.User, error) {
	return repo.find(ctx, bson.M{"role": role}, options.Find().SetSort(bson.D{{Key: "name", Value: 1}}))
}

func (repo *UserMongoRepository) find(ctx context.Context, filter bson.M, opts *options.FindOptions) ([]*models.User, error) {
	cursor, err := repo.Collection.Find(ctx, filter, opts)
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	users := make([]*models.User, 0)
	if err := cursor.All(ctx, &users); err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return users, nil
}

func (repo *UserMongoRepository) UpdateUser(ctx context.Context, user *models.User) error {
	objectID, err := primitive.ObjectIDFromHex(user.ID)
	if err != nil {
		return exceptions.ErrMongoDBNotObjectID(err)
	}
	filter := bson.M{"_id": objectID}
	update := bson.M{"$set": bson.M{
		"name":           user.Name,
		"email":          user.Email,
		"picture":        user.Picture,
		"specialization": user.Specialization,
		"available_from": user.AvailableFrom,
		"available_to":   user.AvailableTo,
		"updated_at":     user.UpdatedAt,
	}}

	_, err = repo.Collection.UpdateOne(ctx, filter, update, options.Update().SetUpsert(false))
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return exceptions.ErrUserAlreadyExist(err)
		}
		return exceptions.ErrMongoDBUpdateDocument(err)
	}
	return nil
}

func (repo *UserMongoRepository) DeleteByID(ctx context.Context, userID string) error {
	objectID, err := primitive.ObjectIDFromHex(userID)
	if err != nil {
		return exceptions.ErrMongoDBNotObjectID(err)
	}
	_, err = repo.Collection.DeleteOne(ctx, bson.M{"_id": objectID})
	if err != nil {
		return exceptions.ErrMongoDBDeleteDocument(err)
	}
	return nil
}
