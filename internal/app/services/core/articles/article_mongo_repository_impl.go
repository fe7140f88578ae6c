package articles

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

type ArticleMongoRepository struct {
	Collection *mongo.Collection
}

func NewArticleMongoRepository(db *mongo.Client, dbName string) contracts.ArticleRepository {
	return &ArticleMongoRepository{
		Collection: db.Database(dbName).Collection(constvars.MongoCollectionArticles),
	}
}

// sortDocument maps a sort mode to its mongo sort document. Unknown modes
// keep insertion order.
func sortDocument(sort string) bson.D {
	switch sort {
	case constvars.ArticleSortAlphabetical:
		return bson.D{{Key: "title", Value: 1}}
	case constvars.ArticleSortNewest:
		return bson.D{{Key: "published_date", Value: -1}}
	case constvars.ArticleSortOldest:
		return bson.D{{Key: "published_date", Value: 1}}
	}
	return bson.D{{Key: "_id", Value: 1}}
}

func (repo *ArticleMongoRepository) CreateArticle(ctx context.Context, article *models.Article) (string, error) {
	result, err := repo.Collection.InsertOne(ctx, article)
	if err != nil {
		return "", exceptions.ErrMongoDBInsertDocument(err)
	}
	return result.InsertedID.(primitive.ObjectID).Hex(), nil
}

func (repo *ArticleMongoRepository) InsertMany(ctx context.Context, articles []*models.Article) (int, error) {
	if len(articles) == 0 {
		return 0, nil
	}
	documents := make([]interface{}, 0, len(articles))
	for _, article := range articles {
		documents = append(documents, article)
	}

	result, err := repo.Collection.InsertMany(ctx, documents)
	if err != nil {
		return 0, exceptions.ErrMongoDBInsertDocument(err)
	}
	return len(result.InsertedIDs), nil
}

func (repo *ArticleMongoRepository) FindAll(ctx context.Context, sort string) ([]*models.Article, error) {
	cursor, err := repo.Collection.Find(ctx, bson.M{}, options.Find().SetSort(sortDocument(sort)))
	if err != nil {
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	defer cursor.Close(ctx)

	articles := make([]*models.Article, 0)
	if err := cursor.All(ctx, &articles); err != nil {
		return nil, exceptions.ErrMongoDBIterateDocuments(err)
	}
	return articles, nil
}

func (repo *ArticleMongoRepository) FindByID(ctx context.Context, articleID string) (*models.Article, error) {
	objectID, err := primitive.ObjectIDFromHex(articleID)
	if err != nil {
		return nil, exceptions.ErrMongoDBNotObjectID(err)
	}

	var article models.Article
	err = repo.Collection.FindOne(ctx, bson.M{"_id": objectID}).Decode(&article)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, exceptions.ErrMongoDBFindDocument(err)
	}
	return &article, nil
}

func (repo *ArticleMongoRepository) UpdateArticle(ctx context.Context, article *models.Article) error {
	objectID, err := primitive.ObjectIDFromHex(article.ID)
	if err != nil {
		return exceptions.ErrMongoDBNotObjectID(err)
	}

	update := bson.M{"$set": bson.M{
		"title":      article.Title,
		"content":    article.Content,
		"updated_at": article.UpdatedAt,
	}}
	_, err = repo.Collection.UpdateOne(ctx, bson.M{"_id": objectID}, update)
	if err != nil {
		return exceptions.ErrMongoDBUpdateDocument(err)
	}
	return nil
}

func (repo *ArticleMongoRepository) DeleteByID(ctx context.Context, articleID string) (bool, error) {
	objectID, err := primitive.ObjectIDFromHex(articleID)
	if err != nil {
		return false, exceptions.ErrMongoDBNotObjectID(err)
	}

	result, err := repo.Collection.DeleteOne(ctx, bson.M{"_id": objectID})
	if err != nil {
		return false, exceptions.ErrMongoDBDeleteDocument(err)
	}
	return result.DeletedCount > 0, nil
}

func (repo *ArticleMongoRepository) Count(ctx context.Context) (int64, error) {
	count, err := repo.Collection.CountDocuments(ctx, bson.M{})
	if err != nil {
		return 0, exceptions.ErrMongoDBFindDocument(err)
	}
	return count, nil
}
