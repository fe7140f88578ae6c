package contracts

import (
	"context"
	"mamacare-service/internal/app/models"
	"mamacare-service/internal/pkg/dto/requests"
)

type ArticleRepository interface {
	CreateArticle(ctx context.Context, article *models.Article) (string, error)
	InsertMany(ctx context.Context, articles []*models.Article) (int, error)
	FindAll(ctx context.Context, sort string) ([]*models.Article, error)
	FindByID(ctx context.Context, articleID string) (*models.Article, error)
	UpdateArticle(ctx context.Context, article *models.Article) error
	DeleteByID(ctx context.Context, articleID string) (bool, error)
	Count(ctx context.Context) (int64, error)
}

type ArticleUsecase interface {
	CreateArticle(ctx context.Context, request *requests.CreateArticle) (*models.Article, error)
	FindAll(ctx context.Context, query *requests.ArticleQuery) ([]*models.Article, error)
	FindByID(ctx context.Context, articleID string) (*models.Article, error)
	UpdateArticle(ctx context.Context, articleID string, request *requests.UpdateArticle) (*models.Article, error)
	DeleteArticle(ctx context.Context, articleID string) error
}
