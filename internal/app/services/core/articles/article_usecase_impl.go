package articles

import (
	"context"
	"mamacare-service/internal/app/contracts"
	"mamacare-service/internal/app/models"
	"mamacare-service/internal/pkg/constvars"
	"mamacare-service/internal/pkg/dto/requests"
	"mamacare-service/internal/pkg/exceptions"
	"mamacare-service/internal/pkg/utils"
	"strings"
	"time"

	"go.uber.org/zap"
)

type articleUsecase struct {
	ArticleRepository contracts.ArticleRepository
	Log               *zap.Logger
}

func NewArticleUsecase(articleRepository contracts.ArticleRepository, logger *zap.Logger) contracts.ArticleUsecase {
	return &articleUsecase{
		ArticleRepository: articleRepository,
		Log:               logger,
	}
}

func (uc *articleUsecase) CreateArticle(ctx context.Context, request *requests.CreateArticle) (*models.Article, error) {
	now := time.Now().UTC()
	article := &models.Article{
		Author:        strings.TrimSpace(request.Author),
		PublishedDate: now,
		Title:         strings.TrimSpace(request.Title),
		Content:       request.Content,
		ArticleCover:  request.ArticleCover,
		AuthorImage:   request.AuthorImage,
	}
	if request.PublishedDate != nil {
		article.PublishedDate = request.PublishedDate.UTC()
	}
	article.Touch(now)

	var err error
	article.ID, err = uc.ArticleRepository.CreateArticle(ctx, article)
	if err != nil {
		return nil, err
	}

	uc.Log.Info("articleUsecase.CreateArticle succeeded",
		zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
		zap.String(constvars.LoggingArticleIDKey, article.ID))
	return article, nil
}

func (uc *articleUsecase) FindAll(ctx context.Context, query *requests.ArticleQuery) ([]*models.Article, error) {
	return uc.ArticleRepository.FindAll(ctx, query.Sort)
}

func (uc *articleUsecase) FindByID(ctx context.Context, articleID string) (*models.Article, error) {
	article, err := uc.ArticleRepository.FindByID(ctx, articleID)
	if err != nil {
		return nil, err
	}
	if article == nil {
		return nil, exceptions.ErrArticleNotExist(nil)
	}
	return article, nil
}

func (uc *articleUsecase) UpdateArticle(ctx context.Context, articleID string, request *requests.UpdateArticle) (*models.Article, error) {
	if request.IsEmpty() {
		return nil, exceptions.ErrNothingToUpdate(nil)
	}

	article, err := uc.FindByID(ctx, articleID)
	if err != nil {
		return nil, err
	}

	if request.Title != nil {
		article.Title = strings.TrimSpace(*request.Title)
	}
	if request.Content != nil {
		article.Content = *request.Content
	}
	article.Touch(time.Now())

	if err := uc.ArticleRepository.UpdateArticle(ctx, article); err != nil {
		return nil, err
	}
	return article, nil
}

func (uc *articleUsecase) DeleteArticle(ctx context.Context, articleID string) error {
	deleted, err := uc.ArticleRepository.DeleteByID(ctx, articleID)
	if err != nil {
		return err
	}
	if !deleted {
		return exceptions.ErrArticleNotExist(nil)
	}

	uc.Log.Info("articleUsecase.DeleteArticle succeeded",
		zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
		zap.String(constvars.LoggingArticleIDKey, articleID))
	return nil
}
