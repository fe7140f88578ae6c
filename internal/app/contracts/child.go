package contracts

import (
	"context"
	"mamacare-service/internal/app/models"
	"mamacare-service/internal/pkg/dto/requests"
)

type ChildRepository interface {
	CreateChild(ctx context.Context, child *models.Child) (string, error)
	FindByID(ctx context.Context, childID string) (*models.Child, error)
	FindByParentID(ctx context.Context, parentID string) ([]*models.Child, error)
	FindByIDs(ctx context.Context, childIDs []string) ([]*models.Child, error)
	DeleteByParentID(ctx context.Context, parentID string) error
}

type ChildUsecase interface {
	CreateChild(ctx context.Context, session *models.Session, request *requests.CreateChild) (*models.Child, error)
	FindMine(ctx context.Context, session *models.Session) ([]*models.Child, error)
}
