package contracts

import (
	"context"
	"mamacare-service/internal/app/models"
)

type SessionService interface {
	CreateSession(ctx context.Context, user *models.User) (token string, err error)
	GetSessionData(ctx context.Context, sessionID string) (*models.Session, error)
	DeleteSession(ctx context.Context, sessionID string) error
}
