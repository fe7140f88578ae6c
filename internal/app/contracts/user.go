package contracts

import (
	"context"
	"mamacare-service/internal/app/models"
	"mamacare-service/internal/pkg/dto/requests"
	"mamacare-service/internal/pkg/dto/responses"
)

type UserRepository interface {
	CreateUser(ctx context.Context, user *models.User) (string, error)
	FindByID(ctx context.Context, userID string) (*models.User, error)
	FindByEmail(ctx context.Context, email string) (*models.User, error)
	FindByIDs(ctx context.Context, userIDs []string) ([]*models.User, error)
	FindByRole(ctx context.Context, role string) ([]*models.User, error)
	UpdateUser(ctx context.Context, user *models.User) error
	DeleteByID(ctx context.Context, userID string) error
}

type UserUsecase interface {
	Register(ctx context.Context, request *requests.RegisterUser) (*responses.Auth, error)
	Login(ctx context.Context, request *requests.LoginUser) (*responses.Auth, error)
	Logout(ctx context.Context, session *models.Session) error
	GetProfile(ctx context.Context, session *models.Session) (*responses.Profile, error)
	UpdateProfile(ctx context.Context, session *models.Session, request *requests.UpdateProfile) (*models.User, error)
	DeleteAccount(ctx context.Context, session *models.Session) error
}

type DoctorUsecase interface {
	FindAll(ctx context.Context) ([]*models.User, error)
	UpdateDoctor(ctx context.Context, session *models.Session, doctorID string, request *requests.UpdateDoctor) (*models.User, error)
}
