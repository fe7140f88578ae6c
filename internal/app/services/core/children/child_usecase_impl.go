package children

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

type childUsecase struct {
	ChildRepository contracts.ChildRepository
	Log             *zap.Logger
}

func NewChildUsecase(childRepository contracts.ChildRepository, logger *zap.Logger) contracts.ChildUsecase {
	return &childUsecase{
		ChildRepository: childRepository,
		Log:             logger,
	}
}

func (uc *childUsecase) CreateChild(ctx context.Context, session *models.Session, request *requests.CreateChild) (*models.Child, error) {
	if session.IsDoctor() {
		return nil, exceptions.ErrNotMatchRoleType(nil, session.Role, "add children")
	}

	dateOfBirth, err := utils.ParseDateOfBirth(request.DateOfBirth)
	if err != nil {
		return nil, err
	}

	child := &models.Child{
		ParentID:    session.UserID,
		Name:        strings.TrimSpace(request.Name),
		DateOfBirth: dateOfBirth,
		Sex:         request.Sex,
		Height:      request.Height,
		Weight:      request.Weight,
	}
	child.Touch(time.Now())

	child.ID, err = uc.ChildRepository.CreateChild(ctx, child)
	if err != nil {
		return nil, err
	}

	uc.Log.Info("childUsecase.CreateChild succeeded",
		zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
		zap.String(constvars.LoggingChildIDKey, child.ID))
	return child, nil
}

func (uc *childUsecase) FindMine(ctx context.Context, session *models.Session) ([]*models.Child, error) {
	return uc.ChildRepository.FindByParentID(ctx, session.UserID)
}
