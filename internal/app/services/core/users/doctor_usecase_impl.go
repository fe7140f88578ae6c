package users

import (
	"context"
	"mamacare-service/internal/app/contracts"
	"mamacare-service/internal/app/models"
	"mamacare-service/internal/pkg/constvars"
	"mamacare-service/internal/pkg/dto/requests"
	"mamacare-service/internal/pkg/exceptions"
	"mamacare-service/internal/pkg/utils"
	"time"

	"go.uber.org/zap"
)

type doctorUsecase struct {
	UserRepository contracts.UserRepository
	Log            *zap.Logger
}

func NewDoctorUsecase(userRepository contracts.UserRepository, logger *zap.Logger) contracts.DoctorUsecase {
	return &doctorUsecase{
		UserRepository: userRepository,
		Log:            logger,
	}
}

func (uc *doctorUsecase) FindAll(ctx context.Context) ([]*models.User, error) {
	return uc.UserRepository.FindByRole(ctx, constvars.RoleDoctor)
}

func (uc *doctorUsecase) UpdateDoctor(ctx context.Context, session *models.Session, doctorID string, request *requests.UpdateDoctor) (*models.User, error) {
	if !session.IsAdmin() {
		return nil, exceptions.ErrNotMatchRoleType(nil, session.Role, "update doctors")
	}
	if request.IsEmpty() {
		return nil, exceptions.ErrNothingToUpdate(nil)
	}

	doctor, err := uc.UserRepository.FindByID(ctx, doctorID)
	if err != nil {
		return nil, err
	}
	if doctor == nil || !doctor.IsDoctor() {
		return nil, exceptions.ErrDoctorNotExist(nil)
	}

	if request.Email != nil && *request.Email != doctor.Email {
		existingUser, err := uc.UserRepository.FindByEmail(ctx, *request.Email)
		if err != nil {
			return nil, err
		}
		if existingUser != nil {
			return nil, exceptions.ErrUserAlreadyExist(nil)
		}
		doctor.Email = *request.Email
	}
	if request.Name != nil {
		doctor.Name = *request.Name
	}
	if request.Specialization != nil {
		doctor.Specialization = request.Specialization
	}
	if request.AvailableFrom != nil {
		doctor.AvailableFrom = request.AvailableFrom
	}
	if request.AvailableTo != nil {
		doctor.AvailableTo = request.AvailableTo
	}
	doctor.Touch(time.Now())

	if err := uc.UserRepository.UpdateUser(ctx, doctor); err != nil {
		return nil, err
	}

	uc.Log.Info("doctorUsecase.UpdateDoctor succeeded",
		zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
		zap.String(constvars.LoggingUserIDKey, doctor.ID))
	return doctor, nil
}
