package users

import (
	"context"
	"mamacare-service/internal/app/contracts"
	"mamacare-service/internal/app/models"
	"mamacare-service/internal/app/services/shared/ratelimiter"
	"mamacare-service/internal/pkg/constvars"
	"mamacare-service/internal/pkg/dto/requests"
	"mamacare-service/internal/pkg/dto/responses"
	"mamacare-service/internal/pkg/exceptions"
	"mamacare-service/internal/pkg/utils"
	"mime/multipart"
	"time"

	"go.uber.org/zap"
)

type LoginLimit struct {
	MaxAttempts     int
	WindowInSeconds int
}

type userUsecase struct {
	UserRepository       contracts.UserRepository
	ChildRepository      contracts.ChildRepository
	SessionService       contracts.SessionService
	Storage              contracts.Storage
	LoginLimiter         *ratelimiter.ResourceLimiter
	LoginLimit           LoginLimit
	ProfilePictureFolder string
	Log                  *zap.Logger
}

func NewUserUsecase(
	userRepository contracts.UserRepository,
	childRepository contracts.ChildRepository,
	sessionService contracts.SessionService,
	storage contracts.Storage,
	loginLimiter *ratelimiter.ResourceLimiter,
	loginLimit LoginLimit,
	profilePictureFolder string,
	logger *zap.Logger,
) contracts.UserUsecase {
	return &userUsecase{
		UserRepository:       userRepository,
		ChildRepository:      childRepository,
		SessionService:       sessionService,
		Storage:              storage,
		LoginLimiter:         loginLimiter,
		LoginLimit:           loginLimit,
		ProfilePictureFolder: profilePictureFolder,
		Log:                  logger,
	}
}

func (uc *userUsecase) Register(ctx context.Context, request *requests.RegisterUser) (*responses.Auth, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("userUsecase.Register called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingEmailKey, request.Email),
		zap.String(constvars.LoggingUserRoleKey, request.Role))

	// Check if a user with the same email already exists
	existingUser, err := uc.UserRepository.FindByEmail(ctx, request.Email)
	if err != nil {
		return nil, err
	}
	if existingUser != nil {
		return nil, exceptions.ErrUserAlreadyExist(nil)
	}

	isDoctor := request.Role == constvars.RoleDoctor
	if isDoctor && (request.Specialization == "" || request.AvailableFrom == "" || request.AvailableTo == "") {
		return nil, exceptions.ErrDoctorFieldsRequired(nil)
	}

	picture := constvars.DefaultUserPicture
	if isDoctor {
		picture = constvars.DefaultDoctorPicture
	}
	if request.Picture != nil {
		picture, err = uc.uploadPicture(ctx, request.Picture)
		if err != nil {
			return nil, err
		}
	}

	hashedPassword, err := utils.HashPassword(request.Password)
	if err != nil {
		return nil, exceptions.ErrHashPassword(err)
	}

	user := &models.User{
		Name:     request.Name,
		Email:    request.Email,
		Password: hashedPassword,
		Role:     request.Role,
		Picture:  picture,
	}
	if isDoctor {
		user.Specialization = &request.Specialization
		user.AvailableFrom = &request.AvailableFrom
		user.AvailableTo = &request.AvailableTo
	}
	user.Touch(time.Now())

	user.ID, err = uc.UserRepository.CreateUser(ctx, user)
	if err != nil {
		return nil, err
	}

	token, err := uc.SessionService.CreateSession(ctx, user)
	if err != nil {
		return nil, err
	}

	uc.Log.Info("userUsecase.Register succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingUserIDKey, user.ID))
	return &responses.Auth{Token: token, User: user}, nil
}

func (uc *userUsecase) Login(ctx context.Context, request *requests.LoginUser) (*responses.Auth, error) {
	requestID := utils.GetRequestID(ctx)

	limit, err := uc.LoginLimiter.ApplyResourceLimiter(ctx, &ratelimiter.ApplyResourceLimiterInput{
		ResourceName:      request.Email,
		LimiterGroupName:  constvars.LoginLimiterGroup,
		WindowDurationSec: uc.LoginLimit.WindowInSeconds,
		MaxQuota:          uc.LoginLimit.MaxAttempts,
	})
	if err != nil {
		return nil, err
	}
	if !limit.Allowed {
		uc.Log.Warn("userUsecase.Login rate limited",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingEmailKey, request.Email),
			zap.Int("retry_after_seconds", limit.RetryAfterSecs))
		return nil, exceptions.ErrTooManyLoginAttempts(nil)
	}

	user, err := uc.UserRepository.FindByEmail(ctx, request.Email)
	if err != nil {
		return nil, err
	}
	if user == nil || !utils.CheckPasswordHash(request.Password, user.Password) {
		return nil, exceptions.ErrInvalidCredentials(nil)
	}

	token, err := uc.SessionService.CreateSession(ctx, user)
	if err != nil {
		return nil, err
	}

	uc.Log.Info("userUsecase.Login succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingUserIDKey, user.ID))
	return &responses.Auth{Token: token, User: user}, nil
}

func (uc *userUsecase) Logout(ctx context.Context, session *models.Session) error {
	return uc.SessionService.DeleteSession(ctx, session.SessionID)
}

// GetProfile returns the caller with a fresh token. Parents also get their
// children.
func (uc *userUsecase) GetProfile(ctx context.Context, session *models.Session) (*responses.Profile, error) {
	user, err := uc.findSessionUser(ctx, session)
	if err != nil {
		return nil, err
	}

	token, err := uc.SessionService.CreateSession(ctx, user)
	if err != nil {
		return nil, err
	}

	profile := &responses.Profile{Token: token, User: user}
	if !user.IsDoctor() {
		profile.Children, err = uc.ChildRepository.FindByParentID(ctx, user.ID)
		if err != nil {
			return nil, err
		}
	}
	return profile, nil
}

func (uc *userUsecase) UpdateProfile(ctx context.Context, session *models.Session, request *requests.UpdateProfile) (*models.User, error) {
	if request.Name == nil && request.Email == nil && request.Picture == nil {
		return nil, exceptions.ErrNothingToUpdate(nil)
	}

	user, err := uc.findSessionUser(ctx, session)
	if err != nil {
		return nil, err
	}

	if request.Email != nil && *request.Email != user.Email {
		existingUser, err := uc.UserRepository.FindByEmail(ctx, *request.Email)
		if err != nil {
			return nil, err
		}
		if existingUser != nil {
			return nil, exceptions.ErrUserAlreadyExist(nil)
		}
		user.Email = *request.Email
	}
	if request.Name != nil {
		user.Name = *request.Name
	}
	if request.Picture != nil {
		user.Picture, err = uc.uploadPicture(ctx, request.Picture)
		if err != nil {
			return nil, err
		}
	}
	user.Touch(time.Now())

	if err := uc.UserRepository.UpdateUser(ctx, user); err != nil {
		return nil, err
	}
	return user, nil
}

// DeleteAccount removes the caller, their children and the current session.
func (uc *userUsecase) DeleteAccount(ctx context.Context, session *models.Session) error {
	requestID := utils.GetRequestID(ctx)

	user, err := uc.findSessionUser(ctx, session)
	if err != nil {
		return err
	}

	if err := uc.ChildRepository.DeleteByParentID(ctx, user.ID); err != nil {
		return err
	}
	if err := uc.UserRepository.DeleteByID(ctx, user.ID); err != nil {
		return err
	}
	if err := uc.SessionService.DeleteSession(ctx, session.SessionID); err != nil {
		return err
	}

	uc.Log.Info("userUsecase.DeleteAccount succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingUserIDKey, user.ID))
	return nil
}

func (uc *userUsecase) findSessionUser(ctx context.Context, session *models.Session) (*models.User, error) {
	user, err := uc.UserRepository.FindByID(ctx, session.UserID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, exceptions.ErrUserNotExist(nil)
	}
	return user, nil
}

func (uc *userUsecase) uploadPicture(ctx context.Context, header *multipart.FileHeader) (string, error) {
	file, err := header.Open()
	if err != nil {
		return "", exceptions.ErrImageValidation(err)
	}
	defer file.Close()

	return uc.Storage.UploadImage(ctx, file, header.Size, uc.ProfilePictureFolder)
}
