package controllers

import (
	"context"
	"errors"
	"mamacare-service/internal/app/contracts"
	"mamacare-service/internal/app/models"
	"mamacare-service/internal/pkg/constvars"
	"mamacare-service/internal/pkg/dto/requests"
	"mamacare-service/internal/pkg/exceptions"
	"mamacare-service/internal/pkg/utils"
	"net/http"
	"time"

	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type UserController struct {
	Log          *zap.Logger
	UserUsecase  contracts.UserUsecase
	ChildUsecase contracts.ChildUsecase
}

func NewUserController(logger *zap.Logger, userUsecase contracts.UserUsecase, childUsecase contracts.ChildUsecase) *UserController {
	return &UserController{
		Log:          logger,
		UserUsecase:  userUsecase,
		ChildUsecase: childUsecase,
	}
}

func (ctrl *UserController) Register(w http.ResponseWriter, r *http.Request) {
	requestID, ok := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	if !ok {
		ctrl.Log.Error("UserController.Register requestID not found in context")
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrMissingRequestID(nil))
		return
	}

	ctrl.Log.Info("UserController.Register called",
		zap.String(constvars.LoggingRequestIDKey, requestID))

	if err := utils.ParseForm(r); err != nil {
		ctrl.Log.Error("UserController.Register error parsing form",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err))
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	picture, err := utils.OptionalFormFile(r, "picture")
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	request := &requests.RegisterUser{
		Name:           r.FormValue("name"),
		Email:          r.FormValue("email"),
		Password:       r.FormValue("password"),
		Role:           r.FormValue("role"),
		Specialization: r.FormValue("specialization"),
		AvailableFrom:  r.FormValue("available_from"),
		AvailableTo:    r.FormValue("available_to"),
		Picture:        picture,
	}

	// Sanitize request
	utils.SanitizeRegisterUserRequest(request)

	if err := utils.ValidateStruct(request); err != nil {
		ctrl.Log.Error("UserController.Register validation error",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err))
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	result, err := ctrl.UserUsecase.Register(ctx, request)
	if err != nil {
		ctrl.handleUsecaseError(w, requestID, "UserUsecase.Register", err)
		return
	}

	ctrl.Log.Info("UserController.Register succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingUserIDKey, result.User.ID))
	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.RegisterSuccessMessage, result)
}

func (ctrl *UserController) Login(w http.ResponseWriter, r *http.Request) {
	requestID, ok := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	if !ok {
		ctrl.Log.Error("UserController.Login requestID not found in context")
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrMissingRequestID(nil))
		return
	}

	ctrl.Log.Info("UserController.Login called",
		zap.String(constvars.LoggingRequestIDKey, requestID))

	request := new(requests.LoginUser)
	if err := json.NewDecoder(r.Body).Decode(request); err != nil {
		ctrl.Log.Error("UserController.Login error parsing body",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err))
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	utils.SanitizeLoginUserRequest(request)

	if err := utils.ValidateStruct(request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	result, err := ctrl.UserUsecase.Login(ctx, request)
	if err != nil {
		ctrl.handleUsecaseError(w, requestID, "UserUsecase.Login", err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.LoginSuccessMessage, result)
}

func (ctrl *UserController) Logout(w http.ResponseWriter, r *http.Request) {
	requestID, session, ok := ctrl.authenticatedRequest(w, r, "Logout")
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	if err := ctrl.UserUsecase.Logout(ctx, session); err != nil {
		ctrl.handleUsecaseError(w, requestID, "UserUsecase.Logout", err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.LogoutSuccessMessage, nil)
}

func (ctrl *UserController) GetProfile(w http.ResponseWriter, r *http.Request) {
	requestID, session, ok := ctrl.authenticatedRequest(w, r, "GetProfile")
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	result, err := ctrl.UserUsecase.GetProfile(ctx, session)
	if err != nil {
		ctrl.handleUsecaseError(w, requestID, "UserUsecase.GetProfile", err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetProfileSuccessMessage, result)
}

func (ctrl *UserController) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	requestID, session, ok := ctrl.authenticatedRequest(w, r, "UpdateProfile")
	if !ok {
		return
	}

	if err := utils.ParseForm(r); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	picture, err := utils.OptionalFormFile(r, "picture")
	if err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	request := &requests.UpdateProfile{
		Name:    utils.OptionalFormValue(r, "name"),
		Email:   utils.OptionalFormValue(r, "email"),
		Picture: picture,
	}
	utils.SanitizeUpdateProfileRequest(request)

	if err := utils.ValidateStruct(request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	user, err := ctrl.UserUsecase.UpdateProfile(ctx, session, request)
	if err != nil {
		ctrl.handleUsecaseError(w, requestID, "UserUsecase.UpdateProfile", err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.UpdateProfileSuccessMessage, user)
}

func (ctrl *UserController) DeleteAccount(w http.ResponseWriter, r *http.Request) {
	requestID, session, ok := ctrl.authenticatedRequest(w, r, "DeleteAccount")
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	if err := ctrl.UserUsecase.DeleteAccount(ctx, session); err != nil {
		ctrl.handleUsecaseError(w, requestID, "UserUsecase.DeleteAccount", err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.DeleteUserSuccessMessage, nil)
}

func (ctrl *UserController) CreateChild(w http.ResponseWriter, r *http.Request) {
	requestID, session, ok := ctrl.authenticatedRequest(w, r, "CreateChild")
	if !ok {
		return
	}

	request := new(requests.CreateChild)
	if err := json.NewDecoder(r.Body).Decode(request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	if err := utils.ValidateStruct(request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	child, err := ctrl.ChildUsecase.CreateChild(ctx, session, request)
	if err != nil {
		ctrl.handleUsecaseError(w, requestID, "ChildUsecase.CreateChild", err)
		return
	}

	ctrl.Log.Info("UserController.CreateChild succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingChildIDKey, child.ID))
	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.CreateChildSuccessMessage, child)
}

func (ctrl *UserController) FindChildren(w http.ResponseWriter, r *http.Request) {
	requestID, session, ok := ctrl.authenticatedRequest(w, r, "FindChildren")
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	children, err := ctrl.ChildUsecase.FindMine(ctx, session)
	if err != nil {
		ctrl.handleUsecaseError(w, requestID, "ChildUsecase.FindMine", err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetChildrenSuccessMessage, children)
}

func (ctrl *UserController) authenticatedRequest(w http.ResponseWriter, r *http.Request, method string) (string, *models.Session, bool) {
	requestID, ok := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	if !ok {
		ctrl.Log.Error("UserController." + method + " requestID not found in context")
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrMissingRequestID(nil))
		return "", nil, false
	}

	session, ok := r.Context().Value(constvars.CONTEXT_SESSION_DATA_KEY).(*models.Session)
	if !ok {
		ctrl.Log.Error("UserController."+method+" session not found in context",
			zap.String(constvars.LoggingRequestIDKey, requestID))
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrMissingSessionData(nil))
		return "", nil, false
	}

	ctrl.Log.Info("UserController."+method+" called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingUserIDKey, session.UserID))
	return requestID, session, true
}

func (ctrl *UserController) handleUsecaseError(w http.ResponseWriter, requestID, method string, err error) {
	ctrl.Log.Error("Error in "+method,
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Error(err))

	if errors.Is(err, context.DeadlineExceeded) {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
		return
	}
	utils.BuildErrorResponse(ctrl.Log, w, err)
}
