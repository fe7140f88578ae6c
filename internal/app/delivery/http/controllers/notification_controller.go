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

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type NotificationController struct {
	Log                 *zap.Logger
	NotificationUsecase contracts.NotificationUsecase
}

func NewNotificationController(logger *zap.Logger, notificationUsecase contracts.NotificationUsecase) *NotificationController {
	return &NotificationController{
		Log:                 logger,
		NotificationUsecase: notificationUsecase,
	}
}

func (ctrl *NotificationController) FindAll(w http.ResponseWriter, r *http.Request) {
	requestID, session, ok := ctrl.authenticatedRequest(w, r, "FindAll")
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	notifications, err := ctrl.NotificationUsecase.FindMine(ctx, session)
	if err != nil {
		ctrl.handleUsecaseError(w, requestID, "FindMine", err)
		return
	}

	ctrl.Log.Info("NotificationController.FindAll succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingResponseLengthKey, len(notifications)))
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetNotificationsSuccessMessage, notifications)
}

func (ctrl *NotificationController) FindByID(w http.ResponseWriter, r *http.Request) {
	requestID, session, ok := ctrl.authenticatedRequest(w, r, "FindByID")
	if !ok {
		return
	}

	notificationID, ok := ctrl.notificationID(w, r)
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	notification, err := ctrl.NotificationUsecase.FindByID(ctx, session, notificationID)
	if err != nil {
		ctrl.handleUsecaseError(w, requestID, "FindByID", err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetNotificationSuccessMessage, notification)
}

func (ctrl *NotificationController) MarkAsRead(w http.ResponseWriter, r *http.Request) {
	requestID, session, ok := ctrl.authenticatedRequest(w, r, "MarkAsRead")
	if !ok {
		return
	}

	notificationID, ok := ctrl.notificationID(w, r)
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	notification, err := ctrl.NotificationUsecase.MarkAsRead(ctx, session, notificationID)
	if err != nil {
		ctrl.handleUsecaseError(w, requestID, "MarkAsRead", err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.ReadNotificationSuccessMessage, notification)
}

func (ctrl *NotificationController) DeleteNotification(w http.ResponseWriter, r *http.Request) {
	requestID, session, ok := ctrl.authenticatedRequest(w, r, "DeleteNotification")
	if !ok {
		return
	}

	notificationID, ok := ctrl.notificationID(w, r)
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	if err := ctrl.NotificationUsecase.DeleteNotification(ctx, session, notificationID); err != nil {
		ctrl.handleUsecaseError(w, requestID, "DeleteNotification", err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.DeleteNotificationSuccessMessage, nil)
}

func (ctrl *NotificationController) authenticatedRequest(w http.ResponseWriter, r *http.Request, method string) (string, *models.Session, bool) {
	requestID, ok := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	if !ok {
		ctrl.Log.Error("NotificationController." + method + " requestID not found in context")
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrMissingRequestID(nil))
		return "", nil, false
	}

	session, ok := r.Context().Value(constvars.CONTEXT_SESSION_DATA_KEY).(*models.Session)
	if !ok {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrMissingSessionData(nil))
		return "", nil, false
	}

	ctrl.Log.Info("NotificationController."+method+" called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingUserIDKey, session.UserID))
	return requestID, session, true
}

func (ctrl *NotificationController) notificationID(w http.ResponseWriter, r *http.Request) (string, bool) {
	param := &requests.URLParamID{ID: chi.URLParam(r, "id")}
	if err := utils.ValidateStruct(param); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrURLParamIDValidation(err, "id"))
		return "", false
	}
	return param.ID, true
}

func (ctrl *NotificationController) handleUsecaseError(w http.ResponseWriter, requestID, method string, err error) {
	ctrl.Log.Error("Error in NotificationUsecase."+method,
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Error(err))

	if errors.Is(err, context.DeadlineExceeded) {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
		return
	}
	utils.BuildErrorResponse(ctrl.Log, w, err)
}
