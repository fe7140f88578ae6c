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
	"github.com/goccy/go-json"
	"go.uber.org/zap"
)

type AppointmentController struct {
	Log                *zap.Logger
	AppointmentUsecase contracts.AppointmentUsecase
}

func NewAppointmentController(logger *zap.Logger, appointmentUsecase contracts.AppointmentUsecase) *AppointmentController {
	return &AppointmentController{
		Log:                logger,
		AppointmentUsecase: appointmentUsecase,
	}
}

func (ctrl *AppointmentController) CreateAppointment(w http.ResponseWriter, r *http.Request) {
	requestID, ok := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	if !ok {
		ctrl.Log.Error("AppointmentController.CreateAppointment requestID not found in context")
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrMissingRequestID(nil))
		return
	}

	session, ok := r.Context().Value(constvars.CONTEXT_SESSION_DATA_KEY).(*models.Session)
	if !ok {
		ctrl.Log.Error("AppointmentController.CreateAppointment session not found in context",
			zap.String(constvars.LoggingRequestIDKey, requestID))
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrMissingSessionData(nil))
		return
	}

	ctrl.Log.Info("AppointmentController.CreateAppointment called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingUserIDKey, session.UserID))

	request := new(requests.CreateAppointment)
	if err := json.NewDecoder(r.Body).Decode(request); err != nil {
		ctrl.Log.Error("AppointmentController.CreateAppointment error parsing body",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err))
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	utils.SanitizeCreateAppointmentRequest(request)

	if err := utils.ValidateStruct(request); err != nil {
		ctrl.Log.Error("AppointmentController.CreateAppointment validation error",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err))
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	appointment, err := ctrl.AppointmentUsecase.CreateAppointment(ctx, session, request)
	if err != nil {
		ctrl.handleUsecaseError(w, requestID, "CreateAppointment", err)
		return
	}

	ctrl.Log.Info("AppointmentController.CreateAppointment succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingAppointmentIDKey, appointment.ID))
	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.CreateAppointmentSuccessMessage, appointment)
}

func (ctrl *AppointmentController) FindAll(w http.ResponseWriter, r *http.Request) {
	requestID, ok := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	if !ok {
		ctrl.Log.Error("AppointmentController.FindAll requestID not found in context")
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrMissingRequestID(nil))
		return
	}

	session, ok := r.Context().Value(constvars.CONTEXT_SESSION_DATA_KEY).(*models.Session)
	if !ok {
		ctrl.Log.Error("AppointmentController.FindAll session not found in context",
			zap.String(constvars.LoggingRequestIDKey, requestID))
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrMissingSessionData(nil))
		return
	}

	query := &requests.AppointmentQuery{Status: r.URL.Query().Get("status")}
	ctrl.Log.Info("AppointmentController.FindAll called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingUserIDKey, session.UserID),
		zap.Any(constvars.LoggingQueryParamsKey, query))

	if err := utils.ValidateStruct(query); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	result, err := ctrl.AppointmentUsecase.FindMine(ctx, session, query)
	if err != nil {
		ctrl.handleUsecaseError(w, requestID, "FindMine", err)
		return
	}

	ctrl.Log.Info("AppointmentController.FindAll succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingResponseLengthKey, len(result)))
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetAppointmentsSuccessMessage, result)
}

func (ctrl *AppointmentController) FindSchedule(w http.ResponseWriter, r *http.Request) {
	requestID, ok := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	if !ok {
		ctrl.Log.Error("AppointmentController.FindSchedule requestID not found in context")
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrMissingRequestID(nil))
		return
	}

	session, ok := r.Context().Value(constvars.CONTEXT_SESSION_DATA_KEY).(*models.Session)
	if !ok {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrMissingSessionData(nil))
		return
	}

	ctrl.Log.Info("AppointmentController.FindSchedule called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingUserIDKey, session.UserID))

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	result, err := ctrl.AppointmentUsecase.FindSchedule(ctx, session)
	if err != nil {
		ctrl.handleUsecaseError(w, requestID, "FindSchedule", err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetScheduleSuccessMessage, result)
}

func (ctrl *AppointmentController) FindByID(w http.ResponseWriter, r *http.Request) {
	requestID, session, appointmentID, ok := ctrl.scopedRequest(w, r, "FindByID")
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	result, err := ctrl.AppointmentUsecase.FindByID(ctx, session, appointmentID)
	if err != nil {
		ctrl.handleUsecaseError(w, requestID, "FindByID", err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetAppointmentSuccessMessage, result)
}

func (ctrl *AppointmentController) UpdateAppointment(w http.ResponseWriter, r *http.Request) {
	requestID, session, appointmentID, ok := ctrl.scopedRequest(w, r, "UpdateAppointment")
	if !ok {
		return
	}

	request := new(requests.UpdateAppointment)
	if err := json.NewDecoder(r.Body).Decode(request); err != nil {
		ctrl.Log.Error("AppointmentController.UpdateAppointment error parsing body",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err))
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	if err := utils.ValidateStruct(request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	appointment, err := ctrl.AppointmentUsecase.UpdateAppointment(ctx, session, appointmentID, request)
	if err != nil {
		ctrl.handleUsecaseError(w, requestID, "UpdateAppointment", err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.UpdateAppointmentSuccessMessage, appointment)
}

func (ctrl *AppointmentController) DeleteAppointment(w http.ResponseWriter, r *http.Request) {
	requestID, session, appointmentID, ok := ctrl.scopedRequest(w, r, "DeleteAppointment")
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	if err := ctrl.AppointmentUsecase.DeleteAppointment(ctx, session, appointmentID); err != nil {
		ctrl.handleUsecaseError(w, requestID, "DeleteAppointment", err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.DeleteAppointmentSuccessMessage, nil)
}

func (ctrl *AppointmentController) CounterAppointment(w http.ResponseWriter, r *http.Request) {
	requestID, session, appointmentID, ok := ctrl.scopedRequest(w, r, "CounterAppointment")
	if !ok {
		return
	}

	request := new(requests.CounterAppointment)
	if err := json.NewDecoder(r.Body).Decode(request); err != nil {
		ctrl.Log.Error("AppointmentController.CounterAppointment error parsing body",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err))
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	if err := utils.ValidateStruct(request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	result, err := ctrl.AppointmentUsecase.CounterAppointment(ctx, session, appointmentID, request)
	if err != nil {
		ctrl.handleUsecaseError(w, requestID, "CounterAppointment", err)
		return
	}

	ctrl.Log.Info("AppointmentController.CounterAppointment succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingAppointmentIDKey, appointmentID))
	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.CounterAppointmentSuccessMessage, result)
}

func (ctrl *AppointmentController) AcceptAppointment(w http.ResponseWriter, r *http.Request) {
	requestID, session, appointmentID, ok := ctrl.scopedRequest(w, r, "AcceptAppointment")
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	appointment, err := ctrl.AppointmentUsecase.AcceptAppointment(ctx, session, appointmentID)
	if err != nil {
		ctrl.handleUsecaseError(w, requestID, "AcceptAppointment", err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.AcceptAppointmentSuccessMessage, appointment)
}

func (ctrl *AppointmentController) RejectAppointment(w http.ResponseWriter, r *http.Request) {
	requestID, session, appointmentID, ok := ctrl.scopedRequest(w, r, "RejectAppointment")
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	appointment, err := ctrl.AppointmentUsecase.RejectAppointment(ctx, session, appointmentID)
	if err != nil {
		ctrl.handleUsecaseError(w, requestID, "RejectAppointment", err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.RejectAppointmentSuccessMessage, appointment)
}

// scopedRequest extracts the request id, the caller's session and the
// validated {id} URL param. It writes the error response itself.
func (ctrl *AppointmentController) scopedRequest(w http.ResponseWriter, r *http.Request, method string) (string, *models.Session, string, bool) {
	requestID, ok := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	if !ok {
		ctrl.Log.Error("AppointmentController." + method + " requestID not found in context")
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrMissingRequestID(nil))
		return "", nil, "", false
	}

	session, ok := r.Context().Value(constvars.CONTEXT_SESSION_DATA_KEY).(*models.Session)
	if !ok {
		ctrl.Log.Error("AppointmentController."+method+" session not found in context",
			zap.String(constvars.LoggingRequestIDKey, requestID))
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrMissingSessionData(nil))
		return "", nil, "", false
	}

	param := &requests.URLParamID{ID: chi.URLParam(r, "id")}
	if err := utils.ValidateStruct(param); err != nil {
		ctrl.Log.Error("AppointmentController."+method+" invalid appointment id",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err))
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrURLParamIDValidation(err, "id"))
		return "", nil, "", false
	}

	ctrl.Log.Info("AppointmentController."+method+" called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingUserIDKey, session.UserID),
		zap.String(constvars.LoggingAppointmentIDKey, param.ID))

	return requestID, session, param.ID, true
}

func (ctrl *AppointmentController) handleUsecaseError(w http.ResponseWriter, requestID, method string, err error) {
	ctrl.Log.Error("Error in AppointmentUsecase."+method,
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Error(err))

	if errors.Is(err, context.DeadlineExceeded) {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
		return
	}
	utils.BuildErrorResponse(ctrl.Log, w, err)
}
