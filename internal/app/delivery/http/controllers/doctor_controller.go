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

type DoctorController struct {
	Log           *zap.Logger
	DoctorUsecase contracts.DoctorUsecase
}

func NewDoctorController(logger *zap.Logger, doctorUsecase contracts.DoctorUsecase) *DoctorController {
	return &DoctorController{
		Log:           logger,
		DoctorUsecase: doctorUsecase,
	}
}

func (ctrl *DoctorController) FindAll(w http.ResponseWriter, r *http.Request) {
	requestID, ok := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	if !ok {
		ctrl.Log.Error("DoctorController.FindAll requestID not found in context")
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrMissingRequestID(nil))
		return
	}

	ctrl.Log.Info("DoctorController.FindAll called",
		zap.String(constvars.LoggingRequestIDKey, requestID))

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	doctors, err := ctrl.DoctorUsecase.FindAll(ctx)
	if err != nil {
		ctrl.Log.Error("Error in DoctorUsecase.FindAll",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err))
		if errors.Is(err, context.DeadlineExceeded) {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctrl.Log.Info("DoctorController.FindAll succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingResponseLengthKey, len(doctors)))
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetDoctorsSuccessMessage, doctors)
}

func (ctrl *DoctorController) UpdateDoctor(w http.ResponseWriter, r *http.Request) {
	requestID, ok := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	if !ok {
		ctrl.Log.Error("DoctorController.UpdateDoctor requestID not found in context")
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrMissingRequestID(nil))
		return
	}

	session, ok := r.Context().Value(constvars.CONTEXT_SESSION_DATA_KEY).(*models.Session)
	if !ok {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrMissingSessionData(nil))
		return
	}

	param := &requests.URLParamID{ID: chi.URLParam(r, "id")}
	if err := utils.ValidateStruct(param); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrURLParamIDValidation(err, "id"))
		return
	}

	ctrl.Log.Info("DoctorController.UpdateDoctor called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingUserIDKey, session.UserID),
		zap.String(constvars.LoggingUserRoleKey, session.Role))

	request := new(requests.UpdateDoctor)
	if err := json.NewDecoder(r.Body).Decode(request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrCannotParseJSON(err))
		return
	}

	utils.SanitizeUpdateDoctorRequest(request)

	if err := utils.ValidateStruct(request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	doctor, err := ctrl.DoctorUsecase.UpdateDoctor(ctx, session, param.ID, request)
	if err != nil {
		ctrl.Log.Error("Error in DoctorUsecase.UpdateDoctor",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err))
		if errors.Is(err, context.DeadlineExceeded) {
			utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
			return
		}
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.UpdateDoctorSuccessMessage, doctor)
}
