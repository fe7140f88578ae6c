package controllers

import (
	"context"
	"errors"
	"mamacare-service/internal/app/contracts"
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

type ArticleController struct {
	Log            *zap.Logger
	ArticleUsecase contracts.ArticleUsecase
}

func NewArticleController(logger *zap.Logger, articleUsecase contracts.ArticleUsecase) *ArticleController {
	return &ArticleController{
		Log:            logger,
		ArticleUsecase: articleUsecase,
	}
}

func (ctrl *ArticleController) CreateArticle(w http.ResponseWriter, r *http.Request) {
	requestID, ok := ctrl.requestID(w, r, "CreateArticle")
	if !ok {
		return
	}

	request := new(requests.CreateArticle)
	if err := json.NewDecoder(r.Body).Decode(request); err != nil {
		ctrl.Log.Error("ArticleController.CreateArticle error parsing body",
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

	article, err := ctrl.ArticleUsecase.CreateArticle(ctx, request)
	if err != nil {
		ctrl.handleUsecaseError(w, requestID, "CreateArticle", err)
		return
	}

	ctrl.Log.Info("ArticleController.CreateArticle succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingArticleIDKey, article.ID))
	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.CreateArticleSuccessMessage, article)
}

func (ctrl *ArticleController) FindAll(w http.ResponseWriter, r *http.Request) {
	requestID, ok := ctrl.requestID(w, r, "FindAll")
	if !ok {
		return
	}

	query := &requests.ArticleQuery{Sort: r.URL.Query().Get("sort")}
	if err := utils.ValidateStruct(query); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	articles, err := ctrl.ArticleUsecase.FindAll(ctx, query)
	if err != nil {
		ctrl.handleUsecaseError(w, requestID, "FindAll", err)
		return
	}

	ctrl.Log.Info("ArticleController.FindAll succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingResponseLengthKey, len(articles)))
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetArticlesSuccessMessage, articles)
}

func (ctrl *ArticleController) FindByID(w http.ResponseWriter, r *http.Request) {
	requestID, ok := ctrl.requestID(w, r, "FindByID")
	if !ok {
		return
	}

	articleID, ok := ctrl.articleID(w, r)
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	article, err := ctrl.ArticleUsecase.FindByID(ctx, articleID)
	if err != nil {
		ctrl.handleUsecaseError(w, requestID, "FindByID", err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.GetArticleSuccessMessage, article)
}

func (ctrl *ArticleController) UpdateArticle(w http.ResponseWriter, r *http.Request) {
	requestID, ok := ctrl.requestID(w, r, "UpdateArticle")
	if !ok {
		return
	}

	articleID, ok := ctrl.articleID(w, r)
	if !ok {
		return
	}

	request := new(requests.UpdateArticle)
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

	article, err := ctrl.ArticleUsecase.UpdateArticle(ctx, articleID, request)
	if err != nil {
		ctrl.handleUsecaseError(w, requestID, "UpdateArticle", err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.UpdateArticleSuccessMessage, article)
}

func (ctrl *ArticleController) DeleteArticle(w http.ResponseWriter, r *http.Request) {
	requestID, ok := ctrl.requestID(w, r, "DeleteArticle")
	if !ok {
		return
	}

	articleID, ok := ctrl.articleID(w, r)
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), 10*time.Second)
	defer cancel()

	if err := ctrl.ArticleUsecase.DeleteArticle(ctx, articleID); err != nil {
		ctrl.handleUsecaseError(w, requestID, "DeleteArticle", err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.DeleteArticleSuccessMessage, nil)
}

func (ctrl *ArticleController) requestID(w http.ResponseWriter, r *http.Request, method string) (string, bool) {
	requestID, ok := r.Context().Value(constvars.CONTEXT_REQUEST_ID_KEY).(string)
	if !ok {
		ctrl.Log.Error("ArticleController." + method + " requestID not found in context")
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrMissingRequestID(nil))
		return "", false
	}

	ctrl.Log.Info("ArticleController."+method+" called",
		zap.String(constvars.LoggingRequestIDKey, requestID))
	return requestID, true
}

func (ctrl *ArticleController) articleID(w http.ResponseWriter, r *http.Request) (string, bool) {
	param := &requests.URLParamID{ID: chi.URLParam(r, "id")}
	if err := utils.ValidateStruct(param); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrURLParamIDValidation(err, "id"))
		return "", false
	}
	return param.ID, true
}

func (ctrl *ArticleController) handleUsecaseError(w http.ResponseWriter, requestID, method string, err error) {
	ctrl.Log.Error("Error in ArticleUsecase."+method,
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Error(err))

	if errors.Is(err, context.DeadlineExceeded) {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrServerDeadlineExceeded(err))
		return
	}
	utils.BuildErrorResponse(ctrl.Log, w, err)
}
