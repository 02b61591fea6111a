package controllers

import (
	"context"
	"net/http"
	"symptomix-service/internal/app/contracts"
	"symptomix-service/internal/pkg/constvars"
	"symptomix-service/internal/pkg/dto/requests"
	"symptomix-service/internal/pkg/utils"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type AssessmentController struct {
	Log               *zap.Logger
	AssessmentUsecase contracts.AssessmentUsecase
	Timeout           time.Duration
}

func NewAssessmentController(logger *zap.Logger, assessmentUsecase contracts.AssessmentUsecase, timeoutInSeconds int) *AssessmentController {
	return &AssessmentController{
		Log:               logger,
		AssessmentUsecase: assessmentUsecase,
		Timeout:           requestTimeout(timeoutInSeconds),
	}
}

func (ctrl *AssessmentController) Assess(w http.ResponseWriter, r *http.Request) {
	requestID := utils.GetRequestID(r.Context())
	ctrl.Log.Info("AssessmentController.Assess called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	request := new(requests.AssessSymptoms)
	if err := utils.ParseRequestBody(r, request); err != nil {
		ctrl.Log.Error("AssessmentController.Assess error parsing request body",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}
	if request.UserID == "" {
		request.UserID = utils.GetUserIDFromRequest(r)
	}

	ctx, cancel := context.WithTimeout(r.Context(), ctrl.Timeout)
	defer cancel()

	result, err := ctrl.AssessmentUsecase.Assess(ctx, request)
	if err != nil {
		ctrl.Log.Error("AssessmentController.Assess error from usecase",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		writeUsecaseError(ctrl.Log, w, err)
		return
	}

	ctrl.Log.Info("AssessmentController.Assess succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingAssessmentIDKey, result.ID),
	)
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.AssessSymptomsSuccessMessage, result)
}

func (ctrl *AssessmentController) GetAssessment(w http.ResponseWriter, r *http.Request) {
	requestID := utils.GetRequestID(r.Context())
	assessmentID := chi.URLParam(r, constvars.URLParamAssessmentID)
	ctrl.Log.Info("AssessmentController.GetAssessment called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingAssessmentIDKey, assessmentID),
	)

	ctx, cancel := context.WithTimeout(r.Context(), ctrl.Timeout)
	defer cancel()

	result, err := ctrl.AssessmentUsecase.GetAssessment(ctx, assessmentID)
	if err != nil {
		ctrl.Log.Error("AssessmentController.GetAssessment error from usecase",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		writeUsecaseError(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.FindAssessmentSuccessMessage, result)
}

func (ctrl *AssessmentController) GetUserHistory(w http.ResponseWriter, r *http.Request) {
	requestID := utils.GetRequestID(r.Context())
	userID := chi.URLParam(r, constvars.URLParamUserID)
	ctrl.Log.Info("AssessmentController.GetUserHistory called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingUserIDKey, userID),
	)

	ctx, cancel := context.WithTimeout(r.Context(), ctrl.Timeout)
	defer cancel()

	history, err := ctrl.AssessmentUsecase.GetUserHistory(ctx, userID)
	if err != nil {
		ctrl.Log.Error("AssessmentController.GetUserHistory error from usecase",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		writeUsecaseError(ctrl.Log, w, err)
		return
	}

	ctrl.Log.Info("AssessmentController.GetUserHistory succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingRecordCountKey, len(history)),
	)
	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.FindUserHistorySuccessMessage, history)
}
