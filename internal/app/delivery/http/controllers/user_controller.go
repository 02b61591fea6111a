package controllers

import (
	"context"
	"net/http"
	"strings"
	"symptomix-service/internal/app/contracts"
	"symptomix-service/internal/pkg/constvars"
	"symptomix-service/internal/pkg/dto/requests"
	"symptomix-service/internal/pkg/exceptions"
	"symptomix-service/internal/pkg/utils"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type UserController struct {
	Log         *zap.Logger
	UserUsecase contracts.UserUsecase
	Timeout     time.Duration
}

func NewUserController(logger *zap.Logger, userUsecase contracts.UserUsecase, timeoutInSeconds int) *UserController {
	return &UserController{
		Log:         logger,
		UserUsecase: userUsecase,
		Timeout:     requestTimeout(timeoutInSeconds),
	}
}

func (ctrl *UserController) CreateUser(w http.ResponseWriter, r *http.Request) {
	requestID := utils.GetRequestID(r.Context())
	ctrl.Log.Info("UserController.CreateUser called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	request := new(requests.CreateUser)
	if err := utils.ParseRequestBody(r, request); err != nil {
		ctrl.Log.Error("UserController.CreateUser error parsing request body",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), ctrl.Timeout)
	defer cancel()

	user, err := ctrl.UserUsecase.CreateUser(ctx, request)
	if err != nil {
		ctrl.Log.Error("UserController.CreateUser error from usecase",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		writeUsecaseError(ctrl.Log, w, err)
		return
	}

	ctrl.Log.Info("UserController.CreateUser succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingUserIDKey, user.ID),
	)
	utils.BuildSuccessResponse(w, constvars.StatusCreated, constvars.CreateUserSuccessMessage, user)
}

func (ctrl *UserController) GetUser(w http.ResponseWriter, r *http.Request) {
	requestID := utils.GetRequestID(r.Context())
	userID := chi.URLParam(r, constvars.URLParamUserID)
	ctrl.Log.Info("UserController.GetUser called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingUserIDKey, userID),
	)

	ctx, cancel := context.WithTimeout(r.Context(), ctrl.Timeout)
	defer cancel()

	user, err := ctrl.UserUsecase.GetUser(ctx, userID)
	if err != nil {
		writeUsecaseError(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.FindUserSuccessMessage, user)
}

// GetUserByEmail serves GET /users?email=.
func (ctrl *UserController) GetUserByEmail(w http.ResponseWriter, r *http.Request) {
	requestID := utils.GetRequestID(r.Context())
	email := strings.TrimSpace(r.URL.Query().Get(constvars.QueryParamEmail))
	ctrl.Log.Info("UserController.GetUserByEmail called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	if err := utils.ValidateStruct(&requests.FindUserByEmail{Email: email}); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, exceptions.ErrInputValidation(err))
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), ctrl.Timeout)
	defer cancel()

	user, err := ctrl.UserUsecase.GetUserByEmail(ctx, email)
	if err != nil {
		writeUsecaseError(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.FindUserSuccessMessage, user)
}

func (ctrl *UserController) UpdateUser(w http.ResponseWriter, r *http.Request) {
	requestID := utils.GetRequestID(r.Context())
	userID := chi.URLParam(r, constvars.URLParamUserID)
	ctrl.Log.Info("UserController.UpdateUser called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingUserIDKey, userID),
	)

	request := new(requests.UpdateUser)
	if err := utils.ParseRequestBody(r, request); err != nil {
		utils.BuildErrorResponse(ctrl.Log, w, err)
		return
	}

	ctx, cancel := context.WithTimeout(r.Context(), ctrl.Timeout)
	defer cancel()

	user, err := ctrl.UserUsecase.UpdateUser(ctx, userID, request)
	if err != nil {
		ctrl.Log.Error("UserController.UpdateUser error from usecase",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		writeUsecaseError(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.UpdateUserSuccessMessage, user)
}

func (ctrl *UserController) DeleteUser(w http.ResponseWriter, r *http.Request) {
	requestID := utils.GetRequestID(r.Context())
	userID := chi.URLParam(r, constvars.URLParamUserID)
	ctrl.Log.Info("UserController.DeleteUser called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingUserIDKey, userID),
	)

	ctx, cancel := context.WithTimeout(r.Context(), ctrl.Timeout)
	defer cancel()

	if err := ctrl.UserUsecase.DeleteUser(ctx, userID); err != nil {
		ctrl.Log.Error("UserController.DeleteUser error from usecase",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		writeUsecaseError(ctrl.Log, w, err)
		return
	}

	utils.BuildSuccessResponse(w, constvars.StatusOK, constvars.DeleteUserSuccessMessage, nil)
}
