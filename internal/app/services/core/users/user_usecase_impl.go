package users

import (
	"context"
	"strings"
	"symptomix-service/internal/app/contracts"
	"symptomix-service/internal/app/models"
	"symptomix-service/internal/pkg/constvars"
	"symptomix-service/internal/pkg/dto/requests"
	"symptomix-service/internal/pkg/exceptions"
	"symptomix-service/internal/pkg/utils"

	"go.uber.org/zap"
)

type userUsecase struct {
	UserStore contracts.RecordStore[*models.User]
	Log       *zap.Logger
}

func NewUserUsecase(userStore contracts.RecordStore[*models.User], logger *zap.Logger) contracts.UserUsecase {
	return &userUsecase{
		UserStore: userStore,
		Log:       logger,
	}
}

func (uc *userUsecase) CreateUser(ctx context.Context, request *requests.CreateUser) (*models.User, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("userUsecase.CreateUser called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	user := &models.User{
		Name:              strings.TrimSpace(request.Name),
		Email:             request.Email,
		Age:               request.Age,
		Gender:            request.Gender,
		Phone:             request.Phone,
		EmergencyContact:  request.EmergencyContact,
		MedicalConditions: request.MedicalConditions,
		Allergies:         request.Allergies,
		Medications:       request.Medications,
	}

	if _, err := uc.UserStore.Add(ctx, constvars.CollectionUsers, user); err != nil {
		uc.Log.Error("userUsecase.CreateUser error adding user",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}

	uc.Log.Info("userUsecase.CreateUser succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingUserIDKey, user.ID),
	)
	return user, nil
}

func (uc *userUsecase) GetUser(ctx context.Context, userID string) (*models.User, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("userUsecase.GetUser called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingUserIDKey, userID),
	)

	user, found := uc.UserStore.GetByID(ctx, constvars.CollectionUsers, userID)
	if !found {
		return nil, exceptions.ErrUserNotFound(nil, userID)
	}
	return user, nil
}

// UpdateUser replaces the stored profile. The creation time of the existing
// record is kept.
func (uc *userUsecase) UpdateUser(ctx context.Context, userID string, request *requests.UpdateUser) (*models.User, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("userUsecase.UpdateUser called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingUserIDKey, userID),
	)

	existing, found := uc.UserStore.GetByID(ctx, constvars.CollectionUsers, userID)
	if !found {
		return nil, exceptions.ErrUserNotFound(nil, userID)
	}

	user := &models.User{
		Name:              strings.TrimSpace(request.Name),
		Email:             request.Email,
		Age:               request.Age,
		Gender:            request.Gender,
		Phone:             request.Phone,
		EmergencyContact:  request.EmergencyContact,
		MedicalConditions: request.MedicalConditions,
		Allergies:         request.Allergies,
		Medications:       request.Medications,
	}
	if user.Name == "" {
		user.Name = existing.Name
	}
	user.SetCreatedAt(existing.CreatedAt)

	updated, err := uc.UserStore.Update(ctx, constvars.CollectionUsers, userID, user)
	if err != nil {
		uc.Log.Error("userUsecase.UpdateUser error updating user",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return nil, err
	}
	if !updated {
		return nil, exceptions.ErrUserNotFound(nil, userID)
	}

	uc.Log.Info("userUsecase.UpdateUser succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingUserIDKey, userID),
	)
	return user, nil
}

func (uc *userUsecase) DeleteUser(ctx context.Context, userID string) error {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("userUsecase.DeleteUser called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingUserIDKey, userID),
	)

	deleted, err := uc.UserStore.Delete(ctx, constvars.CollectionUsers, userID)
	if err != nil {
		uc.Log.Error("userUsecase.DeleteUser error deleting user",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.Error(err),
		)
		return err
	}
	if !deleted {
		return exceptions.ErrUserNotFound(nil, userID)
	}

	uc.Log.Info("userUsecase.DeleteUser succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingUserIDKey, userID),
	)
	return nil
}

// GetUserByEmail matches emails case-insensitively and returns the first hit.
func (uc *userUsecase) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("userUsecase.GetUserByEmail called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	matches := uc.UserStore.Find(ctx, constvars.CollectionUsers, func(user *models.User) bool {
		return user.Email != "" && strings.EqualFold(user.Email, email)
	})
	if len(matches) == 0 {
		return nil, exceptions.ErrUserNotFound(nil, email)
	}
	return matches[0], nil
}
