package contracts

import (
	"context"
	"symptomix-service/internal/app/models"
	"symptomix-service/internal/pkg/dto/requests"
)

type UserUsecase interface {
	CreateUser(ctx context.Context, request *requests.CreateUser) (*models.User, error)
	GetUser(ctx context.Context, userID string) (*models.User, error)
	UpdateUser(ctx context.Context, userID string, request *requests.UpdateUser) (*models.User, error)
	DeleteUser(ctx context.Context, userID string) error
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
}
