package contracts

import (
	"context"
	"symptomix-service/internal/app/models"
	"symptomix-service/internal/pkg/dto/requests"
)

type AssessmentUsecase interface {
	Assess(ctx context.Context, request *requests.AssessSymptoms) (*models.AssessmentResult, error)
	GetAssessment(ctx context.Context, assessmentID string) (*models.AssessmentResult, error)
	GetUserHistory(ctx context.Context, userID string) ([]*models.Assessment, error)
}

type AssessmentEventPublisher interface {
	PublishAssessmentCompleted(ctx context.Context, event *models.AssessmentCompletedEvent) error
}
