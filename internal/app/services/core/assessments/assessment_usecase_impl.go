package assessments

import (
	"context"
	"sort"
	"symptomix-service/internal/app/contracts"
	"symptomix-service/internal/app/models"
	"symptomix-service/internal/app/services/core/diagnostics"
	"symptomix-service/internal/pkg/constvars"
	"symptomix-service/internal/pkg/dto/requests"
	"symptomix-service/internal/pkg/exceptions"
	"symptomix-service/internal/pkg/utils"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type assessmentUsecase struct {
	AssessmentStore contracts.RecordStore[*models.Assessment]
	EventPublisher  contracts.AssessmentEventPublisher
	Engine          *diagnostics.Engine
	Log             *zap.Logger
	now             func() time.Time
}

func NewAssessmentUsecase(
	assessmentStore contracts.RecordStore[*models.Assessment],
	eventPublisher contracts.AssessmentEventPublisher,
	engine *diagnostics.Engine,
	logger *zap.Logger,
) contracts.AssessmentUsecase {
	return &assessmentUsecase{
		AssessmentStore: assessmentStore,
		EventPublisher:  eventPublisher,
		Engine:          engine,
		Log:             logger,
		now:             time.Now,
	}
}

// Assess scores the answers and stores the reduced record. A failed save is
// logged and the computed result is still returned with its generated id.
func (uc *assessmentUsecase) Assess(ctx context.Context, request *requests.AssessSymptoms) (*models.AssessmentResult, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("assessmentUsecase.Assess called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
	)

	if request == nil || request.Answers == nil {
		return nil, exceptions.ErrAnswersRequired(nil)
	}

	evaluation := uc.Engine.Evaluate(request.Answers)
	createdAt := uc.now().UTC()

	result := &models.AssessmentResult{
		ID:                   uuid.NewString(),
		UserID:               request.UserID,
		PrimaryDiagnosis:     evaluation.Diagnosis.Condition,
		Description:          evaluation.Diagnosis.Description,
		Confidence:           evaluation.Diagnosis.Confidence,
		Urgency:              evaluation.Urgency.Level,
		UrgencyMessage:       evaluation.Urgency.Message,
		AlternativeDiagnoses: evaluation.Diagnosis.Alternatives,
		Recommendations:      evaluation.Recommendations,
		CreatedAt:            createdAt,
		UserAnswers:          request.Answers,
	}

	uc.Log.Info("assessmentUsecase.Assess scored answers",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingSymptomCountKey, len(evaluation.Symptoms)),
		zap.String(constvars.LoggingDiagnosisKey, result.PrimaryDiagnosis),
		zap.Float64(constvars.LoggingConfidenceKey, result.Confidence),
		zap.String(constvars.LoggingUrgencyKey, result.Urgency),
		zap.Int(constvars.LoggingAlternativeCountKey, len(result.AlternativeDiagnoses)),
	)

	record := &models.Assessment{
		ID:         result.ID,
		UserID:     result.UserID,
		Symptoms:   evaluation.Symptoms,
		Diagnosis:  result.PrimaryDiagnosis,
		Confidence: result.Confidence,
		Urgency:    result.Urgency,
		Date:       createdAt,
		Answers:    request.Answers,
	}

	var storedID string
	err := utils.LogOperation(uc.Log, "assessmentUsecase.Assess persist", requestID, func() error {
		id, err := uc.AssessmentStore.Add(ctx, constvars.CollectionAssessments, record)
		storedID = id
		return err
	})
	if err != nil {
		uc.Log.Error("assessmentUsecase.Assess error persisting assessment, returning unsaved result",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingAssessmentIDKey, result.ID),
			zap.Error(err),
		)
		return result, nil
	}
	result.ID = storedID

	uc.publishCompleted(ctx, result)

	uc.Log.Info("assessmentUsecase.Assess succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingAssessmentIDKey, result.ID),
	)
	return result, nil
}

func (uc *assessmentUsecase) publishCompleted(ctx context.Context, result *models.AssessmentResult) {
	event := &models.AssessmentCompletedEvent{
		EventType:    constvars.EventTypeAssessmentCompleted,
		AssessmentID: result.ID,
		UserID:       result.UserID,
		Diagnosis:    result.PrimaryDiagnosis,
		Confidence:   result.Confidence,
		Urgency:      result.Urgency,
		OccurredAt:   result.CreatedAt,
	}
	if err := uc.EventPublisher.PublishAssessmentCompleted(ctx, event); err != nil {
		uc.Log.Warn("assessmentUsecase.Assess error publishing completion event",
			zap.String(constvars.LoggingRequestIDKey, utils.GetRequestID(ctx)),
			zap.String(constvars.LoggingAssessmentIDKey, result.ID),
			zap.Error(err),
		)
	}
}

func (uc *assessmentUsecase) GetAssessment(ctx context.Context, assessmentID string) (*models.AssessmentResult, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("assessmentUsecase.GetAssessment called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingAssessmentIDKey, assessmentID),
	)

	record, found := uc.AssessmentStore.GetByID(ctx, constvars.CollectionAssessments, assessmentID)
	if !found {
		return nil, exceptions.ErrAssessmentNotFound(nil, assessmentID)
	}

	uc.Log.Info("assessmentUsecase.GetAssessment succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingAssessmentIDKey, assessmentID),
	)
	return record.ToResult(), nil
}

// GetUserHistory returns every stored assessment of the user, newest first.
func (uc *assessmentUsecase) GetUserHistory(ctx context.Context, userID string) ([]*models.Assessment, error) {
	requestID := utils.GetRequestID(ctx)
	uc.Log.Info("assessmentUsecase.GetUserHistory called",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingUserIDKey, userID),
	)

	history := uc.AssessmentStore.Find(ctx, constvars.CollectionAssessments, func(record *models.Assessment) bool {
		return record.UserID == userID
	})
	if history == nil {
		history = []*models.Assessment{}
	}
	sort.SliceStable(history, func(i, j int) bool {
		return history[i].Date.After(history[j].Date)
	})

	uc.Log.Info("assessmentUsecase.GetUserHistory succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.Int(constvars.LoggingRecordCountKey, len(history)),
	)
	return history, nil
}
