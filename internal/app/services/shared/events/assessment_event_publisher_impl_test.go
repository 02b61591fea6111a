package events

import (
	"context"
	"errors"
	"symptomix-service/internal/app/models"
	"symptomix-service/internal/pkg/constvars"
	"testing"
	"time"

	"github.com/goccy/go-json"
	"github.com/rabbitmq/amqp091-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type MockChannel struct {
	mock.Mock
}

func (m *MockChannel) PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp091.Publishing) error {
	args := m.Called(ctx, exchange, key, mandatory, immediate, msg)
	return args.Error(0)
}

func TestAssessmentEventPublisher(t *testing.T) {
	occurredAt := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	event := &models.AssessmentCompletedEvent{
		EventType:    constvars.EventTypeAssessmentCompleted,
		AssessmentID: "a1",
		UserID:       "u1",
		Diagnosis:    "Migraine",
		Confidence:   1,
		Urgency:      models.UrgencyLow,
		OccurredAt:   occurredAt,
	}

	t.Run("Publishes Persistent JSON Message", func(t *testing.T) {
		channel := new(MockChannel)
		var published amqp091.Publishing
		channel.On("PublishWithContext", mock.Anything, "", "assessment_events", false, false, mock.AnythingOfType("amqp091.Publishing")).
			Run(func(args mock.Arguments) { published = args.Get(5).(amqp091.Publishing) }).
			Return(nil)

		publisher := newAssessmentEventPublisher(channel, zap.NewNop(), "assessment_events")
		require.NoError(t, publisher.PublishAssessmentCompleted(context.Background(), event))

		assert.Equal(t, amqp091.Persistent, published.DeliveryMode)
		assert.Equal(t, constvars.MIMEApplicationJSON, published.ContentType)
		assert.Equal(t, "a1", published.MessageId)

		var decoded models.AssessmentCompletedEvent
		require.NoError(t, json.Unmarshal(published.Body, &decoded))
		assert.Equal(t, "Migraine", decoded.Diagnosis)
		channel.AssertExpectations(t)
	})

	t.Run("Wraps Publish Errors", func(t *testing.T) {
		channel := new(MockChannel)
		channel.On("PublishWithContext", mock.Anything, "", "assessment_events", false, false, mock.Anything).
			Return(errors.New("channel closed"))

		publisher := newAssessmentEventPublisher(channel, zap.NewNop(), "assessment_events")
		assert.Error(t, publisher.PublishAssessmentCompleted(context.Background(), event))
	})

	t.Run("Noop Publisher", func(t *testing.T) {
		assert.NoError(t, NewNoopEventPublisher().PublishAssessmentCompleted(context.Background(), event))
	})
}
