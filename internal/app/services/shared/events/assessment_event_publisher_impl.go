package events

import (
	"context"
	"symptomix-service/internal/app/contracts"
	"symptomix-service/internal/app/models"
	"symptomix-service/internal/pkg/constvars"
	"symptomix-service/internal/pkg/exceptions"
	"symptomix-service/internal/pkg/utils"
	"sync"

	"github.com/goccy/go-json"
	"github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
)

// channelPublisher is the part of *amqp091.Channel the publisher needs.
type channelPublisher interface {
	PublishWithContext(ctx context.Context, exchange, key string, mandatory, immediate bool, msg amqp091.Publishing) error
}

type assessmentEventPublisher struct {
	Channel channelPublisher
	Queue   string
	Log     *zap.Logger
	mu      sync.Mutex
}

// NewAssessmentEventPublisher opens a channel and declares the durable queue
// the events are published to.
func NewAssessmentEventPublisher(rabbitMQConnection *amqp091.Connection, logger *zap.Logger, queue string) (contracts.AssessmentEventPublisher, error) {
	channel, err := rabbitMQConnection.Channel()
	if err != nil {
		return nil, err
	}

	_, err = channel.QueueDeclare(
		queue, // name
		true,  // durable
		false, // autoDelete
		false, // exclusive
		false, // noWait
		nil,   // args
	)
	if err != nil {
		return nil, err
	}

	return newAssessmentEventPublisher(channel, logger, queue), nil
}

func newAssessmentEventPublisher(channel channelPublisher, logger *zap.Logger, queue string) *assessmentEventPublisher {
	return &assessmentEventPublisher{
		Channel: channel,
		Queue:   queue,
		Log:     logger,
	}
}

func (p *assessmentEventPublisher) PublishAssessmentCompleted(ctx context.Context, event *models.AssessmentCompletedEvent) error {
	requestID := utils.GetRequestID(ctx)

	body, err := json.Marshal(event)
	if err != nil {
		return exceptions.ErrCannotMarshalJSON(err)
	}

	message := amqp091.Publishing{
		ContentType:  constvars.MIMEApplicationJSON,
		Body:         body,
		DeliveryMode: amqp091.Persistent,
		MessageId:    event.AssessmentID,
		Type:         event.EventType,
		Timestamp:    event.OccurredAt,
		Headers: amqp091.Table{
			"request_id": requestID,
		},
	}

	// amqp channels are not safe for concurrent publishing
	p.mu.Lock()
	defer p.mu.Unlock()

	if err := p.Channel.PublishWithContext(ctx, "", p.Queue, false, false, message); err != nil {
		p.Log.Error("assessmentEventPublisher.PublishAssessmentCompleted error publishing message",
			zap.String(constvars.LoggingRequestIDKey, requestID),
			zap.String(constvars.LoggingQueueKey, p.Queue),
			zap.Error(err),
		)
		return exceptions.ErrRabbitMQPublishMessage(err, p.Queue)
	}

	p.Log.Debug("assessmentEventPublisher.PublishAssessmentCompleted succeeded",
		zap.String(constvars.LoggingRequestIDKey, requestID),
		zap.String(constvars.LoggingQueueKey, p.Queue),
		zap.String(constvars.LoggingAssessmentIDKey, event.AssessmentID),
	)
	return nil
}

type noopEventPublisher struct{}

// NewNoopEventPublisher is used when no message broker is configured.
func NewNoopEventPublisher() contracts.AssessmentEventPublisher {
	return noopEventPublisher{}
}

func (noopEventPublisher) PublishAssessmentCompleted(ctx context.Context, event *models.AssessmentCompletedEvent) error {
	return nil
}
