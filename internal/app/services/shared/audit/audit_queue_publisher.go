package audit

import (
	"context"

	"caregate-service/internal/app/contracts"
	"caregate-service/internal/pkg/constvars"
	"caregate-service/internal/pkg/exceptions"

	"github.com/goccy/go-json"
	amqp "github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
)

const MutationAuditQueueName = "caregate_mutation_audit_queue"

// auditQueuePublisher mirrors every recorded mutation onto a durable queue
// so downstream compliance consumers see the trail without polling mongo.
type auditQueuePublisher struct {
	channel *amqp.Channel
	Log     *zap.Logger
}

func NewAuditQueuePublisher(conn *amqp.Connection, logger *zap.Logger) (contracts.AuditPublisher, error) {
	channel, err := conn.Channel()
	if err != nil {
		return nil, err
	}

	_, err = channel.QueueDeclare(
		MutationAuditQueueName,
		true,  // durable
		false, // autoDelete
		false, // exclusive
		false, // noWait
		nil,   // args
	)
	if err != nil {
		return nil, err
	}

	return &auditQueuePublisher{channel: channel, Log: logger}, nil
}

func (p *auditQueuePublisher) PublishMutation(ctx context.Context, record *contracts.MutationRecord) error {
	body, err := json.Marshal(record)
	if err != nil {
		return exceptions.ErrCannotMarshalJSON(err)
	}

	err = p.channel.PublishWithContext(ctx,
		"",                     // exchange
		MutationAuditQueueName, // routing key
		false,                  // mandatory
		false,                  // immediate
		amqp.Publishing{
			ContentType:  constvars.MIMEApplicationJSON,
			DeliveryMode: amqp.Persistent,
			Body:         body,
		},
	)
	if err != nil {
		return exceptions.ErrPublishAuditEvent(err)
	}

	p.Log.Debug("mutation audit event published",
		zap.String(constvars.LoggingDatasetKey, record.Dataset),
		zap.String(constvars.LoggingResourceIDKey, record.ResourceID),
	)
	return nil
}
