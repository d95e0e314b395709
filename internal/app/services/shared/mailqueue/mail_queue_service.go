package mailqueue

import (
	"context"

	"doctorportal-service/internal/app/contracts"
	"doctorportal-service/internal/pkg/exceptions"

	"github.com/goccy/go-json"
	amqp "github.com/rabbitmq/amqp091-go"
	"go.uber.org/zap"
)

// Service publishes booking confirmations to a durable queue consumed by the
// out-of-band mailer worker.
type Service struct {
	ch        *amqp.Channel
	log       *zap.Logger
	queueName string
}

func NewService(conn *amqp.Connection, log *zap.Logger, queueName string) (*Service, error) {
	ch, err := conn.Channel()
	if err != nil {
		return nil, err
	}

	_, err = ch.QueueDeclare(
		queueName, // name
		true,      // durable
		false,     // autoDelete
		false,     // exclusive
		false,     // noWait
		nil,       // args
	)
	if err != nil {
		return nil, err
	}

	return &Service{
		ch:        ch,
		log:       log,
		queueName: queueName,
	}, nil
}

var _ contracts.MailQueueService = (*Service)(nil)

func (s *Service) EnqueueBookingConfirmation(ctx context.Context, message *contracts.BookingConfirmationMessage) error {
	body, err := json.Marshal(message)
	if err != nil {
		return exceptions.ErrMailQueuePublish(err)
	}

	err = s.ch.PublishWithContext(ctx,
		"",          // exchange
		s.queueName, // routing key
		false,       // mandatory
		false,       // immediate
		amqp.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp.Persistent,
			Body:         body,
		},
	)
	if err != nil {
		return exceptions.ErrMailQueuePublish(err)
	}

	s.log.Info("booking confirmation enqueued",
		zap.String("queue", s.queueName),
		zap.String("email", message.Email),
		zap.String("appointment_date", message.AppointmentDate),
	)
	return nil
}
