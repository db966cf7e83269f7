package rabbitmq

import (
	"context"
	"encoding/json"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/suchimauz/template-slots-generator/internal/config"
	"github.com/suchimauz/template-slots-generator/internal/core/ports/in"
	"github.com/suchimauz/template-slots-generator/internal/core/ports/out"
)

// TemplateListener слушает события об изменении шаблонов и сбрасывает кэш
// материализованных слотов: после правки шаблона любая закэшированная выдача
// могла устареть
type TemplateListener struct {
	conn    *amqp.Connection
	channel *amqp.Channel
	useCase in.SlotMaterializerUseCase
	cfg     *config.Config
	logger  out.LoggerPort
}

type TemplateEventType string

const (
	TemplateEventCreated     TemplateEventType = "created"
	TemplateEventUpdated     TemplateEventType = "updated"
	TemplateEventDeactivated TemplateEventType = "deactivated"
)

type TemplateEventMessage struct {
	Type       TemplateEventType `json:"type"`
	TemplateID string            `json:"templateId"`
}

func NewTemplateListener(useCase in.SlotMaterializerUseCase, cfg *config.Config, logger out.LoggerPort) (*TemplateListener, error) {
	if !cfg.RabbitMQ.Enabled {
		logger.Info("rabbitmq.disabled", out.LogFields{
			"message": "RabbitMQ is disabled, listener will not be started",
		})
		return nil, nil
	}

	conn, err := amqp.Dial(cfg.RabbitMQ.URL)
	if err != nil {
		logger.Error("rabbitmq.connect.failed", out.LogFields{
			"error": err.Error(),
			"url":   cfg.RabbitMQ.URL,
		})
		return nil, err
	}

	channel, err := conn.Channel()
	if err != nil {
		conn.Close()
		logger.Error("rabbitmq.channel.failed", out.LogFields{
			"error": err.Error(),
		})
		return nil, err
	}

	return &TemplateListener{
		conn:    conn,
		channel: channel,
		useCase: useCase,
		cfg:     cfg,
		logger:  logger,
	}, nil
}

func (l *TemplateListener) Start(ctx context.Context) error {
	queue, err := l.channel.QueueDeclare(
		l.cfg.RabbitMQ.Queue,
		true,  // durable
		false, // delete when unused
		false, // exclusive
		false, // no-wait
		nil,   // arguments
	)
	if err != nil {
		return err
	}

	msgs, err := l.channel.Consume(
		queue.Name,
		"",    // consumer
		false, // auto-ack
		false, // exclusive
		false, // no-local
		false, // no-wait
		nil,   // args
	)
	if err != nil {
		return err
	}

	go func() {
		for {
			select {
			case <-ctx.Done():
				return
			case msg, ok := <-msgs:
				if !ok {
					return
				}
				if err := l.processMessage(ctx, msg); err != nil {
					l.logger.Error("rabbitmq.message.process_failed", out.LogFields{
						"error": err.Error(),
					})
					msg.Nack(false, true) // requeue message
					continue
				}
				msg.Ack(false)
			}
		}
	}()

	return nil
}

func (l *TemplateListener) processMessage(ctx context.Context, msg amqp.Delivery) error {
	var event TemplateEventMessage
	if err := json.Unmarshal(msg.Body, &event); err != nil {
		return err
	}

	l.logger.Info("rabbitmq.template_event.received", out.LogFields{
		"type":       event.Type,
		"templateId": event.TemplateID,
	})

	// Любое изменение набора шаблонов инвалидирует все закэшированные диапазоны
	return l.useCase.InvalidateSlotsCache(ctx)
}

func (l *TemplateListener) Stop() error {
	if l == nil || l.channel == nil {
		return nil
	}

	if err := l.channel.Close(); err != nil {
		return err
	}
	return l.conn.Close()
}
