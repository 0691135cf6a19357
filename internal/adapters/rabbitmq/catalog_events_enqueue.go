package rabbitmq_adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"catalog-service/internal/constants"
	"catalog-service/internal/contracts"
	"catalog-service/internal/core/domain"
	"catalog-service/internal/core/port"

	amqp "github.com/rabbitmq/amqp091-go"
)

// CatalogEventsPublisher публикует события об изменениях каталога в RabbitMQ.
type CatalogEventsPublisher struct {
	conn    *amqp.Connection
	channel *amqp.Channel
	logger  port.LoggerPort
}

// NewCatalogEventsPublisher устанавливает соединение и объявляет exchange.
func NewCatalogEventsPublisher(url string, logger port.LoggerPort) (*CatalogEventsPublisher, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to RabbitMQ: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to open a channel: %w", err)
	}

	err = ch.ExchangeDeclare(
		constants.ExchangeCatalogEvents,
		"direct",
		true,  // durable
		false, // auto-deleted
		false, // internal
		false, // no-wait
		nil,
	)
	if err != nil {
		ch.Close()
		conn.Close()
		return nil, fmt.Errorf("failed to declare an exchange: %w", err)
	}

	return &CatalogEventsPublisher{
		conn:    conn,
		channel: ch,
		logger:  logger,
	}, nil
}

type propertyChangedMessage struct {
	Action     string    `json:"action"`
	PropertyID string    `json:"propertyId"`
	OccurredAt time.Time `json:"occurredAt"`
}

// PublishPropertyChanged отправляет событие изменения объекта недвижимости.
// Перед отправкой тело проверяется по контракту события.
func (p *CatalogEventsPublisher) PublishPropertyChanged(ctx context.Context, change domain.PropertyChange) error {
	body, err := json.Marshal(propertyChangedMessage{
		Action:     change.Action,
		PropertyID: change.PropertyID,
		OccurredAt: change.OccurredAt.UTC(),
	})
	if err != nil {
		return fmt.Errorf("failed to marshal property change event: %w", err)
	}

	if err := contracts.ValidateEvent("PropertyChangedEvent", "1.0.0", body); err != nil {
		return fmt.Errorf("property change event does not match contract: %w", err)
	}

	err = p.channel.PublishWithContext(ctx,
		constants.ExchangeCatalogEvents,
		constants.RoutingKeyPropertyChanged,
		false, // mandatory
		false, // immediate
		amqp.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp.Persistent,
			Timestamp:    time.Now().UTC(),
			Body:         body,
		})
	if err != nil {
		return fmt.Errorf("failed to publish property change event: %w", err)
	}

	p.logger.Debug("Property change event published", port.Fields{
		"action":      change.Action,
		"property_id": change.PropertyID,
	})
	return nil
}

// Close закрывает канал и соединение.
func (p *CatalogEventsPublisher) Close() error {
	if err := p.channel.Close(); err != nil {
		return err
	}
	return p.conn.Close()
}
