package services

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"

	"sesotho-storefront/internal/models"
)

// OrderCreatedQueue is the queue order placement events are published to
const OrderCreatedQueue = "order.created"

const publishTimeout = 3 * time.Second

// OrderCreatedEvent is the message body published when an order is placed
type OrderCreatedEvent struct {
	OrderID       string    `json:"order_id"`
	OrderNumber   string    `json:"order_number"`
	CustomerEmail string    `json:"customer_email"`
	TotalAmount   int       `json:"total_amount"`
	ItemCount     int       `json:"item_count"`
	OccurredAt    time.Time `json:"occurred_at"`
}

// AMQPOrderPublisher publishes order events to a RabbitMQ queue
type AMQPOrderPublisher struct {
	channel *amqp.Channel
}

// NewAMQPOrderPublisher opens a channel on the given connection and declares
// the order created queue
func NewAMQPOrderPublisher(conn *amqp.Connection) (*AMQPOrderPublisher, error) {
	channel, err := conn.Channel()
	if err != nil {
		return nil, fmt.Errorf("failed to open channel: %w", err)
	}

	_, err = channel.QueueDeclare(
		OrderCreatedQueue,
		true,  // durable
		false, // autoDelete
		false, // exclusive
		false, // noWait
		nil,   // args
	)
	if err != nil {
		channel.Close()
		return nil, fmt.Errorf("failed to declare queue: %w", err)
	}

	return &AMQPOrderPublisher{channel: channel}, nil
}

// PublishOrderCreated publishes a persistent order created message
func (p *AMQPOrderPublisher) PublishOrderCreated(ctx context.Context, order *models.Order) error {
	event := OrderCreatedEvent{
		OrderID:       order.ID,
		OrderNumber:   order.OrderNumber,
		CustomerEmail: order.CustomerEmail,
		TotalAmount:   order.TotalAmount,
		ItemCount:     len(order.Items),
		OccurredAt:    time.Now().UTC(),
	}

	body, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to encode event: %w", err)
	}

	ctx, cancel := context.WithTimeout(ctx, publishTimeout)
	defer cancel()

	err = p.channel.PublishWithContext(
		ctx,
		"",
		OrderCreatedQueue,
		false,
		false,
		amqp.Publishing{
			ContentType:  "application/json",
			DeliveryMode: amqp.Persistent,
			Body:         body,
		},
	)
	if err != nil {
		return fmt.Errorf("failed to publish order created: %w", err)
	}

	return nil
}

// Close releases the underlying channel
func (p *AMQPOrderPublisher) Close() error {
	return p.channel.Close()
}
