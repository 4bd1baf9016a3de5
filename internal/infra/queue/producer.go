package queue

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
)

const (
	SourceSignup  = "signup"
	SourceContact = "contact"
)

// EnrichmentPayload is what downstream consumers (CRM sync today) receive
// for every captured lead.
type EnrichmentPayload struct {
	Email       string    `json:"email"`
	Name        string    `json:"name"`
	Phone       string    `json:"phone,omitempty"`
	Metro       string    `json:"metro,omitempty"`
	Intent      string    `json:"intent,omitempty"`
	Message     string    `json:"message,omitempty"`
	Score       int       `json:"score"`
	Priority    string    `json:"priority"`
	Reasoning   []string  `json:"reasoning,omitempty"`
	Source      string    `json:"source"`
	SubmittedAt time.Time `json:"submitted_at"`
}

type RabbitMQProducer struct {
	Conn *amqp.Connection
	Ch   *amqp.Channel
}

func NewProducer(conn *amqp.Connection, ch *amqp.Channel) *RabbitMQProducer {
	return &RabbitMQProducer{Conn: conn, Ch: ch}
}

func (p *RabbitMQProducer) PublishEnrichment(ctx context.Context, payload EnrichmentPayload) error {
	body, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal enrichment payload: %w", err)
	}

	err = p.Ch.PublishWithContext(ctx,
		ExchangeName,
		RoutingKey,
		false, // mandatory
		false, // immediate
		amqp.Publishing{
			ContentType:  "application/json",
			Body:         body,
			DeliveryMode: amqp.Persistent,
		},
	)
	if err != nil {
		return fmt.Errorf("failed to publish enrichment message: %w", err)
	}

	return nil
}
