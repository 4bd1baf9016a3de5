package queue

import (
	"context"
	"encoding/json"
	"log"

	amqp "github.com/rabbitmq/amqp091-go"
)

// CRMClient is the contract for downstream lead sinks (CRM webhook today).
type CRMClient interface {
	SyncLead(ctx context.Context, payload EnrichmentPayload) error
}

type Worker struct {
	Channel *amqp.Channel
	CRM     CRMClient
}

func NewWorker(ch *amqp.Channel, crm CRMClient) *Worker {
	return &Worker{Channel: ch, CRM: crm}
}

func (w *Worker) Start(queueName string) {
	msgs, err := w.Channel.Consume(
		queueName,
		"",    // consumer
		false, // manual ack
		false, // exclusive
		false, // no-local
		false, // no-wait
		nil,   // args
	)
	if err != nil {
		log.Fatalf("[WORKER] failed to register RabbitMQ consumer: %s", err)
	}

	forever := make(chan bool)

	go func() {
		for d := range msgs {
			var payload EnrichmentPayload
			if err := json.Unmarshal(d.Body, &payload); err != nil {
				log.Printf("[WORKER] invalid JSON, sending to DLQ: %s", err)
				d.Nack(false, false)
				continue
			}

			log.Printf("[WORKER] enriching lead %s (source=%s priority=%s)", payload.Email, payload.Source, payload.Priority)

			if err := w.processMessage(context.Background(), payload); err != nil {
				log.Printf("[WORKER] enrichment failed for %s: %s", payload.Email, err)
				d.Nack(false, false)
			} else {
				d.Ack(false)
			}
		}
	}()

	log.Printf("[WORKER] waiting for messages on '%s'", queueName)
	<-forever
}

func (w *Worker) processMessage(ctx context.Context, payload EnrichmentPayload) error {
	switch payload.Source {
	case SourceSignup, SourceContact:
		if w.CRM == nil {
			log.Printf("[WORKER] no CRM configured, dropping lead %s", payload.Email)
			return nil
		}
		return w.CRM.SyncLead(ctx, payload)
	default:
		// Unknown source: ack it so it doesn't clog the queue.
		log.Printf("[WORKER] unknown source %q, skipping", payload.Source)
		return nil
	}
}
