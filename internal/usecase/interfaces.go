package usecase

import (
	"context"

	"github.com/hestialabs/leadgate/internal/entity"
	"github.com/hestialabs/leadgate/internal/infra/queue"
)

// NotificationService is the three-tier dispatcher (provider API -> SMTP ->
// log). Every method is best-effort: callers log or collect failures as
// warnings, they never fail the request over one.
type NotificationService interface {
	SendLeadAlert(lead *entity.Lead, score entity.LeadScore) error
	SendAutoReply(toEmail, name string) error
	SendSignupAlert(s *entity.Signup) error
	SendWelcome(toEmail, firstName string) error
}

type SMSService interface {
	SendHotLeadAlert(name, phone, intent string, score int) error
}

type QueueProducerInterface interface {
	PublishEnrichment(ctx context.Context, payload queue.EnrichmentPayload) error
}
