package usecase

import (
	"context"
	"log"
	"strings"
	"time"

	"github.com/hestialabs/leadgate/internal/entity"
	"github.com/hestialabs/leadgate/internal/infra/http/middleware"
	"github.com/hestialabs/leadgate/internal/infra/queue"
)

type ContactIntakeUseCase struct {
	Leads    entity.LeadRepositoryInterface
	Notifier NotificationService
	SMS      SMSService
	Queue    QueueProducerInterface
}

func NewContactIntakeUseCase(
	leads entity.LeadRepositoryInterface,
	notifier NotificationService,
	sms SMSService,
	producer QueueProducerInterface,
) *ContactIntakeUseCase {
	return &ContactIntakeUseCase{
		Leads:    leads,
		Notifier: notifier,
		SMS:      sms,
		Queue:    producer,
	}
}

// Execute validates and qualifies a contact submission, archives it, and
// dispatches notifications. Only validation can fail the request: archive
// and email problems degrade to entries in the warnings list, and the SMS
// alert plus the enrichment publish are fully fire-and-forget.
func (uc *ContactIntakeUseCase) Execute(ctx context.Context, input ContactInput) (*ContactOutput, error) {
	input.Name = Sanitize(input.Name)
	input.Email = Sanitize(input.Email)
	input.Phone = Sanitize(input.Phone)
	input.Message = Sanitize(input.Message)
	input.Intent = Sanitize(input.Intent)

	if validationErrors := ValidateContactInput(input); len(validationErrors) > 0 {
		return nil, newValidationError(validationErrors)
	}

	email := strings.ToLower(input.Email)
	score := QualifyLead(QualifyLeadInput{
		Message: input.Message,
		Intent:  input.Intent,
		Phone:   input.Phone,
	})
	middleware.RecordLeadQualified(score.Priority)

	warnings := []string{}

	lead := &entity.Lead{
		Email:    email,
		Name:     input.Name,
		Phone:    input.Phone,
		Message:  input.Message,
		Intent:   input.Intent,
		Score:    score.Score,
		Priority: score.Priority,
		Source:   queue.SourceContact,
	}

	if uc.Leads != nil {
		if err := uc.Leads.Upsert(ctx, lead); err != nil {
			log.Printf("[CONTACT] lead archive failed for %s: %v", email, err)
			warnings = append(warnings, "lead archive unavailable")
		}
	}

	if uc.Notifier != nil {
		if err := uc.Notifier.SendLeadAlert(lead, score); err != nil {
			log.Printf("[CONTACT] lead alert failed for %s: %v", email, err)
			warnings = append(warnings, "notification email failed")
		}
		if err := uc.Notifier.SendAutoReply(email, input.Name); err != nil {
			log.Printf("[CONTACT] auto-reply failed for %s: %v", email, err)
			warnings = append(warnings, "auto-reply email failed")
		}
	}

	go uc.enrich(input, email, score)

	return &ContactOutput{OK: true, Warnings: warnings}, nil
}

func (uc *ContactIntakeUseCase) enrich(input ContactInput, email string, score entity.LeadScore) {
	if uc.SMS != nil && score.Priority == entity.PriorityHot {
		if err := uc.SMS.SendHotLeadAlert(input.Name, input.Phone, input.Intent, score.Score); err != nil {
			log.Printf("[CONTACT] hot lead SMS failed for %s: %v", email, err)
		}
	}

	if uc.Queue != nil {
		payload := queue.EnrichmentPayload{
			Email:       email,
			Name:        input.Name,
			Phone:       input.Phone,
			Intent:      input.Intent,
			Message:     input.Message,
			Score:       score.Score,
			Priority:    score.Priority,
			Reasoning:   score.Reasoning,
			Source:      queue.SourceContact,
			SubmittedAt: time.Now().UTC(),
		}
		if err := uc.Queue.PublishEnrichment(context.Background(), payload); err != nil {
			log.Printf("[CONTACT] enrichment publish failed for %s: %v", email, err)
		}
	}
}
