package usecase

import (
	"context"
	"errors"
	"log"
	"strings"
	"time"

	"github.com/hestialabs/leadgate/internal/entity"
	"github.com/hestialabs/leadgate/internal/infra/queue"
)

type SignupIntakeUseCase struct {
	Signups         entity.SignupRepositoryInterface
	Seats           entity.SeatRepositoryInterface
	Leads           entity.LeadRepositoryInterface
	Notifier        NotificationService
	Queue           QueueProducerInterface
	DefaultCapacity int
}

func NewSignupIntakeUseCase(
	signups entity.SignupRepositoryInterface,
	seats entity.SeatRepositoryInterface,
	leads entity.LeadRepositoryInterface,
	notifier NotificationService,
	producer QueueProducerInterface,
	defaultCapacity int,
) *SignupIntakeUseCase {
	return &SignupIntakeUseCase{
		Signups:         signups,
		Seats:           seats,
		Leads:           leads,
		Notifier:        notifier,
		Queue:           producer,
		DefaultCapacity: defaultCapacity,
	}
}

// Execute runs the intake pipeline: validate -> dedupe -> claim seat ->
// persist -> notify. The seat claim is the atomic gate (a conditional update
// at the storage layer), so two concurrent signups can never overrun a
// metro's cap. The signup insert runs after the claim; if the insert fails
// the claimed seat is released best-effort.
func (uc *SignupIntakeUseCase) Execute(ctx context.Context, input SignupInput) (*SignupOutput, error) {
	input = sanitizeSignupInput(input)

	if validationErrors := ValidateSignupInput(input); len(validationErrors) > 0 {
		return nil, newValidationError(validationErrors)
	}

	email := strings.ToLower(strings.TrimSpace(input.Email))

	existing, err := uc.Signups.FindByEmail(ctx, email)
	if err != nil && !errors.Is(err, entity.ErrSignupNotFound) {
		return nil, &TechnicalError{
			Code:    "DATABASE_ERROR",
			Message: "failed to check for existing signup",
			Err:     err,
		}
	}
	if existing != nil {
		return nil, &DomainError{
			Code:    CodeDuplicateEmail,
			Message: "this email is already registered for the beta",
			Err:     entity.ErrEmailAlreadyExists,
		}
	}

	metro := strings.ToLower(strings.TrimSpace(input.Metro))
	if metro == "" {
		metro = entity.DefaultMetro
	}

	if err := uc.Seats.EnsureRegion(ctx, metro, uc.DefaultCapacity); err != nil {
		return nil, &TechnicalError{
			Code:    "DATABASE_ERROR",
			Message: "failed to prepare seat ledger",
			Err:     err,
		}
	}

	signup := entity.NewSignup(
		input.FirstName, input.LastName, email, input.Phone,
		input.Brokerage, input.CRM, input.LeadVolume, metro, input.ReferralSource,
	)

	txn := NewTransaction()

	txn.AddOperation("claim_seat", func(ctx context.Context) error {
		return uc.Seats.ClaimSeat(ctx, metro)
	})
	txn.AddCompensation("release_seat", func(ctx context.Context) error {
		return uc.Seats.ReleaseSeat(ctx, metro)
	})

	txn.AddOperation("create_signup", func(ctx context.Context) error {
		return uc.Signups.Create(ctx, signup)
	})

	if err := txn.Execute(ctx); err != nil {
		switch {
		case errors.Is(err, entity.ErrSeatsExhausted):
			return nil, &DomainError{
				Code:    CodeSeatsExhausted,
				Message: "no beta seats are available for " + metro + " right now; join the waitlist and we'll notify you",
				Err:     entity.ErrSeatsExhausted,
			}
		case errors.Is(err, entity.ErrEmailAlreadyExists):
			// lost the race against a concurrent signup with the same email
			return nil, &DomainError{
				Code:    CodeDuplicateEmail,
				Message: "this email is already registered for the beta",
				Err:     entity.ErrEmailAlreadyExists,
			}
		default:
			return nil, &TechnicalError{
				Code:    "DATABASE_ERROR",
				Message: "failed to persist signup",
				Err:     err,
			}
		}
	}

	// Downstream notifications are fire-and-forget: the signup is durable,
	// nothing past this point can fail the request.
	go uc.notify(signup)

	return &SignupOutput{
		ID:    signup.ID,
		Email: signup.Email,
		Metro: signup.Metro,
	}, nil
}

func (uc *SignupIntakeUseCase) notify(signup *entity.Signup) {
	if uc.Notifier != nil {
		if err := uc.Notifier.SendWelcome(signup.Email, signup.FirstName); err != nil {
			log.Printf("[INTAKE] welcome email failed for %s: %v", signup.Email, err)
		}
		if err := uc.Notifier.SendSignupAlert(signup); err != nil {
			log.Printf("[INTAKE] signup alert failed for %s: %v", signup.Email, err)
		}
	}

	score := QualifyLead(QualifyLeadInput{Phone: signup.Phone})

	if uc.Leads != nil {
		lead := &entity.Lead{
			Email:    signup.Email,
			Name:     strings.TrimSpace(signup.FirstName + " " + signup.LastName),
			Phone:    signup.Phone,
			Score:    score.Score,
			Priority: score.Priority,
			Source:   queue.SourceSignup,
		}
		if err := uc.Leads.Upsert(context.Background(), lead); err != nil {
			log.Printf("[INTAKE] lead archive failed for %s: %v", signup.Email, err)
		}
	}

	if uc.Queue != nil {
		payload := queue.EnrichmentPayload{
			Email:       signup.Email,
			Name:        strings.TrimSpace(signup.FirstName + " " + signup.LastName),
			Phone:       signup.Phone,
			Metro:       signup.Metro,
			Score:       score.Score,
			Priority:    score.Priority,
			Reasoning:   score.Reasoning,
			Source:      queue.SourceSignup,
			SubmittedAt: time.Now().UTC(),
		}
		if err := uc.Queue.PublishEnrichment(context.Background(), payload); err != nil {
			log.Printf("[INTAKE] enrichment publish failed for %s: %v", signup.Email, err)
		}
	}
}

func sanitizeSignupInput(input SignupInput) SignupInput {
	input.FirstName = Sanitize(input.FirstName)
	input.LastName = Sanitize(input.LastName)
	input.Email = Sanitize(input.Email)
	input.Phone = Sanitize(input.Phone)
	input.Brokerage = Sanitize(input.Brokerage)
	input.CRM = Sanitize(input.CRM)
	input.LeadVolume = Sanitize(input.LeadVolume)
	input.Metro = Sanitize(input.Metro)
	input.ReferralSource = Sanitize(input.ReferralSource)
	return input
}
