package entity

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrEmailAlreadyExists = errors.New("email already registered")
	ErrSignupNotFound     = errors.New("signup not found")
)

const (
	SignupStatusPending  = "pending"
	SignupStatusApproved = "approved"
	SignupStatusRejected = "rejected"
)

type Signup struct {
	ID             string    `json:"id"`
	FirstName      string    `json:"first_name"`
	LastName       string    `json:"last_name"`
	Email          string    `json:"email"`
	Phone          string    `json:"phone"`
	Brokerage      string    `json:"brokerage"`
	CRM            string    `json:"crm"`
	LeadVolume     string    `json:"lead_volume"`
	Metro          string    `json:"metro"`
	ReferralSource string    `json:"referral_source,omitempty"`
	Status         string    `json:"status"`
	AdminNotes     string    `json:"admin_notes,omitempty"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

func NewSignup(firstName, lastName, email, phone, brokerage, crm, leadVolume, metro, referralSource string) *Signup {
	now := time.Now()
	return &Signup{
		ID:             uuid.New().String(),
		FirstName:      firstName,
		LastName:       lastName,
		Email:          email,
		Phone:          phone,
		Brokerage:      brokerage,
		CRM:            crm,
		LeadVolume:     leadVolume,
		Metro:          metro,
		ReferralSource: referralSource,
		Status:         SignupStatusPending,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
}

func ValidSignupStatus(s string) bool {
	return s == SignupStatusApproved || s == SignupStatusRejected
}

type SignupRepositoryInterface interface {
	Create(ctx context.Context, s *Signup) error
	FindByEmail(ctx context.Context, email string) (*Signup, error)
	List(ctx context.Context, status string) ([]*Signup, error)
	UpdateStatus(ctx context.Context, id, status, notes string) (*Signup, error)
}
