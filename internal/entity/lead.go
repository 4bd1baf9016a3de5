package entity

import (
	"context"
	"time"
)

// Lead is the raw archive row for a contact/interest submission. One row per
// email; repeated submissions update the existing row.
type Lead struct {
	ID        string    `json:"id"`
	Email     string    `json:"email"`
	Name      string    `json:"name,omitempty"`
	Phone     string    `json:"phone,omitempty"`
	Message   string    `json:"message,omitempty"`
	Intent    string    `json:"intent,omitempty"`
	Score     int       `json:"score"`
	Priority  string    `json:"priority"`
	Source    string    `json:"source"` // contact, signup
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// LeadScore is the transient qualification result. Never persisted as-is;
// score and priority are denormalized onto the archived lead row.
type LeadScore struct {
	Score     int      `json:"score"`
	Priority  string   `json:"priority"`
	Reasoning []string `json:"reasoning"`
}

const (
	PriorityHot  = "Hot"
	PriorityWarm = "Warm"
	PriorityCold = "Cold"
)

type LeadRepositoryInterface interface {
	Upsert(ctx context.Context, lead *Lead) error
}
