package database

import (
	"context"
	"database/sql"

	"github.com/hestialabs/leadgate/internal/entity"
)

type LeadRepository struct {
	DB *sql.DB
}

func NewLeadRepository(db *sql.DB) *LeadRepository {
	return &LeadRepository{DB: db}
}

// Upsert archives a lead, keyed by email. Repeat submissions refresh the
// row but never blank out previously captured fields.
func (r *LeadRepository) Upsert(ctx context.Context, lead *entity.Lead) error {
	query := `
		INSERT INTO leads (email, name, phone, message, intent, score, priority, source, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, NOW())
		ON CONFLICT (email)
		DO UPDATE SET
			name = COALESCE(EXCLUDED.name, leads.name),
			phone = COALESCE(EXCLUDED.phone, leads.phone),
			message = COALESCE(EXCLUDED.message, leads.message),
			intent = COALESCE(EXCLUDED.intent, leads.intent),
			score = EXCLUDED.score,
			priority = EXCLUDED.priority,
			source = EXCLUDED.source,
			updated_at = NOW()
		RETURNING id, created_at, updated_at
	`

	err := r.DB.QueryRowContext(
		ctx,
		query,
		lead.Email,
		nullString(lead.Name),
		nullString(lead.Phone),
		nullString(lead.Message),
		nullString(lead.Intent),
		lead.Score,
		lead.Priority,
		lead.Source,
	).Scan(
		&lead.ID,
		&lead.CreatedAt,
		&lead.UpdatedAt,
	)

	return err
}
