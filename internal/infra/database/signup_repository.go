package database

import (
	"context"
	"database/sql"
	"errors"
	"log"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/hestialabs/leadgate/internal/entity"
)

type SignupRepository struct {
	DB *sql.DB
}

func NewSignupRepository(db *sql.DB) *SignupRepository {
	return &SignupRepository{DB: db}
}

func (r *SignupRepository) Create(ctx context.Context, s *entity.Signup) error {
	query := `
		INSERT INTO signups (
			id, first_name, last_name, email, phone, brokerage, crm,
			lead_volume, metro, referral_source, status, created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13)
	`

	_, err := r.DB.ExecContext(ctx, query,
		s.ID,
		s.FirstName,
		s.LastName,
		s.Email,
		s.Phone,
		s.Brokerage,
		s.CRM,
		s.LeadVolume,
		s.Metro,
		nullString(s.ReferralSource),
		s.Status,
		s.CreatedAt,
		s.UpdatedAt,
	)

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" {
			return entity.ErrEmailAlreadyExists
		}

		log.Printf("[DB] signup insert failed: %v", err)
		return err
	}

	return nil
}

func (r *SignupRepository) FindByEmail(ctx context.Context, email string) (*entity.Signup, error) {
	query := `
		SELECT id, first_name, last_name, email, phone, brokerage, COALESCE(crm, ''),
		       lead_volume, metro, COALESCE(referral_source, ''), status,
		       COALESCE(admin_notes, ''), created_at, updated_at
		FROM signups
		WHERE email = $1
	`

	var s entity.Signup
	err := r.DB.QueryRowContext(ctx, query, email).Scan(
		&s.ID, &s.FirstName, &s.LastName, &s.Email, &s.Phone,
		&s.Brokerage, &s.CRM, &s.LeadVolume, &s.Metro, &s.ReferralSource,
		&s.Status, &s.AdminNotes, &s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, entity.ErrSignupNotFound
		}
		return nil, err
	}

	return &s, nil
}

func (r *SignupRepository) List(ctx context.Context, status string) ([]*entity.Signup, error) {
	query := `
		SELECT id, first_name, last_name, email, phone, brokerage, COALESCE(crm, ''),
		       lead_volume, metro, COALESCE(referral_source, ''), status,
		       COALESCE(admin_notes, ''), created_at, updated_at
		FROM signups
		WHERE ($1 = '' OR status = $1)
		ORDER BY created_at DESC
	`

	rows, err := r.DB.QueryContext(ctx, query, status)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var signups []*entity.Signup
	for rows.Next() {
		var s entity.Signup
		if err := rows.Scan(
			&s.ID, &s.FirstName, &s.LastName, &s.Email, &s.Phone,
			&s.Brokerage, &s.CRM, &s.LeadVolume, &s.Metro, &s.ReferralSource,
			&s.Status, &s.AdminNotes, &s.CreatedAt, &s.UpdatedAt,
		); err != nil {
			return nil, err
		}
		signups = append(signups, &s)
	}

	return signups, rows.Err()
}

func (r *SignupRepository) UpdateStatus(ctx context.Context, id, status, notes string) (*entity.Signup, error) {
	query := `
		UPDATE signups
		SET status = $2,
		    admin_notes = COALESCE(NULLIF($3, ''), admin_notes),
		    updated_at = NOW()
		WHERE id = $1
		RETURNING id, first_name, last_name, email, phone, brokerage, COALESCE(crm, ''),
		          lead_volume, metro, COALESCE(referral_source, ''), status,
		          COALESCE(admin_notes, ''), created_at, updated_at
	`

	var s entity.Signup
	err := r.DB.QueryRowContext(ctx, query, id, status, notes).Scan(
		&s.ID, &s.FirstName, &s.LastName, &s.Email, &s.Phone,
		&s.Brokerage, &s.CRM, &s.LeadVolume, &s.Metro, &s.ReferralSource,
		&s.Status, &s.AdminNotes, &s.CreatedAt, &s.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, entity.ErrSignupNotFound
		}
		return nil, err
	}

	return &s, nil
}

func nullString(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
