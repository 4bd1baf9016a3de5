package database

import (
	"context"
	"database/sql"
	"errors"

	"github.com/hestialabs/leadgate/internal/entity"
)

type SeatRepository struct {
	DB *sql.DB
}

func NewSeatRepository(db *sql.DB) *SeatRepository {
	return &SeatRepository{DB: db}
}

func (r *SeatRepository) EnsureRegion(ctx context.Context, metro string, defaultTotal int) error {
	query := `
		INSERT INTO seat_allocations (metro, total_seats, claimed_seats, updated_at)
		VALUES ($1, $2, 0, NOW())
		ON CONFLICT (metro) DO NOTHING
	`
	_, err := r.DB.ExecContext(ctx, query, metro, defaultTotal)
	return err
}

// ClaimSeat is the one mutation that must be serialized: the WHERE clause
// makes the increment conditional inside a single statement, so two
// concurrent claims reading the same stale count can never both succeed
// past the cap. Zero rows affected means the metro is full.
func (r *SeatRepository) ClaimSeat(ctx context.Context, metro string) error {
	query := `
		UPDATE seat_allocations
		SET claimed_seats = claimed_seats + 1, updated_at = NOW()
		WHERE metro = $1 AND claimed_seats < total_seats
	`

	res, err := r.DB.ExecContext(ctx, query, metro)
	if err != nil {
		return err
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if rows == 0 {
		return entity.ErrSeatsExhausted
	}

	return nil
}

func (r *SeatRepository) ReleaseSeat(ctx context.Context, metro string) error {
	query := `
		UPDATE seat_allocations
		SET claimed_seats = claimed_seats - 1, updated_at = NOW()
		WHERE metro = $1 AND claimed_seats > 0
	`
	_, err := r.DB.ExecContext(ctx, query, metro)
	return err
}

func (r *SeatRepository) GetAvailability(ctx context.Context, metro string) (*entity.SeatAllocation, error) {
	query := `SELECT metro, total_seats, claimed_seats FROM seat_allocations WHERE metro = $1`

	var a entity.SeatAllocation
	err := r.DB.QueryRowContext(ctx, query, metro).Scan(&a.Metro, &a.Total, &a.Claimed)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, entity.ErrRegionNotFound
		}
		return nil, err
	}

	return &a, nil
}

// TotalAvailability sums capacity across every metro for the global widget.
func (r *SeatRepository) TotalAvailability(ctx context.Context) (*entity.SeatAllocation, error) {
	query := `
		SELECT COALESCE(SUM(total_seats), 0), COALESCE(SUM(claimed_seats), 0)
		FROM seat_allocations
	`

	a := entity.SeatAllocation{Metro: "all"}
	if err := r.DB.QueryRowContext(ctx, query).Scan(&a.Total, &a.Claimed); err != nil {
		return nil, err
	}

	return &a, nil
}

func (r *SeatRepository) SetCapacity(ctx context.Context, metro string, total int) (*entity.SeatAllocation, error) {
	// Never lower the cap below seats already claimed.
	query := `
		INSERT INTO seat_allocations (metro, total_seats, claimed_seats, updated_at)
		VALUES ($1, $2, 0, NOW())
		ON CONFLICT (metro) DO UPDATE
		SET total_seats = EXCLUDED.total_seats, updated_at = NOW()
		WHERE seat_allocations.claimed_seats <= EXCLUDED.total_seats
		RETURNING metro, total_seats, claimed_seats
	`

	var a entity.SeatAllocation
	err := r.DB.QueryRowContext(ctx, query, metro, total).Scan(&a.Metro, &a.Total, &a.Claimed)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, entity.ErrCapacityBelowClaimed
		}
		return nil, err
	}

	return &a, nil
}
