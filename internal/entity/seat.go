package entity

import (
	"context"
	"errors"
)

var (
	ErrSeatsExhausted       = errors.New("no seats available for this metro")
	ErrRegionNotFound       = errors.New("metro region not found")
	ErrCapacityBelowClaimed = errors.New("capacity below claimed seats")
)

// DefaultMetro is used when a signup does not specify a market.
const DefaultMetro = "general"

// SeatAllocation is the per-metro capacity row. Invariant: 0 <= Claimed <= Total.
type SeatAllocation struct {
	Metro   string `json:"metro"`
	Total   int    `json:"total"`
	Claimed int    `json:"claimed"`
}

func (s *SeatAllocation) Available() int {
	return s.Total - s.Claimed
}

type SeatRepositoryInterface interface {
	// EnsureRegion creates the row with the default capacity if missing. Idempotent.
	EnsureRegion(ctx context.Context, metro string, defaultTotal int) error

	// ClaimSeat increments claimed by exactly one via an atomic conditional
	// update. Returns ErrSeatsExhausted when claimed == total.
	ClaimSeat(ctx context.Context, metro string) error

	// ReleaseSeat decrements claimed, flooring at zero. Used only to undo a
	// claim when the follow-up signup insert fails.
	ReleaseSeat(ctx context.Context, metro string) error

	GetAvailability(ctx context.Context, metro string) (*SeatAllocation, error)
	TotalAvailability(ctx context.Context) (*SeatAllocation, error)
	SetCapacity(ctx context.Context, metro string, total int) (*SeatAllocation, error)
}
