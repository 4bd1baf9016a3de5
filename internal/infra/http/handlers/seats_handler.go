package handlers

import (
	"log"
	"net/http"
	"strings"

	"github.com/hestialabs/leadgate/internal/entity"
	"github.com/hestialabs/leadgate/internal/infra/cache"
)

// fallbackSeatCount is served when both Postgres and the Redis snapshot are
// unavailable. The widget always gets a 200.
const fallbackSeatCount = 25

type seatsResponse struct {
	Metro     string `json:"metro"`
	Seats     int    `json:"seats"`
	Total     int    `json:"total"`
	Claimed   int    `json:"claimed"`
	Available int    `json:"available"`
}

type SeatsHandler struct {
	Seats           entity.SeatRepositoryInterface
	Cache           *cache.SeatCache
	DefaultCapacity int
}

func NewSeatsHandler(seats entity.SeatRepositoryInterface, seatCache *cache.SeatCache, defaultCapacity int) *SeatsHandler {
	return &SeatsHandler{
		Seats:           seats,
		Cache:           seatCache,
		DefaultCapacity: defaultCapacity,
	}
}

// Handle serves the public seat-counter widget. Live numbers get a short
// CDN lifetime with a stale-serve window; any backend failure degrades to
// the Redis snapshot or the fixed fallback, marked uncacheable.
func (h *SeatsHandler) Handle(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	metro := strings.ToLower(strings.TrimSpace(r.URL.Query().Get("metro")))

	var (
		allocation *entity.SeatAllocation
		err        error
	)
	if metro == "" {
		allocation, err = h.Seats.TotalAvailability(ctx)
	} else {
		allocation, err = h.Seats.GetAvailability(ctx, metro)
		if err == entity.ErrRegionNotFound {
			// No signups for this metro yet: full default capacity.
			allocation = &entity.SeatAllocation{Metro: metro, Total: h.DefaultCapacity, Claimed: 0}
			err = nil
		}
	}

	if err == nil {
		h.Cache.Put(ctx, allocation)
		w.Header().Set("Cache-Control", "public, s-maxage=60, stale-while-revalidate=300")
		writeJSON(w, http.StatusOK, toSeatsResponse(allocation))
		return
	}

	log.Printf("[SEATS] ledger read failed (metro=%q): %v", metro, err)
	w.Header().Set("Cache-Control", "no-store")

	cacheKey := metro
	if cacheKey == "" {
		cacheKey = "all"
	}
	if snapshot, ok := h.Cache.Get(ctx, cacheKey); ok {
		writeJSON(w, http.StatusOK, toSeatsResponse(snapshot))
		return
	}

	writeJSON(w, http.StatusOK, seatsResponse{
		Metro:     cacheKey,
		Seats:     fallbackSeatCount,
		Total:     fallbackSeatCount,
		Claimed:   0,
		Available: fallbackSeatCount,
	})
}

func toSeatsResponse(a *entity.SeatAllocation) seatsResponse {
	return seatsResponse{
		Metro:     a.Metro,
		Seats:     a.Available(),
		Total:     a.Total,
		Claimed:   a.Claimed,
		Available: a.Available(),
	}
}
