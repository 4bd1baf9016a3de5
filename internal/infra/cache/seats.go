package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/go-redis/redis/v8"

	"github.com/hestialabs/leadgate/internal/entity"
)

const snapshotTTL = 5 * time.Minute

// SeatCache mirrors successful seat-ledger reads into Redis so the public
// widget can serve a recent number while Postgres is unreachable. The TTL
// bounds how stale a served snapshot can get.
type SeatCache struct {
	client *redis.Client
}

func NewSeatCache(client *redis.Client) *SeatCache {
	return &SeatCache{client: client}
}

func key(metro string) string {
	return "seats:" + metro
}

func (c *SeatCache) Put(ctx context.Context, a *entity.SeatAllocation) {
	if c == nil || c.client == nil {
		return
	}

	body, err := json.Marshal(a)
	if err != nil {
		return
	}

	// A cache write failure is not worth surfacing anywhere.
	c.client.Set(ctx, key(a.Metro), body, snapshotTTL)
}

func (c *SeatCache) Get(ctx context.Context, metro string) (*entity.SeatAllocation, bool) {
	if c == nil || c.client == nil {
		return nil, false
	}

	body, err := c.client.Get(ctx, key(metro)).Result()
	if err != nil {
		// redis.Nil or a connection error; either way there is no snapshot
		return nil, false
	}

	var a entity.SeatAllocation
	if err := json.Unmarshal([]byte(body), &a); err != nil {
		return nil, false
	}

	return &a, true
}
