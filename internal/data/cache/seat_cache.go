package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"movie-booking/internal/data/entity"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// SeatCache keeps the resolved seat grid per showtime in Redis with a short
// TTL so the seat map endpoint does not hit Postgres on every poll. A nil
// client disables the cache entirely; every method is safe to call then.
type SeatCache struct {
	client *redis.Client
	ttl    time.Duration
	log    *zap.Logger
}

func NewSeatCache(client *redis.Client, ttl time.Duration, log *zap.Logger) *SeatCache {
	return &SeatCache{
		client: client,
		ttl:    ttl,
		log:    log.With(zap.String("cache", "seat")),
	}
}

func (c *SeatCache) key(showtimeID uuid.UUID) string {
	return fmt.Sprintf("seats:%s", showtimeID.String())
}

// Get returns the cached grid or nil on miss. Cache errors are logged and
// treated as misses so Redis trouble never breaks seat resolution.
func (c *SeatCache) Get(ctx context.Context, showtimeID uuid.UUID) []*entity.Seat {
	if c == nil || c.client == nil {
		return nil
	}

	data, err := c.client.Get(ctx, c.key(showtimeID)).Bytes()
	if err == redis.Nil {
		return nil
	}
	if err != nil {
		c.log.Warn("Failed to read seat cache",
			zap.Error(err),
			zap.String("showtime_id", showtimeID.String()),
		)
		return nil
	}

	var seats []*entity.Seat
	if err := json.Unmarshal(data, &seats); err != nil {
		c.log.Warn("Failed to decode cached seats",
			zap.Error(err),
			zap.String("showtime_id", showtimeID.String()),
		)
		return nil
	}

	return seats
}

func (c *SeatCache) Set(ctx context.Context, showtimeID uuid.UUID, seats []*entity.Seat) {
	if c == nil || c.client == nil {
		return
	}

	data, err := json.Marshal(seats)
	if err != nil {
		c.log.Warn("Failed to encode seats for cache", zap.Error(err))
		return
	}

	if err := c.client.Set(ctx, c.key(showtimeID), data, c.ttl).Err(); err != nil {
		c.log.Warn("Failed to write seat cache",
			zap.Error(err),
			zap.String("showtime_id", showtimeID.String()),
		)
	}
}

// Invalidate drops the cached grid after a successful booking so the next
// read reflects the flipped seats immediately instead of after TTL expiry.
func (c *SeatCache) Invalidate(ctx context.Context, showtimeID uuid.UUID) {
	if c == nil || c.client == nil {
		return
	}

	if err := c.client.Del(ctx, c.key(showtimeID)).Err(); err != nil {
		c.log.Warn("Failed to invalidate seat cache",
			zap.Error(err),
			zap.String("showtime_id", showtimeID.String()),
		)
	}
}
