package redis

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"

	"github.com/eventease/platform-api/internal/api/metrics"
	"github.com/eventease/platform-api/internal/core/ports"
)

const (
	bookingCacheKey = "cache:bookings"
	bookingCacheTTL = time.Minute
)

// BookingCache holds the grouped bookings projection for a short TTL.
// Failures degrade to cache misses: the listing always has the database to
// fall back on, so errors are logged and swallowed.
type BookingCache struct {
	client *redis.Client
	log    zerolog.Logger
}

var _ ports.BookingCache = (*BookingCache)(nil)

func NewBookingCache(client *redis.Client, log zerolog.Logger) *BookingCache {
	return &BookingCache{client: client, log: log}
}

func (c *BookingCache) Get(ctx context.Context) (map[string][]ports.BookingView, bool) {
	raw, err := c.client.Get(ctx, bookingCacheKey).Bytes()
	if err == redis.Nil {
		metrics.BookingsCacheTotal.WithLabelValues("miss").Inc()
		return nil, false
	}
	if err != nil {
		c.log.Warn().Err(err).Msg("booking cache read failed")
		metrics.BookingsCacheTotal.WithLabelValues("miss").Inc()
		return nil, false
	}

	var grouped map[string][]ports.BookingView
	if err := json.Unmarshal(raw, &grouped); err != nil {
		c.log.Warn().Err(err).Msg("booking cache payload corrupt, dropping")
		_ = c.client.Del(ctx, bookingCacheKey).Err()
		metrics.BookingsCacheTotal.WithLabelValues("miss").Inc()
		return nil, false
	}

	metrics.BookingsCacheTotal.WithLabelValues("hit").Inc()
	return grouped, true
}

func (c *BookingCache) Set(ctx context.Context, grouped map[string][]ports.BookingView) {
	raw, err := json.Marshal(grouped)
	if err != nil {
		c.log.Warn().Err(err).Msg("booking cache encode failed")
		return
	}
	if err := c.client.Set(ctx, bookingCacheKey, raw, bookingCacheTTL).Err(); err != nil {
		c.log.Warn().Err(err).Msg("booking cache write failed")
	}
}

func (c *BookingCache) Invalidate(ctx context.Context) {
	if err := c.client.Del(ctx, bookingCacheKey).Err(); err != nil {
		c.log.Warn().Err(err).Msg("booking cache invalidation failed")
	}
}
