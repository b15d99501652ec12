// Package cache provides caching implementations for repository interfaces.
package cache

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"

	"parksarthi_backend/internal/feature/parking/domain/entity"
	"parksarthi_backend/internal/feature/parking/usecase"
)

// CachingSpotRepository decorates a SpotRepository with Redis caching.
// It implements the decorator pattern, transparently adding caching without
// modifying the underlying repository. Availability churns, so the TTL is
// kept short.
type CachingSpotRepository struct {
	inner usecase.SpotRepository
	rdb   *redis.Client
	ttl   time.Duration
	key   string
}

// Compile-time check that CachingSpotRepository implements SpotRepository.
var _ usecase.SpotRepository = (*CachingSpotRepository)(nil)

// NewCachingSpotRepository decorates a SpotRepository with Redis caching.
// If ttl is 0, it defaults to 30 seconds.
func NewCachingSpotRepository(rdb *redis.Client, ttl time.Duration, inner usecase.SpotRepository) *CachingSpotRepository {
	if ttl <= 0 {
		ttl = 30 * time.Second
	}
	return &CachingSpotRepository{
		inner: inner,
		rdb:   rdb,
		ttl:   ttl,
		key:   "spots:active",
	}
}

// ListActive retrieves active spots, checking cache first then falling back
// to the database.
func (c *CachingSpotRepository) ListActive(ctx context.Context) ([]entity.ParkingSpot, error) {
	// Bypass cache if Redis is not configured
	if c.rdb == nil {
		return c.inner.ListActive(ctx)
	}

	// 1) Check cache
	if b, err := c.rdb.Get(ctx, c.key).Bytes(); err == nil && len(b) > 0 {
		var out []entity.ParkingSpot
		if err := json.Unmarshal(b, &out); err == nil {
			return out, nil
		}
		// Delete corrupted cache entry
		_ = c.rdb.Del(ctx, c.key).Err()
	}

	// 2) Fallback to database
	out, err := c.inner.ListActive(ctx)
	if err != nil {
		return nil, err
	}

	// 3) Store in cache (best effort)
	if b, err := json.Marshal(out); err == nil {
		_ = c.rdb.Set(ctx, c.key, b, c.ttl).Err()
	}

	return out, nil
}

// Invalidate drops the cached spot list. Called after seeding or slot updates.
func (c *CachingSpotRepository) Invalidate(ctx context.Context) error {
	if c.rdb == nil {
		return nil
	}
	return c.rdb.Del(ctx, c.key).Err()
}
