// Package challengestore persists pending challenges in Redis so a
// verification request can find the provider handle issued to an earlier
// dispatch request.
package challengestore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"parksarthi_backend/internal/feature/phoneauth/domain"
	"parksarthi_backend/internal/feature/phoneauth/domain/entity"
)

const defaultTTL = 10 * time.Minute

// Store maps server-issued challenge IDs to pending challenges, TTL-bound.
type Store struct {
	rdb    *redis.Client
	prefix string
	ttl    time.Duration
}

// NewStore creates a Store. If prefix is empty it uses "challenge"; if ttl is
// 0 it defaults to 10 minutes.
func NewStore(rdb *redis.Client, prefix string, ttl time.Duration) *Store {
	if prefix == "" {
		prefix = "challenge"
	}
	if ttl <= 0 {
		ttl = defaultTTL
	}
	return &Store{rdb: rdb, prefix: prefix, ttl: ttl}
}

func (s *Store) key(id string) string {
	return fmt.Sprintf("%s:%s", s.prefix, id)
}

// Save persists a pending challenge under the given ID.
func (s *Store) Save(ctx context.Context, id string, ch *entity.PendingChallenge) error {
	data, err := json.Marshal(ch)
	if err != nil {
		return fmt.Errorf("failed to marshal challenge: %w", err)
	}
	return s.rdb.Set(ctx, s.key(id), data, s.ttl).Err()
}

// Find retrieves a pending challenge by ID. The challenge is left in place so
// a failed confirmation can be retried without a re-issued challenge.
func (s *Store) Find(ctx context.Context, id string) (*entity.PendingChallenge, error) {
	data, err := s.rdb.Get(ctx, s.key(id)).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, domain.ErrChallengeNotFound
		}
		return nil, err
	}
	var ch entity.PendingChallenge
	if err := json.Unmarshal(data, &ch); err != nil {
		return nil, fmt.Errorf("failed to unmarshal challenge: %w", err)
	}
	return &ch, nil
}

// Delete discards a pending challenge after successful confirmation or reset.
func (s *Store) Delete(ctx context.Context, id string) error {
	return s.rdb.Del(ctx, s.key(id)).Err()
}
