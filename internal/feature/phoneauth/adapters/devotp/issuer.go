// Package devotp provides a local ChallengeIssuer for development environments
// without access to the hosted identity provider. Codes are logged instead of
// being delivered over SMS.
package devotp

import (
	"context"
	"crypto/rand"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"math/big"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"golang.org/x/crypto/bcrypt"

	"parksarthi_backend/internal/feature/phoneauth/domain"
	"parksarthi_backend/internal/feature/phoneauth/domain/entity"
	"parksarthi_backend/internal/feature/phoneauth/usecase"
)

const (
	keyPrefix          = "devotp"
	codeLength         = 6
	defaultTTL         = 5 * time.Minute
	defaultMaxAttempts = 5
)

// challengeRecord is the stored form of an issued challenge. Only the bcrypt
// hash of the code is persisted.
type challengeRecord struct {
	PhoneNumber string `json:"phone_number"`
	CodeHash    string `json:"code_hash"`
	Attempts    int    `json:"attempts"`
}

// Issuer implements usecase.ChallengeIssuer on top of Redis.
type Issuer struct {
	rdb         *redis.Client
	ttl         time.Duration
	maxAttempts int

	// generate produces the OTP code; replaced in tests.
	generate func() (string, error)
}

// Compile-time check that Issuer implements ChallengeIssuer.
var _ usecase.ChallengeIssuer = (*Issuer)(nil)

// NewIssuer creates an Issuer. If ttl is 0 it defaults to 5 minutes; if
// maxAttempts is 0 it defaults to 5.
func NewIssuer(rdb *redis.Client, ttl time.Duration, maxAttempts int) *Issuer {
	if ttl <= 0 {
		ttl = defaultTTL
	}
	if maxAttempts <= 0 {
		maxAttempts = defaultMaxAttempts
	}
	return &Issuer{rdb: rdb, ttl: ttl, maxAttempts: maxAttempts, generate: randomCode}
}

func challengeKey(handle string) string {
	return keyPrefix + ":" + handle
}

// randomCode returns a uniformly random 6-digit code.
func randomCode() (string, error) {
	max := big.NewInt(1)
	for i := 0; i < codeLength; i++ {
		max.Mul(max, big.NewInt(10))
	}
	n, err := rand.Int(rand.Reader, max)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%0*d", codeLength, n), nil
}

// RequestChallenge issues a local challenge: the code's bcrypt hash is stored
// under a fresh handle with a TTL, and the code itself is written to the log.
func (i *Issuer) RequestChallenge(ctx context.Context, phoneNumber, botToken string) (string, error) {
	code, err := i.generate()
	if err != nil {
		return "", fmt.Errorf("generate code: %w", err)
	}
	hash, err := bcrypt.GenerateFromPassword([]byte(code), bcrypt.DefaultCost)
	if err != nil {
		return "", fmt.Errorf("hash code: %w", err)
	}

	handle := uuid.NewString()
	data, err := json.Marshal(challengeRecord{PhoneNumber: phoneNumber, CodeHash: string(hash)})
	if err != nil {
		return "", err
	}
	if err := i.rdb.Set(ctx, challengeKey(handle), data, i.ttl).Err(); err != nil {
		return "", fmt.Errorf("store challenge: %w", err)
	}

	slog.Info("dev OTP issued", "phone", phoneNumber, "code", code, "handle", handle)
	return handle, nil
}

// ConfirmChallenge verifies the code against the stored hash. A matching code
// consumes the challenge; a mismatch counts an attempt and retains it so the
// user may retry, until the attempt budget is exhausted.
func (i *Issuer) ConfirmChallenge(ctx context.Context, handle, code string) (*entity.AuthSession, error) {
	key := challengeKey(handle)
	data, err := i.rdb.Get(ctx, key).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, domain.ErrCodeExpired
		}
		return nil, fmt.Errorf("load challenge: %w", err)
	}

	var rec challengeRecord
	if err := json.Unmarshal(data, &rec); err != nil {
		return nil, fmt.Errorf("decode challenge: %w", err)
	}

	rec.Attempts++
	if rec.Attempts > i.maxAttempts {
		_ = i.rdb.Del(ctx, key).Err()
		return nil, domain.ErrRateLimited
	}

	if bcrypt.CompareHashAndPassword([]byte(rec.CodeHash), []byte(code)) != nil {
		updated, merr := json.Marshal(rec)
		if merr == nil {
			_ = i.rdb.Set(ctx, key, updated, redis.KeepTTL).Err()
		}
		return nil, domain.ErrInvalidCode
	}

	// Consumed exactly once.
	if err := i.rdb.Del(ctx, key).Err(); err != nil {
		return nil, fmt.Errorf("consume challenge: %w", err)
	}

	return &entity.AuthSession{
		UID:         "dev-" + strings.TrimPrefix(rec.PhoneNumber, "+"),
		PhoneNumber: rec.PhoneNumber,
	}, nil
}
