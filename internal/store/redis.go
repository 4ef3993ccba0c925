package store

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/shopspring/decimal"

	"github.com/mobius-network/tipbot-ledger/internal/adapter"
	"github.com/mobius-network/tipbot-ledger/internal/domain"
)

const (
	balanceHash = "balance"
	addressHash = "address"
	lockPrefix  = "lock"
	tipsPrefix  = "tips"
)

type redisStore struct {
	client    adapter.RedisClient
	namespace string
}

// NewRedisStore creates a Store backed by Redis. Every key is prefixed with namespace.
func NewRedisStore(client adapter.RedisClient, namespace string) Store {
	if namespace == "" {
		namespace = domain.DEFAULT_REDIS_NAMESPACE
	}
	return &redisStore{client: client, namespace: namespace}
}

func (s *redisStore) key(parts ...string) string {
	k := s.namespace
	for _, p := range parts {
		k += ":" + p
	}
	return k
}

// Ping checks that Redis is reachable
func (s *redisStore) Ping(ctx context.Context) error {
	return s.client.Ping(ctx).Err()
}

// IncrementBalance uses HINCRBYFLOAT so concurrent increments never race
func (s *redisStore) IncrementBalance(ctx context.Context, user domain.UserID, amount decimal.Decimal) (decimal.Decimal, error) {
	val, err := s.client.HIncrByDecimal(ctx, s.key(balanceHash), string(user), domain.NormalizeAmount(amount).String()).Result()
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to increment balance: %w", err)
	}
	return domain.ParseAmount(val)
}

func (s *redisStore) GetBalance(ctx context.Context, user domain.UserID) (decimal.Decimal, error) {
	val, err := s.client.HGet(ctx, s.key(balanceHash), string(user)).Result()
	if errors.Is(err, redis.Nil) {
		return decimal.Zero, nil
	}
	if err != nil {
		return decimal.Zero, fmt.Errorf("failed to get balance: %w", err)
	}
	return domain.ParseAmount(val)
}

func (s *redisStore) GetAddress(ctx context.Context, user domain.UserID) (string, error) {
	val, err := s.client.HGet(ctx, s.key(addressHash), string(user)).Result()
	if errors.Is(err, redis.Nil) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("failed to get address: %w", err)
	}
	return val, nil
}

// SetAddress uses HSETNX so concurrent registrations cannot overwrite each other's account
func (s *redisStore) SetAddress(ctx context.Context, user domain.UserID, address string) (bool, error) {
	ok, err := s.client.HSetNX(ctx, s.key(addressHash), string(user), address).Result()
	if err != nil {
		return false, fmt.Errorf("failed to set address: %w", err)
	}
	return ok, nil
}

func (s *redisStore) ListLinkedUsers(ctx context.Context, cursor uint64, count int64) ([]LinkedUser, uint64, error) {
	kvs, next, err := s.client.HScan(ctx, s.key(addressHash), cursor, "", count).Result()
	if err != nil {
		return nil, 0, fmt.Errorf("failed to scan addresses: %w", err)
	}

	// HSCAN returns field and value interleaved
	users := make([]LinkedUser, 0, len(kvs)/2)
	for i := 0; i+1 < len(kvs); i += 2 {
		if kvs[i+1] == "" {
			continue
		}
		users = append(users, LinkedUser{UserID: domain.UserID(kvs[i]), Address: kvs[i+1]})
	}

	return users, next, nil
}

func (s *redisStore) AcquireLock(ctx context.Context, name string, ttl time.Duration) (bool, error) {
	ok, err := s.client.SetNX(ctx, s.key(lockPrefix, name), "1", ttl).Result()
	if err != nil {
		return false, fmt.Errorf("failed to acquire lock %s: %w", name, err)
	}
	return ok, nil
}

func (s *redisStore) LockExists(ctx context.Context, name string) (bool, error) {
	n, err := s.client.Exists(ctx, s.key(lockPrefix, name)).Result()
	if err != nil {
		return false, fmt.Errorf("failed to check lock %s: %w", name, err)
	}
	return n > 0, nil
}

func (s *redisStore) LockTTL(ctx context.Context, name string) (time.Duration, error) {
	ttl, err := s.client.TTL(ctx, s.key(lockPrefix, name)).Result()
	if err != nil {
		return 0, fmt.Errorf("failed to get lock ttl %s: %w", name, err)
	}
	return ttl, nil
}

func (s *redisStore) ReleaseLock(ctx context.Context, name string) error {
	if err := s.client.Del(ctx, s.key(lockPrefix, name)).Err(); err != nil {
		return fmt.Errorf("failed to release lock %s: %w", name, err)
	}
	return nil
}

// AddTip uses HSETNX so a tipper is recorded at most once per message
func (s *redisStore) AddTip(ctx context.Context, message domain.MessageID, tipper domain.UserID, amount decimal.Decimal) (bool, error) {
	ok, err := s.client.HSetNX(ctx, s.key(tipsPrefix, string(message)), string(tipper), domain.NormalizeAmount(amount).String()).Result()
	if err != nil {
		return false, fmt.Errorf("failed to add tip: %w", err)
	}
	return ok, nil
}

func (s *redisStore) RemoveTip(ctx context.Context, message domain.MessageID, tipper domain.UserID) error {
	if err := s.client.HDel(ctx, s.key(tipsPrefix, string(message)), string(tipper)).Err(); err != nil {
		return fmt.Errorf("failed to remove tip: %w", err)
	}
	return nil
}

func (s *redisStore) HasTip(ctx context.Context, message domain.MessageID, tipper domain.UserID) (bool, error) {
	ok, err := s.client.HExists(ctx, s.key(tipsPrefix, string(message)), string(tipper)).Result()
	if err != nil {
		return false, fmt.Errorf("failed to check tip: %w", err)
	}
	return ok, nil
}

func (s *redisStore) TipAmounts(ctx context.Context, message domain.MessageID) ([]decimal.Decimal, error) {
	vals, err := s.client.HVals(ctx, s.key(tipsPrefix, string(message))).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get tips: %w", err)
	}

	amounts := make([]decimal.Decimal, 0, len(vals))
	for _, v := range vals {
		amount, err := domain.ParseAmount(v)
		if err != nil {
			return nil, fmt.Errorf("corrupted tip amount for message %s: %w", message, err)
		}
		amounts = append(amounts, amount)
	}
	return amounts, nil
}

func (s *redisStore) TipCount(ctx context.Context, message domain.MessageID) (int64, error) {
	n, err := s.client.HLen(ctx, s.key(tipsPrefix, string(message))).Result()
	if err != nil {
		return 0, fmt.Errorf("failed to count tips: %w", err)
	}
	return n, nil
}
