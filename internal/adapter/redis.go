package adapter

import (
	"context"
	"time"

	"github.com/go-redis/redis_rate/v10"
	"github.com/redis/go-redis/v9"
)

// RedisClient defines the interface for Redis operations to enable mocking
//
//go:generate mockgen -source=redis.go -destination=../mocks/redis.go -package=mocks -mock_names=RedisClient=MockRedisClient
type RedisClient interface {
	// Ping checks if Redis is reachable
	Ping(ctx context.Context) *redis.StatusCmd

	// HGet returns the value of a hash field
	HGet(ctx context.Context, key, field string) *redis.StringCmd

	// HSet sets a hash field
	HSet(ctx context.Context, key, field string, value interface{}) *redis.IntCmd

	// HSetNX sets a hash field only if it does not exist yet
	HSetNX(ctx context.Context, key, field string, value interface{}) *redis.BoolCmd

	// HDel deletes hash fields
	HDel(ctx context.Context, key string, fields ...string) *redis.IntCmd

	// HExists reports whether a hash field exists
	HExists(ctx context.Context, key, field string) *redis.BoolCmd

	// HLen returns the number of fields in a hash
	HLen(ctx context.Context, key string) *redis.IntCmd

	// HVals returns all values of a hash
	HVals(ctx context.Context, key string) *redis.StringSliceCmd

	// HScan iterates over the fields of a hash
	HScan(ctx context.Context, key string, cursor uint64, match string, count int64) *redis.ScanCmd

	// HIncrByDecimal atomically adds a decimal string to a hash field (HINCRBYFLOAT).
	// The increment is sent as a string so no float64 conversion happens client side.
	HIncrByDecimal(ctx context.Context, key, field, incr string) *redis.StringCmd

	// SetNX sets a key with an expiry only if it does not exist yet
	SetNX(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.BoolCmd

	// Exists returns how many of the given keys exist
	Exists(ctx context.Context, keys ...string) *redis.IntCmd

	// Del deletes keys
	Del(ctx context.Context, keys ...string) *redis.IntCmd

	// TTL returns the remaining time to live of a key
	TTL(ctx context.Context, key string) *redis.DurationCmd

	// NewRateLimiter creates a new rate limiter using this Redis client
	NewRateLimiter() RedisRateLimiter

	// Close closes the Redis connection
	Close() error
}

// RealRedisClient wraps the actual Redis client
type RealRedisClient struct {
	client *redis.Client
}

// NewRedisClient creates a new Redis client
func NewRedisClient(addr, password string, db int) RedisClient {
	return &RealRedisClient{
		client: redis.NewClient(&redis.Options{
			Addr:     addr,
			Password: password,
			DB:       db,
		}),
	}
}

func (r *RealRedisClient) Ping(ctx context.Context) *redis.StatusCmd {
	return r.client.Ping(ctx)
}

func (r *RealRedisClient) HGet(ctx context.Context, key, field string) *redis.StringCmd {
	return r.client.HGet(ctx, key, field)
}

func (r *RealRedisClient) HSet(ctx context.Context, key, field string, value interface{}) *redis.IntCmd {
	return r.client.HSet(ctx, key, field, value)
}

func (r *RealRedisClient) HSetNX(ctx context.Context, key, field string, value interface{}) *redis.BoolCmd {
	return r.client.HSetNX(ctx, key, field, value)
}

func (r *RealRedisClient) HDel(ctx context.Context, key string, fields ...string) *redis.IntCmd {
	return r.client.HDel(ctx, key, fields...)
}

func (r *RealRedisClient) HExists(ctx context.Context, key, field string) *redis.BoolCmd {
	return r.client.HExists(ctx, key, field)
}

func (r *RealRedisClient) HLen(ctx context.Context, key string) *redis.IntCmd {
	return r.client.HLen(ctx, key)
}

func (r *RealRedisClient) HVals(ctx context.Context, key string) *redis.StringSliceCmd {
	return r.client.HVals(ctx, key)
}

func (r *RealRedisClient) HScan(ctx context.Context, key string, cursor uint64, match string, count int64) *redis.ScanCmd {
	return r.client.HScan(ctx, key, cursor, match, count)
}

func (r *RealRedisClient) HIncrByDecimal(ctx context.Context, key, field, incr string) *redis.StringCmd {
	cmd := redis.NewStringCmd(ctx, "hincrbyfloat", key, field, incr)
	_ = r.client.Process(ctx, cmd)
	return cmd
}

func (r *RealRedisClient) SetNX(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.BoolCmd {
	return r.client.SetNX(ctx, key, value, expiration)
}

func (r *RealRedisClient) Exists(ctx context.Context, keys ...string) *redis.IntCmd {
	return r.client.Exists(ctx, keys...)
}

func (r *RealRedisClient) Del(ctx context.Context, keys ...string) *redis.IntCmd {
	return r.client.Del(ctx, keys...)
}

func (r *RealRedisClient) TTL(ctx context.Context, key string) *redis.DurationCmd {
	return r.client.TTL(ctx, key)
}

// NewRateLimiter creates a new rate limiter using this Redis client
func (r *RealRedisClient) NewRateLimiter() RedisRateLimiter {
	return NewRateLimiter(redis_rate.NewLimiter(r.client))
}

// Close closes the Redis connection
func (r *RealRedisClient) Close() error {
	return r.client.Close()
}

// RedisRateLimiter defines the interface for distributed rate limiting operations
//
//go:generate mockgen -source=redis.go -destination=../mocks/redis.go -package=mocks -mock_names=RedisRateLimiter=MockRedisRateLimiter
type RedisRateLimiter interface {
	// Allow checks if a request is allowed based on the rate limit
	// Returns the result containing allowed status and retry information
	Allow(ctx context.Context, key string, limit redis_rate.Limit) (*redis_rate.Result, error)
}

// RealRateLimiter wraps the redis_rate.Limiter
type RealRateLimiter struct {
	limiter *redis_rate.Limiter
}

// NewRateLimiter creates a new rate limiter from a redis_rate.Limiter
func NewRateLimiter(limiter *redis_rate.Limiter) RedisRateLimiter {
	return &RealRateLimiter{
		limiter: limiter,
	}
}

// Allow checks if a request is allowed based on the rate limit
func (r *RealRateLimiter) Allow(ctx context.Context, key string, limit redis_rate.Limit) (*redis_rate.Result, error) {
	return r.limiter.Allow(ctx, key, limit)
}
