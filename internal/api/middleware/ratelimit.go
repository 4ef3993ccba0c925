package middleware

import (
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis_rate/v10"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/mobius-network/tipbot-ledger/internal/adapter"
	apierrors "github.com/mobius-network/tipbot-ledger/internal/api/shared/errors"
	"github.com/mobius-network/tipbot-ledger/internal/logger"
)

const (
	RATE_LIMIT_REMAINING_HEADER = "X-RateLimit-Remaining"
	RATE_LIMIT_KEY_PREFIX       = "ratelimit:api:"
)

// RateLimitConfig holds the per-client request rate
type RateLimitConfig struct {
	Enabled           bool
	RequestsPerSecond int
	Burst             int
}

// RateLimit throttles requests per authenticated subject, or per client IP for anonymous callers.
// The limit is shared across API replicas through Redis; when Redis fails a per-process limiter takes over.
func RateLimit(limiter adapter.RedisRateLimiter, cfg RateLimitConfig) gin.HandlerFunc {
	if !cfg.Enabled || cfg.RequestsPerSecond <= 0 {
		return func(c *gin.Context) { c.Next() }
	}
	if cfg.Burst <= 0 {
		cfg.Burst = cfg.RequestsPerSecond
	}

	limit := redis_rate.Limit{
		Rate:   cfg.RequestsPerSecond,
		Burst:  cfg.Burst,
		Period: time.Second,
	}
	fallback := newLocalLimiters(cfg)

	return func(c *gin.Context) {
		key := rateLimitKey(c)

		res, err := limiter.Allow(c.Request.Context(), RATE_LIMIT_KEY_PREFIX+key, limit)
		if err != nil {
			logger.WarnCtx(c.Request.Context(), "Redis rate limiter error, falling back to local", zap.Error(err))
			if !fallback.get(key).Allow() {
				abortRateLimited(c)
				return
			}
			c.Next()
			return
		}

		c.Header(RATE_LIMIT_REMAINING_HEADER, strconv.Itoa(res.Remaining))
		if res.Allowed == 0 {
			abortRateLimited(c)
			return
		}

		c.Next()
	}
}

func rateLimitKey(c *gin.Context) string {
	if subject := c.GetString(AUTH_SUBJECT_KEY); subject != "" {
		return "sub:" + subject
	}
	return "ip:" + c.ClientIP()
}

func abortRateLimited(c *gin.Context) {
	c.AbortWithStatusJSON(http.StatusTooManyRequests, apierrors.NewRateLimitedError("Too many requests"))
}

// localLimiters keeps one token bucket per client key
type localLimiters struct {
	mu       sync.Mutex
	cfg      RateLimitConfig
	limiters map[string]*rate.Limiter
}

func newLocalLimiters(cfg RateLimitConfig) *localLimiters {
	return &localLimiters{cfg: cfg, limiters: make(map[string]*rate.Limiter)}
}

func (l *localLimiters) get(key string) *rate.Limiter {
	l.mu.Lock()
	defer l.mu.Unlock()

	limiter, ok := l.limiters[key]
	if !ok {
		limiter = rate.NewLimiter(rate.Limit(l.cfg.RequestsPerSecond), l.cfg.Burst)
		l.limiters[key] = limiter
	}
	return limiter
}
