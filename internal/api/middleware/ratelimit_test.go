package middleware_test

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis_rate/v10"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/assert"

	"github.com/mobius-network/tipbot-ledger/internal/api/middleware"
	"github.com/mobius-network/tipbot-ledger/internal/mocks"
)

func TestRateLimit_Redis(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	limiter := mocks.NewMockRedisRateLimiter(ctrl)
	cfg := middleware.RateLimitConfig{Enabled: true, RequestsPerSecond: 2, Burst: 3}

	gomock.InOrder(
		limiter.EXPECT().
			Allow(gomock.Any(), "ratelimit:api:sub:slack-gateway", redis_rate.Limit{Rate: 2, Burst: 3, Period: time.Second}).
			Return(&redis_rate.Result{Allowed: 1, Remaining: 2}, nil),
		limiter.EXPECT().
			Allow(gomock.Any(), "ratelimit:api:sub:slack-gateway", gomock.Any()).
			Return(&redis_rate.Result{Allowed: 0, Remaining: 0}, nil),
	)

	setSubject := func(c *gin.Context) {
		c.Set(middleware.AUTH_SUBJECT_KEY, "slack-gateway")
		c.Next()
	}
	router := newRouter(setSubject, middleware.RateLimit(limiter, cfg))

	w := serve(router, httptest.NewRequest(http.MethodGet, "/ping", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "2", w.Header().Get(middleware.RATE_LIMIT_REMAINING_HEADER))

	w = serve(router, httptest.NewRequest(http.MethodGet, "/ping", nil))
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.Contains(t, w.Body.String(), "rate_limited")
}

func TestRateLimit_FallbackOnRedisError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	limiter := mocks.NewMockRedisRateLimiter(ctrl)
	limiter.EXPECT().
		Allow(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, errors.New("connection refused")).
		Times(2)

	router := newRouter(middleware.RateLimit(limiter, middleware.RateLimitConfig{
		Enabled:           true,
		RequestsPerSecond: 1,
		Burst:             1,
	}))

	w := serve(router, httptest.NewRequest(http.MethodGet, "/ping", nil))
	assert.Equal(t, http.StatusOK, w.Code)

	w = serve(router, httptest.NewRequest(http.MethodGet, "/ping", nil))
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
}

func TestRateLimit_Disabled(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	// No Allow call expected
	limiter := mocks.NewMockRedisRateLimiter(ctrl)
	router := newRouter(middleware.RateLimit(limiter, middleware.RateLimitConfig{Enabled: false}))

	for range 5 {
		w := serve(router, httptest.NewRequest(http.MethodGet, "/ping", nil))
		assert.Equal(t, http.StatusOK, w.Code)
	}
}
