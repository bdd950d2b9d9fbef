//go:build unit

package middleware_test

import (
	"encoding/json"
	"net/http"
	"strconv"
	"testing"
	"time"

	"workshop-booking/internal/domain/user"
	"workshop-booking/internal/handler/middleware"
	"workshop-booking/internal/pkg/config"
	"workshop-booking/internal/pkg/jwt"
	"workshop-booking/internal/usecase"
	"workshop-booking/tests/common/redistest"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func limiterConfig(capacity int) config.RateLimitConfig {
	return config.RateLimitConfig{
		Enabled:        true,
		Capacity:       capacity,
		RefillTokens:   capacity,
		RefillInterval: time.Minute,
		TTL:            2 * time.Minute,
		Prefix:         "rl-test",
	}
}

func TestRateLimiter_Disabled(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(middleware.NewRateLimiter(config.RateLimitConfig{Enabled: false}, nil))
	r.GET("/ping", func(c *gin.Context) { c.Status(http.StatusNoContent) })

	for range 5 {
		w := doGet(r, "/ping", "")
		assert.Equal(t, http.StatusNoContent, w.Code)
		assert.Empty(t, w.Header().Get("X-RateLimit-Limit"))
	}
}

func TestRateLimiter_FailsOpenWhenRedisIsDown(t *testing.T) {
	gin.SetMode(gin.TestMode)
	rdb := redis.NewClient(&redis.Options{
		Addr:        "127.0.0.1:1",
		DialTimeout: 50 * time.Millisecond,
		MaxRetries:  -1,
	})
	t.Cleanup(func() { _ = rdb.Close() })

	cfg := config.RateLimitConfig{
		Enabled:        true,
		Capacity:       1,
		RefillTokens:   1,
		RefillInterval: time.Minute,
		TTL:            time.Minute,
		Prefix:         "rl-test",
	}
	r := gin.New()
	r.Use(middleware.NewRateLimiter(cfg, rdb))
	r.GET("/ping", func(c *gin.Context) { c.Status(http.StatusNoContent) })

	for range 3 {
		w := doGet(r, "/ping", "")
		assert.Equal(t, http.StatusNoContent, w.Code)
	}
}

func TestRateLimiter_TokenBucket(t *testing.T) {
	gin.SetMode(gin.TestMode)
	const capacity = 3

	r := gin.New()
	r.Use(middleware.ErrorHandler())
	r.Use(middleware.NewRateLimiter(limiterConfig(capacity), redistest.NewBucketScripter()))
	r.GET("/ping", func(c *gin.Context) { c.Status(http.StatusNoContent) })

	for i := range capacity {
		w := doGet(r, "/ping", "")
		require.Equal(t, http.StatusNoContent, w.Code, "request %d", i+1)
		assert.Equal(t, strconv.Itoa(capacity), w.Header().Get("X-RateLimit-Limit"))
		assert.Equal(t, strconv.Itoa(capacity-i-1), w.Header().Get("X-RateLimit-Remaining"))
		assert.Empty(t, w.Header().Get("Retry-After"))
	}

	w := doGet(r, "/ping", "")
	require.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.Equal(t, "0", w.Header().Get("X-RateLimit-Remaining"))
	assert.Equal(t, "60", w.Header().Get("Retry-After"))

	var body struct {
		Error struct {
			Message string `json:"message"`
		} `json:"error"`
		Detail struct {
			RetryAfter int `json:"retryAfter"`
		} `json:"detail"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "Rate limit exceeded", body.Error.Message)
	assert.Equal(t, 60, body.Detail.RetryAfter)
}

func TestRateLimiter_BucketsAuthenticatedCallersByUser(t *testing.T) {
	gin.SetMode(gin.TestMode)
	buckets := redistest.NewBucketScripter()
	limit := middleware.NewRateLimiter(limiterConfig(1), buckets)
	auth := middleware.NewAuthMiddleware(usecase.NewTokenValidator(jwt.NewService(testSecret, "")))

	r := gin.New()
	r.Use(middleware.ErrorHandler())
	ok := func(c *gin.Context) { c.Status(http.StatusNoContent) }
	r.GET("/me", auth.RequireAuth(), limit, ok)
	r.GET("/public", limit, ok)

	alice, bob := uuid.New(), uuid.New()
	aliceToken := "Bearer " + mintToken(t, alice, string(user.RoleCustomer), time.Hour)
	bobToken := "Bearer " + mintToken(t, bob, string(user.RoleCustomer), time.Hour)

	assert.Equal(t, http.StatusNoContent, doGet(r, "/me", aliceToken).Code)
	assert.Equal(t, http.StatusTooManyRequests, doGet(r, "/me", aliceToken).Code)
	// same client IP, different user: separate bucket
	assert.Equal(t, http.StatusNoContent, doGet(r, "/me", bobToken).Code)
	assert.Equal(t, http.StatusNoContent, doGet(r, "/public", "").Code)

	keys := buckets.Keys()
	require.Len(t, keys, 4)
	assert.Equal(t, "rl-test:user:"+alice.String()+":/me", keys[0])
	assert.Equal(t, "rl-test:user:"+bob.String()+":/me", keys[2])
	assert.Contains(t, keys[3], "rl-test:ip:")
	assert.NotContains(t, keys[3], "user")
}
