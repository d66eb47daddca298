package middleware

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"
)

// RateLimitConfig defines configuration for rate limiting
type RateLimitConfig struct {
	// Window is the time window for rate limiting
	Window time.Duration
	// Limit is the maximum number of requests allowed in the window
	Limit int
	// Key prefix for Redis keys
	KeyPrefix string
}

// RateLimiter is a fixed-window counter stored in Redis.
type RateLimiter struct {
	redis  *redis.Client
	config RateLimitConfig
	log    *zap.Logger
}

// NewRateLimiter creates a new rate limiter instance
func NewRateLimiter(redisClient *redis.Client, config RateLimitConfig, log *zap.Logger) *RateLimiter {
	return &RateLimiter{
		redis:  redisClient,
		config: config,
		log:    log,
	}
}

// NewAuthRateLimiter limits signup and login attempts to 20 per client IP
// per minute.
func NewAuthRateLimiter(redisClient *redis.Client, log *zap.Logger) *RateLimiter {
	return NewRateLimiter(redisClient, RateLimitConfig{
		Window:    time.Minute,
		Limit:     20,
		KeyPrefix: "rate_limit:auth",
	}, log)
}

// Middleware enforces the limit per client IP. Redis failures let the
// request through.
func (rl *RateLimiter) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		allowed, remaining, resetTime, err := rl.IsAllowed(c.Request.Context(), c.ClientIP())
		if err != nil {
			rl.log.Warn("rate limit check failed", zap.Error(err))
			c.Header("X-RateLimit-Error", "rate limit check failed")
			c.Next()
			return
		}

		c.Header("X-RateLimit-Limit", strconv.Itoa(rl.config.Limit))
		c.Header("X-RateLimit-Remaining", strconv.Itoa(remaining))
		c.Header("X-RateLimit-Reset", strconv.FormatInt(resetTime.Unix(), 10))

		if !allowed {
			rateLimitRejects.Inc()
			c.Header("Retry-After", strconv.Itoa(int(time.Until(resetTime).Seconds())+1))
			c.AbortWithStatusJSON(http.StatusTooManyRequests, ErrorResponse{Error: "Too many requests"})
			return
		}

		c.Next()
	}
}

// IsAllowed counts a request for key in the current window.
// Returns: allowed, remaining requests, reset time, error
func (rl *RateLimiter) IsAllowed(ctx context.Context, key string) (bool, int, time.Time, error) {
	windowStart := time.Now().Truncate(rl.config.Window)
	redisKey := fmt.Sprintf("%s:%s:%d", rl.config.KeyPrefix, key, windowStart.Unix())

	pipe := rl.redis.Pipeline()
	incr := pipe.Incr(ctx, redisKey)
	pipe.Expire(ctx, redisKey, rl.config.Window)
	if _, err := pipe.Exec(ctx); err != nil {
		return false, 0, time.Time{}, err
	}

	count := int(incr.Val())
	remaining := rl.config.Limit - count
	if remaining < 0 {
		remaining = 0
	}
	return count <= rl.config.Limit, remaining, windowStart.Add(rl.config.Window), nil
}
