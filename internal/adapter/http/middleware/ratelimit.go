package middleware

import (
	"context"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/Diogo96ferreira/smart-garden-sub000/pkg/apierrors"
)

// RateLimiter counts requests per caller over a fixed window. The interface
// exists so handlers are limited by whatever backend the deployment wires in.
type RateLimiter interface {
	// Allow reports whether the caller identified by key may proceed.
	Allow(ctx context.Context, key string) (bool, error)
}

// RedisRateLimiter implements a fixed-window counter on redis so the limit
// holds across replicas.
type RedisRateLimiter struct {
	redis  *redis.Client
	max    int
	window time.Duration
}

var _ RateLimiter = (*RedisRateLimiter)(nil)

func NewRedisRateLimiter(redisClient *redis.Client, max int, window time.Duration) *RedisRateLimiter {
	return &RedisRateLimiter{redis: redisClient, max: max, window: window}
}

func (l *RedisRateLimiter) Allow(ctx context.Context, key string) (bool, error) {
	bucket := time.Now().UnixMilli() / l.window.Milliseconds()
	redisKey := fmt.Sprintf("ratelimit:%s:%d", key, bucket)

	count, err := l.redis.Incr(ctx, redisKey).Result()
	if err != nil {
		return false, err
	}
	if count == 1 {
		if err := l.redis.Expire(ctx, redisKey, l.window).Err(); err != nil {
			return false, err
		}
	}
	return count <= int64(l.max), nil
}

// LocalRateLimiter is the single-process fallback used when redis is not
// configured.
type LocalRateLimiter struct {
	mu     sync.Mutex
	counts map[string]int
	bucket int64
	max    int
	window time.Duration
}

var _ RateLimiter = (*LocalRateLimiter)(nil)

func NewLocalRateLimiter(max int, window time.Duration) *LocalRateLimiter {
	return &LocalRateLimiter{counts: map[string]int{}, max: max, window: window}
}

func (l *LocalRateLimiter) Allow(_ context.Context, key string) (bool, error) {
	bucket := time.Now().UnixMilli() / l.window.Milliseconds()

	l.mu.Lock()
	defer l.mu.Unlock()
	if bucket != l.bucket {
		l.bucket = bucket
		l.counts = map[string]int{}
	}
	l.counts[key]++
	return l.counts[key] <= l.max, nil
}

// RateLimitMiddleware applies the limiter per user (falling back to client
// IP). Limiter failures let the request through: availability over strict
// quotas.
func RateLimitMiddleware(limiter RateLimiter) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := GetUserID(c)
		if key == "" {
			key = c.ClientIP()
		}

		allowed, err := limiter.Allow(c.Request.Context(), key)
		if err != nil {
			zap.L().Warn("rate limiter unavailable", zap.Error(err))
			c.Next()
			return
		}
		if !allowed {
			lang := GetLang(c)
			c.AbortWithStatusJSON(
				http.StatusTooManyRequests,
				apierrors.CreateError(http.StatusTooManyRequests, apierrors.MsgTooManyRequests, lang),
			)
			return
		}
		c.Next()
	}
}
