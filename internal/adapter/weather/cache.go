package weather

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/Diogo96ferreira/smart-garden-sub000/internal/core/domain"
	"github.com/Diogo96ferreira/smart-garden-sub000/internal/core/ports"
)

const summaryTTL = time.Hour

// CachedProvider memoizes weather summaries per locality in redis. Cache
// failures degrade to a direct provider call, never to an error.
type CachedProvider struct {
	inner ports.WeatherProvider
	redis *redis.Client
}

var _ ports.WeatherProvider = (*CachedProvider)(nil)

func NewCachedProvider(inner ports.WeatherProvider, redisClient *redis.Client) *CachedProvider {
	return &CachedProvider{inner: inner, redis: redisClient}
}

func (c *CachedProvider) SummaryByLocation(ctx context.Context, loc domain.UserLocation) (*domain.WeatherSummary, error) {
	key := cacheKey(loc)

	if data, err := c.redis.Get(ctx, key).Result(); err == nil {
		var summary domain.WeatherSummary
		if err := json.Unmarshal([]byte(data), &summary); err == nil {
			return &summary, nil
		}
		zap.L().Warn("discarding malformed cached weather summary", zap.String("key", key))
	} else if err != redis.Nil {
		zap.L().Warn("weather cache read failed", zap.Error(err))
	}

	summary, err := c.inner.SummaryByLocation(ctx, loc)
	if err != nil || summary == nil {
		return summary, err
	}

	if data, err := json.Marshal(summary); err == nil {
		if err := c.redis.Set(ctx, key, data, summaryTTL).Err(); err != nil {
			zap.L().Warn("weather cache write failed", zap.Error(err))
		}
	}
	return summary, nil
}

func cacheKey(loc domain.UserLocation) string {
	return fmt.Sprintf("weather:summary:%s:%s",
		strings.ToLower(strings.TrimSpace(loc.District)),
		strings.ToLower(strings.TrimSpace(loc.Municipality)))
}
