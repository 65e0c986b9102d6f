package cache

import (
	"context"
	"encoding/json"
	"time"

	"Moosic/logger"
	"Moosic/model"

	"github.com/redis/go-redis/v9"
)

const recommendationKeyPrefix = "recommend:"

// DefaultRecommendationTTL bounds how long a cached bundle is served
// before the content sources are queried again.
const DefaultRecommendationTTL = 15 * time.Minute

// RecommendationCache caches assembled recommendation bundles per mood
// category. Strictly best-effort: a nil client, a connection error, or a
// corrupt entry all behave as a cache miss, and write failures are only
// logged. The recommendation path never depends on Redis being up.
type RecommendationCache struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRecommendationCache creates a cache on the given client. A nil
// client yields a disabled cache that always misses.
func NewRecommendationCache(client *redis.Client, ttl time.Duration) *RecommendationCache {
	if ttl <= 0 {
		ttl = DefaultRecommendationTTL
	}
	return &RecommendationCache{
		client: client,
		ttl:    ttl,
	}
}

// Get returns the cached bundle for a category, if present.
func (c *RecommendationCache) Get(ctx context.Context, category string) (*model.RecommendationBundle, bool) {
	if c == nil || c.client == nil {
		return nil, false
	}

	data, err := c.client.Get(ctx, recommendationKeyPrefix+category).Bytes()
	if err != nil {
		if err != redis.Nil {
			logger.Warn("[RecommendationCache] read failed", logger.ErrorField(err))
		}
		return nil, false
	}

	var bundle model.RecommendationBundle
	if err := json.Unmarshal(data, &bundle); err != nil {
		logger.Warn("[RecommendationCache] corrupt entry, treating as miss",
			logger.String("category", category), logger.ErrorField(err))
		return nil, false
	}
	return &bundle, true
}

// Set stores a bundle under its category. Errors are logged and ignored.
func (c *RecommendationCache) Set(ctx context.Context, category string, bundle model.RecommendationBundle) {
	if c == nil || c.client == nil {
		return
	}

	data, err := json.Marshal(bundle)
	if err != nil {
		logger.Warn("[RecommendationCache] marshal failed", logger.ErrorField(err))
		return
	}

	if err := c.client.Set(ctx, recommendationKeyPrefix+category, data, c.ttl).Err(); err != nil {
		logger.Warn("[RecommendationCache] write failed",
			logger.String("category", category), logger.ErrorField(err))
	}
}
