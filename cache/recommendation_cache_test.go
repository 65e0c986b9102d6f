package cache

import (
	"context"
	"testing"
	"time"

	"Moosic/model"
)

// The cache must be a safe no-op without a backing client, so the
// recommendation path works when the cache store is down or unconfigured.
func TestDisabledCacheIsSafe(t *testing.T) {
	ctx := context.Background()
	c := NewRecommendationCache(nil, time.Minute)

	if got, ok := c.Get(ctx, "happy"); ok || got != nil {
		t.Errorf("Get on disabled cache = (%v, %v), want (nil, false)", got, ok)
	}

	// Must not panic.
	c.Set(ctx, "happy", model.RecommendationBundle{Songs: []model.Track{{ID: "t1"}}})

	if _, ok := c.Get(ctx, "happy"); ok {
		t.Error("disabled cache returned a hit after Set")
	}
}

func TestNilCacheIsSafe(t *testing.T) {
	ctx := context.Background()
	var c *RecommendationCache

	if _, ok := c.Get(ctx, "calm"); ok {
		t.Error("nil cache returned a hit")
	}
	c.Set(ctx, "calm", model.RecommendationBundle{})
}

func TestDefaultTTLApplied(t *testing.T) {
	c := NewRecommendationCache(nil, 0)
	if c.ttl != DefaultRecommendationTTL {
		t.Errorf("ttl = %v, want %v", c.ttl, DefaultRecommendationTTL)
	}
	c = NewRecommendationCache(nil, 5*time.Minute)
	if c.ttl != 5*time.Minute {
		t.Errorf("ttl = %v, want 5m", c.ttl)
	}
}
