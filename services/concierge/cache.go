package concierge

import (
	"context"
	"encoding/json"
	"time"

	"github.com/go-redis/redis/v8"
	"go.uber.org/zap"

	"concierge/models"
	"concierge/utils"
)

const (
	contactCacheKey = "concierge:contacts:all"
	contactCacheTTL = 5 * time.Minute
)

// contactCache is a Redis-backed cache for the contact directory. Reads fall
// through to the repository on any cache error.
type contactCache struct {
	client *redis.Client
}

// NewContactCache wraps a Redis client for directory caching.
func NewContactCache(client *redis.Client) *contactCache {
	return &contactCache{client: client}
}

func (c *contactCache) get(ctx context.Context) ([]models.Contact, bool) {
	raw, err := c.client.Get(ctx, contactCacheKey).Result()
	if err != nil {
		if err != redis.Nil {
			utils.GetLogger().Warn("contact cache read failed", zap.Error(err))
		}
		return nil, false
	}

	var contacts []models.Contact
	if err := json.Unmarshal([]byte(raw), &contacts); err != nil {
		utils.GetLogger().Warn("contact cache decode failed", zap.Error(err))
		return nil, false
	}
	return contacts, true
}

func (c *contactCache) set(ctx context.Context, contacts []models.Contact) {
	b, err := json.Marshal(contacts)
	if err != nil {
		return
	}
	if err := c.client.Set(ctx, contactCacheKey, b, contactCacheTTL).Err(); err != nil {
		utils.GetLogger().Warn("contact cache write failed", zap.Error(err))
	}
}

// Invalidate drops the cached directory, for use after contact writes.
func (c *contactCache) Invalidate(ctx context.Context) {
	if err := c.client.Del(ctx, contactCacheKey).Err(); err != nil {
		utils.GetLogger().Warn("contact cache invalidation failed", zap.Error(err))
	}
}
