package cache

import (
	"context"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const (
	keyPrefix  = "spec:fmt:"
	defaultTTL = time.Hour
)

// FormatCache is an opportunistic read-through cache for formatted
// field values. One redis hash per product keeps invalidation a single
// DEL; the hash is never the source of truth. A nil redis client
// degrades to a no-op cache so the service runs without redis.
type FormatCache struct {
	client *redis.Client
	ttl    time.Duration
	logger *zap.Logger
}

// NewFormatCache creates a format cache. client may be nil.
func NewFormatCache(client *redis.Client, logger *zap.Logger) *FormatCache {
	return &FormatCache{client: client, ttl: defaultTTL, logger: logger}
}

// Get returns the cached formatted value for a (product, field) pair.
// ok=false on miss, on redis errors and when caching is disabled.
func (c *FormatCache) Get(ctx context.Context, productID uuid.UUID, fieldSlug string) (string, bool) {
	if c == nil || c.client == nil {
		return "", false
	}

	formatted, err := c.client.HGet(ctx, c.key(productID), fieldSlug).Result()
	if err != nil {
		if err != redis.Nil && c.logger != nil {
			c.logger.Debug("format cache read failed",
				zap.String("product_id", productID.String()),
				zap.String("field_slug", fieldSlug),
				zap.Error(err),
			)
		}
		return "", false
	}
	return formatted, true
}

// Set stores a formatted value. Failures are logged and swallowed; the
// cache is derived state.
func (c *FormatCache) Set(ctx context.Context, productID uuid.UUID, fieldSlug, formatted string) {
	if c == nil || c.client == nil {
		return
	}

	key := c.key(productID)
	pipe := c.client.TxPipeline()
	pipe.HSet(ctx, key, fieldSlug, formatted)
	pipe.Expire(ctx, key, c.ttl)
	if _, err := pipe.Exec(ctx); err != nil && c.logger != nil {
		c.logger.Debug("format cache write failed",
			zap.String("product_id", productID.String()),
			zap.String("field_slug", fieldSlug),
			zap.Error(err),
		)
	}
}

// Invalidate drops all cached formatted values for a product. Wired as
// an invalidation listener so every save clears the product's entry.
func (c *FormatCache) Invalidate(ctx context.Context, productID uuid.UUID) {
	if c == nil || c.client == nil {
		return
	}

	if err := c.client.Del(ctx, c.key(productID)).Err(); err != nil && c.logger != nil {
		c.logger.Debug("format cache invalidation failed",
			zap.String("product_id", productID.String()),
			zap.Error(err),
		)
	}
}

func (c *FormatCache) key(productID uuid.UUID) string {
	return keyPrefix + productID.String()
}
