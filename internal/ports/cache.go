package ports

import (
	"context"
	"time"
)

// Cache is a TTL-bounded string cache, backed by Redis in production.
type Cache interface {
	Get(ctx context.Context, key string) (string, error)
	Set(ctx context.Context, key string, value string, ttl time.Duration) error
	Delete(ctx context.Context, keys ...string) error
}
