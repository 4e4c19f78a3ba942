package cache

import (
	"context"
	"time"
)

// Cache stores JSON encoded values with a TTL
type Cache interface {
	GetJSON(ctx context.Context, key string, dst any) (hit bool, err error)
	SetJSON(ctx context.Context, key string, val any, ttl time.Duration) error
	Del(ctx context.Context, keys ...string) error
	// Generation reads a counter, zero when it was never bumped
	Generation(ctx context.Context, key string) (int64, error)
	// Bump increments a counter and returns the new value
	Bump(ctx context.Context, key string) (int64, error)
}
