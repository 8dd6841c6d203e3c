package cache

import (
	"context"
	"time"
)

// Cache stores JSON-encoded values under string keys. The draft store
// keeps in-progress form sessions here; SetNX is the atomic
// set-if-absent primitive the per-draft submit lease is built on.
type Cache interface {
	GetJSON(ctx context.Context, key string, dst any) (hit bool, err error)
	SetJSON(ctx context.Context, key string, val any, ttl time.Duration) error
	SetNX(ctx context.Context, key string, val any, ttl time.Duration) (won bool, err error)
	Del(ctx context.Context, keys ...string) error
}
