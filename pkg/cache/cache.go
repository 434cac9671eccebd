// Package cache provides the caching layer for registry responses.
//
// A [Cache] stores opaque byte payloads under string keys with a per-entry
// TTL. Backends: [FileCache] for CLI usage, [RedisCache] and [MongoCache]
// for server deployments, and [NullCache] to disable caching entirely.
//
// Keys are free-form; callers namespace them with a prefix (e.g.
// "packagist:stable:monolog/monolog") to avoid collisions between data
// sources. Backends may hash keys internally, so long keys are fine.
package cache

import (
	"context"
	"time"
)

// Cache is the storage interface shared by all backends.
//
// Get returns (data, true, nil) on a hit and (nil, false, nil) on a miss;
// expired entries are treated as misses. Set stores data with the given TTL,
// where ttl <= 0 means the entry never expires.
type Cache interface {
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	Close() error
}
