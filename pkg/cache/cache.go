// Package cache stores rendered path data and drawings between runs.
//
// Generation is deterministic, so any result keyed by its primitive, its
// geometry and its resolved options can be reused verbatim. The CLI uses
// a [FileCache] under the XDG cache directory; the HTTP server can share
// a [RedisCache] between instances. [NullCache] disables caching.
package cache

import (
	"context"
	"time"
)

// Cache is a byte-oriented key/value store with optional expiry.
//
// Get reports a miss with ok == false and a nil error; errors are reserved
// for backend failures. A ttl of zero stores the entry without expiry.
type Cache interface {
	Get(ctx context.Context, key string) (data []byte, ok bool, err error)
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	Close() error
}
