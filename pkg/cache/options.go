package cache

import "time"

// MemoryOption configures the in-memory cache.
type MemoryOption func(*memoryOptions)

type memoryOptions struct {
	ttl             time.Duration
	cleanupInterval time.Duration
	maxEntries      int
}

func defaultMemoryOptions() *memoryOptions {
	return &memoryOptions{
		ttl:             time.Hour,
		cleanupInterval: time.Minute,
		maxEntries:      10_000,
	}
}

// WithTTL sets how long an entry lives. Zero or negative keeps entries until
// evicted or forgotten.
// Default: 1 hour.
func WithTTL(d time.Duration) MemoryOption {
	return func(o *memoryOptions) {
		o.ttl = d
	}
}

// WithCleanupInterval sets how often expired entries are purged in the
// background. Zero disables the janitor; expired entries are then dropped on read.
// Default: 1 minute.
func WithCleanupInterval(d time.Duration) MemoryOption {
	return func(o *memoryOptions) {
		o.cleanupInterval = d
	}
}

// WithMaxEntries bounds the cache size; the least recently used entry is
// evicted when full. Zero means unlimited.
// Default: 10000.
func WithMaxEntries(n int) MemoryOption {
	return func(o *memoryOptions) {
		o.maxEntries = n
	}
}


// RedisOption configures the Redis cache.
type RedisOption func(*redisOptions)

type redisOptions struct {
	prefix string
	ttl    time.Duration
}

func defaultRedisOptions() *redisOptions {
	return &redisOptions{
		prefix: "friendlyid",
		ttl:    24 * time.Hour,
	}
}

// WithRedisTTL sets the entry lifetime. Zero or negative disables expiration.
// Default: 24 hours.
func WithRedisTTL(d time.Duration) RedisOption {
	return func(o *redisOptions) {
		o.ttl = d
	}
}

// WithPrefix namespaces every key, for Redis instances shared between apps.
// Default: "friendlyid".
func WithPrefix(prefix string) RedisOption {
	return func(o *redisOptions) {
		if prefix != "" {
			o.prefix = prefix
		}
	}
}
