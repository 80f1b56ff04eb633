package cache

import (
	"context"
	"errors"
	"strconv"

	"github.com/redis/go-redis/v9"
)

// Redis is a Cache shared between processes.
//
// Every resolution is stored as "{prefix}:slug:{key}" and indexed in the set
// "{prefix}:record:{type}:{id}" so ForgetRecord can drop all of a record's keys.
type Redis struct {
	client redis.UniversalClient
	opts   *redisOptions
}

// NewRedis creates a Redis-backed cache.
// The client should come from pkg/redis.Connect; its lifecycle stays with the caller.
//
// Example:
//
//	client, err := redis.Connect(ctx, cfg)
//	c := cache.NewRedis(client, cache.WithPrefix("friendlyid"))
func NewRedis(client redis.UniversalClient, opts ...RedisOption) *Redis {
	o := defaultRedisOptions()
	for _, opt := range opts {
		opt(o)
	}
	return &Redis{client: client, opts: o}
}

// Get returns the record id cached for key.
func (r *Redis) Get(ctx context.Context, key Key) (int64, error) {
	v, err := r.client.Get(ctx, r.slugKey(key)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return 0, ErrNotFound
		}
		return 0, err
	}

	id, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		return 0, ErrNotFound
	}
	return id, nil
}

// Set caches id for key and records the key in the record's index.
func (r *Redis) Set(ctx context.Context, key Key, id int64) error {
	// Redis treats 0 as no expiration.
	ttl := max(r.opts.ttl, 0)
	index := r.recordKey(key.RecordType, id)

	_, err := r.client.TxPipelined(ctx, func(p redis.Pipeliner) error {
		p.Set(ctx, r.slugKey(key), strconv.FormatInt(id, 10), ttl)
		p.SAdd(ctx, index, r.slugKey(key))
		if ttl > 0 {
			p.Expire(ctx, index, ttl)
		}
		return nil
	})
	return err
}

// ForgetRecord drops every key indexed for the record.
func (r *Redis) ForgetRecord(ctx context.Context, recordType string, id int64) error {
	index := r.recordKey(recordType, id)

	keys, err := r.client.SMembers(ctx, index).Result()
	if err != nil {
		return err
	}
	return r.client.Del(ctx, append(keys, index)...).Err()
}

// Close is a no-op; the client is closed by its owner (see pkg/redis.Shutdown).
func (r *Redis) Close() error {
	return nil
}

func (r *Redis) slugKey(key Key) string {
	return r.opts.prefix + ":slug:" + key.String()
}

func (r *Redis) recordKey(recordType string, id int64) string {
	return r.opts.prefix + ":record:" + recordRef(recordType, id)
}

var _ Cache = (*Redis)(nil)
