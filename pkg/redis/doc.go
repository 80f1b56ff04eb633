// Package redis connects to Redis for the shared slug resolution cache.
//
// It wraps [github.com/redis/go-redis/v9] with env-driven configuration,
// startup retries, a health check and a shutdown hook.
//
//	var cfg redis.Config // REDIS_URL, REDIS_POOL_SIZE, ...
//	client, err := redis.Connect(ctx, cfg)
//	if err != nil {
//	    return err
//	}
//	defer client.Close()
//
//	c := cache.NewRedis(client)
//
// [Healthcheck] returns a func(context.Context) error for readiness probes.
//
// Errors are wrapped with [errors.Join] around the sentinels:
//
//   - [ErrEmptyConnectionURL]
//   - [ErrFailedToParseURL]
//   - [ErrConnectionFailed]
//   - [ErrHealthcheckFailed]
package redis
