// Package cache memoizes slug resolution: which record a slug of a record
// type points to in a locale.
//
// Entries never go stale through slug changes. A slug a record held remains
// reserved for that record in its history, so a cached (type, locale, slug)
// to id mapping stays correct until the record is deleted. Deletion must call
// [Cache.ForgetRecord].
//
// # In-Memory Cache
//
// [NewMemory] keeps entries in a map with an LRU list and optional TTL:
//
//	c := cache.NewMemory(
//	    cache.WithTTL(5*time.Minute),
//	    cache.WithMaxEntries(10000),
//	)
//	defer c.Close()
//
// # Redis Cache
//
// [NewRedis] shares entries between processes. It needs a
// [github.com/redis/go-redis/v9.UniversalClient], usually from
// [github.com/dmitrymomot/friendlyid/pkg/redis]:
//
//	client, err := redis.Connect(ctx, cfg)
//	c := cache.NewRedis(client, cache.WithPrefix("blog"))
//
// # Stampede Prevention
//
// [GetOrSet] collapses concurrent misses on the same key into one lookup:
//
//	id, err := cache.GetOrSet(ctx, c, key, func(ctx context.Context) (int64, error) {
//	    return st.FindLive(ctx, key.RecordType, key.Locale, key.Slug)
//	})
package cache
