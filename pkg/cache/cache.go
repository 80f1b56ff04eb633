package cache

import (
	"context"
	"fmt"
	"net/url"
	"strconv"

	"golang.org/x/sync/singleflight"
)

// Key identifies a resolved slug: a slug of a record type in a locale.
type Key struct {
	RecordType string
	Locale     string
	Slug       string
}

// String returns an unambiguous flat form of the key.
func (k Key) String() string {
	return url.QueryEscape(k.RecordType) + ":" + url.QueryEscape(k.Locale) + ":" + url.QueryEscape(k.Slug)
}

func recordRef(recordType string, id int64) string {
	return url.QueryEscape(recordType) + ":" + strconv.FormatInt(id, 10)
}

// Cache maps resolved slugs to record ids.
//
// A slug, once held by a record in a locale, stays reserved for that record
// (as its live or historical slug) until the record is deleted, so entries
// never go stale through slug changes; ForgetRecord drops them on deletion.
type Cache interface {
	// Get returns the record id cached for key.
	// Returns ErrNotFound on a miss.
	Get(ctx context.Context, key Key) (int64, error)

	// Set caches id for key.
	Set(ctx context.Context, key Key, id int64) error

	// ForgetRecord drops every key that resolves to the record.
	ForgetRecord(ctx context.Context, recordType string, id int64) error

	// Close releases resources (background goroutines, etc.).
	Close() error
}

var group singleflight.Group

// GetOrSet returns the cached id for key or calls fn on a miss and caches its
// result. Concurrent misses for the same key share a single fn call.
// The shared call runs without the caller's cancellation, so one cancelled
// request does not fail the others waiting on it; a cancelled caller stops
// waiting and gets its own ctx error.
// fn errors are returned as is and nothing is cached; cache read errors are
// treated as misses and write errors are ignored.
func GetOrSet(ctx context.Context, c Cache, key Key, fn func(ctx context.Context) (int64, error)) (int64, error) {
	if id, err := c.Get(ctx, key); err == nil {
		return id, nil
	}

	shared := context.WithoutCancel(ctx)
	ch := group.DoChan(fmt.Sprintf("%p|%s", c, key), func() (any, error) {
		return fn(shared)
	})

	var res singleflight.Result
	select {
	case <-ctx.Done():
		return 0, ctx.Err()
	case res = <-ch:
	}
	if res.Err != nil {
		return 0, res.Err
	}

	id := res.Val.(int64)
	_ = c.Set(ctx, key, id)
	return id, nil
}
