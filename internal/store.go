package internal

import (
	"context"

	"github.com/dmitrymomot/friendlyid/pkg/store"
)

// Store persists live slugs and the slug history.
// store.Memory and store.Postgres implement it.
//
// Claim must check a slug against both live slugs and history and write it
// atomically; a slug held by another record is reported as
// store.OutcomeTaken, never as an error. Finders return store.ErrNotFound
// when nothing matches.
type Store interface {
	Current(ctx context.Context, recordType string, id int64, locale string) (string, error)
	Claim(ctx context.Context, c store.Claim) (store.Outcome, error)
	FindLive(ctx context.Context, recordType, locale, slug string) (int64, error)
	FindHistory(ctx context.Context, recordType, locale, slug string) (int64, error)
	FindAnyLocale(ctx context.Context, recordType, slug string) (int64, error)
	History(ctx context.Context, recordType string, id int64) ([]store.HistoryEntry, error)
	Delete(ctx context.Context, recordType string, id int64) error
}

var (
	_ Store = (*store.Memory)(nil)
	_ Store = (*store.Postgres)(nil)
)
