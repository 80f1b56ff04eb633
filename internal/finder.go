package internal

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/dmitrymomot/friendlyid/pkg/cache"
	"github.com/dmitrymomot/friendlyid/pkg/db"
	"github.com/dmitrymomot/friendlyid/pkg/logger"
	"github.com/dmitrymomot/friendlyid/pkg/store"
)

// MatchKind tells how a token was resolved.
type MatchKind int

const (
	// MatchSlug is a live or historical slug in one of the read locales.
	MatchSlug MatchKind = iota + 1
	// MatchOtherLocale is a slug of a locale outside the read chain.
	MatchOtherLocale
	// MatchID is a numeric id.
	MatchID
)

func (k MatchKind) String() string {
	switch k {
	case MatchSlug:
		return "slug"
	case MatchOtherLocale:
		return "other_locale"
	case MatchID:
		return "id"
	default:
		return "unknown"
	}
}

// Match is a resolved token.
type Match struct {
	// Locale the slug matched in; empty for MatchOtherLocale and MatchID.
	Locale string
	Token  string
	ID     int64
	Kind   MatchKind
}

// Find resolves token to a record id of recordType, read in locale.
//
// For each locale of the read chain it tries the live slug, then the slug
// history; then, with WithCrossLocaleLookup, slugs of any locale; finally a
// numeric id. Slugs are locale-scoped: a slug valid only in "es" does not
// resolve when reading "en" unless "es" is in the read chain.
// Returns ErrNotFound when nothing matches.
func (e *Engine) Find(ctx context.Context, recordType, token, locale string) (Match, error) {
	if recordType == "" {
		return Match{}, ErrEmptyRecordType
	}
	if token == "" {
		return Match{}, ErrNotFound
	}

	for _, l := range e.locales.ReadLocales(locale) {
		id, err := e.findInLocale(ctx, recordType, l, token)
		if err == nil {
			return Match{ID: id, Locale: l, Token: token, Kind: MatchSlug}, nil
		}
		if !errors.Is(err, store.ErrNotFound) {
			return Match{}, fmt.Errorf("friendlyid: find %q: %w", token, err)
		}
	}

	if e.crossLocale {
		id, err := e.store.FindAnyLocale(ctx, recordType, token)
		if err == nil {
			return Match{ID: id, Token: token, Kind: MatchOtherLocale}, nil
		}
		if !errors.Is(err, store.ErrNotFound) {
			return Match{}, fmt.Errorf("friendlyid: find %q in any locale: %w", token, err)
		}
	}

	if id, ok := parseID(token); ok {
		found, err := e.lookupID(ctx, recordType, id)
		if err != nil {
			return Match{}, fmt.Errorf("friendlyid: look up id %d: %w", id, err)
		}
		if found {
			return Match{ID: id, Token: token, Kind: MatchID}, nil
		}
	}

	return Match{}, ErrNotFound
}

// Exists reports whether Find resolves token.
// Without WithIDLookup any canonical positive number resolves as an id, so
// Exists reports true for ids of records that do not exist. Hosts that use
// Exists to check record presence should configure WithIDLookup.
func (e *Engine) Exists(ctx context.Context, recordType, token, locale string) (bool, error) {
	_, err := e.Find(ctx, recordType, token, locale)
	switch {
	case err == nil:
		return true, nil
	case errors.Is(err, ErrNotFound):
		return false, nil
	default:
		return false, err
	}
}

// ToParam returns the token to put in outbound links: the record's current
// slug for the first locale of the read chain that has one, else its
// numeric id. Another locale's slug is never used unless configured as a
// fallback with locale.WithFallbacks.
func (e *Engine) ToParam(rec Sluggable, locale string) string {
	if rec == nil {
		return ""
	}
	for _, l := range e.locales.ReadLocales(locale) {
		if s := rec.SlugFor(l); s != "" {
			return s
		}
	}
	return strconv.FormatInt(rec.RecordID(), 10)
}

// CanonicalParam is ToParam read from the store, for callers holding only
// the id, such as a router deciding whether to redirect an old slug.
func (e *Engine) CanonicalParam(ctx context.Context, recordType string, id int64, locale string) (string, error) {
	if recordType == "" {
		return "", ErrEmptyRecordType
	}
	for _, l := range e.locales.ReadLocales(locale) {
		s, err := e.store.Current(ctx, recordType, id, l)
		if err != nil {
			return "", fmt.Errorf("friendlyid: read current slug: %w", err)
		}
		if s != "" {
			return s, nil
		}
	}
	return strconv.FormatInt(id, 10), nil
}

// findInLocale checks live slugs then history. Both map a slug to the same
// record for as long as the record exists, so hits are cached.
func (e *Engine) findInLocale(ctx context.Context, recordType, l, token string) (int64, error) {
	lookup := func(ctx context.Context) (int64, error) {
		id, err := e.store.FindLive(ctx, recordType, l, token)
		if errors.Is(err, store.ErrNotFound) {
			return e.store.FindHistory(ctx, recordType, l, token)
		}
		return id, err
	}

	if !e.cacheable(ctx) {
		return lookup(ctx)
	}
	return cache.GetOrSet(ctx, e.cache, cache.Key{RecordType: recordType, Locale: l, Slug: token}, lookup)
}

func (e *Engine) lookupID(ctx context.Context, recordType string, id int64) (bool, error) {
	if e.idLookup == nil {
		return true, nil
	}
	return e.idLookup(ctx, recordType, id)
}

// cacheable reports whether reads and writes in ctx may use the cache.
// Inside a host transaction they may not: the transaction can still roll back.
func (e *Engine) cacheable(ctx context.Context) bool {
	if e.cache == nil {
		return false
	}
	_, inTx := db.TxFromContext(ctx)
	return !inTx
}

func (e *Engine) remember(ctx context.Context, key cache.Key, id int64) {
	if !e.cacheable(ctx) {
		return
	}
	if err := e.cache.Set(ctx, key, id); err != nil {
		e.logger.WarnContext(ctx, "failed to cache slug", logger.RecordType(key.RecordType), logger.Slug(key.Slug), logger.Error(err))
	}
}

// parseID accepts canonical positive decimal integers only, so "007" and
// "+7" stay slugs.
func parseID(token string) (int64, bool) {
	id, err := strconv.ParseInt(token, 10, 64)
	if err != nil || id <= 0 || strconv.FormatInt(id, 10) != token {
		return 0, false
	}
	return id, true
}
