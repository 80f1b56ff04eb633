package friendlyid

import (
	"github.com/dmitrymomot/friendlyid/internal"
	"github.com/dmitrymomot/friendlyid/pkg/store"
)

// Type aliases - public API
type (
	// Engine derives, assigns and resolves friendly identifiers.
	Engine = internal.Engine

	// Option configures the engine.
	Option = internal.Option

	// Config holds engine settings parsed from FRIENDLYID_* variables.
	Config = internal.Config

	// Store persists live slugs and the slug history.
	Store = internal.Store

	// Sluggable is a host record with one current slug per locale.
	Sluggable = internal.Sluggable

	// Slugs maps a locale to a slug.
	Slugs = internal.Slugs

	// Record is a ready-made Sluggable.
	Record = internal.Record

	// SlugSource supplies the text a slug is derived from.
	SlugSource = internal.SlugSource

	// StaticSource is a locale-independent source.
	StaticSource = internal.StaticSource

	// LocalizedSource holds one source value per locale.
	LocalizedSource = internal.LocalizedSource

	// Assignment describes the result of assigning a slug in one locale.
	Assignment = internal.Assignment

	// Match is a resolved token.
	Match = internal.Match

	// MatchKind tells how a token was resolved.
	MatchKind = internal.MatchKind

	// IDLookup reports whether a record with the numeric id exists.
	IDLookup = internal.IDLookup

	// HistoryEntry is a slug a record held in a locale.
	HistoryEntry = store.HistoryEntry
)

const (
	MatchSlug        = internal.MatchSlug
	MatchOtherLocale = internal.MatchOtherLocale
	MatchID          = internal.MatchID

	DefaultMaxAttempts = internal.DefaultMaxAttempts
)

// Errors
var (
	ErrNotFound            = internal.ErrNotFound
	ErrNoSlugDerivable     = internal.ErrNoSlugDerivable
	ErrCandidatesExhausted = internal.ErrCandidatesExhausted
	ErrEmptyRecordType     = internal.ErrEmptyRecordType
	ErrInvalidRecord       = internal.ErrInvalidRecord
	ErrUnsupportedLocale   = internal.ErrUnsupportedLocale
	ErrInvalidLocale       = internal.ErrInvalidLocale
	ErrEmptyLocale         = internal.ErrEmptyLocale
)

// New creates an engine on top of st.
//
// Example:
//
//	eng := friendlyid.New(store.NewPostgres(pool),
//	    friendlyid.WithLocales(resolver),
//	    friendlyid.WithCache(cache.NewMemory()),
//	)
//	defer eng.Close()
//
//	post := &friendlyid.Record{Type: "post", ID: 1}
//	a, err := eng.Assign(ctx, post, friendlyid.StaticSource("Hello World"), "en")
//	// a.Slug == "hello-world"
func New(st Store, opts ...Option) *Engine {
	return internal.New(st, opts...)
}
