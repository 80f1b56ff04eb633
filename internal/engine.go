package internal

import (
	"log/slog"

	"github.com/dmitrymomot/friendlyid/pkg/cache"
	"github.com/dmitrymomot/friendlyid/pkg/locale"
	"github.com/dmitrymomot/friendlyid/pkg/logger"
	"github.com/dmitrymomot/friendlyid/pkg/slug"
)

// Engine derives, assigns and resolves friendly identifiers.
// It holds no per-record state and is safe for concurrent use.
type Engine struct {
	store    Store
	cache    cache.Cache
	locales  *locale.Resolver
	logger   *slog.Logger
	idLookup IDLookup

	normalize   func(string) string
	slugOptions []slug.Option

	reservedWords []string
	reserved      map[string]struct{}

	sequenceSeparator string
	sequenceStart     int
	maxAttempts       int
	crossLocale       bool
}

// New creates an engine on top of st.
//
// Example:
//
//	eng := friendlyid.New(store.NewPostgres(pool),
//	    friendlyid.WithLocales(resolver),
//	    friendlyid.WithCache(cache.NewMemory()),
//	    friendlyid.WithLogger(log),
//	)
//	defer eng.Close()
func New(st Store, opts ...Option) *Engine {
	e := &Engine{
		store:             st,
		locales:           defaultResolver(),
		logger:            logger.NewNope(),
		sequenceSeparator: "-",
		sequenceStart:     slug.DefaultSequenceStart,
		maxAttempts:       DefaultMaxAttempts,
	}
	for _, opt := range opts {
		opt(e)
	}

	if e.normalize == nil {
		slugOpts := e.slugOptions
		e.normalize = func(s string) string { return slug.Make(s, slugOpts...) }
	}

	e.reserved = make(map[string]struct{}, len(e.reservedWords))
	for _, w := range e.reservedWords {
		if n := e.normalize(w); n != "" {
			e.reserved[n] = struct{}{}
		}
	}

	return e
}

// Locales returns the engine's locale policy.
func (e *Engine) Locales() *locale.Resolver {
	return e.locales
}

// Normalize derives the base slug for text with the engine's normalizer.
// An empty result means no slug is derivable.
func (e *Engine) Normalize(text string) string {
	return e.normalize(text)
}

// Close releases the resolution cache, if any.
func (e *Engine) Close() error {
	if e.cache == nil {
		return nil
	}
	return e.cache.Close()
}

func (e *Engine) sequenceOptions(base string) []slug.SequenceOption {
	opts := []slug.SequenceOption{
		slug.SequenceSeparator(e.sequenceSeparator),
		slug.StartAt(e.sequenceStart),
	}
	if _, ok := e.reserved[base]; ok {
		opts = append(opts, slug.SkipBase())
	}
	return opts
}

func defaultResolver() *locale.Resolver {
	r, err := locale.NewResolver(locale.DefaultLocale)
	if err != nil {
		panic(err)
	}
	return r
}
