package internal

import (
	"context"
	"log/slog"

	"github.com/dmitrymomot/friendlyid/pkg/cache"
	"github.com/dmitrymomot/friendlyid/pkg/locale"
	"github.com/dmitrymomot/friendlyid/pkg/slug"
)

// DefaultMaxAttempts bounds the candidates tried by a single assignment.
const DefaultMaxAttempts = 100

// Option configures the engine.
type Option func(*Engine)

// IDLookup reports whether a record with the numeric id exists.
type IDLookup func(ctx context.Context, recordType string, id int64) (bool, error)

// WithLogger sets the logger. Default: a no-op logger.
func WithLogger(l *slog.Logger) Option {
	return func(e *Engine) {
		if l != nil {
			e.logger = l
		}
	}
}

// WithLocales sets the locale policy. Default: "en" only, no fallbacks.
//
// Example:
//
//	r, err := locale.NewResolver("en",
//	    locale.WithSupported("es", "es-MX"),
//	    locale.WithFallbacks("es-MX", "es"),
//	)
//	eng := friendlyid.New(st, friendlyid.WithLocales(r))
func WithLocales(r *locale.Resolver) Option {
	return func(e *Engine) {
		if r != nil {
			e.locales = r
		}
	}
}

// WithCache memoizes slug resolution in c. The engine closes c on Close.
func WithCache(c cache.Cache) Option {
	return func(e *Engine) {
		e.cache = c
	}
}

// WithMaxAttempts bounds the candidates tried per assignment.
// Values below 1 are ignored. Default: 100.
func WithMaxAttempts(n int) Option {
	return func(e *Engine) {
		if n > 0 {
			e.maxAttempts = n
		}
	}
}

// WithSequenceStart sets the first numeric suffix used on conflict.
// Default: 2, giving "title", "title-2", "title-3", ...
func WithSequenceStart(n int) Option {
	return func(e *Engine) {
		if n > 0 {
			e.sequenceStart = n
		}
	}
}

// WithSequenceSeparator sets the string between a slug and its numeric suffix.
// Default: "-".
func WithSequenceSeparator(sep string) Option {
	return func(e *Engine) {
		if sep != "" {
			e.sequenceSeparator = sep
		}
	}
}

// WithSlugOptions configures the default normalizer.
//
// Example:
//
//	friendlyid.WithSlugOptions(slug.MaxLength(80), slug.CustomReplace(map[string]string{"&": "and"}))
func WithSlugOptions(opts ...slug.Option) Option {
	return func(e *Engine) {
		e.slugOptions = append(e.slugOptions, opts...)
	}
}

// WithNormalizer replaces the default normalizer, for custom transliteration.
// fn must be deterministic and idempotent.
func WithNormalizer(fn func(string) string) Option {
	return func(e *Engine) {
		if fn != nil {
			e.normalize = fn
		}
	}
}

// WithReservedSlugs lists words never assigned bare, such as route names.
// A reserved base is sequenced from its first suffixed candidate: "new-2".
func WithReservedSlugs(words ...string) Option {
	return func(e *Engine) {
		e.reservedWords = append(e.reservedWords, words...)
	}
}

// WithCrossLocaleLookup makes Find try slugs of every locale after the
// read locales miss and before the numeric id.
// Default: off, so slugs of one locale never resolve in another.
func WithCrossLocaleLookup(enabled bool) Option {
	return func(e *Engine) {
		e.crossLocale = enabled
	}
}

// WithIDLookup makes Find confirm numeric ids with fn.
// Without it any positive integer token resolves to that id.
func WithIDLookup(fn IDLookup) Option {
	return func(e *Engine) {
		e.idLookup = fn
	}
}
