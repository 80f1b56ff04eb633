package friendlyid

import (
	"log/slog"

	"github.com/dmitrymomot/friendlyid/internal"
	"github.com/dmitrymomot/friendlyid/pkg/cache"
	"github.com/dmitrymomot/friendlyid/pkg/locale"
	"github.com/dmitrymomot/friendlyid/pkg/slug"
)

// WithLogger sets the engine logger.
// If nil, logging is disabled.
func WithLogger(l *slog.Logger) Option {
	return internal.WithLogger(l)
}

// WithLocales sets the locale policy: default locale, supported locales
// and read fallbacks. Defaults to "en" with no fallbacks.
//
// Example:
//
//	r, err := locale.NewResolver("en",
//	    locale.WithSupported("es", "es-MX"),
//	    locale.WithFallbacks("es-MX", "es"),
//	)
//	friendlyid.New(st, friendlyid.WithLocales(r))
func WithLocales(r *locale.Resolver) Option {
	return internal.WithLocales(r)
}

// WithCache memoizes slug resolution. The engine closes c on Close.
func WithCache(c cache.Cache) Option {
	return internal.WithCache(c)
}

// WithMaxAttempts bounds the candidates tried per assignment.
// Defaults to 100.
func WithMaxAttempts(n int) Option {
	return internal.WithMaxAttempts(n)
}

// WithSequenceStart sets the first numeric suffix used on conflict.
// Defaults to 2.
func WithSequenceStart(n int) Option {
	return internal.WithSequenceStart(n)
}

// WithSequenceSeparator sets the string between a slug and its numeric suffix.
// Defaults to "-".
func WithSequenceSeparator(sep string) Option {
	return internal.WithSequenceSeparator(sep)
}

// WithSlugOptions configures the default normalizer.
func WithSlugOptions(opts ...slug.Option) Option {
	return internal.WithSlugOptions(opts...)
}

// WithNormalizer replaces the default normalizer.
func WithNormalizer(fn func(string) string) Option {
	return internal.WithNormalizer(fn)
}

// WithReservedSlugs lists words never assigned bare, such as route names.
//
// Example:
//
//	friendlyid.WithReservedSlugs("new", "edit", "admin")
func WithReservedSlugs(words ...string) Option {
	return internal.WithReservedSlugs(words...)
}

// WithCrossLocaleLookup lets Find resolve slugs of any locale after the
// read locales miss.
func WithCrossLocaleLookup(enabled bool) Option {
	return internal.WithCrossLocaleLookup(enabled)
}

// WithIDLookup makes Find confirm numeric ids.
func WithIDLookup(fn IDLookup) Option {
	return internal.WithIDLookup(fn)
}
