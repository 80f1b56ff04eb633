// Package locale resolves which locale a slug read or write applies to.
//
// Locales are BCP 47 tags canonicalized with [golang.org/x/text/language],
// so "es-mx", "es_MX" and "es-MX" all name the same slug namespace.
//
// # Reads and writes
//
// Writes are locale-exact: [Resolver.WriteLocale] validates and canonicalizes
// the active locale but never substitutes another one, so a translated value
// written in one locale only ever changes that locale's slug.
//
// Reads degrade gracefully: [Resolver.ReadLocales] returns the requested
// locale, or the default when none was requested, followed by any fallback
// chain configured with [WithFallbacks]. No fallbacks are configured by
// default, which keeps each locale's slugs isolated.
//
//	r, _ := locale.NewResolver("en", locale.WithSupported("es", "es-MX"))
//	r.ReadLocales("")      // ["en"]
//	r.ReadLocales("es-mx") // ["es-MX"]
//
// # HTTP
//
// [Resolver.Match] negotiates a locale from an Accept-Language header and
// [WithLocale] / [FromContext] carry it through a request context.
//
// # Configuration
//
// [Config] can be parsed from environment variables or from YAML with
// [LoadYAML]:
//
//	FRIENDLYID_DEFAULT_LOCALE   - default locale (default: en)
//	FRIENDLYID_LOCALES          - comma separated supported locales
//	FRIENDLYID_LOCALE_FALLBACKS - read fallbacks, "es-MX:es en,pt-BR:pt"
package locale
