package locale

import (
	"fmt"
	"slices"
	"strings"

	"golang.org/x/text/language"
)

// DefaultLocale is used when no default locale is configured.
const DefaultLocale = "en"

// Resolver decides which locale a read or write applies to.
//
// Writes are locale-exact: the active locale is used as is, never a fallback.
// Reads try the requested locale (or the default when none is requested)
// followed by any fallbacks configured for it.
// A Resolver is immutable after construction and safe for concurrent use.
type Resolver struct {
	fallbacks     map[string][]string
	defaultLocale string
	supported     []string
}

// Option configures a Resolver.
type Option func(*Resolver) error

// WithSupported restricts the locales accepted for writes and reads.
// The default locale is always supported and listed first.
func WithSupported(locales ...string) Option {
	return func(r *Resolver) error {
		for _, l := range locales {
			c, err := Canonical(l)
			if err != nil {
				return err
			}
			if !slices.Contains(r.supported, c) {
				r.supported = append(r.supported, c)
			}
		}
		return nil
	}
}

// WithFallbacks sets the locales read after locale when it has no slug.
// Without fallbacks a locale only ever resolves its own slugs, which keeps
// slugs of different locales isolated from each other.
func WithFallbacks(locale string, chain ...string) Option {
	return func(r *Resolver) error {
		from, err := Canonical(locale)
		if err != nil {
			return err
		}
		out := make([]string, 0, len(chain))
		for _, l := range chain {
			c, err := Canonical(l)
			if err != nil {
				return err
			}
			if c != from && !slices.Contains(out, c) {
				out = append(out, c)
			}
		}
		r.fallbacks[from] = out
		return nil
	}
}

// NewResolver creates a Resolver with the given default locale.
//
// Example:
//
//	r, err := locale.NewResolver("en",
//		locale.WithSupported("es", "es-MX", "fr"),
//		locale.WithFallbacks("es-MX", "es"),
//	)
func NewResolver(defaultLocale string, opts ...Option) (*Resolver, error) {
	if defaultLocale == "" {
		defaultLocale = DefaultLocale
	}
	def, err := Canonical(defaultLocale)
	if err != nil {
		return nil, err
	}

	r := &Resolver{
		defaultLocale: def,
		fallbacks:     make(map[string][]string),
	}
	for _, opt := range opts {
		if err := opt(r); err != nil {
			return nil, fmt.Errorf("locale: failed to apply option: %w", err)
		}
	}

	if len(r.supported) > 0 {
		r.supported = slices.DeleteFunc(r.supported, func(l string) bool { return l == def })
		r.supported = slices.Insert(r.supported, 0, def)
		for from, chain := range r.fallbacks {
			for _, l := range append([]string{from}, chain...) {
				if !r.isSupported(l) {
					return nil, fmt.Errorf("%w: fallback %q", ErrUnsupportedLocale, l)
				}
			}
		}
	}

	return r, nil
}

// Canonical parses a BCP 47 tag and returns its canonical form ("es-mx" -> "es-MX").
// Underscores are accepted as subtag separators.
func Canonical(l string) (string, error) {
	l = strings.TrimSpace(l)
	if l == "" {
		return "", ErrEmptyLocale
	}
	tag, err := language.Parse(strings.ReplaceAll(l, "_", "-"))
	if err != nil {
		return "", fmt.Errorf("%w: %q", ErrInvalidLocale, l)
	}
	return tag.String(), nil
}

// Default returns the application default locale.
func (r *Resolver) Default() string {
	return r.defaultLocale
}

// Supported returns the configured locales, default first.
// An empty result means every well-formed locale is accepted.
func (r *Resolver) Supported() []string {
	return slices.Clone(r.supported)
}

// WriteLocale returns the canonical form of the active write locale.
// There is no fallback: an empty, malformed or unsupported locale is an error.
func (r *Resolver) WriteLocale(active string) (string, error) {
	l, err := Canonical(active)
	if err != nil {
		return "", err
	}
	if !r.isSupported(l) {
		return "", fmt.Errorf("%w: %q", ErrUnsupportedLocale, l)
	}
	return l, nil
}

// ReadLocales returns the ordered locales to try for a read in requested.
// An empty or malformed request reads the default locale.
func (r *Resolver) ReadLocales(requested string) []string {
	first := r.defaultLocale
	if l, err := Canonical(requested); err == nil {
		first = l
	}

	chain := r.fallbacks[first]
	out := make([]string, 0, 1+len(chain))
	out = append(out, first)
	return append(out, chain...)
}

// Match picks the best supported locale for an Accept-Language header.
// Falls back to the default locale when nothing matches.
func (r *Resolver) Match(acceptLanguage string) string {
	available := r.supported
	if len(available) == 0 {
		available = []string{r.defaultLocale}
	}
	return ParseAcceptLanguage(acceptLanguage, available)
}

func (r *Resolver) isSupported(l string) bool {
	return len(r.supported) == 0 || slices.Contains(r.supported, l)
}
