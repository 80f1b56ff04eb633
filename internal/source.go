package internal

import (
	"maps"
	"slices"
)

// SlugSource supplies the text a slug is derived from.
type SlugSource interface {
	// Text returns the source text for locale and whether it has one.
	Text(locale string) (string, bool)
}

// StaticSource is a locale-independent source, such as an untranslated
// name column. It yields the same text for every locale; the write
// locale alone decides which slug it produces.
type StaticSource string

func (s StaticSource) Text(string) (string, bool) {
	return string(s), true
}

// LocalizedSource holds one source value per locale, such as a translated
// title. Locales without a value have no text.
type LocalizedSource map[string]string

func (s LocalizedSource) Text(locale string) (string, bool) {
	v, ok := s[locale]
	return v, ok
}

// Locales returns the locales that have a value, sorted.
func (s LocalizedSource) Locales() []string {
	return slices.Sorted(maps.Keys(s))
}
