// Package slug derives URL-safe slugs from arbitrary text and sequences
// candidate slugs for conflict resolution.
//
// [Make] is the normalizer: it lowercases, folds Latin diacritics to ASCII,
// turns every run of disallowed characters into a single separator and trims
// separators from both ends. The result is idempotent for default options.
// An empty result means no slug can be derived and callers should fall back
// to the record's numeric identifier.
//
//	slug.Make("John Doe")           // "john-doe"
//	slug.Make("Guerra y paz")       // "guerra-y-paz"
//	slug.Make("Über Größe straße")  // "uber-grose-strase"
//	slug.Make("!!!")                // ""
//
// # Options
//
//	slug.Make("Fish & Chips", slug.CustomReplace(map[string]string{"&": "and"}))
//	// "fish-and-chips"
//
//	slug.Make("Long Article Title", slug.MaxLength(12))
//	// "long-article"
//
//	slug.Make("admin", slug.ReservedSlugs("admin", "api"))
//	// "admin-k7x2m4"
//
//	slug.Make("<b>Hello</b> &amp; bye", slug.StripHTML())
//	// "hello-bye"
//
// Characters outside the Latin script (Cyrillic, CJK, emoji) are treated as
// separators; transliteration is left to a [CustomReplace] table supplied by
// the caller.
//
// # Candidates
//
// [Candidates] yields the lazy, unbounded sequence tried when a slug is
// already taken: the base itself, then base-2, base-3 and so on. Consumers
// stop ranging as soon as a free candidate is found:
//
//	for c := range slug.Candidates("juan-fulano") {
//		// "juan-fulano", "juan-fulano-2", "juan-fulano-3", ...
//	}
//
// [IsSequenceOf] reports whether a slug was produced from a given base,
// which lets callers skip regeneration when the source text did not change.
package slug
