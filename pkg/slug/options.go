package slug

import (
	"cmp"
	"slices"
	"strings"
)

// Option configures slug generation.
type Option func(*options)

type options struct {
	reserved     map[string]struct{}
	separator    string
	stripChars   string
	replacements []string
	maxLength    int
	minLength    int
	suffixLength int
	lowercase    bool
	stripHTML    bool
}

func defaultOptions() *options {
	return &options{
		separator: "-",
		lowercase: true,
	}
}

// MaxLength limits the slug to n runes. Zero or negative disables the limit.
// Trailing separators left by truncation are removed.
func MaxLength(n int) Option {
	return func(o *options) {
		o.maxLength = n
	}
}

// MinLength pads slugs shorter than n runes with a random suffix.
func MinLength(n int) Option {
	return func(o *options) {
		o.minLength = n
	}
}

// Separator sets the string placed between words.
// Default: "-".
func Separator(sep string) Option {
	return func(o *options) {
		o.separator = sep
	}
}

// Lowercase controls case folding of the result.
// Default: true.
func Lowercase(v bool) Option {
	return func(o *options) {
		o.lowercase = v
	}
}

// StripChars removes every listed character before slugification.
func StripChars(chars string) Option {
	return func(o *options) {
		o.stripChars = chars
	}
}

// CustomReplace applies string replacements before slugification.
// Longer keys win over shorter ones that share a prefix.
func CustomReplace(replacements map[string]string) Option {
	return func(o *options) {
		keys := make([]string, 0, len(replacements))
		for k := range replacements {
			if k != "" {
				keys = append(keys, k)
			}
		}
		slices.SortFunc(keys, func(a, b string) int {
			if c := cmp.Compare(len(b), len(a)); c != 0 {
				return c
			}
			return strings.Compare(a, b)
		})

		o.replacements = make([]string, 0, len(keys)*2)
		for _, k := range keys {
			o.replacements = append(o.replacements, k, replacements[k])
		}
	}
}

// StripHTML removes markup from the input before slugification, so a title
// like "<b>Hello</b> &amp; welcome" yields "hello-welcome".
func StripHTML() Option {
	return func(o *options) {
		o.stripHTML = true
	}
}

// WithSuffix appends a random alphanumeric suffix of n characters.
func WithSuffix(n int) Option {
	return func(o *options) {
		o.suffixLength = n
	}
}

// ReservedSlugs marks words that must never be returned bare.
// Matching is case-insensitive; a reserved result gets a random suffix.
func ReservedSlugs(words ...string) Option {
	return func(o *options) {
		if o.reserved == nil {
			o.reserved = make(map[string]struct{}, len(words))
		}
		for _, w := range words {
			o.reserved[strings.ToLower(w)] = struct{}{}
		}
	}
}

func (o *options) isReserved(s string) bool {
	if len(o.reserved) == 0 {
		return false
	}
	_, ok := o.reserved[strings.ToLower(s)]
	return ok
}
