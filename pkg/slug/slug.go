package slug

import (
	"crypto/rand"
	"math/big"
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

const (
	defaultSuffixLength = 6
	lowerAlphabet       = "abcdefghijklmnopqrstuvwxyz0123456789"
	mixedAlphabet       = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
)

// foldings maps letters that have no canonical decomposition to their ASCII base.
var foldings = map[rune]string{
	'ß': "s", 'ẞ': "s",
	'æ': "a", 'Æ': "a",
	'œ': "o", 'Œ': "o",
	'ø': "o", 'Ø': "o",
	'ł': "l", 'Ł': "l",
	'đ': "d", 'Đ': "d",
	'ð': "d", 'Ð': "d",
	'þ': "th", 'Þ': "th",
	'ı': "i",
}

// Make converts s into a URL-safe slug.
//
// With default options the result contains only lowercase ASCII letters, digits
// and single "-" separators, with no leading or trailing separator. Make is
// idempotent for default options: Make(Make(s)) == Make(s).
//
// An empty result means no slug can be derived from s.
func Make(s string, opts ...Option) string {
	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}

	if o.stripHTML {
		s = stripHTML(s)
	}

	if o.stripChars != "" {
		s = strings.Map(func(r rune) rune {
			if strings.ContainsRune(o.stripChars, r) {
				return -1
			}
			return r
		}, s)
	}

	if len(o.replacements) > 0 {
		s = strings.NewReplacer(o.replacements...).Replace(s)
	}

	words := strings.FieldsFunc(fold(s), func(r rune) bool {
		return !isAllowed(r)
	})
	if len(words) == 0 {
		return ""
	}

	result := strings.Join(words, o.separator)
	if o.lowercase {
		result = strings.ToLower(result)
	}
	result = truncate(result, o.maxLength, o.separator)

	suffixLen := o.suffixLength
	if suffixLen <= 0 && o.isReserved(result) {
		suffixLen = defaultSuffixLength
	}
	if o.minLength > 0 {
		if need := o.minLength - utf8.RuneCountInString(result) - utf8.RuneCountInString(o.separator); need > suffixLen {
			suffixLen = need
		}
	}
	if suffixLen > 0 {
		result = appendSuffix(result, suffixLen, o)
	}

	return result
}

// fold strips diacritics and maps special Latin letters to ASCII.
func fold(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	for _, r := range s {
		if f, ok := foldings[r]; ok {
			b.WriteString(f)
			continue
		}
		b.WriteRune(r)
	}

	t := transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
	out, _, err := transform.String(t, b.String())
	if err != nil {
		return b.String()
	}
	return out
}

func isAllowed(r rune) bool {
	return r < utf8.RuneSelf && (unicode.IsLetter(r) || unicode.IsDigit(r))
}

// truncate cuts s to at most n runes and drops dangling separator characters.
func truncate(s string, n int, sep string) string {
	if n <= 0 || utf8.RuneCountInString(s) <= n {
		return s
	}
	s = string([]rune(s)[:n])
	if sep != "" {
		s = strings.TrimRight(s, sep)
	}
	return s
}

func appendSuffix(s string, n int, o *options) string {
	sepLen := utf8.RuneCountInString(o.separator)
	if o.maxLength > 0 {
		room := o.maxLength - utf8.RuneCountInString(s) - sepLen
		switch {
		case room >= n:
		case room >= 1:
			n = room
		default:
			n = min(n, o.maxLength-sepLen-1)
			if n < 1 {
				return s
			}
			s = truncate(s, o.maxLength-sepLen-n, o.separator)
		}
	}

	alphabet := lowerAlphabet
	if !o.lowercase {
		alphabet = mixedAlphabet
	}
	return s + o.separator + randomString(n, alphabet)
}

func randomString(n int, alphabet string) string {
	limit := big.NewInt(int64(len(alphabet)))
	b := make([]byte, n)
	for i := range b {
		idx, err := rand.Int(rand.Reader, limit)
		if err != nil {
			// crypto/rand does not fail on supported platforms
			panic(err)
		}
		b[i] = alphabet[idx.Int64()]
	}
	return string(b)
}
