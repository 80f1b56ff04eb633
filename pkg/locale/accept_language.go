package locale

import (
	"strings"

	"golang.org/x/text/language"
)

// maxAcceptLanguageLength bounds the header size we are willing to parse.
const maxAcceptLanguageLength = 4096

// ParseAcceptLanguage returns the entry of available that best satisfies an
// Accept-Language header. Higher quality values win; for the same quality an
// exact tag match beats a match on the base language ("en" vs "en-US").
// Returns available[0] when nothing matches and "" when available is empty.
func ParseAcceptLanguage(header string, available []string) string {
	if len(available) == 0 {
		return ""
	}
	if len(header) > maxAcceptLanguageLength {
		header = header[:maxAcceptLanguageLength]
	}

	tags, weights, err := language.ParseAcceptLanguage(header)
	if err != nil || len(tags) == 0 {
		return available[0]
	}

	for i, tag := range tags {
		if weights[i] <= 0 {
			continue
		}
		for _, a := range available {
			if strings.EqualFold(tag.String(), a) {
				return a
			}
		}
		base, _ := tag.Base()
		for _, a := range available {
			if b, _ := language.Make(a).Base(); b == base {
				return a
			}
		}
	}

	return available[0]
}
