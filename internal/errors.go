package internal

import (
	"errors"

	"github.com/dmitrymomot/friendlyid/pkg/locale"
)

var (
	// ErrNotFound is returned by Find when no live slug, historical slug
	// or numeric id matches the token.
	ErrNotFound = errors.New("friendlyid: record not found")

	// ErrNoSlugDerivable reports source text that normalizes to nothing.
	// Assign does not return it; see Assignment.Err.
	ErrNoSlugDerivable = errors.New("friendlyid: no slug derivable from source text")

	// ErrCandidatesExhausted is returned when every candidate up to the
	// attempt limit is taken.
	ErrCandidatesExhausted = errors.New("friendlyid: slug candidates exhausted")

	ErrEmptyRecordType = errors.New("friendlyid: empty record type")
	ErrInvalidRecord   = errors.New("friendlyid: invalid record")

	// Locale errors come from the locale package and match with errors.Is.
	ErrUnsupportedLocale = locale.ErrUnsupportedLocale
	ErrInvalidLocale     = locale.ErrInvalidLocale
	ErrEmptyLocale       = locale.ErrEmptyLocale
)
