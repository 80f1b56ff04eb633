package store

import (
	"errors"
	"time"
)

// ErrNotFound is returned by lookups when no slug or record matches.
var ErrNotFound = errors.New("store: not found")

// Claim asks a store to make Slug the current slug of a record in Locale.
type Claim struct {
	RecordType string
	Locale     string
	Slug       string
	RecordID   int64
}

// Outcome is the result of a Claim. A lost uniqueness race is an outcome,
// not an error.
type Outcome int

const (
	// OutcomeAssigned means the slug is now current and a history entry was appended.
	OutcomeAssigned Outcome = iota + 1
	// OutcomeReclaimed means the record got back one of its own historical slugs;
	// no history entry was appended.
	OutcomeReclaimed
	// OutcomeUnchanged means the slug already was the record's current slug.
	OutcomeUnchanged
	// OutcomeTaken means another record holds the slug, live or in history.
	OutcomeTaken
)

// Claimed reports whether the slug now belongs to the claiming record.
func (o Outcome) Claimed() bool {
	return o == OutcomeAssigned || o == OutcomeReclaimed || o == OutcomeUnchanged
}

func (o Outcome) String() string {
	switch o {
	case OutcomeAssigned:
		return "assigned"
	case OutcomeReclaimed:
		return "reclaimed"
	case OutcomeUnchanged:
		return "unchanged"
	case OutcomeTaken:
		return "taken"
	default:
		return "unknown"
	}
}

// HistoryEntry is an immutable ledger row: a slug a record held in a locale.
// (RecordType, Locale, Slug) is unique across all entries.
type HistoryEntry struct {
	CreatedAt  time.Time `json:"created_at"`
	RecordType string    `json:"record_type"`
	Slug       string    `json:"slug"`
	Locale     string    `json:"locale"`
	ID         int64     `json:"id"`
	RecordID   int64     `json:"record_id"`
}
