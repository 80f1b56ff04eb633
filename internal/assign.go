package internal

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/dmitrymomot/friendlyid/pkg/cache"
	"github.com/dmitrymomot/friendlyid/pkg/logger"
	"github.com/dmitrymomot/friendlyid/pkg/slug"
	"github.com/dmitrymomot/friendlyid/pkg/store"
)

// Assignment describes the result of assigning a slug in one locale.
type Assignment struct {
	Locale string
	// Slug is the record's current slug in Locale after the call; "" when it has none.
	Slug string
	// Previous is the slug the record held before the call.
	Previous string
	Outcome  store.Outcome
	// Attempts counts the candidates tried; zero for a no-op.
	Attempts int
	// HistoryCreated reports whether a new history entry was appended.
	HistoryCreated bool
	// Derived is false when the source text normalized to an empty slug.
	// The record then keeps its previous slug, or its numeric id as param.
	Derived bool
}

// Changed reports whether the current slug differs from the previous one.
func (a Assignment) Changed() bool {
	return a.Slug != a.Previous
}

// Err returns ErrNoSlugDerivable when no slug could be derived, nil otherwise.
func (a Assignment) Err() error {
	if !a.Derived {
		return ErrNoSlugDerivable
	}
	return nil
}

// Assign derives a slug from src for locale and makes it the record's
// current slug there, sequencing on conflict: "title", "title-2", ...
//
// The write locale is exact: an empty, malformed or unsupported locale is an
// error and no other locale is touched. Re-assigning text that still yields
// the current slug is a no-op and creates no history entry. Otherwise the
// candidates are tried from the base up, so a record holding "title-2" moves
// to "title" once it is free, and keeps "title-2" while it is not. Run it inside the host's save transaction to make the
// slug change atomic with the record (see db.WithTx).
func (e *Engine) Assign(ctx context.Context, rec Sluggable, src SlugSource, locale string) (Assignment, error) {
	if err := validateRecord(rec); err != nil {
		return Assignment{}, err
	}
	l, err := e.locales.WriteLocale(locale)
	if err != nil {
		return Assignment{}, fmt.Errorf("friendlyid: assign: %w", err)
	}

	text := ""
	if src != nil {
		text, _ = src.Text(l)
	}
	return e.assign(ctx, rec, l, e.normalize(text))
}

// AssignAll assigns a slug in every locale present in src, in locale order.
// It stops at the first error and returns the assignments made so far.
func (e *Engine) AssignAll(ctx context.Context, rec Sluggable, src LocalizedSource) ([]Assignment, error) {
	out := make([]Assignment, 0, len(src))
	for _, l := range src.Locales() {
		a, err := e.Assign(ctx, rec, src, l)
		if err != nil {
			return out, err
		}
		out = append(out, a)
	}
	return out, nil
}

// SetFriendlyID assigns a slug derived from text in locale.
// Unlike Assign, an empty locale means the default locale.
func (e *Engine) SetFriendlyID(ctx context.Context, rec Sluggable, text, locale string) (Assignment, error) {
	if locale == "" {
		locale = e.locales.Default()
	}
	return e.Assign(ctx, rec, StaticSource(text), locale)
}

func (e *Engine) assign(ctx context.Context, rec Sluggable, l, base string) (Assignment, error) {
	recordType, id := rec.RecordType(), rec.RecordID()
	log := e.logger.With(logger.Record(recordType, id), logger.Locale(l))

	current, err := e.store.Current(ctx, recordType, id, l)
	if err != nil {
		return Assignment{}, fmt.Errorf("friendlyid: read current slug: %w", err)
	}
	if current != rec.SlugFor(l) {
		rec.SetSlugFor(l, current)
	}

	a := Assignment{Locale: l, Slug: current, Previous: current, Outcome: store.OutcomeUnchanged}
	if base == "" {
		return a, nil
	}
	a.Derived = true

	if current == base {
		return a, nil
	}

	seqOpts := e.sequenceOptions(base)

	for candidate := range slug.Candidates(base, seqOpts...) {
		if a.Attempts == e.maxAttempts {
			break
		}
		a.Attempts++

		outcome, err := e.store.Claim(ctx, store.Claim{
			RecordType: recordType,
			RecordID:   id,
			Locale:     l,
			Slug:       candidate,
		})
		if err != nil {
			return Assignment{}, fmt.Errorf("friendlyid: claim slug %q: %w", candidate, err)
		}
		if !outcome.Claimed() {
			log.DebugContext(ctx, "slug candidate taken", logger.Slug(candidate), logger.Attempt(a.Attempts))
			continue
		}

		a.Slug = candidate
		a.Outcome = outcome
		a.HistoryCreated = outcome == store.OutcomeAssigned
		rec.SetSlugFor(l, candidate)

		if a.HistoryCreated {
			log.InfoContext(ctx, "slug assigned", logger.Slug(candidate), slog.String("previous", current))
		}
		e.remember(ctx, cache.Key{RecordType: recordType, Locale: l, Slug: candidate}, id)
		return a, nil
	}

	// The record keeps a numbered slug it already holds past the attempt bound.
	if current != "" && slug.IsSequenceOf(current, base, seqOpts...) {
		return a, nil
	}

	log.WarnContext(ctx, "slug candidates exhausted", logger.Slug(base), logger.Attempt(a.Attempts))
	return Assignment{}, fmt.Errorf("%w: %q after %d attempts", ErrCandidatesExhausted, base, a.Attempts)
}

func validateRecord(rec Sluggable) error {
	if rec == nil {
		return ErrInvalidRecord
	}
	if rec.RecordType() == "" {
		return ErrEmptyRecordType
	}
	if rec.RecordID() <= 0 {
		return fmt.Errorf("%w: id %d", ErrInvalidRecord, rec.RecordID())
	}
	return nil
}
