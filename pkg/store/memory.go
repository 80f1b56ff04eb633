package store

import (
	"cmp"
	"context"
	"slices"
	"sync"
	"time"
)

type liveKey struct {
	recordType string
	locale     string
	recordID   int64
}

type slugKey struct {
	recordType string
	locale     string
	slug       string
}

// Memory is an in-process store with the same uniqueness guarantees as the
// Postgres store. It is safe for concurrent use and intended for tests and
// single-process applications.
type Memory struct {
	now       func() time.Time
	live      map[liveKey]string
	liveOwner map[slugKey]int64
	history   map[slugKey]HistoryEntry
	mu        sync.RWMutex
	nextID    int64
}

// MemoryOption configures a Memory store.
type MemoryOption func(*Memory)

// WithClock overrides the time source used for history timestamps.
func WithClock(now func() time.Time) MemoryOption {
	return func(m *Memory) {
		if now != nil {
			m.now = now
		}
	}
}

// NewMemory creates an empty in-memory store.
func NewMemory(opts ...MemoryOption) *Memory {
	m := &Memory{
		now:       time.Now,
		live:      make(map[liveKey]string),
		liveOwner: make(map[slugKey]int64),
		history:   make(map[slugKey]HistoryEntry),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Current returns the current slug of a record in locale, or "" if it has none.
func (m *Memory) Current(_ context.Context, recordType string, id int64, locale string) (string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return m.live[liveKey{recordType: recordType, recordID: id, locale: locale}], nil
}

// Claim checks the live slugs and the history for (type, locale, slug) and,
// if free or owned by the claiming record, makes it current. Check and write
// happen under one lock.
func (m *Memory) Claim(_ context.Context, c Claim) (Outcome, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	lk := liveKey{recordType: c.RecordType, recordID: c.RecordID, locale: c.Locale}
	sk := slugKey{recordType: c.RecordType, locale: c.Locale, slug: c.Slug}

	current, hasCurrent := m.live[lk]
	if hasCurrent && current == c.Slug {
		return OutcomeUnchanged, nil
	}
	if owner, ok := m.liveOwner[sk]; ok && owner != c.RecordID {
		return OutcomeTaken, nil
	}
	entry, inHistory := m.history[sk]
	if inHistory && entry.RecordID != c.RecordID {
		return OutcomeTaken, nil
	}

	if hasCurrent {
		delete(m.liveOwner, slugKey{recordType: c.RecordType, locale: c.Locale, slug: current})
	}
	m.live[lk] = c.Slug
	m.liveOwner[sk] = c.RecordID

	if inHistory {
		return OutcomeReclaimed, nil
	}

	m.nextID++
	m.history[sk] = HistoryEntry{
		ID:         m.nextID,
		RecordType: c.RecordType,
		RecordID:   c.RecordID,
		Slug:       c.Slug,
		Locale:     c.Locale,
		CreatedAt:  m.now(),
	}
	return OutcomeAssigned, nil
}

// FindLive returns the record whose current slug in locale is slug.
func (m *Memory) FindLive(_ context.Context, recordType, locale, slug string) (int64, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if id, ok := m.liveOwner[slugKey{recordType: recordType, locale: locale, slug: slug}]; ok {
		return id, nil
	}
	return 0, ErrNotFound
}

// FindHistory returns the record that ever held slug in locale.
func (m *Memory) FindHistory(_ context.Context, recordType, locale, slug string) (int64, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if e, ok := m.history[slugKey{recordType: recordType, locale: locale, slug: slug}]; ok {
		return e.RecordID, nil
	}
	return 0, ErrNotFound
}

// FindAnyLocale matches slug in every locale: live slugs first, then history,
// each ordered by locale.
func (m *Memory) FindAnyLocale(_ context.Context, recordType, slug string) (int64, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if id, ok := firstByLocale(m.liveOwner, recordType, slug, func(id int64) int64 { return id }); ok {
		return id, nil
	}
	if id, ok := firstByLocale(m.history, recordType, slug, func(e HistoryEntry) int64 { return e.RecordID }); ok {
		return id, nil
	}
	return 0, ErrNotFound
}

func firstByLocale[V any](index map[slugKey]V, recordType, slug string, id func(V) int64) (int64, bool) {
	var (
		best  string
		found bool
		out   int64
	)
	for k, v := range index {
		if k.recordType != recordType || k.slug != slug {
			continue
		}
		if !found || k.locale < best {
			best, out, found = k.locale, id(v), true
		}
	}
	return out, found
}

// History returns the ledger entries of a record, oldest first.
func (m *Memory) History(_ context.Context, recordType string, id int64) ([]HistoryEntry, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	var out []HistoryEntry
	for _, e := range m.history {
		if e.RecordType == recordType && e.RecordID == id {
			out = append(out, e)
		}
	}
	slices.SortFunc(out, func(a, b HistoryEntry) int {
		if c := a.CreatedAt.Compare(b.CreatedAt); c != 0 {
			return c
		}
		return cmp.Compare(a.ID, b.ID)
	})
	return out, nil
}

// Delete removes every live slug and history entry of a record.
func (m *Memory) Delete(_ context.Context, recordType string, id int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	for k, slug := range m.live {
		if k.recordType == recordType && k.recordID == id {
			delete(m.live, k)
			delete(m.liveOwner, slugKey{recordType: recordType, locale: k.locale, slug: slug})
		}
	}
	for k, e := range m.history {
		if e.RecordType == recordType && e.RecordID == id {
			delete(m.history, k)
		}
	}
	return nil
}
