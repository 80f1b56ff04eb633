package cache

import (
	"container/list"
	"context"
	"sync"
	"time"
)

type entry struct {
	expiresAt time.Time // zero value = never expires
	key       Key
	ref       string
	id        int64
}

func (e *entry) expired(now time.Time) bool {
	return !e.expiresAt.IsZero() && now.After(e.expiresAt)
}

// Memory is an in-process Cache with TTL expiration and LRU eviction.
// Most recently used entries sit at the front of the eviction list.
type Memory struct {
	items    map[Key]*list.Element
	byRecord map[string]map[Key]struct{}
	eviction *list.List
	opts     *memoryOptions
	done     chan struct{}
	mu       sync.Mutex
	closed   bool
}

// NewMemory creates an in-memory cache.
//
// Example:
//
//	c := cache.NewMemory(
//	    cache.WithTTL(time.Hour),
//	    cache.WithMaxEntries(50_000),
//	)
//	defer c.Close()
func NewMemory(opts ...MemoryOption) *Memory {
	o := defaultMemoryOptions()
	for _, opt := range opts {
		opt(o)
	}

	m := &Memory{
		items:    make(map[Key]*list.Element),
		byRecord: make(map[string]map[Key]struct{}),
		eviction: list.New(),
		opts:     o,
		done:     make(chan struct{}),
	}

	if o.cleanupInterval > 0 && o.ttl > 0 {
		go m.janitor()
	}

	return m
}

// Get returns the record id cached for key and marks it recently used.
func (m *Memory) Get(_ context.Context, key Key) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	elem, ok := m.items[key]
	if !ok {
		return 0, ErrNotFound
	}

	e := elem.Value.(*entry)
	if e.expired(time.Now()) {
		m.remove(elem)
		return 0, ErrNotFound
	}

	m.eviction.MoveToFront(elem)
	return e.id, nil
}

// Set caches id for key, evicting the least recently used entry when full.
func (m *Memory) Set(_ context.Context, key Key, id int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.closed {
		return ErrClosed
	}

	var expiresAt time.Time
	if m.opts.ttl > 0 {
		expiresAt = time.Now().Add(m.opts.ttl)
	}

	if elem, ok := m.items[key]; ok {
		m.remove(elem)
	}
	if m.opts.maxEntries > 0 && len(m.items) >= m.opts.maxEntries {
		if oldest := m.eviction.Back(); oldest != nil {
			m.remove(oldest)
		}
	}

	e := &entry{key: key, id: id, ref: recordRef(key.RecordType, id), expiresAt: expiresAt}
	m.items[key] = m.eviction.PushFront(e)

	keys, ok := m.byRecord[e.ref]
	if !ok {
		keys = make(map[Key]struct{})
		m.byRecord[e.ref] = keys
	}
	keys[key] = struct{}{}

	return nil
}

// ForgetRecord drops every key that resolves to the record.
func (m *Memory) ForgetRecord(_ context.Context, recordType string, id int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	for key := range m.byRecord[recordRef(recordType, id)] {
		if elem, ok := m.items[key]; ok {
			m.remove(elem)
		}
	}
	return nil
}

// Len returns the number of cached entries, expired ones included.
func (m *Memory) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.items)
}

// Close stops the janitor goroutine. Close is idempotent.
func (m *Memory) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.closed {
		m.closed = true
		close(m.done)
	}
	return nil
}

func (m *Memory) janitor() {
	ticker := time.NewTicker(m.opts.cleanupInterval)
	defer ticker.Stop()

	for {
		select {
		case <-m.done:
			return
		case <-ticker.C:
			m.deleteExpired()
		}
	}
}

func (m *Memory) deleteExpired() {
	m.mu.Lock()
	defer m.mu.Unlock()

	now := time.Now()
	for elem := m.eviction.Back(); elem != nil; {
		prev := elem.Prev()
		if elem.Value.(*entry).expired(now) {
			m.remove(elem)
		}
		elem = prev
	}
}

// remove unlinks elem from every index. Caller must hold the mutex.
func (m *Memory) remove(elem *list.Element) {
	m.eviction.Remove(elem)
	e := elem.Value.(*entry)
	delete(m.items, e.key)

	if keys, ok := m.byRecord[e.ref]; ok {
		delete(keys, e.key)
		if len(keys) == 0 {
			delete(m.byRecord, e.ref)
		}
	}
}

var _ Cache = (*Memory)(nil)
