package internal

// Sluggable is a host record that carries one current slug per locale.
// The engine reads and writes the slugs through it; persisting the record
// itself stays with the host.
type Sluggable interface {
	// RecordType scopes slug uniqueness, e.g. "post" or "user".
	RecordType() string
	// RecordID is the stable numeric identifier assigned at creation.
	RecordID() int64
	// SlugFor returns the current slug in locale, or "" if none.
	SlugFor(locale string) string
	// SetSlugFor replaces the current slug in locale.
	SetSlugFor(locale, slug string)
}

// Slugs maps a locale to the record's current slug in it.
// The zero value is ready to use through a pointer.
type Slugs map[string]string

// For returns the slug for locale, or "".
func (s Slugs) For(locale string) string {
	return s[locale]
}

// Set stores slug for locale, allocating the map on first use.
// An empty slug removes the locale.
func (s *Slugs) Set(locale, slug string) {
	if slug == "" {
		delete(*s, locale)
		return
	}
	if *s == nil {
		*s = make(Slugs)
	}
	(*s)[locale] = slug
}

// Record is a ready-made Sluggable for hosts that keep slugs in a map,
// for example a jsonb column.
type Record struct {
	Slugs Slugs  `json:"slugs,omitempty"`
	Type  string `json:"type"`
	ID    int64  `json:"id"`
}

func (r *Record) RecordType() string { return r.Type }

func (r *Record) RecordID() int64 { return r.ID }

func (r *Record) SlugFor(locale string) string { return r.Slugs.For(locale) }

func (r *Record) SetSlugFor(locale, slug string) { r.Slugs.Set(locale, slug) }

var _ Sluggable = (*Record)(nil)
