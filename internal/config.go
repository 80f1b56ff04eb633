package internal

import "github.com/dmitrymomot/friendlyid/pkg/slug"

// Config holds engine settings.
// Embed it in your app config for env parsing with caarlos0/env.
// Separator joins a base slug and its sequence number ("title-2").
type Config struct {
	Separator     string   `env:"FRIENDLYID_SEPARATOR" envDefault:"-"`
	Reserved      []string `env:"FRIENDLYID_RESERVED" envSeparator:","`
	MaxAttempts   int      `env:"FRIENDLYID_MAX_ATTEMPTS" envDefault:"100"`
	SequenceStart int      `env:"FRIENDLYID_SEQUENCE_START" envDefault:"2"`
	MaxLength     int      `env:"FRIENDLYID_MAX_LENGTH"`
	CrossLocale   bool     `env:"FRIENDLYID_CROSS_LOCALE_LOOKUP"`
	StripHTML     bool     `env:"FRIENDLYID_STRIP_HTML"`
}

// Options converts the config into engine options. Zero values keep defaults.
func (c Config) Options() []Option {
	opts := []Option{
		WithMaxAttempts(c.MaxAttempts),
		WithSequenceStart(c.SequenceStart),
		WithSequenceSeparator(c.Separator),
		WithCrossLocaleLookup(c.CrossLocale),
	}
	if len(c.Reserved) > 0 {
		opts = append(opts, WithReservedSlugs(c.Reserved...))
	}
	if c.MaxLength > 0 {
		opts = append(opts, WithSlugOptions(slug.MaxLength(c.MaxLength)))
	}
	if c.StripHTML {
		opts = append(opts, WithSlugOptions(slug.StripHTML()))
	}
	return opts
}
