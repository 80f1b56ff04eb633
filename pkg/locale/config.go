package locale

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"gopkg.in/yaml.v3"
)

// Config describes the locale policy.
// Embed it in your app config for env parsing with caarlos0/env, or read it
// from a YAML document with LoadYAML.
//
// Fallback chains are space separated:
//
//	FRIENDLYID_LOCALE_FALLBACKS="es-MX:es en,pt-BR:pt"
type Config struct {
	Fallbacks map[string]string `env:"FRIENDLYID_LOCALE_FALLBACKS" yaml:"fallbacks"`
	Default   string            `env:"FRIENDLYID_DEFAULT_LOCALE" envDefault:"en" yaml:"default"`
	Supported []string          `env:"FRIENDLYID_LOCALES" envSeparator:"," yaml:"supported"`
}

// Resolver builds a Resolver from the configuration.
func (c Config) Resolver() (*Resolver, error) {
	opts := make([]Option, 0, 1+len(c.Fallbacks))
	if len(c.Supported) > 0 {
		opts = append(opts, WithSupported(c.Supported...))
	}
	for from, chain := range c.Fallbacks {
		opts = append(opts, WithFallbacks(from, strings.Fields(chain)...))
	}

	r, err := NewResolver(c.Default, opts...)
	if err != nil {
		return nil, errors.Join(ErrInvalidConfig, err)
	}
	return r, nil
}

// LoadYAML decodes a Config from r. Unknown keys are rejected.
//
//	default: en
//	supported: [en, es, es-MX]
//	fallbacks:
//	  es-MX: es
func LoadYAML(r io.Reader) (Config, error) {
	var c Config
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&c); err != nil && !errors.Is(err, io.EOF) {
		return Config{}, errors.Join(ErrInvalidConfig, fmt.Errorf("decode yaml: %w", err))
	}
	if c.Default == "" {
		c.Default = DefaultLocale
	}
	return c, nil
}
