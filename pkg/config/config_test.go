package config_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/friendlyid/pkg/config"
)

type defaultsConfig struct {
	Name     string        `env:"FRIENDLYID_TEST_DEFAULTS_NAME" envDefault:"blog"`
	Attempts int           `env:"FRIENDLYID_TEST_DEFAULTS_ATTEMPTS" envDefault:"100"`
	Timeout  time.Duration `env:"FRIENDLYID_TEST_DEFAULTS_TIMEOUT" envDefault:"5s"`
	Locales  []string      `env:"FRIENDLYID_TEST_DEFAULTS_LOCALES" envSeparator:"," envDefault:"en,de"`
}

type cachedConfig struct {
	Value string `env:"FRIENDLYID_TEST_CACHED_VALUE"`
}

type requiredConfig struct {
	Value string `env:"FRIENDLYID_TEST_REQUIRED_VALUE,required"`
}

type badConfig struct {
	Attempts int `env:"FRIENDLYID_TEST_BAD_ATTEMPTS"`
}

func TestLoad_Defaults(t *testing.T) {
	var cfg defaultsConfig
	require.NoError(t, config.Load(&cfg))

	require.Equal(t, "blog", cfg.Name)
	require.Equal(t, 100, cfg.Attempts)
	require.Equal(t, 5*time.Second, cfg.Timeout)
	require.Equal(t, []string{"en", "de"}, cfg.Locales)
}

func TestLoad_Cached(t *testing.T) {
	t.Setenv("FRIENDLYID_TEST_CACHED_VALUE", "first")

	var a cachedConfig
	require.NoError(t, config.Load(&a))
	require.Equal(t, "first", a.Value)

	t.Setenv("FRIENDLYID_TEST_CACHED_VALUE", "second")

	var b cachedConfig
	require.NoError(t, config.Load(&b))
	require.Equal(t, "first", b.Value)
}

func TestLoad_Required(t *testing.T) {
	var cfg requiredConfig
	err := config.Load(&cfg)
	require.ErrorIs(t, err, config.ErrParsingConfig)

	require.Panics(t, func() {
		var again requiredConfig
		config.MustLoad(&again)
	})
}

func TestLoad_InvalidValue(t *testing.T) {
	t.Setenv("FRIENDLYID_TEST_BAD_ATTEMPTS", "many")

	var cfg badConfig
	require.ErrorIs(t, config.Load(&cfg), config.ErrParsingConfig)
}
