package locale_test

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/friendlyid/pkg/locale"
)

func TestCanonical(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in       string
		expected string
	}{
		{in: "en", expected: "en"},
		{in: "es-mx", expected: "es-MX"},
		{in: "es_MX", expected: "es-MX"},
		{in: " pt-BR ", expected: "pt-BR"},
	}
	for _, tt := range tests {
		got, err := locale.Canonical(tt.in)
		require.NoError(t, err, tt.in)
		require.Equal(t, tt.expected, got)
	}

	_, err := locale.Canonical("")
	require.ErrorIs(t, err, locale.ErrEmptyLocale)

	_, err = locale.Canonical("not a locale!")
	require.ErrorIs(t, err, locale.ErrInvalidLocale)
}

func TestResolver_WriteLocale(t *testing.T) {
	t.Parallel()

	r, err := locale.NewResolver("en", locale.WithSupported("es", "es-MX"))
	require.NoError(t, err)

	t.Run("exact locale", func(t *testing.T) {
		t.Parallel()

		l, err := r.WriteLocale("es-mx")
		require.NoError(t, err)
		require.Equal(t, "es-MX", l)
	})

	t.Run("no fallback on empty locale", func(t *testing.T) {
		t.Parallel()

		_, err := r.WriteLocale("")
		require.ErrorIs(t, err, locale.ErrEmptyLocale)
	})

	t.Run("unsupported locale", func(t *testing.T) {
		t.Parallel()

		_, err := r.WriteLocale("fr")
		require.ErrorIs(t, err, locale.ErrUnsupportedLocale)
	})

	t.Run("any locale when unrestricted", func(t *testing.T) {
		t.Parallel()

		open, err := locale.NewResolver("en")
		require.NoError(t, err)

		l, err := open.WriteLocale("fr")
		require.NoError(t, err)
		require.Equal(t, "fr", l)
	})
}

func TestResolver_ReadLocales(t *testing.T) {
	t.Parallel()

	r, err := locale.NewResolver("en",
		locale.WithSupported("es", "es-MX", "fr"),
		locale.WithFallbacks("es-MX", "es", "es-MX", "es"),
	)
	require.NoError(t, err)

	require.Equal(t, []string{"en"}, r.ReadLocales(""))
	require.Equal(t, []string{"es"}, r.ReadLocales("es"))
	require.Equal(t, []string{"fr"}, r.ReadLocales("fr"))
	require.Equal(t, []string{"es-MX", "es"}, r.ReadLocales("es-mx"))
	require.Equal(t, []string{"en"}, r.ReadLocales("%%%"))
}

func TestNewResolver(t *testing.T) {
	t.Parallel()

	t.Run("default locale is listed first", func(t *testing.T) {
		t.Parallel()

		r, err := locale.NewResolver("es", locale.WithSupported("en", "es", "fr"))
		require.NoError(t, err)
		require.Equal(t, "es", r.Default())
		require.Equal(t, []string{"es", "en", "fr"}, r.Supported())
	})

	t.Run("empty default uses en", func(t *testing.T) {
		t.Parallel()

		r, err := locale.NewResolver("")
		require.NoError(t, err)
		require.Equal(t, locale.DefaultLocale, r.Default())
	})

	t.Run("fallback to unsupported locale is rejected", func(t *testing.T) {
		t.Parallel()

		_, err := locale.NewResolver("en",
			locale.WithSupported("es"),
			locale.WithFallbacks("es", "de"),
		)
		require.ErrorIs(t, err, locale.ErrUnsupportedLocale)
	})

	t.Run("invalid supported locale", func(t *testing.T) {
		t.Parallel()

		_, err := locale.NewResolver("en", locale.WithSupported("??"))
		require.ErrorIs(t, err, locale.ErrInvalidLocale)
	})
}

func TestResolver_Match(t *testing.T) {
	t.Parallel()

	r, err := locale.NewResolver("en", locale.WithSupported("es", "pt-BR"))
	require.NoError(t, err)

	require.Equal(t, "es", r.Match("es-ES,es;q=0.9"))
	require.Equal(t, "pt-BR", r.Match("pt"))
	require.Equal(t, "en", r.Match("de"))
	require.Equal(t, "en", r.Match(""))
}

func TestContext(t *testing.T) {
	t.Parallel()

	_, ok := locale.FromContext(context.Background())
	require.False(t, ok)

	ctx := locale.WithLocale(context.Background(), "es")
	l, ok := locale.FromContext(ctx)
	require.True(t, ok)
	require.Equal(t, "es", l)
}

func TestLoadYAML(t *testing.T) {
	t.Parallel()

	t.Run("full document", func(t *testing.T) {
		t.Parallel()

		cfg, err := locale.LoadYAML(strings.NewReader(`
default: en
supported: [es, es-MX]
fallbacks:
  es-MX: es en
`))
		require.NoError(t, err)
		require.Equal(t, "en", cfg.Default)

		r, err := cfg.Resolver()
		require.NoError(t, err)
		require.Equal(t, []string{"es-MX", "es", "en"}, r.ReadLocales("es-MX"))
	})

	t.Run("empty document uses defaults", func(t *testing.T) {
		t.Parallel()

		cfg, err := locale.LoadYAML(strings.NewReader(""))
		require.NoError(t, err)
		require.Equal(t, locale.DefaultLocale, cfg.Default)
	})

	t.Run("unknown keys are rejected", func(t *testing.T) {
		t.Parallel()

		_, err := locale.LoadYAML(strings.NewReader("defualt: en\n"))
		require.ErrorIs(t, err, locale.ErrInvalidConfig)
	})
}
