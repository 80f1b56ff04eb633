package internal_test

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/friendlyid/internal"
	"github.com/dmitrymomot/friendlyid/pkg/locale"
	"github.com/dmitrymomot/friendlyid/pkg/slug"
	"github.com/dmitrymomot/friendlyid/pkg/store"
)

func newResolver(t *testing.T, opts ...locale.Option) *locale.Resolver {
	t.Helper()
	r, err := locale.NewResolver("en", opts...)
	require.NoError(t, err)
	return r
}

func newEngine(t *testing.T, opts ...internal.Option) (*internal.Engine, *store.Memory) {
	t.Helper()
	st := store.NewMemory()
	opts = append([]internal.Option{
		internal.WithLocales(newResolver(t, locale.WithSupported("es", "fr", "de"))),
	}, opts...)
	eng := internal.New(st, opts...)
	t.Cleanup(func() { _ = eng.Close() })
	return eng, st
}

func post(id int64) *internal.Record {
	return &internal.Record{Type: "post", ID: id}
}

// countingStore records lookups made by the engine.
type countingStore struct {
	*store.Memory
	findLive atomic.Int32
}

func (s *countingStore) FindLive(ctx context.Context, recordType, locale, slug string) (int64, error) {
	s.findLive.Add(1)
	return s.Memory.FindLive(ctx, recordType, locale, slug)
}

// crowdedStore reports every candidate as taken.
type crowdedStore struct {
	*store.Memory
	claims atomic.Int32
}

func (s *crowdedStore) Claim(context.Context, store.Claim) (store.Outcome, error) {
	s.claims.Add(1)
	return store.OutcomeTaken, nil
}

// brokenStore fails every operation.
type brokenStore struct {
	*store.Memory
	err error
}

func (s *brokenStore) Current(context.Context, string, int64, string) (string, error) {
	return "", s.err
}

func (s *brokenStore) FindLive(context.Context, string, string, string) (int64, error) {
	return 0, s.err
}

func (s *brokenStore) Delete(context.Context, string, int64) error {
	return s.err
}

func TestNew_Defaults(t *testing.T) {
	t.Parallel()

	eng := internal.New(store.NewMemory())
	require.Equal(t, "en", eng.Locales().Default())
	require.Equal(t, "hello-world", eng.Normalize("Hello, World!"))
	require.NoError(t, eng.Close())
}

func TestWithNormalizer(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	eng, _ := newEngine(t, internal.WithNormalizer(func(s string) string {
		return slug.Make(s, slug.CustomReplace(map[string]string{"&": " and "}))
	}))

	rec := post(1)
	a, err := eng.Assign(ctx, rec, internal.StaticSource("Salt & Pepper"), "en")
	require.NoError(t, err)
	require.Equal(t, "salt-and-pepper", a.Slug)
}

func TestWithSlugOptions(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	eng, _ := newEngine(t, internal.WithSlugOptions(slug.MaxLength(10)))

	rec := post(1)
	a, err := eng.Assign(ctx, rec, internal.StaticSource("A very long title indeed"), "en")
	require.NoError(t, err)
	require.Equal(t, "a-very-lon", a.Slug)
}

func TestConfig_Options(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	cfg := internal.Config{
		Separator:     "_",
		Reserved:      []string{"admin"},
		MaxAttempts:   5,
		SequenceStart: 10,
		MaxLength:     20,
		StripHTML:     true,
	}
	eng := internal.New(store.NewMemory(), cfg.Options()...)

	first, err := eng.Assign(ctx, post(1), internal.StaticSource("Hello"), "en")
	require.NoError(t, err)
	require.Equal(t, "hello", first.Slug)

	second, err := eng.Assign(ctx, post(2), internal.StaticSource("Hello"), "en")
	require.NoError(t, err)
	require.Equal(t, "hello_10", second.Slug)

	reserved, err := eng.Assign(ctx, post(3), internal.StaticSource("Admin"), "en")
	require.NoError(t, err)
	require.Equal(t, "admin_10", reserved.Slug)

	marked, err := eng.Assign(ctx, post(4), internal.StaticSource("<em>Marked</em> up"), "en")
	require.NoError(t, err)
	require.Equal(t, "marked-up", marked.Slug)
}

func TestRecord_Slugs(t *testing.T) {
	t.Parallel()

	var rec internal.Record
	require.Empty(t, rec.SlugFor("en"))

	rec.SetSlugFor("en", "hello")
	require.Equal(t, "hello", rec.SlugFor("en"))
	require.Equal(t, internal.Slugs{"en": "hello"}, rec.Slugs)

	rec.SetSlugFor("en", "")
	require.Empty(t, rec.Slugs)
}

func TestLocalizedSource(t *testing.T) {
	t.Parallel()

	src := internal.LocalizedSource{"es": "Hola", "en": "Hello"}
	require.Equal(t, []string{"en", "es"}, src.Locales())

	v, ok := src.Text("es")
	require.True(t, ok)
	require.Equal(t, "Hola", v)

	_, ok = src.Text("fr")
	require.False(t, ok)

	v, ok = internal.StaticSource("Same").Text("fr")
	require.True(t, ok)
	require.Equal(t, "Same", v)
}

func TestStoreErrors(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	boom := errors.New("connection reset")

	eng := internal.New(&brokenStore{Memory: store.NewMemory(), err: boom})

	_, err := eng.Assign(ctx, post(1), internal.StaticSource("Hello"), "en")
	require.ErrorIs(t, err, boom)

	_, err = eng.Find(ctx, "post", "hello", "en")
	require.ErrorIs(t, err, boom)
	require.NotErrorIs(t, err, internal.ErrNotFound)

	ok, err := eng.Exists(ctx, "post", "hello", "en")
	require.ErrorIs(t, err, boom)
	require.False(t, ok)

	_, err = eng.CanonicalParam(ctx, "post", 1, "en")
	require.ErrorIs(t, err, boom)

	require.ErrorIs(t, eng.Forget(ctx, "post", 1), boom)
}
