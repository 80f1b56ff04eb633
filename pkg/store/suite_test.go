package store_test

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/friendlyid/pkg/store"
)

type backend interface {
	Current(ctx context.Context, recordType string, id int64, locale string) (string, error)
	Claim(ctx context.Context, c store.Claim) (store.Outcome, error)
	FindLive(ctx context.Context, recordType, locale, slug string) (int64, error)
	FindHistory(ctx context.Context, recordType, locale, slug string) (int64, error)
	FindAnyLocale(ctx context.Context, recordType, slug string) (int64, error)
	History(ctx context.Context, recordType string, id int64) ([]store.HistoryEntry, error)
	Delete(ctx context.Context, recordType string, id int64) error
}

var (
	_ backend = (*store.Memory)(nil)
	_ backend = (*store.Postgres)(nil)
)

// runSuite checks the claim protocol against a backend. newBackend must
// return an empty store; recordType is unique per subtest so backends
// sharing a database do not interfere.
func runSuite(t *testing.T, newBackend func(t *testing.T) backend) {
	ctx := context.Background()

	claim := func(t *testing.T, s backend, typ string, id int64, locale, slug string) store.Outcome {
		t.Helper()
		out, err := s.Claim(ctx, store.Claim{RecordType: typ, RecordID: id, Locale: locale, Slug: slug})
		require.NoError(t, err)
		return out
	}

	t.Run("assigns a free slug", func(t *testing.T) {
		s, typ := newBackend(t), t.Name()

		require.Equal(t, store.OutcomeAssigned, claim(t, s, typ, 1, "en", "john-doe"))

		cur, err := s.Current(ctx, typ, 1, "en")
		require.NoError(t, err)
		require.Equal(t, "john-doe", cur)

		id, err := s.FindLive(ctx, typ, "en", "john-doe")
		require.NoError(t, err)
		require.EqualValues(t, 1, id)
	})

	t.Run("same slug again is unchanged", func(t *testing.T) {
		s, typ := newBackend(t), t.Name()

		claim(t, s, typ, 1, "en", "hello")
		require.Equal(t, store.OutcomeUnchanged, claim(t, s, typ, 1, "en", "hello"))

		h, err := s.History(ctx, typ, 1)
		require.NoError(t, err)
		require.Len(t, h, 1)
	})

	t.Run("live slug of another record is taken", func(t *testing.T) {
		s, typ := newBackend(t), t.Name()

		claim(t, s, typ, 1, "es", "juan-fulano")
		require.Equal(t, store.OutcomeTaken, claim(t, s, typ, 2, "es", "juan-fulano"))
		require.Equal(t, store.OutcomeAssigned, claim(t, s, typ, 2, "es", "juan-fulano-2"))
	})

	t.Run("historical slug of another record stays reserved", func(t *testing.T) {
		s, typ := newBackend(t), t.Name()

		claim(t, s, typ, 1, "en", "foo-title")
		claim(t, s, typ, 1, "en", "foo-title-2")

		require.Equal(t, store.OutcomeTaken, claim(t, s, typ, 2, "en", "foo-title"))

		id, err := s.FindHistory(ctx, typ, "en", "foo-title")
		require.NoError(t, err)
		require.EqualValues(t, 1, id)

		_, err = s.FindLive(ctx, typ, "en", "foo-title")
		require.ErrorIs(t, err, store.ErrNotFound)
	})

	t.Run("own historical slug is reclaimed without a new entry", func(t *testing.T) {
		s, typ := newBackend(t), t.Name()

		claim(t, s, typ, 1, "en", "hello")
		claim(t, s, typ, 1, "en", "hello-again")
		require.Equal(t, store.OutcomeReclaimed, claim(t, s, typ, 1, "en", "hello"))

		h, err := s.History(ctx, typ, 1)
		require.NoError(t, err)
		require.Len(t, h, 2)
		require.Equal(t, "hello", h[0].Slug)
		require.Equal(t, "hello-again", h[1].Slug)
	})

	t.Run("locales are separate namespaces", func(t *testing.T) {
		s, typ := newBackend(t), t.Name()

		claim(t, s, typ, 1, "en", "new-title")
		require.Equal(t, store.OutcomeAssigned, claim(t, s, typ, 2, "de", "new-title"))

		_, err := s.FindLive(ctx, typ, "fr", "new-title")
		require.ErrorIs(t, err, store.ErrNotFound)

		id, err := s.FindAnyLocale(ctx, typ, "new-title")
		require.NoError(t, err)
		require.EqualValues(t, 2, id, "de sorts before en")
	})

	t.Run("record types are separate namespaces", func(t *testing.T) {
		s, typ := newBackend(t), t.Name()

		claim(t, s, typ+"/posts", 1, "en", "hello")
		require.Equal(t, store.OutcomeAssigned, claim(t, s, typ+"/pages", 1, "en", "hello"))
	})

	t.Run("history records locale", func(t *testing.T) {
		s, typ := newBackend(t), t.Name()

		claim(t, s, typ, 1, "en", "foo-title")
		claim(t, s, typ, 1, "fr", "foo-titre")

		h, err := s.History(ctx, typ, 1)
		require.NoError(t, err)
		require.Len(t, h, 2)

		byLocale := map[string]string{}
		for _, e := range h {
			require.Equal(t, typ, e.RecordType)
			require.EqualValues(t, 1, e.RecordID)
			require.False(t, e.CreatedAt.IsZero())
			byLocale[e.Locale] = e.Slug
		}
		require.Equal(t, map[string]string{"en": "foo-title", "fr": "foo-titre"}, byLocale)
	})

	t.Run("delete frees slugs", func(t *testing.T) {
		s, typ := newBackend(t), t.Name()

		claim(t, s, typ, 1, "en", "gone")
		require.NoError(t, s.Delete(ctx, typ, 1))

		cur, err := s.Current(ctx, typ, 1, "en")
		require.NoError(t, err)
		require.Empty(t, cur)

		_, err = s.FindHistory(ctx, typ, "en", "gone")
		require.ErrorIs(t, err, store.ErrNotFound)

		require.Equal(t, store.OutcomeAssigned, claim(t, s, typ, 2, "en", "gone"))
	})

	t.Run("concurrent claims yield exactly one owner", func(t *testing.T) {
		s, typ := newBackend(t), t.Name()

		const writers = 8
		var (
			wg   sync.WaitGroup
			mu   sync.Mutex
			wins []int64
		)
		for i := range writers {
			wg.Add(1)
			go func(id int64) {
				defer wg.Done()
				out, err := s.Claim(ctx, store.Claim{RecordType: typ, RecordID: id, Locale: "en", Slug: "contested"})
				if err != nil {
					panic(fmt.Sprintf("claim: %v", err))
				}
				if out.Claimed() {
					mu.Lock()
					wins = append(wins, id)
					mu.Unlock()
				}
			}(int64(i + 1))
		}
		wg.Wait()

		require.Len(t, wins, 1)
		id, err := s.FindLive(ctx, typ, "en", "contested")
		require.NoError(t, err)
		require.Equal(t, wins[0], id)
	})
}
