//go:build integration

package store_test

import (
	"context"
	"errors"
	"os"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/friendlyid/pkg/db"
	"github.com/dmitrymomot/friendlyid/pkg/logger"
	"github.com/dmitrymomot/friendlyid/pkg/store"
)

func newTestPostgres(t *testing.T) *store.Postgres {
	t.Helper()

	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL not set; skipping integration test")
	}

	ctx := context.Background()
	pool, err := db.Connect(ctx, db.Config{ConnectionString: dsn, RetryAttempts: 1})
	require.NoError(t, err)
	t.Cleanup(pool.Close)

	require.NoError(t, store.Migrate(ctx, pool, "friendlyid_test_migrations", logger.NewNope()))

	t.Cleanup(func() {
		_, _ = pool.Exec(ctx, "DELETE FROM friendly_slugs WHERE record_type LIKE 'TestPostgres%'")
		_, _ = pool.Exec(ctx, "DELETE FROM friendly_slug_history WHERE record_type LIKE 'TestPostgres%'")
	})

	return store.NewPostgres(pool)
}

func TestPostgres(t *testing.T) {
	runSuite(t, func(t *testing.T) backend {
		return newTestPostgres(t)
	})
}

func TestPostgres_JoinsCallerTransaction(t *testing.T) {
	s := newTestPostgres(t)

	dsn := os.Getenv("TEST_DATABASE_URL")
	ctx := context.Background()
	pool, err := db.Connect(ctx, db.Config{ConnectionString: dsn, RetryAttempts: 1})
	require.NoError(t, err)
	t.Cleanup(pool.Close)

	typ := t.Name()
	_, err = s.Claim(ctx, store.Claim{RecordType: typ, RecordID: 1, Locale: "en", Slug: "taken"})
	require.NoError(t, err)

	err = db.WithTx(ctx, pool, func(tx pgx.Tx) error {
		txCtx := db.ContextWithTx(ctx, tx)

		out, err := s.Claim(txCtx, store.Claim{RecordType: typ, RecordID: 2, Locale: "en", Slug: "taken"})
		require.NoError(t, err)
		require.Equal(t, store.OutcomeTaken, out)

		// the outer transaction is still usable after a lost claim
		out, err = s.Claim(txCtx, store.Claim{RecordType: typ, RecordID: 2, Locale: "en", Slug: "taken-2"})
		require.NoError(t, err)
		require.Equal(t, store.OutcomeAssigned, out)
		return nil
	})
	require.NoError(t, err)

	id, err := s.FindLive(ctx, typ, "en", "taken-2")
	require.NoError(t, err)
	require.EqualValues(t, 2, id)
}

func TestPostgres_DeleteRollsBackWithCallerTransaction(t *testing.T) {
	s := newTestPostgres(t)

	dsn := os.Getenv("TEST_DATABASE_URL")
	ctx := context.Background()
	pool, err := db.Connect(ctx, db.Config{ConnectionString: dsn, RetryAttempts: 1})
	require.NoError(t, err)
	t.Cleanup(pool.Close)

	typ := t.Name()
	_, err = s.Claim(ctx, store.Claim{RecordType: typ, RecordID: 1, Locale: "en", Slug: "kept"})
	require.NoError(t, err)

	errAbort := errors.New("abort")
	err = db.WithTx(ctx, pool, func(tx pgx.Tx) error {
		txCtx := db.ContextWithTx(ctx, tx)
		require.NoError(t, s.Delete(txCtx, typ, 1))

		_, err := s.FindLive(txCtx, typ, "en", "kept")
		require.ErrorIs(t, err, store.ErrNotFound)
		return errAbort
	})
	require.ErrorIs(t, err, errAbort)

	id, err := s.FindLive(ctx, typ, "en", "kept")
	require.NoError(t, err)
	require.EqualValues(t, 1, id)

	h, err := s.History(ctx, typ, 1)
	require.NoError(t, err)
	require.Len(t, h, 1)
}
