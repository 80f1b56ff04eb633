// Package db provides the PostgreSQL plumbing used by the Postgres slug store.
//
// It wraps [github.com/jackc/pgx/v5/pgxpool] with a retrying [Connect],
// transaction helpers that can join a caller's transaction, unique-violation
// detection and goose migrations.
//
// # Configuration
//
//	DATABASE_CONN_URL           - PostgreSQL connection URL (required)
//	DATABASE_MIGRATIONS_TABLE   - goose version table (default: friendlyid_schema_migrations)
//	DATABASE_MAX_OPEN_CONNS     - Maximum open connections (default: 10)
//	DATABASE_MIN_CONNS          - Minimum idle connections (default: 2)
//	DATABASE_HEALTHCHECK_PERIOD - Health check interval (default: 1m)
//	DATABASE_MAX_CONN_IDLE_TIME - Maximum connection idle time (default: 10m)
//	DATABASE_MAX_CONN_LIFETIME  - Maximum connection lifetime (default: 30m)
//	DATABASE_RETRY_ATTEMPTS     - Connection retry attempts (default: 3)
//	DATABASE_RETRY_INTERVAL     - Base retry interval (default: 5s)
//
// # Transactions
//
// [WithTx] commits when fn succeeds and rolls back on error or panic:
//
//	err := db.WithTx(ctx, pool, func(tx pgx.Tx) error {
//		_, err := tx.Exec(ctx, "UPDATE articles SET title = $1 WHERE id = $2", title, id)
//		return err
//	})
//
// A host that already runs inside a transaction hands it over with
// [ContextWithTx]; [WithTx] then opens a savepoint and [Conn] returns the
// outer transaction, so slug bookkeeping commits or rolls back together with
// the host's own writes:
//
//	ctx = db.ContextWithTx(ctx, tx)
//	_, err := engine.Assign(ctx, article, friendlyid.StaticSource(article.Title), "en")
//
// # Unique constraints
//
// [IsUniqueViolation] recognizes SQLSTATE 23505 so callers can treat a lost
// race on a unique index as an ordinary outcome rather than a failure.
package db
