package store

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"log/slog"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/dmitrymomot/friendlyid/pkg/db"
)

//go:embed migrations/*.sql
var migrations embed.FS

// Migrate creates or upgrades the slug tables.
// table names the goose version table; empty uses goose's default.
func Migrate(ctx context.Context, pool *pgxpool.Pool, table string, log *slog.Logger) error {
	return db.Migrate(ctx, pool, migrations, "migrations", table, log)
}

// Postgres stores live slugs in friendly_slugs and the ledger in
// friendly_slug_history. Unique constraints on (record_type, locale, slug) in
// both tables arbitrate concurrent claims.
//
// When ctx carries a transaction (see db.ContextWithTx) every method runs
// inside it; Claim then uses a savepoint so a lost race leaves the outer
// transaction usable.
type Postgres struct {
	pool *pgxpool.Pool
}

// NewPostgres creates a store backed by pool. Run Migrate before first use.
func NewPostgres(pool *pgxpool.Pool) *Postgres {
	return &Postgres{pool: pool}
}

func (p *Postgres) conn(ctx context.Context) db.Querier {
	return db.Conn(ctx, p.pool)
}

// Current returns the current slug of a record in locale, or "" if it has none.
func (p *Postgres) Current(ctx context.Context, recordType string, id int64, locale string) (string, error) {
	const q = `
		SELECT slug FROM friendly_slugs
		WHERE record_type = @record_type AND record_id = @record_id AND locale = @locale`

	var slug string
	err := p.conn(ctx).QueryRow(ctx, q, pgx.NamedArgs{
		"record_type": recordType,
		"record_id":   id,
		"locale":      locale,
	}).Scan(&slug)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return "", nil
		}
		return "", fmt.Errorf("store.Postgres.Current: %w", err)
	}
	return slug, nil
}

// Claim runs the check-and-reserve protocol in one transaction. A unique
// violation raised by a concurrent writer is reported as OutcomeTaken.
func (p *Postgres) Claim(ctx context.Context, c Claim) (Outcome, error) {
	var outcome Outcome
	err := db.WithTx(ctx, p.pool, func(tx pgx.Tx) error {
		var err error
		outcome, err = claim(ctx, tx, c)
		return err
	})
	if err != nil {
		if db.IsUniqueViolation(err) {
			return OutcomeTaken, nil
		}
		return 0, fmt.Errorf("store.Postgres.Claim: %w", err)
	}
	return outcome, nil
}

func claim(ctx context.Context, tx pgx.Tx, c Claim) (Outcome, error) {
	args := pgx.NamedArgs{
		"record_type": c.RecordType,
		"record_id":   c.RecordID,
		"locale":      c.Locale,
		"slug":        c.Slug,
	}

	var current string
	err := tx.QueryRow(ctx, `
		SELECT slug FROM friendly_slugs
		WHERE record_type = @record_type AND record_id = @record_id AND locale = @locale
		FOR UPDATE`, args).Scan(&current)
	switch {
	case err == nil:
		if current == c.Slug {
			return OutcomeUnchanged, nil
		}
	case !errors.Is(err, pgx.ErrNoRows):
		return 0, fmt.Errorf("read current: %w", err)
	}

	var historyOwner int64
	inHistory := true
	err = tx.QueryRow(ctx, `
		SELECT record_id FROM friendly_slug_history
		WHERE record_type = @record_type AND locale = @locale AND slug = @slug`, args).Scan(&historyOwner)
	switch {
	case errors.Is(err, pgx.ErrNoRows):
		inHistory = false
	case err != nil:
		return 0, fmt.Errorf("read history: %w", err)
	case historyOwner != c.RecordID:
		return OutcomeTaken, nil
	}

	var liveOwner int64
	err = tx.QueryRow(ctx, `
		SELECT record_id FROM friendly_slugs
		WHERE record_type = @record_type AND locale = @locale AND slug = @slug`, args).Scan(&liveOwner)
	switch {
	case errors.Is(err, pgx.ErrNoRows):
	case err != nil:
		return 0, fmt.Errorf("read live: %w", err)
	case liveOwner != c.RecordID:
		return OutcomeTaken, nil
	}

	if _, err := tx.Exec(ctx, `
		INSERT INTO friendly_slugs (record_type, record_id, locale, slug)
		VALUES (@record_type, @record_id, @locale, @slug)
		ON CONFLICT (record_type, record_id, locale)
		DO UPDATE SET slug = EXCLUDED.slug, updated_at = now()`, args); err != nil {
		return 0, fmt.Errorf("write live: %w", err)
	}

	if inHistory {
		return OutcomeReclaimed, nil
	}

	if _, err := tx.Exec(ctx, `
		INSERT INTO friendly_slug_history (record_type, record_id, slug, locale)
		VALUES (@record_type, @record_id, @slug, @locale)`, args); err != nil {
		return 0, fmt.Errorf("append history: %w", err)
	}
	return OutcomeAssigned, nil
}

// FindLive returns the record whose current slug in locale is slug.
func (p *Postgres) FindLive(ctx context.Context, recordType, locale, slug string) (int64, error) {
	const q = `
		SELECT record_id FROM friendly_slugs
		WHERE record_type = @record_type AND locale = @locale AND slug = @slug`

	return p.findOne(ctx, "FindLive", q, pgx.NamedArgs{
		"record_type": recordType,
		"locale":      locale,
		"slug":        slug,
	})
}

// FindHistory returns the record that ever held slug in locale.
func (p *Postgres) FindHistory(ctx context.Context, recordType, locale, slug string) (int64, error) {
	const q = `
		SELECT record_id FROM friendly_slug_history
		WHERE record_type = @record_type AND locale = @locale AND slug = @slug`

	return p.findOne(ctx, "FindHistory", q, pgx.NamedArgs{
		"record_type": recordType,
		"locale":      locale,
		"slug":        slug,
	})
}

// FindAnyLocale matches slug in every locale: live slugs first, then history,
// each ordered by locale.
func (p *Postgres) FindAnyLocale(ctx context.Context, recordType, slug string) (int64, error) {
	const q = `
		SELECT record_id FROM (
			SELECT record_id, locale, 0 AS rank FROM friendly_slugs
			WHERE record_type = @record_type AND slug = @slug
			UNION ALL
			SELECT record_id, locale, 1 AS rank FROM friendly_slug_history
			WHERE record_type = @record_type AND slug = @slug
		) matches
		ORDER BY rank, locale
		LIMIT 1`

	return p.findOne(ctx, "FindAnyLocale", q, pgx.NamedArgs{
		"record_type": recordType,
		"slug":        slug,
	})
}

func (p *Postgres) findOne(ctx context.Context, op, q string, args pgx.NamedArgs) (int64, error) {
	var id int64
	if err := p.conn(ctx).QueryRow(ctx, q, args).Scan(&id); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, ErrNotFound
		}
		return 0, fmt.Errorf("store.Postgres.%s: %w", op, err)
	}
	return id, nil
}

// History returns the ledger entries of a record, oldest first.
func (p *Postgres) History(ctx context.Context, recordType string, id int64) ([]HistoryEntry, error) {
	const q = `
		SELECT id, record_type, record_id, slug, locale, created_at
		FROM friendly_slug_history
		WHERE record_type = @record_type AND record_id = @record_id
		ORDER BY created_at, id`

	rows, err := p.conn(ctx).Query(ctx, q, pgx.NamedArgs{
		"record_type": recordType,
		"record_id":   id,
	})
	if err != nil {
		return nil, fmt.Errorf("store.Postgres.History: %w", err)
	}
	defer rows.Close()

	var out []HistoryEntry
	for rows.Next() {
		var e HistoryEntry
		if err := rows.Scan(&e.ID, &e.RecordType, &e.RecordID, &e.Slug, &e.Locale, &e.CreatedAt); err != nil {
			return nil, fmt.Errorf("store.Postgres.History: scan: %w", err)
		}
		out = append(out, e)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("store.Postgres.History: rows: %w", err)
	}
	return out, nil
}

// Delete removes every live slug and history entry of a record.
func (p *Postgres) Delete(ctx context.Context, recordType string, id int64) error {
	args := pgx.NamedArgs{"record_type": recordType, "record_id": id}
	err := db.WithTx(ctx, p.pool, func(tx pgx.Tx) error {
		if _, err := tx.Exec(ctx, `
			DELETE FROM friendly_slugs
			WHERE record_type = @record_type AND record_id = @record_id`, args); err != nil {
			return err
		}
		_, err := tx.Exec(ctx, `
			DELETE FROM friendly_slug_history
			WHERE record_type = @record_type AND record_id = @record_id`, args)
		return err
	})
	if err != nil {
		return fmt.Errorf("store.Postgres.Delete: %w", err)
	}
	return nil
}
