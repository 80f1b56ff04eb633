// Package store persists current slugs and the append-only slug history.
//
// Two backends share one contract: [Memory] for tests and single-process use,
// and [Postgres] for production. Both enforce that (record type, locale, slug)
// is unique across live slugs and across history, so a slug once assigned to
// a record in a locale is reserved for that record forever.
//
// # Claims
//
// [Claim] is the only write path. It checks the candidate against live slugs
// and history and, when free, makes it current and appends a history entry.
// The result is an [Outcome]:
//
//   - [OutcomeAssigned]: new slug, history entry appended
//   - [OutcomeReclaimed]: the record's own historical slug made current again
//   - [OutcomeUnchanged]: already the record's current slug
//   - [OutcomeTaken]: held by another record; try the next candidate
//
// A concurrent writer winning the race is detected by the Postgres unique
// constraints and reported as [OutcomeTaken], never as an error.
//
// # Schema
//
// [Migrate] applies the embedded goose migrations:
//
//	pool, _ := db.Connect(ctx, cfg)
//	if err := store.Migrate(ctx, pool, cfg.MigrationsTable, log); err != nil {
//		return err
//	}
//	s := store.NewPostgres(pool)
package store
