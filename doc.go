// Package friendlyid gives records locale-aware, human-readable URL slugs
// and resolves them back to records.
//
// A slug is derived per locale from source text, is unique per record type
// and locale, and is kept forever in a history ledger so old links keep
// resolving after a rename. Lookups accept a live slug, a historical slug
// or the numeric id.
//
// # Quick Start
//
//	pool, err := db.Connect(ctx, dbCfg)
//	if err := store.Migrate(ctx, pool, "", log); err != nil {
//	    return err
//	}
//
//	eng := friendlyid.New(store.NewPostgres(pool),
//	    friendlyid.WithLocales(resolver),
//	    friendlyid.WithLogger(log),
//	)
//
//	post := &friendlyid.Record{Type: "post", ID: 7}
//	a, err := eng.Assign(ctx, post, friendlyid.StaticSource("Foo Title"), "en")
//	// a.Slug == "foo-title"
//
//	m, err := eng.Find(ctx, "post", "foo-title", "en")
//	// m.ID == 7
//
// # Sources
//
// A [StaticSource] is one untranslated value; assigning it in a locale
// affects only that locale. A [LocalizedSource] holds a value per locale;
// [Engine.AssignAll] derives a slug for each of them.
//
// # Locales
//
// Writes are locale-exact: Assign only ever touches the locale it is given.
// Reads follow the read chain of the locale package: the requested locale,
// or the default when none is given, then any configured fallbacks.
// Without fallbacks, [Engine.ToParam] returns the numeric id for a locale
// that has no slug rather than another locale's slug.
//
// # Conflicts
//
// When a slug is taken, live or in history, the next candidate is tried:
// "title", "title-2", "title-3", and so on, up to [WithMaxAttempts].
// Stores report a lost race as store.OutcomeTaken, never as an error.
//
// # Transactions
//
// store.Postgres joins a transaction carried by the context (see
// db.ContextWithTx), so the slug change commits or rolls back with the
// host's record. The resolution cache is bypassed inside a transaction.
//
// # HTTP
//
// Package slugroute resolves URL tokens in chi routes and redirects stale
// slugs to the canonical one with 301.
package friendlyid
