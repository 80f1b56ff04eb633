// Package logger builds the structured loggers used across friendlyid.
//
// It extends log/slog with context extractors and optional Sentry fan-out.
// The engine only needs a *slog.Logger; this package is how applications and
// the HTTP edge build one with consistent attributes.
//
//	log := logger.NewWithConfig(logger.Config{Level: "debug", Format: "text"},
//	    logger.LocaleExtractor(),
//	)
//	eng := friendlyid.New(st, friendlyid.WithLogger(log))
//
// # Context Extractors
//
// A [ContextExtractor] runs on every log call and may add one attribute taken
// from the context. [LocaleExtractor] adds the request locale placed in context
// by slugroute.Locale; [ValueExtractor] logs arbitrary values stored with
// [WithValue].
//
// # Attributes
//
// [Error], [RecordType], [RecordID], [Locale], [Slug], [Attempt] and [Record]
// keep attribute keys uniform. Zero inputs produce empty attributes that slog
// drops.
//
// # Sentry
//
// [NewWithSentry] sends errors to Sentry as issues and warnings as logs in
// addition to stdout. An empty SENTRY_DSN falls back to stdout only.
package logger
