package logger

import (
	"context"
	"log/slog"

	"github.com/dmitrymomot/friendlyid/pkg/locale"
)

// LocaleExtractor adds the request locale set by locale.WithLocale
// (slugroute.Locale does this at the HTTP edge) as "request_locale".
func LocaleExtractor() ContextExtractor {
	return func(ctx context.Context) (slog.Attr, bool) {
		l, ok := locale.FromContext(ctx)
		if !ok {
			return slog.Attr{}, false
		}
		return slog.String("request_locale", l), true
	}
}

type staticKey struct{ key string }

// WithValue stores a value to be logged under key by ValueExtractor.
func WithValue(ctx context.Context, key string, value any) context.Context {
	return context.WithValue(ctx, staticKey{key}, value)
}

// ValueExtractor logs the context value stored by WithValue under key.
//
// Example:
//
//	log := logger.New(cfg, logger.ValueExtractor("request_id"))
//	ctx = logger.WithValue(ctx, "request_id", middleware.GetReqID(ctx))
func ValueExtractor(key string) ContextExtractor {
	return func(ctx context.Context) (slog.Attr, bool) {
		v := ctx.Value(staticKey{key})
		if v == nil {
			return slog.Attr{}, false
		}
		return slog.Any(key, v), true
	}
}
