package locale

import "context"

type contextKey struct{}

// WithLocale returns a copy of ctx carrying locale l.
// The engine never reads it implicitly; it exists so the HTTP edge can hand
// the negotiated locale to handlers and log extractors.
func WithLocale(ctx context.Context, l string) context.Context {
	return context.WithValue(ctx, contextKey{}, l)
}

// FromContext returns the locale stored by WithLocale.
func FromContext(ctx context.Context) (string, bool) {
	l, ok := ctx.Value(contextKey{}).(string)
	return l, ok && l != ""
}
