package slugroute

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	chimiddleware "github.com/go-chi/chi/v5/middleware"
)

// RequestLogger logs each request with its status, duration, chi request id,
// request locale and resolved record, if any.
//
// Wire it after chimiddleware.RequestID; the locale and record are read
// from the innermost request context, so Locale and Resolve may run after it.
func RequestLogger(log *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			ww := chimiddleware.NewWrapResponseWriter(w, r.ProtoMajor)
			probe := &requestProbe{}

			next.ServeHTTP(ww, r.WithContext(withProbe(r.Context(), probe)))

			attrs := []any{
				"method", r.Method,
				"path", r.URL.Path,
				"status", ww.Status(),
				"duration_ms", time.Since(start).Milliseconds(),
				"request_id", chimiddleware.GetReqID(r.Context()),
			}
			if probe.locale != "" {
				attrs = append(attrs, "locale", probe.locale)
			}
			if probe.recordID != 0 {
				attrs = append(attrs, "record_id", probe.recordID)
			}
			log.InfoContext(r.Context(), "request", attrs...)
		})
	}
}

// requestProbe lets inner middlewares report what they resolved back to the logger.
type requestProbe struct {
	locale   string
	recordID int64
}

type probeKey struct{}

func withProbe(ctx context.Context, p *requestProbe) context.Context {
	return context.WithValue(ctx, probeKey{}, p)
}

func probeFrom(ctx context.Context) *requestProbe {
	p, _ := ctx.Value(probeKey{}).(*requestProbe)
	return p
}
