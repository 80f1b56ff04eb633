package slugroute

import (
	"context"
	"errors"
	"net/http"
	"net/url"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/dmitrymomot/friendlyid"
	"github.com/dmitrymomot/friendlyid/pkg/locale"
	"github.com/dmitrymomot/friendlyid/pkg/logger"
)

// Finder is the part of *friendlyid.Engine the router needs.
type Finder interface {
	Find(ctx context.Context, recordType, token, locale string) (friendlyid.Match, error)
	CanonicalParam(ctx context.Context, recordType string, id int64, locale string) (string, error)
}

type matchKey struct{}

// WithMatch returns a copy of ctx carrying m.
func WithMatch(ctx context.Context, m friendlyid.Match) context.Context {
	return context.WithValue(ctx, matchKey{}, m)
}

// MatchFromContext returns the match stored by Resolve.
func MatchFromContext(ctx context.Context) (friendlyid.Match, bool) {
	m, ok := ctx.Value(matchKey{}).(friendlyid.Match)
	return m, ok
}

// RecordID returns the id of the record resolved by Resolve.
func RecordID(ctx context.Context) (int64, bool) {
	m, ok := MatchFromContext(ctx)
	return m.ID, ok
}

// Resolve looks up the chi URL parameter param as a friendly id of
// recordType, in the locale stored by Locale (the empty locale reads the
// default). Found records are stored in the request context.
//
// A token that is not the record's canonical param (an old slug, a numeric
// id while a slug exists, or another locale's slug) is redirected to the
// same URL with the canonical param.
//
// Example:
//
//	r := chi.NewRouter()
//	r.Route("/{locale}/posts/{post}", func(r chi.Router) {
//	    r.Use(slugroute.Locale(resolver))
//	    r.Use(slugroute.Resolve(eng, "post", "post"))
//	    r.Get("/", showPost)
//	})
func Resolve(f Finder, recordType, param string, opts ...Option) func(http.Handler) http.Handler {
	o := newOptions(opts)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ctx := r.Context()
			token := chi.URLParam(r, param)
			l, _ := locale.FromContext(ctx)

			m, err := f.Find(ctx, recordType, token, l)
			if errors.Is(err, friendlyid.ErrNotFound) {
				o.notFound.ServeHTTP(w, r)
				return
			}
			if err != nil {
				o.errorHandler(w, r, err)
				return
			}

			if !o.skipRedirects {
				canonical, err := f.CanonicalParam(ctx, recordType, m.ID, l)
				if err != nil {
					o.errorHandler(w, r, err)
					return
				}
				if canonical != token {
					if target, ok := replaceSegment(r.URL, token, canonical); ok {
						o.logger.DebugContext(ctx, "redirecting to canonical slug",
							logger.RecordType(recordType), logger.RecordID(m.ID),
							logger.Slug(canonical), logger.Locale(l))
						http.Redirect(w, r, target, o.redirectCode)
						return
					}
				}
			}

			if p := probeFrom(ctx); p != nil {
				p.recordID = m.ID
			}
			next.ServeHTTP(w, r.WithContext(WithMatch(ctx, m)))
		})
	}
}

// replaceSegment swaps the last path segment equal to token for canonical.
func replaceSegment(u *url.URL, token, canonical string) (string, bool) {
	segments := strings.Split(u.EscapedPath(), "/")
	escaped := url.PathEscape(token)

	for i := len(segments) - 1; i >= 0; i-- {
		if segments[i] == escaped || segments[i] == token {
			segments[i] = url.PathEscape(canonical)
			target := strings.Join(segments, "/")
			if u.RawQuery != "" {
				target += "?" + u.RawQuery
			}
			return target, true
		}
	}
	return "", false
}
