package slugroute

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/dmitrymomot/friendlyid/pkg/locale"
)

// Locale picks the request locale and stores it with locale.WithLocale.
//
// Sources, first match wins: the chi URL parameter, the query parameter,
// the cookie, then the Accept-Language header. Locales from the first three
// must be supported by r; Accept-Language always yields a supported locale,
// the default when nothing matches.
func Locale(r *locale.Resolver, opts ...Option) func(http.Handler) http.Handler {
	o := newOptions(opts)

	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
			l := requestLocale(req, r, o)
			if p := probeFrom(req.Context()); p != nil {
				p.locale = l
			}
			next.ServeHTTP(w, req.WithContext(locale.WithLocale(req.Context(), l)))
		})
	}
}

func requestLocale(req *http.Request, r *locale.Resolver, o *options) string {
	candidates := make([]string, 0, 3)
	if o.localeParam != "" {
		candidates = append(candidates, chi.URLParam(req, o.localeParam))
	}
	if o.localeQuery != "" {
		candidates = append(candidates, req.URL.Query().Get(o.localeQuery))
	}
	if o.localeCookie != "" {
		if c, err := req.Cookie(o.localeCookie); err == nil {
			candidates = append(candidates, c.Value)
		}
	}

	for _, c := range candidates {
		if c == "" {
			continue
		}
		if l, err := r.WriteLocale(c); err == nil {
			return l
		}
	}
	return r.Match(req.Header.Get("Accept-Language"))
}

// RequestLocale returns the locale stored by Locale, or def.
func RequestLocale(req *http.Request, def string) string {
	if l, ok := locale.FromContext(req.Context()); ok {
		return l
	}
	return def
}
