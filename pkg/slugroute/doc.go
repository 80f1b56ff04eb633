// Package slugroute resolves friendly ids in chi routes.
//
// [Locale] picks the request locale from the URL, query, cookie or
// Accept-Language header. [Resolve] turns a URL parameter into a record id,
// answers 404 for unknown tokens and 301-redirects old slugs, numeric ids
// and other locales' slugs to the record's canonical URL:
//
//	r := chi.NewRouter()
//	r.Use(chimiddleware.RequestID, slugroute.RequestLogger(log))
//	r.With(
//	    slugroute.Locale(resolver),
//	    slugroute.Resolve(eng, "post", "slug"),
//	).Get("/{locale}/posts/{slug}", func(w http.ResponseWriter, r *http.Request) {
//	    id, _ := slugroute.RecordID(r.Context())
//	    ...
//	})
package slugroute
