package slugroute

import (
	"log/slog"
	"net/http"

	"github.com/dmitrymomot/friendlyid/pkg/logger"
)

// Option configures the middlewares.
type Option func(*options)

type options struct {
	logger        *slog.Logger
	notFound      http.Handler
	errorHandler  func(w http.ResponseWriter, r *http.Request, err error)
	localeParam   string
	localeQuery   string
	localeCookie  string
	redirectCode  int
	skipRedirects bool
}

func defaultOptions() *options {
	return &options{
		logger:       logger.NewNope(),
		notFound:     http.NotFoundHandler(),
		localeParam:  "locale",
		localeQuery:  "locale",
		redirectCode: http.StatusMovedPermanently,
	}
}

func newOptions(opts []Option) *options {
	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}
	if o.errorHandler == nil {
		log := o.logger
		o.errorHandler = func(w http.ResponseWriter, r *http.Request, err error) {
			log.ErrorContext(r.Context(), "failed to resolve friendly id", logger.Error(err))
			http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
		}
	}
	return o
}

// WithLogger sets the logger used for resolution failures.
func WithLogger(l *slog.Logger) Option {
	return func(o *options) {
		if l != nil {
			o.logger = l
		}
	}
}

// WithNotFound sets the handler for tokens that resolve to nothing.
// Default: http.NotFoundHandler.
func WithNotFound(h http.Handler) Option {
	return func(o *options) {
		if h != nil {
			o.notFound = h
		}
	}
}

// WithErrorHandler sets the handler for store failures.
// Default: logs and responds 500.
func WithErrorHandler(fn func(w http.ResponseWriter, r *http.Request, err error)) Option {
	return func(o *options) {
		o.errorHandler = fn
	}
}

// WithLocaleParam sets the chi URL parameter holding the locale.
// Default: "locale".
func WithLocaleParam(name string) Option {
	return func(o *options) {
		o.localeParam = name
	}
}

// WithLocaleQuery sets the query parameter holding the locale. Empty disables it.
// Default: "locale".
func WithLocaleQuery(name string) Option {
	return func(o *options) {
		o.localeQuery = name
	}
}

// WithLocaleCookie reads the locale from the named cookie. Default: disabled.
func WithLocaleCookie(name string) Option {
	return func(o *options) {
		o.localeCookie = name
	}
}

// WithRedirectCode sets the status used to redirect stale tokens.
// Default: 301.
func WithRedirectCode(code int) Option {
	return func(o *options) {
		if code >= 300 && code < 400 {
			o.redirectCode = code
		}
	}
}

// WithoutRedirect serves stale tokens directly instead of redirecting.
func WithoutRedirect() Option {
	return func(o *options) {
		o.skipRedirects = true
	}
}
