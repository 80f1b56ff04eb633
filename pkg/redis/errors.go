package redis

import "errors"

var (
	ErrEmptyConnectionURL = errors.New("redis: empty connection URL")
	ErrFailedToParseURL   = errors.New("redis: failed to parse connection URL")
	// ErrUnsupportedScheme is joined with ErrFailedToParseURL for URLs that
	// are not redis:// or rediss://.
	ErrUnsupportedScheme = errors.New("redis: unsupported URL scheme")
	ErrConnectionFailed  = errors.New("redis: failed to establish connection")
	ErrHealthcheckFailed = errors.New("redis: healthcheck failed")
)
