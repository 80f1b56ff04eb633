package main

import (
	"time"

	"github.com/dmitrymomot/friendlyid"
	"github.com/dmitrymomot/friendlyid/pkg/db"
	"github.com/dmitrymomot/friendlyid/pkg/locale"
	"github.com/dmitrymomot/friendlyid/pkg/logger"
)

// Config is the demo service configuration, read from the environment
// (and a .env file when present).
type Config struct {
	Addr            string        `env:"ADDR" envDefault:":8080"`
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"30s"`

	// CacheBackend is "memory" or "redis". The redis backend reads REDIS_*.
	CacheBackend string        `env:"CACHE_BACKEND" envDefault:"memory"`
	CacheTTL     time.Duration `env:"CACHE_TTL" envDefault:"1h"`

	DB         db.Config
	Log        logger.Config
	Locales    locale.Config
	FriendlyID friendlyid.Config
}
