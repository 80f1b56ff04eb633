package config

import (
	"errors"
	"reflect"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// ErrParsingConfig is returned when environment variables cannot be parsed into the target struct.
var ErrParsingConfig = errors.New("config: failed to parse environment")

var (
	dotenvOnce sync.Once
	mu         sync.Mutex
	loaded     = make(map[reflect.Type]any)
)

// Load fills dst from the environment. A .env file in the working directory
// is loaded once, without overriding variables already set.
// Each type T is parsed once; later calls copy the cached value.
func Load[T any](dst *T) error {
	dotenvOnce.Do(func() {
		_ = godotenv.Load()
	})

	typ := reflect.TypeFor[T]()

	mu.Lock()
	defer mu.Unlock()

	if cached, ok := loaded[typ]; ok {
		*dst = cached.(T)
		return nil
	}

	var cfg T
	if err := env.Parse(&cfg); err != nil {
		return errors.Join(ErrParsingConfig, err)
	}

	loaded[typ] = cfg
	*dst = cfg
	return nil
}

// MustLoad is like Load but panics on failure. Meant for program startup.
func MustLoad[T any](dst *T) {
	if err := Load(dst); err != nil {
		panic(err)
	}
}
