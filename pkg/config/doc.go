// Package config loads typed configuration from environment variables.
//
// Parsing is done by caarlos0/env; a .env file is read once via godotenv.
// Every config struct in this module (db.Config, redis.Config,
// locale.Config, friendlyid.Config, logger.Config) is tagged for it:
//
//	type AppConfig struct {
//	    DB       db.Config
//	    Locales  locale.Config
//	    Slugs    friendlyid.Config
//	}
//
//	var cfg AppConfig
//	config.MustLoad(&cfg)
//
// Each type is parsed once per process and cached, so libraries can call
// Load for the same type without re-reading the environment.
package config
