package config

import (
	"time"

	"github.com/kelseyhightower/envconfig"
)

// Config is loaded from STOREFRONT_* environment variables.
type Config struct {
	AppEnv   string `split_words:"true" default:"dev"`
	LogLevel string `split_words:"true" default:"info"`
	HTTPPort int    `envconfig:"HTTP_PORT" default:"8080"`

	// Path to a rendered listing page to build the catalog from. Empty
	// means the built-in static listing set.
	CatalogPage string `split_words:"true"`

	NotifyDismissAfter time.Duration `split_words:"true" default:"2s"`
	NotifyRemoveAfter  time.Duration `split_words:"true" default:"300ms"`
}

func Load() (Config, error) {
	var c Config
	if err := envconfig.Process("storefront", &c); err != nil {
		return Config{}, err
	}
	return c, nil
}
