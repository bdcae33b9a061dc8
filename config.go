package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"

	"okinoko_treasury/sdk"
)

// Config is read from the environment once at startup.
type Config struct {
	Addr string `env:"TREASURY_ADDR" envDefault:":8080"`
	// DBPath selects the SQLite file. Empty keeps state in memory only.
	DBPath string `env:"TREASURY_DB_PATH"`
	// Currencies is the accepted currency list handed to the factory.
	Currencies      []string      `env:"TREASURY_CURRENCIES" envSeparator:"," envDefault:"native"`
	GinMode         string        `env:"GIN_MODE" envDefault:"release"`
	ShutdownTimeout time.Duration `env:"TREASURY_SHUTDOWN_TIMEOUT" envDefault:"5s"`
}

// LoadConfig parses the environment into a Config.
func LoadConfig() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}
	return cfg, nil
}

// Assets trims the configured currency list.
func (c Config) Assets() []sdk.Asset {
	out := make([]sdk.Asset, 0, len(c.Currencies))
	for _, cur := range c.Currencies {
		if cur = strings.TrimSpace(cur); cur != "" {
			out = append(out, sdk.Asset(cur))
		}
	}
	return out
}
