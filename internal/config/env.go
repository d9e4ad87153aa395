package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// parseEnv overlays Config with GOPHSETTINGS_* environment variables.
// Unset variables leave the current value untouched. Panics on malformed
// values, like the JSON loader.
func parseEnv(cfg *Config) {
	if err := env.Parse(cfg); err != nil {
		panic(fmt.Errorf("parse env: %w", err))
	}
}
