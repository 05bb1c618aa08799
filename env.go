package greeting

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Env holds the environment overrides for the command-line defaults. Flags
// given explicitly still win.
type Env struct {
	Config        string `env:"GREETING_CONFIG"`
	Debug         bool   `env:"GREETING_DEBUG"`
	Seed          uint64 `env:"GREETING_SEED"`
	ScreenshotDir string `env:"GREETING_SCREENSHOTS" envDefault:"screenshots"`
}

// ParseEnv reads Env from the process environment.
func ParseEnv() (Env, error) {
	var e Env
	if err := env.Parse(&e); err != nil {
		return Env{}, fmt.Errorf("parse env: %w", err)
	}
	return e, nil
}
