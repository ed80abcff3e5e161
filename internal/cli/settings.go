package cli

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Settings holds environment-supplied defaults for the CLI. Flags always win
// over the environment.
type Settings struct {
	// Format is the default report format.
	Format string `env:"SAVINGS_PLANNER_FORMAT" envDefault:"console"`
	// LogLevel controls CLI logging (zerolog level names).
	LogLevel string `env:"SAVINGS_PLANNER_LOG_LEVEL" envDefault:"warn"`
}

// LoadSettings reads Settings from the environment.
func LoadSettings() (Settings, error) {
	var s Settings
	if err := env.Parse(&s); err != nil {
		return Settings{}, fmt.Errorf("failed to parse environment: %w", err)
	}
	return s, nil
}
