package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Settings holds the process-level overrides read from the environment.
type Settings struct {
	ConfigPath string `env:"COUNTDOWN_CONFIG"`
	LogLevel   string `env:"COUNTDOWN_LOG_LEVEL" envDefault:"info"`
	ReportFont string `env:"COUNTDOWN_REPORT_FONT"`
}

// LoadSettings parses Settings from the environment.
func LoadSettings() (Settings, error) {
	var s Settings
	if err := env.Parse(&s); err != nil {
		return Settings{}, fmt.Errorf("parse environment: %w", err)
	}
	return s, nil
}
