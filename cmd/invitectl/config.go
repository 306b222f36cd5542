package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/caarlos0/env/v11"
)

// Config is read from the environment.
type Config struct {
	APIURL      string `env:"EVENTPLANNER_API_URL" envDefault:"http://localhost:8080"`
	SessionFile string `env:"EVENTPLANNER_SESSION_FILE"`
	LogLevel    string `env:"EVENTPLANNER_LOG_LEVEL" envDefault:"warn"`
	LogFormat   string `env:"EVENTPLANNER_LOG_FORMAT" envDefault:"text"`
}

func loadConfig() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, fmt.Errorf("parse env: %w", err)
	}

	if cfg.SessionFile == "" {
		dir, err := os.UserConfigDir()
		if err != nil {
			return Config{}, fmt.Errorf("locate config dir: %w", err)
		}
		cfg.SessionFile = filepath.Join(dir, "eventplanner", "session.json")
	}
	return cfg, nil
}
