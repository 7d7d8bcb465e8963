package cliconfig

import (
	"errors"
	"io/fs"
	"os"

	"github.com/joho/godotenv"
)

// EnvPrefix prefixes every environment variable read by budgetplanner.
const EnvPrefix = "BUDGETPLANNER_"

// ApplyEnvConfig applies BUDGETPLANNER_* environment variables to cfg.
// Values override the file config but never a flag set on the command line.
func ApplyEnvConfig(cfg *Config, changed map[string]bool) error {
	s := newConfigSetter(changed)

	if err := s.setIntFromString("year", os.Getenv(EnvPrefix+"YEAR"), &cfg.Year); err != nil {
		return err
	}
	s.setString("format", os.Getenv(EnvPrefix+"FORMAT"), &cfg.Format)
	s.setString("output", os.Getenv(EnvPrefix+"OUTPUT"), &cfg.Output)
	s.setString("log-level", os.Getenv(EnvPrefix+"LOG_LEVEL"), &cfg.LogLevel)
	s.setString("budget", os.Getenv(EnvPrefix+"BUDGET"), &cfg.Budget.Default)

	if v := os.Getenv(EnvPrefix + "COLOR"); v != "" && !changed["no-color"] {
		cfg.Color = v == "true" || v == "1"
	}
	s.setBoolFromString("watch", os.Getenv(EnvPrefix+"WATCH"), &cfg.Watch)

	if err := s.setDuration("debounce", os.Getenv(EnvPrefix+"DEBOUNCE_DELAY"), &cfg.DebounceDelay); err != nil {
		return err
	}
	return nil
}

// LoadDotEnv loads variables from a .env file into the process environment
// without overriding variables that are already set. A missing file is not
// an error.
func LoadDotEnv(path string) error {
	if path == "" {
		return nil
	}
	if err := godotenv.Load(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return err
	}
	return nil
}
