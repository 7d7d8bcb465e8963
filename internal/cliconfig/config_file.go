package cliconfig

import (
	"os"
	"path/filepath"

	toml "github.com/pelletier/go-toml/v2"
)

// FileConfig mirrors Config but uses strings for durations to make TOML friendly.
type FileConfig struct {
	Year          int        `toml:"year"`
	Format        string     `toml:"format"`
	Output        string     `toml:"output"`
	Color         *bool      `toml:"color"`
	LogLevel      string     `toml:"log_level"`
	Watch         *bool      `toml:"watch"`
	DebounceDelay string     `toml:"debounce_delay"`
	Budget        FileBudget `toml:"budget"`
}

// FileBudget is the [budget] table.
type FileBudget struct {
	Default string            `toml:"default"`
	Months  map[string]string `toml:"months"`
}

// LoadFileConfig reads and parses a TOML config file from the given path.
func LoadFileConfig(path string) (FileConfig, error) {
	var fc FileConfig
	b, err := os.ReadFile(path)
	if err != nil {
		return fc, err
	}
	if err := toml.Unmarshal(b, &fc); err != nil {
		return fc, err
	}
	return fc, nil
}

// DefaultConfigPath returns ~/.budgetplanner/config.toml, or "" when the
// home directory is unknown.
func DefaultConfigPath() string {
	if h, err := os.UserHomeDir(); err == nil {
		return filepath.Join(h, ".budgetplanner", "config.toml")
	}
	return ""
}

// ApplyFileConfig applies configuration from a file to the Config struct.
// It respects flags that have been explicitly set (changed map).
func ApplyFileConfig(cfg *Config, fc FileConfig, changed map[string]bool) error {
	s := newConfigSetter(changed)

	s.setInt("year", fc.Year, &cfg.Year)
	s.setString("format", fc.Format, &cfg.Format)
	s.setString("output", fc.Output, &cfg.Output)
	s.setString("log-level", fc.LogLevel, &cfg.LogLevel)
	s.setString("budget", fc.Budget.Default, &cfg.Budget.Default)

	if fc.Color != nil && !changed["no-color"] {
		cfg.Color = *fc.Color
	}
	s.setBool("watch", fc.Watch, &cfg.Watch)

	if err := s.setDuration("debounce", fc.DebounceDelay, &cfg.DebounceDelay); err != nil {
		return err
	}

	// Month overrides have no flag; the file is their only source.
	if len(fc.Budget.Months) > 0 {
		cfg.Budget.Months = make(map[string]string, len(fc.Budget.Months))
		for k, v := range fc.Budget.Months {
			cfg.Budget.Months[k] = v
		}
	}
	return nil
}

// FileExists checks if a file exists at the given path.
func FileExists(p string) bool {
	_, err := os.Stat(p)
	return err == nil
}
