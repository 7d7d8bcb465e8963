package cliconfig

import (
	"fmt"
	"sort"
	"strconv"
	"time"

	"github.com/rs/zerolog"

	"github.com/bft-labs/budgetplanner/internal/render"
	"github.com/bft-labs/budgetplanner/pkg/budget"
	"github.com/bft-labs/budgetplanner/pkg/calendar"
)

// Year bounds accepted on the command line.
const (
	MinYear = 1
	MaxYear = 9999
)

// Config holds CLI configuration for budgetplanner.
type Config struct {
	Year   int
	Format string
	Output string

	Color    bool
	LogLevel string

	Watch         bool
	DebounceDelay time.Duration

	Budget BudgetConfig
}

// BudgetConfig holds budget amounts as written by the user.
type BudgetConfig struct {
	// Default is the amount for every month without an override.
	Default string

	// Months maps a month name or number to its amount.
	Months map[string]string
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() Config {
	return Config{
		Format:        string(render.FormatText),
		Color:         true,
		LogLevel:      zerolog.InfoLevel.String(),
		DebounceDelay: 200 * time.Millisecond,
	}
}

// Validate checks the configuration for errors.
func (c *Config) Validate() error {
	if c.Year == 0 {
		return fmt.Errorf("year is required")
	}
	if c.Year < MinYear || c.Year > MaxYear {
		return fmt.Errorf("year %d out of range [%d, %d]", c.Year, MinYear, MaxYear)
	}

	if c.Format == "" {
		c.Format = string(render.FormatText)
	}
	if _, err := render.ParseFormat(c.Format); err != nil {
		return err
	}

	if _, err := zerolog.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("log level: %w", err)
	}

	if c.DebounceDelay <= 0 {
		return fmt.Errorf("debounce delay must be positive")
	}

	if _, err := c.Budget.Parse(); err != nil {
		return err
	}
	return nil
}

// Parse converts the configured amounts into a budget.Budget.
func (b BudgetConfig) Parse() (budget.Budget, error) {
	var out budget.Budget
	if b.Default != "" {
		c, err := budget.ParseAmount(b.Default)
		if err != nil {
			return out, fmt.Errorf("budget default %q: %w", b.Default, err)
		}
		out.Default = c
	}

	if len(b.Months) == 0 {
		return out, nil
	}

	// Sorted so the first bad key reported is stable.
	keys := make([]string, 0, len(b.Months))
	for k := range b.Months {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	out.Months = make(map[time.Month]budget.Cents, len(keys))
	for _, k := range keys {
		m, err := calendar.ParseMonth(k)
		if err != nil {
			return out, fmt.Errorf("budget month %q: %w", k, err)
		}
		if _, dup := out.Months[m]; dup {
			return out, fmt.Errorf("budget month %s set more than once", m)
		}
		c, err := budget.ParseAmount(b.Months[k])
		if err != nil {
			return out, fmt.Errorf("budget %s %q: %w", m, b.Months[k], err)
		}
		out.Months[m] = c
	}
	return out, nil
}

// IsSet reports whether any budget amount was configured.
func (b BudgetConfig) IsSet() bool {
	return b.Default != "" || len(b.Months) > 0
}

// configSetter applies configuration values while respecting flag precedence.
// It only applies values if the corresponding flag hasn't been explicitly set.
type configSetter struct {
	changed map[string]bool
}

func newConfigSetter(changed map[string]bool) *configSetter {
	return &configSetter{changed: changed}
}

// setString sets a string value if not empty and flag not changed.
func (s *configSetter) setString(flag, value string, dst *string) {
	if value == "" || s.changed[flag] {
		return
	}
	*dst = value
}

// setInt sets an int value if positive and flag not changed.
func (s *configSetter) setInt(flag string, value int, dst *int) {
	if value <= 0 || s.changed[flag] {
		return
	}
	*dst = value
}

// setDuration parses and sets a duration from string if valid and flag not changed.
func (s *configSetter) setDuration(flag, value string, dst *time.Duration) error {
	if value == "" || s.changed[flag] {
		return nil
	}
	d, err := time.ParseDuration(value)
	if err != nil {
		return fmt.Errorf("parse %s: %w", flag, err)
	}
	*dst = d
	return nil
}

// setBool sets a bool value from a pointer if not nil and flag not changed.
func (s *configSetter) setBool(flag string, value *bool, dst *bool) {
	if value == nil || s.changed[flag] {
		return
	}
	*dst = *value
}

// setIntFromString parses a string to int and sets the destination if valid.
func (s *configSetter) setIntFromString(flag, value string, dst *int) error {
	if value == "" || s.changed[flag] {
		return nil
	}
	i, err := strconv.Atoi(value)
	if err != nil {
		return fmt.Errorf("parse %s: %w", flag, err)
	}
	if i <= 0 {
		return nil
	}
	*dst = i
	return nil
}

// setBoolFromString accepts "true" and "1" as true, anything else as false.
func (s *configSetter) setBoolFromString(flag, value string, dst *bool) {
	if value == "" || s.changed[flag] {
		return
	}
	*dst = value == "true" || value == "1"
}
