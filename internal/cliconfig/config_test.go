package cliconfig

import (
	"strings"
	"testing"
	"time"

	"github.com/bft-labs/budgetplanner/pkg/budget"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.Format != "text" {
		t.Errorf("Format = %v, want text", cfg.Format)
	}
	if !cfg.Color {
		t.Error("Color = false, want true")
	}
	if cfg.LogLevel != "info" {
		t.Errorf("LogLevel = %v, want info", cfg.LogLevel)
	}
	if cfg.DebounceDelay != 200*time.Millisecond {
		t.Errorf("DebounceDelay = %v, want 200ms", cfg.DebounceDelay)
	}
	if cfg.Year != 0 {
		t.Errorf("Year = %v, want 0", cfg.Year)
	}
}

func TestConfig_Validate(t *testing.T) {
	valid := func() Config {
		cfg := DefaultConfig()
		cfg.Year = 2024
		return cfg
	}

	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{
			name:   "valid minimal config",
			mutate: func(c *Config) {},
		},
		{
			name:    "missing year",
			mutate:  func(c *Config) { c.Year = 0 },
			wantErr: "year is required",
		},
		{
			name:    "year too large",
			mutate:  func(c *Config) { c.Year = 10000 },
			wantErr: "out of range",
		},
		{
			name:    "negative year",
			mutate:  func(c *Config) { c.Year = -5 },
			wantErr: "out of range",
		},
		{
			name:   "empty format defaults to text",
			mutate: func(c *Config) { c.Format = "" },
		},
		{
			name:    "unknown format",
			mutate:  func(c *Config) { c.Format = "pdf" },
			wantErr: "unknown format",
		},
		{
			name:    "bad log level",
			mutate:  func(c *Config) { c.LogLevel = "chatty" },
			wantErr: "log level",
		},
		{
			name:    "non-positive debounce",
			mutate:  func(c *Config) { c.DebounceDelay = 0 },
			wantErr: "debounce delay must be positive",
		},
		{
			name:    "bad default budget",
			mutate:  func(c *Config) { c.Budget.Default = "lots" },
			wantErr: "budget default",
		},
		{
			name:    "bad budget month",
			mutate:  func(c *Config) { c.Budget.Months = map[string]string{"smarch": "10"} },
			wantErr: "budget month",
		},
		{
			name: "valid budget",
			mutate: func(c *Config) {
				c.Budget.Default = "1500"
				c.Budget.Months = map[string]string{"december": "2500,50", "3": "0"}
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid()
			tt.mutate(&cfg)

			err := cfg.Validate()
			if tt.wantErr == "" {
				if err != nil {
					t.Fatalf("Validate() unexpected error: %v", err)
				}
				if cfg.Format == "" {
					t.Error("Format left empty after Validate()")
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("Validate() error = %v, want containing %q", err, tt.wantErr)
			}
		})
	}
}

func TestBudgetConfig_Parse(t *testing.T) {
	bc := BudgetConfig{
		Default: "1000",
		Months:  map[string]string{"Dec": "2000.50", "july": "0"},
	}

	b, err := bc.Parse()
	if err != nil {
		t.Fatalf("Parse() error = %v", err)
	}
	if b.Default != budget.Cents(100000) {
		t.Errorf("Default = %v, want 1000.00", b.Default)
	}
	if got := b.For(time.December); got != budget.Cents(200050) {
		t.Errorf("December = %v, want 2000.50", got)
	}
	if got := b.For(time.July); got != 0 {
		t.Errorf("July = %v, want 0", got)
	}
	if got := b.For(time.March); got != budget.Cents(100000) {
		t.Errorf("March = %v, want default", got)
	}
	if !bc.IsSet() {
		t.Error("IsSet() = false, want true")
	}
	if (BudgetConfig{}).IsSet() {
		t.Error("empty BudgetConfig reports IsSet")
	}
}

func TestBudgetConfig_ParseDuplicateMonth(t *testing.T) {
	bc := BudgetConfig{Months: map[string]string{"december": "1", "12": "2"}}

	if _, err := bc.Parse(); err == nil || !strings.Contains(err.Error(), "more than once") {
		t.Errorf("Parse() error = %v, want duplicate month error", err)
	}
}
