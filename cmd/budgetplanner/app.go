package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/rs/zerolog"

	"github.com/bft-labs/budgetplanner/internal/cliconfig"
	"github.com/bft-labs/budgetplanner/internal/render"
	"github.com/bft-labs/budgetplanner/internal/watcher"
	"github.com/bft-labs/budgetplanner/pkg/budget"
	plog "github.com/bft-labs/budgetplanner/pkg/log"
	"github.com/bft-labs/budgetplanner/pkg/planner"
)

// app renders a plan from layered configuration.
type app struct {
	// base holds defaults with command line flags applied.
	base    cliconfig.Config
	cfgFile string
	changed map[string]bool

	stdout io.Writer
	stderr io.Writer
	log    zerolog.Logger
	now    func() time.Time
}

func (a *app) run(ctx context.Context) error {
	cfg, err := a.load()
	if err != nil {
		return err
	}

	if err := a.setLogLevel(cfg.LogLevel); err != nil {
		return err
	}
	a.log.Debug().Interface("config", cfg).Str("config_file", a.cfgFile).Msg("configuration")

	if err := a.render(cfg); err != nil {
		return err
	}
	if !cfg.Watch {
		return nil
	}
	if !cliconfig.FileExists(a.cfgFile) {
		return fmt.Errorf("watch requires a config file (%s not found)", a.cfgFile)
	}
	return a.watch(ctx, cfg)
}

// load layers file, then environment, over the base config. Flags set on
// the command line are never overridden.
func (a *app) load() (cliconfig.Config, error) {
	cfg := a.base

	if a.cfgFile != "" && cliconfig.FileExists(a.cfgFile) {
		fc, err := cliconfig.LoadFileConfig(a.cfgFile)
		if err != nil {
			return cfg, fmt.Errorf("load config: %w", err)
		}
		if err := cliconfig.ApplyFileConfig(&cfg, fc, a.changed); err != nil {
			return cfg, err
		}
	}

	if err := cliconfig.ApplyEnvConfig(&cfg, a.changed); err != nil {
		return cfg, err
	}

	if err := cfg.Validate(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func (a *app) render(cfg cliconfig.Config) error {
	months, err := planner.ComputeYear(cfg.Year)
	if err != nil {
		return fmt.Errorf("compute year %d: %w", cfg.Year, err)
	}

	var b *budget.Budget
	if cfg.Budget.IsSet() {
		parsed, err := cfg.Budget.Parse()
		if err != nil {
			return err
		}
		b = &parsed
	}

	format, err := render.ParseFormat(cfg.Format)
	if err != nil {
		return err
	}
	report := render.NewReport(cfg.Year, months, b, a.now())
	opts := render.Options{Format: format, Color: cfg.Color && cfg.Output == ""}

	if cfg.Output == "" {
		if err := render.Render(a.stdout, report, opts); err != nil {
			return fmt.Errorf("render: %w", err)
		}
	} else if err := writeFile(cfg.Output, report, opts); err != nil {
		return err
	}

	a.log.Info().
		Int("year", cfg.Year).
		Int("weeks", report.Weeks()).
		Str("format", string(format)).
		Bool("budget", b != nil).
		Msg("plan rendered")
	return nil
}

func writeFile(path string, report render.Report, opts render.Options) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create output: %w", err)
	}
	if err := render.Render(f, report, opts); err != nil {
		f.Close()
		return fmt.Errorf("render %s: %w", path, err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("close output: %w", err)
	}
	return nil
}

func (a *app) setLogLevel(level string) error {
	l, err := cliconfig.NewLogger(a.stderr, level)
	if err != nil {
		return fmt.Errorf("logger: %w", err)
	}
	a.log = l
	return nil
}

// reload re-reads the configuration and renders again. The render logger
// follows log_level; the watcher keeps the level it started with.
func (a *app) reload(context.Context) error {
	cfg, err := a.load()
	if err != nil {
		return err
	}
	if err := a.setLogLevel(cfg.LogLevel); err != nil {
		return err
	}
	return a.render(cfg)
}

func (a *app) watch(ctx context.Context, cfg cliconfig.Config) error {
	ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	w, err := watcher.New(watcher.Config{Path: a.cfgFile, Debounce: cfg.DebounceDelay}, plog.NewZerologAdapterWithLogger(a.log))
	if err != nil {
		return err
	}
	if err := w.Run(ctx, a.reload); err != nil {
		return err
	}
	a.log.Info().Msg("stopped watching")
	return nil
}
