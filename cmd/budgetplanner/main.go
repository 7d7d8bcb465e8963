package main

import (
	"fmt"
	"io"
	"os"
	"runtime"
	"runtime/debug"
	"strings"
	"time"

	"github.com/spf13/cobra"
	pflag "github.com/spf13/pflag"

	"github.com/bft-labs/budgetplanner/internal/cliconfig"
	"github.com/bft-labs/budgetplanner/internal/render"
)

const helpDescription = `
Split a calendar year into weeks and assign every week to a month, so a
monthly budget can be planned week by week.

Rules:
  - The first week runs from January 1st to the first Sunday of the year.
  - The last week runs from the last Monday of the year to December 31st.
  - Every other week runs Monday to Sunday.
  - A week belongs to the month holding at least four of its days; the first
    and last weeks always belong to January and December.
`

var longHelp = "Budget Planner\n\n" + strings.TrimSpace(helpDescription)

var exampleUsage = strings.TrimSpace(`
  budgetplanner --year 2024
  budgetplanner --year 2024 --budget 1500 --format json
  budgetplanner --year 2024 --format ics --output weeks-2024.ics
  budgetplanner --config $HOME/.budgetplanner/config.toml --watch
`)

func getVersion() string {
	if info, ok := debug.ReadBuildInfo(); ok && info.Main.Version != "" {
		return info.Main.Version
	}
	return "dev"
}

func main() {
	if err := newRootCmd(os.Stdout, os.Stderr).Execute(); err != nil {
		log := cliconfig.Logger()
		log.Error().Err(err).Msg("budgetplanner")
		os.Exit(1)
	}
}

func newRootCmd(stdout, stderr io.Writer) *cobra.Command {
	cfg := cliconfig.DefaultConfig()
	var (
		cfgPath string
		envFile string
		noColor bool
	)

	root := &cobra.Command{
		Use:           "budgetplanner",
		Short:         "Split a year into weeks and assign each week to a month for budgeting",
		Long:          longHelp,
		Example:       exampleUsage,
		Version:       fmt.Sprintf("%s %s/%s", getVersion(), runtime.GOOS, runtime.GOARCH),
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			// .env values become plain environment variables, so they
			// rank with BUDGETPLANNER_* below flags and above the file.
			if err := cliconfig.LoadDotEnv(envFile); err != nil {
				return fmt.Errorf("load env file: %w", err)
			}

			cfgFile := cfgPath
			if cfgFile == "" {
				cfgFile = cliconfig.DefaultConfigPath()
			}

			changed := map[string]bool{}
			cmd.Flags().Visit(func(f *pflag.Flag) { changed[f.Name] = true })

			if noColor {
				cfg.Color = false
			}

			a := &app{
				base:    cfg,
				cfgFile: cfgFile,
				changed: changed,
				stdout:  stdout,
				stderr:  stderr,
				now:     time.Now,
			}
			return a.run(cmd.Context())
		},
	}
	root.SetOut(stdout)
	root.SetErr(stderr)

	// Flags
	root.Flags().StringVar(&cfgPath, "config", "", "path to config file (default: $HOME/.budgetplanner/config.toml)")
	root.Flags().StringVar(&envFile, "env-file", ".env", "dotenv file loaded into the environment if present")
	root.Flags().IntVar(&cfg.Year, "year", cfg.Year, "calendar year to plan")
	root.Flags().StringVar(&cfg.Format, "format", cfg.Format, fmt.Sprintf("output format (%s)", formatNames()))
	root.Flags().StringVarP(&cfg.Output, "output", "o", cfg.Output, "write to this file instead of stdout")
	root.Flags().StringVar(&cfg.Budget.Default, "budget", cfg.Budget.Default, "amount to spend each month, e.g. 1500 or 1500.50")
	root.Flags().BoolVar(&noColor, "no-color", false, "disable styled text output")
	root.Flags().StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "log level (debug, info, warn, error)")
	root.Flags().BoolVar(&cfg.Watch, "watch", cfg.Watch, "re-render whenever the config file changes")
	root.Flags().DurationVar(&cfg.DebounceDelay, "debounce", cfg.DebounceDelay, "delay after a config change before re-rendering")
	if err := root.Flags().MarkHidden("debounce"); err != nil {
		fmt.Fprintf(stderr, "failed to hide debounce flag: %v\n", err)
	}

	return root
}

func formatNames() string {
	names := make([]string, len(render.Formats))
	for i, f := range render.Formats {
		names[i] = string(f)
	}
	return strings.Join(names, ", ")
}
