package cmd

import (
	"os"

	"github.com/ethpandaops/loadreport/internal/config"
	"github.com/ethpandaops/loadreport/internal/summary"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
)

// renderFlags are the caller-level render options accepted on the command line.
type renderFlags struct {
	indent      string
	noColor     bool
	timeUnit    string
	trendStats  []string
	name        string
	optionsFile string
}

func (f *renderFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.indent, "indent", "", "indentation prefix for every report line")
	cmd.Flags().BoolVar(&f.noColor, "no-color", false, "disable ANSI colours in the text report")
	cmd.Flags().StringVar(&f.timeUnit, "time-unit", "", "fixed time unit for durations (s, ms, us)")
	cmd.Flags().StringSliceVar(&f.trendStats, "trend-stats", nil, "trend statistics to display, comma separated")
	cmd.Flags().StringVar(&f.name, "name", "", "test suite name for the JUnit report")
	cmd.Flags().StringVar(&f.optionsFile, "options", "", "YAML file with render options")
}

// stdoutIsTerminal reports whether stdout is an interactive terminal.
func stdoutIsTerminal() bool {
	fd := os.Stdout.Fd()

	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// callerOptions layers the command line flags over the configured render
// options. When neither sets colours and the report goes to a pipe, colours
// are disabled.
func (f *renderFlags) callerOptions(cmd *cobra.Command, cfg *config.Config, toTerminal bool) (*summary.Options, error) {
	if f.optionsFile != "" {
		cfg.OptionsFile = f.optionsFile
	}

	opts, err := cfg.RenderOptions()
	if err != nil {
		return nil, err
	}

	flags := cmd.Flags()

	if flags.Changed("indent") {
		opts.Indent = summary.String(f.indent)
	}

	if flags.Changed("time-unit") {
		opts.SummaryTimeUnit = summary.String(f.timeUnit)
	}

	if flags.Changed("trend-stats") {
		opts.SummaryTrendStats = append([]string{}, f.trendStats...)
	}

	if flags.Changed("name") {
		opts.Name = summary.String(f.name)
	}

	switch {
	case flags.Changed("no-color"):
		opts.EnableColors = summary.Bool(!f.noColor)
	case opts.EnableColors == nil && !toTerminal:
		opts.EnableColors = summary.Bool(false)
	}

	return opts, nil
}
