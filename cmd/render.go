package cmd

import (
	"fmt"

	"github.com/ethpandaops/loadreport/internal/actions"
	"github.com/ethpandaops/loadreport/internal/config"
	"github.com/ethpandaops/loadreport/internal/output"
	"github.com/ethpandaops/loadreport/internal/report"
	"github.com/spf13/cobra"
)

var (
	renderOpts   renderFlags
	renderFormat string
	renderOut    string

	renderCmd = &cobra.Command{
		Use:   "render <summary.json>",
		Short: "Render a k6 summary document",
		Long: `Renders a k6 end-of-test summary document as a text report (default),
a JUnit XML report of threshold outcomes, or an HTML capture of the text report.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRender(cmd, args[0], renderFormat, renderOut, &renderOpts)
		},
	}
)

func init() {
	rootCmd.AddCommand(renderCmd)

	renderOpts.register(renderCmd)
	renderCmd.Flags().StringVarP(&renderFormat, "format", "f", string(report.FormatText), "report format (text, junit, html)")
	renderCmd.Flags().StringVarP(&renderOut, "out", "o", "", "write the report to a file instead of stdout")
}

func runRender(cmd *cobra.Command, path, formatName, out string, flags *renderFlags) error {
	f, err := report.ParseFormat(formatName)
	if err != nil {
		return err
	}

	cfg, err := config.FromEnv()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	caller, err := flags.callerOptions(cmd, cfg, out == "" && stdoutIsTerminal())
	if err != nil {
		return err
	}

	content, err := actions.Render(Logger, path, f, caller)
	if err != nil {
		return fmt.Errorf("failed to render %s: %w", path, err)
	}

	if out == "" {
		fmt.Fprintln(cmd.OutOrStdout(), content)

		return nil
	}

	if err := output.WriteFile(out, content); err != nil {
		return err
	}

	Logger.WithField("path", out).Info("report written")

	return nil
}
