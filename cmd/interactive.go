package cmd

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"

	"github.com/ethpandaops/loadreport/internal/actions"
	"github.com/ethpandaops/loadreport/internal/config"
	"github.com/ethpandaops/loadreport/internal/output"
	"github.com/ethpandaops/loadreport/internal/report"
	"github.com/ethpandaops/loadreport/internal/summary"
	"github.com/ethpandaops/loadreport/pkg/interactive"
	"github.com/spf13/cobra"
)

var interactiveCmd = &cobra.Command{
	Use:   "interactive",
	Short: "Launch interactive TUI mode",
	Long:  `Launches the interactive Terminal User Interface for loadreport.`,
	Run: func(cmd *cobra.Command, _ []string) {
		RunInteractive(cmd.Context())
	},
}

func init() {
	rootCmd.AddCommand(interactiveCmd)
}

// RunInteractive shows the main menu until the user exits.
func RunInteractive(ctx context.Context) {
	fmt.Println("loadreport - Interactive Mode")
	fmt.Println("=============================")
	fmt.Println()

	for {
		options := []interactive.MenuOption{
			{
				Name:        "📄 Render",
				Description: "Pick a scanned document and render it to the terminal",
				Action: func() error {
					return withConfig(func(cfg *config.Config) error {
						return renderInteractive(ctx, cfg)
					})
				},
			},
			{
				Name:        "🔍 Scan",
				Description: "Validate the inputs directory and list endpoints",
				Action: func() error {
					return withConfig(func(cfg *config.Config) error {
						_, err := actions.Scan(ctx, Logger, cfg, output.NewFormatter(os.Stdout, cfg.NoColor))

						return err
					})
				},
			},
			{
				Name:        "💾 Write Reports",
				Description: "Render every valid document to the outputs directory",
				Action: func() error {
					return withConfig(func(cfg *config.Config) error {
						return writeReportsInteractive(ctx, cfg)
					})
				},
			},
			{
				Name:        "📋 Show Config",
				Description: "Display current environment configuration",
				Action: func() error {
					if err := actions.ShowConfig(os.Stdout); err != nil {
						fmt.Printf("\n❌ Error: %v\n", err)
					}
					interactive.PauseForEnter()
					return nil
				},
			},
		}

		if err := interactive.ShowMainMenu(options); err != nil {
			if errors.Is(err, interactive.ErrExit) {
				fmt.Println("Goodbye!")
				return
			}
			log.Fatal(err)
		}

		fmt.Println()
	}
}

// withConfig loads the configuration, runs fn and reports its error without
// leaving the menu.
func withConfig(fn func(cfg *config.Config) error) error {
	cfg, err := config.Load()
	if err == nil {
		err = fn(cfg)
	}

	if err != nil {
		fmt.Printf("\n❌ Error: %v\n", err)
	}

	interactive.PauseForEnter()

	return nil
}

func renderInteractive(ctx context.Context, cfg *config.Config) error {
	folders, err := actions.Scan(ctx, Logger, cfg, output.NewFormatter(os.Stdout, cfg.NoColor))
	if err != nil {
		return err
	}

	path, err := interactive.SelectFromList("Select document:", actions.Documents(folders))
	if err != nil {
		return err
	}

	name, err := interactive.SelectFromList("Select format:", formatNames(report.Formats))
	if err != nil {
		return err
	}

	caller, err := cfg.RenderOptions()
	if err != nil {
		return err
	}

	if caller.EnableColors == nil && !stdoutIsTerminal() {
		caller.EnableColors = summary.Bool(false)
	}

	content, err := actions.Render(Logger, path, report.Format(name), caller)
	if err != nil {
		return err
	}

	fmt.Println(content)

	return nil
}

func writeReportsInteractive(ctx context.Context, cfg *config.Config) error {
	names, err := interactive.SelectMany("Select formats:", formatNames(report.Formats), formatNames(report.Formats))
	if err != nil {
		return err
	}

	formats, err := parseFormats(names)
	if err != nil {
		return err
	}

	if !interactive.Confirm(fmt.Sprintf("Write reports to %s? Existing reports are overwritten.", cfg.OutputsDir)) {
		fmt.Println("Canceled.")

		return nil
	}

	caller, err := cfg.RenderOptions()
	if err != nil {
		return err
	}

	_, err = actions.WriteReports(ctx, Logger, cfg, output.NewFormatter(os.Stdout, cfg.NoColor), formats, caller)

	return err
}
