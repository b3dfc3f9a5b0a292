package cmd

import (
	"fmt"

	"github.com/ethpandaops/loadreport/internal/actions"
	"github.com/ethpandaops/loadreport/internal/config"
	"github.com/ethpandaops/loadreport/internal/output"
	"github.com/spf13/cobra"
)

var (
	scanK6Dir string

	scanCmd = &cobra.Command{
		Use:   "scan [inputs-dir]",
		Short: "Validate an inputs directory",
		Long: `Scans an inputs directory holding one folder of k6 summary documents per
scenario, validates every document and lists the endpoints each scenario's
k6 script calls.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadCommandConfig(args, scanK6Dir)
			if err != nil {
				return err
			}

			_, err = actions.Scan(cmd.Context(), Logger, cfg, output.NewFormatter(cmd.OutOrStdout(), cfg.NoColor))

			return err
		},
	}
)

func init() {
	rootCmd.AddCommand(scanCmd)

	scanCmd.Flags().StringVar(&scanK6Dir, "k6-dir", "", "directory holding <folder>.js k6 scripts")
}

// loadCommandConfig loads the configuration and applies the positional inputs
// directory and k6 directory overrides.
func loadCommandConfig(args []string, k6Dir string) (*config.Config, error) {
	cfg, err := config.FromEnv()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	if len(args) > 0 {
		cfg.InputsDir = args[0]
	}

	if k6Dir != "" {
		cfg.K6Dir = k6Dir
	}

	return cfg, nil
}
