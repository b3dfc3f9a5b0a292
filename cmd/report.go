package cmd

import (
	"github.com/ethpandaops/loadreport/internal/actions"
	"github.com/ethpandaops/loadreport/internal/output"
	"github.com/ethpandaops/loadreport/internal/report"
	"github.com/spf13/cobra"
)

var (
	reportOpts    renderFlags
	reportFormats []string
	reportOutDir  string
	reportK6Dir   string

	reportCmd = &cobra.Command{
		Use:   "report [inputs-dir]",
		Short: "Write reports for every valid document in an inputs directory",
		Long: `Scans an inputs directory and writes <outputs>/<folder>/<document>.txt,
.xml and .html reports for every valid k6 summary document found.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadCommandConfig(args, reportK6Dir)
			if err != nil {
				return err
			}

			if reportOutDir != "" {
				cfg.OutputsDir = reportOutDir
			}

			formats, err := parseFormats(reportFormats)
			if err != nil {
				return err
			}

			caller, err := reportOpts.callerOptions(cmd, cfg, true)
			if err != nil {
				return err
			}

			out := output.NewFormatter(cmd.OutOrStdout(), cfg.NoColor)
			_, err = actions.WriteReports(cmd.Context(), Logger, cfg, out, formats, caller)

			return err
		},
	}
)

func init() {
	rootCmd.AddCommand(reportCmd)

	reportOpts.register(reportCmd)
	reportCmd.Flags().StringSliceVar(&reportFormats, "formats", formatNames(report.Formats), "report formats to write")
	reportCmd.Flags().StringVar(&reportOutDir, "out-dir", "", "outputs directory (defaults to the configured one)")
	reportCmd.Flags().StringVar(&reportK6Dir, "k6-dir", "", "directory holding <folder>.js k6 scripts")
}

func formatNames(formats []report.Format) []string {
	names := make([]string, 0, len(formats))
	for _, f := range formats {
		names = append(names, string(f))
	}

	return names
}

func parseFormats(names []string) ([]report.Format, error) {
	formats := make([]report.Format, 0, len(names))

	for _, name := range names {
		f, err := report.ParseFormat(name)
		if err != nil {
			return nil, err
		}

		formats = append(formats, f)
	}

	return formats, nil
}
