package cmd

import (
	"github.com/ethpandaops/loadreport/internal/report"
	"github.com/spf13/cobra"
)

var (
	junitOpts renderFlags
	junitOut  string

	junitCmd = &cobra.Command{
		Use:   "junit <summary.json>",
		Short: "Render the JUnit XML report of a k6 summary document",
		Long:  `Shorthand for 'render --format junit': one test case per metric threshold.`,
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRender(cmd, args[0], string(report.FormatJUnit), junitOut, &junitOpts)
		},
	}
)

func init() {
	rootCmd.AddCommand(junitCmd)

	junitOpts.register(junitCmd)
	junitCmd.Flags().StringVarP(&junitOut, "out", "o", "", "write the report to a file instead of stdout")
}
