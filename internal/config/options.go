package config

import (
	"fmt"
	"os"

	"github.com/ethpandaops/loadreport/internal/summary"
	"gopkg.in/yaml.v3"
)

// LoadOptionsFile reads caller render options from a YAML file, e.g.
//
//	indent: "  "
//	enableColors: false
//	summaryTimeUnit: ms
//	summaryTrendStats: [avg, p(95)]
//	name: nightly
func LoadOptionsFile(path string) (*summary.Options, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is chosen by the operator
	if err != nil {
		return nil, fmt.Errorf("reading options file %s: %w", path, err)
	}

	var opts summary.Options
	if err := yaml.Unmarshal(data, &opts); err != nil {
		return nil, fmt.Errorf("parsing options file %s: %w", path, err)
	}

	return &opts, nil
}
