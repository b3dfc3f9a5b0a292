package report

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/ethpandaops/loadreport/internal/format"
	"github.com/ethpandaops/loadreport/internal/summary"
)

const (
	checksMetric = "checks"
	groupIndent  = "    "
)

var headerLines = []string{
	"     execution: local",
	"        output: -",
	"        script: carga.js",
}

// checksLine summarises the checks metric across the whole run.
func checksLine(checks *summary.Metric, colors *ColorHelper) string {
	var (
		passes  = checks.Value("passes")
		fails   = checks.Value("fails")
		total   = passes + fails
		percent = "0.00"
	)

	if total > 0 {
		percent = strconv.FormatFloat(passes/total*100, 'f', 2, 64)
	}

	return colors.Status(
		fmt.Sprintf("     checks..................: %s%% %s %s %s %s",
			percent, succMark, format.Number(passes), failMark, format.Number(fails)),
		fails == 0,
	)
}

// Text renders doc as the terminal summary. caller overrides the options
// embedded in the document and may be nil.
func Text(doc *summary.Summary, caller *summary.Options) string {
	var (
		settings = summary.Resolve(doc, caller)
		colors   = NewColorHelper(settings.EnableColors)
		lines    = make([]string, 0, 16+len(doc.Metrics))
	)

	lines = append(lines, "")
	for _, header := range headerLines {
		lines = append(lines, colors.Bold(header))
	}

	lines = append(lines, "")

	if checks, ok := doc.Metrics[checksMetric]; ok && checks != nil {
		lines = append(lines, checksLine(checks, colors))
	}

	if doc.RootGroup != nil {
		lines = append(lines, summarizeGroup(settings.Indent+groupIndent, doc.RootGroup, colors)...)
	}

	if lines[len(lines)-1] != "" {
		lines = append(lines, "")
	}

	lines = append(lines, summarizeMetrics(settings, doc, colors)...)

	return strings.Join(lines, "\n")
}
