package report

import (
	"sort"
	"strconv"
	"strings"

	"github.com/ethpandaops/loadreport/internal/summary"
)

var xmlEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	"'", "&#39;",
	`"`, "&quot;",
)

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}

	sort.Strings(keys)

	return keys
}

// JUnit renders one test case per metric threshold, failing the cases whose
// threshold was crossed. Metrics and thresholds are visited in name order.
func JUnit(doc *summary.Summary, caller *summary.Options) string {
	var (
		settings = summary.Resolve(doc, caller)
		cases    = make([]string, 0)
		failures int
	)

	for _, metricName := range sortedKeys(doc.Metrics) {
		metric := doc.Metrics[metricName]
		if metric == nil || metric.Thresholds == nil {
			continue
		}

		for _, thresholdName := range sortedKeys(metric.Thresholds) {
			name := xmlEscaper.Replace(metricName) + " - " + xmlEscaper.Replace(thresholdName)

			if metric.Thresholds[thresholdName].OK {
				cases = append(cases, `<testcase name="`+name+`" />`)

				continue
			}

			failures++
			cases = append(cases, `<testcase name="`+name+`"><failure message="failed" /></testcase>`)
		}
	}

	suite := summary.DefaultSuiteName
	if settings.Name != "" {
		suite = settings.Name
	}

	var (
		tests  = strconv.Itoa(len(cases))
		failed = strconv.Itoa(failures)
		b      strings.Builder
	)

	b.WriteString(`<?xml version="1.0"?>` + "\n")
	b.WriteString(`<testsuites tests="` + tests + `" failures="` + failed + `">` + "\n")
	b.WriteString(`<testsuite name="` + xmlEscaper.Replace(suite) + `" tests="` + tests + `" failures="` + failed + `">` + "\n")
	b.WriteString(strings.Join(cases, "\n"))
	b.WriteString("\n</testsuite>\n</testsuites>")

	return b.String()
}
