package report

import (
	"sort"
	"strings"

	"github.com/ethpandaops/loadreport/internal/format"
	"github.com/ethpandaops/loadreport/internal/summary"
)

const (
	columnGap   = "  "
	subIndent   = "  "
	noDataValue = "[no data]"
)

// trendCells holds the label=value pairs of one trend metric, in the order of
// the configured statistics.
type trendCells struct {
	labels []string
	values []string
}

// metricTable accumulates the per-render column widths of the metric table.
type metricTable struct {
	settings summary.Settings
	colors   *ColorHelper

	names     []string
	nameWidth int

	primary      map[string]string
	primaryWidth int
	extras       map[string][]string
	extraWidths  []int

	trends           map[string]trendCells
	trendLabelWidths []int
	trendValueWidths []int
}

// displayNameForMetric turns "name{tag}" into "{ tag }".
func displayNameForMetric(name string) string {
	pos := strings.Index(name, "{")
	if pos < 0 {
		return name
	}

	var tag string
	if end := len(name) - 1; end > pos {
		tag = name[pos+1 : end]
	}

	return "{ " + tag + " }"
}

// indentForMetric nests sub-metrics under their parent.
func indentForMetric(name string) string {
	if strings.Contains(name, "{") {
		return subIndent
	}

	return ""
}

// nonTrendValues returns the primary value followed by its annotations.
func nonTrendValues(m *summary.Metric, unit string) []string {
	switch m.Type {
	case summary.KindCounter:
		return []string{
			format.Value(m.Value("count"), m, unit),
			format.Value(m.Value("rate"), m, unit) + "/s",
		}
	case summary.KindGauge:
		return []string{
			format.Value(m.Value("value"), m, unit),
			"min=" + format.Value(m.Value("min"), m, unit),
			"max=" + format.Value(m.Value("max"), m, unit),
		}
	case summary.KindRate:
		return []string{
			format.Value(m.Value("rate"), m, unit),
			succMark + " " + format.Number(m.Value("passes")),
			failMark + " " + format.Number(m.Value("fails")),
		}
	default:
		return []string{noDataValue}
	}
}

// trendValues returns the configured statistics the metric carries.
func trendValues(m *summary.Metric, stats []string, unit string) trendCells {
	cells := trendCells{
		labels: make([]string, 0, len(stats)),
		values: make([]string, 0, len(stats)),
	}

	for _, stat := range stats {
		if !m.HasValue(stat) {
			continue
		}

		cells.labels = append(cells.labels, stat+"=")
		cells.values = append(cells.values, format.Value(m.Value(stat), m, unit))
	}

	return cells
}

func growMax(widths []int, i, width int) []int {
	for len(widths) <= i {
		widths = append(widths, 0)
	}

	if width > widths[i] {
		widths[i] = width
	}

	return widths
}

func newMetricTable(settings summary.Settings, colors *ColorHelper, metrics map[string]*summary.Metric) *metricTable {
	t := &metricTable{
		settings: settings,
		colors:   colors,
		names:    make([]string, 0, len(metrics)),
		primary:  make(map[string]string, len(metrics)),
		extras:   make(map[string][]string, len(metrics)),
		trends:   make(map[string]trendCells),
	}

	for name, metric := range metrics {
		if metric == nil {
			continue
		}

		t.names = append(t.names, name)

		if w := format.VisibleWidth(indentForMetric(name) + displayNameForMetric(name)); w > t.nameWidth {
			t.nameWidth = w
		}

		if metric.Type == summary.KindTrend {
			t.addTrend(name, metric)

			continue
		}

		t.addNonTrend(name, metric)
	}

	sort.Strings(t.names)

	return t
}

func (t *metricTable) addTrend(name string, metric *summary.Metric) {
	cells := trendValues(metric, t.settings.SummaryTrendStats, t.settings.SummaryTimeUnit)
	t.trends[name] = cells

	for i := range cells.labels {
		t.trendLabelWidths = growMax(t.trendLabelWidths, i, format.VisibleWidth(cells.labels[i]))
		t.trendValueWidths = growMax(t.trendValueWidths, i, format.VisibleWidth(cells.values[i]))
	}
}

func (t *metricTable) addNonTrend(name string, metric *summary.Metric) {
	values := nonTrendValues(metric, t.settings.SummaryTimeUnit)

	t.primary[name] = values[0]
	if w := format.VisibleWidth(values[0]); w > t.primaryWidth {
		t.primaryWidth = w
	}

	t.extras[name] = values[1:]
	for i, extra := range values[1:] {
		t.extraWidths = growMax(t.extraWidths, i, format.VisibleWidth(extra))
	}
}

func (t *metricTable) trendData(cells trendCells) string {
	parts := make([]string, 0, len(cells.labels))

	for i, label := range cells.labels {
		value := cells.values[i]
		parts = append(parts,
			t.colors.Muted(label)+format.Spaces(t.trendLabelWidths[i]-format.VisibleWidth(label))+
				t.colors.Value(value)+format.Spaces(t.trendValueWidths[i]-format.VisibleWidth(value)),
		)
	}

	return strings.Join(parts, columnGap)
}

func (t *metricTable) decorateExtra(extra string) string {
	if label, val, ok := strings.Cut(extra, "="); ok {
		return t.colors.Muted(label+"=") + t.colors.Value(val)
	}

	return t.colors.Annotation(extra)
}

func (t *metricTable) nonTrendData(name string) string {
	value := t.primary[name]
	data := t.colors.Value(value) + format.Spaces(t.primaryWidth-format.VisibleWidth(value))

	extras := t.extras[name]
	if len(extras) == 0 {
		return data
	}

	parts := make([]string, 0, len(extras))
	for i, extra := range extras {
		parts = append(parts, t.decorateExtra(extra)+format.Spaces(t.extraWidths[i]-format.VisibleWidth(extra)))
	}

	return data + columnGap + strings.Join(parts, columnGap)
}

func (t *metricTable) data(name string) string {
	if cells, ok := t.trends[name]; ok {
		return t.trendData(cells)
	}

	return t.nonTrendData(name)
}

// mark returns the threshold outcome glyph: blank without thresholds, a
// failure mark if any threshold was crossed, a success mark otherwise.
func (t *metricTable) mark(metric *summary.Metric) string {
	switch {
	case metric.Thresholds == nil:
		return " "
	case metric.Failed():
		return t.colors.Failure(failMark)
	default:
		return t.colors.Success(succMark)
	}
}

func (t *metricTable) rows(metrics map[string]*summary.Metric) []string {
	var (
		indent = t.settings.Indent + subIndent
		result = make([]string, 0, len(t.names))
	)

	for _, name := range t.names {
		var (
			metric      = metrics[name]
			fmtIndent   = indentForMetric(name)
			displayName = displayNameForMetric(name)
			dots        = strings.Repeat(".", t.nameWidth-format.VisibleWidth(displayName)-format.VisibleWidth(fmtIndent)+2)
		)

		result = append(result,
			indent+fmtIndent+t.mark(metric)+" "+displayName+t.colors.Muted(dots+":")+" "+t.data(name),
		)
	}

	return result
}

// summarizeMetrics renders the metric table, one aligned row per metric in
// lexical order of the raw metric names.
func summarizeMetrics(settings summary.Settings, doc *summary.Summary, colors *ColorHelper) []string {
	return newMetricTable(settings, colors, doc.Metrics).rows(doc.Metrics)
}
