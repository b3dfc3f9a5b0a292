package report

import (
	"html/template"
	"strings"

	"github.com/ethpandaops/loadreport/internal/format"
	"github.com/ethpandaops/loadreport/internal/summary"
)

const (
	defaultTitle     = "k6 summary"
	defaultTextColor = "#1a1a1a"
	faintTextColor   = "#666666"
)

// ansiPalette maps SGR foreground codes to colours readable on white.
var ansiPalette = map[int]string{
	30: "#24292f",
	31: "#cf222e",
	32: "#1a7f37",
	33: "#9a6700",
	34: "#0969da",
	35: "#8250df",
	36: "#1b7c83",
	37: "#57606a",
	90: "#656d76",
	91: "#a40e26",
	92: "#0f5323",
	93: "#7c4a03",
	94: "#0550ae",
	95: "#6639ba",
	96: "#0f6f78",
	97: "#0d1117",
}

var captureTemplate = template.Must(template.New("capture").Parse(`<!DOCTYPE html>
<html>
<head>
<meta charset="utf-8">
<title>{{.Title}}</title>
<style>body{background:#ffffff;margin:20px}pre{font:12px/18px 'Courier New',monospace;color:` + defaultTextColor + `}</style>
</head>
<body>
<pre>
{{range .Lines}}{{range .}}<span style="{{.CSS}}">{{.Text}}</span>{{end}}
{{end}}</pre>
</body>
</html>
`))

type htmlSpan struct {
	Text string
	CSS  template.CSS
}

type captureData struct {
	Title string
	Lines [][]htmlSpan
}

func spanCSS(style format.Style) template.CSS {
	colour := defaultTextColor
	if c, ok := ansiPalette[style.Foreground]; ok {
		colour = c
	} else if style.Faint {
		colour = faintTextColor
	}

	css := "color:" + colour
	if style.Bold {
		css += ";font-weight:bold"
	}

	if style.Faint {
		css += ";opacity:0.7"
	}

	return template.CSS(css) //nolint:gosec // built from fixed palette values only
}

// HTML renders the coloured text summary as a standalone HTML page, keeping
// the terminal colours as styled spans.
func HTML(doc *summary.Summary, caller *summary.Options) (string, error) {
	var overrides summary.Options
	if caller != nil {
		overrides = *caller
	}

	overrides.EnableColors = summary.Bool(true)

	var (
		settings = summary.Resolve(doc, &overrides)
		text     = Text(doc, &overrides)
		data     = captureData{Title: defaultTitle}
	)

	if settings.Name != "" {
		data.Title = settings.Name
	}

	// Styles may span lines (a failing check is one coloured block), so the
	// whole text is scanned once and the spans are cut at newlines.
	row := make([]htmlSpan, 0)
	for _, span := range format.Spans(text) {
		css := spanCSS(span.Style)

		parts := strings.Split(span.Text, "\n")
		for i, part := range parts {
			if i > 0 {
				data.Lines = append(data.Lines, row)
				row = make([]htmlSpan, 0)
			}

			if part != "" {
				row = append(row, htmlSpan{Text: part, CSS: css})
			}
		}
	}

	data.Lines = append(data.Lines, row)

	var b strings.Builder
	if err := captureTemplate.Execute(&b, data); err != nil {
		return "", err
	}

	return b.String(), nil
}
