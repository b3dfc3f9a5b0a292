package output

import (
	"bytes"
	"io"

	"github.com/olekukonko/tablewriter"
)

// RenderOption configures table rendering.
type RenderOption func(*tablewriter.Table)

// WithAlignment sets column alignment (use tablewriter constants)
func WithAlignment(alignment int) RenderOption {
	return func(t *tablewriter.Table) {
		t.SetAlignment(alignment)
	}
}

// WithBorder controls border visibility
func WithBorder(show bool) RenderOption {
	return func(t *tablewriter.Table) {
		t.SetBorder(show)
	}
}

// WithFooter adds a footer row.
func WithFooter(footer []string) RenderOption {
	return func(t *tablewriter.Table) {
		t.SetFooter(footer)
		t.SetFooterAlignment(tablewriter.ALIGN_LEFT)
	}
}

// RenderTable writes a table with the default styling to w.
func RenderTable(w io.Writer, headers []string, rows [][]string, opts ...RenderOption) {
	table := tablewriter.NewWriter(w)
	table.SetHeader(headers)

	table.SetAutoWrapText(false)
	table.SetAutoFormatHeaders(true)
	table.SetHeaderAlignment(tablewriter.ALIGN_LEFT)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetCenterSeparator("")
	table.SetColumnSeparator("│")
	table.SetRowSeparator("─")
	table.SetHeaderLine(true)
	table.SetBorder(true)
	table.SetTablePadding(" ")
	table.SetNoWhiteSpace(false)

	for _, opt := range opts {
		opt(table)
	}

	table.AppendBulk(rows)
	table.Render()
}

// RenderTableString renders a table to a string.
func RenderTableString(headers []string, rows [][]string, opts ...RenderOption) string {
	buf := &bytes.Buffer{}
	RenderTable(buf, headers, rows, opts...)

	return buf.String()
}
