package output

import (
	"fmt"
	"io"
	"path/filepath"
	"time"

	"github.com/ethpandaops/loadreport/internal/inputs"
	"github.com/ethpandaops/loadreport/internal/report"
	"github.com/fatih/color"
)

// Formatter provides clean, human-friendly output
type Formatter interface {
	PrintPhase(phase string)
	PrintProgress(message string, duration time.Duration)
	PrintSuccess(message string)
	PrintError(message string, err error)
	PrintScan(folders []*inputs.Folder)
	PrintArtifacts(artifacts []Artifact, outputsDir string)
}

type formatter struct {
	writer io.Writer
	colors *report.ColorHelper

	green *color.Color
	red   *color.Color
	blue  *color.Color
	gray  *color.Color
}

// NewFormatter creates a new output formatter. Colours follow the terminal
// detection of fatih/color unless disabled.
func NewFormatter(writer io.Writer, noColor bool) Formatter {
	f := &formatter{
		writer: writer,
		colors: report.NewColorHelper(!noColor && !color.NoColor),
		green:  color.New(color.FgGreen),
		red:    color.New(color.FgRed),
		blue:   color.New(color.FgBlue),
		gray:   color.New(color.FgHiBlack),
	}

	if noColor {
		for _, c := range []*color.Color{f.green, f.red, f.blue, f.gray} {
			c.DisableColor()
		}
	}

	return f
}

// PrintPhase prints phase separator
func (f *formatter) PrintPhase(phase string) {
	f.blue.Fprintf(f.writer, "\n▸ %s\n", phase)
}

// PrintProgress prints a message with its timing
func (f *formatter) PrintProgress(message string, duration time.Duration) {
	if duration > 0 {
		f.gray.Fprintf(f.writer, "%s (%s)\n", message, formatDuration(duration))
	} else {
		fmt.Fprintf(f.writer, "%s\n", message)
	}
}

// PrintSuccess prints a green message
func (f *formatter) PrintSuccess(message string) {
	f.green.Fprintf(f.writer, "%s\n", message)
}

// PrintError prints a red message with error details
func (f *formatter) PrintError(message string, err error) {
	f.red.Fprintf(f.writer, "%s", message)
	if err != nil {
		f.red.Fprintf(f.writer, ": %v", err)
	}
	fmt.Fprintf(f.writer, "\n")
}

// PrintScan prints the scan table followed by invalid document details.
func (f *formatter) PrintScan(folders []*inputs.Folder) {
	fmt.Fprintln(f.writer, ScanTable(folders, f.colors))

	if details := InvalidDetails(folders, f.colors); details != "" {
		fmt.Fprint(f.writer, details)
	}
}

// PrintArtifacts prints written reports relative to outputsDir.
func (f *formatter) PrintArtifacts(artifacts []Artifact, outputsDir string) {
	if len(artifacts) == 0 {
		fmt.Fprintln(f.writer, "No reports written")

		return
	}

	rows := make([][]string, 0, len(artifacts))
	for _, a := range artifacts {
		path := a.Path
		if rel, err := filepath.Rel(outputsDir, a.Path); err == nil {
			path = rel
		}

		rows = append(rows, []string{a.Folder, filepath.Base(a.Source), string(a.Format), path})
	}

	RenderTable(f.writer, []string{"Folder", "Source", "Format", "Report"}, rows)
}

func formatDuration(d time.Duration) string {
	if d < time.Second {
		return fmt.Sprintf("%dms", d.Milliseconds())
	}

	if d < time.Minute {
		return fmt.Sprintf("%.1fs", d.Seconds())
	}

	return fmt.Sprintf("%.1fm", d.Minutes())
}

// Compile-time interface compliance check
var _ Formatter = (*formatter)(nil)
