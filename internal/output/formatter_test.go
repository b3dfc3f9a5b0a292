package output

import (
	"bytes"
	"errors"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/ethpandaops/loadreport/internal/inputs"
	"github.com/ethpandaops/loadreport/internal/report"
	"github.com/stretchr/testify/assert"
)

func TestFormatter_Messages(t *testing.T) {
	tests := []struct {
		name     string
		print    func(f Formatter)
		expected string
	}{
		{
			name:     "success",
			print:    func(f Formatter) { f.PrintSuccess("wrote 3 reports") },
			expected: "wrote 3 reports\n",
		},
		{
			name:     "error with cause",
			print:    func(f Formatter) { f.PrintError("scan failed", errors.New("boom")) },
			expected: "scan failed: boom\n",
		},
		{
			name:     "error without cause",
			print:    func(f Formatter) { f.PrintError("scan failed", nil) },
			expected: "scan failed\n",
		},
		{
			name:     "phase",
			print:    func(f Formatter) { f.PrintPhase("Scanning inputs") },
			expected: "\n▸ Scanning inputs\n",
		},
		{
			name:     "progress with timing",
			print:    func(f Formatter) { f.PrintProgress("rendered", 1500*time.Millisecond) },
			expected: "rendered (1.5s)\n",
		},
		{
			name:     "progress without timing",
			print:    func(f Formatter) { f.PrintProgress("rendered", 0) },
			expected: "rendered\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer

			tt.print(NewFormatter(&buf, true))
			assert.Equal(t, tt.expected, buf.String())
		})
	}
}

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		duration time.Duration
		expected string
	}{
		{250 * time.Millisecond, "250ms"},
		{2500 * time.Millisecond, "2.5s"},
		{90 * time.Second, "1.5m"},
	}

	for _, tt := range tests {
		t.Run(tt.expected, func(t *testing.T) {
			assert.Equal(t, tt.expected, formatDuration(tt.duration))
		})
	}
}

func TestScanTable(t *testing.T) {
	colors := report.NewColorHelper(false)

	assert.Equal(t, "No input folders found", ScanTable(nil, colors))

	folders := []*inputs.Folder{
		{
			Name:      "RECLAMOS_POST",
			Documents: []inputs.File{{Name: "a.json"}, {Name: "b.json"}},
			Endpoints: []string{"POST /ws/api/reclamos", "GET /ws/api/reclamos/:UUID"},
		},
		{
			Name:    "ENTIDADES_GET",
			Invalid: []inputs.InvalidFile{{File: inputs.File{Name: "bad.json"}, Err: errors.New("root_group is required")}},
		},
	}

	table := ScanTable(folders, colors)
	lines := strings.Split(table, "\n")

	assert.Contains(t, table, "RECLAMOS_POST")
	assert.Contains(t, table, "ENTIDADES_GET")
	assert.Contains(t, table, "POST /ws/api/reclamos")
	assert.Contains(t, table, "GET /ws/api/reclamos/:UUID")
	assert.NotContains(t, table, "\x1b[")

	var endpointLines int
	for _, line := range lines {
		if strings.Contains(line, "/ws/api/reclamos") {
			endpointLines++
		}
	}
	assert.Equal(t, 2, endpointLines, "each endpoint on its own line")

	details := InvalidDetails(folders, colors)
	assert.Equal(t, "✗ ENTIDADES_GET/bad.json\n  root_group is required\n", details)
}

func TestFormatter_PrintArtifacts(t *testing.T) {
	var buf bytes.Buffer

	f := NewFormatter(&buf, true)
	f.PrintArtifacts(nil, "out")
	assert.Equal(t, "No reports written\n", buf.String())

	buf.Reset()
	f.PrintArtifacts([]Artifact{{
		Folder: "RECLAMOS_POST",
		Source: filepath.Join("in", "RECLAMOS_POST", "run-1.json"),
		Format: report.FormatJUnit,
		Path:   filepath.Join("out", "RECLAMOS_POST", "run-1.xml"),
	}}, "out")

	assert.Contains(t, buf.String(), "run-1.json")
	assert.Contains(t, buf.String(), filepath.Join("RECLAMOS_POST", "run-1.xml"))
	assert.Contains(t, buf.String(), "junit")
}
