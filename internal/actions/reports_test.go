package actions

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/ethpandaops/loadreport/internal/config"
	"github.com/ethpandaops/loadreport/internal/output"
	"github.com/ethpandaops/loadreport/internal/report"
	"github.com/ethpandaops/loadreport/internal/summary"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const document = `{
  "root_group": {"name": "", "path": "", "id": "x", "groups": [], "checks": []},
  "options": {"name": "reclamos"},
  "metrics": {
    "http_req_failed": {
      "type": "rate", "contains": "default",
      "values": {"rate": 0.5, "passes": 1, "fails": 1},
      "thresholds": {"rate<0.01": {"ok": false}}
    }
  }
}`

func testLogger() logrus.FieldLogger {
	log := logrus.New()
	log.SetLevel(logrus.ErrorLevel)

	return log
}

func writeInput(t *testing.T, path string) {
	t.Helper()

	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(document), 0o600))
}

func TestRender(t *testing.T) {
	path := filepath.Join(t.TempDir(), "run.json")
	writeInput(t, path)

	out, err := Render(testLogger(), path, report.FormatJUnit, nil)
	require.NoError(t, err)
	assert.Contains(t, out, `<testsuite name="reclamos" tests="1" failures="1">`)

	_, err = Render(testLogger(), filepath.Join(t.TempDir(), "missing.json"), report.FormatText, nil)
	require.ErrorIs(t, err, os.ErrNotExist)
}

func TestWriteReports(t *testing.T) {
	root := t.TempDir()
	writeInput(t, filepath.Join(root, "inputs", "RECLAMOS_POST", "run.json"))

	cfg := &config.Config{
		InputsDir:  filepath.Join(root, "inputs"),
		OutputsDir: filepath.Join(root, "outputs"),
		K6Dir:      filepath.Join(root, "k6"),
		Workers:    2,
	}

	var buf bytes.Buffer

	artifacts, err := WriteReports(
		context.Background(),
		testLogger(),
		cfg,
		output.NewFormatter(&buf, true),
		[]report.Format{report.FormatText},
		&summary.Options{EnableColors: summary.Bool(false)},
	)
	require.NoError(t, err)
	require.Len(t, artifacts, 1)
	assert.Equal(t, filepath.Join(cfg.OutputsDir, "RECLAMOS_POST", "run.txt"), artifacts[0].Path)

	printed := buf.String()
	assert.Contains(t, printed, "RECLAMOS_POST")
	assert.Contains(t, printed, "Wrote 1 reports")

	text, err := os.ReadFile(artifacts[0].Path)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(string(text), "\n"))
	assert.Contains(t, string(text), "http_req_failed")
}

func TestScan_MissingInputs(t *testing.T) {
	cfg := &config.Config{InputsDir: filepath.Join(t.TempDir(), "missing"), Workers: 1}

	var buf bytes.Buffer

	_, err := Scan(context.Background(), testLogger(), cfg, output.NewFormatter(&buf, true))
	require.Error(t, err)
	assert.Contains(t, buf.String(), "Scan failed")
}

func TestDocuments(t *testing.T) {
	root := t.TempDir()
	writeInput(t, filepath.Join(root, "B", "2.json"))
	writeInput(t, filepath.Join(root, "A", "1.json"))

	cfg := &config.Config{InputsDir: root, Workers: 1}

	var buf bytes.Buffer

	folders, err := Scan(context.Background(), testLogger(), cfg, output.NewFormatter(&buf, true))
	require.NoError(t, err)
	assert.Equal(t, []string{filepath.Join(root, "A", "1.json"), filepath.Join(root, "B", "2.json")}, Documents(folders))
}
