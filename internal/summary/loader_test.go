package summary

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validDocument = `{
  "root_group": {
    "name": "",
    "path": "",
    "id": "d41d8cd98f00b204e9800998ecf8427e",
    "groups": [
      {"name": "login", "path": "::login", "id": "a", "groups": [], "checks": [
        {"name": "token present", "path": "::login::token present", "id": "b", "passes": 9, "fails": 1}
      ]}
    ],
    "checks": [
      {"name": "status is 200", "path": "::status is 200", "id": "c", "passes": 10, "fails": 0}
    ]
  },
  "options": {"summaryTimeUnit": "", "noColor": false, "summaryTrendStats": ["avg", "p(95)"]},
  "state": {"testRunDurationMs": 30012.5, "isStdOutTTY": true, "isStdErrTTY": true},
  "metrics": {
    "http_req_duration": {
      "type": "trend",
      "contains": "time",
      "values": {"avg": 120.5, "p(95)": 300},
      "thresholds": {"p(95)<500": {"ok": true}, "avg<100": {"ok": false, "threshold": 100, "value": 120.5}}
    },
    "checks": {"type": "rate", "contains": "default", "values": {"rate": 0.95, "passes": 19, "fails": 1}},
    "data_received": {"type": "counter", "contains": "data", "values": {"count": 1500, "rate": 50}},
    "vus": {"type": "gauge", "contains": "default", "values": {"value": 1, "min": 1, "max": 1}}
  }
}`

func TestLoader_Decode(t *testing.T) {
	doc, err := NewLoader(logrus.New()).Decode(strings.NewReader(validDocument))
	require.NoError(t, err)

	require.Len(t, doc.RootGroup.Checks, 1)
	assert.Equal(t, uint64(10), doc.RootGroup.Checks[0].Passes)
	require.Len(t, doc.RootGroup.Groups, 1)
	assert.Equal(t, "login", doc.RootGroup.Groups[0].Name)

	trend := doc.Metrics["http_req_duration"]
	require.NotNil(t, trend)
	assert.Equal(t, KindTrend, trend.Type)
	assert.Equal(t, SemanticTime, trend.Contains)
	assert.True(t, trend.Failed())
	assert.Equal(t, "100", trend.Thresholds["avg<100"].Threshold)
	assert.InDelta(t, 120.5, trend.Thresholds["avg<100"].Value, 0.0001)

	assert.Equal(t, KindRate, doc.Metrics["checks"].Type)
	assert.Equal(t, KindCounter, doc.Metrics["data_received"].Type)
	assert.Equal(t, KindGauge, doc.Metrics["vus"].Type)
	assert.Nil(t, doc.Metrics["vus"].Thresholds)

	assert.Equal(t, []string{"avg", "p(95)"}, doc.Options.SummaryTrendStats)
	require.NotNil(t, doc.State)
	assert.InDelta(t, 30012.5, doc.State.TestRunDurationMs, 0.0001)
}

func TestLoader_DecodeRejectsInvalid(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected error
	}{
		{
			name:     "missing root group",
			input:    `{"metrics": {}}`,
			expected: errRootGroupRequired,
		},
		{
			name:     "checks not an array",
			input:    `{"root_group": {"groups": []}, "metrics": {}}`,
			expected: errChecksRequired,
		},
		{
			name:     "groups missing",
			input:    `{"root_group": {"checks": []}, "metrics": {}}`,
			expected: errGroupsRequired,
		},
		{
			name:     "check without name",
			input:    `{"root_group": {"groups": [], "checks": [{"passes": 1}]}, "metrics": {}}`,
			expected: errCheckNameRequired,
		},
		{
			name:     "missing metrics",
			input:    `{"root_group": {"groups": [], "checks": []}}`,
			expected: errMetricsRequired,
		},
		{
			name:     "unknown metric type",
			input:    `{"root_group": {"groups": [], "checks": []}, "metrics": {"x": {"type": "histogram", "values": {}}}}`,
			expected: ErrInvalidMetricType,
		},
		{
			name:     "missing metric type",
			input:    `{"root_group": {"groups": [], "checks": []}, "metrics": {"x": {"contains": "time", "values": {}}}}`,
			expected: errMetricTypeRequired,
		},
		{
			name:     "missing values",
			input:    `{"root_group": {"groups": [], "checks": []}, "metrics": {"x": {"type": "counter"}}}`,
			expected: errMetricValues,
		},
	}

	loader := NewLoader(logrus.New())

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := loader.Decode(strings.NewReader(tt.input))
			require.ErrorIs(t, err, tt.expected)
		})
	}
}

func TestLoader_Load(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "summary.json")
	require.NoError(t, os.WriteFile(path, []byte(validDocument), 0o600))

	loader := NewLoader(logrus.New())

	doc, err := loader.Load(path)
	require.NoError(t, err)
	assert.Len(t, doc.Metrics, 4)

	_, err = loader.Load(filepath.Join(dir, "missing.json"))
	require.ErrorIs(t, err, os.ErrNotExist)

	broken := filepath.Join(dir, "broken.json")
	require.NoError(t, os.WriteFile(broken, []byte(`{"root_group":`), 0o600))

	_, err = loader.Load(broken)
	require.Error(t, err)
	assert.Contains(t, err.Error(), broken)
}
