// Package summary defines the load-test result document consumed by the report
// renderers, and loads it from the JSON written by a k6 handleSummary hook.
package summary

import (
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
)

// ErrInvalidMetricType indicates a metric type outside the known set.
var ErrInvalidMetricType = errors.New("invalid metric type")

// Kind is the statistical shape of a metric.
type Kind int

// Possible values for Kind. The zero value is not a valid kind.
const (
	KindCounter = Kind(iota + 1) // Monotonic count plus per-second rate.
	KindGauge                    // Last value plus observed min and max.
	KindRate                     // Ratio of non-zero samples.
	KindTrend                    // Distribution summarised by configurable statistics.
)

const (
	kindCounterString = "counter"
	kindGaugeString   = "gauge"
	kindRateString    = "rate"
	kindTrendString   = "trend"
)

// MarshalText serializes a Kind as its k6 name.
func (k Kind) MarshalText() ([]byte, error) {
	switch k {
	case KindCounter:
		return []byte(kindCounterString), nil
	case KindGauge:
		return []byte(kindGaugeString), nil
	case KindRate:
		return []byte(kindRateString), nil
	case KindTrend:
		return []byte(kindTrendString), nil
	default:
		return nil, ErrInvalidMetricType
	}
}

// UnmarshalText deserializes a Kind from its k6 name.
func (k *Kind) UnmarshalText(data []byte) error {
	switch string(data) {
	case kindCounterString:
		*k = KindCounter
	case kindGaugeString:
		*k = KindGauge
	case kindRateString:
		*k = KindRate
	case kindTrendString:
		*k = KindTrend
	default:
		return fmt.Errorf("%w: %q", ErrInvalidMetricType, string(data))
	}

	return nil
}

func (k Kind) String() string {
	txt, err := k.MarshalText()
	if err != nil {
		return "[INVALID]"
	}

	return string(txt)
}

// Semantic hints at the unit of a metric's values.
type Semantic string

// Known semantics. Anything else is rendered as a plain number.
const (
	SemanticData Semantic = "data"
	SemanticTime Semantic = "time"
)

// Threshold is the externally evaluated outcome of one threshold expression.
type Threshold struct {
	OK        bool    `json:"ok"`
	Threshold string  `json:"-"`
	Value     float64 `json:"value"`
}

// UnmarshalJSON accepts the threshold expression either as a string or as a number.
func (t *Threshold) UnmarshalJSON(data []byte) error {
	var raw struct {
		OK        bool            `json:"ok"`
		Threshold json.RawMessage `json:"threshold"`
		Value     float64         `json:"value"`
	}

	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	t.OK = raw.OK
	t.Value = raw.Value
	t.Threshold = ""

	if len(raw.Threshold) == 0 || string(raw.Threshold) == "null" {
		return nil
	}

	var expr string
	if err := json.Unmarshal(raw.Threshold, &expr); err == nil {
		t.Threshold = expr

		return nil
	}

	var num float64
	if err := json.Unmarshal(raw.Threshold, &num); err != nil {
		return fmt.Errorf("threshold must be a string or a number: %w", err)
	}

	t.Threshold = strconv.FormatFloat(num, 'f', -1, 64)

	return nil
}

// Metric is a named measurement of the test run. Thresholds is nil when the
// metric has no thresholds attached.
type Metric struct {
	Type       Kind                 `json:"type"`
	Contains   Semantic             `json:"contains"`
	Values     map[string]float64   `json:"values"`
	Thresholds map[string]Threshold `json:"thresholds,omitempty"`
}

// Value returns the named value, or 0 when the metric does not carry it.
func (m *Metric) Value(key string) float64 {
	return m.Values[key]
}

// HasValue reports whether the metric carries the named value.
func (m *Metric) HasValue(key string) bool {
	_, ok := m.Values[key]

	return ok
}

// Failed reports whether any threshold of the metric was crossed.
func (m *Metric) Failed() bool {
	for _, t := range m.Thresholds {
		if !t.OK {
			return true
		}
	}

	return false
}

// Check is a named pass/fail assertion and its outcome counts.
type Check struct {
	Name   string `json:"name"`
	Path   string `json:"path"`
	ID     string `json:"id"`
	Passes uint64 `json:"passes"`
	Fails  uint64 `json:"fails"`
}

// Group is a named container of checks and nested groups. The root group of a
// document usually has an empty name.
type Group struct {
	Name   string   `json:"name"`
	Path   string   `json:"path,omitempty"`
	ID     string   `json:"id,omitempty"`
	Groups []*Group `json:"groups"`
	Checks []*Check `json:"checks"`
}

// State carries run-level facts k6 records next to the summary.
type State struct {
	TestRunDurationMs float64 `json:"testRunDurationMs"`
	IsStdOutTTY       bool    `json:"isStdOutTTY"`
	IsStdErrTTY       bool    `json:"isStdErrTTY"`
}

// Summary is a complete load-test result document. It is never mutated by the
// renderers.
type Summary struct {
	RootGroup *Group             `json:"root_group"`
	Options   Options            `json:"options"`
	State     *State             `json:"state,omitempty"`
	Metrics   map[string]*Metric `json:"metrics"`
}
