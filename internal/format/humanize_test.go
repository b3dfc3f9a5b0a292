package format

import (
	"testing"

	"github.com/ethpandaops/loadreport/internal/summary"
	"github.com/stretchr/testify/assert"
)

func TestPercent(t *testing.T) {
	tests := []struct {
		name     string
		ratio    float64
		expected string
	}{
		{name: "exact", ratio: 0.9567, expected: "95.67%"},
		{name: "truncated not rounded", ratio: 0.95669999, expected: "95.66%"},
		{name: "full", ratio: 1, expected: "100.00%"},
		{name: "zero", ratio: 0, expected: "0.00%"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Percent(tt.ratio))
		})
	}
}

func TestBytes(t *testing.T) {
	tests := []struct {
		name     string
		bytes    float64
		expected string
	}{
		{name: "below ten", bytes: 5, expected: "5 B"},
		{name: "zero", bytes: 0, expected: "0 B"},
		{name: "plain bytes", bytes: 512, expected: "512 B"},
		{name: "kilobytes with decimal", bytes: 1500, expected: "1.5 kB"},
		{name: "whole megabyte", bytes: 1000000, expected: "1 MB"},
		{name: "large scaled value", bytes: 45300000, expected: "45 MB"},
		{name: "rounds half up", bytes: 2450, expected: "2.5 kB"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Bytes(tt.bytes))
		})
	}
}

func TestDuration(t *testing.T) {
	tests := []struct {
		name     string
		ms       float64
		unit     string
		expected string
	}{
		{name: "zero", ms: 0, expected: "0s"},
		{name: "nanoseconds", ms: 0.0005, expected: "500ns"},
		{name: "microseconds", ms: 0.25, expected: "250µs"},
		{name: "microseconds truncated", ms: 0.0123456, expected: "12.34µs"},
		{name: "milliseconds", ms: 123.456, expected: "123.45ms"},
		{name: "seconds", ms: 1500, expected: "1.5s"},
		{name: "minutes", ms: 65000, expected: "1m5s"},
		{name: "hours", ms: 3665000, expected: "1h1m5s"},
		{name: "exact minute", ms: 60000, expected: "1m0s"},
		{name: "fixed seconds", ms: 1500, unit: "s", expected: "1.50s"},
		{name: "fixed milliseconds", ms: 12.3456, unit: "ms", expected: "12.35ms"},
		{name: "fixed microseconds", ms: 1.5, unit: "us", expected: "1500.00µs"},
		{name: "unknown unit falls back", ms: 1500, unit: "m", expected: "1.5s"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Duration(tt.ms, tt.unit))
		})
	}
}

func TestNumber(t *testing.T) {
	assert.Equal(t, "42", Number(42))
	assert.Equal(t, "3.5", Number(3.5))
	assert.Equal(t, "0.333333", Number(1.0/3.0))
	assert.Equal(t, "100000000000000000000", Number(1e20))
	assert.Equal(t, "0", Number(0.0000001))
}

func TestValue(t *testing.T) {
	var (
		rate    = &summary.Metric{Type: summary.KindRate, Contains: summary.SemanticData}
		data    = &summary.Metric{Type: summary.KindCounter, Contains: summary.SemanticData}
		timed   = &summary.Metric{Type: summary.KindTrend, Contains: summary.SemanticTime}
		generic = &summary.Metric{Type: summary.KindGauge, Contains: "default"}
	)

	assert.Equal(t, "50.00%", Value(0.5, rate, ""), "rate wins over semantic")
	assert.Equal(t, "1.5 kB", Value(1500, data, ""))
	assert.Equal(t, "1.5s", Value(1500, timed, ""))
	assert.Equal(t, "1500.00ms", Value(1500, timed, "ms"))
	assert.Equal(t, "7.25", Value(7.25, generic, "s"))
}
