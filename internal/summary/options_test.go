package summary

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestResolve_Defaults(t *testing.T) {
	s := Resolve(nil, nil)

	assert.Equal(t, " ", s.Indent)
	assert.True(t, s.EnableColors)
	assert.Empty(t, s.SummaryTimeUnit)
	assert.Equal(t, DefaultTrendStats, s.SummaryTrendStats)
	assert.Empty(t, s.Name)
}

func TestResolve_Precedence(t *testing.T) {
	doc := &Summary{Options: Options{
		Indent:            String("  "),
		SummaryTimeUnit:   String("ms"),
		SummaryTrendStats: []string{"avg"},
		Name:              String("document"),
	}}

	tests := []struct {
		name     string
		caller   *Options
		expected Settings
	}{
		{
			name:   "document over defaults",
			caller: nil,
			expected: Settings{
				Indent:            "  ",
				EnableColors:      true,
				SummaryTimeUnit:   "ms",
				SummaryTrendStats: []string{"avg"},
				Name:              "document",
			},
		},
		{
			name: "caller over document",
			caller: &Options{
				Indent:            String("\t"),
				EnableColors:      Bool(false),
				SummaryTimeUnit:   String("s"),
				SummaryTrendStats: []string{"p(99)", "max"},
				Name:              String("caller"),
			},
			expected: Settings{
				Indent:            "\t",
				EnableColors:      false,
				SummaryTimeUnit:   "s",
				SummaryTrendStats: []string{"p(99)", "max"},
				Name:              "caller",
			},
		},
		{
			name:   "explicitly empty trend stats",
			caller: &Options{SummaryTrendStats: []string{}},
			expected: Settings{
				Indent:            "  ",
				EnableColors:      true,
				SummaryTimeUnit:   "ms",
				SummaryTrendStats: []string{},
				Name:              "document",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Resolve(doc, tt.caller))
		})
	}
}

func TestResolve_NoColor(t *testing.T) {
	doc := &Summary{Options: Options{NoColor: Bool(true)}}

	assert.False(t, Resolve(doc, nil).EnableColors)
	assert.True(t, Resolve(doc, &Options{EnableColors: Bool(true)}).EnableColors)

	doc.Options.EnableColors = Bool(true)
	assert.True(t, Resolve(doc, nil).EnableColors, "explicit enableColors beats noColor")
}

func TestResolve_DoesNotAlias(t *testing.T) {
	caller := &Options{SummaryTrendStats: []string{"avg"}}

	s := Resolve(nil, caller)
	s.SummaryTrendStats[0] = "max"

	assert.Equal(t, []string{"avg"}, caller.SummaryTrendStats)
	assert.Equal(t, "avg", DefaultTrendStats[0])
}
