package summary

// DefaultTrendStats are the trend statistics shown when neither the document
// nor the caller chooses any.
var DefaultTrendStats = []string{"avg", "min", "med", "max", "p(90)", "p(95)"}

const (
	defaultIndent = " "
	// DefaultSuiteName names the JUnit test suite when no name is configured.
	DefaultSuiteName = "k6 thresholds"
)

// Options are rendering options as they appear in a document or in a caller
// override. Nil fields are unset and fall through to the next layer.
type Options struct {
	Indent            *string  `json:"indent,omitempty" yaml:"indent,omitempty"`
	EnableColors      *bool    `json:"enableColors,omitempty" yaml:"enableColors,omitempty"`
	NoColor           *bool    `json:"noColor,omitempty" yaml:"noColor,omitempty"`
	SummaryTimeUnit   *string  `json:"summaryTimeUnit,omitempty" yaml:"summaryTimeUnit,omitempty"`
	SummaryTrendStats []string `json:"summaryTrendStats,omitempty" yaml:"summaryTrendStats,omitempty"`
	Name              *string  `json:"name,omitempty" yaml:"name,omitempty"`
}

// Settings are fully resolved rendering options.
type Settings struct {
	Indent            string
	EnableColors      bool
	SummaryTimeUnit   string
	SummaryTrendStats []string
	Name              string
}

// DefaultSettings returns the settings used when nothing is overridden.
func DefaultSettings() Settings {
	stats := make([]string, len(DefaultTrendStats))
	copy(stats, DefaultTrendStats)

	return Settings{
		Indent:            defaultIndent,
		EnableColors:      true,
		SummaryTrendStats: stats,
	}
}

// apply overlays the set fields of o onto s.
func (s Settings) apply(o *Options) Settings {
	if o == nil {
		return s
	}

	if o.Indent != nil {
		s.Indent = *o.Indent
	}

	switch {
	case o.EnableColors != nil:
		s.EnableColors = *o.EnableColors
	case o.NoColor != nil && *o.NoColor:
		s.EnableColors = false
	}

	if o.SummaryTimeUnit != nil {
		s.SummaryTimeUnit = *o.SummaryTimeUnit
	}

	if o.SummaryTrendStats != nil {
		stats := make([]string, len(o.SummaryTrendStats))
		copy(stats, o.SummaryTrendStats)
		s.SummaryTrendStats = stats
	}

	if o.Name != nil {
		s.Name = *o.Name
	}

	return s
}

// Resolve merges defaults, the document's own options and the caller's
// overrides, in increasing order of precedence. Either argument may be nil.
func Resolve(doc *Summary, caller *Options) Settings {
	s := DefaultSettings()

	if doc != nil {
		s = s.apply(&doc.Options)
	}

	return s.apply(caller)
}

// String returns a pointer to v, for building Options literals.
func String(v string) *string {
	return &v
}

// Bool returns a pointer to v, for building Options literals.
func Bool(v bool) *bool {
	return &v
}
