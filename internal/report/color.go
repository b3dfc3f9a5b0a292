// Package report renders result documents as a terminal text summary, a JUnit
// XML report and an HTML capture of the text summary.
package report

import (
	"github.com/fatih/color"
)

// ColorHelper decorates report text. When disabled every method returns its
// input unchanged.
type ColorHelper struct {
	enabled bool
}

// NewColorHelper creates a color helper. Unlike color.NoColor the choice is
// made per report, so it is independent of the process' terminal.
func NewColorHelper(enabled bool) *ColorHelper {
	return &ColorHelper{
		enabled: enabled,
	}
}

// Decorate wraps text in the SGR sequence for attrs.
func (c *ColorHelper) Decorate(text string, attrs ...color.Attribute) string {
	if !c.enabled || len(attrs) == 0 {
		return text
	}

	col := color.New(attrs...)
	col.EnableColor()

	return col.Sprint(text)
}

// Success returns green text
func (c *ColorHelper) Success(text string) string {
	return c.Decorate(text, color.FgGreen)
}

// Failure returns red text
func (c *ColorHelper) Failure(text string) string {
	return c.Decorate(text, color.FgRed)
}

// Value returns cyan text, used for metric values
func (c *ColorHelper) Value(text string) string {
	return c.Decorate(text, color.FgCyan)
}

// Muted returns faint text, used for labels and leaders
func (c *ColorHelper) Muted(text string) string {
	return c.Decorate(text, color.Faint)
}

// Bold returns bold text
func (c *ColorHelper) Bold(text string) string {
	return c.Decorate(text, color.Bold)
}

// Status returns text coloured by outcome.
func (c *ColorHelper) Status(text string, passed bool) string {
	if passed {
		return c.Success(text)
	}

	return c.Failure(text)
}

// Annotation returns faint cyan text, used for secondary metric values
func (c *ColorHelper) Annotation(text string) string {
	return c.Decorate(text, color.FgCyan, color.Faint)
}
