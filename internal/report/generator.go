package report

import (
	"errors"
	"fmt"

	"github.com/ethpandaops/loadreport/internal/summary"
	"github.com/sirupsen/logrus"
)

// Format selects a report rendering.
type Format string

const (
	// FormatText is the terminal summary.
	FormatText Format = "text"
	// FormatJUnit is the JUnit XML report of threshold outcomes.
	FormatJUnit Format = "junit"
	// FormatHTML is the HTML capture of the coloured summary.
	FormatHTML Format = "html"
)

// Formats lists every supported format.
var Formats = []Format{FormatText, FormatJUnit, FormatHTML}

// ErrUnknownFormat is returned for a format outside Formats.
var ErrUnknownFormat = errors.New("unknown report format")

// Extension returns the file extension used when a report is written to disk.
func (f Format) Extension() string {
	switch f {
	case FormatJUnit:
		return ".xml"
	case FormatHTML:
		return ".html"
	default:
		return ".txt"
	}
}

// ParseFormat validates a format name.
func ParseFormat(name string) (Format, error) {
	for _, f := range Formats {
		if string(f) == name {
			return f, nil
		}
	}

	return "", fmt.Errorf("%w: %q", ErrUnknownFormat, name)
}

// Generator renders result documents.
type Generator interface {
	Generate(doc *summary.Summary, f Format, caller *summary.Options) (string, error)
}

type generator struct {
	log logrus.FieldLogger
}

// NewGenerator creates a new report generator.
func NewGenerator(log logrus.FieldLogger) Generator {
	return &generator{
		log: log.WithField("component", "report_generator"),
	}
}

// Generate renders doc in format f.
func (g *generator) Generate(doc *summary.Summary, f Format, caller *summary.Options) (string, error) {
	g.log.WithFields(logrus.Fields{
		"format":  f,
		"metrics": len(doc.Metrics),
	}).Debug("generating report")

	switch f {
	case FormatText:
		return Text(doc, caller), nil
	case FormatJUnit:
		return JUnit(doc, caller), nil
	case FormatHTML:
		out, err := HTML(doc, caller)
		if err != nil {
			return "", fmt.Errorf("rendering html capture: %w", err)
		}

		return out, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, string(f))
	}
}

// Compile-time interface compliance check
var _ Generator = (*generator)(nil)
