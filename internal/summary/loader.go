package summary

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"
)

var (
	errRootGroupRequired  = errors.New("root_group is required")
	errGroupsRequired     = errors.New("root_group.groups must be an array")
	errChecksRequired     = errors.New("root_group.checks must be an array")
	errCheckNameRequired  = errors.New("check name is required")
	errMetricsRequired    = errors.New("metrics must be an object")
	errMetricRequired     = errors.New("metric must be an object")
	errMetricTypeRequired = errors.New("metric type is required")
	errMetricValues       = errors.New("metric values must be an object")
)

// Loader reads result documents.
type Loader interface {
	Load(path string) (*Summary, error)
	Decode(r io.Reader) (*Summary, error)
}

type loader struct {
	log logrus.FieldLogger
}

// NewLoader creates a new result document loader.
func NewLoader(log logrus.FieldLogger) Loader {
	return &loader{
		log: log.WithField("component", "summary_loader"),
	}
}

// Load reads and validates the document stored at path.
func (l *loader) Load(path string) (*Summary, error) {
	l.log.WithField("path", path).Debug("loading result document")

	f, err := os.Open(path) //nolint:gosec // path is chosen by the operator
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	doc, err := l.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("loading %s: %w", path, err)
	}

	return doc, nil
}

// Decode parses and validates a document from r.
func (l *loader) Decode(r io.Reader) (*Summary, error) {
	var doc Summary
	if err := json.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("decoding result document: %w", err)
	}

	if err := Validate(&doc); err != nil {
		return nil, fmt.Errorf("validating result document: %w", err)
	}

	l.log.WithFields(logrus.Fields{
		"metrics": len(doc.Metrics),
		"checks":  len(doc.RootGroup.Checks),
		"groups":  len(doc.RootGroup.Groups),
	}).Debug("decoded result document")

	return &doc, nil
}

// Validate checks the structural guarantees the renderers rely on.
func Validate(doc *Summary) error {
	if doc.RootGroup == nil {
		return errRootGroupRequired
	}

	if doc.RootGroup.Groups == nil {
		return errGroupsRequired
	}

	if doc.RootGroup.Checks == nil {
		return errChecksRequired
	}

	for i, check := range doc.RootGroup.Checks {
		if check == nil || check.Name == "" {
			return fmt.Errorf("check %d: %w", i, errCheckNameRequired)
		}
	}

	if doc.Metrics == nil {
		return errMetricsRequired
	}

	for name, metric := range doc.Metrics {
		if metric == nil {
			return fmt.Errorf("metric %s: %w", name, errMetricRequired)
		}

		if metric.Type == 0 {
			return fmt.Errorf("metric %s: %w", name, errMetricTypeRequired)
		}

		if metric.Values == nil {
			return fmt.Errorf("metric %s: %w", name, errMetricValues)
		}
	}

	return nil
}
