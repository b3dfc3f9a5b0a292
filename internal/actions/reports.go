package actions

import (
	"context"
	"fmt"
	"time"

	"github.com/ethpandaops/loadreport/internal/config"
	"github.com/ethpandaops/loadreport/internal/inputs"
	"github.com/ethpandaops/loadreport/internal/output"
	"github.com/ethpandaops/loadreport/internal/report"
	"github.com/ethpandaops/loadreport/internal/summary"
	"github.com/sirupsen/logrus"
)

// Render loads the document at path and renders it in format f.
func Render(log logrus.FieldLogger, path string, f report.Format, caller *summary.Options) (string, error) {
	doc, err := summary.NewLoader(log).Load(path)
	if err != nil {
		return "", err
	}

	return report.NewGenerator(log).Generate(doc, f, caller)
}

// Scan validates the configured inputs directory and prints what it found.
func Scan(ctx context.Context, log logrus.FieldLogger, cfg *config.Config, out output.Formatter) ([]*inputs.Folder, error) {
	out.PrintPhase("Scanning " + cfg.InputsDir)

	start := time.Now()
	scanner := inputs.NewScanner(log, summary.NewLoader(log), cfg.Workers)

	folders, err := scanner.Scan(ctx, cfg.InputsDir, cfg.K6Dir)
	if err != nil {
		out.PrintError("Scan failed", err)

		return nil, fmt.Errorf("failed to scan inputs: %w", err)
	}

	out.PrintProgress(fmt.Sprintf("Found %d folders", len(folders)), time.Since(start))
	out.PrintScan(folders)

	return folders, nil
}

// WriteReports scans the inputs directory and writes every valid document in
// each of formats to the configured outputs directory.
func WriteReports(
	ctx context.Context,
	log logrus.FieldLogger,
	cfg *config.Config,
	out output.Formatter,
	formats []report.Format,
	caller *summary.Options,
) ([]output.Artifact, error) {
	folders, err := Scan(ctx, log, cfg, out)
	if err != nil {
		return nil, err
	}

	out.PrintPhase("Writing reports to " + cfg.OutputsDir)

	var (
		start  = time.Now()
		writer = output.NewWriter(log, summary.NewLoader(log), report.NewGenerator(log), cfg.Workers)
	)

	artifacts, err := writer.Write(ctx, folders, cfg.OutputsDir, formats, caller)
	if err != nil {
		out.PrintError("Writing reports failed", err)

		return nil, fmt.Errorf("failed to write reports: %w", err)
	}

	out.PrintArtifacts(artifacts, cfg.OutputsDir)
	out.PrintSuccess(fmt.Sprintf("Wrote %d reports in %s", len(artifacts), time.Since(start).Round(time.Millisecond)))

	return artifacts, nil
}

// Documents lists every valid document path found by a scan.
func Documents(folders []*inputs.Folder) []string {
	paths := make([]string, 0)
	for _, folder := range folders {
		for _, file := range folder.Documents {
			paths = append(paths, file.Path)
		}
	}

	return paths
}
