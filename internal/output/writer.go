// Package output writes rendered reports to disk and prints progress and scan
// results to the terminal.
package output

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/ethpandaops/loadreport/internal/inputs"
	"github.com/ethpandaops/loadreport/internal/report"
	"github.com/ethpandaops/loadreport/internal/summary"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

const (
	dirPerm  = 0o755
	filePerm = 0o644
)

// Artifact is a report written to disk.
type Artifact struct {
	Folder string
	Source string
	Format report.Format
	Path   string
}

// Writer renders every valid scanned document to an outputs directory.
type Writer interface {
	Write(ctx context.Context, folders []*inputs.Folder, outputsDir string, formats []report.Format, caller *summary.Options) ([]Artifact, error)
}

type writer struct {
	log       logrus.FieldLogger
	loader    summary.Loader
	generator report.Generator
	workers   int
}

// NewWriter creates a new report writer rendering up to workers documents at once.
func NewWriter(log logrus.FieldLogger, loader summary.Loader, generator report.Generator, workers int) Writer {
	if workers < 1 {
		workers = 1
	}

	return &writer{
		log:       log.WithField("component", "report_writer"),
		loader:    loader,
		generator: generator,
		workers:   workers,
	}
}

// Write renders each document in each format to
// <outputsDir>/<folder>/<document name><extension>. Artifacts are returned in
// folder, document, format order.
func (w *writer) Write(
	ctx context.Context,
	folders []*inputs.Folder,
	outputsDir string,
	formats []report.Format,
	caller *summary.Options,
) ([]Artifact, error) {
	type job struct {
		folder string
		file   inputs.File
	}

	jobs := make([]job, 0)
	for _, folder := range folders {
		for _, file := range folder.Documents {
			jobs = append(jobs, job{folder: folder.Name, file: file})
		}
	}

	results := make([][]Artifact, len(jobs))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(w.workers)

	for i, j := range jobs {
		i, j := i, j

		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}

			artifacts, err := w.writeDocument(j.folder, j.file, filepath.Join(outputsDir, j.folder), formats, caller)
			if err != nil {
				return err
			}

			results[i] = artifacts

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	artifacts := make([]Artifact, 0, len(jobs)*len(formats))
	for _, r := range results {
		artifacts = append(artifacts, r...)
	}

	w.log.WithFields(logrus.Fields{
		"documents": len(jobs),
		"artifacts": len(artifacts),
		"dir":       outputsDir,
	}).Info("wrote reports")

	return artifacts, nil
}

func (w *writer) writeDocument(
	folder string,
	file inputs.File,
	dir string,
	formats []report.Format,
	caller *summary.Options,
) ([]Artifact, error) {
	doc, err := w.loader.Load(file.Path)
	if err != nil {
		return nil, err
	}

	if err := os.MkdirAll(dir, dirPerm); err != nil {
		return nil, fmt.Errorf("creating output directory %s: %w", dir, err)
	}

	base := strings.TrimSuffix(file.Name, filepath.Ext(file.Name))
	artifacts := make([]Artifact, 0, len(formats))

	for _, f := range formats {
		content, err := w.generator.Generate(doc, f, caller)
		if err != nil {
			return nil, fmt.Errorf("rendering %s as %s: %w", file.Path, f, err)
		}

		path := filepath.Join(dir, base+f.Extension())
		if err := WriteFile(path, content); err != nil {
			return nil, err
		}

		w.log.WithFields(logrus.Fields{
			"source": file.Path,
			"path":   path,
		}).Debug("wrote report")

		artifacts = append(artifacts, Artifact{
			Folder: folder,
			Source: file.Path,
			Format: f,
			Path:   path,
		})
	}

	return artifacts, nil
}

// WriteFile writes content to path, creating parent directories.
func WriteFile(path, content string) error {
	if err := os.MkdirAll(filepath.Dir(path), dirPerm); err != nil {
		return fmt.Errorf("creating directory for %s: %w", path, err)
	}

	if err := os.WriteFile(path, []byte(content), filePerm); err != nil { //nolint:gosec // reports are meant to be shared
		return fmt.Errorf("writing %s: %w", path, err)
	}

	return nil
}

// Compile-time interface compliance check
var _ Writer = (*writer)(nil)
