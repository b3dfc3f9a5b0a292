// Package inputs discovers load-test result documents laid out as one folder
// per scenario, validates them and extracts the endpoints each scenario hits.
package inputs

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/ethpandaops/loadreport/internal/summary"
	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"
)

const (
	documentExt = ".json"
	scriptExt   = ".js"
)

// File is a result document on disk.
type File struct {
	Name string
	Path string
}

// InvalidFile is a result document that failed to load.
type InvalidFile struct {
	File
	Err error
}

// Folder is one scenario: its valid and invalid result documents and the
// endpoints its k6 script calls.
type Folder struct {
	Name      string
	Documents []File
	Invalid   []InvalidFile
	Script    string
	Endpoints []string
}

// Scanner walks an inputs directory.
type Scanner interface {
	Scan(ctx context.Context, inputsDir, k6Dir string) ([]*Folder, error)
}

type scanner struct {
	log     logrus.FieldLogger
	loader  summary.Loader
	workers int
}

// NewScanner creates a new inputs scanner validating up to workers files at once.
func NewScanner(log logrus.FieldLogger, loader summary.Loader, workers int) Scanner {
	if workers < 1 {
		workers = 1
	}

	return &scanner{
		log:     log.WithField("component", "inputs_scanner"),
		loader:  loader,
		workers: workers,
	}
}

// Scan returns every scenario folder under inputsDir in name order. Invalid
// documents are recorded on their folder, never returned as an error.
func (s *scanner) Scan(ctx context.Context, inputsDir, k6Dir string) ([]*Folder, error) {
	entries, err := os.ReadDir(inputsDir)
	if err != nil {
		return nil, fmt.Errorf("reading inputs directory %s: %w", inputsDir, err)
	}

	folders := make([]*Folder, 0, len(entries))

	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}

		folder, err := s.scanFolder(ctx, filepath.Join(inputsDir, entry.Name()), entry.Name())
		if err != nil {
			return nil, err
		}

		if err := s.readScript(folder, k6Dir); err != nil {
			return nil, err
		}

		folders = append(folders, folder)
	}

	s.log.WithFields(logrus.Fields{
		"dir":     inputsDir,
		"folders": len(folders),
	}).Info("scanned inputs")

	return folders, nil
}

func (s *scanner) scanFolder(ctx context.Context, dir, name string) (*Folder, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("reading folder %s: %w", dir, err)
	}

	files := make([]File, 0, len(entries))
	for _, entry := range entries {
		if entry.Type().IsRegular() && strings.HasSuffix(entry.Name(), documentExt) {
			files = append(files, File{Name: entry.Name(), Path: filepath.Join(dir, entry.Name())})
		}
	}

	// One slot per file keeps results in directory order without locking.
	results := make([]error, len(files))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.workers)

	for i, file := range files {
		i, file := i, file

		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}

			if _, err := s.loader.Load(file.Path); err != nil {
				results[i] = err
			}

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("validating folder %s: %w", name, err)
	}

	folder := &Folder{Name: name}

	for i, file := range files {
		if results[i] != nil {
			s.log.WithError(results[i]).WithField("path", file.Path).Warn("invalid result document")
			folder.Invalid = append(folder.Invalid, InvalidFile{File: file, Err: results[i]})

			continue
		}

		folder.Documents = append(folder.Documents, file)
	}

	return folder, nil
}

func (s *scanner) readScript(folder *Folder, k6Dir string) error {
	if k6Dir == "" {
		return nil
	}

	path := filepath.Join(k6Dir, folder.Name+scriptExt)

	content, err := os.ReadFile(path) //nolint:gosec // path is built from the scanned inputs
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			s.log.WithField("folder", folder.Name).Warn("no k6 script found for folder")

			return nil
		}

		return fmt.Errorf("reading k6 script %s: %w", path, err)
	}

	folder.Script = path
	folder.Endpoints = ExtractEndpoints(string(content))

	return nil
}
