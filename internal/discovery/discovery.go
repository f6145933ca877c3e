package discovery

import (
	"context"
	"path/filepath"
	"slices"

	"github.com/indaco/cordovagen/internal/core"
	"github.com/indaco/cordovagen/internal/logging"
	"github.com/sirupsen/logrus"
)

// Service runs the applicability gate and descriptor discovery.
type Service struct {
	fs  core.FileSystem
	log *logrus.Logger
}

// NewService creates a discovery Service. A nil logger discards output.
func NewService(fs core.FileSystem, log *logrus.Logger) *Service {
	return &Service{
		fs:  fs,
		log: logging.OrDiscard(log),
	}
}

// Discover runs the gate for root and, when applicable, finds descriptors.
func (s *Service) Discover(ctx context.Context, root string) (*Result, error) {
	layout := NewLayout(root)
	result := &Result{
		OutputPath:  layout.OutputPath(),
		Descriptors: make([]string, 0),
	}

	outcome, err := s.CheckApplicability(ctx, root)
	if err != nil {
		return nil, err
	}
	result.Outcome = outcome
	if outcome.Skipped() {
		return result, nil
	}

	descriptors, err := s.FindDescriptors(ctx, root)
	if err != nil {
		return nil, err
	}
	result.Descriptors = descriptors

	return result, nil
}

// CheckApplicability decides whether generation should run for root.
// Missing directories or markers are outcomes, not errors; only context
// cancellation is returned as an error.
func (s *Service) CheckApplicability(ctx context.Context, root string) (Outcome, error) {
	if err := ctx.Err(); err != nil {
		return Applicable, err
	}

	layout := NewLayout(root)

	info, err := s.fs.Stat(ctx, layout.OutputDir())
	if err != nil || !info.IsDir() {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return Applicable, ctxErr
		}
		s.log.WithField("dir", layout.OutputDir()).Debug("output directory not found")
		return SkippedNoTargetDir, nil
	}

	for _, dir := range layout.MarkerDirs() {
		found, err := s.hasEntry(ctx, dir, MarkerFile)
		if err != nil {
			return Applicable, err
		}
		if found {
			s.log.WithField("dir", dir).Debug("found cordova.js marker")
			return Applicable, nil
		}
	}

	s.log.Debug("cordova.js marker not found in any search root")
	return SkippedNotCordova, nil
}

// FindDescriptors lists descriptor files under the fixed search roots.
// Each root is scanned non-recursively; its matches are sorted by name so
// the order does not depend on the platform. A missing root contributes
// nothing.
func (s *Service) FindDescriptors(ctx context.Context, root string) ([]string, error) {
	found := make([]string, 0)

	for _, dir := range NewLayout(root).DescriptorDirs() {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		entries, err := s.fs.ReadDir(ctx, dir)
		if err != nil {
			if ctxErr := ctx.Err(); ctxErr != nil {
				return nil, ctxErr
			}
			s.log.WithField("dir", dir).Debugf("skipping descriptor root: %v", err)
			continue
		}

		var names []string
		for _, entry := range entries {
			if entry.IsDir() || !IsDescriptorName(entry.Name()) {
				continue
			}
			names = append(names, entry.Name())
		}
		slices.Sort(names)

		for _, name := range names {
			path := filepath.Join(dir, name)
			s.log.WithField("path", path).Debug("found plugin descriptor")
			found = append(found, path)
		}
	}

	return found, nil
}

// hasEntry reports whether dir contains an entry called name.
// An unreadable or missing dir simply has no entries.
func (s *Service) hasEntry(ctx context.Context, dir, name string) (bool, error) {
	entries, err := s.fs.ReadDir(ctx, dir)
	if err != nil {
		return false, ctx.Err()
	}
	for _, entry := range entries {
		if entry.Name() == name {
			return true, nil
		}
	}
	return false, nil
}
