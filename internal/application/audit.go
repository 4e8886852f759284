package application

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/hermeslabs/hermes-rebrand/internal/domain"
	"github.com/hermeslabs/hermes-rebrand/internal/domain/rewrite"
)

// Audit scans the workspace for legacy brand literals without changing anything.
// It walks and classifies files exactly like Run.
func (s *RebrandService) Audit(workspace string, ignore []string) (rewrite.LegacyReport, error) {
	var report rewrite.LegacyReport

	abs, err := filepath.Abs(workspace)
	if err != nil {
		return report, fmt.Errorf("resolving workspace: %w", err)
	}
	if info, err := os.Stat(abs); err != nil || !info.IsDir() {
		return report, fmt.Errorf("%w: %s", domain.ErrWorkspaceNotFound, abs)
	}

	cfg, err := s.config.Load(abs)
	if err != nil {
		return report, fmt.Errorf("loading config: %w", err)
	}

	paths, err := s.files.Collect(abs, append(append([]string{}, cfg.ExcludePaths...), ignore...), cfg.RespectGitignore)
	if err != nil {
		return report, fmt.Errorf("collecting files: %w", err)
	}

	for _, path := range paths {
		if domain.Classify(path) != domain.SkipNone {
			continue
		}
		data, err := s.store.Read(path)
		if err != nil {
			return report, fmt.Errorf("reading %s: %w", path, err)
		}
		if domain.IsBinary(data) {
			continue
		}
		report.FilesScanned++

		hits := rewrite.FindLegacy(string(data))
		if len(hits) == 0 {
			continue
		}
		rel, err := filepath.Rel(abs, path)
		if err != nil {
			rel = path
		}
		report.Files = append(report.Files, rewrite.LegacyFile{Path: filepath.ToSlash(rel), Hits: hits})
	}

	if report.Clean() {
		s.log.WithField("status", "success").Infof("[audit] no legacy brand tokens in %d files", report.FilesScanned)
	} else {
		s.log.Warnf("[audit] %d legacy brand tokens remain in %d files", report.Total(), len(report.Files))
	}
	return report, nil
}
