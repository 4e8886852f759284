package application

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/hermeslabs/hermes-rebrand/internal/domain"
	"github.com/hermeslabs/hermes-rebrand/internal/domain/scope"
)

// ScopeOptions configures the package-scope migration commands.
type ScopeOptions struct {
	Root    string
	Include []string
	Legacy  string
	Target  string
	// ManifestPath is written by Scan when set; relative paths resolve under Root.
	ManifestPath string
	Write        bool
	// Engineer is recorded in package migration notes. Defaults to the git user name.
	Engineer string
}

func (o ScopeOptions) scopes() (string, string) {
	legacy, target := o.Legacy, o.Target
	if legacy == "" {
		legacy = domain.LegacyScope
	}
	if target == "" {
		target = domain.TargetScope
	}
	return legacy, target
}

// ScopeService finds and migrates references to the legacy npm scope.
type ScopeService struct {
	files     domain.FileCollector
	packages  domain.PackageFinder
	store     domain.FileStore
	manifests domain.ManifestStore
	git       domain.WorktreeInspector
	log       logrus.FieldLogger
	now       func() time.Time
}

func NewScopeService(
	files domain.FileCollector,
	packages domain.PackageFinder,
	store domain.FileStore,
	manifests domain.ManifestStore,
	git domain.WorktreeInspector,
	log logrus.FieldLogger,
) *ScopeService {
	return &ScopeService{
		files:     files,
		packages:  packages,
		store:     store,
		manifests: manifests,
		git:       git,
		log:       log,
		now:       time.Now,
	}
}

// WithClock replaces the time source used for manifest and note timestamps.
func (s *ScopeService) WithClock(now func() time.Time) *ScopeService {
	s.now = now
	return s
}

// Scan lists the candidate files under the search directories that mention
// the legacy scope, sorted by relative path.
func (s *ScopeService) Scan(opts ScopeOptions) (domain.ScopeManifest, error) {
	legacy, target := opts.scopes()
	root, err := filepath.Abs(opts.Root)
	if err != nil {
		return domain.ScopeManifest{}, fmt.Errorf("resolving root: %w", err)
	}

	m := domain.ScopeManifest{
		GeneratedAt: s.now().UTC(),
		LegacyScope: legacy,
		TargetScope: target,
		Matches:     []domain.ScopeMatch{},
	}

	seen := make(map[string]bool)
	for _, dir := range searchDirs(opts.Include) {
		base := filepath.Join(root, dir)
		if info, err := os.Stat(base); err != nil || !info.IsDir() {
			continue
		}

		paths, err := s.files.Collect(base, nil, false)
		if err != nil {
			return m, fmt.Errorf("scanning %s: %w", dir, err)
		}
		for _, path := range paths {
			if seen[path] || !scope.IsCandidate(path) {
				continue
			}
			seen[path] = true

			data, err := s.store.Read(path)
			if err != nil {
				return m, fmt.Errorf("reading %s: %w", path, err)
			}
			if !strings.Contains(string(data), legacy) {
				continue
			}

			rel, err := filepath.Rel(root, path)
			if err != nil {
				rel = path
			}
			rel = filepath.ToSlash(rel)
			m.Matches = append(m.Matches, domain.ScopeMatch{
				AbsolutePath: path,
				Category:     scope.Classify(rel),
				RelativePath: rel,
			})
		}
	}

	slices.SortFunc(m.Matches, func(a, b domain.ScopeMatch) int {
		return strings.Compare(a.RelativePath, b.RelativePath)
	})
	s.log.Infof("[scope] %d files reference %s", len(m.Matches), legacy)

	if opts.ManifestPath != "" {
		path := opts.ManifestPath
		if !filepath.IsAbs(path) {
			path = filepath.Join(root, path)
		}
		if err := s.manifests.Save(path, m); err != nil {
			return m, fmt.Errorf("writing scope manifest: %w", err)
		}
		s.log.WithField("status", "success").Infof("[scope] manifest written to %s", path)
	}
	return m, nil
}

// Migrate rewrites the files found by Scan. Typescript files have their module
// specifiers rewritten; other files get a plain text replacement. Nothing is
// written unless opts.Write is set. The pre-migration manifest is saved when
// opts.ManifestPath is set.
func (s *ScopeService) Migrate(opts ScopeOptions) (domain.ScopeMigrationReport, error) {
	legacy, target := opts.scopes()
	report := domain.ScopeMigrationReport{Write: opts.Write, TargetScope: target, Changes: []domain.ScopeFileChange{}}

	m, err := s.Scan(opts)
	if err != nil {
		return report, err
	}

	for _, match := range m.Matches {
		data, err := s.store.Read(match.AbsolutePath)
		if err != nil {
			return report, fmt.Errorf("reading %s: %w", match.RelativePath, err)
		}

		var (
			next    string
			actions []string
		)
		if match.Category == domain.ScopeTypescript {
			next, actions = scope.RewriteSpecifiers(string(data), legacy, target)
		} else if out, ok := scope.ReplaceText(string(data), legacy, target); ok {
			next, actions = out, []string{scope.TextAction}
		}
		if len(actions) == 0 {
			continue
		}

		if opts.Write {
			if err := s.store.Write(match.AbsolutePath, []byte(next)); err != nil {
				return report, fmt.Errorf("writing %s: %w", match.RelativePath, err)
			}
			s.log.Debugf("[scope] updated %s", match.RelativePath)
		} else {
			s.log.Infof("[dry-run] would update %s", match.RelativePath)
		}
		report.Changes = append(report.Changes, domain.ScopeFileChange{File: match.RelativePath, Actions: actions})
	}

	if opts.Write {
		s.log.WithField("status", "success").Infof("[scope] updated %d files", len(report.Changes))
	}
	return report, nil
}

// MigratePackages rewrites the legacy scope in the root package.json and in
// every package manifest under packages/.
func (s *ScopeService) MigratePackages(opts ScopeOptions) (domain.PackageMigrationReport, error) {
	legacy, target := opts.scopes()
	report := domain.PackageMigrationReport{Write: opts.Write, Updated: []string{}, Unchanged: []string{}}

	root, err := filepath.Abs(opts.Root)
	if err != nil {
		return report, fmt.Errorf("resolving root: %w", err)
	}
	manifests, err := s.packages.PackageManifests(root)
	if err != nil {
		return report, fmt.Errorf("finding package manifests: %w", err)
	}

	notes := domain.MigrationNotes{
		APICompatibility: scope.APICompatibility,
		Engineer:         s.engineer(root, opts.Engineer),
		MigratedAt:       s.now().UTC().Format(time.RFC3339),
	}

	for _, path := range manifests {
		rel, err := filepath.Rel(root, path)
		if err != nil {
			rel = path
		}
		rel = filepath.ToSlash(rel)

		data, err := s.store.Read(path)
		if err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return report, fmt.Errorf("reading %s: %w", rel, err)
		}

		out, changed, err := scope.MigratePackageManifest(data, legacy, target, notes)
		if err != nil {
			return report, fmt.Errorf("%s: %w", rel, err)
		}
		if !changed {
			report.Unchanged = append(report.Unchanged, rel)
			continue
		}

		if opts.Write {
			if err := s.store.Write(path, out); err != nil {
				return report, fmt.Errorf("writing %s: %w", rel, err)
			}
		}
		report.Updated = append(report.Updated, rel)
	}

	s.log.Infof("[scope] %d package manifests updated, %d unchanged", len(report.Updated), len(report.Unchanged))
	return report, nil
}

func (s *ScopeService) engineer(root, explicit string) string {
	if explicit != "" {
		return explicit
	}
	if s.git.IsGitRepo(root) {
		if name, err := s.git.UserName(root); err == nil && name != "" {
			return name
		}
	}
	return "unknown"
}

func searchDirs(include []string) []string {
	dirs := slices.Clone(scope.SearchDirs)
	for _, d := range include {
		d = filepath.Clean(d)
		if !slices.Contains(dirs, d) {
			dirs = append(dirs, d)
		}
	}
	return dirs
}
