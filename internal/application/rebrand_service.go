package application

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/sirupsen/logrus"
	"golang.org/x/sync/errgroup"

	"github.com/hermeslabs/hermes-rebrand/internal/domain"
	"github.com/hermeslabs/hermes-rebrand/internal/domain/rewrite"
)

// RebrandOptions configures one rewrite run.
type RebrandOptions struct {
	Workspace string
	Mode      domain.Mode
	DryRun    bool
	// Overrides is the command-line layer, applied after the metadata file.
	Overrides *domain.BrandOverrides
	// MetadataFile replaces metadata_file from the project config when set.
	MetadataFile string
	Ignore       []string
	// Concurrency replaces the project config value when > 0.
	Concurrency int
	// RegressionCommand replaces the project config value when set.
	RegressionCommand []string
	RecordHistory     bool
	// Stdout and Stderr receive the regression command output.
	Stdout io.Writer
	Stderr io.Writer
}

// RebrandResult is returned even when the run fails after files were processed.
type RebrandResult struct {
	Workspace string
	Brand     domain.BrandMetadata
	Mode      domain.Mode
	Summary   domain.RebrandSummary
	RuleIDs   []string
	Elapsed   time.Duration
}

// RebrandService orchestrates a rewrite run:
// resolve brand → collect → classify → apply rules → persist → summarize → regression.
type RebrandService struct {
	files    domain.FileCollector
	store    domain.FileStore
	config   domain.ConfigLoader
	metadata domain.MetadataLoader
	git      domain.WorktreeInspector
	runner   domain.RegressionRunner
	history  domain.RunHistory
	log      logrus.FieldLogger
	rules    rewrite.RuleSet
	now      func() time.Time
}

func NewRebrandService(
	files domain.FileCollector,
	store domain.FileStore,
	config domain.ConfigLoader,
	metadata domain.MetadataLoader,
	git domain.WorktreeInspector,
	runner domain.RegressionRunner,
	history domain.RunHistory,
	log logrus.FieldLogger,
) *RebrandService {
	return &RebrandService{
		files:    files,
		store:    store,
		config:   config,
		metadata: metadata,
		git:      git,
		runner:   runner,
		history:  history,
		log:      log,
		rules:    rewrite.DefaultRules(),
		now:      time.Now,
	}
}

// WithClock replaces the time source used for elapsed time and history entries.
func (s *RebrandService) WithClock(now func() time.Time) *RebrandService {
	s.now = now
	return s
}

// Rules returns the rule set the service applies.
func (s *RebrandService) Rules() rewrite.RuleSet {
	return s.rules
}

// ResolveBrand loads the project config and layers the metadata file and
// command-line overrides over the default brand. A relative metadata_file
// from the project config resolves under workspace.
func (s *RebrandService) ResolveBrand(workspace, metadataFile string, overrides *domain.BrandOverrides) (domain.BrandMetadata, domain.ProjectConfig, error) {
	cfg, err := s.config.Load(workspace)
	if err != nil {
		return domain.BrandMetadata{}, cfg, fmt.Errorf("loading config: %w", err)
	}

	if metadataFile == "" && cfg.MetadataFile != "" {
		metadataFile = cfg.MetadataFile
		if !filepath.IsAbs(metadataFile) {
			metadataFile = filepath.Join(workspace, metadataFile)
		}
	}
	var fromFile *domain.BrandOverrides
	if metadataFile != "" {
		fromFile, err = s.metadata.Load(metadataFile)
		if err != nil {
			return domain.BrandMetadata{}, cfg, fmt.Errorf("loading metadata: %w", err)
		}
		s.log.Debugf("[rebrand] loaded brand metadata from %s", metadataFile)
	}

	brand, err := domain.ResolveBrand(domain.DefaultBrand(), fromFile, overrides)
	if err != nil {
		return domain.BrandMetadata{}, cfg, err
	}
	return brand, cfg, nil
}

// Run rewrites the workspace. Per-file failures do not stop the run; they
// are counted and reported with domain.ErrFileFailures at the end.
func (s *RebrandService) Run(ctx context.Context, opts RebrandOptions) (*RebrandResult, error) {
	start := s.now()

	mode := opts.Mode
	if mode == "" {
		mode = domain.ModeApply
	}
	if _, err := domain.ParseMode(string(mode)); err != nil {
		return nil, err
	}

	workspace, err := filepath.Abs(opts.Workspace)
	if err != nil {
		return nil, fmt.Errorf("resolving workspace: %w", err)
	}
	if info, err := os.Stat(workspace); err != nil || !info.IsDir() {
		return nil, fmt.Errorf("%w: %s", domain.ErrWorkspaceNotFound, workspace)
	}

	brand, cfg, err := s.ResolveBrand(workspace, opts.MetadataFile, opts.Overrides)
	if err != nil {
		return nil, err
	}

	dryRun := opts.DryRun || mode.ForcesDryRun()
	s.log.Infof("[rebrand] rebranding %s to %s (%s)", workspace, brand.Name, mode)

	if !dryRun && s.git.IsGitRepo(workspace) {
		if clean, err := s.git.IsClean(workspace); err != nil {
			s.log.Debugf("[rebrand] could not read git status: %v", err)
		} else if !clean {
			s.log.Warnf("[rebrand] work tree has uncommitted changes; review the rewrite diff separately")
		}
	}

	ignore := append(append([]string{}, cfg.ExcludePaths...), opts.Ignore...)
	var entries []walkEntry
	for path, err := range s.files.Files(workspace, ignore, cfg.RespectGitignore) {
		entries = append(entries, walkEntry{path: path, err: err})
	}

	concurrency := opts.Concurrency
	if concurrency <= 0 {
		concurrency = cfg.Concurrency
	}
	if concurrency <= 0 {
		concurrency = 1
	}

	results := make([]domain.FileResult, len(entries))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)
	for i, e := range entries {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			if e.err != nil {
				results[i] = s.walkFailure(workspace, e.path, e.err)
				return nil
			}
			results[i] = s.processFile(workspace, e.path, brand, dryRun)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	summary := domain.Summarize(dryRun, results)
	result := &RebrandResult{
		Workspace: workspace,
		Brand:     brand,
		Mode:      mode,
		Summary:   summary,
		RuleIDs:   s.rules.IDs(),
	}
	s.logSummary(summary)

	if opts.RecordHistory {
		s.recordHistory(workspace, mode, summary, start)
	}

	result.Elapsed = s.now().Sub(start)
	s.log.Infof("[rebrand] processed %d files in %.2fs", summary.FilesScanned, result.Elapsed.Seconds())

	if summary.FilesFailed > 0 {
		return result, fmt.Errorf("%w: %d of %d files", domain.ErrFileFailures, summary.FilesFailed, summary.FilesScanned)
	}

	if mode == domain.ModeValidate && summary.FilesModified > 0 {
		return result, fmt.Errorf("%w: %d files still carry legacy brand text", domain.ErrResidualLegacy, summary.FilesModified)
	}

	if mode.RunsRegression() {
		command := opts.RegressionCommand
		if len(command) == 0 {
			command = cfg.RegressionCommand
		}
		if err := s.runRegression(ctx, workspace, command, opts.Stdout, opts.Stderr); err != nil {
			return result, err
		}
	}

	return result, nil
}

// walkEntry is a file yielded by the collector, or the walk error for a path
// that could not be listed.
type walkEntry struct {
	path string
	err  error
}

func (s *RebrandService) walkFailure(workspace, path string, err error) domain.FileResult {
	rel := relPath(workspace, path)
	s.log.WithError(err).Errorf("[rebrand] failed to list %s", rel)
	return domain.FileResult{Path: rel, Err: err}
}

func relPath(workspace, path string) string {
	rel, err := filepath.Rel(workspace, path)
	if err != nil {
		rel = path
	}
	return filepath.ToSlash(rel)
}

func (s *RebrandService) processFile(workspace, path string, brand domain.BrandMetadata, dryRun bool) domain.FileResult {
	rel := relPath(workspace, path)
	res := domain.FileResult{Path: rel}

	if reason := domain.Classify(path); reason != domain.SkipNone {
		res.Skipped = reason
		return res
	}

	data, err := s.store.Read(path)
	if err != nil {
		s.log.WithError(err).Errorf("[rebrand] failed to read %s", rel)
		res.Err = err
		return res
	}
	if domain.IsBinary(data) {
		s.log.Debugf("[rebrand] skipping binary file %s", rel)
		res.Skipped = domain.SkipBinary
		return res
	}

	out := rewrite.Apply(string(data), brand, s.rules)
	if !out.Modified {
		return res
	}

	if dryRun {
		s.log.Infof("[dry-run] would update %s", rel)
	} else {
		if err := s.store.Write(path, []byte(out.Text)); err != nil {
			s.log.WithError(err).Errorf("[rebrand] failed to write %s", rel)
			res.Err = err
			return res
		}
		s.log.Debugf("[rebrand] updated %s", rel)
	}

	res.Modified = true
	res.Counts = out.Counts
	return res
}

func (s *RebrandService) logSummary(summary domain.RebrandSummary) {
	switch {
	case summary.FilesModified == 0:
		s.log.Infof("[rebrand] no files required updates for the provided mapping")
	case summary.DryRun:
		s.log.Infof("[rebrand] dry run complete: %d files would be updated", summary.FilesModified)
	default:
		s.log.WithField("status", "success").
			Infof("[rebrand] updated %d files across %d replacements", summary.FilesModified, summary.Total())
	}

	if summary.FilesModified > 0 {
		for _, rc := range summary.Breakdown(s.rules.IDs()) {
			if rc.Count > 0 {
				s.log.Debugf("[rebrand]   %s: %d", rc.RuleID, rc.Count)
			}
		}
	}
}

func (s *RebrandService) recordHistory(workspace string, mode domain.Mode, summary domain.RebrandSummary, at time.Time) {
	entry := domain.RunEntry{
		Timestamp: at.UTC(),
		Workspace: workspace,
		Mode:      mode,
		Summary:   summary,
	}
	if s.git.IsGitRepo(workspace) {
		if hash, err := s.git.CommitHash(workspace); err == nil {
			entry.Commit = hash
		}
	}
	if err := s.history.Save(workspace, entry); err != nil {
		s.log.WithError(err).Warnf("[rebrand] could not record run history")
	}
}

func (s *RebrandService) runRegression(ctx context.Context, workspace string, command []string, stdout, stderr io.Writer) error {
	if stdout == nil {
		stdout = io.Discard
	}
	if stderr == nil {
		stderr = io.Discard
	}

	s.log.Infof("[regression] running regression suite in %s", workspace)
	if err := s.runner.Run(ctx, workspace, command, stdout, stderr); err != nil {
		if errors.Is(err, domain.ErrRegressionFailed) {
			return err
		}
		return fmt.Errorf("%w: %v", domain.ErrRegressionFailed, err)
	}
	s.log.WithField("status", "success").Infof("[regression] regression suite passed")
	return nil
}

// History returns the recorded runs for a workspace.
func (s *RebrandService) History(workspace string) ([]domain.RunEntry, error) {
	abs, err := filepath.Abs(workspace)
	if err != nil {
		return nil, err
	}
	return s.history.Load(abs)
}
