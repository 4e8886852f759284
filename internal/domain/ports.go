package domain

import (
	"context"
	"io"
	"iter"
)

// FileCollector enumerates candidate files under a workspace root.
type FileCollector interface {
	// Files yields each candidate file. A walk error is yielded with the
	// path that could not be read and the walk goes on.
	Files(root string, ignore []string, respectGitignore bool) iter.Seq2[string, error]
	// Collect stops at the first walk error.
	Collect(root string, ignore []string, respectGitignore bool) ([]string, error)
}

// FileStore reads and persists workspace files.
type FileStore interface {
	Read(path string) ([]byte, error)
	// Write replaces path, creating parent directories and keeping an existing file mode.
	Write(path string, data []byte) error
}

// ConfigLoader loads project configuration from a workspace directory.
type ConfigLoader interface {
	Load(workspace string) (ProjectConfig, error)
}

// MetadataLoader decodes a brand metadata override file.
type MetadataLoader interface {
	Load(path string) (*BrandOverrides, error)
}

// WorktreeInspector answers git questions about a workspace.
type WorktreeInspector interface {
	IsGitRepo(path string) bool
	IsClean(path string) (bool, error)
	CommitHash(path string) (string, error)
	UserName(path string) (string, error)
}

// RegressionRunner executes the post-run regression command.
type RegressionRunner interface {
	Run(ctx context.Context, dir string, command []string, stdout, stderr io.Writer) error
}

// RunHistory persists run summaries.
type RunHistory interface {
	Save(workspace string, entry RunEntry) error
	Load(workspace string) ([]RunEntry, error)
}

// ManifestStore persists scope manifests.
type ManifestStore interface {
	Save(path string, manifest ScopeManifest) error
}

// PackageFinder locates workspace package manifests.
type PackageFinder interface {
	PackageManifests(root string) ([]string, error)
}
