package scanner

import (
	"fmt"
	"iter"
	"os"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/go-git/go-billy/v5/osfs"
	"github.com/go-git/go-git/v5/plumbing/format/gitignore"
)

var skipDirs = map[string]bool{
	"node_modules":    true,
	".git":            true,
	".next":           true,
	"dist":            true,
	"build":           true,
	".turbo":          true,
	".cache":          true,
	"coverage":        true,
	".hermes-rebrand": true,
}

// FileScanner implements domain.FileCollector by walking the filesystem.
type FileScanner struct{}

func New() *FileScanner {
	return &FileScanner{}
}

// Files yields the absolute path of every regular file under root in lexical
// order. Vendored and build directories are pruned at any depth; ignore holds
// doublestar globs matched against the slash-separated path relative to root.
// Walk errors are yielded with the path that failed; an unreadable directory
// is skipped and the walk continues if the consumer does.
func (s *FileScanner) Files(root string, ignore []string, respectGitignore bool) iter.Seq2[string, error] {
	return func(yield func(string, error) bool) {
		absRoot, err := filepath.Abs(root)
		if err != nil {
			yield(root, err)
			return
		}

		var git gitignore.Matcher
		if respectGitignore {
			patterns, err := gitignore.ReadPatterns(osfs.New(absRoot), nil)
			if err != nil {
				if !yield(filepath.Join(absRoot, ".gitignore"), fmt.Errorf("reading .gitignore: %w", err)) {
					return
				}
			}
			git = gitignore.NewMatcher(patterns)
		}

		_ = filepath.WalkDir(absRoot, func(path string, d os.DirEntry, err error) error {
			if err != nil {
				if !yield(path, err) {
					return filepath.SkipAll
				}
				return nil
			}
			if path == absRoot {
				return nil
			}

			rel := filepath.ToSlash(relOrPath(absRoot, path))

			if d.IsDir() {
				if skipDirs[d.Name()] || matchesAny(ignore, rel) || (git != nil && git.Match(strings.Split(rel, "/"), true)) {
					return filepath.SkipDir
				}
				return nil
			}
			if !d.Type().IsRegular() {
				return nil
			}
			if matchesAny(ignore, rel) || (git != nil && git.Match(strings.Split(rel, "/"), false)) {
				return nil
			}

			if !yield(path, nil) {
				return filepath.SkipAll
			}
			return nil
		})
	}
}

// Collect drains Files. The first walk error aborts collection.
func (s *FileScanner) Collect(root string, ignore []string, respectGitignore bool) ([]string, error) {
	var files []string
	for path, err := range s.Files(root, ignore, respectGitignore) {
		if err != nil {
			return nil, err
		}
		files = append(files, path)
	}
	return files, nil
}

func matchesAny(patterns []string, rel string) bool {
	for _, p := range patterns {
		if ok, _ := doublestar.Match(p, rel); ok {
			return true
		}
	}
	return false
}

func relOrPath(root, path string) string {
	rel, err := filepath.Rel(root, path)
	if err != nil {
		return path
	}
	return rel
}
