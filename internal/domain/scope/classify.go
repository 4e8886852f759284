// Package scope migrates npm package-scope references from the legacy
// scope to the Hermes one.
package scope

import (
	"path"
	"strings"

	"github.com/bmatcuk/doublestar/v4"

	"github.com/hermeslabs/hermes-rebrand/internal/domain"
)

// SearchDirs are the workspace directories scanned for scope references.
var SearchDirs = []string{"src", "packages", "apps", "tests"}

// FilePatterns select candidate file names, matched case-insensitively.
var FilePatterns = []string{"*.ts", "*.tsx", "*.mts", "*.cts", "*.mdx", "*config.*", "*.json", "*.mjs", "*.cjs"}

var typescriptExts = map[string]bool{".ts": true, ".tsx": true, ".mts": true, ".cts": true}

// IsCandidate reports whether a file name matches FilePatterns.
func IsCandidate(name string) bool {
	base := strings.ToLower(path.Base(strings.ReplaceAll(name, "\\", "/")))
	for _, p := range FilePatterns {
		if ok, _ := doublestar.Match(p, base); ok {
			return true
		}
	}
	return false
}

// Classify picks the rewrite strategy for a file.
func Classify(name string) domain.ScopeCategory {
	lower := strings.ToLower(name)
	ext := path.Ext(lower)
	switch {
	case ext == ".mdx":
		return domain.ScopeMDX
	case typescriptExts[ext], strings.HasSuffix(lower, ".d.ts"):
		return domain.ScopeTypescript
	default:
		return domain.ScopeConfig
	}
}
