package domain

import (
	"bytes"
	"path/filepath"
	"strings"
)

// TextExtensions is the allowlist of file extensions the rewrite touches.
// Matching is case-sensitive.
var TextExtensions = map[string]bool{
	".cjs":  true,
	".css":  true,
	".env":  true,
	".html": true,
	".js":   true,
	".json": true,
	".jsx":  true,
	".md":   true,
	".mdx":  true,
	".mts":  true,
	".sh":   true,
	".ts":   true,
	".tsx":  true,
	".txt":  true,
	".yml":  true,
	".yaml": true,
}

// Classify gates a path on the extension allowlist. Files without an
// extension, and dotfiles such as .env or .npmrc, are eligible.
func Classify(path string) SkipReason {
	ext := extension(filepath.Base(path))
	if ext == "" || TextExtensions[ext] {
		return SkipNone
	}
	return SkipExtension
}

// IsBinary reports whether data contains a NUL byte.
func IsBinary(data []byte) bool {
	return bytes.IndexByte(data, 0) >= 0
}

// extension ignores the leading dot of dotfiles, so ".npmrc" has none and
// ".env.local" has ".local".
func extension(base string) string {
	return filepath.Ext(strings.TrimLeft(base, "."))
}
