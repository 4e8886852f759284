package domain

import "time"

// ScopeCategory selects the rewrite strategy for a file referencing a package scope.
type ScopeCategory string

const (
	ScopeTypescript ScopeCategory = "typescript"
	ScopeMDX        ScopeCategory = "mdx"
	ScopeConfig     ScopeCategory = "config"
)

// Default scopes for the package-scope migration.
const (
	LegacyScope = "@lobechat/"
	TargetScope = "@hermeslabs/"
)

// ScopeMatch is one file found to reference the legacy scope.
type ScopeMatch struct {
	AbsolutePath string        `json:"absolutePath"`
	Category     ScopeCategory `json:"category"`
	RelativePath string        `json:"relativePath"`
}

// ScopeManifest is the audit artifact written by a scope scan.
type ScopeManifest struct {
	GeneratedAt time.Time    `json:"generatedAt"`
	LegacyScope string       `json:"legacyScope"`
	TargetScope string       `json:"targetScope"`
	Matches     []ScopeMatch `json:"matches"`
}

// ScopeFileChange records what the codemod did to one file.
type ScopeFileChange struct {
	File    string   `json:"file"`
	Actions []string `json:"actions"`
}

// ScopeMigrationReport is the result of a codemod run.
type ScopeMigrationReport struct {
	Write       bool              `json:"write"`
	TargetScope string            `json:"targetScope"`
	Changes     []ScopeFileChange `json:"changes"`
}

// MigrationNotes is stamped into every migrated package manifest.
type MigrationNotes struct {
	APICompatibility string `json:"apiCompatibility"`
	Engineer         string `json:"engineer"`
	MigratedAt       string `json:"migratedAt"`
}

// PackageMigrationReport lists the package manifests visited by a scope migration.
type PackageMigrationReport struct {
	Write     bool     `json:"write"`
	Updated   []string `json:"updated"`
	Unchanged []string `json:"unchanged"`
}
