package manifest

import (
	"encoding/json"
	"os"
	"path/filepath"

	"github.com/hermeslabs/hermes-rebrand/internal/domain"
)

// DefaultPath is where scope scans write their manifest, relative to the workspace.
const DefaultPath = "scripts/manifests/scope-usage.json"

// Store is a file-based implementation of domain.ManifestStore.
type Store struct{}

// New creates a new file-based manifest store.
func New() *Store {
	return &Store{}
}

// Load reads a scope manifest from disk. Returns (nil, nil) if none exists.
func (s *Store) Load(path string) (*domain.ScopeManifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil // no manifest is not an error
		}
		return nil, err
	}

	var m domain.ScopeManifest
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, err
	}
	return &m, nil
}

// Save writes a scope manifest to disk, creating directories as needed.
func (s *Store) Save(path string, m domain.ScopeManifest) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}

	if m.Matches == nil {
		m.Matches = []domain.ScopeMatch{}
	}
	data, err := json.MarshalIndent(m, "", "  ")
	if err != nil {
		return err
	}

	return os.WriteFile(path, append(data, '\n'), 0o644)
}
