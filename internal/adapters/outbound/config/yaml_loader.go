package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/hermeslabs/hermes-rebrand/internal/domain"
	"gopkg.in/yaml.v3"
)

// FileName is the project config file looked up at the workspace root.
const FileName = ".hermes-rebrand.yaml"

// YAMLLoader implements domain.ConfigLoader by reading .hermes-rebrand.yaml.
type YAMLLoader struct{}

// New creates a YAMLLoader.
func New() *YAMLLoader { return &YAMLLoader{} }

// Load reads .hermes-rebrand.yaml from workspace.
// Returns DefaultConfig if the file does not exist or is empty.
func (l *YAMLLoader) Load(workspace string) (domain.ProjectConfig, error) {
	data, err := os.ReadFile(filepath.Join(workspace, FileName))
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return domain.DefaultConfig(), nil
		}
		return domain.ProjectConfig{}, err
	}

	cfg := domain.DefaultConfig()
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&cfg); err != nil && !errors.Is(err, io.EOF) {
		return domain.ProjectConfig{}, fmt.Errorf("%w: parsing %s: %v", domain.ErrInvalidConfig, FileName, err)
	}

	// Validate the raw input so typos surface with the file name attached.
	if err := cfg.Validate(); err != nil {
		return domain.ProjectConfig{}, fmt.Errorf("invalid %s: %w", FileName, err)
	}

	return cfg, nil
}
