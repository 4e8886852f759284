package domain

import (
	"fmt"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// ProjectConfig holds workspace-level settings loaded from .hermes-rebrand.yaml.
type ProjectConfig struct {
	ExcludePaths      []string `yaml:"exclude_paths"      json:"exclude_paths,omitempty"`
	RespectGitignore  bool     `yaml:"respect_gitignore"  json:"respect_gitignore,omitempty"`
	RegressionCommand []string `yaml:"regression_command" json:"regression_command,omitempty"`
	Concurrency       int      `yaml:"concurrency"        json:"concurrency,omitempty"`
	MetadataFile      string   `yaml:"metadata_file"      json:"metadata_file,omitempty"`
}

// DefaultConfig returns a zero-value config that changes nothing.
func DefaultConfig() ProjectConfig {
	return ProjectConfig{}
}

// Validate checks the config for invalid values and returns a descriptive error.
func (c ProjectConfig) Validate() error {
	if c.Concurrency < 0 {
		return fmt.Errorf("%w: concurrency must be >= 0, got %d", ErrInvalidConfig, c.Concurrency)
	}

	for _, p := range c.ExcludePaths {
		if strings.TrimSpace(p) == "" {
			return fmt.Errorf("%w: exclude_paths contains an empty pattern", ErrInvalidConfig)
		}
		if !doublestar.ValidatePattern(p) {
			return fmt.Errorf("%w: invalid glob %q in exclude_paths", ErrInvalidConfig, p)
		}
	}

	if len(c.RegressionCommand) > 0 && strings.TrimSpace(c.RegressionCommand[0]) == "" {
		return fmt.Errorf("%w: regression_command must start with an executable", ErrInvalidConfig)
	}

	return nil
}
