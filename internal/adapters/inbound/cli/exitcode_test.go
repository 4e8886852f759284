package cli_test

import (
	"errors"
	"fmt"
	"io/fs"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/hermeslabs/hermes-rebrand/internal/adapters/inbound/cli"
	"github.com/hermeslabs/hermes-rebrand/internal/domain"
)

func TestExitCode(t *testing.T) {
	tests := []struct {
		name string
		err  error
		want int
	}{
		{"nil", nil, cli.ExitOK},
		{"brand", fmt.Errorf("x: %w", domain.ErrInvalidBrand), cli.ExitConfig},
		{"mode", domain.ErrInvalidMode, cli.ExitConfig},
		{"metadata", domain.ErrInvalidMetadata, cli.ExitConfig},
		{"config", domain.ErrInvalidConfig, cli.ExitConfig},
		{"residual", domain.ErrResidualLegacy, cli.ExitValidation},
		{"catalogue", domain.ErrInvalidCatalogue, cli.ExitValidation},
		{"regression", domain.ErrRegressionFailed, cli.ExitRegression},
		{"workspace", domain.ErrWorkspaceNotFound, cli.ExitFilesystem},
		{"files", domain.ErrFileFailures, cli.ExitFilesystem},
		{"path", &fs.PathError{Op: "open", Path: "x", Err: fs.ErrPermission}, cli.ExitFilesystem},
		{"other", errors.New("boom"), cli.ExitFailure},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, cli.ExitCode(tt.err))
		})
	}
}

func TestVersionCmd(t *testing.T) {
	out, err := run(t, "version")
	if assert.NoError(t, err) {
		assert.Contains(t, out, "hermes-rebrand dev")
	}
}
