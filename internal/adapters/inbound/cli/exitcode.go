package cli

import (
	"errors"
	"io/fs"

	"github.com/hermeslabs/hermes-rebrand/internal/domain"
)

// Process exit codes.
const (
	ExitOK         = 0
	ExitFailure    = 1
	ExitConfig     = 2
	ExitValidation = 3
	ExitFilesystem = 4
	ExitRegression = 5
)

// ExitCode maps an error returned by Execute to a process exit code.
func ExitCode(err error) int {
	var pathErr *fs.PathError
	switch {
	case err == nil:
		return ExitOK
	case errors.Is(err, domain.ErrInvalidBrand),
		errors.Is(err, domain.ErrInvalidMode),
		errors.Is(err, domain.ErrInvalidMetadata),
		errors.Is(err, domain.ErrInvalidConfig):
		return ExitConfig
	case errors.Is(err, domain.ErrResidualLegacy),
		errors.Is(err, domain.ErrInvalidCatalogue):
		return ExitValidation
	case errors.Is(err, domain.ErrRegressionFailed):
		return ExitRegression
	case errors.Is(err, domain.ErrWorkspaceNotFound),
		errors.Is(err, domain.ErrFileFailures),
		errors.As(err, &pathErr):
		return ExitFilesystem
	default:
		return ExitFailure
	}
}
