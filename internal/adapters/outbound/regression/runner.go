package regression

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os/exec"
	"strings"

	"github.com/hermeslabs/hermes-rebrand/internal/domain"
)

// DefaultCommand runs the workspace test suite quietly.
var DefaultCommand = []string{"bunx", "vitest", "run", "--silent"}

// ExecRunner implements domain.RegressionRunner with os/exec.
type ExecRunner struct{}

func New() *ExecRunner {
	return &ExecRunner{}
}

// Run executes command in dir, streaming its output. A non-zero exit, a
// missing executable or a cancelled context all wrap domain.ErrRegressionFailed.
func (r *ExecRunner) Run(ctx context.Context, dir string, command []string, stdout, stderr io.Writer) error {
	if len(command) == 0 {
		command = DefaultCommand
	}

	cmd := exec.CommandContext(ctx, command[0], command[1:]...)
	cmd.Dir = dir
	cmd.Stdout = stdout
	cmd.Stderr = stderr

	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return fmt.Errorf("%w: %q exited with code %d", domain.ErrRegressionFailed, strings.Join(command, " "), exitErr.ExitCode())
		}
		return fmt.Errorf("%w: %q: %v", domain.ErrRegressionFailed, strings.Join(command, " "), err)
	}
	return nil
}
