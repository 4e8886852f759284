package regression_test

import (
	"bytes"
	"context"
	"os/exec"
	"runtime"
	"testing"

	"github.com/hermeslabs/hermes-rebrand/internal/adapters/outbound/regression"
	"github.com/hermeslabs/hermes-rebrand/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func requireShell(t *testing.T) {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("uses a POSIX shell")
	}
	if _, err := exec.LookPath("sh"); err != nil {
		t.Skip("sh not available")
	}
}

func TestExecRunner_Success(t *testing.T) {
	requireShell(t)
	dir := t.TempDir()
	var out bytes.Buffer

	err := regression.New().Run(context.Background(), dir, []string{"sh", "-c", "pwd; echo ok"}, &out, &out)
	require.NoError(t, err)
	assert.Contains(t, out.String(), "ok")
}

func TestExecRunner_NonZeroExit(t *testing.T) {
	requireShell(t)
	var stderr bytes.Buffer

	err := regression.New().Run(context.Background(), t.TempDir(), []string{"sh", "-c", "echo boom >&2; exit 3"}, &bytes.Buffer{}, &stderr)
	require.ErrorIs(t, err, domain.ErrRegressionFailed)
	assert.Contains(t, err.Error(), "exited with code 3")
	assert.Contains(t, stderr.String(), "boom")
}

func TestExecRunner_MissingExecutable(t *testing.T) {
	err := regression.New().Run(context.Background(), t.TempDir(), []string{"hermes-rebrand-no-such-binary"}, &bytes.Buffer{}, &bytes.Buffer{})
	assert.ErrorIs(t, err, domain.ErrRegressionFailed)
}

func TestExecRunner_Cancelled(t *testing.T) {
	requireShell(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := regression.New().Run(ctx, t.TempDir(), []string{"sh", "-c", "sleep 5"}, &bytes.Buffer{}, &bytes.Buffer{})
	assert.ErrorIs(t, err, domain.ErrRegressionFailed)
}
