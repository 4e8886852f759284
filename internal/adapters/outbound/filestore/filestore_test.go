package filestore_test

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/hermeslabs/hermes-rebrand/internal/adapters/outbound/filestore"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStore_ReadWrite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "README.md")
	require.NoError(t, os.WriteFile(path, []byte("LobeChat"), 0o644))

	s := filestore.New()
	data, err := s.Read(path)
	require.NoError(t, err)
	assert.Equal(t, "LobeChat", string(data))

	require.NoError(t, s.Write(path, []byte("Hermes Chat")))
	data, err = os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "Hermes Chat", string(data))
}

func TestStore_WriteCreatesParents(t *testing.T) {
	path := filepath.Join(t.TempDir(), "a", "b", "c.txt")
	require.NoError(t, filestore.New().Write(path, []byte("x")))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "x", string(data))
}

func TestStore_WriteKeepsMode(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("permission bits are not meaningful on windows")
	}
	path := filepath.Join(t.TempDir(), "deploy.sh")
	require.NoError(t, os.WriteFile(path, []byte("echo lobe-chat"), 0o755))
	require.NoError(t, os.Chmod(path, 0o755))

	require.NoError(t, filestore.New().Write(path, []byte("echo hermes-chat")))

	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o755), info.Mode().Perm())
}

func TestStore_ReadMissing(t *testing.T) {
	_, err := filestore.New().Read(filepath.Join(t.TempDir(), "missing"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}
