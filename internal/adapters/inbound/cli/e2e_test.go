package cli_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hermeslabs/hermes-rebrand/internal/domain"
)

// fixture copies testdata/<name> into a temp dir so tests can rewrite it.
func fixture(t *testing.T, name string) string {
	t.Helper()
	src, err := filepath.Abs(filepath.Join("..", "..", "..", "..", "testdata", name))
	require.NoError(t, err)
	dst := t.TempDir()
	require.NoError(t, os.CopyFS(dst, os.DirFS(src)))
	return dst
}

func TestE2E_FullMigration(t *testing.T) {
	root := fixture(t, "lobechat-workspace")

	_, err := run(t, "audit", root)
	require.ErrorIs(t, err, domain.ErrResidualLegacy)

	_, err = run(t, "scope", "packages", "--root", root, "--write", "--engineer", "release-bot")
	require.NoError(t, err)
	_, err = run(t, "scope", "migrate", "--root", root, "--write")
	require.NoError(t, err)
	assert.Contains(t, readFile(t, root, "src/features/Header.tsx"), "from '@hermeslabs/ui'")

	out, err := run(t, "rebrand", "--history", root)
	require.NoError(t, err)
	assert.Contains(t, out, "Brand Rewrite")

	out, err = run(t, "audit", root)
	require.NoError(t, err, out)

	readme := readFile(t, root, "README.md")
	assert.Contains(t, readme, "Welcome to Hermes Chat")
	assert.Contains(t, readme, domain.DefaultBrand().SupportEmail)
	assert.Contains(t, readFile(t, root, "docs/intro.mdx"), "Powered by Hermes Chat")
	assert.Contains(t, readFile(t, root, "package.json"), `"node": ">=18"`)

	logo, err := os.ReadFile(filepath.Join(root, "public", "logo.png"))
	require.NoError(t, err)
	assert.Contains(t, string(logo), "LobeChat")

	_, err = run(t, "rebrand", "--mode", "validate", "--regression-cmd", "true", root)
	assert.NoError(t, err)
}

func TestE2E_ValidateBeforeRebrand(t *testing.T) {
	root := fixture(t, "lobechat-workspace")

	out, err := run(t, "rebrand", "--mode", "validate", "--regression-cmd", "true", root)
	require.ErrorIs(t, err, domain.ErrResidualLegacy)
	assert.Contains(t, out, "Dry Run")
	assert.Contains(t, readFile(t, root, "README.md"), "Welcome to LobeChat")
}
