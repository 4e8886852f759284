package application_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hermeslabs/hermes-rebrand/internal/adapters/outbound/manifest"
	"github.com/hermeslabs/hermes-rebrand/internal/application"
	"github.com/hermeslabs/hermes-rebrand/internal/domain"
)

func scopeWorkspace(t *testing.T) string {
	t.Helper()
	root := t.TempDir()
	writeFiles(t, root, map[string]string{
		"src/app.tsx":                   "import { Button } from '@lobechat/ui';\nconst label = '@lobechat/keep';\n",
		"src/plain.ts":                  "export const x = 1;\n",
		"apps/docs/intro.mdx":           "<Demo pkg=\"@lobechat/ui\" />\n",
		"packages/ui/vitest.config.mjs": "alias: { '@lobechat/ui': './src' }\n",
		"packages/ui/node_modules/x.ts": "import '@lobechat/ignored';\n",
		"tests/setup.md":                "@lobechat/not-a-candidate\n",
		"scripts/tool.ts":               "import '@lobechat/outside';\n",
		"extra/tool.ts":                 "import '@lobechat/extra';\n",
	})
	return root
}

func TestScopeService_Scan(t *testing.T) {
	root := scopeWorkspace(t)
	at := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	svc := newScopeService(t, &fakeGit{}).WithClock(func() time.Time { return at })

	m, err := svc.Scan(application.ScopeOptions{Root: root})
	require.NoError(t, err)

	assert.Equal(t, domain.LegacyScope, m.LegacyScope)
	assert.Equal(t, domain.TargetScope, m.TargetScope)
	assert.True(t, m.GeneratedAt.Equal(at))

	var rel []string
	for _, match := range m.Matches {
		rel = append(rel, match.RelativePath)
		assert.True(t, filepath.IsAbs(match.AbsolutePath))
	}
	assert.Equal(t, []string{"apps/docs/intro.mdx", "packages/ui/vitest.config.mjs", "src/app.tsx"}, rel)
	assert.Equal(t, domain.ScopeMDX, m.Matches[0].Category)
	assert.Equal(t, domain.ScopeConfig, m.Matches[1].Category)
	assert.Equal(t, domain.ScopeTypescript, m.Matches[2].Category)
}

func TestScopeService_ScanIncludeDirs(t *testing.T) {
	m, err := newScopeService(t, &fakeGit{}).Scan(application.ScopeOptions{Root: scopeWorkspace(t), Include: []string{"extra", "src"}})
	require.NoError(t, err)
	require.Len(t, m.Matches, 4)
	assert.Equal(t, "extra/tool.ts", m.Matches[1].RelativePath)
}

func TestScopeService_ScanWritesManifest(t *testing.T) {
	root := scopeWorkspace(t)
	_, err := newScopeService(t, &fakeGit{}).Scan(application.ScopeOptions{Root: root, ManifestPath: manifest.DefaultPath})
	require.NoError(t, err)

	saved, err := manifest.New().Load(filepath.Join(root, manifest.DefaultPath))
	require.NoError(t, err)
	require.NotNil(t, saved)
	assert.Len(t, saved.Matches, 3)
}

func TestScopeService_MigrateDryRun(t *testing.T) {
	root := scopeWorkspace(t)
	report, err := newScopeService(t, &fakeGit{}).Migrate(application.ScopeOptions{Root: root})
	require.NoError(t, err)

	assert.False(t, report.Write)
	require.Len(t, report.Changes, 3)
	assert.Equal(t, domain.ScopeFileChange{File: "apps/docs/intro.mdx", Actions: []string{"text replace"}}, report.Changes[0])
	assert.Equal(t, domain.ScopeFileChange{File: "src/app.tsx", Actions: []string{"import -> @hermeslabs/ui"}}, report.Changes[2])

	assert.Contains(t, readFile(t, root, "src/app.tsx"), "@lobechat/ui")
}

func TestScopeService_MigrateWrite(t *testing.T) {
	root := scopeWorkspace(t)
	_, err := newScopeService(t, &fakeGit{}).Migrate(application.ScopeOptions{Root: root, Write: true})
	require.NoError(t, err)

	assert.Equal(t, "import { Button } from '@hermeslabs/ui';\nconst label = '@lobechat/keep';\n", readFile(t, root, "src/app.tsx"))
	assert.Equal(t, "<Demo pkg=\"@hermeslabs/ui\" />\n", readFile(t, root, "apps/docs/intro.mdx"))
	assert.Equal(t, "import '@lobechat/outside';\n", readFile(t, root, "scripts/tool.ts"))
}

func TestScopeService_MigrateSavesPreMigrationManifest(t *testing.T) {
	root := scopeWorkspace(t)
	_, err := newScopeService(t, &fakeGit{}).Migrate(application.ScopeOptions{
		Root:         root,
		Write:        true,
		ManifestPath: "audit/scope.json",
	})
	require.NoError(t, err)

	saved, err := manifest.New().Load(filepath.Join(root, "audit", "scope.json"))
	require.NoError(t, err)
	require.NotNil(t, saved)
	assert.Len(t, saved.Matches, 3)
}

func TestScopeService_MigratePackages(t *testing.T) {
	root := t.TempDir()
	writeFiles(t, root, map[string]string{
		"package.json":             `{"name": "hermes-chat", "x-migration-notes": {"engineer": "earlier"}}`,
		"packages/ui/package.json": `{"name": "@lobechat/ui", "dependencies": {"@lobechat/types": "workspace:*"}}`,
	})
	at := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	svc := newScopeService(t, &fakeGit{repo: true, user: "Dana Doe"}).WithClock(func() time.Time { return at })

	report, err := svc.MigratePackages(application.ScopeOptions{Root: root, Write: true})
	require.NoError(t, err)
	assert.Equal(t, []string{"packages/ui/package.json"}, report.Updated)
	assert.Equal(t, []string{"package.json"}, report.Unchanged)

	ui := readFile(t, root, "packages/ui/package.json")
	assert.Contains(t, ui, `"name": "@hermeslabs/ui"`)
	assert.Contains(t, ui, `"@hermeslabs/types": "workspace:*"`)
	assert.Contains(t, ui, `"engineer": "Dana Doe"`)
	assert.Contains(t, ui, `"migratedAt": "2026-03-01T12:00:00Z"`)
}

func TestScopeService_MigratePackagesDryRun(t *testing.T) {
	root := t.TempDir()
	original := `{"name": "@lobechat/ui"}`
	writeFiles(t, root, map[string]string{"packages/ui/package.json": original})

	report, err := newScopeService(t, &fakeGit{}).MigratePackages(application.ScopeOptions{Root: root, Engineer: "CI"})
	require.NoError(t, err)
	assert.Equal(t, []string{"packages/ui/package.json"}, report.Updated)
	assert.Equal(t, original, readFile(t, root, "packages/ui/package.json"))
}

func TestScopeService_MigratePackagesInvalidJSON(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, "package.json"), []byte("{"), 0o644))

	_, err := newScopeService(t, &fakeGit{}).MigratePackages(application.ScopeOptions{Root: root})
	assert.Error(t, err)
}
