package manifest_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/hermeslabs/hermes-rebrand/internal/adapters/outbound/manifest"
	"github.com/hermeslabs/hermes-rebrand/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStore_SaveAndLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), manifest.DefaultPath)
	s := manifest.New()

	m := domain.ScopeManifest{
		GeneratedAt: time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC),
		LegacyScope: domain.LegacyScope,
		TargetScope: domain.TargetScope,
		Matches: []domain.ScopeMatch{
			{AbsolutePath: "/repo/src/app.ts", Category: domain.ScopeTypescript, RelativePath: "src/app.ts"},
		},
	}
	require.NoError(t, s.Save(path, m))

	loaded, err := s.Load(path)
	require.NoError(t, err)
	require.NotNil(t, loaded)
	assert.Equal(t, m.Matches, loaded.Matches)
	assert.True(t, m.GeneratedAt.Equal(loaded.GeneratedAt))
}

func TestStore_SaveWritesCamelCaseJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scope.json")
	require.NoError(t, manifest.New().Save(path, domain.ScopeManifest{LegacyScope: "@lobechat/", TargetScope: "@hermeslabs/"}))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), `"legacyScope": "@lobechat/"`)
	assert.Contains(t, string(data), `"matches": []`)
	assert.Equal(t, byte('\n'), data[len(data)-1])
}

func TestStore_LoadMissing(t *testing.T) {
	m, err := manifest.New().Load(filepath.Join(t.TempDir(), "missing.json"))
	assert.NoError(t, err)
	assert.Nil(t, m)
}

func TestStore_LoadCorrupt(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	_, err := manifest.New().Load(path)
	assert.Error(t, err)
}
