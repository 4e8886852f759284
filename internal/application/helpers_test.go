package application_test

import (
	"context"
	"errors"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/sirupsen/logrus"
	logtest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/require"

	"github.com/hermeslabs/hermes-rebrand/internal/adapters/outbound/config"
	"github.com/hermeslabs/hermes-rebrand/internal/adapters/outbound/filestore"
	"github.com/hermeslabs/hermes-rebrand/internal/adapters/outbound/history"
	"github.com/hermeslabs/hermes-rebrand/internal/adapters/outbound/manifest"
	"github.com/hermeslabs/hermes-rebrand/internal/adapters/outbound/metadata"
	"github.com/hermeslabs/hermes-rebrand/internal/adapters/outbound/scanner"
	"github.com/hermeslabs/hermes-rebrand/internal/application"
	"github.com/hermeslabs/hermes-rebrand/internal/domain"
)

type fakeGit struct {
	repo  bool
	clean bool
	hash  string
	user  string
}

func (g *fakeGit) IsGitRepo(string) bool             { return g.repo }
func (g *fakeGit) IsClean(string) (bool, error)      { return g.clean, nil }
func (g *fakeGit) CommitHash(string) (string, error) { return g.hash, nil }
func (g *fakeGit) UserName(string) (string, error)   { return g.user, nil }

type fakeRunner struct {
	calls [][]string
	err   error
}

func (r *fakeRunner) Run(_ context.Context, _ string, command []string, stdout, _ io.Writer) error {
	r.calls = append(r.calls, command)
	_, _ = io.WriteString(stdout, "ok\n")
	return r.err
}

// failingStore fails writes for files with the given base name.
type failingStore struct {
	*filestore.Store
	fail string
}

func (s *failingStore) Write(path string, data []byte) error {
	if filepath.Base(path) == s.fail {
		return errors.New("disk full")
	}
	return s.Store.Write(path, data)
}

type rig struct {
	svc    *application.RebrandService
	git    *fakeGit
	runner *fakeRunner
	hook   *logtest.Hook
}

func newRig(t *testing.T) *rig {
	return newRigWithStore(t, filestore.New())
}

func newRigWithStore(t *testing.T, store domain.FileStore) *rig {
	t.Helper()
	log, hook := logtest.NewNullLogger()
	log.SetLevel(logrus.DebugLevel)
	git := &fakeGit{clean: true}
	runner := &fakeRunner{}
	svc := application.NewRebrandService(
		scanner.New(), store, config.New(), metadata.New(), git, runner, history.New(), log,
	)
	return &rig{svc: svc, git: git, runner: runner, hook: hook}
}

func newScopeService(t *testing.T, git *fakeGit) *application.ScopeService {
	t.Helper()
	log, _ := logtest.NewNullLogger()
	sc := scanner.New()
	return application.NewScopeService(sc, sc, filestore.New(), manifest.New(), git, log)
}

func writeFiles(t *testing.T, root string, files map[string]string) {
	t.Helper()
	for rel, content := range files {
		path := filepath.Join(root, filepath.FromSlash(rel))
		require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
		require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	}
}

func readFile(t *testing.T, root, rel string) string {
	t.Helper()
	data, err := os.ReadFile(filepath.Join(root, filepath.FromSlash(rel)))
	require.NoError(t, err)
	return string(data)
}
