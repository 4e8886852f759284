package mcp_test

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"testing"

	"github.com/mark3labs/mcp-go/server"
	logtest "github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	mcpadapter "github.com/hermeslabs/hermes-rebrand/internal/adapters/inbound/mcp"
)

func newServer(t *testing.T, root string) *server.MCPServer {
	t.Helper()
	log, _ := logtest.NewNullLogger()
	s := mcpadapter.NewHermesMCPServer(root, log)
	require.NotNil(t, s)
	return s
}

type toolResponse struct {
	Result struct {
		Content []struct {
			Text string `json:"text"`
		} `json:"content"`
		IsError bool `json:"isError"`
	} `json:"result"`
}

type resourceResponse struct {
	Result struct {
		Contents []struct {
			URI  string `json:"uri"`
			Text string `json:"text"`
		} `json:"contents"`
	} `json:"result"`
}

func rpc(t *testing.T, s *server.MCPServer, method string, params any, out any) {
	t.Helper()
	p, err := json.Marshal(params)
	require.NoError(t, err)
	msg := fmt.Sprintf(`{"jsonrpc":"2.0","id":1,"method":%q,"params":%s}`, method, p)

	resp := s.HandleMessage(context.Background(), json.RawMessage(msg))
	data, err := json.Marshal(resp)
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(data, out))
}

func callTool(t *testing.T, s *server.MCPServer, name string, args map[string]any) toolResponse {
	t.Helper()
	var resp toolResponse
	rpc(t, s, "tools/call", map[string]any{"name": name, "arguments": args}, &resp)
	require.NotEmpty(t, resp.Result.Content)
	return resp
}

func writeWorkspace(t *testing.T, files map[string]string) string {
	t.Helper()
	root := t.TempDir()
	for rel, content := range files {
		p := filepath.Join(root, rel)
		require.NoError(t, os.MkdirAll(filepath.Dir(p), 0o755))
		require.NoError(t, os.WriteFile(p, []byte(content), 0o644))
	}
	return root
}

func TestMCPServerHasTools(t *testing.T) {
	s := newServer(t, ".")

	tools := s.ListTools()
	require.NotNil(t, tools)

	expectedTools := []string{
		"hermes_rebrand_preview",
		"hermes_legacy_audit",
		"hermes_scope_scan",
		"hermes_redirects_verify",
		"hermes_redirects_resolve",
	}

	for _, name := range expectedTools {
		_, exists := tools[name]
		assert.True(t, exists, "tool %q should be registered", name)
	}

	assert.Len(t, tools, len(expectedTools), "should have exactly %d tools", len(expectedTools))
}

func TestRebrandPreview_DoesNotWrite(t *testing.T) {
	root := writeWorkspace(t, map[string]string{
		"README.md": "Welcome to LobeChat\n",
	})
	s := newServer(t, root)

	resp := callTool(t, s, "hermes_rebrand_preview", map[string]any{})
	require.False(t, resp.Result.IsError, resp.Result.Content[0].Text)

	var out struct {
		Summary struct {
			DryRun        bool     `json:"dryRun"`
			FilesModified int      `json:"filesModified"`
			ModifiedFiles []string `json:"modifiedFiles"`
		} `json:"summary"`
	}
	require.NoError(t, json.Unmarshal([]byte(resp.Result.Content[0].Text), &out))
	assert.True(t, out.Summary.DryRun)
	assert.Equal(t, 1, out.Summary.FilesModified)
	assert.Equal(t, []string{"README.md"}, out.Summary.ModifiedFiles)

	data, err := os.ReadFile(filepath.Join(root, "README.md"))
	require.NoError(t, err)
	assert.Equal(t, "Welcome to LobeChat\n", string(data))
}

func TestLegacyAudit_ReportsHits(t *testing.T) {
	root := writeWorkspace(t, map[string]string{
		"docs/intro.md": "line one\nPowered by LobeHub\n",
	})
	s := newServer(t, root)

	resp := callTool(t, s, "hermes_legacy_audit", nil)
	require.False(t, resp.Result.IsError)
	assert.Contains(t, resp.Result.Content[0].Text, `"path": "docs/intro.md"`)
	assert.Contains(t, resp.Result.Content[0].Text, `"line": 2`)
}

func TestLegacyAudit_MissingWorkspace(t *testing.T) {
	s := newServer(t, filepath.Join(t.TempDir(), "missing"))

	resp := callTool(t, s, "hermes_legacy_audit", nil)
	assert.True(t, resp.Result.IsError)
	assert.Contains(t, resp.Result.Content[0].Text, "workspace does not exist")
}

func TestScopeScan_ReturnsManifest(t *testing.T) {
	root := writeWorkspace(t, map[string]string{
		"src/app.ts": "import { Button } from '@lobechat/ui';\n",
	})
	s := newServer(t, root)

	resp := callTool(t, s, "hermes_scope_scan", nil)
	require.False(t, resp.Result.IsError)
	assert.Contains(t, resp.Result.Content[0].Text, `"relativePath": "src/app.ts"`)
	assert.Contains(t, resp.Result.Content[0].Text, `"category": "typescript"`)
	assert.NoFileExists(t, filepath.Join(root, "scripts", "manifests", "scope-usage.json"))
}

func TestRedirectsVerify(t *testing.T) {
	s := newServer(t, ".")

	resp := callTool(t, s, "hermes_redirects_verify", nil)
	require.False(t, resp.Result.IsError)
	assert.Contains(t, resp.Result.Content[0].Text, `"total": 200`)
}

func TestRedirectsResolve(t *testing.T) {
	s := newServer(t, ".")

	resp := callTool(t, s, "hermes_redirects_resolve", map[string]any{"host": "Lobe.Chat"})
	require.False(t, resp.Result.IsError)
	assert.Contains(t, resp.Result.Content[0].Text, `"legacyHost": "lobe.chat"`)

	resp = callTool(t, s, "hermes_redirects_resolve", map[string]any{"host": "example.com"})
	assert.True(t, resp.Result.IsError)
	assert.Contains(t, resp.Result.Content[0].Text, "no redirect for example.com/")
}

func TestRedirectsResolve_DescribedHostsResolve(t *testing.T) {
	s := newServer(t, ".")

	tool, ok := s.ListTools()["hermes_redirects_resolve"]
	require.True(t, ok)
	host, ok := tool.Tool.InputSchema.Properties["host"].(map[string]any)
	require.True(t, ok)
	desc, _ := host["description"].(string)

	for _, example := range []string{"lobe.chat", "app.lobe.chat"} {
		assert.Contains(t, desc, example)
		resp := callTool(t, s, "hermes_redirects_resolve", map[string]any{"host": example})
		assert.False(t, resp.Result.IsError, example)
	}
}

func TestBrandResource(t *testing.T) {
	root := writeWorkspace(t, map[string]string{
		".hermes-rebrand.yaml": "metadata_file: brand.json\n",
		"brand.json":           `{"name": "Hermes QA"}`,
	})
	s := newServer(t, root)

	var resp resourceResponse
	rpc(t, s, "resources/read", map[string]any{"uri": "hermes://brand"}, &resp)
	require.Len(t, resp.Result.Contents, 1)
	assert.Equal(t, "hermes://brand", resp.Result.Contents[0].URI)
	assert.Contains(t, resp.Result.Contents[0].Text, `"name": "Hermes QA"`)
}

func TestRulesResource(t *testing.T) {
	s := newServer(t, t.TempDir())

	var resp resourceResponse
	rpc(t, s, "resources/read", map[string]any{"uri": "hermes://rules"}, &resp)
	require.Len(t, resp.Result.Contents, 1)

	var rules []struct {
		ID      string `json:"id"`
		Pattern string `json:"pattern"`
	}
	require.NoError(t, json.Unmarshal([]byte(resp.Result.Contents[0].Text), &rules))
	require.NotEmpty(t, rules)
	for _, r := range rules {
		assert.NotEmpty(t, r.ID)
		assert.NotEmpty(t, r.Pattern)
	}
}
