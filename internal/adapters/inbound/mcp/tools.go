package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"path/filepath"

	mcplib "github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/sirupsen/logrus"

	"github.com/hermeslabs/hermes-rebrand/internal/application"
	"github.com/hermeslabs/hermes-rebrand/internal/domain"
	"github.com/hermeslabs/hermes-rebrand/internal/domain/redirects"
	"github.com/hermeslabs/hermes-rebrand/internal/domain/rewrite"
)

// registerTools registers the hermes-rebrand MCP tools on the given server.
func registerTools(s *server.MCPServer, projectPath string, log logrus.FieldLogger) {
	s.AddTool(
		mcplib.NewTool("hermes_rebrand_preview",
			mcplib.WithDescription("Dry-run the brand rewrite over the workspace and return the per-rule replacement summary. No files are written."),
			mcplib.WithString("metadata_file", mcplib.Description("Brand metadata file (.json, .yaml or .toml), relative to the workspace")),
			mcplib.WithString("brand_name", mcplib.Description("Product name override; also sets the short name")),
			mcplib.WithString("brand_domain", mcplib.Description("Primary product domain override")),
		),
		handleRebrandPreview(projectPath, log),
	)

	s.AddTool(
		mcplib.NewTool("hermes_legacy_audit",
			mcplib.WithDescription("List legacy LobeChat and LobeHub literals left in the workspace, by file and line"),
		),
		handleLegacyAudit(projectPath, log),
	)

	s.AddTool(
		mcplib.NewTool("hermes_scope_scan",
			mcplib.WithDescription("List files that still reference the legacy npm scope. The manifest is returned, not written."),
			mcplib.WithString("legacy_scope", mcplib.Description("Scope to look for (default @lobechat/)")),
		),
		handleScopeScan(projectPath, log),
	)

	s.AddTool(
		mcplib.NewTool("hermes_redirects_verify",
			mcplib.WithDescription("Check the legacy domain redirect catalogue and return per-category and per-host counts"),
		),
		handleRedirectsVerify(),
	)

	s.AddTool(
		mcplib.NewTool("hermes_redirects_resolve",
			mcplib.WithDescription("Return the redirect rule for a legacy host and path"),
			mcplib.WithString("host", mcplib.Required(), mcplib.Description("Legacy host, e.g. lobe.chat or app.lobe.chat")),
			mcplib.WithString("path", mcplib.Description("Request path (default /)")),
		),
		handleRedirectsResolve(),
	)
}

type previewReport struct {
	Brand     domain.BrandMetadata  `json:"brand"`
	Summary   domain.RebrandSummary `json:"summary"`
	Breakdown []domain.RuleCount    `json:"breakdown"`
}

func handleRebrandPreview(projectPath string, log logrus.FieldLogger) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		args := request.GetArguments()

		var overrides *domain.BrandOverrides
		if name, _ := args["brand_name"].(string); name != "" {
			short := name
			overrides = &domain.BrandOverrides{Name: &name, ShortName: &short}
		}
		if d, _ := args["brand_domain"].(string); d != "" {
			if overrides == nil {
				overrides = &domain.BrandOverrides{}
			}
			overrides.Domain = &d
		}
		metadataFile, _ := args["metadata_file"].(string)

		rebrandSvc, _ := newServices(log)
		res, err := rebrandSvc.Run(ctx, application.RebrandOptions{
			Workspace:    projectPath,
			Mode:         domain.ModeApply,
			DryRun:       true,
			Overrides:    overrides,
			MetadataFile: resolvePath(projectPath, metadataFile),
		})
		if res == nil {
			return errorResult(fmt.Sprintf("preview failed: %v", err)), nil
		}

		out := previewReport{
			Brand:     res.Brand,
			Summary:   res.Summary,
			Breakdown: res.Summary.Breakdown(res.RuleIDs),
		}
		if err != nil {
			data, mErr := json.MarshalIndent(out, "", "  ")
			if mErr != nil {
				return nil, fmt.Errorf("marshaling result: %w", mErr)
			}
			return errorResult(fmt.Sprintf("preview finished with errors: %v\n%s", err, data)), nil
		}
		return jsonResult(out)
	}
}

func handleLegacyAudit(projectPath string, log logrus.FieldLogger) server.ToolHandlerFunc {
	return func(_ context.Context, _ mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		rebrandSvc, _ := newServices(log)
		report, err := rebrandSvc.Audit(projectPath, nil)
		if err != nil {
			return errorResult(fmt.Sprintf("audit failed: %v", err)), nil
		}
		if report.Files == nil {
			report.Files = []rewrite.LegacyFile{}
		}
		return jsonResult(report)
	}
}

func handleScopeScan(projectPath string, log logrus.FieldLogger) server.ToolHandlerFunc {
	return func(_ context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		legacy, _ := request.GetArguments()["legacy_scope"].(string)

		_, scopeSvc := newServices(log)
		m, err := scopeSvc.Scan(application.ScopeOptions{Root: projectPath, Legacy: legacy})
		if err != nil {
			return errorResult(fmt.Sprintf("scope scan failed: %v", err)), nil
		}
		return jsonResult(m)
	}
}

func handleRedirectsVerify() server.ToolHandlerFunc {
	return func(_ context.Context, _ mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		summary, err := redirects.Default().Verify()
		if err != nil {
			return errorResult(err.Error()), nil
		}
		return jsonResult(summary)
	}
}

func handleRedirectsResolve() server.ToolHandlerFunc {
	return func(_ context.Context, request mcplib.CallToolRequest) (*mcplib.CallToolResult, error) {
		host, err := request.RequireString("host")
		if err != nil {
			return errorResult(err.Error()), nil
		}
		path, _ := request.GetArguments()["path"].(string)
		if path == "" {
			path = "/"
		}

		rule, ok := redirects.Default().Resolve(host, path)
		if !ok {
			return errorResult(fmt.Sprintf("no redirect for %s%s", host, redirects.NormalizePath(path))), nil
		}
		return jsonResult(rule)
	}
}

func resolvePath(root, p string) string {
	if p == "" || filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(root, p)
}

// jsonResult marshals v to JSON and returns it as a text content result.
func jsonResult(v interface{}) (*mcplib.CallToolResult, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshaling result: %w", err)
	}
	return &mcplib.CallToolResult{
		Content: []mcplib.Content{mcplib.NewTextContent(string(data))},
	}, nil
}

// errorResult returns a tool result that indicates an error occurred.
func errorResult(msg string) *mcplib.CallToolResult {
	return &mcplib.CallToolResult{
		Content: []mcplib.Content{mcplib.NewTextContent(msg)},
		IsError: true,
	}
}
