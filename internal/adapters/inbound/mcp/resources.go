package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	mcplib "github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
	"github.com/sirupsen/logrus"
)

// registerResources registers the hermes-rebrand MCP resources on the given server.
func registerResources(s *server.MCPServer, projectPath string, log logrus.FieldLogger) {
	s.AddResource(
		mcplib.NewResource(
			"hermes://rules",
			"Replacement Rules",
			mcplib.WithResourceDescription("Ordered rewrite rules with the replacement each one produces for the workspace brand"),
			mcplib.WithMIMEType("application/json"),
		),
		handleRulesResource(projectPath, log),
	)

	s.AddResource(
		mcplib.NewResource(
			"hermes://brand",
			"Resolved Brand",
			mcplib.WithResourceDescription("Brand metadata after layering the workspace metadata file over the defaults"),
			mcplib.WithMIMEType("application/json"),
		),
		handleBrandResource(projectPath, log),
	)
}

type ruleView struct {
	ID            string   `json:"id"`
	Description   string   `json:"description"`
	Pattern       string   `json:"pattern"`
	Replacement   string   `json:"replacement"`
	NotFollowedBy []string `json:"notFollowedBy,omitempty"`
}

func handleRulesResource(projectPath string, log logrus.FieldLogger) server.ResourceHandlerFunc {
	return func(_ context.Context, request mcplib.ReadResourceRequest) ([]mcplib.ResourceContents, error) {
		rebrandSvc, _ := newServices(log)
		brand, _, err := rebrandSvc.ResolveBrand(projectPath, "", nil)
		if err != nil {
			return nil, fmt.Errorf("resolving brand: %w", err)
		}

		rules := rebrandSvc.Rules()
		views := make([]ruleView, 0, len(rules))
		for _, r := range rules {
			views = append(views, ruleView{
				ID:            r.ID,
				Description:   r.Description,
				Pattern:       r.PatternSource(),
				Replacement:   r.Replacement(brand),
				NotFollowedBy: r.NotFollowedBy,
			})
		}
		return jsonContents(request.Params.URI, views)
	}
}

func handleBrandResource(projectPath string, log logrus.FieldLogger) server.ResourceHandlerFunc {
	return func(_ context.Context, request mcplib.ReadResourceRequest) ([]mcplib.ResourceContents, error) {
		rebrandSvc, _ := newServices(log)
		brand, _, err := rebrandSvc.ResolveBrand(projectPath, "", nil)
		if err != nil {
			return nil, fmt.Errorf("resolving brand: %w", err)
		}
		return jsonContents(request.Params.URI, brand)
	}
}

func jsonContents(uri string, v any) ([]mcplib.ResourceContents, error) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshaling %s: %w", uri, err)
	}
	return []mcplib.ResourceContents{
		mcplib.TextResourceContents{
			URI:      uri,
			MIMEType: "application/json",
			Text:     string(data),
		},
	}, nil
}
