package mcp

import (
	"github.com/mark3labs/mcp-go/server"
	"github.com/sirupsen/logrus"
)

// NewHermesMCPServer creates an MCP server with the rebrand tools and
// resources registered against the workspace at projectPath. Nothing the
// server exposes writes to the workspace.
func NewHermesMCPServer(projectPath string, log logrus.FieldLogger) *server.MCPServer {
	s := server.NewMCPServer(
		"hermes-rebrand",
		"0.1.0",
		server.WithToolCapabilities(true),
		server.WithResourceCapabilities(true, false),
	)

	registerTools(s, projectPath, log)
	registerResources(s, projectPath, log)

	return s
}
