package cli

import (
	"github.com/mark3labs/mcp-go/server"
	"github.com/spf13/cobra"

	mcpadapter "github.com/hermeslabs/hermes-rebrand/internal/adapters/inbound/mcp"
)

func newMCPCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "mcp",
		Short: "MCP server commands",
		Long:  "Commands for running the hermes-rebrand MCP (Model Context Protocol) server.",
	}
	cmd.AddCommand(newMCPServeCmd())
	return cmd
}

func newMCPServeCmd() *cobra.Command {
	var projectPath string

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the hermes-rebrand MCP server (stdio)",
		Long: "Start the MCP server using stdio transport. Assistants can preview the rewrite, " +
			"audit residual legacy text, scan scope usage and query the redirect catalogue. Nothing is written.",
		RunE: func(cmd *cobra.Command, args []string) error {
			if projectPath == "" {
				projectPath = "."
			}
			// stdout carries the protocol; logs go to stderr.
			s := mcpadapter.NewHermesMCPServer(projectPath, newLogger(cmd))
			return server.ServeStdio(s)
		},
	}

	cmd.Flags().StringVar(&projectPath, "path", "", "Workspace path (defaults to current working directory)")

	return cmd
}
