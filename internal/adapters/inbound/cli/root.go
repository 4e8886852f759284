package cli

import (
	"context"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
)

var (
	version = "dev"
	commit  = "none"
)

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "hermes-rebrand",
		Short: "Move a LobeChat workspace to the Hermes Chat brand",
		Long: "hermes-rebrand rewrites legacy LobeChat and LobeHub branding across a workspace, " +
			"migrates the npm package scope and validates the domain cutover artifacts.",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.PersistentFlags().Bool("verbose", false, "Enable debug logging")

	cmd.AddCommand(newVersionCmd())
	cmd.AddCommand(newInitCmd())
	cmd.AddCommand(newRebrandCmd())
	cmd.AddCommand(newAuditCmd())
	cmd.AddCommand(newHistoryCmd())
	cmd.AddCommand(newScopeCmd())
	cmd.AddCommand(newRedirectsCmd())
	cmd.AddCommand(newCDNCmd())
	cmd.AddCommand(newMCPCmd())
	return cmd
}

// NewRootCmdForTest returns the root command for testing.
func NewRootCmdForTest() *cobra.Command {
	return newRootCmd()
}

// Execute runs the CLI until completion or interrupt.
func Execute() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	return newRootCmd().ExecuteContext(ctx)
}
