package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hermeslabs/hermes-rebrand/internal/adapters/outbound/tui"
	"github.com/hermeslabs/hermes-rebrand/internal/domain/redirects"
)

func newRedirectsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "redirects",
		Short: "Inspect the legacy domain redirect catalogue",
	}
	cmd.AddCommand(newRedirectsVerifyCmd())
	cmd.AddCommand(newRedirectsResolveCmd())
	return cmd
}

func newRedirectsVerifyCmd() *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "verify",
		Short: "Check the redirect catalogue for consistency",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if format != "text" && format != "json" {
				return fmt.Errorf("unsupported format %q (want text or json)", format)
			}

			log := newLogger(cmd)
			summary, err := redirects.Default().Verify()
			if err != nil {
				return err
			}
			log.WithField("status", "success").Infof("[redirects] catalogue validated: %d rules", summary.Total)

			if format == "json" {
				return writeJSON(cmd.OutOrStdout(), summary)
			}
			fmt.Fprint(cmd.OutOrStdout(), tui.RenderRedirectSummary(summary))
			return nil
		},
	}

	cmd.Flags().StringVar(&format, "format", "text", "Output format: text or json")
	return cmd
}

func newRedirectsResolveCmd() *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "resolve <host> [path]",
		Short: "Show where a legacy URL redirects",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := "/"
			if len(args) > 1 {
				path = args[1]
			}

			rule, ok := redirects.Default().Resolve(args[0], path)
			if !ok {
				return fmt.Errorf("no redirect for %s%s", args[0], redirects.NormalizePath(path))
			}
			if jsonOutput {
				return writeJSON(cmd.OutOrStdout(), rule)
			}

			status := 302
			if rule.Permanent {
				status = 301
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s%s -> %s (%d, %s)\n",
				rule.LegacyHost, rule.LegacyPath, rule.Destination(), status, rule.Category)
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output the matched rule as JSON")
	return cmd
}
