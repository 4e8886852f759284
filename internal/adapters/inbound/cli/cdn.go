package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hermeslabs/hermes-rebrand/internal/adapters/outbound/cdn"
)

func newCDNCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cdn",
		Short: "CDN maintenance for the rebranded theme",
	}
	cmd.AddCommand(newCDNPurgeCmd())
	return cmd
}

func newCDNPurgeCmd() *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "purge",
		Short: "Purge theme assets from the CDN",
		Long: "Invalidate the theme assets on the CDN after a rebrand deploy.\n" +
			"Without a token the payload is logged and no request is sent.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			settings, err := cdn.LoadSettings(cmd.Flags())
			if err != nil {
				return err
			}

			res, err := cdn.NewPurger(newLogger(cmd)).Purge(cmd.Context(), settings)
			if err != nil {
				return err
			}

			if jsonOutput {
				return writeJSON(cmd.OutOrStdout(), res)
			}
			if res.Skipped {
				fmt.Fprintf(cmd.OutOrStdout(), "Purge skipped (%s) for %d asset(s)\n", res.Reason, len(res.Payload.Assets))
				return nil
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Purged %d asset(s), status %d\n", len(res.Payload.Assets), res.Status)
			return nil
		},
	}

	cdn.RegisterFlags(cmd.Flags())
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output the purge result as JSON")
	return cmd
}
