package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hermeslabs/hermes-rebrand/internal/adapters/outbound/tui"
	"github.com/hermeslabs/hermes-rebrand/internal/domain"
	"github.com/hermeslabs/hermes-rebrand/internal/domain/rewrite"
)

func newAuditCmd() *cobra.Command {
	var (
		ignore     []string
		jsonOutput bool
	)

	cmd := &cobra.Command{
		Use:   "audit [path]",
		Short: "Report legacy brand literals left in a workspace",
		Long: "Scan the workspace for LobeChat and LobeHub literals without changing anything.\n" +
			"Exits non-zero when any remain.",
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := "."
			if len(args) > 0 {
				path = args[0]
			}

			report, err := newRebrandService(newLogger(cmd)).Audit(path, ignore)
			if err != nil {
				return err
			}

			if jsonOutput {
				if report.Files == nil {
					report.Files = []rewrite.LegacyFile{}
				}
				if err := writeJSON(cmd.OutOrStdout(), report); err != nil {
					return err
				}
			} else {
				fmt.Fprint(cmd.OutOrStdout(), tui.RenderLegacyAudit(report))
			}

			if !report.Clean() {
				return fmt.Errorf("%w: %d occurrences in %d files", domain.ErrResidualLegacy, report.Total(), len(report.Files))
			}
			return nil
		},
	}

	cmd.Flags().StringSliceVar(&ignore, "ignore", nil, "Extra glob patterns to skip, relative to the workspace")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output the report as JSON")
	return cmd
}
