package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hermeslabs/hermes-rebrand/internal/adapters/outbound/manifest"
	"github.com/hermeslabs/hermes-rebrand/internal/adapters/outbound/tui"
	"github.com/hermeslabs/hermes-rebrand/internal/application"
	"github.com/hermeslabs/hermes-rebrand/internal/domain"
)

func newScopeCmd() *cobra.Command {
	var opts application.ScopeOptions

	cmd := &cobra.Command{
		Use:   "scope",
		Short: "Migrate the npm package scope",
		Long:  "Find and rewrite references to the legacy @lobechat/ scope in source files and package manifests.",
	}
	pf := cmd.PersistentFlags()
	pf.StringVar(&opts.Root, "root", ".", "Repository root")
	pf.StringVar(&opts.Legacy, "legacy-scope", domain.LegacyScope, "Scope to replace")
	pf.StringVar(&opts.Target, "target-scope", domain.TargetScope, "Replacement scope")

	cmd.AddCommand(newScopeScanCmd(&opts))
	cmd.AddCommand(newScopeMigrateCmd(&opts))
	cmd.AddCommand(newScopePackagesCmd(&opts))
	return cmd
}

func newScopeScanCmd(opts *application.ScopeOptions) *cobra.Command {
	var (
		manifestPath string
		jsonOutput   bool
	)

	cmd := &cobra.Command{
		Use:   "scan",
		Short: "List files that reference the legacy scope and write a manifest",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			o := *opts
			o.ManifestPath = manifestPath

			m, err := newScopeService(newLogger(cmd)).Scan(o)
			if err != nil {
				return err
			}
			if jsonOutput {
				return writeJSON(cmd.OutOrStdout(), m)
			}
			fmt.Fprint(cmd.OutOrStdout(), tui.RenderScopeManifest(m, manifestPath))
			return nil
		},
	}

	cmd.Flags().StringSliceVar(&opts.Include, "include", nil, "Extra directories to search besides src, packages, apps and tests")
	cmd.Flags().StringVar(&manifestPath, "manifest", manifest.DefaultPath, "Manifest output path, relative to --root (empty to skip)")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output the manifest as JSON")
	return cmd
}

func newScopeMigrateCmd(opts *application.ScopeOptions) *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Rewrite legacy scope imports and references",
		Long:  "Rewrite module specifiers in TypeScript sources and scope references in MDX and config files. Dry run unless --write is set.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			report, err := newScopeService(newLogger(cmd)).Migrate(*opts)
			if err != nil {
				return err
			}
			if jsonOutput {
				return writeJSON(cmd.OutOrStdout(), report)
			}
			fmt.Fprint(cmd.OutOrStdout(), tui.RenderScopeMigration(report))
			return nil
		},
	}

	cmd.Flags().StringSliceVar(&opts.Include, "include", nil, "Extra directories to search besides src, packages, apps and tests")
	cmd.Flags().BoolVar(&opts.Write, "write", false, "Write changes to disk")
	cmd.Flags().StringVar(&opts.ManifestPath, "manifest", "", "Also write the pre-migration scope manifest to this path")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output the report as JSON")
	return cmd
}

func newScopePackagesCmd(opts *application.ScopeOptions) *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "packages",
		Short: "Rename package manifests to the target scope",
		Long: "Rewrite package names, dependency maps and pnpm overrides in the root package.json\n" +
			"and every package under packages/, stamping migration notes. Dry run unless --write is set.",
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			report, err := newScopeService(newLogger(cmd)).MigratePackages(*opts)
			if err != nil {
				return err
			}
			if jsonOutput {
				return writeJSON(cmd.OutOrStdout(), report)
			}
			fmt.Fprint(cmd.OutOrStdout(), tui.RenderPackageMigration(report))
			return nil
		},
	}

	cmd.Flags().BoolVar(&opts.Write, "write", false, "Write changes to disk")
	cmd.Flags().StringVar(&opts.Engineer, "engineer", "", "Name recorded in migration notes (defaults to git user.name)")
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output the report as JSON")
	return cmd
}
