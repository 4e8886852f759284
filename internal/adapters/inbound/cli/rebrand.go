package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/hermeslabs/hermes-rebrand/internal/adapters/outbound/tui"
	"github.com/hermeslabs/hermes-rebrand/internal/application"
	"github.com/hermeslabs/hermes-rebrand/internal/domain"
)

// overrideFlag binds one brand field to a command-line flag.
type overrideFlag struct {
	name  string
	usage string
	set   func(o *domain.BrandOverrides, v *string)
}

var overrideFlags = []overrideFlag{
	{"brand-name", "Product name", func(o *domain.BrandOverrides, v *string) { o.Name = v }},
	{"brand-short-name", "Short product name (defaults to --brand-name)", func(o *domain.BrandOverrides, v *string) { o.ShortName = v }},
	{"brand-domain", "Primary product domain", func(o *domain.BrandOverrides, v *string) { o.Domain = v }},
	{"cdn-domain", "CDN domain", func(o *domain.BrandOverrides, v *string) { o.CDNDomain = v }},
	{"support-email", "Support email address", func(o *domain.BrandOverrides, v *string) { o.SupportEmail = v }},
	{"support-url", "Support site URL", func(o *domain.BrandOverrides, v *string) { o.SupportURL = v }},
	{"contact-email", "General contact email", func(o *domain.BrandOverrides, v *string) { contact(o).Email = v }},
	{"contact-discord", "Discord invite URL", func(o *domain.BrandOverrides, v *string) { contact(o).Discord = v }},
	{"contact-telegram", "Telegram URL", func(o *domain.BrandOverrides, v *string) { contact(o).Telegram = v }},
	{"contact-website", "Marketing website URL", func(o *domain.BrandOverrides, v *string) { contact(o).Website = v }},
	{"asset-logo", "Logo asset path", func(o *domain.BrandOverrides, v *string) { assets(o).Logo = v }},
	{"asset-favicon", "Favicon asset path", func(o *domain.BrandOverrides, v *string) { assets(o).Favicon = v }},
	{"asset-wordmark", "Wordmark asset path", func(o *domain.BrandOverrides, v *string) { assets(o).Wordmark = v }},
	{"asset-banner", "Banner asset path", func(o *domain.BrandOverrides, v *string) { assets(o).Banner = v }},
	{"organization-name", "Organization name", func(o *domain.BrandOverrides, v *string) { organization(o).Name = v }},
	{"organization-domain", "Organization domain", func(o *domain.BrandOverrides, v *string) { organization(o).Domain = v }},
	{"repository-host", "Repository host", func(o *domain.BrandOverrides, v *string) { repository(o).Host = v }},
	{"repository-owner", "Repository owner", func(o *domain.BrandOverrides, v *string) { repository(o).Owner = v }},
	{"repository-name", "Repository name", func(o *domain.BrandOverrides, v *string) { repository(o).Name = v }},
	{"theme-token-prefix", "Theme token prefix, e.g. HERMES_THEME", func(o *domain.BrandOverrides, v *string) { tokens(o).ThemePrefix = v }},
}

func contact(o *domain.BrandOverrides) *domain.ContactOverrides {
	if o.Contact == nil {
		o.Contact = &domain.ContactOverrides{}
	}
	return o.Contact
}

func assets(o *domain.BrandOverrides) *domain.AssetOverrides {
	if o.Assets == nil {
		o.Assets = &domain.AssetOverrides{}
	}
	return o.Assets
}

func organization(o *domain.BrandOverrides) *domain.OrganizationOverrides {
	if o.Organization == nil {
		o.Organization = &domain.OrganizationOverrides{}
	}
	return o.Organization
}

func repository(o *domain.BrandOverrides) *domain.RepositoryOverrides {
	if o.Repository == nil {
		o.Repository = &domain.RepositoryOverrides{}
	}
	return o.Repository
}

func tokens(o *domain.BrandOverrides) *domain.TokenOverrides {
	if o.Tokens == nil {
		o.Tokens = &domain.TokenOverrides{}
	}
	return o.Tokens
}

// overridesFromFlags builds the command-line override layer. Only flags the
// operator set are included, so an unset flag never masks the metadata file.
func overridesFromFlags(fs *pflag.FlagSet) (*domain.BrandOverrides, error) {
	o := &domain.BrandOverrides{}
	for _, f := range overrideFlags {
		if !fs.Changed(f.name) {
			continue
		}
		v, err := fs.GetString(f.name)
		if err != nil {
			return nil, err
		}
		f.set(o, &v)
	}
	if o.Name != nil && o.ShortName == nil {
		short := *o.Name
		o.ShortName = &short
	}
	if o.IsEmpty() {
		return nil, nil
	}
	return o, nil
}

type rebrandReport struct {
	Workspace string                `json:"workspace"`
	Mode      domain.Mode           `json:"mode"`
	Brand     domain.BrandMetadata  `json:"brand"`
	Summary   domain.RebrandSummary `json:"summary"`
	Breakdown []domain.RuleCount    `json:"breakdown"`
	ElapsedMS int64                 `json:"elapsedMs"`
}

func newRebrandCmd() *cobra.Command {
	var (
		workspace     string
		mode          string
		dryRun        bool
		metadataFile  string
		ignore        []string
		concurrency   int
		recordHistory bool
		regressionCmd string
		jsonOutput    bool
	)

	cmd := &cobra.Command{
		Use:   "rebrand [path]",
		Short: "Rewrite legacy branding across a workspace",
		Long: "Walk the workspace and rewrite every legacy LobeChat and LobeHub literal to the resolved brand.\n" +
			"The brand starts from the Hermes Chat defaults, then the metadata file, then flags.\n\n" +
			"--mode validate fails when any file would still change. Identifiers the rules leave\n" +
			"alone, such as useLobeChatStore, do not fail it; run audit to list every legacy literal.",
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("workspace") && len(args) > 0 {
				workspace = args[0]
			}

			m, err := domain.ParseMode(mode)
			if err != nil {
				return err
			}
			overrides, err := overridesFromFlags(cmd.Flags())
			if err != nil {
				return err
			}

			log := newLogger(cmd)
			svc := newRebrandService(log)
			res, runErr := svc.Run(cmd.Context(), application.RebrandOptions{
				Workspace:         workspace,
				Mode:              m,
				DryRun:            dryRun,
				Overrides:         overrides,
				MetadataFile:      metadataFile,
				Ignore:            ignore,
				Concurrency:       concurrency,
				RegressionCommand: strings.Fields(regressionCmd),
				RecordHistory:     recordHistory,
				Stdout:            cmd.OutOrStdout(),
				Stderr:            cmd.ErrOrStderr(),
			})
			if res == nil {
				return runErr
			}

			if jsonOutput {
				if err := writeJSON(cmd.OutOrStdout(), rebrandReport{
					Workspace: res.Workspace,
					Mode:      res.Mode,
					Brand:     res.Brand,
					Summary:   res.Summary,
					Breakdown: res.Summary.Breakdown(res.RuleIDs),
					ElapsedMS: res.Elapsed.Milliseconds(),
				}); err != nil {
					return fmt.Errorf("encoding report: %w", err)
				}
			} else {
				fmt.Fprint(cmd.OutOrStdout(), tui.RenderRebrandSummary(res.Summary, res.RuleIDs, res.Elapsed))
			}
			return runErr
		},
	}

	f := cmd.Flags()
	f.StringVar(&workspace, "workspace", ".", "Workspace root to rewrite")
	f.StringVar(&mode, "mode", string(domain.ModeApply), "Run mode: apply, lint-strings or validate")
	f.BoolVar(&dryRun, "dry-run", false, "Report changes without writing files")
	f.StringVar(&metadataFile, "metadata-file", "", "Brand metadata file (.json, .yaml or .toml)")
	f.StringSliceVar(&ignore, "ignore", nil, "Extra glob patterns to skip, relative to the workspace")
	f.IntVar(&concurrency, "concurrency", 0, "Files processed in parallel (default from config, else 1)")
	f.BoolVar(&recordHistory, "history", false, "Append the run summary to .hermes-rebrand/history")
	f.StringVar(&regressionCmd, "regression-cmd", "", "Regression command for lint-strings and validate modes")
	f.BoolVar(&jsonOutput, "json", false, "Output the summary as JSON")
	for _, o := range overrideFlags {
		f.String(o.name, "", o.usage)
	}

	return cmd
}

func newHistoryCmd() *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "history [path]",
		Short: "Show recorded rebrand runs",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := "."
			if len(args) > 0 {
				path = args[0]
			}

			entries, err := newRebrandService(newLogger(cmd)).History(path)
			if err != nil {
				return fmt.Errorf("loading history: %w", err)
			}

			if jsonOutput {
				if entries == nil {
					entries = []domain.RunEntry{}
				}
				return writeJSON(cmd.OutOrStdout(), entries)
			}
			fmt.Fprint(cmd.OutOrStdout(), tui.RenderHistory(entries))
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOutput, "json", false, "Output history as JSON")
	return cmd
}
