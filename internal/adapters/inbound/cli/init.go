package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/hermeslabs/hermes-rebrand/internal/adapters/outbound/config"
	"github.com/hermeslabs/hermes-rebrand/internal/domain"
)

// metadataFileName is the brand template written by init --with-metadata.
const metadataFileName = "hermes-brand.json"

func newInitCmd() *cobra.Command {
	var (
		force        bool
		withMetadata bool
	)

	cmd := &cobra.Command{
		Use:   "init [path]",
		Short: "Generate a .hermes-rebrand.yaml configuration file",
		Long:  "Create a .hermes-rebrand.yaml with commented defaults, and optionally a brand metadata template.",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := "."
			if len(args) > 0 {
				path = args[0]
			}

			absPath, err := filepath.Abs(path)
			if err != nil {
				return fmt.Errorf("resolving path: %w", err)
			}

			dest := filepath.Join(absPath, config.FileName)
			written := []string{config.FileName}
			files := map[string][]byte{dest: []byte(generateConfig(withMetadata))}

			if withMetadata {
				data, err := json.MarshalIndent(domain.DefaultBrand(), "", "  ")
				if err != nil {
					return fmt.Errorf("encoding brand template: %w", err)
				}
				files[filepath.Join(absPath, metadataFileName)] = append(data, '\n')
				written = append(written, metadataFileName)
			}

			if !force {
				for fp := range files {
					if _, err := os.Stat(fp); err == nil {
						return fmt.Errorf("%s already exists (use --force to overwrite)", filepath.Base(fp))
					}
				}
			}

			for fp, data := range files {
				if err := os.WriteFile(fp, data, 0o644); err != nil {
					return fmt.Errorf("writing %s: %w", filepath.Base(fp), err)
				}
			}

			for _, name := range written {
				fmt.Fprintf(cmd.OutOrStdout(), "Created %s\n", name)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&force, "force", false, "Overwrite existing files")
	cmd.Flags().BoolVar(&withMetadata, "with-metadata", false, "Also write "+metadataFileName+" with the default brand")

	return cmd
}

func generateConfig(withMetadata bool) string {
	result := "# hermes-rebrand configuration\n\n"

	if withMetadata {
		result += "metadata_file: " + metadataFileName + "\n\n"
	} else {
		result += "# metadata_file: " + metadataFileName + "\n\n"
	}

	result += `# Files processed in parallel.
concurrency: 4

# Skip paths listed in .gitignore files.
respect_gitignore: false

# exclude_paths:
#   - docs/changelog/**
#   - "**/*.snap"

# Command run after lint-strings and validate modes.
# regression_command: [bunx, vitest, run, --silent]
`

	return result
}
