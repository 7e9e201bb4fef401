package cli

import (
	"fmt"

	"crm-backend/internal/seed"

	"github.com/spf13/cobra"
)

// SeedCmd returns the command that loads organizations, pipelines and catalog data from YAML
func SeedCmd() *cobra.Command {
	seedCmd := &cobra.Command{
		Use:   "seed",
		Short: "Load initial data from YAML files",
		Long: `Create organizations, profiles, boards, stages, products and Chatwoot label
mappings declared in a YAML file or a directory of YAML files.
Existing rows are left untouched, so seeding twice is safe.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			path, _ := cmd.Flags().GetString("file")
			dryRun, _ := cmd.Flags().GetBool("dry-run")
			out := cmd.OutOrStdout()

			file, err := seed.Load(path)
			if err != nil {
				return fmt.Errorf("failed to load seed data: %w", err)
			}
			if dryRun {
				fmt.Fprintf(out, "%s %s is valid: %d organization(s)\n", okMark, path, len(file.Organizations))
				return nil
			}

			_, db, err := connect(cmd)
			if err != nil {
				return err
			}
			defer closeDB(db)

			summary, err := seed.Apply(db, file)
			if err != nil {
				return fmt.Errorf("failed to apply seed data: %w", err)
			}
			printSummary(cmd, summary)
			return nil
		},
	}
	seedCmd.Flags().StringP("file", "f", "seed", "Seed file or directory")
	seedCmd.Flags().Bool("dry-run", false, "Validate the files without touching the database")
	return seedCmd
}

func printSummary(cmd *cobra.Command, s *seed.Summary) {
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "%s Seed applied\n", okMark)
	fmt.Fprintf(out, "  Organizations:  %d created\n", s.Organizations)
	fmt.Fprintf(out, "  Profiles:       %d created\n", s.Profiles)
	fmt.Fprintf(out, "  Boards:         %d created\n", s.Boards)
	fmt.Fprintf(out, "  Stages:         %d created\n", s.Stages)
	fmt.Fprintf(out, "  Products:       %d created\n", s.Products)
	fmt.Fprintf(out, "  Label mappings: %d created\n", s.LabelMappings)
}
