package cli

import (
	"fmt"

	"crm-backend/internal/repository"
	"crm-backend/internal/service"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"gorm.io/gorm"
)

// APIKeyCmd returns the public API key command group
func APIKeyCmd() *cobra.Command {
	apiKeyCmd := &cobra.Command{
		Use:   "apikey",
		Short: "Manage public API keys",
	}
	apiKeyCmd.PersistentFlags().String("org", "", "Organization slug (required)")
	_ = apiKeyCmd.MarkPersistentFlagRequired("org")

	createCmd := &cobra.Command{
		Use:   "create",
		Short: "Issue a new API key; the secret is printed once",
		RunE: func(cmd *cobra.Command, args []string) error {
			name, _ := cmd.Flags().GetString("name")
			return withOrganization(cmd, func(db *gorm.DB, orgID uuid.UUID) error {
				created, err := newAPIKeyService(db).Create(orgID, &service.CreateAPIKeyRequest{Name: name})
				if err != nil {
					return fmt.Errorf("failed to create api key: %w", err)
				}
				out := cmd.OutOrStdout()
				fmt.Fprintf(out, "%s Created API key %s (%s)\n", okMark, created.Name, created.Prefix)
				fmt.Fprintf(out, "  Key: %s\n", bold(created.Key))
				fmt.Fprintln(out, warn("  Store it now, it cannot be shown again."))
				return nil
			})
		},
	}
	createCmd.Flags().String("name", "", "Key name, e.g. the integration using it")
	_ = createCmd.MarkFlagRequired("name")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "List the API keys of an organization",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withOrganization(cmd, func(db *gorm.DB, orgID uuid.UUID) error {
				keys, err := newAPIKeyService(db).List(orgID)
				if err != nil {
					return err
				}
				out := cmd.OutOrStdout()
				if len(keys) == 0 {
					fmt.Fprintln(out, "No API keys found")
					return nil
				}
				for _, key := range keys {
					state := "active"
					if key.RevokedAt != nil {
						state = "revoked " + *key.RevokedAt
					}
					fmt.Fprintf(out, "%s  %-10s %-30s %s\n", key.ID, key.Prefix, key.Name, state)
				}
				return nil
			})
		},
	}

	revokeCmd := &cobra.Command{
		Use:   "revoke [key-id]",
		Short: "Revoke an API key",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := uuid.Parse(args[0])
			if err != nil {
				return fmt.Errorf("invalid key id %q: %w", args[0], err)
			}
			return withOrganization(cmd, func(db *gorm.DB, orgID uuid.UUID) error {
				if err := newAPIKeyService(db).Revoke(orgID, id); err != nil {
					return fmt.Errorf("failed to revoke api key: %w", err)
				}
				fmt.Fprintf(cmd.OutOrStdout(), "%s Revoked API key %s\n", okMark, id)
				return nil
			})
		},
	}

	apiKeyCmd.AddCommand(createCmd)
	apiKeyCmd.AddCommand(listCmd)
	apiKeyCmd.AddCommand(revokeCmd)
	return apiKeyCmd
}

func newAPIKeyService(db *gorm.DB) *service.APIKeyService {
	return service.NewAPIKeyService(repository.NewAPIKeyRepository(db), validator.New())
}

// withOrganization connects to the database and resolves the --org slug before running fn
func withOrganization(cmd *cobra.Command, fn func(db *gorm.DB, orgID uuid.UUID) error) error {
	slug, _ := cmd.Flags().GetString("org")

	_, db, err := connect(cmd)
	if err != nil {
		return err
	}
	defer closeDB(db)

	orgs := service.NewOrganizationService(repository.NewOrganizationRepository(db), repository.NewBoardRepository(db), validator.New())
	org, err := orgs.GetBySlug(slug)
	if err != nil {
		return fmt.Errorf("organization %q: %w", slug, err)
	}
	return fn(db, org.ID)
}
