package cli

import (
	"errors"
	"fmt"
	"strings"

	"crm-backend/internal/auth"
	"crm-backend/internal/repository"

	"github.com/spf13/cobra"
	"gorm.io/gorm"
)

// TokenCmd returns the command that signs an access token for a local profile
func TokenCmd() *cobra.Command {
	tokenCmd := &cobra.Command{
		Use:   "token",
		Short: "Sign an access token for a profile (development and testing)",
		Long: `Sign an HS256 access token with JWT_SECRET for an existing profile.
Production tokens are issued by the auth provider.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			email, _ := cmd.Flags().GetString("email")
			ttl, _ := cmd.Flags().GetDuration("ttl")

			cfg, db, err := connect(cmd)
			if err != nil {
				return err
			}
			defer closeDB(db)

			if cfg.IsProduction() {
				return errors.New("refusing to sign tokens in production")
			}

			profiles := repository.NewProfileRepository(db)
			profile, err := profiles.GetByEmail(strings.ToLower(strings.TrimSpace(email)))
			if err != nil {
				if errors.Is(err, gorm.ErrRecordNotFound) {
					return fmt.Errorf("no profile with e-mail %s", email)
				}
				return err
			}

			authService, err := auth.NewAuthService(auth.NewAuthConfig(cfg), profiles, repository.NewAPIKeyRepository(db))
			if err != nil {
				return err
			}
			token, err := authService.GenerateJWT(profile.ID, profile.Email, ttl)
			if err != nil {
				return fmt.Errorf("failed to sign token: %w", err)
			}
			fmt.Fprintln(cmd.OutOrStdout(), token)
			return nil
		},
	}
	tokenCmd.Flags().String("email", "", "Profile e-mail (required)")
	tokenCmd.Flags().Duration("ttl", 0, "Token lifetime (default 1h)")
	_ = tokenCmd.MarkFlagRequired("email")
	return tokenCmd
}
