package main

import (
	"fmt"
	"os"

	"crm-backend/internal/cli"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

func main() {
	// Same .env handling as the server
	_ = godotenv.Load()

	rootCmd := &cobra.Command{
		Use:   "crmctl",
		Short: "Administration tool for the CRM backend",
		Long: `crmctl inspects identity keys, issues public API keys and loads seed data.
Database settings are read from the environment or config.yaml, like the server.`,
		SilenceUsage: true,
	}
	rootCmd.PersistentFlags().Int("db-retries", 30, "Seconds to wait for the database to accept connections")

	rootCmd.AddCommand(cli.IdentityCmd())
	rootCmd.AddCommand(cli.APIKeyCmd())
	rootCmd.AddCommand(cli.TokenCmd())
	rootCmd.AddCommand(cli.SeedCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
