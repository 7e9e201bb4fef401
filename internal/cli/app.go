package cli

import (
	"fmt"
	"time"

	"crm-backend/internal/config"
	"crm-backend/internal/seed"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
	"gorm.io/gorm"
)

var (
	okMark   = color.New(color.FgGreen).Sprint("✓")
	failMark = color.New(color.FgRed).Sprint("✗")
	warn     = color.New(color.FgYellow).SprintFunc()
	bold     = color.New(color.Bold).SprintFunc()
)

// connect loads the application configuration and opens the database the same way the server does
func connect(cmd *cobra.Command) (*config.Config, *gorm.DB, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load config: %w", err)
	}

	attempts, _ := cmd.Flags().GetInt("db-retries")
	if attempts < 1 {
		attempts = 1
	}
	db, err := seed.ConnectWithRetry(cfg.DatabaseURL, attempts, time.Second)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	return cfg, db, nil
}

// closeDB releases the connection pool opened by connect
func closeDB(db *gorm.DB) {
	if sqlDB, err := db.DB(); err == nil {
		_ = sqlDB.Close()
	}
}
