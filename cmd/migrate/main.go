package main

import (
	"fmt" // Error output
	"os"  // Exit codes

	"places_api/internal/config" // Custom import path (Config)
	"places_api/internal/db"     // Custom import path (Database)

	"github.com/spf13/cobra" // CLI framework
)

// Main entry point for migration
func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "migrate",
		Short: "Database schema tool for the places API",
	}
	rootCmd.AddCommand(upCmd())
	return rootCmd
}

func upCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "up",
		Short: "Create or update the users, places and user_places tables",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.LoadConfig() // Load configuration
			dsn, _ := cmd.Flags().GetString("dsn")
			if dsn == "" {
				if err := cfg.Validate(); err != nil {
					return err
				}
				dsn = cfg.DSN()
			}
			database, err := db.Open(dsn)
			if err != nil {
				return fmt.Errorf("failed to connect database: %w", err)
			}
			if err := db.Migrate(database); err != nil {
				return fmt.Errorf("migration failed: %w", err)
			}
			return nil
		},
	}
	cmd.Flags().String("dsn", "", "MySQL connection string, overrides DB_DSN and DB_* variables")
	return cmd
}
