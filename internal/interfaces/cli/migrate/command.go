// Package migrate implements the database migration commands.
package migrate

import (
	"fmt"

	"github.com/spf13/cobra"
	"gorm.io/gorm"

	"studyhall/internal/infrastructure/config"
	"studyhall/internal/infrastructure/database"
)

// NewCommand returns the migrate command group.
func NewCommand() *cobra.Command {
	var configPath string

	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Manage database migrations",
	}
	cmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "path to config file")

	cmd.AddCommand(&cobra.Command{
		Use:   "up",
		Short: "Apply all pending migrations",
		RunE: func(cmd *cobra.Command, args []string) error {
			db, err := open(configPath)
			if err != nil {
				return err
			}
			defer database.Close(db)
			return database.Migrate(db)
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "status",
		Short: "Show migration status",
		RunE: func(cmd *cobra.Command, args []string) error {
			db, err := open(configPath)
			if err != nil {
				return err
			}
			defer database.Close(db)
			return database.MigrationStatus(db)
		},
	})

	return cmd
}

func open(configPath string) (*gorm.DB, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	return database.NewConnection(&cfg.Database)
}
