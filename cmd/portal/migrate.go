package main

import (
	"github.com/deppfellow/portal-api/internal/database"
	"github.com/deppfellow/portal-api/internal/logger"
	"github.com/spf13/cobra"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Apply pending database migrations",
	RunE: func(cmd *cobra.Command, args []string) error {
		log := logger.NewLoggerWithService(cfg.Observability, nil)
		return database.Migrate(cmd.Context(), &log, cfg)
	},
}
