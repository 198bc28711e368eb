package main

import (
	"github.com/spf13/cobra"
	"github.com/yukikurage/skillswap-api/internal/database"
)

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Run database migrations",
	Long:  `Create or update the schema and its composite indexes, then exit.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, log, err := bootstrap()
		if err != nil {
			return err
		}

		db, err := database.Connect(cfg, log)
		if err != nil {
			return err
		}
		defer database.Close(db) //nolint:errcheck

		return database.Migrate(db, log)
	},
}

func init() {
	rootCmd.AddCommand(migrateCmd)
}
