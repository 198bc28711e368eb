package main

import (
	"github.com/spf13/cobra"
	"github.com/yukikurage/skillswap-api/internal/database"
	"github.com/yukikurage/skillswap-api/internal/repository"
	"github.com/yukikurage/skillswap-api/internal/services"
)

var protectFlags struct {
	Email string
}

var protectCmd = &cobra.Command{
	Use:     "protect",
	Short:   "Grant admin rights to an account and protect it from demotion and bans",
	Example: `skillswap protect --email owner@example.com`,
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

		admin := services.NewUserAdminService(repository.NewUserRepository(db), log)
		user, err := admin.Protect(cmd.Context(), protectFlags.Email)
		if err != nil {
			return err
		}

		log.Info().Str("user_id", user.ID).Str("email", user.Email).Msg("account is now a protected admin")
		return nil
	},
}

func init() {
	protectCmd.Flags().StringVar(&protectFlags.Email, "email", "", "Email of the account to protect")
	_ = protectCmd.MarkFlagRequired("email")
	rootCmd.AddCommand(protectCmd)
}
