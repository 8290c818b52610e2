package main

import (
	"errors"

	"github.com/rogerio-castellano/inventario-api/internal/auth"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

var (
	newUsername string
	newFullName string
	newPassword string
)

var userCmd = &cobra.Command{
	Use:   "user",
	Short: "Manage API users",
}

var userCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create an active user",
	Long: `Creates an active user in the configured store. Usage:

	inventory user create --username admin --nombre "Administrador" --password secret123
`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		if cfg.DatabaseURL == "" {
			return errors.New("DATABASE_URL is required; the in-memory store does not outlive this command")
		}

		st, closeStores, err := openStores(cmd.Context(), cfg)
		if err != nil {
			return err
		}
		defer closeStores()

		svc := auth.NewAuthService(
			st.users,
			auth.NewTokens(cfg.JWTSecret, cfg.TokenTTL),
			auth.NewPasswords(cfg.BcryptCost),
		)
		user, err := svc.Register(cmd.Context(), newUsername, newFullName, newPassword)
		if err != nil {
			return err
		}
		log.Info().Str("username", user.Username).Str("id", user.ID).Msg("user created")
		return nil
	},
}

func init() {
	userCreateCmd.Flags().StringVar(&newUsername, "username", "", "login name (at least 3 characters)")
	userCreateCmd.Flags().StringVar(&newFullName, "nombre", "", "display name")
	userCreateCmd.Flags().StringVar(&newPassword, "password", "", "password (at least 6 characters)")
	_ = userCreateCmd.MarkFlagRequired("username")
	_ = userCreateCmd.MarkFlagRequired("nombre")
	_ = userCreateCmd.MarkFlagRequired("password")

	rootCmd.AddCommand(userCmd)
	userCmd.AddCommand(userCreateCmd)
}
