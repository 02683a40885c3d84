// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package cli

import (
	"github.com/spf13/cobra"

	"github.com/taibuivan/heroes/internal/platform/constants"
	"github.com/taibuivan/heroes/internal/platform/sec"
	"github.com/taibuivan/heroes/internal/users/auth"
)

func newUserCmd(s *session) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "user",
		Short: "Manage accounts",
	}
	cmd.AddCommand(newUserCreateCmd(s))
	return cmd
}

func newUserCreateCmd(s *session) *cobra.Command {
	var (
		username string
		password string
		admin    bool
	)

	cmd := &cobra.Command{
		Use:   "create",
		Short: "Create an account",
		Long: `Creates an account directly in the database.

This is the only way to obtain an admin account; the public registration
endpoint always creates members.`,
		Example: `  heroctl user create --username alfred --password 'butler-of-wayne' --admin`,
		Args:    cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			role := sec.RoleMember
			if admin {
				role = sec.RoleAdmin
			}

			tokens, err := sec.NewTokenService(s.cfg.JWTSecret, constants.AuthIssuer, s.cfg.AccessTokenTTL)
			if err != nil {
				return err
			}

			return s.withStores(cmd.Context(), func(stores *Stores) error {
				service := auth.NewService(stores.Users, tokens, s.logger)

				user, err := service.Register(cmd.Context(), auth.RegisterRequest{
					Username: username,
					Password: password,
				}, role)
				if err != nil {
					return err
				}

				cmd.Printf("Created %s %q (id %d)\n", user.Role, user.Username, user.ID)
				return nil
			})
		},
	}

	cmd.Flags().StringVar(&username, "username", "", "account name (letters and digits)")
	cmd.Flags().StringVar(&password, "password", "", "account password (8 to 72 characters)")
	cmd.Flags().BoolVar(&admin, "admin", false, "grant the admin role")
	_ = cmd.MarkFlagRequired("username")
	_ = cmd.MarkFlagRequired("password")

	return cmd
}
