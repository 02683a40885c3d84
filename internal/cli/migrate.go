// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package cli

import (
	"errors"

	"github.com/spf13/cobra"
)

func newMigrateCmd(s *session) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "migrate",
		Short: "Apply or roll back database migrations",
		Long: `Runs the SQL migrations found under MIGRATION_PATH against DATABASE_URL.

A database left dirty by a failed migration is refused until repaired by hand.`,
	}

	cmd.AddCommand(newMigrateUpCmd(s), newMigrateDownCmd(s))
	return cmd
}

func newMigrateUpCmd(s *session) *cobra.Command {
	return &cobra.Command{
		Use:   "up",
		Short: "Apply all pending migrations",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := s.deps.MigrateUp(s.cfg, s.logger); err != nil {
				return err
			}
			cmd.Println("Migrations applied")
			return nil
		},
	}
}

func newMigrateDownCmd(s *session) *cobra.Command {
	var (
		steps int
		all   bool
	)

	cmd := &cobra.Command{
		Use:   "down",
		Short: "Roll back migrations",
		Example: `  # Roll back the latest migration
  heroctl migrate down

  # Roll back three migrations
  heroctl migrate down --steps 3

  # Drop the whole schema
  heroctl migrate down --all`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if all {
				steps = 0
			} else if steps < 1 {
				return errors.New("--steps must be at least 1")
			}

			if err := s.deps.MigrateDown(s.cfg, steps, s.logger); err != nil {
				return err
			}
			cmd.Println("Migrations rolled back")
			return nil
		},
	}

	cmd.Flags().IntVar(&steps, "steps", 1, "number of migrations to roll back")
	cmd.Flags().BoolVar(&all, "all", false, "roll back every migration")
	cmd.MarkFlagsMutuallyExclusive("steps", "all")

	return cmd
}
