// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package cli

import (
	"github.com/spf13/cobra"

	"github.com/taibuivan/heroes/internal/core/hero"
)

func newSeedCmd(s *session) *cobra.Command {
	return &cobra.Command{
		Use:   "seed",
		Short: "Load the demo hero roster",
		Long: `Inserts the fixed demo roster of fifteen heroes.

Heroes whose alias already exists are skipped, so the command can be rerun.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return s.withStores(cmd.Context(), func(stores *Stores) error {
				service := hero.NewService(stores.Heroes, s.logger)

				report, err := service.Seed(cmd.Context(), hero.SeedRoster)
				if err != nil {
					return err
				}

				cmd.Printf("Seeded heroes: %d inserted, %d skipped\n", report.Inserted, report.Skipped)
				return nil
			})
		},
	}
}
