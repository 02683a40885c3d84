// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package cli implements heroctl, the operator command line of the heroes API.

Commands:

  - migrate up|down: Apply or roll back the SQL schema.
  - seed: Load the demo hero roster.
  - user create: Create an account, optionally with the admin role.

Every command reads the same environment configuration as the API server.
*/
package cli

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/spf13/cobra"

	"github.com/taibuivan/heroes/internal/platform/config"
	"github.com/taibuivan/heroes/internal/platform/migration"
)

// # Dependencies

// Dependencies are the collaborators the commands reach for. Tests replace them.
type Dependencies struct {
	LoadConfig  func() (*config.Config, error)
	OpenStores  StoreOpener
	MigrateUp   func(cfg *config.Config, logger *slog.Logger) error
	MigrateDown func(cfg *config.Config, steps int, logger *slog.Logger) error
}

// DefaultDependencies wires the commands to PostgreSQL and golang-migrate.
func DefaultDependencies() Dependencies {
	return Dependencies{
		LoadConfig: config.Load,
		OpenStores: OpenPostgresStores,
		MigrateUp: func(cfg *config.Config, logger *slog.Logger) error {
			return migration.RunUp(cfg.DatabaseURL, cfg.MigrationPath, logger)
		},
		MigrateDown: func(cfg *config.Config, steps int, logger *slog.Logger) error {
			return migration.RunDown(cfg.DatabaseURL, cfg.MigrationPath, steps, logger)
		},
	}
}

// session carries what PersistentPreRunE prepared for the subcommands.
type session struct {
	deps   Dependencies
	cfg    *config.Config
	logger *slog.Logger
}

// withStores opens the stores for one command and closes them afterwards.
func (s *session) withStores(ctx context.Context, fn func(*Stores) error) error {
	stores, err := s.deps.OpenStores(ctx, s.cfg, s.logger)
	if err != nil {
		return fmt.Errorf("open storage: %w", err)
	}
	defer stores.Close()
	return fn(stores)
}

// # Root Command

// NewRootCmd creates the heroctl root command with all subcommands attached.
func NewRootCmd(version string, deps Dependencies) *cobra.Command {
	s := &session{deps: deps}

	cmd := &cobra.Command{
		Use:           "heroctl",
		Short:         "Operate the heroes API database",
		Version:       version,
		SilenceUsage:  true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			level := slog.LevelInfo
			if debug, _ := cmd.Flags().GetBool("debug"); debug {
				level = slog.LevelDebug
			}
			s.logger = slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level}))

			cfg, err := deps.LoadConfig()
			if err != nil {
				return fmt.Errorf("load configuration: %w", err)
			}
			s.cfg = cfg
			return nil
		},
	}

	cmd.PersistentFlags().Bool("debug", false, "enable debug logging")
	cmd.AddCommand(newMigrateCmd(s), newSeedCmd(s), newUserCmd(s))

	return cmd
}
