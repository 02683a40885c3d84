// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package cli

import (
	"context"
	"errors"
	"log/slog"

	"github.com/taibuivan/heroes/internal/core/hero"
	"github.com/taibuivan/heroes/internal/platform/config"
	pgstore "github.com/taibuivan/heroes/internal/platform/postgres"
	"github.com/taibuivan/heroes/internal/users/auth"
)

// Stores are the repositories the data commands operate on.
type Stores struct {
	Heroes hero.Repository
	Users  auth.UserRepository
	close  func()
}

// NewStores bundles repositories. closeFn may be nil.
func NewStores(heroes hero.Repository, users auth.UserRepository, closeFn func()) *Stores {
	return &Stores{Heroes: heroes, Users: users, close: closeFn}
}

// Close releases the underlying connections.
func (s *Stores) Close() {
	if s.close != nil {
		s.close()
	}
}

// StoreOpener opens the stores for cfg.
type StoreOpener func(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*Stores, error)

// OpenPostgresStores connects to DATABASE_URL. The CLI always targets
// PostgreSQL since the memory driver lives only inside an API process.
func OpenPostgresStores(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*Stores, error) {
	if cfg.DatabaseURL == "" {
		return nil, errors.New("DATABASE_URL is required")
	}

	pool, err := pgstore.NewPool(ctx, cfg.DatabaseURL, logger)
	if err != nil {
		return nil, err
	}

	return NewStores(hero.NewPostgresRepository(pool), auth.NewUserRepository(pool), pool.Close), nil
}
