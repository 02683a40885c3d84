// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package auth

import (
	"context"
	"fmt"
	"time"

	"github.com/taibuivan/heroes/internal/platform/apperr"
	"github.com/taibuivan/heroes/internal/platform/database/schema"
	"github.com/taibuivan/heroes/internal/platform/memstore"
)

// MemoryUserRepository implements [UserRepository] on a go-memdb database.
type MemoryUserRepository struct {
	db *memstore.DB
}

// NewMemoryUserRepository returns a repository backed by db.
func NewMemoryUserRepository(db *memstore.DB) *MemoryUserRepository {
	return &MemoryUserRepository{db: db}
}

func (repository *MemoryUserRepository) FindByID(_ context.Context, id int64) (*User, error) {
	return repository.findOne(memstore.IndexID, id)
}

func (repository *MemoryUserRepository) FindByUsername(_ context.Context, username string) (*User, error) {
	return repository.findOne(memstore.IndexUsername, username)
}

func (repository *MemoryUserRepository) Create(_ context.Context, user *User) error {
	txn := repository.db.Txn(true)
	defer txn.Abort()

	// Secondary indexes are not unique-enforced by go-memdb.
	taken, err := txn.First(schema.Users.Table, memstore.IndexUsername, user.Username)
	if err != nil {
		return apperr.Internal(fmt.Errorf("lookup_username: %w", err))
	}
	if taken != nil {
		return apperr.AlreadyExists(resourceName, FieldUsername, user.Username)
	}

	now := time.Now().UTC()
	stored := user.clone()
	stored.ID = repository.db.NextID(schema.Users.Table)
	stored.CreatedAt = now
	stored.UpdatedAt = now

	if err := txn.Insert(schema.Users.Table, stored); err != nil {
		return apperr.Internal(fmt.Errorf("create_user: %w", err))
	}
	txn.Commit()

	user.ID = stored.ID
	user.CreatedAt = stored.CreatedAt
	user.UpdatedAt = stored.UpdatedAt
	return nil
}

func (repository *MemoryUserRepository) findOne(index string, value any) (*User, error) {
	txn := repository.db.Txn(false)
	defer txn.Abort()

	obj, err := txn.First(schema.Users.Table, index, value)
	if err != nil {
		return nil, apperr.Internal(fmt.Errorf("find_user_by_%s: %w", index, err))
	}
	if obj == nil {
		return nil, apperr.NotFound(resourceName)
	}
	return obj.(*User).clone(), nil
}
