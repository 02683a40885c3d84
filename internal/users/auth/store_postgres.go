// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package auth

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/taibuivan/heroes/internal/platform/apperr"
	"github.com/taibuivan/heroes/internal/platform/database/schema"
	"github.com/taibuivan/heroes/internal/platform/dberr"
	"github.com/taibuivan/heroes/internal/platform/sec"
)

// psql builds statements with PostgreSQL's $n placeholders.
var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// # User Repository

// PostgresUserRepository implements [UserRepository] using pgx.
//
// Storage-specific errors (like pgx.ErrNoRows) are mapped to [apperr.AppError]
// values so no driver detail leaks past this type.
type PostgresUserRepository struct {
	pool *pgxpool.Pool
}

// NewUserRepository creates a new PostgreSQL implementation of the UserRepository.
func NewUserRepository(pool *pgxpool.Pool) *PostgresUserRepository {
	return &PostgresUserRepository{pool: pool}
}

func (repository *PostgresUserRepository) FindByID(context context.Context, id int64) (*User, error) {
	return repository.findOne(context, sq.Eq{schema.Users.ID: id}, "find_user_by_id")
}

func (repository *PostgresUserRepository) FindByUsername(context context.Context, username string) (*User, error) {
	return repository.findOne(context, sq.Eq{schema.Users.Username: username}, "find_user_by_username")
}

/*
Create persists a new account into the users table.

Returns:
  - error: ALREADY_EXISTS on a username collision, or connectivity errors
*/
func (repository *PostgresUserRepository) Create(context context.Context, user *User) error {
	query, args, err := psql.Insert(schema.Users.Table).
		Columns(schema.Users.Username, schema.Users.PasswordHash, schema.Users.Role).
		Values(user.Username, user.PasswordHash, string(user.Role)).
		Suffix(fmt.Sprintf("RETURNING %s, %s, %s", schema.Users.ID, schema.Users.CreatedAt, schema.Users.UpdatedAt)).
		ToSql()
	if err != nil {
		return apperr.Internal(fmt.Errorf("build_create_user: %w", err))
	}

	err = repository.pool.QueryRow(context, query, args...).Scan(&user.ID, &user.CreatedAt, &user.UpdatedAt)
	if err != nil {
		if constraint, ok := dberr.IsUniqueViolation(err); ok && constraint == schema.Users.UsernameKey {
			return apperr.AlreadyExists(resourceName, FieldUsername, user.Username)
		}
		return dberr.Wrap(err, resourceName, "create_user")
	}
	return nil
}

func (repository *PostgresUserRepository) findOne(context context.Context, where sq.Eq, action string) (*User, error) {
	query, args, err := psql.Select(schema.Users.Columns()...).
		From(schema.Users.Table).
		Where(where).
		ToSql()
	if err != nil {
		return nil, apperr.Internal(fmt.Errorf("build_%s: %w", action, err))
	}

	user, err := scanUser(repository.pool.QueryRow(context, query, args...))
	if err != nil {
		return nil, dberr.Wrap(err, resourceName, action)
	}
	return user, nil
}

// scanUser reads one row in [schema.UsersTable.Columns] order.
func scanUser(row pgx.Row) (*User, error) {
	var (
		user = &User{}
		role string
	)
	err := row.Scan(&user.ID, &user.Username, &user.PasswordHash, &role, &user.CreatedAt, &user.UpdatedAt)
	if err != nil {
		return nil, err
	}
	user.Role = sec.UserRole(role)
	return user, nil
}
