// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package hero

import (
	"context"
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/taibuivan/heroes/internal/platform/apperr"
	"github.com/taibuivan/heroes/internal/platform/database/schema"
	"github.com/taibuivan/heroes/internal/platform/dberr"
	"github.com/taibuivan/heroes/internal/platform/postgres"
)

// PostgresRepository stores heroes in PostgreSQL.
type PostgresRepository struct {
	db *pgxpool.Pool
}

// NewPostgresRepository returns a repository backed by pool.
func NewPostgresRepository(db *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (repository *PostgresRepository) List(context context.Context, query ListQuery) ([]*Hero, int, error) {
	countSQL, countArgs, err := buildCountQuery(query)
	if err != nil {
		return nil, 0, apperr.Internal(fmt.Errorf("build_count_heroes: %w", err))
	}

	listSQL, listArgs, err := buildListQuery(query)
	if err != nil {
		return nil, 0, apperr.Internal(fmt.Errorf("build_list_heroes: %w", err))
	}

	var (
		heroes = make([]*Hero, 0, query.Page.Limit)
		total  int
	)

	err = postgres.ReadSnapshot(context, repository.db, func(tx pgx.Tx) error {
		if err := tx.QueryRow(context, countSQL, countArgs...).Scan(&total); err != nil {
			return dberr.Wrap(err, resourceName, "count_heroes")
		}

		rows, err := tx.Query(context, listSQL, listArgs...)
		if err != nil {
			return dberr.Wrap(err, resourceName, "list_heroes")
		}
		defer rows.Close()

		for rows.Next() {
			hero, err := scanHero(rows)
			if err != nil {
				return dberr.Wrap(err, resourceName, "scan_hero")
			}
			heroes = append(heroes, hero)
		}
		return dberr.Wrap(rows.Err(), resourceName, "iterate_heroes")
	})
	if err != nil {
		return nil, 0, dberr.Wrap(err, resourceName, "list_heroes_tx")
	}

	return heroes, total, nil
}

func (repository *PostgresRepository) GetByID(context context.Context, id int64) (*Hero, error) {
	query, args, err := psql.Select(schema.Heroes.Columns()...).
		From(schema.Heroes.Table).
		Where(sq.Eq{schema.Heroes.ID: id}).
		ToSql()
	if err != nil {
		return nil, apperr.Internal(fmt.Errorf("build_get_hero: %w", err))
	}

	hero, err := scanHero(repository.db.QueryRow(context, query, args...))
	if err != nil {
		return nil, dberr.Wrap(err, resourceName, "get_hero_by_id")
	}
	return hero, nil
}

func (repository *PostgresRepository) Create(context context.Context, hero *Hero) error {
	query, args, err := psql.Insert(schema.Heroes.Table).
		Columns(schema.Heroes.Name, schema.Heroes.Alias, schema.Heroes.Powers).
		Values(hero.Name, hero.Alias, hero.Powers).
		Suffix(fmt.Sprintf("RETURNING %s, %s, %s", schema.Heroes.ID, schema.Heroes.CreatedAt, schema.Heroes.UpdatedAt)).
		ToSql()
	if err != nil {
		return apperr.Internal(fmt.Errorf("build_create_hero: %w", err))
	}

	err = repository.db.QueryRow(context, query, args...).Scan(&hero.ID, &hero.CreatedAt, &hero.UpdatedAt)
	if err != nil {
		return repository.translateWriteError(err, hero.Alias, "create_hero")
	}
	return nil
}

func (repository *PostgresRepository) Update(context context.Context, hero *Hero) error {
	query, args, err := psql.Update(schema.Heroes.Table).
		Set(schema.Heroes.Name, hero.Name).
		Set(schema.Heroes.Alias, hero.Alias).
		Set(schema.Heroes.Powers, hero.Powers).
		Set(schema.Heroes.UpdatedAt, sq.Expr("NOW()")).
		Where(sq.Eq{schema.Heroes.ID: hero.ID}).
		Suffix("RETURNING " + schema.Heroes.UpdatedAt).
		ToSql()
	if err != nil {
		return apperr.Internal(fmt.Errorf("build_update_hero: %w", err))
	}

	err = repository.db.QueryRow(context, query, args...).Scan(&hero.UpdatedAt)
	if err != nil {
		return repository.translateWriteError(err, hero.Alias, "update_hero")
	}
	return nil
}

func (repository *PostgresRepository) Delete(context context.Context, id int64) error {
	query, args, err := psql.Delete(schema.Heroes.Table).
		Where(sq.Eq{schema.Heroes.ID: id}).
		ToSql()
	if err != nil {
		return apperr.Internal(fmt.Errorf("build_delete_hero: %w", err))
	}

	tag, err := repository.db.Exec(context, query, args...)
	if err != nil {
		return dberr.Wrap(err, resourceName, "delete_hero")
	}
	if tag.RowsAffected() == 0 {
		return apperr.NotFound(resourceName)
	}
	return nil
}

// translateWriteError maps an alias unique violation to AlreadyExists.
func (repository *PostgresRepository) translateWriteError(err error, alias, action string) error {
	if constraint, ok := dberr.IsUniqueViolation(err); ok && constraint == schema.Heroes.AliasKey {
		return apperr.AlreadyExists(resourceName, FieldAlias, alias)
	}
	return dberr.Wrap(err, resourceName, action)
}

// scanHero reads one row in [schema.HeroesTable.Columns] order.
func scanHero(row pgx.Row) (*Hero, error) {
	hero := &Hero{}
	err := row.Scan(&hero.ID, &hero.Name, &hero.Alias, &hero.Powers, &hero.CreatedAt, &hero.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return hero, nil
}
