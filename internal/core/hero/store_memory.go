// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package hero

import (
	"cmp"
	"context"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/hashicorp/go-memdb"
	"golang.org/x/text/cases"

	"github.com/taibuivan/heroes/internal/platform/apperr"
	"github.com/taibuivan/heroes/internal/platform/database/schema"
	"github.com/taibuivan/heroes/internal/platform/memstore"
)

// MemoryRepository stores heroes in a go-memdb database.
//
// It mirrors the PostgreSQL repository's observable behaviour: case-insensitive
// search, the same ordering rules (NULL powers sort last ascending and first
// descending) and alias uniqueness. Strings compare by code point rather than
// by collation.
type MemoryRepository struct {
	db  *memstore.DB
	now func() time.Time
}

// NewMemoryRepository returns a repository backed by db.
func NewMemoryRepository(db *memstore.DB) *MemoryRepository {
	return &MemoryRepository{
		db:  db,
		now: func() time.Time { return time.Now().UTC() },
	}
}

func (repository *MemoryRepository) List(_ context.Context, query ListQuery) ([]*Hero, int, error) {
	txn := repository.db.Txn(false)
	defer txn.Abort()

	iterator, err := txn.Get(schema.Heroes.Table, memstore.IndexID)
	if err != nil {
		return nil, 0, apperr.Internal(fmt.Errorf("list_heroes: %w", err))
	}

	matcher := newSearchMatcher(query.Search)
	matched := make([]*Hero, 0)
	for obj := iterator.Next(); obj != nil; obj = iterator.Next() {
		hero := obj.(*Hero)
		if matcher.matches(hero) {
			matched = append(matched, hero)
		}
	}

	directives := query.Ordering.Resolved()
	slices.SortStableFunc(matched, func(a, b *Hero) int {
		return compareHeroes(a, b, directives)
	})

	total := len(matched)
	start := query.Page.Offset()
	if start < 0 || start > total {
		start = total
	}
	end := start + min(query.Page.Limit, total-start)

	page := make([]*Hero, 0, end-start)
	for _, hero := range matched[start:end] {
		page = append(page, hero.clone())
	}
	return page, total, nil
}

func (repository *MemoryRepository) GetByID(_ context.Context, id int64) (*Hero, error) {
	txn := repository.db.Txn(false)
	defer txn.Abort()

	obj, err := txn.First(schema.Heroes.Table, memstore.IndexID, id)
	if err != nil {
		return nil, apperr.Internal(fmt.Errorf("get_hero_by_id: %w", err))
	}
	if obj == nil {
		return nil, apperr.NotFound(resourceName)
	}
	return obj.(*Hero).clone(), nil
}

func (repository *MemoryRepository) Create(_ context.Context, hero *Hero) error {
	txn := repository.db.Txn(true)
	defer txn.Abort()

	if err := repository.ensureAliasFree(txn, hero.Alias, 0); err != nil {
		return err
	}

	now := repository.now()
	stored := hero.clone()
	stored.ID = repository.db.NextID(schema.Heroes.Table)
	stored.CreatedAt = now
	stored.UpdatedAt = now

	if err := txn.Insert(schema.Heroes.Table, stored); err != nil {
		return apperr.Internal(fmt.Errorf("create_hero: %w", err))
	}
	txn.Commit()

	hero.ID = stored.ID
	hero.CreatedAt = stored.CreatedAt
	hero.UpdatedAt = stored.UpdatedAt
	return nil
}

func (repository *MemoryRepository) Update(_ context.Context, hero *Hero) error {
	txn := repository.db.Txn(true)
	defer txn.Abort()

	existing, err := txn.First(schema.Heroes.Table, memstore.IndexID, hero.ID)
	if err != nil {
		return apperr.Internal(fmt.Errorf("update_hero: %w", err))
	}
	if existing == nil {
		return apperr.NotFound(resourceName)
	}

	if err := repository.ensureAliasFree(txn, hero.Alias, hero.ID); err != nil {
		return err
	}

	stored := hero.clone()
	stored.CreatedAt = existing.(*Hero).CreatedAt
	stored.UpdatedAt = repository.now()

	if err := txn.Insert(schema.Heroes.Table, stored); err != nil {
		return apperr.Internal(fmt.Errorf("update_hero: %w", err))
	}
	txn.Commit()

	hero.CreatedAt = stored.CreatedAt
	hero.UpdatedAt = stored.UpdatedAt
	return nil
}

func (repository *MemoryRepository) Delete(_ context.Context, id int64) error {
	txn := repository.db.Txn(true)
	defer txn.Abort()

	existing, err := txn.First(schema.Heroes.Table, memstore.IndexID, id)
	if err != nil {
		return apperr.Internal(fmt.Errorf("delete_hero: %w", err))
	}
	if existing == nil {
		return apperr.NotFound(resourceName)
	}

	if err := txn.Delete(schema.Heroes.Table, existing); err != nil {
		return apperr.Internal(fmt.Errorf("delete_hero: %w", err))
	}
	txn.Commit()
	return nil
}

// ensureAliasFree fails with AlreadyExists when alias belongs to a hero other than selfID.
// go-memdb does not reject duplicates on secondary indexes, so this runs inside the write txn.
func (repository *MemoryRepository) ensureAliasFree(txn *memdb.Txn, alias string, selfID int64) error {
	owner, err := txn.First(schema.Heroes.Table, memstore.IndexAlias, alias)
	if err != nil {
		return apperr.Internal(fmt.Errorf("lookup_alias: %w", err))
	}
	if owner != nil && owner.(*Hero).ID != selfID {
		return apperr.AlreadyExists(resourceName, FieldAlias, alias)
	}
	return nil
}

// # Search

// searchMatcher performs a case-insensitive substring match, like ILIKE '%term%'.
type searchMatcher struct {
	folder cases.Caser
	term   string
}

// newSearchMatcher prepares a matcher. A Caser is stateful, so one is built per listing.
func newSearchMatcher(search string) *searchMatcher {
	if search == "" {
		return &searchMatcher{}
	}
	folder := cases.Fold()
	return &searchMatcher{folder: folder, term: folder.String(search)}
}

func (m *searchMatcher) matches(hero *Hero) bool {
	if m.term == "" {
		return true
	}
	if m.contains(hero.Name) || m.contains(hero.Alias) {
		return true
	}
	return hero.Powers != nil && m.contains(*hero.Powers)
}

func (m *searchMatcher) contains(value string) bool {
	return strings.Contains(m.folder.String(value), m.term)
}

// # Ordering

// compareHeroes applies directives in order until one distinguishes a from b.
func compareHeroes(a, b *Hero, directives []Directive) int {
	for _, directive := range directives {
		result := compareKey(a, b, directive.Key)
		if directive.Descending {
			result = -result
		}
		if result != 0 {
			return result
		}
	}
	return 0
}

func compareKey(a, b *Hero, key SortKey) int {
	switch key {
	case SortID:
		return cmp.Compare(a.ID, b.ID)
	case SortName:
		return cmp.Compare(a.Name, b.Name)
	case SortAlias:
		return cmp.Compare(a.Alias, b.Alias)
	case SortPowers:
		return compareNullable(a.Powers, b.Powers)
	default:
		return 0
	}
}

// compareNullable orders NULL after every value, as PostgreSQL does by default.
func compareNullable(a, b *string) int {
	switch {
	case a == nil && b == nil:
		return 0
	case a == nil:
		return 1
	case b == nil:
		return -1
	default:
		return cmp.Compare(*a, *b)
	}
}
