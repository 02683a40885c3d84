// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package hero

import (
	"strings"

	sq "github.com/Masterminds/squirrel"

	"github.com/taibuivan/heroes/internal/platform/database/schema"
	"github.com/taibuivan/heroes/pkg/pagination"
)

// psql builds statements with PostgreSQL's $n placeholders.
var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// likeEscaper neutralises LIKE metacharacters so a search is a literal substring.
// Backslash is PostgreSQL's default LIKE escape character.
var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// ListQuery holds the validated inputs of a hero listing.
type ListQuery struct {
	Search   string
	Ordering Ordering
	Page     pagination.Params
}

// searchPattern wraps the escaped term for a contains-match.
func searchPattern(search string) string {
	return "%" + likeEscaper.Replace(search) + "%"
}

// searchPredicate matches the term against every searchable column, or
// returns nil when there is nothing to search for.
func searchPredicate(search string) sq.Sqlizer {
	if search == "" {
		return nil
	}

	pattern := searchPattern(search)
	predicate := sq.Or{}
	for _, column := range schema.Heroes.SearchColumns() {
		predicate = append(predicate, sq.ILike{column: pattern})
	}
	return predicate
}

// buildListQuery returns the page query: filter, full ordering, then LIMIT/OFFSET.
func buildListQuery(q ListQuery) (string, []any, error) {
	builder := psql.Select(schema.Heroes.Columns()...).From(schema.Heroes.Table)

	if predicate := searchPredicate(q.Search); predicate != nil {
		builder = builder.Where(predicate)
	}

	for _, directive := range q.Ordering.Resolved() {
		builder = builder.OrderBy(directive.SQL())
	}

	return builder.
		Limit(uint64(q.Page.Limit)).
		Offset(uint64(q.Page.Offset())).
		ToSql()
}

// buildCountQuery returns the total-count query sharing the list filter.
func buildCountQuery(q ListQuery) (string, []any, error) {
	builder := psql.Select("COUNT(*)").From(schema.Heroes.Table)

	if predicate := searchPredicate(q.Search); predicate != nil {
		builder = builder.Where(predicate)
	}

	return builder.ToSql()
}
