// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package hero

import (
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/heroes/pkg/pagination"
)

/*
TestBuildListQuery_NoSearch orders and pages without a WHERE clause.
*/
func TestBuildListQuery_NoSearch(t *testing.T) {
	sql, args, err := buildListQuery(ListQuery{
		Ordering: ParseOrdering([]string{"-name"}),
		Page:     pagination.Params{Page: 3, Limit: 10},
	})
	require.NoError(t, err)

	assert.Equal(t,
		"SELECT id, name, alias, powers, created_at, updated_at FROM heroes ORDER BY name DESC, id ASC LIMIT 10 OFFSET 20",
		sql,
	)
	assert.Empty(t, args)
}

/*
TestBuildListQuery_HugePage keeps the offset within bigint range.
*/
func TestBuildListQuery_HugePage(t *testing.T) {
	sql, _, err := buildListQuery(ListQuery{
		Page: pagination.Params{Page: math.MaxInt, Limit: 10},
	})
	require.NoError(t, err)

	assert.True(t, strings.HasSuffix(sql, "LIMIT 10 OFFSET 9223372036854775807"), sql)
}

/*
TestBuildListQuery_Search places the filter before the ordering and paging.
*/
func TestBuildListQuery_Search(t *testing.T) {
	sql, args, err := buildListQuery(ListQuery{
		Search:   "man",
		Ordering: ParseOrdering([]string{"-powers", "nope"}),
		Page:     pagination.Params{Page: 1, Limit: 5},
	})
	require.NoError(t, err)

	assert.Contains(t, sql, "WHERE (name ILIKE $1 OR alias ILIKE $2 OR powers ILIKE $3)")
	assert.Contains(t, sql, "ORDER BY powers DESC, name ASC, id ASC LIMIT 5 OFFSET 0")
	assert.NotContains(t, sql, "nope")
	assert.Equal(t, []any{"%man%", "%man%", "%man%"}, args)
}

/*
TestBuildCountQuery shares the filter but never orders or pages.
*/
func TestBuildCountQuery(t *testing.T) {
	sql, args, err := buildCountQuery(ListQuery{
		Search:   "bat",
		Ordering: ParseOrdering([]string{"alias"}),
		Page:     pagination.Params{Page: 2, Limit: 10},
	})
	require.NoError(t, err)

	assert.Equal(t, "SELECT COUNT(*) FROM heroes WHERE (name ILIKE $1 OR alias ILIKE $2 OR powers ILIKE $3)", sql)
	assert.Len(t, args, 3)

	sql, args, err = buildCountQuery(ListQuery{Page: pagination.Params{Page: 1, Limit: 10}})
	require.NoError(t, err)
	assert.Equal(t, "SELECT COUNT(*) FROM heroes", sql)
	assert.Empty(t, args)
}

/*
TestSearchPattern escapes LIKE metacharacters so the term matches literally.
*/
func TestSearchPattern(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"man", "%man%"},
		{"100%", `%100\%%`},
		{"a_b", `%a\_b%`},
		{`back\slash`, `%back\\slash%`},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, searchPattern(tt.in), tt.in)
	}
}
