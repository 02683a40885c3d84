// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package hero_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/taibuivan/heroes/internal/core/hero"
)

func render(directives []hero.Directive) []string {
	out := make([]string, 0, len(directives))
	for _, d := range directives {
		out = append(out, d.String())
	}
	return out
}

/*
TestParseOrdering covers direction prefixes, unknown keys and duplicates.
*/
func TestParseOrdering(t *testing.T) {
	tests := []struct {
		name     string
		tokens   []string
		accepted []string
		ignored  []string
	}{
		{"empty", nil, []string{}, []string{}},
		{"descending", []string{"-name"}, []string{"-name"}, []string{}},
		{"plus_is_ascending", []string{"+alias"}, []string{"alias"}, []string{}},
		{"unknown_dropped", []string{"-name", "created_at", "alias"}, []string{"-name", "alias"}, []string{"created_at"}},
		{"duplicate_keeps_first", []string{"alias", "-alias"}, []string{"alias"}, []string{"-alias"}},
		{"bare_minus", []string{"-"}, []string{}, []string{"-"}},
		{"case_sensitive", []string{"Name"}, []string{}, []string{"Name"}},
		{"all_keys", []string{"powers", "-id", "alias", "name"}, []string{"powers", "-id", "alias", "name"}, []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ordering := hero.ParseOrdering(tt.tokens)
			assert.Equal(t, tt.accepted, render(ordering.Accepted))
			assert.Equal(t, tt.ignored, ordering.Ignored)
		})
	}
}

/*
TestOrdering_Resolved appends name and id tiebreakers as required.
*/
func TestOrdering_Resolved(t *testing.T) {
	tests := []struct {
		name   string
		tokens []string
		want   []string
	}{
		{"default", nil, []string{"name", "id"}},
		{"name_desc_suppresses_name_default", []string{"-name"}, []string{"-name", "id"}},
		{"other_key_gets_name", []string{"-powers"}, []string{"-powers", "name", "id"}},
		{"id_desc_still_gets_id_asc", []string{"-id"}, []string{"-id", "name", "id"}},
		{"only_unknown", []string{"bogus"}, []string{"name", "id"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, render(hero.ParseOrdering(tt.tokens).Resolved()))
		})
	}
}

func TestDirective_SQL(t *testing.T) {
	assert.Equal(t, "name DESC", hero.Directive{Key: hero.SortName, Descending: true}.SQL())
	assert.Equal(t, "powers ASC", hero.Directive{Key: hero.SortPowers}.SQL())
}
