// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package hero

import (
	"strings"

	"github.com/taibuivan/heroes/internal/platform/database/schema"
)

// SortKey names a sortable hero attribute.
type SortKey string

// Sortable keys. Timestamps are deliberately absent.
const (
	SortID     SortKey = "id"
	SortName   SortKey = "name"
	SortAlias  SortKey = "alias"
	SortPowers SortKey = "powers"
)

// sortColumns is the whitelist of accepted keys and the column each one orders by.
var sortColumns = map[SortKey]string{
	SortID:     schema.Heroes.ID,
	SortName:   schema.Heroes.Name,
	SortAlias:  schema.Heroes.Alias,
	SortPowers: schema.Heroes.Powers,
}

// Directive is one ordering step: a key and a direction.
type Directive struct {
	Key        SortKey
	Descending bool
}

// String renders the directive in its query-string form ("-name", "alias").
func (d Directive) String() string {
	if d.Descending {
		return "-" + string(d.Key)
	}
	return string(d.Key)
}

// SQL renders the directive as an ORDER BY item.
func (d Directive) SQL() string {
	if d.Descending {
		return sortColumns[d.Key] + " DESC"
	}
	return sortColumns[d.Key] + " ASC"
}

// Ordering is the parsed form of the caller's order_by tokens.
type Ordering struct {
	// Accepted holds the recognised directives in the order supplied.
	Accepted []Directive
	// Ignored holds the tokens that were dropped.
	Ignored []string
}

// ParseOrdering turns raw tokens into directives.
//
// A leading "-" means descending and an optional leading "+" means ascending.
// Keys outside the whitelist are dropped rather than rejected, as are repeats
// of a key already seen; both end up in Ignored.
func ParseOrdering(tokens []string) Ordering {
	ordering := Ordering{
		Accepted: make([]Directive, 0, len(tokens)),
		Ignored:  make([]string, 0),
	}
	seen := make(map[SortKey]bool, len(tokens))

	for _, token := range tokens {
		directive, ok := parseDirective(token)
		if !ok || seen[directive.Key] {
			ordering.Ignored = append(ordering.Ignored, token)
			continue
		}
		seen[directive.Key] = true
		ordering.Accepted = append(ordering.Accepted, directive)
	}

	return ordering
}

func parseDirective(token string) (Directive, bool) {
	token = strings.TrimSpace(token)

	directive := Directive{}
	switch {
	case strings.HasPrefix(token, "-"):
		directive.Descending = true
		token = token[1:]
	case strings.HasPrefix(token, "+"):
		token = token[1:]
	}

	directive.Key = SortKey(token)
	if _, ok := sortColumns[directive.Key]; !ok {
		return Directive{}, false
	}
	return directive, true
}

// Resolved returns the complete ordering applied to a listing: the accepted
// directives, then name ascending unless name was already ordered on, then
// id ascending as the final tiebreaker.
func (o Ordering) Resolved() []Directive {
	resolved := make([]Directive, 0, len(o.Accepted)+2)
	resolved = append(resolved, o.Accepted...)

	if !o.orders(SortName) {
		resolved = append(resolved, Directive{Key: SortName})
	}
	return append(resolved, Directive{Key: SortID})
}

func (o Ordering) orders(key SortKey) bool {
	for _, directive := range o.Accepted {
		if directive.Key == key {
			return true
		}
	}
	return false
}

// tokens renders directives in their query-string form.
func tokens(directives []Directive) []string {
	out := make([]string, 0, len(directives))
	for _, directive := range directives {
		out = append(out, directive.String())
	}
	return out
}
