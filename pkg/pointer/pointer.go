// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package pointer provides generic helpers for optional values.

Optional fields (nullable columns, fields of a partial update) are modelled
as pointers; these helpers keep the nil checks out of domain code.
*/
package pointer

// To returns a pointer to a copy of v.
func To[T any](v T) *T {
	return &v
}

// Or dereferences p, or returns current when p is nil.
// Partial updates use it to keep a stored value the client did not send.
func Or[T any](p *T, current T) T {
	if p == nil {
		return current
	}
	return *p
}

// Clone returns a fresh pointer to a copy of *p, or nil.
// The result never aliases p.
func Clone[T any](p *T) *T {
	if p == nil {
		return nil
	}
	return To(*p)
}
