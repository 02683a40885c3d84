// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package hero

import "context"

// Repository is the persistence contract for heroes.
//
// Implementations return apperr values: NotFound for a missing id and
// AlreadyExists when an alias is taken.
type Repository interface {
	// List returns one page of heroes and the total matching the filter,
	// both observed from the same snapshot.
	List(context context.Context, query ListQuery) ([]*Hero, int, error)
	GetByID(context context.Context, id int64) (*Hero, error)
	// Create assigns ID and timestamps on hero.
	Create(context context.Context, hero *Hero) error
	// Update persists every mutable field of hero and refreshes UpdatedAt.
	Update(context context.Context, hero *Hero) error
	Delete(context context.Context, id int64) error
}
