// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package hero implements the hero catalogue: storage, business rules and the
HTTP surface for creating, browsing, updating and deleting heroes.

# Listing

A listing combines an optional free-text search over name, alias and powers,
a caller-chosen multi-key ordering made deterministic by fixed tiebreakers,
and page-based slicing. The total count is computed over the same filter so
that pagination metadata always agrees with the returned rows.
*/
package hero

import (
	"fmt"
	"time"

	"github.com/taibuivan/heroes/pkg/pointer"
)

// Field names used in validation and conflict details.
const (
	FieldName   = "name"
	FieldAlias  = "alias"
	FieldPowers = "powers"
)

// MaxNameLength bounds both name and alias.
const MaxNameLength = 100

// resourceName is the label used in client-facing error messages.
const resourceName = "Hero"

// Hero is a persisted hero record.
type Hero struct {
	ID        int64
	Name      string
	Alias     string
	Powers    *string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// clone returns a deep copy so callers never share the Powers pointer.
func (h *Hero) clone() *Hero {
	out := *h
	out.Powers = pointer.Clone(h.Powers)
	return &out
}

// # Request Payloads

// CreateRequest is the inbound payload for creating a hero.
type CreateRequest struct {
	Name   string  `json:"name" validate:"notblank,max=100"`
	Alias  string  `json:"alias" validate:"notblank,max=100"`
	Powers *string `json:"powers"`
}

// UpdateRequest is the inbound payload for a partial update.
// A nil field is left unchanged.
type UpdateRequest struct {
	Name   *string `json:"name" validate:"omitempty,notblank,max=100"`
	Alias  *string `json:"alias" validate:"omitempty,notblank,max=100"`
	Powers *string `json:"powers"`
}

// IsEmpty reports whether the payload carries no field at all.
func (r UpdateRequest) IsEmpty() bool {
	return r.Name == nil && r.Alias == nil && r.Powers == nil
}

// apply copies the supplied fields onto hero.
func (r UpdateRequest) apply(hero *Hero) {
	hero.Name = pointer.Or(r.Name, hero.Name)
	hero.Alias = pointer.Or(r.Alias, hero.Alias)
	if r.Powers != nil {
		hero.Powers = pointer.Clone(r.Powers)
	}
}

// # Response Shapes

// Response is the public representation of a hero.
type Response struct {
	ID     int64   `json:"id"`
	Name   string  `json:"name"`
	Alias  string  `json:"alias"`
	Powers *string `json:"powers"`
}

// StoryResponse is a hero together with its generated backstory.
type StoryResponse struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Alias string `json:"alias"`
	Story string `json:"story"`
}

// ToResponse maps a persisted hero to its public shape.
func ToResponse(hero *Hero) Response {
	return Response{
		ID:     hero.ID,
		Name:   hero.Name,
		Alias:  hero.Alias,
		Powers: hero.Powers,
	}
}

// ToStoryResponse maps a persisted hero to its public shape with a story.
func ToStoryResponse(hero *Hero) StoryResponse {
	return StoryResponse{
		ID:    hero.ID,
		Name:  hero.Name,
		Alias: hero.Alias,
		Story: Story(hero.Name, hero.Alias),
	}
}

// Story renders the backstory for a hero. It depends on nothing but its inputs.
func Story(name, alias string) string {
	return fmt.Sprintf(
		"Behind the bustling city lies a legend... that is \"%s\"! "+
			"Few know that this hero, guarding the light in the dark of night, is really %s. "+
			"Everyone they have saved quietly remembers this name.",
		alias, name,
	)
}
