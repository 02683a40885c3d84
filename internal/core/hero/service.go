// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package hero

import (
	"context"
	"log/slog"

	"github.com/taibuivan/heroes/internal/platform/apperr"
	"github.com/taibuivan/heroes/internal/platform/ctxutil"
	"github.com/taibuivan/heroes/internal/platform/validate"
	"github.com/taibuivan/heroes/pkg/pagination"
)

// # Service Layer

// Service orchestrates the business rules of the hero catalogue.
type Service struct {
	repo   Repository
	logger *slog.Logger
}

// NewService constructs a new [Service] with its repository.
func NewService(repo Repository, logger *slog.Logger) *Service {
	return &Service{
		repo:   repo,
		logger: logger,
	}
}

// Page is one page of a listing with its metadata.
type Page struct {
	Heroes []*Hero
	Meta   pagination.Meta
}

/*
List returns the heroes matching query, ordered and sliced as requested.

The page is not clamped: asking past the last page yields no heroes and
metadata that still reports the true total.
*/
func (service *Service) List(context context.Context, query ListQuery) (*Page, error) {
	heroes, total, err := service.repo.List(context, query)
	if err != nil {
		return nil, err
	}

	return &Page{
		Heroes: heroes,
		Meta:   pagination.NewMeta(query.Page.Page, query.Page.Limit, total),
	}, nil
}

// Get fetches a hero by id.
func (service *Service) Get(context context.Context, id int64) (*Hero, error) {
	return service.repo.GetByID(context, id)
}

/*
Create validates and persists a new hero.

Returns:
  - *Hero: The stored hero with its assigned id
  - error: VALIDATION_ERROR, ALREADY_EXISTS for a taken alias, or storage errors
*/
func (service *Service) Create(context context.Context, input CreateRequest) (*Hero, error) {
	if err := validate.Struct(input); err != nil {
		return nil, err
	}

	hero := &Hero{
		Name:   input.Name,
		Alias:  input.Alias,
		Powers: input.Powers,
	}

	if err := service.repo.Create(context, hero); err != nil {
		return nil, err
	}

	service.log(context).Info("hero_created",
		slog.Int64("hero_id", hero.ID),
		slog.String("alias", hero.Alias),
	)

	return hero, nil
}

/*
Update applies a partial update to an existing hero.

An empty payload is rejected before storage is touched. Only the supplied
fields change; the rest keep their stored values.
*/
func (service *Service) Update(context context.Context, id int64, input UpdateRequest) (*Hero, error) {
	if input.IsEmpty() {
		return nil, apperr.InvalidRequest("No fields to update")
	}

	if err := validate.Struct(input); err != nil {
		return nil, err
	}

	hero, err := service.repo.GetByID(context, id)
	if err != nil {
		return nil, err
	}

	input.apply(hero)

	if err := service.repo.Update(context, hero); err != nil {
		return nil, err
	}

	service.log(context).Info("hero_updated", slog.Int64("hero_id", hero.ID))

	return hero, nil
}

// Delete removes a hero. A second delete of the same id reports NOT_FOUND.
func (service *Service) Delete(context context.Context, id int64) error {
	if _, err := service.repo.GetByID(context, id); err != nil {
		return err
	}

	if err := service.repo.Delete(context, id); err != nil {
		return err
	}

	service.log(context).Info("hero_deleted", slog.Int64("hero_id", id))

	return nil
}

// Story fetches a hero and renders its backstory.
func (service *Service) Story(context context.Context, id int64) (StoryResponse, error) {
	hero, err := service.repo.GetByID(context, id)
	if err != nil {
		return StoryResponse{}, err
	}
	return ToStoryResponse(hero), nil
}

// log prefers the request-scoped logger so events carry the request id.
func (service *Service) log(context context.Context) *slog.Logger {
	return ctxutil.LoggerOr(context, service.logger)
}
