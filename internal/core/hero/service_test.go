// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package hero_test

import (
	"context"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/heroes/internal/core/hero"
	"github.com/taibuivan/heroes/internal/platform/apperr"
	"github.com/taibuivan/heroes/pkg/pagination"
	"github.com/taibuivan/heroes/pkg/pointer"
)

// countingRepository records how often storage is reached.
type countingRepository struct {
	hero.Repository
	calls int
}

func (r *countingRepository) List(ctx context.Context, q hero.ListQuery) ([]*hero.Hero, int, error) {
	r.calls++
	return r.Repository.List(ctx, q)
}

func (r *countingRepository) GetByID(ctx context.Context, id int64) (*hero.Hero, error) {
	r.calls++
	return r.Repository.GetByID(ctx, id)
}

func (r *countingRepository) Create(ctx context.Context, h *hero.Hero) error {
	r.calls++
	return r.Repository.Create(ctx, h)
}

func (r *countingRepository) Update(ctx context.Context, h *hero.Hero) error {
	r.calls++
	return r.Repository.Update(ctx, h)
}

func (r *countingRepository) Delete(ctx context.Context, id int64) error {
	r.calls++
	return r.Repository.Delete(ctx, id)
}

func newService(t *testing.T) (*hero.Service, *countingRepository) {
	t.Helper()
	repo := &countingRepository{Repository: newMemoryRepository(t)}
	return hero.NewService(repo, slog.New(slog.NewTextHandler(io.Discard, nil))), repo
}

/*
TestService_Create validates input before storing.
*/
func TestService_Create(t *testing.T) {
	service, repo := newService(t)
	ctx := context.Background()

	created, err := service.Create(ctx, hero.CreateRequest{Name: "Bruce Wayne", Alias: "Batman"})
	require.NoError(t, err)
	assert.Equal(t, int64(1), created.ID)
	assert.Nil(t, created.Powers)

	tests := []struct {
		name   string
		input  hero.CreateRequest
		fields []string
	}{
		{"missing_both", hero.CreateRequest{}, []string{"name", "alias"}},
		{"blank_name", hero.CreateRequest{Name: "   ", Alias: "X"}, []string{"name"}},
		{"alias_too_long", hero.CreateRequest{Name: "X", Alias: strings.Repeat("a", 101)}, []string{"alias"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			before := repo.calls
			_, err := service.Create(ctx, tt.input)
			require.Error(t, err)

			appErr := apperr.As(err)
			require.NotNil(t, appErr)
			assert.Equal(t, apperr.CodeValidation, appErr.Code)

			fields := make([]string, 0, len(appErr.Details))
			for _, d := range appErr.Details {
				fields = append(fields, d.Field)
			}
			assert.ElementsMatch(t, tt.fields, fields)
			assert.Equal(t, before, repo.calls)
		})
	}

	_, err = service.Create(ctx, hero.CreateRequest{Name: "Copycat", Alias: "Batman", Powers: pointer.To("Mimicry")})
	assert.True(t, apperr.HasCode(err, apperr.CodeAlreadyExists))

	existing, err := service.Get(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Bruce Wayne", existing.Name)
	assert.Nil(t, existing.Powers)
}

/*
TestService_Update_EmptyPayload is rejected without reaching storage, even for unknown ids.
*/
func TestService_Update_EmptyPayload(t *testing.T) {
	service, repo := newService(t)

	_, err := service.Update(context.Background(), 12345, hero.UpdateRequest{})
	require.Error(t, err)
	assert.True(t, apperr.HasCode(err, apperr.CodeInvalidRequest))
	assert.Zero(t, repo.calls)
}

/*
TestService_Update changes only supplied fields.
*/
func TestService_Update(t *testing.T) {
	service, _ := newService(t)
	ctx := context.Background()

	created, err := service.Create(ctx, hero.CreateRequest{Name: "Clark Kent", Alias: "Superman", Powers: pointer.To("Flight")})
	require.NoError(t, err)

	updated, err := service.Update(ctx, created.ID, hero.UpdateRequest{Powers: pointer.To("Flight, heat vision")})
	require.NoError(t, err)
	assert.Equal(t, "Clark Kent", updated.Name)
	assert.Equal(t, "Superman", updated.Alias)
	assert.Equal(t, "Flight, heat vision", *updated.Powers)

	_, err = service.Update(ctx, 999, hero.UpdateRequest{Name: pointer.To("Nobody")})
	assert.True(t, apperr.HasCode(err, apperr.CodeNotFound))

	_, err = service.Update(ctx, created.ID, hero.UpdateRequest{Alias: pointer.To("")})
	assert.True(t, apperr.HasCode(err, apperr.CodeValidation))
}

/*
TestService_Delete resolves the hero first and reports NOT_FOUND afterwards.
*/
func TestService_Delete(t *testing.T) {
	service, _ := newService(t)
	ctx := context.Background()

	created, err := service.Create(ctx, hero.CreateRequest{Name: "Diana Prince", Alias: "Wonder Woman"})
	require.NoError(t, err)

	require.NoError(t, service.Delete(ctx, created.ID))
	assert.True(t, apperr.HasCode(service.Delete(ctx, created.ID), apperr.CodeNotFound))
}

/*
TestService_List computes metadata from the filtered total without clamping.
*/
func TestService_List(t *testing.T) {
	service, _ := newService(t)
	ctx := context.Background()

	for _, alias := range []string{"A", "B", "C"} {
		_, err := service.Create(ctx, hero.CreateRequest{Name: "Hero " + alias, Alias: alias})
		require.NoError(t, err)
	}

	page, err := service.List(ctx, hero.ListQuery{
		Ordering: hero.ParseOrdering(nil),
		Page:     pagination.Params{Page: 5, Limit: 2},
	})
	require.NoError(t, err)
	assert.Empty(t, page.Heroes)
	assert.Equal(t, 3, page.Meta.Total)
	assert.Equal(t, 2, page.Meta.TotalPages)
	assert.False(t, page.Meta.HasMore)
	assert.Equal(t, pointer.To(4), page.Meta.PreviousPage)
	assert.Nil(t, page.Meta.NextPage)
}

func TestService_Story(t *testing.T) {
	service, _ := newService(t)
	ctx := context.Background()

	created, err := service.Create(ctx, hero.CreateRequest{Name: "Bruce Wayne", Alias: "Batman"})
	require.NoError(t, err)

	story, err := service.Story(ctx, created.ID)
	require.NoError(t, err)
	assert.Equal(t, created.ID, story.ID)
	assert.Equal(t, hero.Story("Bruce Wayne", "Batman"), story.Story)

	_, err = service.Story(ctx, 404)
	assert.True(t, apperr.HasCode(err, apperr.CodeNotFound))
}

/*
TestStory is a pure function of alias and name.
*/
func TestStory(t *testing.T) {
	story := hero.Story("Bruce Wayne", "Batman")
	assert.Contains(t, story, `"Batman"`)
	assert.Contains(t, story, "Bruce Wayne")
	assert.Equal(t, story, hero.Story("Bruce Wayne", "Batman"))
}
