// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package hero

import (
	"net/http"
	"strings"
	"unicode/utf8"

	"github.com/go-chi/chi/v5"

	requestutil "github.com/taibuivan/heroes/internal/platform/request"
	"github.com/taibuivan/heroes/internal/platform/respond"
	"github.com/taibuivan/heroes/internal/platform/validate"
	"github.com/taibuivan/heroes/pkg/pagination"
	"github.com/taibuivan/heroes/pkg/query"
	"github.com/taibuivan/heroes/pkg/slice"
)

// Query parameter names of the listing endpoint.
const (
	ParamSearch  = "search"
	ParamOrderBy = "order_by"
)

// # Handler Implementation

// Handler implements the HTTP layer for the hero catalogue.
type Handler struct {
	service *Service
}

// NewHandler constructs a new hero [Handler] with its service dependency.
func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Routes returns a [chi.Router] configured with the hero endpoints.
// All of them are public.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	router.Get("/", handler.listHeroes)
	router.Post("/", handler.createHero)
	router.Get("/{id}", handler.getHero)
	router.Patch("/{id}", handler.updateHero)
	router.Delete("/{id}", handler.deleteHero)
	router.Get("/{id}/story", handler.getStory)

	return router
}

// # Listing

// ListResponse is the body of the listing endpoint.
type ListResponse struct {
	Data       []Response      `json:"data"`
	Pagination pagination.Meta `json:"pagination"`
	Sort       SortInfo        `json:"sort"`
	Filters    FilterInfo      `json:"filters"`
}

// SortInfo echoes how the listing was ordered.
type SortInfo struct {
	// OrderBy lists the accepted directives in the order supplied.
	OrderBy []string `json:"order_by"`
	// Ignored lists tokens that were dropped.
	Ignored []string `json:"ignored"`
	// Applied is the full ordering, tiebreakers included.
	Applied []string `json:"applied"`
}

// FilterInfo echoes the active filters.
type FilterInfo struct {
	Search *string `json:"search"`
}

/*
GET /api/v1/heroes.

Description: Retrieves a page of heroes, optionally filtered by a
case-insensitive substring search and ordered by several keys.

Request:
  - search: string (Matched against name, alias and powers)
  - order_by: []string (Repeatable or comma-separated; "-" prefix for descending)
  - page: int (>= 1, default 1)
  - limit: int (1..100, default 10)

Response:
  - 200: ListResponse
  - 422: VALIDATION_ERROR: Invalid page, limit or search term
*/
func (handler *Handler) listHeroes(writer http.ResponseWriter, request *http.Request) {
	page, err := requestutil.Pagination(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	values := request.URL.Query()
	listQuery := ListQuery{
		Search:   query.Trimmed(values, ParamSearch),
		Ordering: ParseOrdering(query.List(values, ParamOrderBy)),
		Page:     page,
	}

	validator := &validate.Validator{}
	validator.Custom(ParamSearch, !validSearchTerm(listQuery.Search), "Must be valid UTF-8 text without NUL bytes")
	if err := validator.Err(); err != nil {
		respond.Error(writer, request, err)
		return
	}

	result, err := handler.service.List(request.Context(), listQuery)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	response := ListResponse{
		Data:       slice.Map(result.Heroes, ToResponse),
		Pagination: result.Meta,
		Sort: SortInfo{
			OrderBy: tokens(listQuery.Ordering.Accepted),
			Ignored: listQuery.Ordering.Ignored,
			Applied: tokens(listQuery.Ordering.Resolved()),
		},
	}
	if listQuery.Search != "" {
		response.Filters.Search = &listQuery.Search
	}

	respond.JSON(writer, http.StatusOK, response)
}

// # Single Resource

/*
GET /api/v1/heroes/{id}.

Response:
  - 200: Response
  - 404: NOT_FOUND
  - 422: VALIDATION_ERROR: Non-integer id
*/
func (handler *Handler) getHero(writer http.ResponseWriter, request *http.Request) {
	heroID, err := requestutil.IntID(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	hero, err := handler.service.Get(request.Context(), heroID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, ToResponse(hero))
}

/*
GET /api/v1/heroes/{id}/story.

Response:
  - 200: StoryResponse
  - 404: NOT_FOUND
*/
func (handler *Handler) getStory(writer http.ResponseWriter, request *http.Request) {
	heroID, err := requestutil.IntID(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	story, err := handler.service.Story(request.Context(), heroID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, story)
}

// # Mutation Endpoints

/*
POST /api/v1/heroes.

Request:
  - CreateRequest

Response:
  - 201: Response
  - 400: BAD_REQUEST: Malformed JSON
  - 409: ALREADY_EXISTS: Alias taken
  - 422: VALIDATION_ERROR
*/
func (handler *Handler) createHero(writer http.ResponseWriter, request *http.Request) {
	var input CreateRequest
	if err := requestutil.DecodeJSON(writer, request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	hero, err := handler.service.Create(request.Context(), input)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Created(writer, ToResponse(hero))
}

/*
PATCH /api/v1/heroes/{id}.

Request:
  - UpdateRequest (At least one field)

Response:
  - 200: Response
  - 404: NOT_FOUND
  - 409: ALREADY_EXISTS: Alias taken by another hero
  - 422: INVALID_REQUEST: Empty payload / VALIDATION_ERROR
*/
func (handler *Handler) updateHero(writer http.ResponseWriter, request *http.Request) {
	heroID, err := requestutil.IntID(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var input UpdateRequest
	if err := requestutil.DecodeJSON(writer, request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	hero, err := handler.service.Update(request.Context(), heroID, input)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, ToResponse(hero))
}

/*
DELETE /api/v1/heroes/{id}.

Response:
  - 204: No Content
  - 404: NOT_FOUND
*/
func (handler *Handler) deleteHero(writer http.ResponseWriter, request *http.Request) {
	heroID, err := requestutil.IntID(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	if err := handler.service.Delete(request.Context(), heroID); err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.NoContent(writer)
}

// validSearchTerm rejects terms Postgres cannot store in a text parameter.
func validSearchTerm(term string) bool {
	return utf8.ValidString(term) && !strings.ContainsRune(term, 0)
}
