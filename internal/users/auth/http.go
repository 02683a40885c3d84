// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package auth

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/taibuivan/heroes/internal/platform/middleware"
	requestutil "github.com/taibuivan/heroes/internal/platform/request"
	"github.com/taibuivan/heroes/internal/platform/respond"
	"github.com/taibuivan/heroes/internal/platform/sec"
)

// # Definitions & Constructors

// Handler implements the account and token HTTP endpoints.
type Handler struct {
	authService *Service
}

// NewHandler constructs a new [Handler] with its service dependency.
func NewHandler(service *Service) *Handler {
	return &Handler{authService: service}
}

// UserRoutes returns the account endpoints, mounted at /users.
//
// # Endpoints
//   - POST /      : Creates a new member account.
//   - GET  /me    : Returns the caller's account.
//   - GET  /{id}  : Returns an account (self or admin).
func (handler *Handler) UserRoutes() chi.Router {
	router := chi.NewRouter()

	router.Post("/", handler.register)

	router.Group(func(r chi.Router) {
		r.Use(middleware.RequireAuth)
		r.Get("/me", handler.me)
		r.Get("/{id}", handler.getUser)
	})

	return router
}

// AuthRoutes returns the token endpoint, mounted at /auth.
func (handler *Handler) AuthRoutes() chi.Router {
	router := chi.NewRouter()
	router.Post("/token", handler.issueToken)
	return router
}

/*
POST /api/v1/users.

Description: Validates input and persists a new member account.

Request:
  - Body: RegisterRequest (username, password)

Response:
  - 201: UserResponse
  - 400: BAD_REQUEST: Malformed JSON
  - 409: ALREADY_EXISTS: Username taken
  - 422: VALIDATION_ERROR
*/
func (handler *Handler) register(writer http.ResponseWriter, request *http.Request) {
	var input RegisterRequest
	if err := requestutil.DecodeJSON(writer, request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	user, err := handler.authService.Register(request.Context(), input, sec.RoleMember)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.Created(writer, ToResponse(user))
}

/*
POST /api/v1/auth/token.

Request:
  - Body: TokenRequest (username, password)

Response:
  - 200: TokenResponse
  - 401: UNAUTHORIZED: Bad credentials
*/
func (handler *Handler) issueToken(writer http.ResponseWriter, request *http.Request) {
	var input TokenRequest
	if err := requestutil.DecodeJSON(writer, request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	token, err := handler.authService.IssueToken(request.Context(), input)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, token)
}

/*
GET /api/v1/users/me.

Response:
  - 200: UserResponse
  - 401: UNAUTHORIZED
*/
func (handler *Handler) me(writer http.ResponseWriter, request *http.Request) {
	claims, err := requestutil.RequiredClaims(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	user, err := handler.authService.Me(request.Context(), claims)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, ToResponse(user))
}

/*
GET /api/v1/users/{id}.

Response:
  - 200: UserResponse
  - 401: UNAUTHORIZED
  - 403: FORBIDDEN: Another member's account
  - 404: NOT_FOUND
*/
func (handler *Handler) getUser(writer http.ResponseWriter, request *http.Request) {
	claims, err := requestutil.RequiredClaims(request)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	userID, err := requestutil.IntID(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	user, err := handler.authService.GetUser(request.Context(), claims, userID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	respond.OK(writer, ToResponse(user))
}
