// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package requestutil provides utilities for extracting data from HTTP requests.

It abstracts away the underlying router's parameter extraction and common
body decoding patterns, ensuring consistent error handling and type safety.
*/
package requestutil

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/taibuivan/heroes/internal/platform/apperr"
	"github.com/taibuivan/heroes/internal/platform/ctxutil"
	"github.com/taibuivan/heroes/internal/platform/sec"
	"github.com/taibuivan/heroes/internal/platform/validate"
	"github.com/taibuivan/heroes/pkg/pagination"
)

// maxBodyBytes caps the size of a JSON request body.
const maxBodyBytes = 1 << 20

/*
DecodeJSON reads the request body and decodes it into the target structure.

Parameters:
  - writer: http.ResponseWriter (Used to cap the body size)
  - request: *http.Request
  - target: any (Pointer to the destination struct)

Returns:
  - error: validate.ErrInvalidJSON if decoding fails, otherwise nil
*/
func DecodeJSON(writer http.ResponseWriter, request *http.Request, target any) error {
	decoder := json.NewDecoder(http.MaxBytesReader(writer, request.Body, maxBodyBytes))
	if err := decoder.Decode(target); err != nil {
		return validate.ErrInvalidJSON
	}

	// A second value after the object means the body was not a single JSON document.
	if err := decoder.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		return validate.ErrInvalidJSON
	}
	return nil
}

/*
Param retrieves a named URL parameter from the request.
*/
func Param(request *http.Request, name string) string {
	return chi.URLParam(request, name)
}

/*
IntID parses a named URL parameter as a 64-bit integer identifier.

Returns:
  - int64: The parsed identifier
  - error: VALIDATION_ERROR when the parameter is not an integer
*/
func IntID(request *http.Request, name string) (int64, error) {
	id, err := strconv.ParseInt(chi.URLParam(request, name), 10, 64)
	if err != nil {
		return 0, apperr.ValidationError("Invalid path parameter",
			apperr.FieldError{Field: name, Message: "Must be an integer"},
		)
	}
	return id, nil
}

/*
Pagination parses page and limit from the query string.

Returns:
  - pagination.Params: Validated page and limit
  - error: VALIDATION_ERROR listing each rejected parameter
*/
func Pagination(request *http.Request) (pagination.Params, error) {
	params, err := pagination.Parse(request.URL.Query())
	if err == nil {
		return params, nil
	}

	var problems pagination.ParamErrors
	if !errors.As(err, &problems) {
		return pagination.Params{}, apperr.Internal(err)
	}

	details := make([]apperr.FieldError, 0, len(problems))
	for _, problem := range problems {
		details = append(details, apperr.FieldError{Field: problem.Param, Message: problem.Message})
	}
	return pagination.Params{}, apperr.ValidationError("Invalid pagination parameters", details...)
}

/*
Claims extracts the authenticated user claims from the request context.

Returns nil if the request is not authenticated.
*/
func Claims(request *http.Request) *sec.AuthClaims {
	return ctxutil.GetAuthUser(request.Context())
}

/*
RequiredClaims ensures the request is authenticated and returns the user claims.

Returns:
  - *sec.AuthClaims: The authenticated user claims
  - error: apperr.Unauthorized if the request is not authenticated
*/
func RequiredClaims(request *http.Request) (*sec.AuthClaims, error) {
	claims := ctxutil.GetAuthUser(request.Context())
	if claims == nil {
		return nil, apperr.Unauthorized("Authentication required")
	}
	return claims, nil
}
