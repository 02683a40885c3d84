// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package apperr_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/heroes/internal/platform/apperr"
)

/*
TestKinds_StatusMapping verifies every error kind maps to its HTTP status.
*/
func TestKinds_StatusMapping(t *testing.T) {
	tests := []struct {
		name   string
		err    *apperr.AppError
		code   string
		status int
	}{
		{"not_found", apperr.NotFound("Hero"), apperr.CodeNotFound, http.StatusNotFound},
		{"already_exists", apperr.AlreadyExists("Hero", "alias", "Batman"), apperr.CodeAlreadyExists, http.StatusConflict},
		{"invalid_request", apperr.InvalidRequest("No fields to update"), apperr.CodeInvalidRequest, http.StatusUnprocessableEntity},
		{"validation", apperr.ValidationError("Validation failed"), apperr.CodeValidation, http.StatusUnprocessableEntity},
		{"bad_request", apperr.BadRequest("Invalid JSON payload"), apperr.CodeBadRequest, http.StatusBadRequest},
		{"unauthorized", apperr.Unauthorized("Authentication required"), apperr.CodeUnauthorized, http.StatusUnauthorized},
		{"forbidden", apperr.Forbidden("Insufficient permissions"), apperr.CodeForbidden, http.StatusForbidden},
		{"internal", apperr.Internal(errors.New("boom")), apperr.CodeInternal, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.code, tt.err.Code)
			assert.Equal(t, tt.status, tt.err.HTTPStatus)
		})
	}
}

/*
TestAlreadyExists_CarriesValue checks the offending value travels with the error.
*/
func TestAlreadyExists_CarriesValue(t *testing.T) {
	err := apperr.AlreadyExists("Hero", "alias", "Batman")

	assert.Equal(t, "Hero with alias Batman already exists", err.Error())
	require.Len(t, err.Details, 1)
	assert.Equal(t, "alias", err.Details[0].Field)
	assert.Equal(t, "Batman", err.Details[0].Message)
}

/*
TestInternal_HidesCause ensures the client message never contains the cause.
*/
func TestInternal_HidesCause(t *testing.T) {
	cause := errors.New("pq: relation \"heroes\" does not exist")
	err := apperr.Internal(cause)

	assert.Equal(t, apperr.InternalMessage, err.Error())
	assert.ErrorIs(t, err, cause)
}

/*
TestAs_TraversesWrappedChain checks extraction through fmt.Errorf wrapping.
*/
func TestAs_TraversesWrappedChain(t *testing.T) {
	wrapped := fmt.Errorf("service: %w", apperr.NotFound("Hero"))

	ae := apperr.As(wrapped)
	require.NotNil(t, ae)
	assert.Equal(t, apperr.CodeNotFound, ae.Code)
	assert.True(t, apperr.IsAppError(wrapped))
	assert.True(t, apperr.HasCode(wrapped, apperr.CodeNotFound))
	assert.False(t, apperr.HasCode(wrapped, apperr.CodeAlreadyExists))

	assert.Nil(t, apperr.As(errors.New("plain")))
}
