// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package requestutil_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/heroes/internal/platform/apperr"
	"github.com/taibuivan/heroes/internal/platform/ctxutil"
	requestutil "github.com/taibuivan/heroes/internal/platform/request"
	"github.com/taibuivan/heroes/internal/platform/sec"
)

func withURLParam(request *http.Request, key, value string) *http.Request {
	routeContext := chi.NewRouteContext()
	routeContext.URLParams.Add(key, value)
	return request.WithContext(context.WithValue(request.Context(), chi.RouteCtxKey, routeContext))
}

/*
TestDecodeJSON accepts a single object and rejects malformed bodies.
*/
func TestDecodeJSON(t *testing.T) {
	tests := []struct {
		name    string
		body    string
		wantErr bool
	}{
		{"valid", `{"name":"Bruce"}`, false},
		{"malformed", `{"name":`, true},
		{"empty", ``, true},
		{"trailing_value", `{"name":"Bruce"}{"name":"Clark"}`, true},
		{"wrong_type", `{"name":42}`, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			request := httptest.NewRequest(http.MethodPost, "/", strings.NewReader(tt.body))
			var target struct {
				Name string `json:"name"`
			}

			err := requestutil.DecodeJSON(httptest.NewRecorder(), request, &target)
			if !tt.wantErr {
				require.NoError(t, err)
				assert.Equal(t, "Bruce", target.Name)
				return
			}
			require.Error(t, err)
			assert.True(t, apperr.HasCode(err, apperr.CodeBadRequest))
		})
	}
}

/*
TestIntID parses integer identifiers and rejects anything else as a validation error.
*/
func TestIntID(t *testing.T) {
	request := withURLParam(httptest.NewRequest(http.MethodGet, "/", nil), "id", "42")
	id, err := requestutil.IntID(request, "id")
	require.NoError(t, err)
	assert.Equal(t, int64(42), id)

	for _, raw := range []string{"abc", "", "1.5", "99999999999999999999"} {
		request := withURLParam(httptest.NewRequest(http.MethodGet, "/", nil), "id", raw)
		_, err := requestutil.IntID(request, "id")
		require.Error(t, err, raw)

		appErr := apperr.As(err)
		require.NotNil(t, appErr)
		assert.Equal(t, http.StatusUnprocessableEntity, appErr.HTTPStatus)
		assert.Equal(t, "id", appErr.Details[0].Field)
	}
}

/*
TestPagination converts parameter problems into field details.
*/
func TestPagination(t *testing.T) {
	request := httptest.NewRequest(http.MethodGet, "/?page=2&limit=5", nil)
	params, err := requestutil.Pagination(request)
	require.NoError(t, err)
	assert.Equal(t, 2, params.Page)
	assert.Equal(t, 5, params.Limit)

	request = httptest.NewRequest(http.MethodGet, "/?page=0&limit=500", nil)
	_, err = requestutil.Pagination(request)
	require.Error(t, err)

	appErr := apperr.As(err)
	require.NotNil(t, appErr)
	assert.Equal(t, apperr.CodeValidation, appErr.Code)
	assert.Len(t, appErr.Details, 2)
}

func TestRequiredClaims(t *testing.T) {
	request := httptest.NewRequest(http.MethodGet, "/", nil)
	_, err := requestutil.RequiredClaims(request)
	assert.True(t, apperr.HasCode(err, apperr.CodeUnauthorized))
	assert.Nil(t, requestutil.Claims(request))

	claims := &sec.AuthClaims{UserID: 7, Role: sec.RoleMember}
	request = request.WithContext(ctxutil.WithAuthUser(request.Context(), claims))
	got, err := requestutil.RequiredClaims(request)
	require.NoError(t, err)
	assert.Same(t, claims, got)
}
