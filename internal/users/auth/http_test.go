// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package auth_test

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/heroes/internal/platform/middleware"
	"github.com/taibuivan/heroes/internal/platform/sec"
	"github.com/taibuivan/heroes/internal/users/auth"
)

type testServer struct {
	*httptest.Server
	service *auth.Service
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	tokens := newTokenService(t)
	service := newService(t, tokens)
	handler := auth.NewHandler(service)

	router := chi.NewRouter()
	router.Use(middleware.Authenticate(tokens))
	router.Mount("/users", handler.UserRoutes())
	router.Mount("/auth", handler.AuthRoutes())

	server := httptest.NewServer(router)
	t.Cleanup(server.Close)
	return &testServer{Server: server, service: service}
}

func (server *testServer) do(t *testing.T, method, path, token, body string) (int, map[string]any) {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	request, err := http.NewRequest(method, server.URL+path, reader)
	require.NoError(t, err)
	request.Header.Set("Content-Type", "application/json")
	if token != "" {
		request.Header.Set("Authorization", "Bearer "+token)
	}

	response, err := server.Client().Do(request)
	require.NoError(t, err)
	defer response.Body.Close()

	var decoded map[string]any
	require.NoError(t, json.NewDecoder(response.Body).Decode(&decoded))
	return response.StatusCode, decoded
}

func (server *testServer) login(t *testing.T, username, password string) string {
	t.Helper()
	status, body := server.do(t, http.MethodPost, "/auth/token", "",
		fmt.Sprintf(`{"username":%q,"password":%q}`, username, password))
	require.Equal(t, http.StatusOK, status, body)
	return body["data"].(map[string]any)["access_token"].(string)
}

/*
TestHTTP_Register creates member accounts and never echoes the password hash.
*/
func TestHTTP_Register(t *testing.T) {
	server := newTestServer(t)

	status, body := server.do(t, http.MethodPost, "/users", "", `{"username":"barry","password":"speedforce"}`)
	require.Equal(t, http.StatusCreated, status)
	data := body["data"].(map[string]any)
	assert.Equal(t, "barry", data["username"])
	assert.Equal(t, "member", data["role"])
	assert.NotContains(t, data, "password_hash")

	status, body = server.do(t, http.MethodPost, "/users", "", `{"username":"barry","password":"speedforce"}`)
	assert.Equal(t, http.StatusConflict, status)
	assert.Equal(t, "ALREADY_EXISTS", body["code"])

	status, body = server.do(t, http.MethodPost, "/users", "", `{"username":"x","password":"1"}`)
	assert.Equal(t, http.StatusUnprocessableEntity, status)
	assert.Equal(t, "VALIDATION_ERROR", body["code"])

	status, body = server.do(t, http.MethodPost, "/users", "", `{"username":"wally","password":"`+strings.Repeat("é", 40)+`"}`)
	assert.Equal(t, http.StatusUnprocessableEntity, status)
	assert.Equal(t, "VALIDATION_ERROR", body["code"])

	status, body = server.do(t, http.MethodPost, "/users", "", `{"username":`)
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "BAD_REQUEST", body["code"])
}

func TestHTTP_Token(t *testing.T) {
	server := newTestServer(t)
	server.do(t, http.MethodPost, "/users", "", `{"username":"barry","password":"speedforce"}`)

	status, body := server.do(t, http.MethodPost, "/auth/token", "", `{"username":"barry","password":"speedforce"}`)
	require.Equal(t, http.StatusOK, status)
	data := body["data"].(map[string]any)
	assert.NotEmpty(t, data["access_token"])
	assert.Equal(t, "Bearer", data["token_type"])

	status, body = server.do(t, http.MethodPost, "/auth/token", "", `{"username":"barry","password":"wrong-one"}`)
	assert.Equal(t, http.StatusUnauthorized, status)
	assert.Equal(t, "UNAUTHORIZED", body["code"])
}

/*
TestHTTP_Accounts covers the authenticated account endpoints.
*/
func TestHTTP_Accounts(t *testing.T) {
	server := newTestServer(t)

	_, err := server.service.Register(context.Background(), auth.RegisterRequest{Username: "admin", Password: "administrator"}, sec.RoleAdmin)
	require.NoError(t, err)
	server.do(t, http.MethodPost, "/users", "", `{"username":"barry","password":"speedforce"}`)
	server.do(t, http.MethodPost, "/users", "", `{"username":"diana","password":"themyscira"}`)

	status, _ := server.do(t, http.MethodGet, "/users/me", "", "")
	assert.Equal(t, http.StatusUnauthorized, status)

	status, _ = server.do(t, http.MethodGet, "/users/me", "not-a-token", "")
	assert.Equal(t, http.StatusUnauthorized, status)

	barry := server.login(t, "barry", "speedforce")
	status, body := server.do(t, http.MethodGet, "/users/me", barry, "")
	require.Equal(t, http.StatusOK, status)
	me := body["data"].(map[string]any)
	assert.Equal(t, "barry", me["username"])

	barryID := int64(me["id"].(float64))
	status, _ = server.do(t, http.MethodGet, fmt.Sprintf("/users/%d", barryID), barry, "")
	assert.Equal(t, http.StatusOK, status)

	status, body = server.do(t, http.MethodGet, fmt.Sprintf("/users/%d", barryID+1), barry, "")
	assert.Equal(t, http.StatusForbidden, status)
	assert.Equal(t, "FORBIDDEN", body["code"])

	admin := server.login(t, "admin", "administrator")
	status, body = server.do(t, http.MethodGet, fmt.Sprintf("/users/%d", barryID+1), admin, "")
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "diana", body["data"].(map[string]any)["username"])

	status, body = server.do(t, http.MethodGet, "/users/abc", admin, "")
	assert.Equal(t, http.StatusUnprocessableEntity, status)
	assert.Equal(t, "VALIDATION_ERROR", body["code"])
}
