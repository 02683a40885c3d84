// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package sec_test

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/heroes/internal/platform/sec"
)

/*
TestTokenService_RoundTrip verifies that issued tokens verify with the same claims.
*/
func TestTokenService_RoundTrip(t *testing.T) {
	service, err := sec.NewTokenService("test-secret", "heroes-api", time.Minute)
	require.NoError(t, err)

	token, err := service.GenerateAccessToken(42, "kent", sec.RoleAdmin)
	require.NoError(t, err)

	claims, err := service.VerifyToken(token)
	require.NoError(t, err)
	assert.Equal(t, int64(42), claims.UserID)
	assert.Equal(t, "kent", claims.Username)
	assert.Equal(t, sec.RoleAdmin, claims.Role)
	assert.Equal(t, "42", claims.Subject)
}

/*
TestTokenService_Rejects covers tampering, foreign secrets and foreign issuers.
*/
func TestTokenService_Rejects(t *testing.T) {
	service, err := sec.NewTokenService("test-secret", "heroes-api", time.Minute)
	require.NoError(t, err)
	other, err := sec.NewTokenService("other-secret", "heroes-api", time.Minute)
	require.NoError(t, err)
	foreignIssuer, err := sec.NewTokenService("test-secret", "someone-else", time.Minute)
	require.NoError(t, err)

	valid, err := service.GenerateAccessToken(1, "diana", sec.RoleMember)
	require.NoError(t, err)
	signedByOther, err := other.GenerateAccessToken(1, "diana", sec.RoleMember)
	require.NoError(t, err)
	issuedElsewhere, err := foreignIssuer.GenerateAccessToken(1, "diana", sec.RoleMember)
	require.NoError(t, err)

	tests := []struct {
		name  string
		token string
	}{
		{"garbage", "not-a-jwt"},
		{"empty", ""},
		{"tampered", valid + "x"},
		{"wrong_secret", signedByOther},
		{"wrong_issuer", issuedElsewhere},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := service.VerifyToken(tt.token)
			require.Error(t, err)
			assert.True(t, errors.Is(err, sec.ErrInvalidToken))
		})
	}
}

func TestNewTokenService_Invalid(t *testing.T) {
	_, err := sec.NewTokenService("", "heroes-api", time.Minute)
	assert.Error(t, err)

	_, err = sec.NewTokenService("secret", "heroes-api", 0)
	assert.Error(t, err)
}

func TestPasswordHash(t *testing.T) {
	hash, err := sec.HashPassword("correct horse")
	require.NoError(t, err)

	assert.NotEqual(t, "correct horse", hash)
	assert.True(t, sec.CheckPasswordHash("correct horse", hash))
	assert.False(t, sec.CheckPasswordHash("battery staple", hash))
	assert.False(t, sec.CheckPasswordTiming("correct horse"))
}

func TestUserRole(t *testing.T) {
	assert.True(t, sec.RoleAdmin.AtLeast(sec.RoleMember))
	assert.True(t, sec.RoleMember.AtLeast(sec.RoleMember))
	assert.False(t, sec.RoleMember.AtLeast(sec.RoleAdmin))
	assert.False(t, sec.UserRole("root").Valid())
	assert.True(t, sec.RoleAdmin.Valid())
}
