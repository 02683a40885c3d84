// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package auth implements user accounts and token-based authentication.

Accounts are created through registration, exchange their credentials for a
short-lived HS256 access token, and present it as a bearer token. Hero
endpoints stay public; the account endpoints are the only ones that require
an identity.
*/
package auth

import (
	"time"

	"github.com/taibuivan/heroes/internal/platform/sec"
)

// # Domain Entities

// User represents a registered account.
type User struct {
	ID           int64
	Username     string
	PasswordHash string
	Role         sec.UserRole
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func (u *User) clone() *User {
	out := *u
	return &out
}

// # Field Identifiers

const (
	FieldUsername = "username"
	FieldPassword = "password"
)

// resourceName is the label used in client-facing error messages.
const resourceName = "User"

// # Request Payloads

// RegisterRequest is the inbound payload for creating an account.
type RegisterRequest struct {
	Username string `json:"username" validate:"required,min=3,max=64,alphanum"`
	// bcrypt ignores everything past 72 bytes.
	Password string `json:"password" validate:"required,min=8,max=72"`
}

// TokenRequest is the inbound payload for exchanging credentials for a token.
type TokenRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// # Response Shapes

// UserResponse is the public representation of an account. It never carries the hash.
type UserResponse struct {
	ID        int64        `json:"id"`
	Username  string       `json:"username"`
	Role      sec.UserRole `json:"role"`
	CreatedAt time.Time    `json:"created_at"`
}

// TokenResponse is returned by a successful credential exchange.
type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	ExpiresIn   int    `json:"expires_in"`
}

// ToResponse maps an account to its public shape.
func ToResponse(user *User) UserResponse {
	return UserResponse{
		ID:        user.ID,
		Username:  user.Username,
		Role:      user.Role,
		CreatedAt: user.CreatedAt,
	}
}
