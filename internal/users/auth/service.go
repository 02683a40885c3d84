// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package auth

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/taibuivan/heroes/internal/platform/apperr"
	"github.com/taibuivan/heroes/internal/platform/constants"
	"github.com/taibuivan/heroes/internal/platform/ctxutil"
	"github.com/taibuivan/heroes/internal/platform/sec"
	"github.com/taibuivan/heroes/internal/platform/validate"
)

// # Contracts & Types

// TokenProvider defines the contract for issuing access tokens.
type TokenProvider interface {
	// GenerateAccessToken creates a signed token string for the given account.
	GenerateAccessToken(userID int64, username string, role sec.UserRole) (string, error)
	// TimeToLive reports how long issued tokens stay valid.
	TimeToLive() time.Duration
}

// errInvalidCredentials is deliberately identical for unknown users and wrong passwords.
var errInvalidCredentials = apperr.Unauthorized("Invalid username or password")

// Service implements account and authentication use cases.
type Service struct {
	userRepository UserRepository
	tokenProvider  TokenProvider
	logger         *slog.Logger
}

// NewService constructs a new [Service] with necessary dependencies.
func NewService(userRepo UserRepository, tokenProv TokenProvider, logger *slog.Logger) *Service {
	return &Service{
		userRepository: userRepo,
		tokenProvider:  tokenProv,
		logger:         logger,
	}
}

// # Registration Flow

/*
Register validates, hashes, and persists a brand new account with the given role.

Returns:
  - *User: Created entity
  - error: VALIDATION_ERROR, ALREADY_EXISTS (username taken) or storage errors
*/
func (service *Service) Register(context context.Context, input RegisterRequest, role sec.UserRole) (*User, error) {
	if err := validate.Struct(input); err != nil {
		return nil, err
	}

	validator := &validate.Validator{}
	validator.Custom("role", !role.Valid(), "Unknown role")
	validator.Custom(FieldPassword, len(input.Password) > sec.MaxPasswordBytes, "Maximum 72 bytes")
	if err := validator.Err(); err != nil {
		return nil, err
	}

	hashedPassword, err := sec.HashPassword(input.Password)
	if err != nil {
		return nil, apperr.Internal(fmt.Errorf("auth_service_hash_failed: %w", err))
	}

	user := &User{
		Username:     input.Username,
		PasswordHash: hashedPassword,
		Role:         role,
	}

	if err := service.userRepository.Create(context, user); err != nil {
		return nil, err
	}

	service.log(context).Info("user_registered",
		slog.Int64("user_id", user.ID),
		slog.String("username", user.Username),
		slog.String("role", string(user.Role)),
	)

	return user, nil
}

// # Authentication Flow

/*
IssueToken verifies credentials and returns a signed access token.

An unknown username and a wrong password produce the same error and take
comparable time, so the endpoint cannot be used to enumerate accounts.
*/
func (service *Service) IssueToken(context context.Context, input TokenRequest) (*TokenResponse, error) {
	if err := validate.Struct(input); err != nil {
		return nil, err
	}

	user, err := service.userRepository.FindByUsername(context, input.Username)
	if err != nil {
		if !apperr.HasCode(err, apperr.CodeNotFound) {
			return nil, err
		}
		sec.CheckPasswordTiming(input.Password)
		return nil, errInvalidCredentials
	}

	if !sec.CheckPasswordHash(input.Password, user.PasswordHash) {
		service.log(context).Warn("login_failed", slog.Int64("user_id", user.ID))
		return nil, errInvalidCredentials
	}

	token, err := service.tokenProvider.GenerateAccessToken(user.ID, user.Username, user.Role)
	if err != nil {
		return nil, apperr.Internal(err)
	}

	service.log(context).Info("token_issued", slog.Int64("user_id", user.ID))

	return &TokenResponse{
		AccessToken: token,
		TokenType:   constants.TokenTypeBearer,
		ExpiresIn:   int(service.tokenProvider.TimeToLive().Seconds()),
	}, nil
}

// # Account Lookups

// Me returns the account behind the authenticated claims.
func (service *Service) Me(context context.Context, claims *sec.AuthClaims) (*User, error) {
	return service.userRepository.FindByID(context, claims.UserID)
}

/*
GetUser returns an account visible to the caller.

Members may only read their own account; admins may read any.
*/
func (service *Service) GetUser(context context.Context, claims *sec.AuthClaims, id int64) (*User, error) {
	if claims.UserID != id && !claims.Role.AtLeast(sec.RoleAdmin) {
		return nil, apperr.Forbidden("You may only view your own account")
	}
	return service.userRepository.FindByID(context, id)
}

func (service *Service) log(context context.Context) *slog.Logger {
	return ctxutil.LoggerOr(context, service.logger)
}
