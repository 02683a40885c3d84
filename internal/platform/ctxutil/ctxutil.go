// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Package ctxutil stores and retrieves per-request values in a [context.Context].
//
// The keys are unexported, so only this package can read or write them.
package ctxutil

import (
	"context"
	"log/slog"

	"github.com/taibuivan/heroes/internal/platform/sec"
)

type (
	requestIDKey struct{}
	loggerKey    struct{}
	authUserKey  struct{}
)

// # Request Tracing

// WithRequestID returns a new context with the provided request ID attached.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey{}, id)
}

// GetRequestID retrieves the request ID from the context.
// Returns an empty string if not found.
func GetRequestID(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey{}).(string)
	return id
}

// # Structured Logging

// WithLogger returns a new context with the provided logger attached.
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, loggerKey{}, logger)
}

// GetLogger retrieves the request logger, or the global default when none is attached.
func GetLogger(ctx context.Context) *slog.Logger {
	return LoggerOr(ctx, slog.Default())
}

// LoggerOr retrieves the request logger, or fallback when none is attached.
// Services pass their own logger so that background calls still log somewhere useful.
func LoggerOr(ctx context.Context, fallback *slog.Logger) *slog.Logger {
	if logger, ok := ctx.Value(loggerKey{}).(*slog.Logger); ok && logger != nil {
		return logger
	}
	return fallback
}

// # Identity & Access

// WithAuthUser returns a new context carrying the verified token claims.
func WithAuthUser(ctx context.Context, user *sec.AuthClaims) context.Context {
	return context.WithValue(ctx, authUserKey{}, user)
}

// GetAuthUser retrieves the [*sec.AuthClaims] of an authenticated request, or nil.
func GetAuthUser(ctx context.Context) *sec.AuthClaims {
	claims, _ := ctx.Value(authUserKey{}).(*sec.AuthClaims)
	return claims
}
