// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package postgres_test

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/heroes/internal/platform/postgres"
)

func TestNewPool_InvalidDSN(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	_, err := postgres.NewPool(context.Background(), "postgres://heroes@localhost:not-a-port/heroes", logger)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid DSN")
}
