// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

// Command heroctl migrates, seeds and administers the heroes database.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/taibuivan/heroes/internal/cli"
	"github.com/taibuivan/heroes/internal/platform/constants"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := cli.NewRootCmd(constants.AppVersion, cli.DefaultDependencies()).ExecuteContext(ctx); err != nil {
		stop()
		os.Exit(1)
	}
}
