package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"bitbucket.org/crgw/flexrates/internal/cli"
	"bitbucket.org/crgw/flexrates/internal/config"
)

func main() {
	cfg := config.Load(".env")

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)

	err := cli.NewRootCommand(cfg, os.Stdin, os.Stdout).ExecuteContext(ctx)
	stop()

	if err != nil {
		os.Exit(1)
	}
}
